package internship

// CreateInternshipRequest carries the text fields of the multipart
// add-internship form; the optional document arrives as the "file" part.
type CreateInternshipRequest struct {
	Name     string `form:"name"`
	Company  string `form:"company"`
	Position string `form:"position"`
	Duration string `form:"duration"`
	Stipend  string `form:"stipend"`
}

// UpdateInternshipRequest is a partial-merge payload: nil fields keep their
// previous values. The document attachment is fixed at creation.
type UpdateInternshipRequest struct {
	Name     *string `json:"name"`
	Company  *string `json:"company"`
	Position *string `json:"position"`
	Duration *string `json:"duration"`
	Stipend  *string `json:"stipend"`
}
