package student

// CreateStudentRequest carries the text fields of the multipart add-student
// form. CGPA arrives as a form string; parsing happens in the service.
type CreateStudentRequest struct {
	Name            string `form:"name"`
	Email           string `form:"email"`
	Department      string `form:"department"`
	CGPA            string `form:"cgpa"`
	PlacementStatus string `form:"placementStatus"`
}

// UpdateStudentRequest is a partial-merge payload: nil fields keep their
// previous values.
type UpdateStudentRequest struct {
	Name            *string  `json:"name"`
	Email           *string  `json:"email"`
	Department      *string  `json:"department"`
	CGPA            *float64 `json:"cgpa"`
	PlacementStatus *string  `json:"placementStatus"`
}
