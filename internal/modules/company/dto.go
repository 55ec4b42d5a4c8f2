package company

// CreateCompanyRequest requires all four fields; "package" keeps the original
// wire name for the offered salary package.
type CreateCompanyRequest struct {
	CompanyName    string `json:"companyName" validate:"required"`
	VisitDate      string `json:"visitDate" validate:"required"`
	StudentsPlaced *int   `json:"studentsPlaced" validate:"required"`
	Package        string `json:"package" validate:"required"`
}

// UpdateCompanyRequest is a partial-merge payload: nil fields keep their
// previous values, visitDate included.
type UpdateCompanyRequest struct {
	CompanyName    *string `json:"companyName"`
	VisitDate      *string `json:"visitDate"`
	StudentsPlaced *int    `json:"studentsPlaced"`
	Package        *string `json:"package"`
}
