package domain

import "time"

// Company is a recruiting-company visit record. Package keeps the original
// wire name "package" (the offered salary package, e.g. "12 LPA").
type Company struct {
	ID             int64     `json:"id"`
	CompanyName    string    `json:"companyName"`
	VisitDate      time.Time `json:"visitDate"`
	StudentsPlaced int       `json:"studentsPlaced"`
	Package        string    `json:"package"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
