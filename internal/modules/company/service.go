package company

import (
	"context"
	"errors"
	"time"

	"placementhub/internal/domain"
	"placementhub/internal/pkg/validator"

	"gorm.io/gorm"
)

// visitDateLayouts are the accepted wire formats for visitDate.
var visitDateLayouts = []string{time.RFC3339, "2006-01-02"}

// Service contains the business logic for recruiting-company visit records.
type Service struct {
	companies CompanyRepositoryInterface
}

func NewService(companies CompanyRepositoryInterface) *Service {
	return &Service{companies: companies}
}

// Create validates that companyName, visitDate, studentsPlaced and package
// are all present before storing the record.
func (s *Service) Create(ctx context.Context, req CreateCompanyRequest) (*domain.Company, error) {
	if fields := validator.Validate(req); fields != nil {
		return nil, ErrValidation
	}

	visitDate, err := parseVisitDate(req.VisitDate)
	if err != nil {
		return nil, err
	}

	record := &domain.Company{
		CompanyName:    req.CompanyName,
		VisitDate:      visitDate,
		StudentsPlaced: *req.StudentsPlaced,
		Package:        req.Package,
	}

	if err := s.companies.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// List returns companies ordered by visit date descending.
func (s *Service) List(ctx context.Context) ([]*domain.Company, error) {
	return s.companies.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Company, error) {
	record, err := s.companies.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return record, nil
}

// Update merges the supplied fields into the record. An omitted visitDate
// preserves the stored value; earlier revisions cleared it instead, which
// broke the partial-merge contract every other field follows.
func (s *Service) Update(ctx context.Context, id int64, req UpdateCompanyRequest) (*domain.Company, error) {
	record, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.CompanyName != nil {
		record.CompanyName = *req.CompanyName
	}
	if req.VisitDate != nil {
		visitDate, err := parseVisitDate(*req.VisitDate)
		if err != nil {
			return nil, err
		}
		record.VisitDate = visitDate
	}
	if req.StudentsPlaced != nil {
		record.StudentsPlaced = *req.StudentsPlaced
	}
	if req.Package != nil {
		record.Package = *req.Package
	}

	if err := s.companies.Update(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *Service) Delete(ctx context.Context, id int64) (*domain.Company, error) {
	record, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.companies.Delete(ctx, id); err != nil {
		return nil, err
	}
	return record, nil
}

func parseVisitDate(raw string) (time.Time, error) {
	for _, layout := range visitDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidDate
}
