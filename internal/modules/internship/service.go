package internship

import (
	"context"
	"errors"
	"mime/multipart"

	"placementhub/internal/domain"
	"placementhub/internal/storage"

	"gorm.io/gorm"
)

// Service contains the business logic for internship listings.
type Service struct {
	internships InternshipRepositoryInterface
	files       AttachmentStore
}

func NewService(internships InternshipRepositoryInterface, files AttachmentStore) *Service {
	return &Service{internships: internships, files: files}
}

// Create stores a new internship with an optional document upload; an absent
// document leaves an empty attachment reference.
func (s *Service) Create(ctx context.Context, req CreateInternshipRequest, document *multipart.FileHeader) (*domain.Internship, error) {
	record := &domain.Internship{
		Name:     req.Name,
		Company:  req.Company,
		Position: req.Position,
		Duration: req.Duration,
		Stipend:  req.Stipend,
	}

	if document != nil {
		key, err := s.files.Save(document, storage.InternshipDir)
		if err != nil {
			return nil, err
		}
		record.Document = key
	}

	if err := s.internships.Create(ctx, record); err != nil {
		if record.Document != "" {
			s.files.Delete(storage.InternshipDir, record.Document)
		}
		return nil, err
	}

	return record, nil
}

func (s *Service) List(ctx context.Context) ([]*domain.Internship, error) {
	return s.internships.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Internship, error) {
	record, err := s.internships.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInternshipNotFound
		}
		return nil, err
	}
	return record, nil
}

// Update merges the supplied fields into the record; omitted fields keep
// their previous values.
func (s *Service) Update(ctx context.Context, id int64, req UpdateInternshipRequest) (*domain.Internship, error) {
	record, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		record.Name = *req.Name
	}
	if req.Company != nil {
		record.Company = *req.Company
	}
	if req.Position != nil {
		record.Position = *req.Position
	}
	if req.Duration != nil {
		record.Duration = *req.Duration
	}
	if req.Stipend != nil {
		record.Stipend = *req.Stipend
	}

	if err := s.internships.Update(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// Delete removes the record, then best-effort deletes the document file if
// one was referenced. A file delete failure never rolls back the record
// delete.
func (s *Service) Delete(ctx context.Context, id int64) (*domain.Internship, error) {
	record, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.internships.Delete(ctx, id); err != nil {
		return nil, err
	}

	if record.Document != "" {
		s.files.Delete(storage.InternshipDir, record.Document)
	}

	return record, nil
}
