package student

import (
	"context"
	"errors"
	"mime/multipart"
	"strconv"
	"strings"

	"placementhub/internal/domain"
	"placementhub/internal/storage"

	"gorm.io/gorm"
)

// Service contains the business logic for student placement records.
type Service struct {
	students StudentRepositoryInterface
	files    AttachmentStore
}

func NewService(students StudentRepositoryInterface, files AttachmentStore) *Service {
	return &Service{students: students, files: files}
}

// Create stores a new student record with optional resume and certificates
// uploads. Absent files leave empty attachment references; that is not an
// error. No field-level validation is applied, matching the records' current
// free-form contract.
func (s *Service) Create(ctx context.Context, req CreateStudentRequest, resume, certificates *multipart.FileHeader) (*domain.Student, error) {
	status := domain.PlacementStatus(strings.TrimSpace(req.PlacementStatus))
	if status == "" {
		status = domain.StatusNotPlaced
	}

	record := &domain.Student{
		Name:            req.Name,
		Email:           req.Email,
		Department:      req.Department,
		CGPA:            parseCGPA(req.CGPA),
		PlacementStatus: status,
	}

	if resume != nil {
		key, err := s.files.Save(resume, storage.StudentDir)
		if err != nil {
			return nil, err
		}
		record.Resume = key
	}
	if certificates != nil {
		key, err := s.files.Save(certificates, storage.StudentDir)
		if err != nil {
			s.discard(record.Resume)
			return nil, err
		}
		record.Certificates = key
	}

	if err := s.students.Create(ctx, record); err != nil {
		s.discard(record.Resume)
		s.discard(record.Certificates)
		return nil, err
	}

	return record, nil
}

func (s *Service) List(ctx context.Context) ([]*domain.Student, error) {
	return s.students.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Student, error) {
	record, err := s.students.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	return record, nil
}

// Update merges the supplied fields into the record; omitted fields keep
// their previous values. This is the general path for flipping
// placementStatus once a student is placed.
func (s *Service) Update(ctx context.Context, id int64, req UpdateStudentRequest) (*domain.Student, error) {
	record, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		record.Name = *req.Name
	}
	if req.Email != nil {
		record.Email = *req.Email
	}
	if req.Department != nil {
		record.Department = *req.Department
	}
	if req.CGPA != nil {
		record.CGPA = req.CGPA
	}
	if req.PlacementStatus != nil {
		record.PlacementStatus = domain.PlacementStatus(*req.PlacementStatus)
	}

	if err := s.students.Update(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// Delete removes the record, then best-effort deletes any referenced
// attachments. File deletion failure never rolls back the record delete.
func (s *Service) Delete(ctx context.Context, id int64) (*domain.Student, error) {
	record, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.students.Delete(ctx, id); err != nil {
		return nil, err
	}

	if record.Resume != "" {
		s.files.Delete(storage.StudentDir, record.Resume)
	}
	if record.Certificates != "" {
		s.files.Delete(storage.StudentDir, record.Certificates)
	}

	return record, nil
}

// discard removes a stored file after a failed create.
func (s *Service) discard(key string) {
	if key != "" {
		s.files.Delete(storage.StudentDir, key)
	}
}

// parseCGPA returns nil for absent or non-numeric input; aggregation relies
// on that distinction.
func parseCGPA(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}
