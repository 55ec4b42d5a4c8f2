package student

import (
	"context"
	"mime/multipart"

	"placementhub/internal/domain"
)

type StudentRepositoryInterface interface {
	Create(ctx context.Context, s *domain.Student) error
	List(ctx context.Context) ([]*domain.Student, error)
	GetByID(ctx context.Context, id int64) (*domain.Student, error)
	Update(ctx context.Context, s *domain.Student) error
	Delete(ctx context.Context, id int64) error
}

// AttachmentStore persists uploaded files outside the record store.
type AttachmentStore interface {
	Save(fh *multipart.FileHeader, subdir string) (string, error)
	Delete(subdir, key string)
}
