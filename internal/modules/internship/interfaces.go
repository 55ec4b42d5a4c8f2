package internship

import (
	"context"
	"mime/multipart"

	"placementhub/internal/domain"
)

type InternshipRepositoryInterface interface {
	Create(ctx context.Context, i *domain.Internship) error
	List(ctx context.Context) ([]*domain.Internship, error)
	GetByID(ctx context.Context, id int64) (*domain.Internship, error)
	Update(ctx context.Context, i *domain.Internship) error
	Delete(ctx context.Context, id int64) error
}

// AttachmentStore persists uploaded files outside the record store.
type AttachmentStore interface {
	Save(fh *multipart.FileHeader, subdir string) (string, error)
	Delete(subdir, key string)
}
