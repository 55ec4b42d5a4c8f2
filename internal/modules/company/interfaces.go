package company

import (
	"context"

	"placementhub/internal/domain"
)

type CompanyRepositoryInterface interface {
	Create(ctx context.Context, c *domain.Company) error
	List(ctx context.Context) ([]*domain.Company, error)
	GetByID(ctx context.Context, id int64) (*domain.Company, error)
	Update(ctx context.Context, c *domain.Company) error
	Delete(ctx context.Context, id int64) error
}
