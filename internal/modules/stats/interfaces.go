package stats

import (
	"context"

	"placementhub/internal/domain"
)

// StudentLister is the only repository surface aggregation needs.
type StudentLister interface {
	List(ctx context.Context) ([]*domain.Student, error)
}
