package repositories

import (
	"context"

	"github.com/google/uuid"
	"scheme-sense.backend/internal/domain/entities"
)

// SchemeRepository defines scheme catalog data operations
type SchemeRepository interface {
	CreateBatch(ctx context.Context, schemes []*entities.Scheme) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Scheme, error)
	// List returns every scheme in catalog insertion order.
	List(ctx context.Context) ([]*entities.Scheme, error)
	Count(ctx context.Context) (int64, error)
}
