package ports

import (
	"context"

	"github.com/yottalab/membership-system/internal/core/domain"
)

// BadgeRepository persists achievement badges. Ids are store-generated and
// define insertion order.
type BadgeRepository interface {
	List(ctx context.Context) ([]domain.Badge, error)
	Find(ctx context.Context, id int64) (*domain.Badge, error)
	Create(ctx context.Context, b domain.Badge) (int64, error)
	Update(ctx context.Context, b domain.Badge) error
	Delete(ctx context.Context, id int64) error
}
