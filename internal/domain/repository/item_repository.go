package repository

import (
	"context"

	"github.com/sekolahku/inventaris-api/internal/domain/entity"
)

// ItemRepository is the persistence port for items. GetForUpdate locks the
// row (SELECT FOR UPDATE) so concurrent quantity adjustments against the
// same item are evaluated on a single consistent read.
type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	GetByID(ctx context.Context, id string) (*entity.Item, error)
	GetForUpdate(ctx context.Context, id string) (*entity.Item, error)
	UpdateQuantity(ctx context.Context, id string, quantity int) error
	Update(ctx context.Context, item *entity.Item) error
	List(ctx context.Context) ([]*entity.Item, error)
	Delete(ctx context.Context, id string) error
}
