package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sekolahku/inventaris-api/internal/application/dto"
	"github.com/sekolahku/inventaris-api/internal/domain"
	"github.com/sekolahku/inventaris-api/internal/domain/entity"
	"github.com/sekolahku/inventaris-api/internal/domain/repository"
)

// ItemUseCase covers Admin item management. Workflow-driven quantity
// adjustments do not pass through here; they belong to the request engine.
type ItemUseCase struct {
	itemRepo repository.ItemRepository
}

// NewItemUseCase builds the item usecase.
func NewItemUseCase(itemRepo repository.ItemRepository) *ItemUseCase {
	return &ItemUseCase{itemRepo: itemRepo}
}

// Create registers a new item with its provisioned quantity.
func (uc *ItemUseCase) Create(ctx context.Context, in dto.CreateItemRequest) (*entity.Item, error) {
	if in.Name == "" || in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	if !entity.IsValidItemType(in.Type) {
		return nil, fmt.Errorf("%w: tipe barang tidak dikenal", domain.ErrInvalidInput)
	}
	now := time.Now()
	item := &entity.Item{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Quantity:    in.Quantity,
		Type:        in.Type,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Update edits an item's descriptive fields and provisioned quantity.
func (uc *ItemUseCase) Update(ctx context.Context, id string, in dto.UpdateItemRequest) (*entity.Item, error) {
	if in.Name == "" || in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	if !entity.IsValidItemType(in.Type) {
		return nil, fmt.Errorf("%w: tipe barang tidak dikenal", domain.ErrInvalidInput)
	}
	item, err := uc.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	item.Name = in.Name
	item.Description = in.Description
	item.Quantity = in.Quantity
	item.Type = in.Type
	item.UpdatedAt = time.Now()
	if err := uc.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// GetByID returns one item.
func (uc *ItemUseCase) GetByID(ctx context.Context, id string) (*entity.Item, error) {
	item, err := uc.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return item, nil
}

// List returns all items.
func (uc *ItemUseCase) List(ctx context.Context) ([]*entity.Item, error) {
	return uc.itemRepo.List(ctx)
}

// Delete removes an item.
func (uc *ItemUseCase) Delete(ctx context.Context, id string) error {
	item, err := uc.itemRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	return uc.itemRepo.Delete(ctx, id)
}
