package requests

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sekolahku/inventaris-api/internal/application/dto"
	"github.com/sekolahku/inventaris-api/internal/domain"
	"github.com/sekolahku/inventaris-api/internal/domain/entity"
	"github.com/sekolahku/inventaris-api/internal/domain/workflow"
)

// Creation never mutates item stock: quantity is only committed at the
// decrement-bearing edge (admin processing or handover). Two pending
// requests may together exceed available stock; the first to reach the
// decrementing edge wins and the other fails there.

// CreateConsumable submits a consumable request for the actor. The
// requested quantity must not exceed available stock at creation time.
func (uc *UseCase) CreateConsumable(ctx context.Context, actor Actor, in dto.CreateConsumableRequest) (string, error) {
	if in.ItemID == "" || in.Quantity < 1 {
		return "", fmt.Errorf("%w: kuantitas minimal 1", domain.ErrInvalidInput)
	}
	item, err := uc.items.GetByID(ctx, in.ItemID)
	if err != nil {
		return "", err
	}
	if item == nil {
		return "", domain.ErrNotFound
	}
	if item.Type != entity.ItemTypeConsumable {
		return "", fmt.Errorf("%w: barang bukan tipe habis pakai", domain.ErrInvalidInput)
	}
	if in.Quantity > item.Quantity {
		return "", fmt.Errorf("%w: kuantitas melebihi stok tersedia (%d)", domain.ErrInvalidInput, item.Quantity)
	}

	req := &entity.ConsumableRequest{
		ID:          uuid.New().String(),
		ItemID:      item.ID,
		RequesterID: actor.ID,
		Quantity:    in.Quantity,
		RequestDate: time.Now(),
		Status:      workflow.InitialStatus(workflow.KindConsumable),
	}
	if err := uc.consumables.Create(ctx, req); err != nil {
		return "", err
	}
	return req.ID, nil
}

// CreateBorrow submits a borrow request for the actor against a
// returnable item.
func (uc *UseCase) CreateBorrow(ctx context.Context, actor Actor, in dto.CreateBorrowRequest) (string, error) {
	if in.ItemID == "" || in.Quantity < 1 {
		return "", fmt.Errorf("%w: kuantitas minimal 1", domain.ErrInvalidInput)
	}
	if in.BorrowStartDate.IsZero() || in.DueDate.IsZero() {
		return "", fmt.Errorf("%w: tanggal pinjam dan jatuh tempo wajib diisi", domain.ErrInvalidInput)
	}
	if in.DueDate.Before(in.BorrowStartDate) {
		return "", fmt.Errorf("%w: jatuh tempo sebelum tanggal mulai pinjam", domain.ErrInvalidInput)
	}
	item, err := uc.items.GetByID(ctx, in.ItemID)
	if err != nil {
		return "", err
	}
	if item == nil {
		return "", domain.ErrNotFound
	}
	if item.Type != entity.ItemTypeReturnable {
		return "", fmt.Errorf("%w: barang bukan tipe dapat dikembalikan", domain.ErrInvalidInput)
	}
	if in.Quantity > item.Quantity {
		return "", fmt.Errorf("%w: kuantitas melebihi stok tersedia (%d)", domain.ErrInvalidInput, item.Quantity)
	}

	req := &entity.BorrowRequest{
		ID:              uuid.New().String(),
		ItemID:          item.ID,
		RequesterID:     actor.ID,
		Quantity:        in.Quantity,
		RequestDate:     time.Now(),
		BorrowStartDate: in.BorrowStartDate,
		DueDate:         in.DueDate,
		Status:          workflow.InitialStatus(workflow.KindBorrow),
	}
	if err := uc.borrows.Create(ctx, req); err != nil {
		return "", err
	}
	return req.ID, nil
}

// CreateReturn submits a return request against one of the actor's own
// active loans. The quantity must not exceed what is still out on that loan.
func (uc *UseCase) CreateReturn(ctx context.Context, actor Actor, in dto.CreateReturnRequest) (string, error) {
	if in.BorrowRequestID == "" || in.Quantity < 1 {
		return "", fmt.Errorf("%w: kuantitas minimal 1", domain.ErrInvalidInput)
	}
	borrow, err := uc.borrows.GetByID(ctx, in.BorrowRequestID)
	if err != nil {
		return "", err
	}
	if borrow == nil {
		return "", domain.ErrNotFound
	}
	if borrow.RequesterID != actor.ID {
		return "", domain.ErrForbidden
	}
	if borrow.Status != workflow.StatusDiproses {
		return "", fmt.Errorf("%w: barang belum diserahkan atau sudah dikembalikan", domain.ErrInvalidInput)
	}
	if in.Quantity > borrow.RemainingQuantity {
		return "", fmt.Errorf("%w: kuantitas melebihi sisa pinjaman (%d)", domain.ErrInvalidInput, borrow.RemainingQuantity)
	}

	req := &entity.ReturnRequest{
		ID:              uuid.New().String(),
		BorrowRequestID: borrow.ID,
		ItemID:          borrow.ItemID,
		RequesterID:     actor.ID,
		Quantity:        in.Quantity,
		RequestDate:     time.Now(),
		Status:          workflow.InitialStatus(workflow.KindReturn),
	}
	if err := uc.returns.Create(ctx, req); err != nil {
		return "", err
	}
	return req.ID, nil
}
