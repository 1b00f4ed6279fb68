package requests_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sekolahku/inventaris-api/internal/application/dto"
	"github.com/sekolahku/inventaris-api/internal/domain"
	"github.com/sekolahku/inventaris-api/internal/domain/entity"
	"github.com/sekolahku/inventaris-api/internal/domain/workflow"
)

func TestCreateConsumable_StartsPending(t *testing.T) {
	f := newFixture()
	f.addItem("pensil", entity.ItemTypeConsumable, 10)

	id, err := f.uc.CreateConsumable(context.Background(), pengguna, dto.CreateConsumableRequest{
		ItemID: "pensil", Quantity: 3,
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	req := f.store.consumables[id]
	assert.Equal(t, workflow.StatusPending, req.Status)
	assert.Equal(t, pengguna.ID, req.RequesterID)
	assert.Equal(t, 3, req.Quantity)

	// Creation never touches stock.
	assert.Equal(t, 10, f.itemQuantity("pensil"))
}

func TestCreateConsumable_Validation(t *testing.T) {
	f := newFixture()
	f.addItem("pensil", entity.ItemTypeConsumable, 5)
	f.addItem("proyektor", entity.ItemTypeReturnable, 2)
	ctx := context.Background()

	_, err := f.uc.CreateConsumable(ctx, pengguna, dto.CreateConsumableRequest{ItemID: "pensil", Quantity: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.CreateConsumable(ctx, pengguna, dto.CreateConsumableRequest{ItemID: "hilang", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Wrong item type for this workflow.
	_, err = f.uc.CreateConsumable(ctx, pengguna, dto.CreateConsumableRequest{ItemID: "proyektor", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Scenario: asking for more than the stock on hand fails at creation.
	_, err = f.uc.CreateConsumable(ctx, pengguna, dto.CreateConsumableRequest{ItemID: "pensil", Quantity: 6})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateBorrow_StartsPending(t *testing.T) {
	f := newFixture()
	f.addItem("proyektor", entity.ItemTypeReturnable, 5)
	start := time.Now()

	id, err := f.uc.CreateBorrow(context.Background(), pengguna, dto.CreateBorrowRequest{
		ItemID: "proyektor", Quantity: 2, BorrowStartDate: start, DueDate: start.AddDate(0, 0, 7),
	})
	require.NoError(t, err)

	req := f.store.borrows[id]
	assert.Equal(t, workflow.StatusPending, req.Status)
	assert.Equal(t, 0, req.RemainingQuantity, "loan balance opens at handover, not creation")
	assert.Equal(t, 5, f.itemQuantity("proyektor"))
}

func TestCreateBorrow_Validation(t *testing.T) {
	f := newFixture()
	f.addItem("proyektor", entity.ItemTypeReturnable, 2)
	f.addItem("pensil", entity.ItemTypeConsumable, 10)
	ctx := context.Background()
	start := time.Now()
	due := start.AddDate(0, 0, 7)

	_, err := f.uc.CreateBorrow(ctx, pengguna, dto.CreateBorrowRequest{ItemID: "proyektor", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "missing dates")

	_, err = f.uc.CreateBorrow(ctx, pengguna, dto.CreateBorrowRequest{
		ItemID: "proyektor", Quantity: 1, BorrowStartDate: due, DueDate: start,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "due date before start")

	_, err = f.uc.CreateBorrow(ctx, pengguna, dto.CreateBorrowRequest{
		ItemID: "pensil", Quantity: 1, BorrowStartDate: start, DueDate: due,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "consumables cannot be borrowed")

	_, err = f.uc.CreateBorrow(ctx, pengguna, dto.CreateBorrowRequest{
		ItemID: "proyektor", Quantity: 3, BorrowStartDate: start, DueDate: due,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "over available stock")
}

func TestCreateReturn_AgainstActiveLoan(t *testing.T) {
	f := newFixture()
	f.addItem("proyektor", entity.ItemTypeReturnable, 5)
	borrowID := f.activeLoan(t, pengguna, "proyektor", 3)

	id, err := f.uc.CreateReturn(context.Background(), pengguna, dto.CreateReturnRequest{
		BorrowRequestID: borrowID, Quantity: 2,
	})
	require.NoError(t, err)

	req := f.store.returns[id]
	assert.Equal(t, workflow.StatusPending, req.Status)
	assert.Equal(t, "proyektor", req.ItemID)
	assert.Equal(t, borrowID, req.BorrowRequestID)
}

func TestCreateReturn_Validation(t *testing.T) {
	f := newFixture()
	f.addItem("proyektor", entity.ItemTypeReturnable, 5)
	ctx := context.Background()
	borrowID := f.activeLoan(t, pengguna, "proyektor", 3)

	_, err := f.uc.CreateReturn(ctx, pengguna, dto.CreateReturnRequest{BorrowRequestID: "hilang", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Only the borrower may return their own loan.
	other := pengguna
	other.ID = "user-2"
	_, err = f.uc.CreateReturn(ctx, other, dto.CreateReturnRequest{BorrowRequestID: borrowID, Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = f.uc.CreateReturn(ctx, pengguna, dto.CreateReturnRequest{BorrowRequestID: borrowID, Quantity: 4})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "over the remaining loan balance")

	// A loan that was never handed over has nothing to return.
	pendingID, err := f.uc.CreateBorrow(ctx, pengguna, dto.CreateBorrowRequest{
		ItemID: "proyektor", Quantity: 1, BorrowStartDate: time.Now(), DueDate: time.Now().AddDate(0, 0, 7),
	})
	require.NoError(t, err)
	_, err = f.uc.CreateReturn(ctx, pengguna, dto.CreateReturnRequest{BorrowRequestID: pendingID, Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
