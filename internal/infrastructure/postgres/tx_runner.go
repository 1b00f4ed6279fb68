package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sekolahku/inventaris-api/internal/application/requests"
	"github.com/sekolahku/inventaris-api/internal/domain/repository"
)

// Ensure TxRunner implements requests.TxRunner.
var _ requests.TxRunner = (*TxRunner)(nil)

// TxRunner executes callbacks inside a PostgreSQL transaction.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner builds the runner over the pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run begins a transaction, executes fn with repositories bound to that
// transaction and commits, or rolls back if fn fails. Row locks taken via
// the repositories' GetForUpdate hold until commit/rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	itemRepo repository.ItemRepository,
	consumableRepo repository.ConsumableRequestRepository,
	borrowRepo repository.BorrowRequestRepository,
	returnRepo repository.ReturnRequestRepository,
	logRepo repository.TransitionLogRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	err = fn(
		NewItemRepository(tx),
		NewConsumableRequestRepository(tx),
		NewBorrowRequestRepository(tx),
		NewReturnRequestRepository(tx),
		NewTransitionLogRepository(tx),
	)
	if err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
