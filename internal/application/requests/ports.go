package requests

import (
	"context"

	"github.com/sekolahku/inventaris-api/internal/domain/entity"
	"github.com/sekolahku/inventaris-api/internal/domain/repository"
)

// Actor is the authenticated caller of a core operation. It is always
// passed explicitly; the core never reads identity or role from any
// ambient state.
type Actor struct {
	ID   string
	Role entity.Role
}

// TxRunner runs fn inside a database transaction, handing it repositories
// bound to that transaction. A transition's status write, item quantity
// adjustment and audit record all commit or roll back together.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.ItemRepository,
		consumableRepo repository.ConsumableRequestRepository,
		borrowRepo repository.BorrowRequestRepository,
		returnRepo repository.ReturnRequestRepository,
		logRepo repository.TransitionLogRepository,
	) error) error
}

// Notifier receives transition events after commit. Fire-and-forget: a
// failing notifier must never roll back or fail the transition.
type Notifier interface {
	RequestTransitioned(ctx context.Context, event *entity.TransitionEvent)
}

// NopNotifier discards events. Used when no notification sink is configured.
type NopNotifier struct{}

// RequestTransitioned does nothing.
func (NopNotifier) RequestTransitioned(context.Context, *entity.TransitionEvent) {}
