package requests

import (
	"context"

	"github.com/sekolahku/inventaris-api/internal/domain"
	"github.com/sekolahku/inventaris-api/internal/domain/entity"
	"github.com/sekolahku/inventaris-api/internal/domain/repository"
	"github.com/sekolahku/inventaris-api/internal/domain/workflow"
)

// UseCase is the request-workflow engine: creation, role-gated transitions
// and the inventory reconciliation tied to specific edges.
type UseCase struct {
	tx          TxRunner
	items       repository.ItemRepository
	consumables repository.ConsumableRequestRepository
	borrows     repository.BorrowRequestRepository
	returns     repository.ReturnRequestRepository
	log         repository.TransitionLogRepository
	notifier    Notifier
}

// NewUseCase builds the engine. Pass NopNotifier{} when no sink is configured.
func NewUseCase(
	tx TxRunner,
	items repository.ItemRepository,
	consumables repository.ConsumableRequestRepository,
	borrows repository.BorrowRequestRepository,
	returns repository.ReturnRequestRepository,
	log repository.TransitionLogRepository,
	notifier Notifier,
) *UseCase {
	return &UseCase{
		tx:          tx,
		items:       items,
		consumables: consumables,
		borrows:     borrows,
		returns:     returns,
		log:         log,
		notifier:    notifier,
	}
}

// PermittedTransitions returns the target statuses the role may move the
// request to from its current status. Empty for terminal states and for
// roles without authority over the current status.
func (uc *UseCase) PermittedTransitions(ctx context.Context, role entity.Role, kind workflow.Kind, requestID string) ([]string, error) {
	status, err := uc.currentStatus(ctx, kind, requestID)
	if err != nil {
		return nil, err
	}
	return workflow.PermittedTransitions(role, kind, status), nil
}

func (uc *UseCase) currentStatus(ctx context.Context, kind workflow.Kind, requestID string) (string, error) {
	switch kind {
	case workflow.KindConsumable:
		req, err := uc.consumables.GetByID(ctx, requestID)
		if err != nil {
			return "", err
		}
		if req == nil {
			return "", domain.ErrNotFound
		}
		return req.Status, nil
	case workflow.KindBorrow:
		req, err := uc.borrows.GetByID(ctx, requestID)
		if err != nil {
			return "", err
		}
		if req == nil {
			return "", domain.ErrNotFound
		}
		return req.Status, nil
	case workflow.KindReturn:
		req, err := uc.returns.GetByID(ctx, requestID)
		if err != nil {
			return "", err
		}
		if req == nil {
			return "", domain.ErrNotFound
		}
		return req.Status, nil
	}
	return "", domain.ErrInvalidInput
}

// canSeeAll reports whether the role may read requests it did not submit.
func canSeeAll(role entity.Role) bool {
	return role == entity.RoleAdmin || role == entity.RoleHeadmaster
}

// GetConsumable returns one consumable request. Pengguna may only read
// their own.
func (uc *UseCase) GetConsumable(ctx context.Context, actor Actor, id string) (*entity.ConsumableRequest, error) {
	req, err := uc.consumables.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, domain.ErrNotFound
	}
	if !canSeeAll(actor.Role) && req.RequesterID != actor.ID {
		return nil, domain.ErrForbidden
	}
	return req, nil
}

// GetBorrow returns one borrow request. Pengguna may only read their own.
func (uc *UseCase) GetBorrow(ctx context.Context, actor Actor, id string) (*entity.BorrowRequest, error) {
	req, err := uc.borrows.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, domain.ErrNotFound
	}
	if !canSeeAll(actor.Role) && req.RequesterID != actor.ID {
		return nil, domain.ErrForbidden
	}
	return req, nil
}

// GetReturn returns one return request. Pengguna may only read their own.
func (uc *UseCase) GetReturn(ctx context.Context, actor Actor, id string) (*entity.ReturnRequest, error) {
	req, err := uc.returns.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, domain.ErrNotFound
	}
	if !canSeeAll(actor.Role) && req.RequesterID != actor.ID {
		return nil, domain.ErrForbidden
	}
	return req, nil
}

// ListConsumables lists all consumable requests for Admin and Kepala
// Sekolah, and the caller's own otherwise.
func (uc *UseCase) ListConsumables(ctx context.Context, actor Actor) ([]*entity.ConsumableRequest, error) {
	if canSeeAll(actor.Role) {
		return uc.consumables.List(ctx)
	}
	return uc.consumables.ListByRequester(ctx, actor.ID)
}

// ListBorrows lists borrow requests with the same visibility rule.
func (uc *UseCase) ListBorrows(ctx context.Context, actor Actor) ([]*entity.BorrowRequest, error) {
	if canSeeAll(actor.Role) {
		return uc.borrows.List(ctx)
	}
	return uc.borrows.ListByRequester(ctx, actor.ID)
}

// ListReturns lists return requests with the same visibility rule.
func (uc *UseCase) ListReturns(ctx context.Context, actor Actor) ([]*entity.ReturnRequest, error) {
	if canSeeAll(actor.Role) {
		return uc.returns.List(ctx)
	}
	return uc.returns.ListByRequester(ctx, actor.ID)
}

// History returns the audit trail of a request.
func (uc *UseCase) History(ctx context.Context, actor Actor, kind workflow.Kind, requestID string) ([]*entity.TransitionEvent, error) {
	if !kind.IsValid() {
		return nil, domain.ErrInvalidInput
	}
	if !canSeeAll(actor.Role) {
		// Ownership check piggybacks on the getter.
		var err error
		switch kind {
		case workflow.KindConsumable:
			_, err = uc.GetConsumable(ctx, actor, requestID)
		case workflow.KindBorrow:
			_, err = uc.GetBorrow(ctx, actor, requestID)
		case workflow.KindReturn:
			_, err = uc.GetReturn(ctx, actor, requestID)
		}
		if err != nil {
			return nil, err
		}
	}
	return uc.log.ListByRequest(ctx, string(kind), requestID)
}
