package requests

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sekolahku/inventaris-api/internal/domain"
	"github.com/sekolahku/inventaris-api/internal/domain/entity"
	"github.com/sekolahku/inventaris-api/internal/domain/repository"
	"github.com/sekolahku/inventaris-api/internal/domain/workflow"
)

// Transition moves a request to target inside one database transaction:
// the request row is locked, the successor table and the authority
// resolver are re-checked against the locked status, the status fields are
// written, the item quantity is adjusted for effect-bearing edges (with a
// floor check under the item row lock), and the audit record is appended.
// Everything commits or rolls back together.
//
// The locked-status precondition doubles as the idempotency guard: a
// duplicate call observes the advanced status and fails with
// ErrInvalidTransition, leaving quantity untouched.
func (uc *UseCase) Transition(ctx context.Context, kind workflow.Kind, requestID string, actor Actor, target, notes string) error {
	if !kind.IsValid() || requestID == "" || target == "" {
		return domain.ErrInvalidInput
	}
	if !actor.Role.IsValid() {
		return domain.ErrForbidden
	}

	var event *entity.TransitionEvent
	err := uc.tx.Run(ctx, func(
		itemRepo repository.ItemRepository,
		consumableRepo repository.ConsumableRequestRepository,
		borrowRepo repository.BorrowRequestRepository,
		returnRepo repository.ReturnRequestRepository,
		logRepo repository.TransitionLogRepository,
	) error {
		var err error
		switch kind {
		case workflow.KindConsumable:
			event, err = uc.transitionConsumable(ctx, itemRepo, consumableRepo, requestID, actor, target, notes)
		case workflow.KindBorrow:
			event, err = uc.transitionBorrow(ctx, itemRepo, borrowRepo, requestID, actor, target, notes)
		case workflow.KindReturn:
			event, err = uc.transitionReturn(ctx, itemRepo, borrowRepo, returnRepo, requestID, actor, target, notes)
		}
		if err != nil {
			return err
		}
		return logRepo.Append(ctx, event)
	})
	if err != nil {
		return err
	}

	// Best effort: a failing sink never undoes a committed transition.
	uc.notifier.RequestTransitioned(ctx, event)
	return nil
}

func (uc *UseCase) transitionConsumable(
	ctx context.Context,
	itemRepo repository.ItemRepository,
	repo repository.ConsumableRequestRepository,
	requestID string, actor Actor, target, notes string,
) (*entity.TransitionEvent, error) {
	req, err := repo.GetForUpdate(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, domain.ErrNotFound
	}
	from := req.Status
	if err := checkEdge(workflow.KindConsumable, from, target, actor.Role); err != nil {
		return nil, err
	}

	now := time.Now()
	req.Status = target
	req.AdminNotes = notes
	req.ApproverID = actor.ID
	req.ApprovalDate = &now

	delta := 0
	if workflow.TransitionEffect(workflow.KindConsumable, from, target) == workflow.EffectDebit {
		delta = -req.Quantity
		if err := uc.adjustItem(ctx, itemRepo, req.ItemID, delta); err != nil {
			return nil, err
		}
	}
	if err := repo.Update(ctx, req); err != nil {
		return nil, err
	}
	return newEvent(workflow.KindConsumable, req.ID, req.ItemID, actor, from, target, delta, notes, now), nil
}

func (uc *UseCase) transitionBorrow(
	ctx context.Context,
	itemRepo repository.ItemRepository,
	repo repository.BorrowRequestRepository,
	requestID string, actor Actor, target, notes string,
) (*entity.TransitionEvent, error) {
	req, err := repo.GetForUpdate(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, domain.ErrNotFound
	}
	from := req.Status
	if err := checkEdge(workflow.KindBorrow, from, target, actor.Role); err != nil {
		return nil, err
	}

	now := time.Now()
	req.Status = target
	req.AdminNotes = notes
	req.ApproverID = actor.ID
	req.ApprovalDate = &now

	delta := 0
	switch workflow.TransitionEffect(workflow.KindBorrow, from, target) {
	case workflow.EffectDebit:
		// Handover: commit stock and open the loan balance.
		delta = -req.Quantity
		req.RemainingQuantity = req.Quantity
		if err := uc.adjustItem(ctx, itemRepo, req.ItemID, delta); err != nil {
			return nil, err
		}
	case workflow.EffectCredit:
		// Receipt: credit only what is still out; approved return
		// requests already gave their share back.
		delta = req.RemainingQuantity
		req.RemainingQuantity = 0
		req.ReturnedDate = &now
		req.ReturnedBy = actor.ID
		if delta != 0 {
			if err := uc.adjustItem(ctx, itemRepo, req.ItemID, delta); err != nil {
				return nil, err
			}
		}
	}
	if err := repo.Update(ctx, req); err != nil {
		return nil, err
	}
	return newEvent(workflow.KindBorrow, req.ID, req.ItemID, actor, from, target, delta, notes, now), nil
}

func (uc *UseCase) transitionReturn(
	ctx context.Context,
	itemRepo repository.ItemRepository,
	borrowRepo repository.BorrowRequestRepository,
	repo repository.ReturnRequestRepository,
	requestID string, actor Actor, target, notes string,
) (*entity.TransitionEvent, error) {
	req, err := repo.GetForUpdate(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, domain.ErrNotFound
	}
	from := req.Status
	if err := checkEdge(workflow.KindReturn, from, target, actor.Role); err != nil {
		return nil, err
	}

	now := time.Now()
	req.Status = target
	req.AdminNotes = notes
	req.ApproverID = actor.ID
	req.ApprovalDate = &now

	delta := 0
	if workflow.TransitionEffect(workflow.KindReturn, from, target) == workflow.EffectCredit {
		borrow, err := borrowRepo.GetForUpdate(ctx, req.BorrowRequestID)
		if err != nil {
			return nil, err
		}
		if borrow == nil {
			return nil, domain.ErrNotFound
		}
		// Re-checked under the lock: a concurrent return against the
		// same loan may have drained the balance since creation.
		if req.Quantity > borrow.RemainingQuantity {
			return nil, fmt.Errorf("%w: kuantitas melebihi sisa pinjaman", domain.ErrInvalidTransition)
		}
		borrow.RemainingQuantity -= req.Quantity
		if err := borrowRepo.Update(ctx, borrow); err != nil {
			return nil, err
		}
		delta = req.Quantity
		if err := uc.adjustItem(ctx, itemRepo, req.ItemID, delta); err != nil {
			return nil, err
		}
	}
	if err := repo.Update(ctx, req); err != nil {
		return nil, err
	}
	return newEvent(workflow.KindReturn, req.ID, req.ItemID, actor, from, target, delta, notes, now), nil
}

// checkEdge validates the successor table before authority, so a stale or
// duplicate call reports ErrInvalidTransition rather than ErrForbidden.
func checkEdge(kind workflow.Kind, from, target string, role entity.Role) error {
	if !workflow.CanTransition(kind, from, target) {
		return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, from, target)
	}
	if !workflow.IsPermitted(role, kind, from, target) {
		return domain.ErrForbidden
	}
	return nil
}

// adjustItem applies a signed stock delta under the item row lock,
// rejecting any write that would drive quantity negative.
func (uc *UseCase) adjustItem(ctx context.Context, itemRepo repository.ItemRepository, itemID string, delta int) error {
	item, err := itemRepo.GetForUpdate(ctx, itemID)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	newQty := item.Quantity + delta
	if newQty < 0 {
		return domain.ErrInsufficientStock
	}
	return itemRepo.UpdateQuantity(ctx, itemID, newQty)
}

func newEvent(kind workflow.Kind, requestID, itemID string, actor Actor, from, to string, delta int, notes string, at time.Time) *entity.TransitionEvent {
	return &entity.TransitionEvent{
		ID:            uuid.New().String(),
		RequestKind:   string(kind),
		RequestID:     requestID,
		ItemID:        itemID,
		ActorID:       actor.ID,
		ActorRole:     actor.Role,
		FromStatus:    from,
		ToStatus:      to,
		QuantityDelta: delta,
		Notes:         notes,
		CreatedAt:     at,
	}
}
