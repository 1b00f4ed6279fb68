package postgres

import (
	"context"
	"fmt"

	"github.com/sekolahku/inventaris-api/internal/domain/entity"
	"github.com/sekolahku/inventaris-api/internal/domain/repository"
)

var _ repository.TransitionLogRepository = (*TransitionLogRepo)(nil)

// TransitionLogRepo implements TransitionLogRepository over PostgreSQL.
// Append is called inside the transition's transaction so the audit trail
// never diverges from the state it records.
type TransitionLogRepo struct {
	q Querier
}

// NewTransitionLogRepository builds the adapter. Pass a pool or a tx.
func NewTransitionLogRepository(q Querier) *TransitionLogRepo {
	return &TransitionLogRepo{q: q}
}

// Append inserts one audit record.
func (r *TransitionLogRepo) Append(ctx context.Context, event *entity.TransitionEvent) error {
	query := `
		INSERT INTO transition_log (id, request_kind, request_id, item_id, actor_id, actor_role,
			from_status, to_status, quantity_delta, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		event.ID, event.RequestKind, event.RequestID, event.ItemID, event.ActorID,
		event.ActorRole.String(), event.FromStatus, event.ToStatus, event.QuantityDelta,
		event.Notes, event.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transition log: %w", err)
	}
	return nil
}

// ListByRequest returns a request's audit trail in chronological order.
func (r *TransitionLogRepo) ListByRequest(ctx context.Context, kind, requestID string) ([]*entity.TransitionEvent, error) {
	query := `
		SELECT id, request_kind, request_id, item_id, actor_id, actor_role,
			from_status, to_status, quantity_delta, notes, created_at
		FROM transition_log
		WHERE request_kind = $1 AND request_id = $2
		ORDER BY created_at`
	rows, err := r.q.Query(ctx, query, kind, requestID)
	if err != nil {
		return nil, fmt.Errorf("list transition log: %w", err)
	}
	defer rows.Close()

	var out []*entity.TransitionEvent
	for rows.Next() {
		var ev entity.TransitionEvent
		var role string
		if err := rows.Scan(
			&ev.ID, &ev.RequestKind, &ev.RequestID, &ev.ItemID, &ev.ActorID, &role,
			&ev.FromStatus, &ev.ToStatus, &ev.QuantityDelta, &ev.Notes, &ev.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan transition log: %w", err)
		}
		ev.ActorRole = entity.Role(role)
		out = append(out, &ev)
	}
	return out, rows.Err()
}
