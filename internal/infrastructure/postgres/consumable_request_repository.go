package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/sekolahku/inventaris-api/internal/domain/entity"
	"github.com/sekolahku/inventaris-api/internal/domain/repository"
)

var _ repository.ConsumableRequestRepository = (*ConsumableRequestRepo)(nil)

// ConsumableRequestRepo implements ConsumableRequestRepository over
// PostgreSQL (usable with pool or tx).
type ConsumableRequestRepo struct {
	q Querier
}

// NewConsumableRequestRepository builds the adapter. Pass a pool or a tx.
func NewConsumableRequestRepository(q Querier) *ConsumableRequestRepo {
	return &ConsumableRequestRepo{q: q}
}

const consumableColumns = `id, item_id, requester_id, quantity, request_date, status, admin_notes, approver_id, approval_date`

// Create persists a new consumable request.
func (r *ConsumableRequestRepo) Create(ctx context.Context, req *entity.ConsumableRequest) error {
	query := `
		INSERT INTO consumable_requests (id, item_id, requester_id, quantity, request_date, status, admin_notes, approver_id, approval_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		req.ID, req.ItemID, req.RequesterID, req.Quantity, req.RequestDate,
		req.Status, req.AdminNotes, nullableID(req.ApproverID), req.ApprovalDate,
	)
	if err != nil {
		return fmt.Errorf("insert consumable request: %w", err)
	}
	return nil
}

// GetByID returns one request, or nil when not found.
func (r *ConsumableRequestRepo) GetByID(ctx context.Context, id string) (*entity.ConsumableRequest, error) {
	query := `SELECT ` + consumableColumns + ` FROM consumable_requests WHERE id = $1`
	return r.scanOne(ctx, query, id)
}

// GetForUpdate returns the request with its row locked, so transitions on
// the same request are serialized.
func (r *ConsumableRequestRepo) GetForUpdate(ctx context.Context, id string) (*entity.ConsumableRequest, error) {
	query := `SELECT ` + consumableColumns + ` FROM consumable_requests WHERE id = $1 FOR UPDATE`
	return r.scanOne(ctx, query, id)
}

// Update writes status and approval fields.
func (r *ConsumableRequestRepo) Update(ctx context.Context, req *entity.ConsumableRequest) error {
	query := `
		UPDATE consumable_requests
		SET status = $2, admin_notes = $3, approver_id = $4, approval_date = $5
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		req.ID, req.Status, req.AdminNotes, nullableID(req.ApproverID), req.ApprovalDate,
	)
	if err != nil {
		return fmt.Errorf("update consumable request: %w", err)
	}
	return nil
}

// List returns all consumable requests, newest first.
func (r *ConsumableRequestRepo) List(ctx context.Context) ([]*entity.ConsumableRequest, error) {
	query := `SELECT ` + consumableColumns + ` FROM consumable_requests ORDER BY request_date DESC`
	return r.scanMany(ctx, query)
}

// ListByRequester returns the requester's own requests, newest first.
func (r *ConsumableRequestRepo) ListByRequester(ctx context.Context, requesterID string) ([]*entity.ConsumableRequest, error) {
	query := `SELECT ` + consumableColumns + ` FROM consumable_requests WHERE requester_id = $1 ORDER BY request_date DESC`
	return r.scanMany(ctx, query, requesterID)
}

func (r *ConsumableRequestRepo) scanOne(ctx context.Context, query string, args ...any) (*entity.ConsumableRequest, error) {
	var req entity.ConsumableRequest
	var approver *string
	err := r.q.QueryRow(ctx, query, args...).Scan(
		&req.ID, &req.ItemID, &req.RequesterID, &req.Quantity, &req.RequestDate,
		&req.Status, &req.AdminNotes, &approver, &req.ApprovalDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get consumable request: %w", err)
	}
	if approver != nil {
		req.ApproverID = *approver
	}
	return &req, nil
}

func (r *ConsumableRequestRepo) scanMany(ctx context.Context, query string, args ...any) ([]*entity.ConsumableRequest, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list consumable requests: %w", err)
	}
	defer rows.Close()

	var out []*entity.ConsumableRequest
	for rows.Next() {
		var req entity.ConsumableRequest
		var approver *string
		if err := rows.Scan(
			&req.ID, &req.ItemID, &req.RequesterID, &req.Quantity, &req.RequestDate,
			&req.Status, &req.AdminNotes, &approver, &req.ApprovalDate,
		); err != nil {
			return nil, fmt.Errorf("scan consumable request: %w", err)
		}
		if approver != nil {
			req.ApproverID = *approver
		}
		out = append(out, &req)
	}
	return out, rows.Err()
}

// nullableID maps an empty string to NULL for FK columns.
func nullableID(id string) *string {
	if id == "" {
		return nil
	}
	return &id
}
