package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/sekolahku/inventaris-api/internal/domain/entity"
	"github.com/sekolahku/inventaris-api/internal/domain/repository"
)

var _ repository.ReturnRequestRepository = (*ReturnRequestRepo)(nil)

// ReturnRequestRepo implements ReturnRequestRepository over PostgreSQL
// (usable with pool or tx).
type ReturnRequestRepo struct {
	q Querier
}

// NewReturnRequestRepository builds the adapter. Pass a pool or a tx.
func NewReturnRequestRepository(q Querier) *ReturnRequestRepo {
	return &ReturnRequestRepo{q: q}
}

const returnColumns = `id, borrow_request_id, item_id, requester_id, quantity, request_date, status, admin_notes, approver_id, approval_date`

// Create persists a new return request.
func (r *ReturnRequestRepo) Create(ctx context.Context, req *entity.ReturnRequest) error {
	query := `
		INSERT INTO return_requests (id, borrow_request_id, item_id, requester_id, quantity, request_date, status, admin_notes, approver_id, approval_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		req.ID, req.BorrowRequestID, req.ItemID, req.RequesterID, req.Quantity,
		req.RequestDate, req.Status, req.AdminNotes, nullableID(req.ApproverID), req.ApprovalDate,
	)
	if err != nil {
		return fmt.Errorf("insert return request: %w", err)
	}
	return nil
}

// GetByID returns one request, or nil when not found.
func (r *ReturnRequestRepo) GetByID(ctx context.Context, id string) (*entity.ReturnRequest, error) {
	query := `SELECT ` + returnColumns + ` FROM return_requests WHERE id = $1`
	return r.scanOne(ctx, query, id)
}

// GetForUpdate returns the request with its row locked.
func (r *ReturnRequestRepo) GetForUpdate(ctx context.Context, id string) (*entity.ReturnRequest, error) {
	query := `SELECT ` + returnColumns + ` FROM return_requests WHERE id = $1 FOR UPDATE`
	return r.scanOne(ctx, query, id)
}

// Update writes status and approval fields.
func (r *ReturnRequestRepo) Update(ctx context.Context, req *entity.ReturnRequest) error {
	query := `
		UPDATE return_requests
		SET status = $2, admin_notes = $3, approver_id = $4, approval_date = $5
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		req.ID, req.Status, req.AdminNotes, nullableID(req.ApproverID), req.ApprovalDate,
	)
	if err != nil {
		return fmt.Errorf("update return request: %w", err)
	}
	return nil
}

// List returns all return requests, newest first.
func (r *ReturnRequestRepo) List(ctx context.Context) ([]*entity.ReturnRequest, error) {
	query := `SELECT ` + returnColumns + ` FROM return_requests ORDER BY request_date DESC`
	return r.scanMany(ctx, query)
}

// ListByRequester returns the requester's own requests, newest first.
func (r *ReturnRequestRepo) ListByRequester(ctx context.Context, requesterID string) ([]*entity.ReturnRequest, error) {
	query := `SELECT ` + returnColumns + ` FROM return_requests WHERE requester_id = $1 ORDER BY request_date DESC`
	return r.scanMany(ctx, query, requesterID)
}

func (r *ReturnRequestRepo) scanOne(ctx context.Context, query string, args ...any) (*entity.ReturnRequest, error) {
	var req entity.ReturnRequest
	var approver *string
	err := r.q.QueryRow(ctx, query, args...).Scan(
		&req.ID, &req.BorrowRequestID, &req.ItemID, &req.RequesterID, &req.Quantity,
		&req.RequestDate, &req.Status, &req.AdminNotes, &approver, &req.ApprovalDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get return request: %w", err)
	}
	if approver != nil {
		req.ApproverID = *approver
	}
	return &req, nil
}

func (r *ReturnRequestRepo) scanMany(ctx context.Context, query string, args ...any) ([]*entity.ReturnRequest, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list return requests: %w", err)
	}
	defer rows.Close()

	var out []*entity.ReturnRequest
	for rows.Next() {
		var req entity.ReturnRequest
		var approver *string
		if err := rows.Scan(
			&req.ID, &req.BorrowRequestID, &req.ItemID, &req.RequesterID, &req.Quantity,
			&req.RequestDate, &req.Status, &req.AdminNotes, &approver, &req.ApprovalDate,
		); err != nil {
			return nil, fmt.Errorf("scan return request: %w", err)
		}
		if approver != nil {
			req.ApproverID = *approver
		}
		out = append(out, &req)
	}
	return out, rows.Err()
}
