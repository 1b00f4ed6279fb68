package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/sekolahku/inventaris-api/internal/domain/entity"
	"github.com/sekolahku/inventaris-api/internal/domain/repository"
	"github.com/sekolahku/inventaris-api/internal/domain/workflow"
)

var _ repository.BorrowRequestRepository = (*BorrowRequestRepo)(nil)

// BorrowRequestRepo implements BorrowRequestRepository over PostgreSQL
// (usable with pool or tx).
type BorrowRequestRepo struct {
	q Querier
}

// NewBorrowRequestRepository builds the adapter. Pass a pool or a tx.
func NewBorrowRequestRepository(q Querier) *BorrowRequestRepo {
	return &BorrowRequestRepo{q: q}
}

const borrowColumns = `id, item_id, requester_id, quantity, remaining_quantity, request_date,
	borrow_start_date, due_date, status, admin_notes, approver_id, approval_date, returned_date, returned_by`

// Create persists a new borrow request.
func (r *BorrowRequestRepo) Create(ctx context.Context, req *entity.BorrowRequest) error {
	query := `
		INSERT INTO borrow_requests (id, item_id, requester_id, quantity, remaining_quantity, request_date,
			borrow_start_date, due_date, status, admin_notes, approver_id, approval_date, returned_date, returned_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(ctx, query,
		req.ID, req.ItemID, req.RequesterID, req.Quantity, req.RemainingQuantity, req.RequestDate,
		req.BorrowStartDate, req.DueDate, req.Status, req.AdminNotes,
		nullableID(req.ApproverID), req.ApprovalDate, req.ReturnedDate, nullableID(req.ReturnedBy),
	)
	if err != nil {
		return fmt.Errorf("insert borrow request: %w", err)
	}
	return nil
}

// GetByID returns one request, or nil when not found.
func (r *BorrowRequestRepo) GetByID(ctx context.Context, id string) (*entity.BorrowRequest, error) {
	query := `SELECT ` + borrowColumns + ` FROM borrow_requests WHERE id = $1`
	return r.scanOne(ctx, query, id)
}

// GetForUpdate returns the request with its row locked.
func (r *BorrowRequestRepo) GetForUpdate(ctx context.Context, id string) (*entity.BorrowRequest, error) {
	query := `SELECT ` + borrowColumns + ` FROM borrow_requests WHERE id = $1 FOR UPDATE`
	return r.scanOne(ctx, query, id)
}

// Update writes status, approval, loan balance and return fields.
func (r *BorrowRequestRepo) Update(ctx context.Context, req *entity.BorrowRequest) error {
	query := `
		UPDATE borrow_requests
		SET status = $2, admin_notes = $3, approver_id = $4, approval_date = $5,
			remaining_quantity = $6, returned_date = $7, returned_by = $8
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		req.ID, req.Status, req.AdminNotes, nullableID(req.ApproverID), req.ApprovalDate,
		req.RemainingQuantity, req.ReturnedDate, nullableID(req.ReturnedBy),
	)
	if err != nil {
		return fmt.Errorf("update borrow request: %w", err)
	}
	return nil
}

// List returns all borrow requests, newest first.
func (r *BorrowRequestRepo) List(ctx context.Context) ([]*entity.BorrowRequest, error) {
	query := `SELECT ` + borrowColumns + ` FROM borrow_requests ORDER BY request_date DESC`
	return r.scanMany(ctx, query)
}

// ListByRequester returns the requester's own requests, newest first.
func (r *BorrowRequestRepo) ListByRequester(ctx context.Context, requesterID string) ([]*entity.BorrowRequest, error) {
	query := `SELECT ` + borrowColumns + ` FROM borrow_requests WHERE requester_id = $1 ORDER BY request_date DESC`
	return r.scanMany(ctx, query, requesterID)
}

// SumOutstandingByItem totals remaining_quantity per item over active
// loans (status Diproses).
func (r *BorrowRequestRepo) SumOutstandingByItem(ctx context.Context) (map[string]int, error) {
	query := `
		SELECT item_id, COALESCE(SUM(remaining_quantity), 0)
		FROM borrow_requests
		WHERE status = $1
		GROUP BY item_id`
	rows, err := r.q.Query(ctx, query, workflow.StatusDiproses)
	if err != nil {
		return nil, fmt.Errorf("sum outstanding loans: %w", err)
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var itemID string
		var total int
		if err := rows.Scan(&itemID, &total); err != nil {
			return nil, fmt.Errorf("scan outstanding loans: %w", err)
		}
		out[itemID] = total
	}
	return out, rows.Err()
}

func (r *BorrowRequestRepo) scanOne(ctx context.Context, query string, args ...any) (*entity.BorrowRequest, error) {
	row := r.q.QueryRow(ctx, query, args...)
	req, err := scanBorrow(row.Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get borrow request: %w", err)
	}
	return req, nil
}

func (r *BorrowRequestRepo) scanMany(ctx context.Context, query string, args ...any) ([]*entity.BorrowRequest, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list borrow requests: %w", err)
	}
	defer rows.Close()

	var out []*entity.BorrowRequest
	for rows.Next() {
		req, err := scanBorrow(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan borrow request: %w", err)
		}
		out = append(out, req)
	}
	return out, rows.Err()
}

func scanBorrow(scan func(dest ...any) error) (*entity.BorrowRequest, error) {
	var req entity.BorrowRequest
	var approver, returnedBy *string
	err := scan(
		&req.ID, &req.ItemID, &req.RequesterID, &req.Quantity, &req.RemainingQuantity, &req.RequestDate,
		&req.BorrowStartDate, &req.DueDate, &req.Status, &req.AdminNotes,
		&approver, &req.ApprovalDate, &req.ReturnedDate, &returnedBy,
	)
	if err != nil {
		return nil, err
	}
	if approver != nil {
		req.ApproverID = *approver
	}
	if returnedBy != nil {
		req.ReturnedBy = *returnedBy
	}
	return &req, nil
}
