package repository

import (
	"context"

	"github.com/sekolahku/inventaris-api/internal/domain/entity"
)

// ConsumableRequestRepository is the persistence port for consumable
// requests. GetForUpdate locks the row so a transition is serialized
// per request.
type ConsumableRequestRepository interface {
	Create(ctx context.Context, req *entity.ConsumableRequest) error
	GetByID(ctx context.Context, id string) (*entity.ConsumableRequest, error)
	GetForUpdate(ctx context.Context, id string) (*entity.ConsumableRequest, error)
	Update(ctx context.Context, req *entity.ConsumableRequest) error
	List(ctx context.Context) ([]*entity.ConsumableRequest, error)
	ListByRequester(ctx context.Context, requesterID string) ([]*entity.ConsumableRequest, error)
}

// BorrowRequestRepository is the persistence port for borrow requests.
type BorrowRequestRepository interface {
	Create(ctx context.Context, req *entity.BorrowRequest) error
	GetByID(ctx context.Context, id string) (*entity.BorrowRequest, error)
	GetForUpdate(ctx context.Context, id string) (*entity.BorrowRequest, error)
	Update(ctx context.Context, req *entity.BorrowRequest) error
	List(ctx context.Context) ([]*entity.BorrowRequest, error)
	ListByRequester(ctx context.Context, requesterID string) ([]*entity.BorrowRequest, error)
	// SumOutstandingByItem returns, per item, the total quantity handed
	// over and not yet returned. Used by the monitoring report.
	SumOutstandingByItem(ctx context.Context) (map[string]int, error)
}

// ReturnRequestRepository is the persistence port for return requests.
type ReturnRequestRepository interface {
	Create(ctx context.Context, req *entity.ReturnRequest) error
	GetByID(ctx context.Context, id string) (*entity.ReturnRequest, error)
	GetForUpdate(ctx context.Context, id string) (*entity.ReturnRequest, error)
	Update(ctx context.Context, req *entity.ReturnRequest) error
	List(ctx context.Context) ([]*entity.ReturnRequest, error)
	ListByRequester(ctx context.Context, requesterID string) ([]*entity.ReturnRequest, error)
}

// TransitionLogRepository appends audit records for request transitions.
// Append runs inside the same transaction as the transition it records.
type TransitionLogRepository interface {
	Append(ctx context.Context, event *entity.TransitionEvent) error
	ListByRequest(ctx context.Context, kind, requestID string) ([]*entity.TransitionEvent, error)
}
