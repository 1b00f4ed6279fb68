package dto

import "time"

// CreateConsumableRequest body for submitting a consumable request.
type CreateConsumableRequest struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// CreateBorrowRequest body for submitting a borrow request.
type CreateBorrowRequest struct {
	ItemID          string    `json:"item_id"`
	Quantity        int       `json:"quantity"`
	BorrowStartDate time.Time `json:"borrow_start_date"`
	DueDate         time.Time `json:"due_date"`
}

// CreateReturnRequest body for submitting a return request against a loan.
type CreateReturnRequest struct {
	BorrowRequestID string `json:"borrow_request_id"`
	Quantity        int    `json:"quantity"`
}

// TransitionRequest body for moving a request to a new status.
type TransitionRequest struct {
	TargetStatus string `json:"target_status"`
	Notes        string `json:"notes"`
}

// ConsumableRequestResponse wire shape of a consumable request.
type ConsumableRequestResponse struct {
	ID           string     `json:"id"`
	ItemID       string     `json:"item_id"`
	RequesterID  string     `json:"requester_id"`
	Quantity     int        `json:"quantity"`
	RequestDate  time.Time  `json:"request_date"`
	Status       string     `json:"status"`
	AdminNotes   string     `json:"admin_notes,omitempty"`
	ApproverID   string     `json:"approver_id,omitempty"`
	ApprovalDate *time.Time `json:"approval_date,omitempty"`
}

// BorrowRequestResponse wire shape of a borrow request.
type BorrowRequestResponse struct {
	ID                string     `json:"id"`
	ItemID            string     `json:"item_id"`
	RequesterID       string     `json:"requester_id"`
	Quantity          int        `json:"quantity"`
	RemainingQuantity int        `json:"remaining_quantity"`
	RequestDate       time.Time  `json:"request_date"`
	BorrowStartDate   time.Time  `json:"borrow_start_date"`
	DueDate           time.Time  `json:"due_date"`
	Status            string     `json:"status"`
	AdminNotes        string     `json:"admin_notes,omitempty"`
	ApproverID        string     `json:"approver_id,omitempty"`
	ApprovalDate      *time.Time `json:"approval_date,omitempty"`
	ReturnedDate      *time.Time `json:"returned_date,omitempty"`
	ReturnedBy        string     `json:"returned_by,omitempty"`
}

// ReturnRequestResponse wire shape of a return request.
type ReturnRequestResponse struct {
	ID              string     `json:"id"`
	BorrowRequestID string     `json:"borrow_request_id"`
	ItemID          string     `json:"item_id"`
	RequesterID     string     `json:"requester_id"`
	Quantity        int        `json:"quantity"`
	RequestDate     time.Time  `json:"request_date"`
	Status          string     `json:"status"`
	AdminNotes      string     `json:"admin_notes,omitempty"`
	ApproverID      string     `json:"approver_id,omitempty"`
	ApprovalDate    *time.Time `json:"approval_date,omitempty"`
}

// TransitionEventResponse wire shape of an audit record.
type TransitionEventResponse struct {
	ID            string    `json:"id"`
	RequestKind   string    `json:"request_kind"`
	RequestID     string    `json:"request_id"`
	ItemID        string    `json:"item_id"`
	ActorID       string    `json:"actor_id"`
	ActorRole     string    `json:"actor_role"`
	FromStatus    string    `json:"from_status"`
	ToStatus      string    `json:"to_status"`
	QuantityDelta int       `json:"quantity_delta"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
