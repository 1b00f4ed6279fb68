package entity

import "time"

// ReturnRequest gives back part or all of an active loan. It is linked to
// the BorrowRequest whose units it returns; approval credits the item stock
// and debits the loan's remaining quantity in the same transaction.
type ReturnRequest struct {
	ID              string
	BorrowRequestID string
	ItemID          string
	RequesterID     string
	Quantity        int // >= 1, <= remaining quantity on the loan
	RequestDate     time.Time
	Status          string
	AdminNotes      string
	ApproverID      string
	ApprovalDate    *time.Time
}
