package entity

import "time"

// BorrowRequest asks to take units of a returnable item on loan.
// RemainingQuantity tracks units handed over and not yet returned: it is
// set to Quantity at handover and decremented by approved return requests,
// so stock credits are never applied twice for the same units.
type BorrowRequest struct {
	ID                string
	ItemID            string
	RequesterID       string
	Quantity          int // >= 1
	RemainingQuantity int
	RequestDate       time.Time
	BorrowStartDate   time.Time
	DueDate           time.Time // >= BorrowStartDate
	Status            string
	AdminNotes        string
	ApproverID        string
	ApprovalDate      *time.Time
	ReturnedDate      *time.Time
	ReturnedBy        string
}
