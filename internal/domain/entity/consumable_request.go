package entity

import "time"

// ConsumableRequest asks for units of a consumable item. Approved stock
// is debited once, at final Admin processing, never at headmaster approval.
type ConsumableRequest struct {
	ID           string
	ItemID       string
	RequesterID  string
	Quantity     int // >= 1
	RequestDate  time.Time
	Status       string
	AdminNotes   string
	ApproverID   string
	ApprovalDate *time.Time
}
