package entity

import "time"

// Item types. Consumables are used up when a request is processed;
// returnables go out on loan and come back into stock.
const (
	ItemTypeConsumable = "consumable"
	ItemTypeReturnable = "returnable"
)

// Item is a stock unit managed by the Admin. Quantity is the only
// authoritative count of units currently available (not out on loan
// and not consumed).
type Item struct {
	ID          string
	Name        string
	Description string
	Quantity    int // always >= 0
	Type        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsValidItemType reports whether t is one of the known item types.
func IsValidItemType(t string) bool {
	return t == ItemTypeConsumable || t == ItemTypeReturnable
}
