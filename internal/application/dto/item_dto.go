package dto

import "time"

// CreateItemRequest body for Admin item creation.
type CreateItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	Type        string `json:"type"` // consumable | returnable
}

// UpdateItemRequest body for Admin item edits. Quantity here is the
// provisioned count; workflow-driven adjustments go through transitions.
type UpdateItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	Type        string `json:"type"`
}

// ItemResponse wire shape of an item.
type ItemResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Quantity    int       `json:"quantity"`
	Type        string    `json:"type"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// InventoryReportRow is one line of the monitoring report: current stock
// plus units still out on loan for an item.
type InventoryReportRow struct {
	ItemID      string `json:"item_id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	InStock     int    `json:"in_stock"`
	Outstanding int    `json:"outstanding_borrowed"`
}
