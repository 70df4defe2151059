package models

import "time"

type MovementType string

const (
	MovementAdd    MovementType = "add"    // increase by quantity
	MovementAdjust MovementType = "adjust" // absolute set to quantity
	MovementSale   MovementType = "sale"   // decrease by quantity, clamped at 0
)

// StockLevel: current on-hand quantity, one row per existing product.
// ProductName is a denormalized snapshot kept in sync on rename.
type StockLevel struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
}

// StockEntry: immutable history record of one quantity change.
// Quantity holds the new absolute level for "adjust" (no natural delta),
// the movement magnitude otherwise.
type StockEntry struct {
	ID               string       `json:"id"`
	ProductID        string       `json:"productId"`
	ProductName      string       `json:"productName"`
	Type             MovementType `json:"type"`
	Quantity         int          `json:"quantity"`
	PreviousQuantity int          `json:"previousQuantity"`
	NewQuantity      int          `json:"newQuantity"`
	Notes            string       `json:"notes,omitempty"`
	CreatedAt        time.Time    `json:"createdAt"`
}
