package models

import "time"

// Sale: one recorded sale. ProductName/CustomerName are snapshots taken at
// sale time; later renames or deletes do not rewrite them.
type Sale struct {
	ID           string    `json:"id"`
	ProductID    string    `json:"productId"`
	ProductName  string    `json:"productName"`
	CustomerID   string    `json:"customerId,omitempty"`
	CustomerName string    `json:"customerName,omitempty"`
	Quantity     int       `json:"quantity"`
	UnitPrice    float64   `json:"unitPrice"`
	TotalPrice   float64   `json:"totalPrice"`
	Profit       float64   `json:"profit"`
	CreatedAt    time.Time `json:"createdAt"`
}
