package models

import "time"

// StockImport is an append-only ledger entry recording inventory received.
// Entries are never edited or deleted after creation.
type StockImport struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	Quantity  int       `json:"quantity"`
	UnitCost  int64     `json:"unit_cost"`
	TotalCost int64     `json:"total_cost"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ImportStockRequest is the payload for recording a stock import.
type ImportStockRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
	UnitCost  int64  `json:"unit_cost" binding:"gte=0"`
	Note      string `json:"note"`
}
