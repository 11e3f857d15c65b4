package models

import (
	"encoding/json"
	"time"
)

// Product is a catalog entry. The catalog is fixed at startup, so products
// never change after construction.
type Product struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"` // unit price
	Img   string  `json:"img"`   // image URL, opaque to the backend
}

// CartItem is a single line in the cart. Name and Price are snapshotted from
// the product at the moment the item is first added and are not re-synced if
// the catalog changes.
type CartItem struct {
	ID        int64   `json:"id"`        // per-cart id, assigned by the store
	ProductID int64   `json:"productId"` // references a catalog product
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Qty       int     `json:"qty"`
}

// Receipt is produced once at checkout and never stored server-side.
type Receipt struct {
	ReceiptID string          `json:"receiptId"`
	Timestamp time.Time       `json:"timestamp"`
	Items     []CartItem      `json:"items"`
	Total     float64         `json:"total"`
	User      json.RawMessage `json:"user"` // caller-supplied details, passed through as-is
}
