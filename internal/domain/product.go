package domain

import "time"

// Product is a sellable item owned by a store and optionally assigned
// to one of the store's categories.
type Product struct {
	ID           string
	Name         string
	Description  string
	SKU          string
	MRP          float64
	SellingPrice float64
	Brand        string
	Image        string
	StoreID      string
	CategoryID   *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
