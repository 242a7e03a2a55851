package domain

import "time"

// Category groups products inside a single store.
type Category struct {
	ID        string
	Name      string
	StoreID   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
