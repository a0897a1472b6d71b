package domain

import "time"

// Category is a named grouping of items. Items reference a category by id;
// membership is always resolved with a live query against the catalog, the
// category itself stores nothing about its items.
type Category struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
