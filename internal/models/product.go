package models

import "time"

// Product represents a sellable catalog item: a custom prescription lens
// variant for a VR headset. Images holds the decoded image URL sequence;
// its serialized storage form is a repository concern.
type Product struct {
	ID          string    `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description *string   `db:"description" json:"description"`
	BasePrice   float64   `db:"base_price" json:"basePrice"`
	Images      []string  `db:"-" json:"images"`
	Active      bool      `db:"active" json:"active"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

// CatalogStats summarizes product visibility for the admin dashboard.
type CatalogStats struct {
	Total    int `db:"total" json:"total"`
	Active   int `db:"active" json:"active"`
	Inactive int `db:"inactive" json:"inactive"`
}
