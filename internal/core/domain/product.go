package domain

import "time"

// Product is a sellable item belonging to exactly one category.
//
// Code is the v1 string identifier (e.g. "PROD-011"); NumericCode is the v2
// integer form of the same field. Both are kept so the v1 and v2 APIs can be
// served from the same document.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Status      bool      `json:"status"`
	Code        string    `json:"code"`
	NumericCode int       `json:"numeric_code"`
	CategoryID  string    `json:"category_id"`
	Category    *Category `json:"category,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Category groups products.
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
