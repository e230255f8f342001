package domain

import "errors"

var ErrProductNotFound = errors.New("product not found")
var ErrMissingFields = errors.New("name, brand, and category are required")
var ErrStoreCorrupt = errors.New("store document is missing or corrupt")

// Ratings aggregates customer ratings for a product.
type Ratings struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// Inventory tracks stock information for a product.
type Inventory struct {
	InStock   bool   `json:"inStock"`
	Quantity  int    `json:"quantity"`
	Warehouse string `json:"warehouse"`
}

// Product is the core catalog record. The ID is server-assigned
// ("P" + zero-padded sequence) and immutable after creation.
type Product struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Brand          string            `json:"brand"`
	Category       string            `json:"category"`
	Price          float64           `json:"price"`
	Description    string            `json:"description"`
	ProductURL     string            `json:"productUrl"`
	ImageURL       string            `json:"imageUrl"`
	Specifications map[string]string `json:"specifications"`
	Inventory      Inventory         `json:"inventory"`
	Ratings        Ratings           `json:"ratings"`
	Tags           []string          `json:"tags"`
}

// HasRequiredFields reports whether the record carries the fields every
// stored product must have. Checked after a partial-update merge.
func (p Product) HasRequiredFields() bool {
	return p.Name != "" && p.Brand != "" && p.Category != ""
}
