package ports

import (
	"context"

	"github.com/Hritesh-panda/rolebasedauthorization/internal/core/domain"
)

// ProductFilter carries the optional list predicates. Category and brand are
// case-insensitive exact matches, price bounds are inclusive, and all set
// predicates compose with AND. A nil bound or empty string imposes no
// constraint.
type ProductFilter struct {
	Category string
	Brand    string
	MinPrice *float64
	MaxPrice *float64
}

// ProductPatch is a partial update. Nil fields leave the stored value
// untouched; set fields replace it wholesale (shallow merge). The record id
// cannot be patched.
type ProductPatch struct {
	Name           *string
	Brand          *string
	Category       *string
	Price          *float64
	Description    *string
	ProductURL     *string
	ImageURL       *string
	Specifications map[string]string
	Inventory      *domain.Inventory
	Ratings        *domain.Ratings
	Tags           []string
}

// ProductRepository defines persistence operations for the product catalog.
// List preserves store (insertion) order; sorting is a client concern.
type ProductRepository interface {
	List(ctx context.Context, filter ProductFilter) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	// Create assigns the next id in the document's monotonic sequence and
	// persists the record. The input's ID field is ignored.
	Create(ctx context.Context, p domain.Product) (*domain.Product, error)
	// Update shallow-merges patch over the stored record, keeping its index.
	// Fails with domain.ErrMissingFields when the merged record lacks a
	// name, brand, or category.
	Update(ctx context.Context, id string, patch ProductPatch) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
