package ports

import (
	"context"

	"github.com/Hritesh-panda/rolebasedauthorization/internal/core/domain"
)

// CreateProductInput carries all data needed to create a catalog record.
// Inventory and Ratings are optional: when nil the service fills the
// documented defaults (in stock with zero quantity, zero ratings).
type CreateProductInput struct {
	Name           string
	Brand          string
	Category       string
	Price          float64
	Description    string
	ProductURL     string
	ImageURL       string
	Specifications map[string]string
	Inventory      *domain.Inventory
	Ratings        *domain.Ratings
	Tags           []string
}

// ProductService defines use-case operations for the product catalog.
type ProductService interface {
	List(ctx context.Context, filter ProductFilter) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	Update(ctx context.Context, id string, patch ProductPatch) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
