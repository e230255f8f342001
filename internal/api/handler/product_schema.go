package handler

import "github.com/Hritesh-panda/rolebasedauthorization/internal/core/domain"

// errorResponse is the error envelope returned on all 4xx/5xx responses.
// Cause carries the underlying message only for storage failures.
type errorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Cause   string `json:"error,omitempty"`
}

// --- Request types ---

type inventoryRequest struct {
	InStock   bool   `json:"inStock"`
	Quantity  int    `json:"quantity"  validate:"gte=0"`
	Warehouse string `json:"warehouse"`
}

type ratingsRequest struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

type createProductRequest struct {
	Name           string            `json:"name"     validate:"required"`
	Brand          string            `json:"brand"    validate:"required"`
	Category       string            `json:"category" validate:"required"`
	Price          float64           `json:"price"    validate:"gte=0"`
	Description    string            `json:"description"`
	ProductURL     string            `json:"productUrl"`
	ImageURL       string            `json:"imageUrl"`
	Specifications map[string]string `json:"specifications"`
	Inventory      *inventoryRequest `json:"inventory"`
	Ratings        *ratingsRequest   `json:"ratings"`
	Tags           []string          `json:"tags"`
}

// updateProductRequest is a partial update: absent fields stay untouched.
// The required-field rule is checked against the merged record, not against
// the patch, so no field here is individually required.
type updateProductRequest struct {
	Name           *string           `json:"name"`
	Brand          *string           `json:"brand"`
	Category       *string           `json:"category"`
	Price          *float64          `json:"price" validate:"omitempty,gte=0"`
	Description    *string           `json:"description"`
	ProductURL     *string           `json:"productUrl"`
	ImageURL       *string           `json:"imageUrl"`
	Specifications map[string]string `json:"specifications"`
	Inventory      *inventoryRequest `json:"inventory"`
	Ratings        *ratingsRequest   `json:"ratings"`
	Tags           []string          `json:"tags"`
}

// --- Response types ---
// Stored products go over the wire as-is; domain.Product's json tags are the
// API contract for this admin tool, so the envelopes embed it directly.

type listProductsResponse struct {
	Status string           `json:"status"`
	Count  int              `json:"count"`
	Data   []domain.Product `json:"data"`
}

type productResponse struct {
	Status string         `json:"status"`
	Data   domain.Product `json:"data"`
}

type deleteProductResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	ID      string `json:"id"`
}
