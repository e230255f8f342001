package handler

import (
	"github.com/Hritesh-panda/rolebasedauthorization/internal/core/domain"
	"github.com/Hritesh-panda/rolebasedauthorization/internal/core/ports"
)

// --- Request → Service input ---

func toCreateInput(req createProductRequest) ports.CreateProductInput {
	in := ports.CreateProductInput{
		Name:           req.Name,
		Brand:          req.Brand,
		Category:       req.Category,
		Price:          req.Price,
		Description:    req.Description,
		ProductURL:     req.ProductURL,
		ImageURL:       req.ImageURL,
		Specifications: req.Specifications,
		Tags:           req.Tags,
	}
	if req.Inventory != nil {
		in.Inventory = toInventory(req.Inventory)
	}
	if req.Ratings != nil {
		in.Ratings = toRatings(req.Ratings)
	}
	return in
}

func toPatch(req updateProductRequest) ports.ProductPatch {
	return ports.ProductPatch{
		Name:           req.Name,
		Brand:          req.Brand,
		Category:       req.Category,
		Price:          req.Price,
		Description:    req.Description,
		ProductURL:     req.ProductURL,
		ImageURL:       req.ImageURL,
		Specifications: req.Specifications,
		Inventory:      toInventory(req.Inventory),
		Ratings:        toRatings(req.Ratings),
		Tags:           req.Tags,
	}
}

func toInventory(r *inventoryRequest) *domain.Inventory {
	if r == nil {
		return nil
	}
	return &domain.Inventory{
		InStock:   r.InStock,
		Quantity:  r.Quantity,
		Warehouse: r.Warehouse,
	}
}

func toRatings(r *ratingsRequest) *domain.Ratings {
	if r == nil {
		return nil
	}
	return &domain.Ratings{
		Average: r.Average,
		Count:   r.Count,
	}
}
