package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/Hritesh-panda/rolebasedauthorization/internal/core/domain"
	"github.com/Hritesh-panda/rolebasedauthorization/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubProductRepo struct {
	products []domain.Product
	seq      int
	failWith error // if set, every call returns this error
}

func (r *stubProductRepo) List(_ context.Context, f ports.ProductFilter) ([]domain.Product, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	out := make([]domain.Product, 0, len(r.products))
	for _, p := range r.products {
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *stubProductRepo) Get(_ context.Context, id string) (*domain.Product, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	for _, p := range r.products {
		if p.ID == id {
			clone := p
			return &clone, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (r *stubProductRepo) Create(_ context.Context, p domain.Product) (*domain.Product, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	r.seq++
	p.ID = fmt.Sprintf("P%03d", r.seq)
	r.products = append(r.products, p)
	clone := p
	return &clone, nil
}

func (r *stubProductRepo) Update(_ context.Context, id string, patch ports.ProductPatch) (*domain.Product, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	for i, p := range r.products {
		if p.ID == id {
			if patch.Name != nil {
				p.Name = *patch.Name
			}
			if patch.Price != nil {
				p.Price = *patch.Price
			}
			r.products[i] = p
			clone := p
			return &clone, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (r *stubProductRepo) Delete(_ context.Context, id string) error {
	if r.failWith != nil {
		return r.failWith
	}
	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return domain.ErrProductNotFound
}

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// Create tests
// ---------------------------------------------------------------------------

func TestProductService_Create_DefaultsForOmittedFields(t *testing.T) {
	repo := &stubProductRepo{}
	svc := NewProductService(repo, discardLogger)

	created, err := svc.Create(context.Background(), ports.CreateProductInput{
		Name: "Laptop", Brand: "Lenovo", Category: "Electronics", Price: 899,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !created.Inventory.InStock {
		t.Error("omitted inventory must default to in stock")
	}
	if created.Inventory.Quantity != 0 {
		t.Errorf("expected zero quantity, got %d", created.Inventory.Quantity)
	}
	if created.Specifications == nil {
		t.Error("specifications must be an empty map, not nil")
	}
	if created.Tags == nil {
		t.Error("tags must be an empty slice, not nil")
	}
	if created.Ratings.Average != 0 || created.Ratings.Count != 0 {
		t.Errorf("expected zero ratings, got %+v", created.Ratings)
	}
}

func TestProductService_Create_HonorsExplicitInventory(t *testing.T) {
	repo := &stubProductRepo{}
	svc := NewProductService(repo, discardLogger)

	created, err := svc.Create(context.Background(), ports.CreateProductInput{
		Name: "Laptop", Brand: "Lenovo", Category: "Electronics",
		Inventory: &domain.Inventory{InStock: false, Quantity: 7, Warehouse: "MX-01"},
		Ratings:   &domain.Ratings{Average: 4.5, Count: 12},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if created.Inventory.InStock {
		t.Error("explicit inStock=false must not be overridden")
	}
	if created.Inventory.Quantity != 7 || created.Inventory.Warehouse != "MX-01" {
		t.Errorf("inventory not carried through: %+v", created.Inventory)
	}
	if created.Ratings.Count != 12 {
		t.Errorf("ratings not carried through: %+v", created.Ratings)
	}
}

func TestProductService_Create_AssignsIDFromRepo(t *testing.T) {
	repo := &stubProductRepo{}
	svc := NewProductService(repo, discardLogger)

	first, _ := svc.Create(context.Background(), ports.CreateProductInput{Name: "A", Brand: "B", Category: "C"})
	second, _ := svc.Create(context.Background(), ports.CreateProductInput{Name: "D", Brand: "E", Category: "F"})

	if first.ID != "P001" || second.ID != "P002" {
		t.Errorf("expected P001/P002, got %s/%s", first.ID, second.ID)
	}
}

func TestProductService_Create_RepoError(t *testing.T) {
	repo := &stubProductRepo{failWith: errors.New("disk full")}
	svc := NewProductService(repo, discardLogger)

	_, err := svc.Create(context.Background(), ports.CreateProductInput{Name: "A", Brand: "B", Category: "C"})
	if err == nil {
		t.Fatal("expected error when repo fails, got nil")
	}
}

// ---------------------------------------------------------------------------
// Read paths
// ---------------------------------------------------------------------------

func TestProductService_List_PassesFilterThrough(t *testing.T) {
	repo := &stubProductRepo{products: []domain.Product{
		{ID: "P001", Category: "Electronics"},
		{ID: "P002", Category: "Furniture"},
	}}
	svc := NewProductService(repo, discardLogger)

	got, err := svc.List(context.Background(), ports.ProductFilter{Category: "Furniture"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "P002" {
		t.Errorf("filter not forwarded: %+v", got)
	}
}

func TestProductService_Get_NotFound(t *testing.T) {
	svc := NewProductService(&stubProductRepo{}, discardLogger)

	_, err := svc.Get(context.Background(), "P404")
	if !errors.Is(err, domain.ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Update / Delete
// ---------------------------------------------------------------------------

func TestProductService_Update(t *testing.T) {
	repo := &stubProductRepo{products: []domain.Product{{ID: "P001", Name: "Old", Brand: "B", Category: "C"}}}
	svc := NewProductService(repo, discardLogger)

	name := "New"
	updated, err := svc.Update(context.Background(), "P001", ports.ProductPatch{Name: &name})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Name != "New" {
		t.Errorf("expected name New, got %q", updated.Name)
	}
}

func TestProductService_Update_NotFound(t *testing.T) {
	svc := NewProductService(&stubProductRepo{}, discardLogger)

	name := "x"
	_, err := svc.Update(context.Background(), "P404", ports.ProductPatch{Name: &name})
	if !errors.Is(err, domain.ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductService_Delete(t *testing.T) {
	repo := &stubProductRepo{products: []domain.Product{{ID: "P001", Name: "A", Brand: "B", Category: "C"}}}
	svc := NewProductService(repo, discardLogger)

	if err := svc.Delete(context.Background(), "P001"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.products) != 0 {
		t.Errorf("expected empty catalog, got %d products", len(repo.products))
	}

	if err := svc.Delete(context.Background(), "P001"); !errors.Is(err, domain.ErrProductNotFound) {
		t.Errorf("second delete: expected ErrProductNotFound, got %v", err)
	}
}
