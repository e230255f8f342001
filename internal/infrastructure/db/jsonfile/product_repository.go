package jsonfile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Hritesh-panda/rolebasedauthorization/internal/core/domain"
	"github.com/Hritesh-panda/rolebasedauthorization/internal/core/ports"
)

const productDocName = "products"

// productDocument matches the on-disk layout: { count, sequence, products }.
// sequence is the durable id counter; legacy documents without it are seeded
// from the highest existing id suffix on first create, and the counter never
// runs backwards, so deleting a product cannot recycle its id.
type productDocument struct {
	Count    int              `json:"count"`
	Sequence int              `json:"sequence,omitempty"`
	Products []domain.Product `json:"products"`
}

// ProductRepository persists the catalog in one JSON document.
type ProductRepository struct {
	store store
}

func NewProductRepository(path string) *ProductRepository {
	return &ProductRepository{store: store{path: path, name: productDocName}}
}

// load reads the document. The product store is never auto-initialized: a
// missing file is as fatal as a corrupt one.
func (r *ProductRepository) load() (*productDocument, error) {
	var doc productDocument
	if err := r.store.read(&doc); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %v", domain.ErrStoreCorrupt, err)
		}
		return nil, err
	}
	return &doc, nil
}

func (r *ProductRepository) save(doc *productDocument) error {
	doc.Count = len(doc.Products)
	return r.store.write(doc)
}

// Ping reports whether the backing document can be loaded.
func (r *ProductRepository) Ping(_ context.Context) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	_, err := r.load()
	return err
}

func (r *ProductRepository) List(_ context.Context, filter ports.ProductFilter) ([]domain.Product, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	doc, err := r.load()
	if err != nil {
		return nil, err
	}

	out := make([]domain.Product, 0, len(doc.Products))
	for _, p := range doc.Products {
		if matchesFilter(p, filter) {
			out = append(out, p)
		}
	}
	return out, nil
}

// matchesFilter applies every set predicate; store order is preserved by the
// caller, so no sorting happens here.
func matchesFilter(p domain.Product, f ports.ProductFilter) bool {
	if f.Category != "" && !strings.EqualFold(p.Category, f.Category) {
		return false
	}
	if f.Brand != "" && !strings.EqualFold(p.Brand, f.Brand) {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	return true
}

func (r *ProductRepository) Get(_ context.Context, id string) (*domain.Product, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	doc, err := r.load()
	if err != nil {
		return nil, err
	}

	for _, p := range doc.Products {
		if p.ID == id {
			clone := p
			return &clone, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (r *ProductRepository) Create(_ context.Context, p domain.Product) (*domain.Product, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	doc, err := r.load()
	if err != nil {
		return nil, err
	}

	seq := doc.Sequence
	if seq == 0 {
		seq = maxIDSuffix(doc.Products)
	}
	seq++

	p.ID = fmt.Sprintf("P%03d", seq)
	doc.Sequence = seq
	doc.Products = append(doc.Products, p)

	if err := r.save(doc); err != nil {
		return nil, err
	}
	return &p, nil
}

// maxIDSuffix seeds the sequence for documents written before the counter
// existed, using the highest numeric suffix of the stored "P%03d" ids.
func maxIDSuffix(products []domain.Product) int {
	max := 0
	for _, p := range products {
		n, err := strconv.Atoi(strings.TrimPrefix(p.ID, "P"))
		if err == nil && n > max {
			max = n
		}
	}
	return max
}

func (r *ProductRepository) Update(_ context.Context, id string, patch ports.ProductPatch) (*domain.Product, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	doc, err := r.load()
	if err != nil {
		return nil, err
	}

	idx := indexOf(doc.Products, id)
	if idx < 0 {
		return nil, domain.ErrProductNotFound
	}

	merged := applyPatch(doc.Products[idx], patch)
	merged.ID = id // identity is immutable
	if !merged.HasRequiredFields() {
		return nil, domain.ErrMissingFields
	}

	doc.Products[idx] = merged
	if err := r.save(doc); err != nil {
		return nil, err
	}

	clone := merged
	return &clone, nil
}

// applyPatch replaces exactly the fields the patch sets. Nested structs are
// swapped wholesale, mirroring a shallow object merge.
func applyPatch(p domain.Product, patch ports.ProductPatch) domain.Product {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Brand != nil {
		p.Brand = *patch.Brand
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.ProductURL != nil {
		p.ProductURL = *patch.ProductURL
	}
	if patch.ImageURL != nil {
		p.ImageURL = *patch.ImageURL
	}
	if patch.Specifications != nil {
		p.Specifications = patch.Specifications
	}
	if patch.Inventory != nil {
		p.Inventory = *patch.Inventory
	}
	if patch.Ratings != nil {
		p.Ratings = *patch.Ratings
	}
	if patch.Tags != nil {
		p.Tags = patch.Tags
	}
	return p
}

func (r *ProductRepository) Delete(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	doc, err := r.load()
	if err != nil {
		return err
	}

	idx := indexOf(doc.Products, id)
	if idx < 0 {
		return domain.ErrProductNotFound
	}

	doc.Products = append(doc.Products[:idx], doc.Products[idx+1:]...)
	return r.save(doc)
}

func indexOf(products []domain.Product, id string) int {
	for i, p := range products {
		if p.ID == id {
			return i
		}
	}
	return -1
}
