package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/Hritesh-panda/rolebasedauthorization/internal/api/metrics"
	"github.com/Hritesh-panda/rolebasedauthorization/internal/core/domain"
	"github.com/Hritesh-panda/rolebasedauthorization/internal/core/ports"
)

// ProductService implements catalog use cases over a ProductRepository.
type ProductService struct {
	repo ports.ProductRepository
	log  zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, log zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, log: log}
}

func (s *ProductService) List(ctx context.Context, filter ports.ProductFilter) ([]domain.Product, error) {
	return s.repo.List(ctx, filter)
}

func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.Get(ctx, id)
}

// Create fills the documented defaults for fields the caller omitted and
// persists the record. The repository assigns the id.
func (s *ProductService) Create(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	p := domain.Product{
		Name:           input.Name,
		Brand:          input.Brand,
		Category:       input.Category,
		Price:          input.Price,
		Description:    input.Description,
		ProductURL:     input.ProductURL,
		ImageURL:       input.ImageURL,
		Specifications: input.Specifications,
		Inventory:      domain.Inventory{InStock: true},
		Tags:           input.Tags,
	}
	if input.Inventory != nil {
		p.Inventory = *input.Inventory
	}
	if input.Ratings != nil {
		p.Ratings = *input.Ratings
	}
	if p.Specifications == nil {
		p.Specifications = map[string]string{}
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}

	created, err := s.repo.Create(ctx, p)
	if err != nil {
		s.log.Error().Err(err).Str("name", input.Name).Msg("failed to create product")
		return nil, err
	}

	metrics.ProductsCreatedTotal.WithLabelValues(created.Category).Inc()
	s.log.Info().Str("id", created.ID).Str("category", created.Category).Msg("product created")
	return created, nil
}

func (s *ProductService) Update(ctx context.Context, id string, patch ports.ProductPatch) (*domain.Product, error) {
	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	metrics.ProductsUpdatedTotal.Inc()
	s.log.Info().Str("id", id).Msg("product updated")
	return updated, nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	metrics.ProductsDeletedTotal.Inc()
	s.log.Info().Str("id", id).Msg("product deleted")
	return nil
}
