package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/ghuser/inventory/pkg/logger"
	"github.com/ghuser/inventory/pkg/telemetry"
	"github.com/ghuser/inventory/services/inventory/domain"
	"github.com/ghuser/inventory/services/inventory/domain/models"
	"github.com/ghuser/inventory/services/inventory/domain/repositories"
	domainsvcs "github.com/ghuser/inventory/services/inventory/domain/services"
)

// ProductService runs the product flows, including part association.
type ProductService struct {
	repo   repositories.InventoryRepository
	log    logger.Logger
	tracer trace.Tracer
}

// NewProductService returns a ProductService backed by repo.
func NewProductService(repo repositories.InventoryRepository, log logger.Logger) *ProductService {
	return &ProductService{repo: repo, log: log, tracer: telemetry.Tracer()}
}

// Create validates form, attaches the parts named by partIDs in order, and
// inserts the product under a fresh id. An unknown part id aborts the call
// before anything is inserted.
func (s *ProductService) Create(ctx context.Context, form domainsvcs.ProductForm, partIDs []int) (*models.Product, error) {
	ctx, span := s.tracer.Start(ctx, "ProductService.Create")
	defer span.End()

	product, err := domainsvcs.BuildProduct(0, form)
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	stored, err := s.repo.AddProductWithParts(ctx, product, partIDs)
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	span.SetAttributes(attribute.Int("product.id", stored.ID))
	s.log.InfoContext(ctx, "product added",
		"product_id", stored.ID,
		"name", stored.Name,
		"associated_parts", len(partIDs),
	)
	return stored, nil
}

// Get returns the product registered under id.
func (s *ProductService) Get(ctx context.Context, id int) (*models.Product, error) {
	if id <= 0 {
		return nil, domain.ErrNoSelection
	}
	product, ok := s.repo.LookupProduct(id)
	if !ok {
		return nil, fmt.Errorf("get product %d: %w", id, domain.ErrProductNotFound)
	}
	return product, nil
}

// Search mirrors PartService.Search for products.
func (s *ProductService) Search(ctx context.Context, query string) ([]*models.Product, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return s.repo.AllProducts(), nil
	}

	byName := make(map[int]bool)
	for _, p := range s.repo.SearchProducts(q) {
		byName[p.ID] = true
	}
	var out []*models.Product
	for _, p := range s.repo.AllProducts() {
		if byName[p.ID] || strings.Contains(strconv.Itoa(p.ID), q) {
			out = append(out, p)
		}
	}
	return out, nil
}

// Update validates form and replaces the product's own fields. Its
// associated parts are carried over unchanged.
func (s *ProductService) Update(ctx context.Context, id int, form domainsvcs.ProductForm) (*models.Product, error) {
	ctx, span := s.tracer.Start(ctx, "ProductService.Update", trace.WithAttributes(attribute.Int("product.id", id)))
	defer span.End()

	if id <= 0 {
		return nil, domain.ErrNoSelection
	}
	next, err := domainsvcs.BuildProduct(id, form)
	if err != nil {
		return nil, fmt.Errorf("update product %d: %w", id, err)
	}
	stored, err := s.repo.UpdateProduct(ctx, id, func(p *models.Product) error {
		p.Name = next.Name
		p.Price = next.Price
		p.Stock = next.Stock
		p.Min = next.Min
		p.Max = next.Max
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("update product %d: %w", id, err)
	}
	s.log.InfoContext(ctx, "product modified", "product_id", id, "name", stored.Name)
	return stored, nil
}

// AssociatePart appends the part under partID to the product's associations.
func (s *ProductService) AssociatePart(ctx context.Context, productID, partID int) (*models.Product, error) {
	if productID <= 0 || partID <= 0 {
		return nil, domain.ErrNoSelection
	}
	stored, err := s.repo.AssociatePart(ctx, productID, partID)
	if err != nil {
		return nil, fmt.Errorf("associate part %d with product %d: %w", partID, productID, err)
	}
	s.log.InfoContext(ctx, "part associated", "product_id", productID, "part_id", partID)
	return stored, nil
}

// DissociatePart removes the first association with partID. The part does
// not need to still exist in the registry.
func (s *ProductService) DissociatePart(ctx context.Context, productID, partID int) (*models.Product, error) {
	if productID <= 0 || partID <= 0 {
		return nil, domain.ErrNoSelection
	}
	stored, err := s.repo.UpdateProduct(ctx, productID, func(p *models.Product) error {
		if !p.DeleteAssociatedPart(&models.Part{ID: partID}) {
			return fmt.Errorf("part %d is not associated: %w", partID, domain.ErrPartNotFound)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("dissociate part %d from product %d: %w", partID, productID, err)
	}
	s.log.InfoContext(ctx, "part dissociated", "product_id", productID, "part_id", partID)
	return stored, nil
}

// Delete removes the product under id. It fails with ErrDeleteBlocked while
// any part is still associated.
func (s *ProductService) Delete(ctx context.Context, id int) error {
	if id <= 0 {
		return domain.ErrNoSelection
	}
	_, err := s.repo.DeleteProductChecked(ctx, id, func(p *models.Product) error {
		if !domainsvcs.ProductDeletable(p) {
			return domain.NewValidationError(domain.KindDeleteBlocked, "associated_parts", strconv.Itoa(len(p.AllAssociatedParts())))
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("delete product %d: %w", id, err)
	}
	s.log.InfoContext(ctx, "product deleted", "product_id", id)
	return nil
}

// NextID returns the id the next created product will receive.
func (s *ProductService) NextID(_ context.Context) int {
	return s.repo.NextProductID()
}
