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

// PartService runs the add, modify, search and delete flows for parts.
// Every flow validates before touching the repository, so a failed call
// leaves the registry unchanged.
type PartService struct {
	repo   repositories.InventoryRepository
	log    logger.Logger
	tracer trace.Tracer
}

// NewPartService returns a PartService backed by repo.
func NewPartService(repo repositories.InventoryRepository, log logger.Logger) *PartService {
	return &PartService{repo: repo, log: log, tracer: telemetry.Tracer()}
}

// Create parses and validates form, then inserts the part under a fresh id.
func (s *PartService) Create(ctx context.Context, form domainsvcs.PartForm) (*models.Part, error) {
	ctx, span := s.tracer.Start(ctx, "PartService.Create")
	defer span.End()

	part, err := domainsvcs.BuildPart(0, form)
	if err != nil {
		return nil, fmt.Errorf("create part: %w", err)
	}
	stored := s.repo.AddPart(ctx, part)
	span.SetAttributes(attribute.Int("part.id", stored.ID))
	s.log.InfoContext(ctx, "part added", "part_id", stored.ID, "name", stored.Name, "source", stored.Source.String())
	return stored, nil
}

// Get returns the part registered under id.
func (s *PartService) Get(ctx context.Context, id int) (*models.Part, error) {
	if id <= 0 {
		return nil, domain.ErrNoSelection
	}
	part, ok := s.repo.LookupPart(id)
	if !ok {
		return nil, fmt.Errorf("get part %d: %w", id, domain.ErrPartNotFound)
	}
	return part, nil
}

// Search returns every part when query is blank. Otherwise it returns parts
// whose name contains query (ignoring case) or whose id contains query as a
// decimal substring, in registry order.
func (s *PartService) Search(ctx context.Context, query string) ([]*models.Part, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return s.repo.AllParts(), nil
	}

	byName := make(map[int]bool)
	for _, p := range s.repo.SearchParts(q) {
		byName[p.ID] = true
	}
	var out []*models.Part
	for _, p := range s.repo.AllParts() {
		if byName[p.ID] || strings.Contains(strconv.Itoa(p.ID), q) {
			out = append(out, p)
		}
	}
	return out, nil
}

// Update validates form and atomically replaces the part under id.
// Products that hold the part see the new values.
func (s *PartService) Update(ctx context.Context, id int, form domainsvcs.PartForm) (*models.Part, error) {
	ctx, span := s.tracer.Start(ctx, "PartService.Update", trace.WithAttributes(attribute.Int("part.id", id)))
	defer span.End()

	if id <= 0 {
		return nil, domain.ErrNoSelection
	}
	part, err := domainsvcs.BuildPart(id, form)
	if err != nil {
		return nil, fmt.Errorf("update part %d: %w", id, err)
	}
	stored, ok := s.repo.ReplacePart(ctx, id, part)
	if !ok {
		return nil, fmt.Errorf("update part %d: %w", id, domain.ErrPartNotFound)
	}
	s.log.InfoContext(ctx, "part modified", "part_id", id, "name", stored.Name)
	return stored, nil
}

// Delete removes the part under id. Existing product associations are kept.
func (s *PartService) Delete(ctx context.Context, id int) error {
	if id <= 0 {
		return domain.ErrNoSelection
	}
	if !s.repo.DeletePart(ctx, id) {
		return fmt.Errorf("delete part %d: %w", id, domain.ErrPartNotFound)
	}
	s.log.InfoContext(ctx, "part deleted", "part_id", id)
	return nil
}

// NextID returns the id the next created part will receive.
func (s *PartService) NextID(_ context.Context) int {
	return s.repo.NextPartID()
}
