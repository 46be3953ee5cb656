// Package memory provides the in-memory inventory registry. All data lives
// for the lifetime of the Store and is lost when the process exits.
package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/ghuser/inventory/services/inventory/domain"
	"github.com/ghuser/inventory/services/inventory/domain/models"
	"github.com/ghuser/inventory/services/inventory/domain/repositories"
)

// Compile-time check that Store satisfies the domain repository contract.
var _ repositories.InventoryRepository = (*Store)(nil)

// First ids handed out by a fresh Store. Parts and products use disjoint ranges.
const (
	FirstPartID    = 1
	FirstProductID = 10000
)

type subscriber struct {
	id int
	fn func(context.Context, repositories.Change)
}

// Store holds parts and products in insertion order and owns id assignment.
// Returned entities are shared with the Store and must not be mutated.
type Store struct {
	mu            sync.RWMutex
	parts         []*models.Part
	products      []*models.Product
	nextPartID    int
	nextProductID int

	subMu       sync.Mutex
	subscribers []subscriber
	nextSubID   int
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{
		nextPartID:    FirstPartID,
		nextProductID: FirstProductID,
	}
}

// AddPart stores a copy of part under the next part id and returns it.
func (s *Store) AddPart(ctx context.Context, part *models.Part) *models.Part {
	if part == nil {
		return nil
	}
	stored := part.Clone()

	s.mu.Lock()
	stored.ID = s.nextPartID
	s.nextPartID++
	s.parts = append(s.parts, stored)
	s.mu.Unlock()

	s.notify(ctx, repositories.Change{Entity: repositories.EntityPart, Op: repositories.OpAdded, ID: stored.ID, Name: stored.Name})
	return stored
}

// LookupPart returns the part stored under id.
func (s *Store) LookupPart(id int) (*models.Part, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.partIndex(id)
	if i < 0 {
		return nil, false
	}
	return s.parts[i], true
}

// SearchParts returns parts whose name contains pattern, ignoring case.
func (s *Store) SearchParts(pattern string) []*models.Part {
	needle := strings.ToLower(pattern)
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Part, 0, len(s.parts))
	for _, p := range s.parts {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			out = append(out, p)
		}
	}
	return out
}

// AllParts returns every part in insertion order.
func (s *Store) AllParts() []*models.Part {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Part, len(s.parts))
	copy(out, s.parts)
	return out
}

// DeletePart removes the part stored under id. Products that reference it
// keep their association.
func (s *Store) DeletePart(ctx context.Context, id int) bool {
	s.mu.Lock()
	i := s.partIndex(id)
	if i < 0 {
		s.mu.Unlock()
		return false
	}
	removed := s.parts[i]
	s.parts = append(s.parts[:i:i], s.parts[i+1:]...)
	s.mu.Unlock()

	s.notify(ctx, repositories.Change{Entity: repositories.EntityPart, Op: repositories.OpDeleted, ID: removed.ID, Name: removed.Name})
	return true
}

// ReplacePart stores a copy of part in place of the part under id. The id
// and registry position are kept, and every product association that
// pointed at the old part points at the new one.
func (s *Store) ReplacePart(ctx context.Context, id int, part *models.Part) (*models.Part, bool) {
	if part == nil {
		return nil, false
	}
	stored := part.Clone()
	stored.ID = id

	s.mu.Lock()
	i := s.partIndex(id)
	if i < 0 {
		s.mu.Unlock()
		return nil, false
	}
	s.parts[i] = stored
	for j, prod := range s.products {
		if !referencesPart(prod, id) {
			continue
		}
		updated := prod.Clone()
		updated.ReplaceAssociatedPart(id, stored)
		s.products[j] = updated
	}
	s.mu.Unlock()

	s.notify(ctx, repositories.Change{Entity: repositories.EntityPart, Op: repositories.OpReplaced, ID: id, Name: stored.Name})
	return stored, true
}

// NextPartID returns the id the next AddPart will assign.
func (s *Store) NextPartID() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nextPartID
}

// PartCount returns the number of registered parts.
func (s *Store) PartCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.parts)
}

// AddProduct stores a copy of product under the next product id and returns it.
func (s *Store) AddProduct(ctx context.Context, product *models.Product) *models.Product {
	if product == nil {
		return nil
	}
	stored := product.Clone()

	s.mu.Lock()
	stored.ID = s.nextProductID
	s.nextProductID++
	s.products = append(s.products, stored)
	s.mu.Unlock()

	s.notify(ctx, repositories.Change{Entity: repositories.EntityProduct, Op: repositories.OpAdded, ID: stored.ID, Name: stored.Name})
	return stored
}

// AddProductWithParts stores a copy of product with the parts under partIDs
// appended in order, resolved under the same lock that assigns the id. An
// unknown part id aborts without inserting.
func (s *Store) AddProductWithParts(ctx context.Context, product *models.Product, partIDs []int) (*models.Product, error) {
	if product == nil {
		return nil, domain.ErrNoSelection
	}
	stored := product.Clone()

	s.mu.Lock()
	for _, pid := range partIDs {
		i := s.partIndex(pid)
		if i < 0 {
			s.mu.Unlock()
			return nil, fmt.Errorf("part %d: %w", pid, domain.ErrPartNotFound)
		}
		stored.AddAssociatedPart(s.parts[i])
	}
	stored.ID = s.nextProductID
	s.nextProductID++
	s.products = append(s.products, stored)
	s.mu.Unlock()

	s.notify(ctx, repositories.Change{Entity: repositories.EntityProduct, Op: repositories.OpAdded, ID: stored.ID, Name: stored.Name})
	return stored, nil
}

// LookupProduct returns the product stored under id.
func (s *Store) LookupProduct(id int) (*models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.productIndex(id)
	if i < 0 {
		return nil, false
	}
	return s.products[i], true
}

// SearchProducts returns products whose name contains pattern, ignoring case.
func (s *Store) SearchProducts(pattern string) []*models.Product {
	needle := strings.ToLower(pattern)
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Product, 0, len(s.products))
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			out = append(out, p)
		}
	}
	return out
}

// AllProducts returns every product in insertion order.
func (s *Store) AllProducts() []*models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Product, len(s.products))
	copy(out, s.products)
	return out
}

// DeleteProduct removes the product under id regardless of associations.
func (s *Store) DeleteProduct(ctx context.Context, id int) bool {
	_, err := s.DeleteProductChecked(ctx, id, nil)
	return err == nil
}

// DeleteProductChecked removes the product under id if check accepts it.
// It returns domain.ErrProductNotFound when id is unknown, or check's error.
func (s *Store) DeleteProductChecked(ctx context.Context, id int, check func(*models.Product) error) (*models.Product, error) {
	s.mu.Lock()
	i := s.productIndex(id)
	if i < 0 {
		s.mu.Unlock()
		return nil, domain.ErrProductNotFound
	}
	removed := s.products[i]
	if check != nil {
		if err := check(removed); err != nil {
			s.mu.Unlock()
			return nil, err
		}
	}
	s.products = append(s.products[:i:i], s.products[i+1:]...)
	s.mu.Unlock()

	s.notify(ctx, repositories.Change{Entity: repositories.EntityProduct, Op: repositories.OpDeleted, ID: removed.ID, Name: removed.Name})
	return removed, nil
}

// ReplaceProduct stores a copy of product in place of the product under id.
func (s *Store) ReplaceProduct(ctx context.Context, id int, product *models.Product) (*models.Product, bool) {
	if product == nil {
		return nil, false
	}
	stored := product.Clone()
	stored.ID = id

	s.mu.Lock()
	i := s.productIndex(id)
	if i < 0 {
		s.mu.Unlock()
		return nil, false
	}
	s.products[i] = stored
	s.mu.Unlock()

	s.notify(ctx, repositories.Change{Entity: repositories.EntityProduct, Op: repositories.OpReplaced, ID: id, Name: stored.Name})
	return stored, true
}

// UpdateProduct runs fn on a copy of the product under id and stores the
// copy if fn succeeds. Readers never observe a half-applied update.
func (s *Store) UpdateProduct(ctx context.Context, id int, fn func(*models.Product) error) (*models.Product, error) {
	s.mu.Lock()
	i := s.productIndex(id)
	if i < 0 {
		s.mu.Unlock()
		return nil, domain.ErrProductNotFound
	}
	working := s.products[i].Clone()
	if err := fn(working); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	working.ID = id
	s.products[i] = working
	s.mu.Unlock()

	s.notify(ctx, repositories.Change{Entity: repositories.EntityProduct, Op: repositories.OpReplaced, ID: id, Name: working.Name})
	return working, nil
}

// AssociatePart appends the part under partID to the product under
// productID. The part is resolved under the write lock, so a concurrent
// ReplacePart is either fully before or fully after the association.
func (s *Store) AssociatePart(ctx context.Context, productID, partID int) (*models.Product, error) {
	s.mu.Lock()
	pi := s.partIndex(partID)
	if pi < 0 {
		s.mu.Unlock()
		return nil, fmt.Errorf("part %d: %w", partID, domain.ErrPartNotFound)
	}
	i := s.productIndex(productID)
	if i < 0 {
		s.mu.Unlock()
		return nil, domain.ErrProductNotFound
	}
	working := s.products[i].Clone()
	working.AddAssociatedPart(s.parts[pi])
	s.products[i] = working
	s.mu.Unlock()

	s.notify(ctx, repositories.Change{Entity: repositories.EntityProduct, Op: repositories.OpReplaced, ID: productID, Name: working.Name})
	return working, nil
}

// NextProductID returns the id the next AddProduct will assign.
func (s *Store) NextProductID() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nextProductID
}

// ProductCount returns the number of registered products.
func (s *Store) ProductCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}

// Subscribe registers fn to be called after every applied change.
// Subscribers run synchronously on the mutating goroutine, in
// registration order, after the registry lock is released. They receive
// the context of the mutating call.
func (s *Store) Subscribe(fn func(context.Context, repositories.Change)) func() {
	if fn == nil {
		return func() {}
	}
	s.subMu.Lock()
	s.nextSubID++
	id := s.nextSubID
	s.subscribers = append(s.subscribers, subscriber{id: id, fn: fn})
	s.subMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.subMu.Lock()
			defer s.subMu.Unlock()
			for i, sub := range s.subscribers {
				if sub.id == id {
					s.subscribers = append(s.subscribers[:i:i], s.subscribers[i+1:]...)
					return
				}
			}
		})
	}
}

// Ping reports whether the store can serve requests.
func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *Store) notify(ctx context.Context, change repositories.Change) {
	s.subMu.Lock()
	subs := make([]subscriber, len(s.subscribers))
	copy(subs, s.subscribers)
	s.subMu.Unlock()

	for _, sub := range subs {
		sub.fn(ctx, change)
	}
}

func (s *Store) partIndex(id int) int {
	for i, p := range s.parts {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) productIndex(id int) int {
	for i, p := range s.products {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func referencesPart(product *models.Product, id int) bool {
	for _, p := range product.AllAssociatedParts() {
		if p.ID == id {
			return true
		}
	}
	return false
}
