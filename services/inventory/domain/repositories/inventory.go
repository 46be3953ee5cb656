package repositories

import (
	"context"

	"github.com/ghuser/inventory/services/inventory/domain/models"
)

// Entity names the registry a change applies to.
type Entity string

const (
	EntityPart    Entity = "part"
	EntityProduct Entity = "product"
)

// Op is the kind of registry mutation.
type Op string

const (
	OpAdded    Op = "added"
	OpReplaced Op = "replaced"
	OpDeleted  Op = "deleted"
)

// Change describes one registry mutation, delivered to subscribers after it
// has been applied.
type Change struct {
	Entity Entity
	Op     Op
	ID     int
	Name   string
}

// InventoryRepository is the registry of parts and products.
// The domain layer owns this interface; infrastructure implements it.
//
// Entities passed in are copied; entities returned are owned by the
// repository and must be treated as read-only. Missing ids are reported
// through ok/bool results, never as errors.
type InventoryRepository interface {
	// AddPart assigns the next part id, stores a copy and returns it.
	// A nil part is a no-op that returns nil.
	AddPart(ctx context.Context, part *models.Part) *models.Part
	LookupPart(id int) (*models.Part, bool)
	// SearchParts matches pattern as a case-insensitive name substring.
	// An empty pattern returns every part.
	SearchParts(pattern string) []*models.Part
	AllParts() []*models.Part
	DeletePart(ctx context.Context, id int) bool
	// ReplacePart swaps the part stored under id for part, keeping id and
	// position. Products holding the old part see the new one.
	ReplacePart(ctx context.Context, id int, part *models.Part) (*models.Part, bool)
	NextPartID() int
	PartCount() int

	AddProduct(ctx context.Context, product *models.Product) *models.Product
	// AddProductWithParts resolves partIDs and inserts the product in one
	// atomic step. An unknown part id yields ErrPartNotFound.
	AddProductWithParts(ctx context.Context, product *models.Product, partIDs []int) (*models.Product, error)
	LookupProduct(id int) (*models.Product, bool)
	SearchProducts(pattern string) []*models.Product
	AllProducts() []*models.Product
	// DeleteProduct removes the product without checking associations.
	DeleteProduct(ctx context.Context, id int) bool
	// DeleteProductChecked runs check against the stored product and
	// deletes it only when check returns nil, atomically.
	DeleteProductChecked(ctx context.Context, id int, check func(*models.Product) error) (*models.Product, error)
	ReplaceProduct(ctx context.Context, id int, product *models.Product) (*models.Product, bool)
	// UpdateProduct applies fn to a copy of the stored product and swaps the
	// copy in when fn returns nil. fn must not call back into the repository.
	UpdateProduct(ctx context.Context, id int, fn func(*models.Product) error) (*models.Product, error)
	// AssociatePart appends the current version of the part under partID to
	// the product under productID, atomically.
	AssociatePart(ctx context.Context, productID, partID int) (*models.Product, error)
	NextProductID() int
	ProductCount() int

	// Subscribe registers fn for every applied change and returns a func
	// that removes the subscription. fn receives the mutating call's ctx.
	Subscribe(fn func(context.Context, Change)) (cancel func())

	Ping(ctx context.Context) error
}
