package seed

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghuser/inventory/pkg/app"
	"github.com/ghuser/inventory/pkg/logger"
	appsvcs "github.com/ghuser/inventory/services/inventory/application/services"
	"github.com/ghuser/inventory/services/inventory/domain"
	"github.com/ghuser/inventory/services/inventory/infrastructure/persistence/memory"
)

func newServices(t *testing.T) (*appsvcs.Services, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	svcs := appsvcs.New(&app.Application{Logger: logger.Nop(), Inventory: store})
	t.Cleanup(svcs.Close)
	return svcs, store
}

func TestDemo_Apply(t *testing.T) {
	f, err := Demo()
	require.NoError(t, err)

	svcs, store := newServices(t)
	require.NoError(t, Apply(context.Background(), svcs, f))

	part, ok := store.LookupPart(memory.FirstPartID)
	require.True(t, ok)
	assert.Equal(t, "Saddle Bags", part.Name)
	assert.True(t, part.IsInHouse())
	assert.Equal(t, 75, part.MachineID)
	assert.Equal(t, 85.0, part.Price)
	assert.Equal(t, []int{5, 1, 10}, []int{part.Stock, part.Min, part.Max})

	product, ok := store.LookupProduct(memory.FirstProductID)
	require.True(t, ok)
	assert.Equal(t, "Road Bike (Commuter)", product.Name)
	assert.Equal(t, 999.99, product.Price)
	assert.False(t, product.HasAssociatedParts())
}

func TestParse(t *testing.T) {
	t.Run("empty document", func(t *testing.T) {
		f, err := Parse(nil)
		require.NoError(t, err)
		assert.Empty(t, f.Parts)
		assert.Empty(t, f.Products)
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := Parse([]byte("parts:\n  - name: Bell\n    colour: red\n"))
		assert.Error(t, err)
	})
}

func TestApply_ProductWithParts(t *testing.T) {
	f, err := Parse([]byte(`
parts:
  - source: outsourced
    name: Bell
    price: 4.5
    stock: 3
    min: 1
    max: 5
    company_name: Acme Bells
products:
  - name: Cruiser
    price: 250
    stock: 2
    min: 1
    max: 4
    parts: [Bell, Bell]
`))
	require.NoError(t, err)

	svcs, store := newServices(t)
	require.NoError(t, Apply(context.Background(), svcs, f))

	product, ok := store.LookupProduct(memory.FirstProductID)
	require.True(t, ok)
	assert.Len(t, product.AllAssociatedParts(), 2)
}

func TestApply_PartNamesMatchIgnoringSurroundingSpace(t *testing.T) {
	f, err := Parse([]byte(`
parts:
  - {source: in_house, name: " Saddle Bags ", price: 85, stock: 5, min: 1, max: 10, machine_id: 75}
products:
  - {name: Touring Bike, price: 1400, stock: 1, min: 1, max: 3, parts: ["Saddle Bags", " Saddle Bags"]}
`))
	require.NoError(t, err)

	svcs, store := newServices(t)
	require.NoError(t, Apply(context.Background(), svcs, f))

	part, ok := store.LookupPart(memory.FirstPartID)
	require.True(t, ok)
	assert.Equal(t, "Saddle Bags", part.Name)
	product, ok := store.LookupProduct(memory.FirstProductID)
	require.True(t, ok)
	assert.Len(t, product.AllAssociatedParts(), 2)
}

func TestApply_Errors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr error
	}{
		{
			name:    "invalid part",
			doc:     "parts:\n  - {source: in_house, name: Chain, price: 1, stock: 9, min: 1, max: 2, machine_id: 1}\n",
			wantErr: domain.ErrStockOutOfBounds,
		},
		{
			name: "unknown source",
			doc:  "parts:\n  - {source: robot, name: Chain, price: 1, stock: 1, min: 1, max: 2}\n",
		},
		{
			name: "unknown part reference",
			doc:  "products:\n  - {name: Cruiser, price: 1, stock: 1, min: 1, max: 2, parts: [Ghost]}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Parse([]byte(tt.doc))
			require.NoError(t, err)

			svcs, store := newServices(t)
			err = Apply(context.Background(), svcs, f)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			}
			assert.Zero(t, store.PartCount())
			assert.Zero(t, store.ProductCount())
		})
	}
}
