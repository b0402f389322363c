package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	inverrors "github.com/grocerly/inventory/internal/inventory/errors"
	"github.com/grocerly/inventory/internal/inventory/store"
)

func writeSeedFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validSeed = `
suppliers:
  - id: 3
    name: ABC Farms
    contact: 070-1234567
products:
  - id: 10
    name: Milk
    price: 350
    quantity: 3
    category: Dairy
    supplier_id: 3
    expiry: "2030-06-01"
  - id: 11
    name: Rice
    price: 250
    quantity: 40
    category: Dried food
    supplier_id: 3
    shelf_life: 2 years
`

func Test_Load(t *testing.T) {
	// given
	st := store.NewInMemoryStore()
	path := writeSeedFile(t, validSeed)

	// when
	suppliers, products, err := Load(path, st)

	// then
	require.NoError(t, err)
	assert.Equal(t, 1, suppliers)
	assert.Equal(t, 2, products)

	// counters moved past the explicit IDs
	assert.Equal(t, 4, st.NextSupplierID())
	assert.Equal(t, 12, st.NextProductID())

	milk, err := st.FindProduct(10)
	require.NoError(t, err)
	assert.Equal(t, "Milk", milk.Name())
	assert.Equal(t, 3, milk.SupplierID())

	rice, err := st.FindProduct(11)
	require.NoError(t, err)
	text, ok := rice.ShelfLife()
	require.True(t, ok)
	assert.Equal(t, "2 years", text)
}

func Test_Load_MissingFile(t *testing.T) {
	st := store.NewInMemoryStore()

	_, _, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), st)

	assert.Error(t, err)
}

func Test_Load_InvalidProductAborts(t *testing.T) {
	// given: the second product has an unknown category
	st := store.NewInMemoryStore()
	path := writeSeedFile(t, `
suppliers:
  - id: 1
    name: ABC Farms
    contact: 070-1234567
products:
  - id: 1
    name: Rice
    price: 250
    quantity: 40
    category: Dried food
    supplier_id: 1
    shelf_life: 2 years
  - id: 2
    name: Mystery
    price: 10
    quantity: 1
    category: Frozen
    supplier_id: 1
    shelf_life: 1 year
`)

	// when
	suppliers, products, err := Load(path, st)

	// then: the load stops at the invalid entry
	assert.ErrorIs(t, err, inverrors.ErrValidation)
	assert.Equal(t, 1, suppliers)
	assert.Equal(t, 1, products)
}
