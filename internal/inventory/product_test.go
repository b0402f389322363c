package inventory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	inverrors "github.com/grocerly/inventory/internal/inventory/errors"
)

func date(t *testing.T, offsetDays int) string {
	t.Helper()
	return time.Now().AddDate(0, 0, offsetDays).Format(ExpiryDateLayout)
}

func Test_NewPerishable_Valid(t *testing.T) {
	// when
	p, err := NewPerishable(1, "Milk", 350.0, 3, Dairy, 1, "2030-06-01")

	// then
	require.NoError(t, err)
	assert.Equal(t, 1, p.ID())
	assert.Equal(t, "Milk", p.Name())
	assert.Equal(t, 350.0, p.Price())
	assert.Equal(t, 3, p.Quantity())
	assert.Equal(t, Dairy, p.Category())
	assert.Equal(t, 1, p.SupplierID())
	assert.Equal(t, DefaultLowStockThreshold, p.LowStockThreshold())
	assert.Equal(t, Perishable, p.Kind())
	expiry, ok := p.ExpiryDate()
	require.True(t, ok)
	assert.Equal(t, "2030-06-01", expiry.Format(ExpiryDateLayout))
	_, ok = p.ShelfLife()
	assert.False(t, ok)
}

func Test_NewProduct_Validation(t *testing.T) {
	testCases := []struct {
		name    string
		build   func() (*Product, error)
		wantErr bool
	}{
		{
			name:    "Error - non-positive id",
			build:   func() (*Product, error) { return NewPerishable(0, "Milk", 1, 1, Dairy, 1, "2030-01-01") },
			wantErr: true,
		},
		{
			name:    "Error - empty name",
			build:   func() (*Product, error) { return NewPerishable(1, "  ", 1, 1, Dairy, 1, "2030-01-01") },
			wantErr: true,
		},
		{
			name:    "Error - negative price",
			build:   func() (*Product, error) { return NewPerishable(1, "Milk", -0.5, 1, Dairy, 1, "2030-01-01") },
			wantErr: true,
		},
		{
			name:    "Error - negative quantity",
			build:   func() (*Product, error) { return NewPerishable(1, "Milk", 1, -1, Dairy, 1, "2030-01-01") },
			wantErr: true,
		},
		{
			name:    "Error - non-positive supplier id",
			build:   func() (*Product, error) { return NewPerishable(1, "Milk", 1, 1, Dairy, 0, "2030-01-01") },
			wantErr: true,
		},
		{
			name:    "Error - malformed expiry date",
			build:   func() (*Product, error) { return NewPerishable(1, "Milk", 1, 1, Dairy, 1, "01/06/2030") },
			wantErr: true,
		},
		{
			name:    "Error - empty expiry date",
			build:   func() (*Product, error) { return NewPerishable(1, "Milk", 1, 1, Dairy, 1, " ") },
			wantErr: true,
		},
		{
			name:    "Error - empty shelf life",
			build:   func() (*Product, error) { return NewNonPerishable(1, "Rice", 1, 1, DriedFood, 1, "   ") },
			wantErr: true,
		},
		{
			name:    "Success - zero price and quantity are valid",
			build:   func() (*Product, error) { return NewNonPerishable(1, "Rice", 0, 0, DriedFood, 1, "2 years") },
			wantErr: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// when
			p, err := tc.build()
			// then
			if tc.wantErr {
				assert.ErrorIs(t, err, inverrors.ErrValidation)
				assert.Nil(t, p)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, p)
		})
	}
}

func Test_Perishable_PastDateAccepted(t *testing.T) {
	// Construction with a past date succeeds; the product is born expired.
	p, err := NewPerishable(1, "Yoghurt", 120, 10, Dairy, 1, date(t, -30))
	require.NoError(t, err)
	assert.True(t, p.IsExpired())
}

func Test_IsExpired_Boundaries(t *testing.T) {
	testCases := []struct {
		name    string
		expiry  string
		expired bool
	}{
		{name: "expiring today is not expired", expiry: date(t, 0), expired: false},
		{name: "expired yesterday", expiry: date(t, -1), expired: true},
		{name: "expiring tomorrow", expiry: date(t, 1), expired: false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := NewPerishable(1, "Milk", 1, 1, Dairy, 1, tc.expiry)
			require.NoError(t, err)
			assert.Equal(t, tc.expired, p.IsExpired())
		})
	}
}

func Test_NonPerishable_NeverExpires(t *testing.T) {
	p, err := NewNonPerishable(1, "Rice", 250, 40, DriedFood, 1, "2 years")
	require.NoError(t, err)
	assert.False(t, p.IsExpired())
	text, ok := p.ShelfLife()
	require.True(t, ok)
	assert.Equal(t, "2 years", text)
	_, ok = p.ExpiryDate()
	assert.False(t, ok)
}

func Test_IsLowStock_Boundary(t *testing.T) {
	p, err := NewNonPerishable(1, "Rice", 250, 5, DriedFood, 1, "2 years")
	require.NoError(t, err)

	// quantity == threshold is low stock
	assert.True(t, p.IsLowStock())

	// threshold+1 is not
	require.NoError(t, p.SetQuantity(6))
	assert.False(t, p.IsLowStock())

	// boundary moves with the threshold
	require.NoError(t, p.SetLowStockThreshold(6))
	assert.True(t, p.IsLowStock())
}

func Test_Setters_Validation(t *testing.T) {
	p, err := NewNonPerishable(1, "Rice", 250, 40, DriedFood, 1, "2 years")
	require.NoError(t, err)

	// invalid mutations leave the stored values untouched
	assert.ErrorIs(t, p.SetPrice(-1), inverrors.ErrValidation)
	assert.Equal(t, 250.0, p.Price())

	assert.ErrorIs(t, p.SetQuantity(-1), inverrors.ErrValidation)
	assert.Equal(t, 40, p.Quantity())

	assert.ErrorIs(t, p.SetLowStockThreshold(-1), inverrors.ErrValidation)
	assert.Equal(t, DefaultLowStockThreshold, p.LowStockThreshold())

	// valid mutations apply
	require.NoError(t, p.SetPrice(300))
	assert.Equal(t, 300.0, p.Price())
}

func Test_ExpiredAt_UsesCalendarDate(t *testing.T) {
	p, err := NewPerishable(1, "Milk", 1, 1, Dairy, 1, "2026-08-30")
	require.NoError(t, err)

	// late in the evening of the expiry day it is still not expired
	assert.False(t, p.ExpiredAt(time.Date(2026, 8, 30, 23, 59, 0, 0, time.UTC)))
	assert.True(t, p.ExpiredAt(time.Date(2026, 8, 31, 0, 0, 1, 0, time.UTC)))
}
