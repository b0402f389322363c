package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	inverrors "github.com/grocerly/inventory/internal/inventory/errors"
)

func Test_NewSupplier(t *testing.T) {
	testCases := []struct {
		name     string
		id       int
		supplier string
		contact  string
		wantErr  bool
	}{
		{name: "Success", id: 1, supplier: "ABC Farms", contact: "070-1234567", wantErr: false},
		{name: "Error - non-positive id", id: 0, supplier: "ABC Farms", contact: "070-1234567", wantErr: true},
		{name: "Error - empty name", id: 1, supplier: "  ", contact: "070-1234567", wantErr: true},
		{name: "Error - empty contact", id: 1, supplier: "ABC Farms", contact: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// when
			s, err := NewSupplier(tc.id, tc.supplier, tc.contact)
			// then
			if tc.wantErr {
				assert.ErrorIs(t, err, inverrors.ErrValidation)
				assert.Nil(t, s)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.id, s.ID())
			assert.Equal(t, tc.supplier, s.Name())
			assert.Equal(t, tc.contact, s.Contact())
		})
	}
}

func Test_Supplier_Setters(t *testing.T) {
	s, err := NewSupplier(1, "ABC Farms", "070-1234567")
	require.NoError(t, err)

	assert.ErrorIs(t, s.SetName(" "), inverrors.ErrValidation)
	assert.Equal(t, "ABC Farms", s.Name())

	require.NoError(t, s.SetName("ABC Dairy Farms"))
	assert.Equal(t, "ABC Dairy Farms", s.Name())

	assert.ErrorIs(t, s.SetContact(""), inverrors.ErrValidation)
	require.NoError(t, s.SetContact("011-7654321"))
	assert.Equal(t, "011-7654321", s.Contact())
}

func Test_Supplier_EqualityByID(t *testing.T) {
	a, err := NewSupplier(1, "ABC Farms", "070-1234567")
	require.NoError(t, err)
	b, err := NewSupplier(1, "Renamed", "000-0000000")
	require.NoError(t, err)
	c, err := NewSupplier(2, "ABC Farms", "070-1234567")
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))
}
