package inventory

import (
	"strings"

	inverrors "github.com/grocerly/inventory/internal/inventory/errors"
)

// Supplier is an identity-bearing record for a vendor. The ID is assigned
// once and never changes; two suppliers are the same supplier iff their IDs
// match.
type Supplier struct {
	id      int
	name    string
	contact string
}

// NewSupplier validates all arguments and returns a fully formed supplier.
// Construction is atomic: on error no supplier is returned.
func NewSupplier(id int, name, contact string) (*Supplier, error) {
	if id <= 0 {
		return nil, inverrors.NewValidation("supplier id", "must be positive")
	}
	if strings.TrimSpace(name) == "" {
		return nil, inverrors.NewValidation("supplier name", "cannot be empty")
	}
	if strings.TrimSpace(contact) == "" {
		return nil, inverrors.NewValidation("supplier contact", "cannot be empty")
	}
	return &Supplier{id: id, name: name, contact: contact}, nil
}

func (s *Supplier) ID() int         { return s.id }
func (s *Supplier) Name() string    { return s.name }
func (s *Supplier) Contact() string { return s.contact }

// SetName replaces the supplier name. Empty names are rejected.
func (s *Supplier) SetName(name string) error {
	if strings.TrimSpace(name) == "" {
		return inverrors.NewValidation("supplier name", "cannot be empty")
	}
	s.name = name
	return nil
}

// SetContact replaces the contact information. Empty values are rejected.
func (s *Supplier) SetContact(contact string) error {
	if strings.TrimSpace(contact) == "" {
		return inverrors.NewValidation("supplier contact", "cannot be empty")
	}
	s.contact = contact
	return nil
}

// Equal reports whether both suppliers carry the same ID.
func (s *Supplier) Equal(other *Supplier) bool {
	return other != nil && s.id == other.id
}
