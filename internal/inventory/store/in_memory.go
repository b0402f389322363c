package store

import (
	"sync"

	"github.com/grocerly/inventory/internal/inventory"
	inverrors "github.com/grocerly/inventory/internal/inventory/errors"
)

// inMemory implements InventoryStore with ordered slices and linear ID
// lookup. Both collections are small; insertion order is the order reports
// render in, which a map would not preserve.
type inMemory struct {
	mu             sync.RWMutex
	products       []*inventory.Product
	suppliers      []*inventory.Supplier
	nextProductID  int
	nextSupplierID int
}

// NewInMemoryStore creates an empty InventoryStore. IDs start at 1.
func NewInMemoryStore() InventoryStore {
	return &inMemory{
		nextProductID:  1,
		nextSupplierID: 1,
	}
}

func (s *inMemory) CreateSupplier(name, contact string) (*inventory.Supplier, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	supplier, err := inventory.NewSupplier(s.nextSupplierID, name, contact)
	if err != nil {
		return nil, err
	}
	s.suppliers = append(s.suppliers, supplier)
	s.nextSupplierID++
	return supplier, nil
}

func (s *inMemory) AddSupplier(supplier *inventory.Supplier) error {
	if supplier == nil {
		return inverrors.NewValidation("supplier", "cannot be nil")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findSupplier(supplier.ID()) != nil {
		return inverrors.ErrDuplicateID
	}
	s.suppliers = append(s.suppliers, supplier)
	// Keep auto-assigned IDs ahead of every explicit one.
	if supplier.ID() >= s.nextSupplierID {
		s.nextSupplierID = supplier.ID() + 1
	}
	return nil
}

func (s *inMemory) FindSupplier(id int) (*inventory.Supplier, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if supplier := s.findSupplier(id); supplier != nil {
		return supplier, nil
	}
	return nil, inverrors.ErrSupplierNotFound
}

func (s *inMemory) UpdateSupplier(id int, name, contact string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	supplier := s.findSupplier(id)
	if supplier == nil {
		return inverrors.ErrSupplierNotFound
	}
	// Validate both fields up front so a failed update leaves the supplier
	// untouched.
	if _, err := inventory.NewSupplier(id, name, contact); err != nil {
		return err
	}
	if err := supplier.SetName(name); err != nil {
		return err
	}
	return supplier.SetContact(contact)
}

func (s *inMemory) RemoveSupplier(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, supplier := range s.suppliers {
		if supplier.ID() == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return inverrors.ErrSupplierNotFound
	}
	// Referential integrity: a supplier still referenced by any product
	// must not be deleted.
	for _, p := range s.products {
		if p.SupplierID() == id {
			return inverrors.ErrSupplierHasProducts
		}
	}
	s.suppliers = append(s.suppliers[:idx], s.suppliers[idx+1:]...)
	// The next-id counter is not decremented; IDs are never reused.
	return nil
}

func (s *inMemory) Suppliers() []*inventory.Supplier {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]*inventory.Supplier, len(s.suppliers))
	copy(list, s.suppliers)
	return list
}

func (s *inMemory) NextSupplierID() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nextSupplierID
}

func (s *inMemory) AddProduct(p *inventory.Product) error {
	if p == nil {
		return inverrors.NewValidation("product", "cannot be nil")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findProduct(p.ID()) != nil {
		return inverrors.ErrDuplicateID
	}
	s.products = append(s.products, p)
	if p.ID() >= s.nextProductID {
		s.nextProductID = p.ID() + 1
	}
	return nil
}

func (s *inMemory) FindProduct(id int) (*inventory.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if p := s.findProduct(id); p != nil {
		return p, nil
	}
	return nil, inverrors.ErrProductNotFound
}

func (s *inMemory) RemoveProduct(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.products {
		if p.ID() == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return nil
		}
	}
	return inverrors.ErrProductNotFound
}

func (s *inMemory) UpdateStock(id, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.findProduct(id)
	if p == nil {
		return inverrors.ErrProductNotFound
	}
	return p.SetQuantity(quantity)
}

func (s *inMemory) NextProductID() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nextProductID
}

func (s *inMemory) Products() []*inventory.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]*inventory.Product, len(s.products))
	copy(list, s.products)
	return list
}

func (s *inMemory) ExpiredProducts() []*inventory.Product {
	return s.filter(func(p *inventory.Product) bool { return p.IsExpired() })
}

func (s *inMemory) LowStockProducts() []*inventory.Product {
	return s.filter(func(p *inventory.Product) bool { return p.IsLowStock() })
}

func (s *inMemory) ProductsByCategory(c inventory.Category) []*inventory.Product {
	return s.filter(func(p *inventory.Product) bool { return p.Category() == c })
}

func (s *inMemory) ProductsBySupplier(supplierID int) []*inventory.Product {
	return s.filter(func(p *inventory.Product) bool { return p.SupplierID() == supplierID })
}

func (s *inMemory) ProductCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}

func (s *inMemory) SupplierCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.suppliers)
}

// filter returns the products matching the predicate, preserving insertion
// order. An empty result is an empty slice, never nil.
func (s *inMemory) filter(keep func(*inventory.Product) bool) []*inventory.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]*inventory.Product, 0, len(s.products))
	for _, p := range s.products {
		if keep(p) {
			list = append(list, p)
		}
	}
	return list
}

func (s *inMemory) findProduct(id int) *inventory.Product {
	for _, p := range s.products {
		if p.ID() == id {
			return p
		}
	}
	return nil
}

func (s *inMemory) findSupplier(id int) *inventory.Supplier {
	for _, supplier := range s.suppliers {
		if supplier.ID() == id {
			return supplier
		}
	}
	return nil
}
