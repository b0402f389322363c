// Package store provides the inventory storage contract and its in-memory
// implementation.
package store

import (
	"github.com/grocerly/inventory/internal/inventory"
)

// InventoryStore owns the product and supplier collections, assigns
// identifiers and enforces referential integrity between the two.
// It abstracts the underlying data store, allowing for different
// implementations (e.g., in-memory, database).
type InventoryStore interface {
	// CreateSupplier constructs a supplier with the next auto-assigned ID
	// and inserts it. Returns a validation error for empty name or contact.
	CreateSupplier(name, contact string) (*inventory.Supplier, error)

	// AddSupplier inserts a pre-built supplier, e.g. during a bulk load.
	// The next-supplier-id counter is advanced past the supplier's ID so
	// future auto-assigned IDs never collide with it.
	// Returns ErrDuplicateID if a supplier with the same ID exists.
	AddSupplier(s *inventory.Supplier) error

	// FindSupplier retrieves a supplier by its ID.
	// Returns ErrSupplierNotFound if no supplier exists with the given ID.
	FindSupplier(id int) (*inventory.Supplier, error)

	// UpdateSupplier replaces the name and contact of an existing supplier.
	// Returns ErrSupplierNotFound if no supplier exists with the given ID.
	UpdateSupplier(id int, name, contact string) error

	// RemoveSupplier deletes a supplier by ID.
	// Returns ErrSupplierNotFound on a miss and ErrSupplierHasProducts if
	// any product still references the supplier; the store is left
	// unchanged in both cases. IDs are never renumbered on delete.
	RemoveSupplier(id int) error

	// Suppliers returns all suppliers in insertion order.
	// Returns an empty slice if no suppliers exist.
	Suppliers() []*inventory.Supplier

	// NextSupplierID returns the ID the next created supplier will receive.
	NextSupplierID() int

	// AddProduct inserts a product. The next-product-id counter is advanced
	// past the product's ID. Returns ErrDuplicateID if a product with the
	// same ID exists. The referenced supplier is not checked here;
	// referential integrity is enforced at supplier-removal time.
	AddProduct(p *inventory.Product) error

	// FindProduct retrieves a product by its ID.
	// Returns ErrProductNotFound if no product exists with the given ID.
	FindProduct(id int) (*inventory.Product, error)

	// RemoveProduct deletes a product by ID. Products have no dependents,
	// so removal is never blocked.
	// Returns ErrProductNotFound if no product exists with the given ID.
	RemoveProduct(id int) error

	// UpdateStock sets the stock quantity of a product. A negative quantity
	// fails validation and leaves the stored quantity untouched.
	// Returns ErrProductNotFound if no product exists with the given ID.
	UpdateStock(id, quantity int) error

	// NextProductID returns the ID the next added product should use.
	NextProductID() int

	// Products returns all products in insertion order.
	// Returns an empty slice if no products exist.
	Products() []*inventory.Product

	// ExpiredProducts returns the products whose IsExpired is true at call
	// time, in insertion order.
	ExpiredProducts() []*inventory.Product

	// LowStockProducts returns the products at or below their low-stock
	// threshold, in insertion order.
	LowStockProducts() []*inventory.Product

	// ProductsByCategory returns the products of the given category, in
	// insertion order.
	ProductsByCategory(c inventory.Category) []*inventory.Product

	// ProductsBySupplier returns the products referencing the given
	// supplier ID, in insertion order.
	ProductsBySupplier(supplierID int) []*inventory.Product

	// ProductCount returns the number of products in the store.
	ProductCount() int

	// SupplierCount returns the number of suppliers in the store.
	SupplierCount() int
}
