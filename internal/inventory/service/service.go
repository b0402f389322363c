// Package service provides the implementation of inventory business logic.
package service

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/grocerly/inventory/internal/inventory"
	inverrors "github.com/grocerly/inventory/internal/inventory/errors"
	"github.com/grocerly/inventory/internal/inventory/store"
)

// InventoryService defines the operations the console layer drives.
// It abstracts the underlying business logic and data access.
type InventoryService interface {
	// AddSupplier registers a new supplier with an auto-assigned ID.
	AddSupplier(dto SupplierCreateDto) (*SupplierDto, error)

	// UpdateSupplier replaces name and contact of an existing supplier.
	UpdateSupplier(id int, dto SupplierCreateDto) error

	// FindSupplier retrieves a supplier by ID.
	// Returns ErrSupplierNotFound if no supplier exists with the given ID.
	FindSupplier(id int) (*SupplierDto, error)

	// RemoveSupplier deletes a supplier. Returns ErrSupplierHasProducts if
	// products still reference it; the store is left unchanged.
	RemoveSupplier(id int) error

	// Suppliers returns all suppliers in insertion order.
	Suppliers() []SupplierDto

	// AddPerishable creates a perishable product with the next free ID.
	AddPerishable(dto PerishableCreateDto) (*ProductDto, error)

	// AddNonPerishable creates a non-perishable product with the next free ID.
	AddNonPerishable(dto NonPerishableCreateDto) (*ProductDto, error)

	// FindProduct retrieves a product by ID.
	// Returns ErrProductNotFound if no product exists with the given ID.
	FindProduct(id int) (*ProductDto, error)

	// RemoveProduct deletes a product by ID.
	RemoveProduct(id int) error

	// UpdateStock sets the stock quantity of a product.
	UpdateStock(id, quantity int) error

	// Products returns all products in insertion order.
	Products() []ProductDto

	// ExpiredProducts returns the currently expired products.
	ExpiredProducts() []ProductDto

	// LowStockProducts returns the products at or below their threshold.
	LowStockProducts() []ProductDto

	// ProductsByCategory returns the products of the named category.
	// The category name is parsed; unknown names fail validation.
	ProductsByCategory(category string) ([]ProductDto, error)

	// NextProductID returns the ID the next added product will receive.
	NextProductID() int

	// Summary returns the headline counts for reports.
	Summary() SummaryDto
}

// Service implements InventoryService on top of an InventoryStore.
type Service struct {
	store             store.InventoryStore
	validate          *validator.Validate
	lowStockThreshold int
}

var _ InventoryService = (*Service)(nil)

// NewService creates a new InventoryService backed by the given store.
func NewService(st store.InventoryStore) *Service {
	return &Service{
		store:             st,
		validate:          validator.New(),
		lowStockThreshold: inventory.DefaultLowStockThreshold,
	}
}

// SetDefaultLowStockThreshold changes the threshold applied to products
// created through this service.
func (s *Service) SetDefaultLowStockThreshold(threshold int) error {
	if threshold < 0 {
		return inverrors.NewValidation("low stock threshold", "cannot be negative")
	}
	s.lowStockThreshold = threshold
	return nil
}

// SupplierCreateDto carries the user-entered fields for a new supplier.
type SupplierCreateDto struct {
	Name    string `validate:"required,max=100"`
	Contact string `validate:"required,max=100"`
}

// SupplierDto is the read-side representation of a supplier.
type SupplierDto struct {
	ID      int
	Name    string
	Contact string
}

// PerishableCreateDto carries the user-entered fields for a new perishable
// product. ExpiryDate must be in YYYY-MM-DD form.
type PerishableCreateDto struct {
	Name       string  `validate:"required,max=100"`
	Price      float64 `validate:"gte=0"`
	Quantity   int     `validate:"gte=0"`
	Category   string  `validate:"required"`
	SupplierID int     `validate:"gt=0"`
	ExpiryDate string  `validate:"required"`
}

// NonPerishableCreateDto carries the user-entered fields for a new
// non-perishable product.
type NonPerishableCreateDto struct {
	Name       string  `validate:"required,max=100"`
	Price      float64 `validate:"gte=0"`
	Quantity   int     `validate:"gte=0"`
	Category   string  `validate:"required"`
	SupplierID int     `validate:"gt=0"`
	ShelfLife  string  `validate:"required,max=100"`
}

// ProductDto is the read-side representation of a product with the supplier
// name already resolved. Expired and LowStock are evaluated at query time.
type ProductDto struct {
	ID           int
	Name         string
	Price        float64
	Quantity     int
	Category     string
	SupplierID   int
	SupplierName string
	Kind         string
	ExpiryDate   string // empty for non-perishables
	ShelfLife    string // empty for perishables
	Expired      bool
	LowStock     bool
}

// SummaryDto carries the headline counts of the complete report.
type SummaryDto struct {
	Products         int
	Suppliers        int
	ExpiredProducts  int
	LowStockProducts int
}

func (s *Service) AddSupplier(dto SupplierCreateDto) (*SupplierDto, error) {
	if err := s.checkStruct(dto); err != nil {
		return nil, err
	}
	supplier, err := s.store.CreateSupplier(dto.Name, dto.Contact)
	if err != nil {
		return nil, fmt.Errorf("failed to create supplier: %w", err)
	}
	return toSupplierDto(supplier), nil
}

func (s *Service) UpdateSupplier(id int, dto SupplierCreateDto) error {
	if err := s.checkStruct(dto); err != nil {
		return err
	}
	if err := s.store.UpdateSupplier(id, dto.Name, dto.Contact); err != nil {
		return fmt.Errorf("failed to update supplier %d: %w", id, err)
	}
	return nil
}

func (s *Service) FindSupplier(id int) (*SupplierDto, error) {
	supplier, err := s.store.FindSupplier(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch supplier %d: %w", id, err)
	}
	return toSupplierDto(supplier), nil
}

func (s *Service) RemoveSupplier(id int) error {
	if err := s.store.RemoveSupplier(id); err != nil {
		return fmt.Errorf("failed to remove supplier %d: %w", id, err)
	}
	return nil
}

func (s *Service) Suppliers() []SupplierDto {
	suppliers := s.store.Suppliers()
	list := make([]SupplierDto, len(suppliers))
	for i, supplier := range suppliers {
		list[i] = *toSupplierDto(supplier)
	}
	return list
}

func (s *Service) AddPerishable(dto PerishableCreateDto) (*ProductDto, error) {
	if err := s.checkStruct(dto); err != nil {
		return nil, err
	}
	category, err := inventory.ParseCategory(dto.Category)
	if err != nil {
		return nil, err
	}
	product, err := inventory.NewPerishable(s.store.NextProductID(), dto.Name, dto.Price, dto.Quantity, category, dto.SupplierID, dto.ExpiryDate)
	if err != nil {
		return nil, err
	}
	if err := product.SetLowStockThreshold(s.lowStockThreshold); err != nil {
		return nil, err
	}
	if err := s.store.AddProduct(product); err != nil {
		return nil, fmt.Errorf("failed to add product: %w", err)
	}
	return s.toProductDto(product), nil
}

func (s *Service) AddNonPerishable(dto NonPerishableCreateDto) (*ProductDto, error) {
	if err := s.checkStruct(dto); err != nil {
		return nil, err
	}
	category, err := inventory.ParseCategory(dto.Category)
	if err != nil {
		return nil, err
	}
	product, err := inventory.NewNonPerishable(s.store.NextProductID(), dto.Name, dto.Price, dto.Quantity, category, dto.SupplierID, dto.ShelfLife)
	if err != nil {
		return nil, err
	}
	if err := product.SetLowStockThreshold(s.lowStockThreshold); err != nil {
		return nil, err
	}
	if err := s.store.AddProduct(product); err != nil {
		return nil, fmt.Errorf("failed to add product: %w", err)
	}
	return s.toProductDto(product), nil
}

func (s *Service) FindProduct(id int) (*ProductDto, error) {
	product, err := s.store.FindProduct(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product %d: %w", id, err)
	}
	return s.toProductDto(product), nil
}

func (s *Service) RemoveProduct(id int) error {
	if err := s.store.RemoveProduct(id); err != nil {
		return fmt.Errorf("failed to remove product %d: %w", id, err)
	}
	return nil
}

func (s *Service) UpdateStock(id, quantity int) error {
	if err := s.store.UpdateStock(id, quantity); err != nil {
		return fmt.Errorf("failed to update stock of product %d: %w", id, err)
	}
	return nil
}

func (s *Service) Products() []ProductDto {
	return s.toProductDtos(s.store.Products())
}

func (s *Service) ExpiredProducts() []ProductDto {
	return s.toProductDtos(s.store.ExpiredProducts())
}

func (s *Service) LowStockProducts() []ProductDto {
	return s.toProductDtos(s.store.LowStockProducts())
}

func (s *Service) ProductsByCategory(category string) ([]ProductDto, error) {
	parsed, err := inventory.ParseCategory(category)
	if err != nil {
		return nil, err
	}
	return s.toProductDtos(s.store.ProductsByCategory(parsed)), nil
}

func (s *Service) NextProductID() int {
	return s.store.NextProductID()
}

func (s *Service) Summary() SummaryDto {
	return SummaryDto{
		Products:         s.store.ProductCount(),
		Suppliers:        s.store.SupplierCount(),
		ExpiredProducts:  len(s.store.ExpiredProducts()),
		LowStockProducts: len(s.store.LowStockProducts()),
	}
}

// checkStruct runs tag validation and folds the result into the domain
// validation error class so callers only branch on ErrValidation.
func (s *Service) checkStruct(dto any) error {
	err := s.validate.Struct(dto)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		first := validationErrors[0]
		return inverrors.NewValidation(first.Field(), "failed on rule: "+first.Tag())
	}
	return fmt.Errorf("%w: %v", inverrors.ErrValidation, err)
}

func toSupplierDto(supplier *inventory.Supplier) *SupplierDto {
	return &SupplierDto{
		ID:      supplier.ID(),
		Name:    supplier.Name(),
		Contact: supplier.Contact(),
	}
}

func (s *Service) toProductDto(p *inventory.Product) *ProductDto {
	dto := &ProductDto{
		ID:         p.ID(),
		Name:       p.Name(),
		Price:      p.Price(),
		Quantity:   p.Quantity(),
		Category:   p.Category().String(),
		SupplierID: p.SupplierID(),
		Kind:       p.Kind().String(),
		Expired:    p.IsExpired(),
		LowStock:   p.IsLowStock(),
	}
	if date, ok := p.ExpiryDate(); ok {
		dto.ExpiryDate = date.Format(inventory.ExpiryDateLayout)
	}
	if text, ok := p.ShelfLife(); ok {
		dto.ShelfLife = text
	}
	// The product carries only the supplier ID; the name is resolved here.
	if supplier, err := s.store.FindSupplier(p.SupplierID()); err == nil {
		dto.SupplierName = supplier.Name()
	}
	return dto
}

func (s *Service) toProductDtos(products []*inventory.Product) []ProductDto {
	list := make([]ProductDto, len(products))
	for i, p := range products {
		list[i] = *s.toProductDto(p)
	}
	return list
}
