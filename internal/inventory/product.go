package inventory

import (
	"strings"
	"time"

	inverrors "github.com/grocerly/inventory/internal/inventory/errors"
)

// DefaultLowStockThreshold is the stock level at or below which a freshly
// constructed product is flagged as low stock.
const DefaultLowStockThreshold = 5

// ExpiryDateLayout is the strict date format accepted for expiry dates.
const ExpiryDateLayout = "2006-01-02"

// Kind discriminates the two product variants.
type Kind int

const (
	// Perishable products carry an expiry date and can expire.
	Perishable Kind = iota
	// NonPerishable products carry a shelf-life description and never expire.
	NonPerishable
)

func (k Kind) String() string {
	if k == Perishable {
		return "Perishable"
	}
	return "Non-Perishable"
}

// Product is a closed tagged variant: the common fields are shared by both
// kinds, the payload (expiryDate vs shelfLife) depends on the kind. A
// product references its supplier by ID only; resolving the ID to a
// Supplier is the store's job.
type Product struct {
	id                int
	name              string
	price             float64
	quantity          int
	category          Category
	supplierID        int
	lowStockThreshold int

	kind       Kind
	expiryDate time.Time // Perishable only
	shelfLife  string    // NonPerishable only
}

// NewPerishable constructs a perishable product. The expiry date must be in
// strict YYYY-MM-DD form; a date in the past is accepted (the product is
// simply born expired), an unparseable one fails construction.
func NewPerishable(id int, name string, price float64, quantity int, category Category, supplierID int, expiryDate string) (*Product, error) {
	p, err := newProduct(id, name, price, quantity, category, supplierID)
	if err != nil {
		return nil, err
	}
	trimmed := strings.TrimSpace(expiryDate)
	if trimmed == "" {
		return nil, inverrors.NewValidation("expiry date", "cannot be empty")
	}
	parsed, err := time.Parse(ExpiryDateLayout, trimmed)
	if err != nil {
		return nil, inverrors.NewValidation("expiry date", "invalid format "+trimmed+", expected YYYY-MM-DD")
	}
	p.kind = Perishable
	p.expiryDate = parsed
	return p, nil
}

// NewNonPerishable constructs a non-perishable product. The shelf life is
// free-text ("2 years") and must be non-empty after trimming.
func NewNonPerishable(id int, name string, price float64, quantity int, category Category, supplierID int, shelfLife string) (*Product, error) {
	p, err := newProduct(id, name, price, quantity, category, supplierID)
	if err != nil {
		return nil, err
	}
	trimmed := strings.TrimSpace(shelfLife)
	if trimmed == "" {
		return nil, inverrors.NewValidation("shelf life", "cannot be empty")
	}
	p.kind = NonPerishable
	p.shelfLife = trimmed
	return p, nil
}

func newProduct(id int, name string, price float64, quantity int, category Category, supplierID int) (*Product, error) {
	if id <= 0 {
		return nil, inverrors.NewValidation("product id", "must be positive")
	}
	if strings.TrimSpace(name) == "" {
		return nil, inverrors.NewValidation("product name", "cannot be empty")
	}
	if price < 0 {
		return nil, inverrors.NewValidation("price", "cannot be negative")
	}
	if quantity < 0 {
		return nil, inverrors.NewValidation("quantity", "cannot be negative")
	}
	if _, ok := categoryNames[category]; !ok {
		return nil, inverrors.NewValidation("category", "unknown category")
	}
	if supplierID <= 0 {
		return nil, inverrors.NewValidation("supplier id", "must be positive")
	}
	return &Product{
		id:                id,
		name:              name,
		price:             price,
		quantity:          quantity,
		category:          category,
		supplierID:        supplierID,
		lowStockThreshold: DefaultLowStockThreshold,
	}, nil
}

func (p *Product) ID() int                { return p.id }
func (p *Product) Name() string           { return p.name }
func (p *Product) Price() float64         { return p.price }
func (p *Product) Quantity() int          { return p.quantity }
func (p *Product) Category() Category     { return p.category }
func (p *Product) SupplierID() int        { return p.supplierID }
func (p *Product) LowStockThreshold() int { return p.lowStockThreshold }
func (p *Product) Kind() Kind             { return p.kind }

// ExpiryDate returns the expiry date; ok is false for non-perishables.
func (p *Product) ExpiryDate() (date time.Time, ok bool) {
	return p.expiryDate, p.kind == Perishable
}

// ShelfLife returns the shelf-life text; ok is false for perishables.
func (p *Product) ShelfLife() (text string, ok bool) {
	return p.shelfLife, p.kind == NonPerishable
}

// SetPrice updates the price. Negative prices are rejected, the stored
// price stays unchanged on error.
func (p *Product) SetPrice(price float64) error {
	if price < 0 {
		return inverrors.NewValidation("price", "cannot be negative")
	}
	p.price = price
	return nil
}

// SetQuantity updates the stock quantity. Negative quantities are rejected.
func (p *Product) SetQuantity(quantity int) error {
	if quantity < 0 {
		return inverrors.NewValidation("quantity", "cannot be negative")
	}
	p.quantity = quantity
	return nil
}

// SetLowStockThreshold updates the low-stock threshold.
func (p *Product) SetLowStockThreshold(threshold int) error {
	if threshold < 0 {
		return inverrors.NewValidation("low stock threshold", "cannot be negative")
	}
	p.lowStockThreshold = threshold
	return nil
}

// IsLowStock reports whether the quantity is at or below the threshold.
func (p *Product) IsLowStock() bool {
	return p.quantity <= p.lowStockThreshold
}

// IsExpired reports whether a perishable product's expiry date is strictly
// before today. It is evaluated against the clock on every call, never
// cached, so the answer can flip without any mutation. Non-perishables
// never expire.
func (p *Product) IsExpired() bool {
	return p.ExpiredAt(time.Now())
}

// ExpiredAt is IsExpired against an explicit point in time. Only the
// calendar date of now matters: a product expiring today is not yet
// expired.
func (p *Product) ExpiredAt(now time.Time) bool {
	if p.kind != Perishable {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return p.expiryDate.Before(today)
}
