// Package seed loads an initial set of suppliers and products from a YAML
// file into the store. Entries carry explicit IDs, so the store's next-id
// counters end up past every loaded ID.
package seed

import (
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/grocerly/inventory/internal/inventory"
	"github.com/grocerly/inventory/internal/inventory/store"
)

// File is the top-level shape of a seed file.
type File struct {
	Suppliers []SupplierSeed `koanf:"suppliers"`
	Products  []ProductSeed  `koanf:"products"`
}

type SupplierSeed struct {
	ID      int    `koanf:"id"`
	Name    string `koanf:"name"`
	Contact string `koanf:"contact"`
}

// ProductSeed describes one product. A non-empty Expiry makes it
// perishable, otherwise ShelfLife must be set.
type ProductSeed struct {
	ID         int     `koanf:"id"`
	Name       string  `koanf:"name"`
	Price      float64 `koanf:"price"`
	Quantity   int     `koanf:"quantity"`
	Category   string  `koanf:"category"`
	SupplierID int     `koanf:"supplier_id"`
	Expiry     string  `koanf:"expiry"`
	ShelfLife  string  `koanf:"shelf_life"`
}

// Load reads the seed file at path and inserts its contents into st.
// Suppliers are loaded before products so every product's supplier exists
// by the time it is added. The first invalid entry aborts the load.
func Load(path string, st store.InventoryStore) (suppliers, products int, err error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return 0, 0, fmt.Errorf("failed to read seed file %q: %w", path, err)
	}

	var f File
	if err := k.Unmarshal("", &f); err != nil {
		return 0, 0, fmt.Errorf("failed to parse seed file %q: %w", path, err)
	}

	for _, s := range f.Suppliers {
		supplier, err := inventory.NewSupplier(s.ID, s.Name, s.Contact)
		if err != nil {
			return suppliers, products, fmt.Errorf("invalid seed supplier %d: %w", s.ID, err)
		}
		if err := st.AddSupplier(supplier); err != nil {
			return suppliers, products, fmt.Errorf("failed to load seed supplier %d: %w", s.ID, err)
		}
		suppliers++
	}

	for _, p := range f.Products {
		product, err := buildProduct(p)
		if err != nil {
			return suppliers, products, fmt.Errorf("invalid seed product %d: %w", p.ID, err)
		}
		if err := st.AddProduct(product); err != nil {
			return suppliers, products, fmt.Errorf("failed to load seed product %d: %w", p.ID, err)
		}
		products++
	}

	return suppliers, products, nil
}

func buildProduct(p ProductSeed) (*inventory.Product, error) {
	category, err := inventory.ParseCategory(p.Category)
	if err != nil {
		return nil, err
	}
	if p.Expiry != "" {
		return inventory.NewPerishable(p.ID, p.Name, p.Price, p.Quantity, category, p.SupplierID, p.Expiry)
	}
	return inventory.NewNonPerishable(p.ID, p.Name, p.Price, p.Quantity, category, p.SupplierID, p.ShelfLife)
}
