// Package inventory defines the domain entities of the grocery inventory
// system: product categories, suppliers and the two product variants.
package inventory

import (
	"strings"

	inverrors "github.com/grocerly/inventory/internal/inventory/errors"
)

// Category is the closed set of product categories carried by the store.
type Category int

const (
	Dairy Category = iota
	Produce
	Meat
	Beverages
	CannedFood
	DriedFood
)

var categoryNames = map[Category]string{
	Dairy:      "Dairy",
	Produce:    "Produce",
	Meat:       "Meat",
	Beverages:  "Beverages",
	CannedFood: "Canned food",
	DriedFood:  "Dried food",
}

// Categories returns all categories in declaration order.
func Categories() []Category {
	return []Category{Dairy, Produce, Meat, Beverages, CannedFood, DriedFood}
}

// String returns the human-readable label, e.g. "Canned food".
func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "Unknown"
}

// ParseCategory resolves a category from user input. Matching is
// case-insensitive and tolerates underscores ("CANNED_FOOD", "canned food"
// and "Canned food" all resolve to CannedFood).
func ParseCategory(s string) (Category, error) {
	normalized := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), "_", " "))
	for c, name := range categoryNames {
		if strings.ToLower(name) == normalized {
			return c, nil
		}
	}
	return 0, inverrors.NewValidation("category", "unknown category "+strings.TrimSpace(s))
}
