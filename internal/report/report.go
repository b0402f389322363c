// Package report formats store contents into console text and report
// files. It consumes only the read-only query surface of the service.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/grocerly/inventory/internal/inventory/service"
)

const (
	separatorWidth  = 60
	timestampLayout = "2006-01-02 15:04:05"
	footerCredit    = "Generated by Grocery Inventory Manager"
)

// InventoryReader is the read-only slice of the service the reporter needs.
type InventoryReader interface {
	Products() []service.ProductDto
	ExpiredProducts() []service.ProductDto
	LowStockProducts() []service.ProductDto
	ProductsByCategory(category string) ([]service.ProductDto, error)
	Suppliers() []service.SupplierDto
	Summary() service.SummaryDto
}

// Reporter builds the text reports.
type Reporter struct {
	reader InventoryReader
	clock  func() time.Time
}

// NewReporter creates a Reporter over the given read API.
func NewReporter(reader InventoryReader) *Reporter {
	return &Reporter{
		reader: reader,
		clock:  time.Now,
	}
}

// FormatProductLine renders a product exactly as reports display it:
//
//	id | name | LKR price | Qty: n | category | Supplier: name [LOW STOCK] [EXPIRED]
//
// followed by the variant suffix (expiry date or shelf life).
func FormatProductLine(p service.ProductDto) string {
	var status strings.Builder
	if p.LowStock {
		status.WriteString(" [LOW STOCK]")
	}
	if p.Expired {
		status.WriteString(" [EXPIRED]")
	}

	line := fmt.Sprintf("%d | %s | LKR %.2f | Qty: %d | %s | Supplier: %s%s",
		p.ID, p.Name, p.Price, p.Quantity, p.Category, p.SupplierName, status.String())

	switch {
	case p.ShelfLife != "":
		line += " | Shelf Life: " + p.ShelfLife
	case p.Expired:
		line += " [Expired " + p.ExpiryDate + "]"
	default:
		line += " | Expiry: " + p.ExpiryDate
	}
	return line
}

// FormatSupplierLine renders a supplier as "id | name | contact".
func FormatSupplierLine(s service.SupplierDto) string {
	return fmt.Sprintf("%d | %s | %s", s.ID, s.Name, s.Contact)
}

// LowStock builds the low-stock products report.
func (r *Reporter) LowStock() string {
	return r.productReport("LOW STOCK PRODUCTS REPORT", "LOW STOCK PRODUCTS", r.reader.LowStockProducts())
}

// Expired builds the expired products report.
func (r *Reporter) Expired() string {
	return r.productReport("EXPIRED PRODUCTS REPORT", "EXPIRED PRODUCTS", r.reader.ExpiredProducts())
}

// ByCategory builds the report for a single category. The category name is
// validated; unknown names fail.
func (r *Reporter) ByCategory(category string) (string, error) {
	products, err := r.reader.ProductsByCategory(category)
	if err != nil {
		return "", err
	}
	return r.productReport(
		fmt.Sprintf("CATEGORY REPORT: %s", category),
		fmt.Sprintf("PRODUCTS IN CATEGORY: %s", category),
		products,
	), nil
}

// Complete builds the full inventory report with summary counts, all
// products, expired and low-stock sections, and optionally the supplier
// list.
func (r *Reporter) Complete(includeSupplierDetails bool) string {
	var b strings.Builder
	summary := r.reader.Summary()

	writeHeader(&b, "COMPLETE INVENTORY REPORT", r.clock())

	if includeSupplierDetails {
		b.WriteString("SUPPLIER DETAILS:\n")
		b.WriteString(subSeparator() + "\n")
		suppliers := r.reader.Suppliers()
		if len(suppliers) == 0 {
			b.WriteString("No suppliers found!\n")
		}
		for _, s := range suppliers {
			b.WriteString(FormatSupplierLine(s) + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("PRODUCT SUMMARY:\n")
	b.WriteString(subSeparator() + "\n")
	fmt.Fprintf(&b, "Total Products: %d\n", summary.Products)
	fmt.Fprintf(&b, "Total Suppliers: %d\n", summary.Suppliers)
	fmt.Fprintf(&b, "Expired Products: %d\n", summary.ExpiredProducts)
	fmt.Fprintf(&b, "Low Stock Products: %d\n", summary.LowStockProducts)
	b.WriteString("\n")

	writeProductSection(&b, "ALL PRODUCTS:", r.reader.Products())
	b.WriteString("\n")
	writeProductSection(&b, "EXPIRED PRODUCTS:", r.reader.ExpiredProducts())
	b.WriteString("\n")
	writeProductSection(&b, "LOW STOCK PRODUCTS:", r.reader.LowStockProducts())

	writeFooter(&b)
	return b.String()
}

// productReport is the shared shape of the single-section reports.
func (r *Reporter) productReport(title, sectionTitle string, products []service.ProductDto) string {
	var b strings.Builder
	writeHeader(&b, title, r.clock())

	fmt.Fprintf(&b, "%s (%d):\n", sectionTitle, len(products))
	b.WriteString(subSeparator() + "\n")
	if len(products) == 0 {
		b.WriteString("No products found!\n")
	}
	for _, p := range products {
		b.WriteString(FormatProductLine(p) + "\n")
	}

	writeFooter(&b)
	return b.String()
}

func writeProductSection(b *strings.Builder, title string, products []service.ProductDto) {
	b.WriteString(title + "\n")
	b.WriteString(subSeparator() + "\n")
	if len(products) == 0 {
		b.WriteString("No products found!\n")
		return
	}
	for _, p := range products {
		b.WriteString(FormatProductLine(p) + "\n")
	}
}

func writeHeader(b *strings.Builder, title string, generated time.Time) {
	b.WriteString(separator() + "\n")
	b.WriteString(title + "\n")
	b.WriteString("Generated: " + generated.Format(timestampLayout) + "\n")
	b.WriteString(separator() + "\n")
	b.WriteString("\n")
}

func writeFooter(b *strings.Builder) {
	b.WriteString("\n" + separator() + "\n")
	b.WriteString("REPORT END\n")
	b.WriteString(footerCredit + "\n")
	b.WriteString(separator() + "\n")
}

func separator() string {
	return strings.Repeat("=", separatorWidth)
}

func subSeparator() string {
	return strings.Repeat("-", separatorWidth)
}
