// Package cli implements the interactive console menu. It is the only
// layer that talks to the user: the core returns structured errors and the
// menu translates them into messages.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/grocerly/inventory/internal/inventory"
	inverrors "github.com/grocerly/inventory/internal/inventory/errors"
	"github.com/grocerly/inventory/internal/inventory/service"
	"github.com/grocerly/inventory/internal/report"
)

// Menu drives the console interaction. Input and output are injected so
// the loop can be scripted in tests; there is no package-level scanner.
type Menu struct {
	in       *bufio.Scanner
	out      io.Writer
	service  service.InventoryService
	reporter *report.Reporter
	logger   *slog.Logger
}

// New creates a Menu reading from in and writing to out.
func New(in io.Reader, out io.Writer, svc service.InventoryService, rep *report.Reporter, logger *slog.Logger) *Menu {
	return &Menu{
		in:       bufio.NewScanner(in),
		out:      out,
		service:  svc,
		reporter: rep,
		logger:   logger.With("component", "cli"),
	}
}

// Run executes the main menu loop until the user exits, the input is
// exhausted, or the context is cancelled.
func (m *Menu) Run(ctx context.Context) error {
	m.println(strings.Repeat("=", 60))
	m.println("WELCOME TO GROCERY INVENTORY MANAGER")
	m.println(strings.Repeat("=", 60))

	for ctx.Err() == nil {
		m.println("\nMAIN MENU:")
		m.println("1. Manage Products")
		m.println("2. Manage Suppliers")
		m.println("3. Inventory Reports")
		m.println("4. Exit")

		choice, ok := m.readInt("Enter your choice: ")
		if !ok {
			return nil
		}
		switch choice {
		case 1:
			if !m.productsMenu(ctx) {
				return nil
			}
		case 2:
			if !m.suppliersMenu(ctx) {
				return nil
			}
		case 3:
			if !m.reportsMenu(ctx) {
				return nil
			}
		case 4:
			m.println("\nExiting... Thank you for using Grocery Inventory Manager!")
			return nil
		default:
			m.println("Error! Invalid choice. Please try again.")
		}
	}
	return ctx.Err()
}

// productsMenu returns false when input is exhausted.
func (m *Menu) productsMenu(ctx context.Context) bool {
	for ctx.Err() == nil {
		m.println("\nMANAGE PRODUCTS:")
		m.println("1. View All Products")
		m.println("2. View Expired Products")
		m.println("3. View Low Stock Products")
		m.println("4. View Products by Category")
		m.println("5. Add Product")
		m.println("6. Update Product Stock")
		m.println("7. Remove Product")
		m.println("8. Return to Main Menu")

		choice, ok := m.readInt("Enter choice: ")
		if !ok {
			return false
		}
		switch choice {
		case 1:
			m.println("PRODUCT LIST:")
			m.printProducts(m.service.Products())
		case 2:
			m.println("EXPIRED PRODUCT LIST:")
			m.printProducts(m.service.ExpiredProducts())
		case 3:
			m.println("LOW STOCK PRODUCT LIST:")
			m.printProducts(m.service.LowStockProducts())
		case 4:
			if !m.listByCategory() {
				return false
			}
		case 5:
			if !m.addProduct() {
				return false
			}
		case 6:
			if !m.updateStock() {
				return false
			}
		case 7:
			if !m.removeProduct() {
				return false
			}
		case 8:
			m.println("Returning to Main Menu...")
			return true
		default:
			m.println("Error! Invalid option.")
		}
	}
	return true
}

func (m *Menu) listByCategory() bool {
	category, ok := m.readCategory()
	if !ok {
		return false
	}
	products, err := m.service.ProductsByCategory(category)
	if err != nil {
		m.printf("Error: %v\n", err)
		return true
	}
	m.printf("PRODUCTS IN CATEGORY: %s\n", category)
	m.printProducts(products)
	return true
}

func (m *Menu) addProduct() bool {
	m.println("\nSELECT PRODUCT TYPE:")
	m.println("1. Perishable Product")
	m.println("2. Non-Perishable Product")
	m.println("3. Return to Previous Menu")

	choice, ok := m.readInt("Enter choice: ")
	if !ok {
		return false
	}
	switch choice {
	case 1:
		return m.addPerishable()
	case 2:
		return m.addNonPerishable()
	case 3:
		m.println("Returning to Product Menu...")
	default:
		m.println("Error! Invalid option.")
	}
	return true
}

func (m *Menu) addPerishable() bool {
	m.println("\nADD PERISHABLE PRODUCT:")
	m.printf("Product will be assigned ID: %d\n", m.service.NextProductID())

	common, ok := m.readCommonProductFields()
	if !ok {
		return false
	}
	if common == nil {
		return true
	}
	expiry, ok := m.readLine("Expiry Date (YYYY-MM-DD): ")
	if !ok {
		return false
	}

	created, err := m.service.AddPerishable(service.PerishableCreateDto{
		Name:       common.name,
		Price:      common.price,
		Quantity:   common.quantity,
		Category:   common.category,
		SupplierID: common.supplierID,
		ExpiryDate: expiry,
	})
	if err != nil {
		m.printf("Error: %v\n", err)
		return true
	}
	if created.Expired {
		m.printf("Warning: Expiry date %s is in the past. Product may be expired.\n", created.ExpiryDate)
	}
	m.printf("Product '%s' added with ID: %d\n", created.Name, created.ID)
	m.println("Perishable product added successfully!")
	m.logger.Info("product added", slog.Int("id", created.ID), slog.String("kind", created.Kind))
	return true
}

func (m *Menu) addNonPerishable() bool {
	m.println("\nADD NON-PERISHABLE PRODUCT:")
	m.printf("Product will be assigned ID: %d\n", m.service.NextProductID())

	common, ok := m.readCommonProductFields()
	if !ok {
		return false
	}
	if common == nil {
		return true
	}
	shelfLife, ok := m.readLine("Shelf Life (e.g. 2 years): ")
	if !ok {
		return false
	}

	created, err := m.service.AddNonPerishable(service.NonPerishableCreateDto{
		Name:       common.name,
		Price:      common.price,
		Quantity:   common.quantity,
		Category:   common.category,
		SupplierID: common.supplierID,
		ShelfLife:  shelfLife,
	})
	if err != nil {
		m.printf("Error: %v\n", err)
		return true
	}
	m.printf("Product '%s' added with ID: %d\n", created.Name, created.ID)
	m.println("Non-perishable product added successfully!")
	m.logger.Info("product added", slog.Int("id", created.ID), slog.String("kind", created.Kind))
	return true
}

// commonProductFields is the shared part of both add-product flows.
type commonProductFields struct {
	name       string
	price      float64
	quantity   int
	category   string
	supplierID int
}

// readCommonProductFields returns (nil, true) when the user cancelled at
// supplier selection and (nil, false) when input is exhausted.
func (m *Menu) readCommonProductFields() (*commonProductFields, bool) {
	name, ok := m.readLine("Product Name: ")
	if !ok {
		return nil, false
	}
	price, ok := m.readFloat("Price (LKR): ")
	if !ok {
		return nil, false
	}
	quantity, ok := m.readInt("Quantity: ")
	if !ok {
		return nil, false
	}
	category, ok := m.readCategory()
	if !ok {
		return nil, false
	}
	supplierID, ok, cancelled := m.selectSupplier()
	if !ok {
		return nil, false
	}
	if cancelled {
		m.println("Product addition cancelled.")
		return nil, true
	}
	return &commonProductFields{
		name:       name,
		price:      price,
		quantity:   quantity,
		category:   category,
		supplierID: supplierID,
	}, true
}

func (m *Menu) updateStock() bool {
	id, ok := m.readInt("Product ID: ")
	if !ok {
		return false
	}
	quantity, ok := m.readInt("New Quantity: ")
	if !ok {
		return false
	}
	if err := m.service.UpdateStock(id, quantity); err != nil {
		switch {
		case errors.Is(err, inverrors.ErrProductNotFound):
			m.printf("Product with ID %d not found!\n", id)
		default:
			m.printf("Error: %v\n", err)
		}
		return true
	}
	m.println("Stock updated successfully!")
	return true
}

func (m *Menu) removeProduct() bool {
	id, ok := m.readInt("Product ID to remove: ")
	if !ok {
		return false
	}
	if err := m.service.RemoveProduct(id); err != nil {
		if errors.Is(err, inverrors.ErrProductNotFound) {
			m.printf("Product with ID %d not found!\n", id)
		} else {
			m.printf("Error: %v\n", err)
		}
		return true
	}
	m.printf("Product with ID: %d removed successfully!\n", id)
	return true
}

// suppliersMenu returns false when input is exhausted.
func (m *Menu) suppliersMenu(ctx context.Context) bool {
	for ctx.Err() == nil {
		m.println("\nMANAGE SUPPLIERS:")
		m.println("1. View All Suppliers")
		m.println("2. Add Supplier")
		m.println("3. Edit Supplier")
		m.println("4. Remove Supplier")
		m.println("5. Return to Main Menu")

		choice, ok := m.readInt("Enter choice: ")
		if !ok {
			return false
		}
		switch choice {
		case 1:
			m.println("SUPPLIER LIST:")
			m.printSuppliers(m.service.Suppliers())
		case 2:
			if !m.addSupplier() {
				return false
			}
		case 3:
			if !m.editSupplier() {
				return false
			}
		case 4:
			if !m.removeSupplier() {
				return false
			}
		case 5:
			m.println("Returning to Main Menu...")
			return true
		default:
			m.println("Error! Invalid option.")
		}
	}
	return true
}

func (m *Menu) addSupplier() bool {
	name, ok := m.readLine("Supplier Name: ")
	if !ok {
		return false
	}
	contact, ok := m.readLine("Contact: ")
	if !ok {
		return false
	}
	created, err := m.service.AddSupplier(service.SupplierCreateDto{Name: name, Contact: contact})
	if err != nil {
		m.printf("Error: %v\n", err)
		return true
	}
	m.printf("Supplier '%s' added with ID: %d\n", created.Name, created.ID)
	m.logger.Info("supplier added", slog.Int("id", created.ID))
	return true
}

func (m *Menu) editSupplier() bool {
	id, ok := m.readInt("Supplier ID to edit: ")
	if !ok {
		return false
	}
	if _, err := m.service.FindSupplier(id); err != nil {
		m.printf("Supplier with ID %d not found!\n", id)
		return true
	}
	name, ok := m.readLine("New Name: ")
	if !ok {
		return false
	}
	contact, ok := m.readLine("New Contact: ")
	if !ok {
		return false
	}
	if err := m.service.UpdateSupplier(id, service.SupplierCreateDto{Name: name, Contact: contact}); err != nil {
		m.printf("Error: %v\n", err)
		return true
	}
	m.println("Supplier updated successfully!")
	return true
}

func (m *Menu) removeSupplier() bool {
	id, ok := m.readInt("Supplier ID to remove: ")
	if !ok {
		return false
	}
	if err := m.service.RemoveSupplier(id); err != nil {
		switch {
		case errors.Is(err, inverrors.ErrSupplierNotFound):
			m.printf("Supplier with ID %d not found!\n", id)
		case errors.Is(err, inverrors.ErrSupplierHasProducts):
			m.println("Cannot remove supplier! There are products associated with this supplier.")
		default:
			m.printf("Error: %v\n", err)
		}
		return true
	}
	m.printf("Supplier with ID: %d removed successfully!\n", id)
	return true
}

// reportsMenu returns false when input is exhausted. Every report type
// is rendered on the console first, then the user may save it to a file.
func (m *Menu) reportsMenu(ctx context.Context) bool {
	for ctx.Err() == nil {
		m.println("\nINVENTORY REPORTS:")
		m.println("1. Low Stock Report")
		m.println("2. Expired Products Report")
		m.println("3. Category Report")
		m.println("4. Complete Inventory Report")
		m.println("5. Return to Main Menu")

		choice, ok := m.readInt("Enter choice: ")
		if !ok {
			return false
		}
		switch choice {
		case 1:
			if !m.showAndOfferSave(m.reporter.LowStock(), "low_stock_report.txt") {
				return false
			}
		case 2:
			if !m.showAndOfferSave(m.reporter.Expired(), "expired_products_report.txt") {
				return false
			}
		case 3:
			category, ok := m.readCategory()
			if !ok {
				return false
			}
			content, err := m.reporter.ByCategory(category)
			if err != nil {
				m.printf("Error: %v\n", err)
				continue
			}
			if !m.showAndOfferSave(content, categoryReportFilename(category)) {
				return false
			}
		case 4:
			include, ok := m.readYesNo("Include supplier details? (y/n): ")
			if !ok {
				return false
			}
			if !m.showAndOfferSave(m.reporter.Complete(include), "complete_inventory_report.txt") {
				return false
			}
		case 5:
			m.println("Returning to Main Menu...")
			return true
		default:
			m.println("Error! Invalid option.")
		}
	}
	return true
}

// showAndOfferSave prints the report, then asks whether to write it to a
// file, suggesting a default filename. A write failure is reported to the
// user and never aborts the loop. Returns false when input is exhausted.
func (m *Menu) showAndOfferSave(content, defaultFilename string) bool {
	m.println(content)

	m.println("\nWould you like to save this report to a file?")
	save, ok := m.readYesNo("Save report to file? (y/n): ")
	if !ok {
		return false
	}
	if !save {
		m.println("Report not saved. Displayed on console only.")
		return true
	}
	filename, ok := m.readLine(fmt.Sprintf("Enter filename (default: %s): ", defaultFilename))
	if !ok {
		return false
	}
	if filename == "" {
		filename = defaultFilename
	}
	if err := report.SaveToFile(filename, content); err != nil {
		m.printf("Error saving to file '%s': %v\n", filename, err)
		m.logger.Warn("report export failed", slog.String("file", filename), slog.Any("error", err))
		return true
	}
	m.printf("Report saved to: %s\n", filename)
	m.logger.Info("report exported", slog.String("file", filename))
	return true
}

// categoryReportFilename derives the suggested filename from the category
// label, e.g. "Canned food" becomes category_report_canned_food.txt.
func categoryReportFilename(category string) string {
	return "category_report_" + strings.ToLower(strings.ReplaceAll(category, " ", "_")) + ".txt"
}

// selectSupplier lists the suppliers and reads an ID. Entering 0 cancels.
// ok is false when input is exhausted.
func (m *Menu) selectSupplier() (id int, ok, cancelled bool) {
	suppliers := m.service.Suppliers()
	if len(suppliers) == 0 {
		m.println("No suppliers found! Add a supplier first.")
		return 0, true, true
	}
	m.println("AVAILABLE SUPPLIERS:")
	m.printSuppliers(suppliers)
	for {
		id, ok := m.readInt("Supplier ID (0 to cancel): ")
		if !ok {
			return 0, false, false
		}
		if id == 0 {
			return 0, true, true
		}
		if _, err := m.service.FindSupplier(id); err != nil {
			m.printf("Supplier with ID %d not found!\n", id)
			continue
		}
		return id, true, false
	}
}

// readCategory shows the numbered category list and reads a choice.
func (m *Menu) readCategory() (string, bool) {
	categories := inventory.Categories()
	m.println("SELECT CATEGORY:")
	for i, c := range categories {
		m.printf("%d. %s\n", i+1, c)
	}
	for {
		choice, ok := m.readInt("Enter category number: ")
		if !ok {
			return "", false
		}
		if choice >= 1 && choice <= len(categories) {
			return categories[choice-1].String(), true
		}
		m.println("Error! Invalid option.")
	}
}

func (m *Menu) printProducts(products []service.ProductDto) {
	if len(products) == 0 {
		m.println("No products found!")
		return
	}
	for _, p := range products {
		m.println(report.FormatProductLine(p))
	}
}

func (m *Menu) printSuppliers(suppliers []service.SupplierDto) {
	if len(suppliers) == 0 {
		m.println("No suppliers found!")
		return
	}
	for _, s := range suppliers {
		m.println(report.FormatSupplierLine(s))
	}
}

// readLine prompts and returns the next input line. ok is false on EOF.
func (m *Menu) readLine(prompt string) (line string, ok bool) {
	m.printf("%s", prompt)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

// readInt re-prompts until the user enters a valid integer.
func (m *Menu) readInt(prompt string) (value int, ok bool) {
	for {
		line, ok := m.readLine(prompt)
		if !ok {
			return 0, false
		}
		value, err := strconv.Atoi(line)
		if err != nil {
			m.println("Error! Please enter a valid number.")
			continue
		}
		return value, true
	}
}

// readFloat re-prompts until the user enters a valid number.
func (m *Menu) readFloat(prompt string) (value float64, ok bool) {
	for {
		line, ok := m.readLine(prompt)
		if !ok {
			return 0, false
		}
		value, err := strconv.ParseFloat(line, 64)
		if err != nil {
			m.println("Error! Please enter a valid number.")
			continue
		}
		return value, true
	}
}

// readYesNo re-prompts until the user answers y or n.
func (m *Menu) readYesNo(prompt string) (value, ok bool) {
	for {
		line, ok := m.readLine(prompt)
		if !ok {
			return false, false
		}
		switch strings.ToLower(line) {
		case "y", "yes":
			return true, true
		case "n", "no":
			return false, true
		}
		m.println("Error! Please answer y or n.")
	}
}

func (m *Menu) println(line string) {
	fmt.Fprintln(m.out, line)
}

func (m *Menu) printf(format string, args ...any) {
	fmt.Fprintf(m.out, format, args...)
}
