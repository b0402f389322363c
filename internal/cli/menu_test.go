package cli

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grocerly/inventory/internal/inventory/service"
	"github.com/grocerly/inventory/internal/inventory/store"
	"github.com/grocerly/inventory/internal/report"
)

// runScript feeds the given lines to a menu over a fresh store and returns
// everything the menu wrote.
func runScript(t *testing.T, lines ...string) string {
	t.Helper()
	svc := service.NewService(store.NewInMemoryStore())
	rep := report.NewReporter(svc)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	var out bytes.Buffer
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	menu := New(in, &out, svc, rep, logger)

	require.NoError(t, menu.Run(context.Background()))
	return out.String()
}

func Test_Run_ExitImmediately(t *testing.T) {
	out := runScript(t, "4")

	assert.Contains(t, out, "WELCOME TO GROCERY INVENTORY MANAGER")
	assert.Contains(t, out, "MAIN MENU:")
	assert.Contains(t, out, "Exiting... Thank you for using Grocery Inventory Manager!")
}

func Test_Run_EOFTerminates(t *testing.T) {
	// an exhausted input ends the loop without error
	out := runScript(t)
	assert.Contains(t, out, "MAIN MENU:")
}

func Test_Run_InvalidChoiceReprompts(t *testing.T) {
	out := runScript(t, "banana", "9", "4")

	assert.Contains(t, out, "Error! Please enter a valid number.")
	assert.Contains(t, out, "Error! Invalid choice. Please try again.")
}

func Test_AddSupplierAndProduct(t *testing.T) {
	out := runScript(t,
		"2",           // manage suppliers
		"2",           // add supplier
		"ABC Farms",   // name
		"070-1234567", // contact
		"1",           // view all suppliers
		"5",           // back to main menu
		"1",           // manage products
		"5",           // add product
		"1",           // perishable
		"Milk",        // name
		"350",         // price
		"3",           // quantity
		"1",           // category: Dairy
		"1",           // supplier id
		"2030-06-01",  // expiry
		"1",           // view all products
		"8",           // back to main menu
		"4",           // exit
	)

	assert.Contains(t, out, "Supplier 'ABC Farms' added with ID: 1")
	assert.Contains(t, out, "1 | ABC Farms | 070-1234567")
	assert.Contains(t, out, "Product will be assigned ID: 1")
	assert.Contains(t, out, "Product 'Milk' added with ID: 1")
	assert.Contains(t, out, "Perishable product added successfully!")
	// qty 3 is at or below the default threshold of 5
	assert.Contains(t, out, "1 | Milk | LKR 350.00 | Qty: 3 | Dairy | Supplier: ABC Farms [LOW STOCK] | Expiry: 2030-06-01")
}

func Test_AddProduct_CancelledWithoutSuppliers(t *testing.T) {
	out := runScript(t,
		"1",    // manage products
		"5",    // add product
		"2",    // non-perishable
		"Rice", // name
		"250",  // price
		"40",   // quantity
		"6",    // category: Dried food
		"8",    // back
		"4",    // exit
	)

	assert.Contains(t, out, "No suppliers found! Add a supplier first.")
	assert.Contains(t, out, "Product addition cancelled.")
}

func Test_RemoveSupplier_BlockedByProduct(t *testing.T) {
	out := runScript(t,
		"2", "2", "ABC Farms", "070-1234567", // add supplier
		"5",                                                     // back
		"1", "5", "2", "Rice", "250", "40", "6", "1", "2 years", // add non-perishable
		"8",      // back
		"2", "4", // remove supplier
		"1", // id 1
		"5", // back
		"4", // exit
	)

	assert.Contains(t, out, "Non-perishable product added successfully!")
	assert.Contains(t, out, "Cannot remove supplier! There are products associated with this supplier.")
}

func Test_UpdateStock_NotFound(t *testing.T) {
	out := runScript(t,
		"1",  // manage products
		"6",  // update stock
		"99", // id
		"10", // quantity
		"8",  // back
		"4",  // exit
	)

	assert.Contains(t, out, "Product with ID 99 not found!")
}

func Test_PastExpiryWarning(t *testing.T) {
	out := runScript(t,
		"2", "2", "ABC Farms", "070-1234567", // add supplier
		"5",                                                           // back
		"1", "5", "1", "Yoghurt", "120", "10", "1", "1", "2020-01-01", // past expiry
		"8", // back
		"4", // exit
	)

	assert.Contains(t, out, "Warning: Expiry date 2020-01-01 is in the past. Product may be expired.")
	assert.Contains(t, out, "Perishable product added successfully!")
}

func Test_ReportsMenu_DisplaysOnConsoleBeforeSaving(t *testing.T) {
	out := runScript(t,
		"3", // inventory reports
		"1", // low stock report
		"n", // do not save
		"5", // back
		"4", // exit
	)

	assert.Contains(t, out, "LOW STOCK PRODUCTS REPORT")
	assert.Contains(t, out, "REPORT END")
	assert.Contains(t, out, "Report not saved. Displayed on console only.")
}

func Test_ReportsMenu_SavesToFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "expired.txt")
	out := runScript(t,
		"3",      // inventory reports
		"2",      // expired products report
		"y",      // save
		filename, // explicit filename
		"5",      // back
		"4",      // exit
	)

	assert.Contains(t, out, "EXPIRED PRODUCTS REPORT")
	assert.Contains(t, out, "Enter filename (default: expired_products_report.txt): ")
	assert.Contains(t, out, "Report saved to: "+filename)
	content, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Contains(t, string(content), "EXPIRED PRODUCTS REPORT")
}

func Test_CategoryReportFilename(t *testing.T) {
	assert.Equal(t, "category_report_dairy.txt", categoryReportFilename("Dairy"))
	assert.Equal(t, "category_report_canned_food.txt", categoryReportFilename("Canned food"))
}

func Test_EmptyListings(t *testing.T) {
	out := runScript(t,
		"1", "1", // view all products
		"2", // view expired
		"3", // view low stock
		"8", // back
		"4", // exit
	)

	assert.Contains(t, out, "PRODUCT LIST:")
	assert.Contains(t, out, "EXPIRED PRODUCT LIST:")
	assert.Contains(t, out, "LOW STOCK PRODUCT LIST:")
	// each empty listing reports gracefully
	assert.GreaterOrEqual(t, strings.Count(out, "No products found!"), 3)
}
