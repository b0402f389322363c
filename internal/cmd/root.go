// Package cmd defines the command-line surface of the inventory manager.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const appName = "inventory"

var rootCmd = &cobra.Command{
	Use:   appName,
	Short: "Grocery Inventory Manager",
	Long: `Grocery Inventory Manager is a console application for managing a
small grocery store's products and suppliers.

Run it without arguments for the interactive menu, or use the report
subcommand to export reports without entering the menu.`,
	RunE: runMenu,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
