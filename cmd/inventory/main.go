// Package main is the entry point of the grocery inventory manager.
package main

import (
	"github.com/grocerly/inventory/internal/cmd"
)

func main() {
	cmd.Execute()
}
