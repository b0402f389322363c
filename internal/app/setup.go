// Package app contains the application setup for the inventory manager.
package app

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/grocerly/inventory/internal/cli"
	"github.com/grocerly/inventory/internal/config"
	"github.com/grocerly/inventory/internal/inventory/service"
	"github.com/grocerly/inventory/internal/inventory/store"
	"github.com/grocerly/inventory/internal/report"
	"github.com/grocerly/inventory/internal/seed"
)

type Dependencies struct {
	Store    store.InventoryStore
	Service  *service.Service
	Reporter *report.Reporter
	Logger   *slog.Logger
}

// SetupDependencies builds the store, service and reporter, and loads the
// seed file when one is configured.
func SetupDependencies(cfg *config.Config, logger *slog.Logger) (*Dependencies, error) {
	st := store.NewInMemoryStore()

	if cfg.Seed.File != "" {
		suppliers, products, err := seed.Load(cfg.Seed.File, st)
		if err != nil {
			return nil, fmt.Errorf("failed to load seed data: %w", err)
		}
		logger.Info("seed data loaded",
			slog.String("file", cfg.Seed.File),
			slog.Int("suppliers", suppliers),
			slog.Int("products", products),
		)
	}

	svc := service.NewService(st)
	if err := svc.SetDefaultLowStockThreshold(cfg.Store.LowStockThreshold); err != nil {
		return nil, fmt.Errorf("invalid low stock threshold: %w", err)
	}

	return &Dependencies{
		Store:    st,
		Service:  svc,
		Reporter: report.NewReporter(svc),
		Logger:   logger,
	}, nil
}

// SetupMenu wires the console driver over the given input and output.
func SetupMenu(deps *Dependencies, in io.Reader, out io.Writer) *cli.Menu {
	return cli.New(in, out, deps.Service, deps.Reporter, deps.Logger)
}
