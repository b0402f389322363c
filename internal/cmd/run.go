package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/grocerly/inventory/internal/app"
	"github.com/grocerly/inventory/internal/config"
	"github.com/grocerly/inventory/pkg/bootstrap"
	"github.com/grocerly/inventory/pkg/config/configloader"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the interactive console menu",
	RunE:  runMenu,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

// runMenu is also the root command's action, so plain `inventory` starts
// the menu.
func runMenu(_ *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, err := setup()
	if err != nil {
		return err
	}

	menu := app.SetupMenu(deps, os.Stdin, os.Stdout)
	if err := menu.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("console menu failed: %w", err)
	}
	deps.Logger.Info("application stopped")
	return nil
}

// setup loads the configuration, builds the logger and wires the
// application dependencies.
func setup() (*app.Dependencies, error) {
	cfg, err := configloader.Load[*config.Config](appName)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := bootstrap.NewLogger(cfg.Log.Level)
	slog.SetDefault(logger)
	logger.Debug("configuration loaded", slog.String("config", cfg.String()))

	deps, err := app.SetupDependencies(cfg, logger)
	if err != nil {
		return nil, err
	}
	return deps, nil
}
