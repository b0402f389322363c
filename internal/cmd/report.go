package cmd

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/grocerly/inventory/internal/report"
)

var (
	reportTypes      []string
	reportDir        string
	reportCategory   string
	includeSuppliers bool
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Export inventory reports to files without entering the menu",
	Long: `Export one or more reports in a single run. Each report type is
written to <dir>/<type>_report.txt. Available types: low-stock, expired,
category (requires --category), complete.`,
	RunE: exportReports,
}

func init() {
	reportCmd.Flags().StringSliceVarP(&reportTypes, "type", "t", []string{"complete"}, "report types to export")
	reportCmd.Flags().StringVarP(&reportDir, "dir", "d", ".", "output directory")
	reportCmd.Flags().StringVarP(&reportCategory, "category", "c", "", "category for the category report")
	reportCmd.Flags().BoolVar(&includeSuppliers, "suppliers", false, "include supplier details in the complete report")
	rootCmd.AddCommand(reportCmd)
}

func exportReports(cmd *cobra.Command, _ []string) error {
	deps, err := setup()
	if err != nil {
		return err
	}
	return exportAll(deps.Reporter, cmd.OutOrStdout())
}

// exportAll builds and writes the requested reports in parallel and fails
// on the first error. Success messages are printed afterwards in flag
// order so concurrent exports do not interleave output.
func exportAll(r *report.Reporter, out io.Writer) error {
	filenames := make([]string, len(reportTypes))
	var g errgroup.Group
	for i, t := range reportTypes {
		i, t := i, t
		g.Go(func() error {
			content, err := buildReport(r, t)
			if err != nil {
				return err
			}
			filename := filepath.Join(reportDir, t+"_report.txt")
			if err := report.SaveToFile(filename, content); err != nil {
				return err
			}
			filenames[i] = filename
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	for _, filename := range filenames {
		fmt.Fprintf(out, "Report saved to: %s\n", filename)
	}
	return nil
}

func buildReport(r *report.Reporter, reportType string) (string, error) {
	switch reportType {
	case "low-stock":
		return r.LowStock(), nil
	case "expired":
		return r.Expired(), nil
	case "category":
		if reportCategory == "" {
			return "", fmt.Errorf("the category report requires --category")
		}
		return r.ByCategory(reportCategory)
	case "complete":
		return r.Complete(includeSuppliers), nil
	default:
		return "", fmt.Errorf("unknown report type %q", reportType)
	}
}
