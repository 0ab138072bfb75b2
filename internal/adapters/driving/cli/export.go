package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export saved results as CSV",
	Long: `Exports all saved results as CSV with the header row
ID,Query,Title,Link,Content. Writes to stdout unless --out is given.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "write CSV to a file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	if err := ensureServices(); err != nil {
		return err
	}

	if exportOut == "" {
		return finderService.Export(cmd.Context(), cmd.OutOrStdout())
	}

	f, err := os.Create(exportOut)
	if err != nil {
		return fmt.Errorf("creating %s: %w", exportOut, err)
	}
	defer f.Close()

	if err := finderService.Export(cmd.Context(), f); err != nil {
		return fmt.Errorf("exporting to %s: %w", exportOut, err)
	}
	cmd.Printf("Exported saved results to %s\n", exportOut)
	return nil
}
