package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kidssmart-labs/edufind-cli/internal/core/domain"
)

var (
	savedLimit int
	savedJSON  bool
	savedFull  bool
)

var savedCmd = &cobra.Command{
	Use:   "saved",
	Short: "List saved results",
	Long: `Lists previously saved results, most recent first.

By default only the ID, query, title and link are shown; use --full to
include the stored content (classification tags plus page text).`,
	RunE: runSaved,
}

func init() {
	savedCmd.Flags().IntVarP(&savedLimit, "limit", "n", 0, "maximum rows to show (0 = all)")
	savedCmd.Flags().BoolVar(&savedJSON, "json", false, "output rows as JSON")
	savedCmd.Flags().BoolVar(&savedFull, "full", false, "include stored content")
	rootCmd.AddCommand(savedCmd)
}

func runSaved(cmd *cobra.Command, _ []string) error {
	if err := ensureServices(); err != nil {
		return err
	}

	rows, err := finderService.Saved(cmd.Context(), savedLimit)
	if err != nil {
		return fmt.Errorf("listing saved results: %w", err)
	}

	if savedJSON {
		data, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal rows: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(rows) == 0 {
		cmd.Println("No data saved yet. Run 'edufind find' first.")
		return nil
	}

	for _, row := range rows {
		cmd.Printf("  [%d] %s\n", row.ID, row.Title)
		cmd.Printf("      Query: %s\n", row.Query)
		cmd.Printf("      %s\n", row.Link)
		if savedFull {
			printTags(cmd, row)
		}
		cmd.Println()
	}
	return nil
}

// printTags decodes the content tag block for display, falling back to
// the raw content when the row predates the tag format.
func printTags(cmd *cobra.Command, row domain.StoredRow) {
	tags, raw, err := domain.ParseContentTags(row.Content)
	if err != nil {
		cmd.Printf("      %s\n", row.Content)
		return
	}
	cmd.Printf("      Type: %s | Mode: %s | Cost: %s | Country: %s | Region: %s\n",
		tags.Type, tags.Mode, tags.Cost, tags.Country, tags.Region)
	cmd.Printf("      %s\n", previewSnippet(raw))
}
