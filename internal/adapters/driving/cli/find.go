package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kidssmart-labs/edufind-cli/internal/core/domain"
)

var (
	findType    string
	findMode    string
	findCost    string
	findCountry string
	findRegion  string
	findMax     int
	findJSON    bool
)

var findCmd = &cobra.Command{
	Use:   "find [topic]",
	Short: "Search the web for educational resources",
	Long: `Searches the web for resources matching a topic, validates each page
against the chosen filters, and saves accepted results.

Location relaxation: when a country/region is set, up to three queries
are tried in order (country+region, country only, no location) until
one returns results.`,
	Args: cobra.ExactArgs(1),
	RunE: runFind,
}

func init() {
	findCmd.Flags().StringVar(&findType, "type", domain.Any, `resource type ("Any", "Course", "Seminar / Workshop", "Video / Lecture", "Article / Other")`)
	findCmd.Flags().StringVar(&findMode, "mode", domain.Any, `delivery mode ("Any", "Online", "In-person")`)
	findCmd.Flags().StringVar(&findCost, "cost", domain.Any, `cost band ("Any", "Free", "Paid / Unknown")`)
	findCmd.Flags().StringVar(&findCountry, "country", domain.Any, "country preference")
	findCmd.Flags().StringVar(&findRegion, "region", domain.Any, "region/city preference (requires --country)")
	findCmd.Flags().IntVarP(&findMax, "max", "n", 8, "maximum number of search results")
	findCmd.Flags().BoolVar(&findJSON, "json", false, "output accepted results as JSON")
	rootCmd.AddCommand(findCmd)
}

// parseFindFilters validates the filter flags into a SearchFilters.
func parseFindFilters() (domain.SearchFilters, error) {
	filters := domain.DefaultFilters()

	typ, err := domain.ParseResourceType(findType)
	if err != nil {
		return filters, err
	}
	mode, err := domain.ParseDeliveryMode(findMode)
	if err != nil {
		return filters, err
	}
	cost, err := domain.ParseCostBand(findCost)
	if err != nil {
		return filters, err
	}
	if !domain.ValidCountry(findCountry) {
		return filters, fmt.Errorf("%w: unknown country %q (run 'edufind regions')", domain.ErrInvalidInput, findCountry)
	}
	if !domain.ValidRegion(findCountry, findRegion) {
		return filters, fmt.Errorf("%w: region %q not available for %q (run 'edufind regions %s')",
			domain.ErrInvalidInput, findRegion, findCountry, findCountry)
	}

	filters.Type = typ
	filters.Mode = mode
	filters.Cost = cost
	filters.Country = findCountry
	filters.Region = findRegion
	return filters, nil
}

func runFind(cmd *cobra.Command, args []string) error {
	topic := args[0]

	filters, err := parseFindFilters()
	if err != nil {
		return err
	}

	if err := ensureServices(); err != nil {
		return err
	}
	if configStore != nil && configStore.GetString("serpapi.api_key") == "" {
		return fmt.Errorf("no SerpAPI key configured; run 'edufind config set serpapi.api_key <key>'")
	}

	maxResults := findMax
	if !cmd.Flags().Changed("max") && configStore != nil {
		if n := configStore.GetInt("search.max_results"); n > 0 {
			maxResults = n
		}
	}

	progress := func(processed, total int) {
		fmt.Fprintf(cmd.ErrOrStderr(), "\rValidating pages... %d/%d", processed, total)
		if processed == total {
			fmt.Fprintln(cmd.ErrOrStderr())
		}
	}

	outcome, err := finderService.Find(cmd.Context(), topic, filters, maxResults, progress)
	if errors.Is(err, domain.ErrEmptyTopic) {
		return fmt.Errorf("please enter a topic to search for")
	}
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	switch {
	case outcome.NoSearchResults():
		cmd.Println("Online search returned 0 results, even after relaxing location. Try changing the topic or filters.")
		return nil
	case outcome.NoneAccepted():
		cmd.Printf("Search found %d pages, but none matched all filters (including location). Try relaxing filters or region.\n", outcome.HitsFound)
		return nil
	}

	if findJSON {
		return outputFindJSON(cmd, outcome)
	}
	return outputFindList(cmd, outcome)
}

func outputFindJSON(cmd *cobra.Command, outcome *domain.SearchOutcome) error {
	data, err := json.MarshalIndent(outcome.Accepted, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputFindList(cmd *cobra.Command, outcome *domain.SearchOutcome) error {
	cmd.Printf("Showing %d validated educational resources (saved locally):\n", len(outcome.Accepted))
	cmd.Println()

	for i, r := range outcome.Accepted {
		cmd.Printf("  [%d] %s\n", i+1, r.Title)
		cmd.Printf("      %s\n", r.Link)

		location := r.Country
		if r.Region != domain.Any {
			location += " - " + r.Region
		}
		cmd.Printf("      Type: %s | Mode: %s | Cost: %s | %s\n", r.Type, r.Mode, r.Cost, location)

		if r.Snippet != "" {
			cmd.Printf("      %s\n", previewSnippet(r.Snippet))
		}
		cmd.Println()
	}
	return nil
}

// previewSnippet bounds a snippet for list display.
func previewSnippet(s string) string {
	const max = 220
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
