package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kidssmart-labs/edufind-cli/internal/core/domain"
)

var regionsCmd = &cobra.Command{
	Use:   "regions [country]",
	Short: "List supported countries and regions",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRegions,
}

func init() {
	rootCmd.AddCommand(regionsCmd)
}

func runRegions(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		country := args[0]
		if !domain.ValidCountry(country) {
			return fmt.Errorf("%w: unknown country %q", domain.ErrInvalidInput, country)
		}
		cmd.Printf("%s: %s\n", country, strings.Join(domain.RegionsFor(country), ", "))
		return nil
	}

	for _, country := range domain.Countries() {
		cmd.Printf("%-16s %s\n", country, strings.Join(domain.RegionsFor(country), ", "))
	}
	return nil
}
