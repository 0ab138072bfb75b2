// Package cli implements the cobra command tree for EduFind.
//
// Commands talk to the core exclusively through the driving ports;
// adapters are wired lazily on first use so that tests can inject
// mocks via the package-level service variables.
package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kidssmart-labs/edufind-cli/internal/adapters/driven/config/file"
	"github.com/kidssmart-labs/edufind-cli/internal/adapters/driven/fetch/web"
	"github.com/kidssmart-labs/edufind-cli/internal/adapters/driven/search/serpapi"
	"github.com/kidssmart-labs/edufind-cli/internal/adapters/driven/storage/sqlite"
	"github.com/kidssmart-labs/edufind-cli/internal/core/ports/driven"
	"github.com/kidssmart-labs/edufind-cli/internal/core/ports/driving"
	"github.com/kidssmart-labs/edufind-cli/internal/core/services"
	"github.com/kidssmart-labs/edufind-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	verboseFlag bool
	configDir   string
	dataDir     string
)

// Services used by commands. Wired by ensureServices; tests replace
// them directly.
var (
	finderService driving.FinderService
	configStore   driven.ConfigStore
	resultStore   driven.ResultStore
)

var rootCmd = &cobra.Command{
	Use:   "edufind",
	Short: "Find educational programs, courses and videos on the web",
	Long: `EduFind searches the web for educational resources matching a topic,
validates each page (educational content, location, type, mode, cost),
and saves accepted results locally for later review and export.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "config directory (default ~/.edufind)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "data directory (default ~/.edufind/data)")
}

// Execute runs the root command.
func Execute() error {
	defer closeServices()
	return rootCmd.Execute()
}

// ensureServices wires the adapters on first use.
func ensureServices() error {
	if finderService != nil {
		return nil
	}

	cfg, err := file.NewConfigStore(configDir)
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}
	configStore = cfg
	applyConfigVerbosity(cfg)

	store, err := sqlite.NewStore(dataDir)
	if err != nil {
		return fmt.Errorf("opening result store: %w", err)
	}
	resultStore = store

	provider := serpapi.New(serpapi.Config{
		APIKey: cfg.GetString("serpapi.api_key"),
		Engine: cfg.GetString("serpapi.engine"),
	})

	fetchTimeout := time.Duration(cfg.GetInt("fetch.timeout_seconds")) * time.Second
	fetcher := web.New(fetchTimeout, cfg.GetString("fetch.user_agent"))

	finder := services.NewFinder(provider, fetcher, store)
	finder.SetFetchMaxChars(cfg.GetInt("fetch.max_chars"))
	finderService = finder
	return nil
}

// applyConfigVerbosity enables verbose logging when the config asks
// for it and the --verbose flag did not already.
func applyConfigVerbosity(cfg driven.ConfigStore) {
	if !verboseFlag && cfg.GetBool("verbose") {
		logger.SetVerbose(true)
	}
}

// closeServices releases wired resources.
func closeServices() {
	if resultStore != nil {
		_ = resultStore.Close()
	}
}
