// Package cli provides the command-line interface for TexPilot.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/texpilot/texpilot/internal/adapters/driven/config/file"
	"github.com/texpilot/texpilot/internal/adapters/driven/storage/memory"
	"github.com/texpilot/texpilot/internal/adapters/driven/storage/sqlite"
	"github.com/texpilot/texpilot/internal/core/ports/driven"
	"github.com/texpilot/texpilot/internal/core/ports/driving"
	"github.com/texpilot/texpilot/internal/core/services"
	"github.com/texpilot/texpilot/internal/logger"
)

// version is set at build time via ldflags.
var version = "0.1.0"

// Package-level services, wired in initServices. Tests replace these
// with mocks.
var (
	configStore     driven.ConfigStore
	termStore       driven.TermStore
	analysisService driving.AnalysisService
)

// verboseFlag enables debug logging on stderr.
var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "texpilot",
	Short: "LaTeX document analysis for academic writing",
	Long: `TexPilot analyses LaTeX documents for structural, terminological,
mathematical and bibliographic issues.

It can run one-off checks on a file, watch a file and re-check on
save, or serve its analysis tools to AI assistants over the Model
Context Protocol (MCP).`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verboseFlag)
		return initServices()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
}

// initServices wires the driven adapters into the analysis service.
// It is idempotent so tests can pre-install mocks.
func initServices() error {
	if analysisService != nil {
		return nil
	}

	store, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	configStore = store

	if configStore.GetBool("terms.persist") {
		persistent, err := sqlite.NewTermStore(configStore.GetString("terms.data_dir"))
		if err != nil {
			return fmt.Errorf("opening term database: %w", err)
		}
		termStore = persistent
		logger.Debug("using persistent term store at %s", persistent.Path())
	} else {
		termStore = memory.NewTermStore()
		logger.Debug("using in-memory term store")
	}

	analysisService = services.NewAnalysisService(termStore)
	return nil
}

// Execute runs the root command.
func Execute() error {
	defer func() {
		if termStore != nil {
			termStore.Close() //nolint:errcheck
		}
	}()
	return rootCmd.Execute()
}
