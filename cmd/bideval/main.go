package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sebsgrace/AI-Government-Bid-Evaluator/cmd/bideval/wizard"
	"github.com/sebsgrace/AI-Government-Bid-Evaluator/internal/catalog"
	"github.com/sebsgrace/AI-Government-Bid-Evaluator/internal/config"
	"github.com/sebsgrace/AI-Government-Bid-Evaluator/internal/logging"
	"github.com/sebsgrace/AI-Government-Bid-Evaluator/internal/report"
)

var (
	// Global flags
	verbose    bool
	configPath string

	cfg *config.Config

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "bideval",
	Short: "bideval - AI-assisted government bid evaluation",
	Long: `bideval turns a public procurement bid portfolio into a grounded
risk analysis report.

Upload the bid documents, pick the project under evaluation, enter the
bidders, the declared winner, and the Bids and Awards Committee, then let
the analysis cross-check the award against public records via web-search
grounded generation.

Run without arguments to start the interactive wizard.`,
	SilenceUsage: true,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
		logging.CloseAll()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWizard()
	},
}

// versionCmd prints the build version
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the bideval version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%s %s\n", cfg.Name, cfg.Version)
	},
}

func init() {
	// Assigned here rather than in the composite literal because the
	// closure refers to rootCmd, which the compiler rejects as an
	// initialization cycle.
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if verbose {
			cfg.Logging.Level = "debug"
		}
		if err := logging.Initialize(cfg.Logging.Dir, cfg.Logging.Level); err != nil {
			return fmt.Errorf("failed to initialize logging: %w", err)
		}

		// The wizard owns the terminal; zap goes to stderr only for the
		// non-interactive subcommands.
		if cmd != rootCmd {
			zapCfg := zap.NewProductionConfig()
			if verbose {
				zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err = zapCfg.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
		}
		return nil
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a bideval config file")

	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runWizard wires the catalog source and the analysis requester, then
// hands the terminal to the wizard.
func runWizard() error {
	// A missing API key is fatal before any UI comes up.
	if err := cfg.Validate(); err != nil {
		return err
	}

	logging.Boot("starting %s %s model=%s", cfg.Name, cfg.Version, cfg.LLM.Model)

	requester, err := report.NewGeminiRequester(context.Background(), cfg.LLM.APIKey, cfg.LLM.Model)
	if err != nil {
		logging.BootError("requester construction failed: %v", err)
		return fmt.Errorf("failed to reach the analysis service: %w", err)
	}

	var source catalog.Source
	if cfg.Catalog.File != "" {
		logging.Boot("using catalog file %s", cfg.Catalog.File)
		source = catalog.NewYAMLSource(cfg.Catalog.File)
	} else {
		source = catalog.NewMockSource()
	}

	return wizard.Run(source, requester, cfg.Version)
}
