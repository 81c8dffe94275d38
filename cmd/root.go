package cmd

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/ecosort/internal/app"
	"github.com/abhisek/ecosort/internal/classify"
	"github.com/abhisek/ecosort/internal/config"
	"github.com/abhisek/ecosort/internal/store"
	"github.com/abhisek/ecosort/internal/tips"
)

var rootCmd = &cobra.Command{
	Use:   "ecosort",
	Short: "Waste sorting demo for your terminal",
	Long:  "EcoSort — scan (simulated) waste items, see how they classify, and get a disposal tip.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		opts := app.Options{
			Classifier:   buildClassifier(cfg),
			ScanInterval: cfg.Scan.Interval,
		}

		opts.Selector, err = tips.NewSelector(nil)
		if err != nil {
			return fmt.Errorf("load tips: %w", err)
		}

		// History is optional — the app runs without a database.
		st, err := openStore(cmd, cfg)
		if err != nil {
			fmt.Fprintln(os.Stderr, "warning: scan history disabled:", err)
		} else {
			defer st.Close()
			opts.EventRepo = st.EventRepo()
		}

		return app.Run(opts)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default: XDG config dir)")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides ECOSORT_DB env var)")

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(tipCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig loads the config file named by --config (or the default
// location) and applies env overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path)
}

// buildClassifier constructs the mock classifier from config.
func buildClassifier(cfg *config.Config) classify.Classifier {
	mockCfg := classify.DefaultMockConfig()
	if cfg.Scan.ErrorRate >= 0 {
		mockCfg.ErrorRate = cfg.Scan.ErrorRate
	}

	var rng *rand.Rand
	if cfg.Scan.Seed != 0 {
		rng = rand.New(rand.NewSource(cfg.Scan.Seed))
	}
	return classify.NewMock(mockCfg, rng)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then config, then ECOSORT_DB / the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg != nil && cfg.DB.Path != "" {
		return cfg.DB.Path, store.EnsureDir(cfg.DB.Path)
	}
	return store.DefaultDBPath()
}

func openStore(cmd *cobra.Command, cfg *config.Config) (*store.Store, error) {
	path, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, err
	}
	return store.Open(path)
}
