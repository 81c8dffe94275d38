package cmd

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/abhisek/ecosort/internal/interpret"
	"github.com/abhisek/ecosort/internal/tips"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Run a headless scan loop and print the results",
	Long: `Runs the classifier a fixed number of times without the TUI, printing each
interpreted result and its tip. Useful for piping and for demos over SSH.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		count, _ := cmd.Flags().GetInt("count")
		if seed, _ := cmd.Flags().GetInt64("seed"); seed != 0 {
			cfg.Scan.Seed = seed
		}

		classifier := buildClassifier(cfg)

		var rng *rand.Rand
		if cfg.Scan.Seed != 0 {
			rng = rand.New(rand.NewSource(cfg.Scan.Seed + 1))
		}
		selector, err := tips.NewSelector(rng)
		if err != nil {
			return fmt.Errorf("load tips: %w", err)
		}

		ctx := cmd.Context()
		var state interpret.State
		for i := 0; i < count; i++ {
			var in interpret.Interpretation
			var conf float64

			res, err := classifier.Scan(ctx)
			if err != nil {
				in = interpret.InterpretError(err, &state)
			} else {
				in = interpret.Interpret(res, &state)
				conf = res.Confidence
			}

			tip := selector.Select(in.Label)
			printScan(i+1, in, conf, tip)

			if in.Escalate {
				fmt.Println("    !! persistent failure — a real UI would block here")
				state.ErrorStreak = 0
			}
		}
		return nil
	},
}

func printScan(n int, in interpret.Interpretation, conf float64, tip string) {
	switch {
	case in.IsError:
		fmt.Printf("%3d. ERROR  %s\n", n, in.Label)
	case in.IsHelpMessage:
		fmt.Printf("%3d. HELP   %s\n", n, in.Label)
	case conf > 0:
		fmt.Printf("%3d. %-22s %4.0f%%\n", n, in.Label, conf*100)
	default:
		fmt.Printf("%3d. %s\n", n, in.Label)
	}
	fmt.Printf("     tip: %s\n", tip)
}

func init() {
	scanCmd.Flags().Int("count", 10, "Number of scans to run")
	scanCmd.Flags().Int64("seed", 0, "Random seed for reproducible runs (0 = time-seeded)")
}
