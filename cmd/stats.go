package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/ecosort/internal/waste"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show lifetime scan statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		st, err := openStore(cmd, cfg)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := context.Background()
		repo := st.EventRepo()

		counts, err := repo.CategoryCounts(ctx)
		if err != nil {
			return fmt.Errorf("load counts: %w", err)
		}

		total := 0
		for _, n := range counts {
			total += n
		}
		if total == 0 {
			fmt.Println("No scans recorded yet.")
			return nil
		}

		fmt.Printf("Items scanned: %d\n\n", total)
		for _, c := range waste.All() {
			n := counts[string(c)]
			if n == 0 {
				continue
			}
			fmt.Printf("  %-12s %5d  (%.0f%%)\n", c, n, float64(n)/float64(total)*100)
		}

		sessions, err := repo.SessionSummaries(ctx, 5)
		if err != nil {
			return fmt.Errorf("load sessions: %w", err)
		}
		if len(sessions) > 0 {
			fmt.Println("\nRecent sessions:")
			for _, s := range sessions {
				d := time.Duration(s.DurationSecs) * time.Second
				fmt.Printf("  %s  %3d scans, %d errors, %s\n",
					s.CreatedAt.Format("2006-01-02 15:04"), s.TotalScans, s.Errors, d)
			}
		}
		return nil
	},
}
