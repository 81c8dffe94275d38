package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/ecosort/internal/tips"
)

var tipCmd = &cobra.Command{
	Use:   "tip <category>",
	Short: "Print one disposal tip for a category",
	Long: `Prints a randomly chosen tip for the given category or status string.
Unrecognized input falls back to the Unknown pool, so this never fails.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		selector, err := tips.NewSelector(nil)
		if err != nil {
			return fmt.Errorf("load tips: %w", err)
		}
		fmt.Println(selector.Select(strings.Join(args, " ")))
		return nil
	},
}
