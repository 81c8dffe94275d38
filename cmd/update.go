package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/ecosort/internal/selfupdate"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Check for a newer release",
	RunE: func(cmd *cobra.Command, args []string) error {
		checker := selfupdate.NewChecker()
		result, err := checker.Check(context.Background(), version)
		if err != nil {
			if errors.Is(err, selfupdate.ErrDevBuild) {
				fmt.Println("Development build — update check skipped.")
				return nil
			}
			return fmt.Errorf("check for updates: %w", err)
		}

		if !result.UpdateAvailable {
			fmt.Printf("ecosort %s is up to date.\n", result.CurrentVersion)
			return nil
		}
		fmt.Printf("New version available: %s (current %s)\n", result.LatestVersion, result.CurrentVersion)
		if result.ReleaseURL != "" {
			fmt.Println(result.ReleaseURL)
		}
		return nil
	},
}
