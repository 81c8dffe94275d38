package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all scan history",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if !force {
			return fmt.Errorf("this deletes the scan history database; pass --force to confirm")
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		path, err := resolveDBPath(cmd, cfg)
		if err != nil {
			return err
		}

		if err := os.Remove(path); err != nil {
			if os.IsNotExist(err) {
				fmt.Println("No history database found.")
				return nil
			}
			return fmt.Errorf("remove %s: %w", path, err)
		}
		fmt.Println("Scan history deleted.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("force", false, "Confirm deletion")
}
