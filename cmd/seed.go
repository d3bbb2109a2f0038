package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed demo telemetry for a user",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		days, _ := cmd.Flags().GetInt("days")
		userID := userFlag(cmd)
		if err := st.SeedDemo(cmd.Context(), userID, days); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		fmt.Printf("Seeded %d days of demo telemetry for %s.\n", days, userID)
		return nil
	},
}

func init() {
	seedCmd.Flags().Int("days", 90, "Days of history to generate")
}
