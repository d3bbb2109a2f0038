package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete derived patterns, insights, and recommendations",
	Long: "Reset deletes everything the engines derived for a user (patterns, " +
		"insights, recommendations, assessments, profile). Raw telemetry is kept.",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		userID := userFlag(cmd)
		if err := st.ResetDerived(cmd.Context(), userID); err != nil {
			return fmt.Errorf("reset: %w", err)
		}
		fmt.Printf("Derived data for %s deleted.\n", userID)
		return nil
	},
}
