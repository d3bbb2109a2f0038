package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize stored telemetry and engine output",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		userID := userFlag(cmd)

		c, err := st.UserCounts(ctx, userID)
		if err != nil {
			return fmt.Errorf("load counts: %w", err)
		}

		fmt.Printf("User %s\n", userID)
		fmt.Println("Telemetry:")
		fmt.Printf("  sessions %d, reviews %d, missions %d\n", c.Sessions, c.Reviews, c.Missions)
		fmt.Printf("  load samples %d, retention samples %d, events %d\n",
			c.LoadMetrics, c.PerformanceMetrics, c.Events)
		fmt.Println("Engine output:")
		fmt.Printf("  patterns %d, insights %d, recommendations %d\n", c.Patterns, c.Insights, c.Recommendations)
		fmt.Printf("  assessments %d, adaptations %d\n", c.Assessments, c.Adaptations)

		if c.HasProfile {
			if profile, err := st.ProfileRepo().Get(ctx, userID); err == nil && profile != nil {
				fmt.Printf("Profile: %d min sessions, data quality %.2f, analyzed %s\n",
					profile.OptimalDurationMin, profile.DataQualityScore,
					profile.LastAnalyzedAt.Format("2006-01-02"))
			}
		}

		recent, err := st.BurnoutRepo().Recent(ctx, userID, 1)
		if err == nil && len(recent) > 0 {
			a := recent[0]
			fmt.Printf("Latest assessment: %.1f/100 (%s) on %s\n",
				a.RiskScore, a.RiskLevel, a.AssessmentDate.Format("2006-01-02"))
		}

		adaptations, err := st.RecentAdaptations(ctx, userID, 3)
		if err == nil && len(adaptations) > 0 {
			fmt.Println("Recent adaptations:")
			for _, entry := range adaptations {
				fmt.Printf("  %s  load %.0f -> %s (%s)\n",
					entry.Timestamp.Format("2006-01-02 15:04"), entry.Load, entry.Zone, entry.Action)
			}
		}
		return nil
	},
}
