package cmd

import (
	"fmt"

	"github.com/abhisek/cadence/internal/burnout"
	"github.com/spf13/cobra"
)

var burnoutCmd = &cobra.Command{
	Use:   "burnout",
	Short: "Assess burnout risk over the trailing two weeks",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		engine := burnout.NewEngine(st.TelemetryRepo(), st.BurnoutRepo(), nil, cliLogger())
		userID := userFlag(cmd)

		a, err := engine.Assess(cmd.Context(), userID)
		if err != nil {
			return fmt.Errorf("assess: %w", err)
		}

		fmt.Printf("Burnout risk: %.1f/100 (%s)  confidence=%.2f\n", a.RiskScore, a.RiskLevel, a.Confidence)
		fmt.Println("Contributing factors:")
		for _, f := range a.Factors {
			fmt.Printf("  %-22s %5.1f  (%.0f%% of total)\n", f.Name, f.Score, f.Percentage)
		}

		detected := false
		for _, s := range a.Signals {
			if !s.Detected {
				continue
			}
			if !detected {
				fmt.Println("Warning signals:")
				detected = true
			}
			fmt.Printf("  [%s] %s: %s\n", s.Severity, s.Name, s.Description)
		}

		fmt.Printf("Intervention: %s\n", a.Intervention.Plan)
		for _, action := range a.Intervention.Actions {
			fmt.Printf("  - %s\n", action)
		}

		rec, err := engine.TrackRecovery(cmd.Context(), userID)
		if err != nil {
			return fmt.Errorf("track recovery: %w", err)
		}
		if rec.Trend != burnout.TrendInsufficient {
			fmt.Printf("Recovery: %s (%+.1f points over %d day(s))\n", rec.Trend, rec.ScoreChange, rec.DaysBetween)
		}
		return nil
	},
}
