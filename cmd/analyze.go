package cmd

import (
	"fmt"

	"github.com/abhisek/cadence/internal/pattern"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run behavioral pattern analysis",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		engine := pattern.NewEngine(
			st.TelemetryRepo(),
			st.PatternRepo(),
			st.InsightRepo(),
			st.ProfileRepo(),
			nil,
			cliLogger(),
			pattern.DefaultConfig(),
		)

		userID := userFlag(cmd)
		incremental, _ := cmd.Flags().GetBool("incremental")

		var result *pattern.Result
		if incremental {
			result, err = engine.RunIncremental(cmd.Context(), userID)
		} else {
			result, err = engine.RunFull(cmd.Context(), userID)
		}
		if err != nil {
			return fmt.Errorf("analysis run: %w", err)
		}

		printAnalysis(result)
		return nil
	},
}

func init() {
	analyzeCmd.Flags().Bool("incremental", false, "Only run if enough new sessions accumulated")
}

func printAnalysis(r *pattern.Result) {
	switch {
	case r.InsufficientData:
		fmt.Println("Not enough history to analyze yet.")
		if req := r.Requirements; req != nil {
			if req.WeeksNeeded > 0 {
				fmt.Printf("  %d more week(s) of history needed\n", req.WeeksNeeded)
			}
			if req.SessionsNeeded > 0 {
				fmt.Printf("  %d more session(s) needed\n", req.SessionsNeeded)
			}
			if req.ReviewsNeeded > 0 {
				fmt.Printf("  %d more review(s) needed\n", req.ReviewsNeeded)
			}
		}
		return
	case r.Skipped:
		fmt.Println("Skipped: not enough new sessions since the last run.")
		return
	case r.Degraded:
		fmt.Println("Analysis degraded: telemetry could not be read.")
		return
	}

	fmt.Printf("Patterns (%d):\n", len(r.Patterns))
	for _, p := range r.Patterns {
		fmt.Printf("  [%s] %s  confidence=%.2f  seen=%d\n",
			p.PatternType, p.PatternName, p.Confidence, p.OccurrenceCount)
	}

	fmt.Printf("Insights (%d):\n", len(r.Insights))
	for _, ins := range r.Insights {
		fmt.Printf("  %s (impact %.2f)\n    %s\n", ins.Title, ins.Impact, ins.Body)
	}

	if p := r.Profile; p != nil {
		fmt.Println("Profile:")
		fmt.Printf("  optimal session: %d min\n", p.OptimalDurationMin)
		for _, w := range p.PreferredWindows {
			fmt.Printf("  preferred window: %02d:00-%02d:00 (score %.1f)\n", w.StartHour, w.EndHour, w.Score)
		}
		if p.HalfLifeDays > 0 {
			fmt.Printf("  retention half-life: %.1f days\n", p.HalfLifeDays)
		}
		fmt.Printf("  data quality: %.2f\n", p.DataQualityScore)
	}
}
