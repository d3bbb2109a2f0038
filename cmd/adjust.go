package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/cadence/internal/adapt"
	"github.com/abhisek/cadence/internal/telemetry"
	"github.com/spf13/cobra"
)

var adjustCmd = &cobra.Command{
	Use:   "adjust",
	Short: "Adjust difficulty for the current cognitive load",
	RunE: func(cmd *cobra.Command, args []string) error {
		load, _ := cmd.Flags().GetFloat64("load")
		tolerance, _ := cmd.Flags().GetFloat64("tolerance")
		errorRate, _ := cmd.Flags().GetFloat64("error-rate")
		trend, err := parseTrend(cmd)
		if err != nil {
			return err
		}

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		userID := userFlag(cmd)
		adapter := adapt.NewAdapter(st.AdaptationLog(), nil, cliLogger())
		// Drain the log append before the deferred store close.
		defer adapter.Flush()
		ad := adapter.Adjust(cmd.Context(), userID, load, tolerance, trend)

		fmt.Printf("Zone: %s (effective load %.1f, urgency %s)\n", ad.Zone, ad.EffectiveLoad, ad.Urgency)
		fmt.Printf("Action: %s  difficulty %+d  review ratio %.0f%%\n", ad.Action, ad.DifficultyChange, ad.ReviewRatio*100)
		fmt.Printf("Session: complexity cap %s, prompts x%.1f, break every %d min, scaffolding %s\n",
			ad.Mods.MaxComplexity, ad.Mods.PromptComplexity, ad.Mods.BreakEveryMin, ad.Mods.Scaffolding)

		env := adapt.ContentEnvelope(load, tolerance, trend, errorRate)
		if len(env.Preferred) > 0 || len(env.Avoided) > 0 {
			fmt.Print("Content:")
			if len(env.Preferred) > 0 {
				fmt.Printf(" prefer %s", joinContent(env.Preferred))
			}
			if len(env.Avoided) > 0 {
				fmt.Printf(" avoid %s", joinContent(env.Avoided))
			}
			fmt.Println()
		}

		optimalMin := 45
		if profile, err := st.ProfileRepo().Get(cmd.Context(), userID); err == nil && profile != nil && profile.OptimalDurationMin > 0 {
			optimalMin = profile.OptimalDurationMin
		}
		ch := adapt.Challenge(load, tolerance, optimalMin)
		fmt.Printf("Challenge: difficulty %d/5, %.0f%% new content, %d min sessions\n",
			ch.Difficulty, ch.NewContentRatio*100, ch.SessionLenMin)
		return nil
	},
}

func init() {
	adjustCmd.Flags().Float64("load", 0, "Current cognitive load, 0-100")
	adjustCmd.Flags().Float64("tolerance", adapt.DefaultTolerance, "Learner's load tolerance, 0-100")
	adjustCmd.Flags().String("trend", string(adapt.TrendStable), "Load trend: rising, stable, or falling")
	adjustCmd.Flags().Float64("error-rate", 0, "Recent error rate, 0-1")
	_ = adjustCmd.MarkFlagRequired("load")
}

func parseTrend(cmd *cobra.Command) (adapt.Trend, error) {
	raw, _ := cmd.Flags().GetString("trend")
	switch t := adapt.Trend(strings.ToLower(raw)); t {
	case adapt.TrendRising, adapt.TrendStable, adapt.TrendFalling:
		return t, nil
	default:
		return "", fmt.Errorf("invalid trend %q (want rising, stable, or falling)", raw)
	}
}

func joinContent(types []telemetry.ContentType) string {
	parts := make([]string, 0, len(types))
	for _, t := range types {
		parts = append(parts, string(t))
	}
	return strings.Join(parts, ", ")
}
