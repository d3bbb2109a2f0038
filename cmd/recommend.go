package cmd

import (
	"errors"
	"fmt"

	"github.com/abhisek/cadence/internal/recommend"
	"github.com/abhisek/cadence/internal/store"
	"github.com/spf13/cobra"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Generate prioritized recommendations",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		engine := recommendEngine(st)
		recs, err := engine.Generate(cmd.Context(), userFlag(cmd))
		if err != nil {
			return fmt.Errorf("generate: %w", err)
		}
		if len(recs) == 0 {
			fmt.Println("Nothing new to recommend right now.")
			return nil
		}

		for i, r := range recs {
			fmt.Printf("%d. [%s] %s (priority %.2f)\n", i+1, r.RecommendationType, r.Title, r.PriorityScore)
			fmt.Printf("   %s\n", r.Description)
			fmt.Printf("   -> %s\n", r.ActionableText)
			fmt.Printf("   id: %s\n", r.ID)
		}
		return nil
	},
}

var recommendApplyCmd = &cobra.Command{
	Use:   "apply <recommendation-id>",
	Short: "Mark a recommendation as applied",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		a, err := recommendEngine(st).Apply(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Applied. Evaluate in %d days with: cadence recommend evaluate %s\n",
			recommend.MinEvaluationDays, a.ID)
		return nil
	},
}

var recommendDismissCmd = &cobra.Command{
	Use:   "dismiss <recommendation-id>",
	Short: "Dismiss a recommendation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		if err := recommendEngine(st).Dismiss(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Println("Dismissed.")
		return nil
	},
}

var recommendEvaluateCmd = &cobra.Command{
	Use:   "evaluate <applied-id>",
	Short: "Evaluate an applied recommendation's effectiveness",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		effectiveness, err := recommendEngine(st).Evaluate(cmd.Context(), args[0])
		if errors.Is(err, recommend.ErrPrematureEvaluation) {
			fmt.Println("Too early to evaluate: wait two weeks after applying.")
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Printf("Effectiveness: %.0f%%\n", effectiveness*100)
		return nil
	},
}

func init() {
	recommendCmd.AddCommand(recommendApplyCmd)
	recommendCmd.AddCommand(recommendDismissCmd)
	recommendCmd.AddCommand(recommendEvaluateCmd)
}

func recommendEngine(st *store.Store) *recommend.Engine {
	return recommend.NewEngine(
		st.PatternRepo(),
		st.InsightRepo(),
		st.ProfileRepo(),
		st.BurnoutRepo(),
		st.RecommendationRepo(),
		st.AppliedRepo(),
		st.TelemetryRepo(),
		nil,
		cliLogger(),
	)
}
