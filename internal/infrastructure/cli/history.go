package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	historyLimit  int
	historyOutput string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the quality-score history",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadInitializedServices()
		if err != nil {
			return err
		}

		entries, err := services.Analysis.History()
		if err != nil {
			return MapError(fmt.Errorf("failed to load history: %w", err))
		}
		if historyLimit > 0 && len(entries) > historyLimit {
			entries = entries[len(entries)-historyLimit:]
		}

		out := cmd.OutOrStdout()
		if historyOutput == "json" {
			return writeJSON(out, entries)
		}

		if len(entries) == 0 {
			fmt.Fprintln(out, "No analyses recorded yet.")
			return nil
		}

		fmt.Fprintln(out, sectionStyle.Render("Analysis History"))
		for _, e := range entries {
			fmt.Fprintf(out, "%s  quality %s  complexity %2d/10  %5d words  %s\n",
				e.AnalyzedAt.Format("2006-01-02 15:04"),
				scoreStyle(e.QualityScore).Render(fmt.Sprintf("%3d", e.QualityScore)),
				e.ComplexityScore, e.WordCount, e.Source)
		}
		return nil
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Discard all recorded history entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadInitializedServices()
		if err != nil {
			return err
		}

		if err := services.Analysis.ClearHistory(); err != nil {
			return MapError(fmt.Errorf("failed to clear history: %w", err))
		}
		fmt.Fprintln(cmd.OutOrStdout(), "History cleared.")
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 0, "Show only the most recent N entries")
	historyCmd.Flags().StringVarP(&historyOutput, "output", "o", "text", "Output format: text or json")
	historyCmd.AddCommand(historyClearCmd)
	RootCmd.AddCommand(historyCmd)
}
