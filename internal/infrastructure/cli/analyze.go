package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/felixgeelhaar/prdlens/pkg/domain/analysis"
	"github.com/spf13/cobra"
)

var (
	analyzeText   string
	analyzeOutput string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Analyze a requirement document",
	Long: `Analyze scores a Markdown requirement document against a fixed quality
catalog and estimates its implementation complexity. The document comes
from a file argument, the --text flag, or stdin.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadInitializedServices()
		if err != nil {
			return err
		}

		var report *analysis.Report
		switch {
		case len(args) == 1:
			report, err = services.Analysis.AnalyzeFile(args[0])
		case analyzeText != "":
			report, err = services.Analysis.AnalyzeText(analyzeText, "inline")
		default:
			data, readErr := io.ReadAll(os.Stdin)
			if readErr != nil {
				return fmt.Errorf("failed to read stdin: %w", readErr)
			}
			report, err = services.Analysis.AnalyzeText(string(data), "stdin")
		}
		if err != nil {
			return MapError(err)
		}

		return writeReport(cmd.OutOrStdout(), report, analyzeOutput)
	},
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeText, "text", "", "Analyze the given text instead of a file")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "output", "o", "text", "Output format: text or json")
	RootCmd.AddCommand(analyzeCmd)
}
