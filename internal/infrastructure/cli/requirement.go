package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/felixgeelhaar/prdlens/internal/infrastructure/wiring"
	"github.com/felixgeelhaar/prdlens/pkg/domain"
	"github.com/felixgeelhaar/prdlens/pkg/domain/requirement"
	"github.com/spf13/cobra"
)

var (
	reqAddDescription string
	reqAddCategory    string
	reqAddPriority    string
	reqAddCriteria    []string
	reqOutput         string
)

var reqCmd = &cobra.Command{
	Use:   "req",
	Short: "Manage structured requirement records",
}

var reqImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import requirement records from a JSON or YAML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadInitializedServices()
		if err != nil {
			return err
		}

		reqs, err := services.Requirements.ImportFile(args[0])
		if err != nil {
			return MapError(fmt.Errorf("failed to import requirements: %w", err))
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d requirements.\n", len(reqs))
		return nil
	},
}

var reqListCmd = &cobra.Command{
	Use:   "list",
	Short: "List requirement records",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadInitializedServices()
		if err != nil {
			return err
		}

		reqs, err := services.Requirements.List()
		if err != nil {
			return MapError(fmt.Errorf("failed to list requirements: %w", err))
		}

		out := cmd.OutOrStdout()
		if reqOutput == "json" {
			return writeJSON(out, reqs)
		}
		if len(reqs) == 0 {
			fmt.Fprintln(out, "No requirements recorded yet.")
			return nil
		}

		fmt.Fprintln(out, sectionStyle.Render("Requirements"))
		for _, r := range reqs {
			score := "-"
			if r.Status != requirement.StatusDraft {
				score = scoreStyle(r.LastQualityScore).Render(fmt.Sprintf("%d", r.LastQualityScore))
			}
			fmt.Fprintf(out, "%-24s %-10s score %-4s %s\n", r.ID, statusLabel(r.Status), score, r.Title)
		}
		return nil
	},
}

var reqShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one requirement record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadInitializedServices()
		if err != nil {
			return err
		}

		r, err := services.Requirements.Get(args[0])
		if err != nil {
			return MapError(err)
		}

		out := cmd.OutOrStdout()
		if reqOutput == "json" {
			return writeJSON(out, r)
		}

		fmt.Fprintln(out, sectionStyle.Render(r.Title))
		fmt.Fprintf(out, "ID:       %s\n", r.ID)
		fmt.Fprintf(out, "Status:   %s\n", statusLabel(r.Status))
		if r.Category != "" {
			fmt.Fprintf(out, "Category: %s\n", r.Category)
		}
		if r.Priority != "" {
			fmt.Fprintf(out, "Priority: %s\n", r.Priority)
		}
		if r.Status != requirement.StatusDraft {
			fmt.Fprintf(out, "Score:    %s\n",
				scoreStyle(r.LastQualityScore).Render(fmt.Sprintf("%d/100", r.LastQualityScore)))
		}
		if r.Description != "" {
			fmt.Fprintf(out, "\n%s\n", r.Description)
		}
		if len(r.AcceptanceCriteria) > 0 {
			fmt.Fprintln(out, "\nAcceptance Criteria:")
			for _, c := range r.AcceptanceCriteria {
				fmt.Fprintf(out, "  - %s\n", c)
			}
		}
		return nil
	},
}

var reqAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a requirement record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadInitializedServices()
		if err != nil {
			return err
		}

		r, err := services.Requirements.Add(args[0], reqAddDescription, reqAddCategory, reqAddPriority, reqAddCriteria)
		if err != nil {
			return MapError(fmt.Errorf("failed to add requirement: %w", err))
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Added requirement %s.\n", r.ID)
		return nil
	},
}

var reqAnalyzeCmd = &cobra.Command{
	Use:   "analyze <id>",
	Short: "Analyze a requirement record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadInitializedServices()
		if err != nil {
			return err
		}

		report, err := services.Requirements.Analyze(args[0])
		if err != nil {
			return MapError(err)
		}
		return writeReport(cmd.OutOrStdout(), report, reqOutput)
	},
}

var reqApproveCmd = &cobra.Command{
	Use:   "approve <id>",
	Short: "Approve an analyzed requirement",
	Args:  cobra.ExactArgs(1),
	RunE:  runReviewEvent("approve"),
}

var reqFlagCmd = &cobra.Command{
	Use:   "flag <id>",
	Short: "Flag an analyzed requirement as needing work",
	Args:  cobra.ExactArgs(1),
	RunE:  runReviewEvent("flag"),
}

var reqReopenCmd = &cobra.Command{
	Use:   "reopen <id>",
	Short: "Reopen an approved or flagged requirement for edits",
	Args:  cobra.ExactArgs(1),
	RunE:  runReviewEvent("reopen"),
}

func runReviewEvent(event string) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		services, err := loadInitializedServices()
		if err != nil {
			return err
		}

		var r *requirement.Requirement
		switch event {
		case "approve":
			r, err = services.Requirements.Approve(args[0])
		case "flag":
			r, err = services.Requirements.Flag(args[0])
		case "reopen":
			r, err = services.Requirements.Reopen(args[0])
		default:
			return fmt.Errorf("unknown review event %q", event)
		}
		if err != nil {
			return MapError(err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Requirement %s is now %s.\n", r.ID, r.Status)
		return nil
	}
}

func loadInitializedServices() (*wiring.AppServices, error) {
	services, err := loadServicesForCurrentDir()
	if err != nil {
		return nil, err
	}
	if !services.Repo.IsInitialized() {
		return nil, MapError(domain.ErrNotInitialized)
	}
	return services, nil
}

func statusLabel(s requirement.Status) string {
	switch s {
	case requirement.StatusApproved:
		return scoreGood.Render(string(s))
	case requirement.StatusNeedsWork:
		return scoreBad.Render(string(s))
	case requirement.StatusAnalyzed:
		return scoreWarn.Render(string(s))
	default:
		return string(s)
	}
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}

func init() {
	reqAddCmd.Flags().StringVar(&reqAddDescription, "desc", "", "Requirement description")
	reqAddCmd.Flags().StringVar(&reqAddCategory, "category", "", "Requirement category")
	reqAddCmd.Flags().StringVar(&reqAddPriority, "priority", "", "Requirement priority")
	reqAddCmd.Flags().StringArrayVar(&reqAddCriteria, "criterion", nil, "Acceptance criterion (repeatable)")

	reqCmd.PersistentFlags().StringVarP(&reqOutput, "output", "o", "text", "Output format: text or json")

	reqCmd.AddCommand(reqImportCmd, reqListCmd, reqShowCmd, reqAddCmd, reqAnalyzeCmd, reqApproveCmd, reqFlagCmd, reqReopenCmd)
	RootCmd.AddCommand(reqCmd)
}
