package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/felixgeelhaar/prdlens/pkg/domain/analysis"
)

// Styles
var sectionStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#FAFAFA")).
	Background(lipgloss.Color("#7D56F4")).
	PaddingLeft(1).
	PaddingRight(1)

var scoreGood = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
var scoreWarn = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
var scoreBad = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
var faintStyle = lipgloss.NewStyle().Faint(true)

func scoreStyle(score int) lipgloss.Style {
	switch {
	case score >= 80:
		return scoreGood
	case score >= 50:
		return scoreWarn
	default:
		return scoreBad
	}
}

func priorityStyle(p analysis.Priority) lipgloss.Style {
	switch p {
	case analysis.PriorityHigh:
		return scoreBad
	case analysis.PriorityMedium:
		return scoreWarn
	default:
		return faintStyle
	}
}

// writeReport prints a report in the requested format ("text" or "json").
func writeReport(w io.Writer, report *analysis.Report, format string) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		fmt.Fprintln(w, string(data))
		return nil
	case "text", "":
		renderReport(w, report)
		return nil
	default:
		return fmt.Errorf("unsupported output format %q (use text or json)", format)
	}
}

func renderReport(w io.Writer, r *analysis.Report) {
	total := len(analysis.Catalog())

	fmt.Fprintln(w, sectionStyle.Render("Document Analysis"))
	fmt.Fprintf(w, "Quality Score: %s  (%d of %d checks)\n",
		scoreStyle(r.Summary.QualityScore).Render(fmt.Sprintf("%d/100", r.Summary.QualityScore)),
		r.MatchedCount(), total)
	fmt.Fprintf(w, "Words: %d  Sections: %d  Bullets: %d  Numbered: %d  Lines: %d\n",
		r.Summary.WordCount, r.Summary.SectionCount, r.Summary.BulletPoints,
		r.Summary.NumberedItems, r.Summary.LineCount)

	fmt.Fprintf(w, "\nComplexity: %d/10 %s  %s  (effort: %s)\n",
		r.Complexity.Score, complexityBar(r.Complexity.Score),
		string(r.Complexity.Level), r.Complexity.EffortEstimate)
	fmt.Fprintf(w, "  Scope %d  Technical %d  Integration %d  UI %d\n",
		r.Complexity.Breakdown.Scope, r.Complexity.Breakdown.Technical,
		r.Complexity.Breakdown.Integration, r.Complexity.Breakdown.UI)

	if len(r.MissingCriteria) > 0 {
		fmt.Fprintf(w, "\nMissing (%d):\n", len(r.MissingCriteria))
		for _, m := range r.MissingCriteria {
			fmt.Fprintf(w, "  %s %s\n      %s\n",
				priorityStyle(m.Priority).Render(fmt.Sprintf("[%s]", m.Priority)),
				m.Label, faintStyle.Render(m.Suggestion))
		}
	}

	if len(r.Improvements) > 0 {
		fmt.Fprintf(w, "\nImprovements (%d):\n", len(r.Improvements))
		for _, imp := range r.Improvements {
			fmt.Fprintf(w, "  %s %s\n      %s\n",
				priorityStyle(imp.Priority).Render(fmt.Sprintf("[%s]", imp.Priority)),
				imp.Title, faintStyle.Render(imp.Description))
		}
	}
}

func complexityBar(score int) string {
	if score < 0 {
		score = 0
	}
	if score > 10 {
		score = 10
	}
	return strings.Repeat("█", score) + strings.Repeat("░", 10-score)
}
