package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/felixgeelhaar/prdlens/pkg/domain/analysis"
	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Interactive TUI dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		if os.Getenv("PRDLENS_SKIP_DASHBOARD_RUN") == "true" {
			return nil
		}
		p := tea.NewProgram(initialModel())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("dashboard run failed: %w", err)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(dashboardCmd)
}

// Styles
var baseStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.NormalBorder()).
	BorderForeground(lipgloss.Color("240"))

var headerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#FAFAFA")).
	Background(lipgloss.Color("#7D56F4")).
	PaddingLeft(1).
	PaddingRight(1)

type model struct {
	table  table.Model
	latest *analysis.Report
	reqs   int
	err    error
}

func initialModel() model {
	services, err := loadServicesForCurrentDir()
	if err != nil {
		return model{err: err}
	}

	entries, err := services.Analysis.History()
	if err != nil {
		return model{err: err}
	}

	// The latest report is optional; a fresh workspace has none.
	latest, _ := services.Analysis.LatestReport()

	reqs, _ := services.Requirements.List()

	columns := []table.Column{
		{Title: "Analyzed", Width: 17},
		{Title: "Quality", Width: 8},
		{Title: "Complexity", Width: 10},
		{Title: "Words", Width: 7},
		{Title: "Source", Width: 36},
	}

	rows := []table.Row{}
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		rows = append(rows, table.Row{
			e.AnalyzedAt.Format("2006-01-02 15:04"),
			fmt.Sprintf("%d", e.QualityScore),
			fmt.Sprintf("%d/10", e.ComplexityScore),
			fmt.Sprintf("%d", e.WordCount),
			e.Source,
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240"))

	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229"))

	t.SetStyles(s)

	return model{
		table:  t,
		latest: latest,
		reqs:   len(reqs),
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
	}
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m model) View() string {
	if m.err != nil {
		return fmt.Sprintf("Error loading dashboard: %v\nPress q to quit.", m.err)
	}

	header := headerStyle.Render("prdlens " + Version)

	summary := "No report yet. Run 'prdlens analyze <file>'."
	if m.latest != nil {
		summary = fmt.Sprintf("Latest: quality %s  complexity %d/10 (%s, %s)  missing %d  findings %d",
			scoreStyle(m.latest.Summary.QualityScore).Render(fmt.Sprintf("%d/100", m.latest.Summary.QualityScore)),
			m.latest.Complexity.Score, m.latest.Complexity.Level, m.latest.Complexity.EffortEstimate,
			len(m.latest.MissingCriteria), len(m.latest.Improvements))
	}

	reqLine := fmt.Sprintf("Requirements tracked: %d", m.reqs)

	return baseStyle.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header,
			summary,
			reqLine,
			"\nHistory:",
			m.table.View(),
			"\n[q] Quit  [Up/Down] Navigate",
		),
	) + "\n"
}
