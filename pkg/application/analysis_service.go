package application

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/felixgeelhaar/prdlens/pkg/domain"
	"github.com/felixgeelhaar/prdlens/pkg/domain/analysis"
	"github.com/google/uuid"
)

// DefaultHistoryLimit bounds the retained quality-score history.
const DefaultHistoryLimit = 20

// AnalysisService runs the analyzer and maintains the workspace artifacts:
// the most recent report and the capped score history.
type AnalysisService struct {
	repo         domain.WorkspaceRepository
	historyLimit int
}

func NewAnalysisService(repo domain.WorkspaceRepository, historyLimit int) *AnalysisService {
	if historyLimit <= 0 {
		historyLimit = DefaultHistoryLimit
	}
	return &AnalysisService{repo: repo, historyLimit: historyLimit}
}

// AnalyzeText analyzes raw document text and records the result under the
// given source label. ErrEmptyDocument passes through unwrapped so callers
// can present it as a user-correctable condition.
func (s *AnalysisService) AnalyzeText(text, source string) (*analysis.Report, error) {
	report, err := analysis.Analyze(text)
	if err != nil {
		return nil, err
	}

	if err := s.record(report, source); err != nil {
		return nil, err
	}
	return report, nil
}

// AnalyzeFile reads and analyzes a document file.
func (s *AnalysisService) AnalyzeFile(path string) (*analysis.Report, error) {
	cleanPath := filepath.Clean(path)
	// #nosec G304 -- analyzing a user-named file is the point of the command
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	return s.AnalyzeText(string(data), filepath.Base(cleanPath))
}

// LatestReport returns the most recently persisted report.
func (s *AnalysisService) LatestReport() (*analysis.Report, error) {
	return s.repo.LoadReport()
}

// History returns the retained score history, oldest first.
func (s *AnalysisService) History() ([]domain.HistoryEntry, error) {
	return s.repo.LoadHistory()
}

// ClearHistory discards all retained history entries.
func (s *AnalysisService) ClearHistory() error {
	return s.repo.SaveHistory([]domain.HistoryEntry{})
}

// record persists the report and appends a history entry, discarding the
// oldest entries beyond the cap.
func (s *AnalysisService) record(report *analysis.Report, source string) error {
	if err := s.repo.SaveReport(report); err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}

	entries, err := s.repo.LoadHistory()
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}

	entries = append(entries, domain.HistoryEntry{
		ID:              uuid.NewString(),
		Source:          source,
		WordCount:       report.Summary.WordCount,
		QualityScore:    report.Summary.QualityScore,
		ComplexityScore: report.Complexity.Score,
		AnalyzedAt:      time.Now(),
	})
	if len(entries) > s.historyLimit {
		entries = entries[len(entries)-s.historyLimit:]
	}

	if err := s.repo.SaveHistory(entries); err != nil {
		return fmt.Errorf("failed to save history: %w", err)
	}
	return nil
}
