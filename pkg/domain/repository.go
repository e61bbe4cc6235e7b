package domain

import (
	"errors"
	"time"

	"github.com/felixgeelhaar/prdlens/pkg/domain/analysis"
	"github.com/felixgeelhaar/prdlens/pkg/domain/requirement"
)

// ErrNotInitialized indicates the workspace has no .prdlens directory yet.
var ErrNotInitialized = errors.New("workspace not initialized")

// WorkspaceRepository handles the persistence of prdlens artifacts in the
// .prdlens/ directory.
type WorkspaceRepository interface {
	Initialize() error
	IsInitialized() bool
	SaveReport(report *analysis.Report) error
	LoadReport() (*analysis.Report, error)
	SaveHistory(entries []HistoryEntry) error
	LoadHistory() ([]HistoryEntry, error)
	SaveRequirements(reqs []*requirement.Requirement) error
	LoadRequirements() ([]*requirement.Requirement, error)
}

// HistoryEntry is one retained quality-score data point. The repository
// stores whatever slice it is given; the application layer enforces the
// history cap before saving.
type HistoryEntry struct {
	ID              string    `json:"id" yaml:"id"`
	Source          string    `json:"source" yaml:"source"`
	WordCount       int       `json:"word_count" yaml:"word_count"`
	QualityScore    int       `json:"quality_score" yaml:"quality_score"`
	ComplexityScore int       `json:"complexity_score" yaml:"complexity_score"`
	AnalyzedAt      time.Time `json:"analyzed_at" yaml:"analyzed_at"`
}
