package storage

import (
	"testing"
	"time"

	"github.com/felixgeelhaar/prdlens/pkg/domain"
	"github.com/felixgeelhaar/prdlens/pkg/domain/analysis"
	"github.com/felixgeelhaar/prdlens/pkg/domain/requirement"
)

func newTestRepo(t *testing.T) *FilesystemRepository {
	t.Helper()
	repo := NewFilesystemRepository(t.TempDir())
	if err := repo.Initialize(); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	return repo
}

func TestInitialize(t *testing.T) {
	repo := NewFilesystemRepository(t.TempDir())

	if repo.IsInitialized() {
		t.Error("fresh workspace should not be initialized")
	}
	if err := repo.Initialize(); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	if !repo.IsInitialized() {
		t.Error("workspace should be initialized")
	}
}

func TestResolvePath(t *testing.T) {
	repo := NewFilesystemRepository(t.TempDir())

	tests := []struct {
		filename string
		wantErr  bool
	}{
		{"report.json", false},
		{"", true},
		{"../escape.json", true},
		{"nested/file.json", true},
		{"/etc/passwd", true},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			_, err := repo.ResolvePath(tt.filename)
			if (err != nil) != tt.wantErr {
				t.Errorf("ResolvePath(%q) error = %v, wantErr %v", tt.filename, err, tt.wantErr)
			}
		})
	}
}

func TestReportRoundTrip(t *testing.T) {
	repo := newTestRepo(t)

	report, err := analysis.Analyze("# Title\n\nJust a short note.")
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if err := repo.SaveReport(report); err != nil {
		t.Fatalf("SaveReport() error = %v", err)
	}

	loaded, err := repo.LoadReport()
	if err != nil {
		t.Fatalf("LoadReport() error = %v", err)
	}
	if loaded.Summary != report.Summary {
		t.Errorf("loaded summary = %+v, want %+v", loaded.Summary, report.Summary)
	}
	if len(loaded.MissingCriteria) != len(report.MissingCriteria) {
		t.Errorf("loaded %d missing criteria, want %d", len(loaded.MissingCriteria), len(report.MissingCriteria))
	}
}

func TestLoadReportMissing(t *testing.T) {
	repo := newTestRepo(t)

	if _, err := repo.LoadReport(); err == nil {
		t.Error("loading a missing report should fail")
	}
}

func TestHistoryRoundTrip(t *testing.T) {
	repo := newTestRepo(t)

	// Missing file reads as empty history.
	entries, err := repo.LoadHistory()
	if err != nil {
		t.Fatalf("LoadHistory() error = %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("fresh history has %d entries, want 0", len(entries))
	}

	saved := []domain.HistoryEntry{
		{ID: "a", Source: "doc.md", QualityScore: 40, ComplexityScore: 2, AnalyzedAt: time.Now()},
		{ID: "b", Source: "doc.md", QualityScore: 65, ComplexityScore: 3, AnalyzedAt: time.Now()},
	}
	if err := repo.SaveHistory(saved); err != nil {
		t.Fatalf("SaveHistory() error = %v", err)
	}

	loaded, err := repo.LoadHistory()
	if err != nil {
		t.Fatalf("LoadHistory() error = %v", err)
	}
	if len(loaded) != 2 || loaded[0].ID != "a" || loaded[1].QualityScore != 65 {
		t.Errorf("loaded history = %+v, want the saved entries in order", loaded)
	}
}

func TestRequirementsRoundTrip(t *testing.T) {
	repo := newTestRepo(t)

	reqs := []*requirement.Requirement{
		{
			ID:                 "req-1",
			Title:              "Bulk export",
			Priority:           "must-have",
			Status:             requirement.StatusDraft,
			AcceptanceCriteria: []string{"exports finish in under 5 seconds"},
		},
	}
	if err := repo.SaveRequirements(reqs); err != nil {
		t.Fatalf("SaveRequirements() error = %v", err)
	}

	loaded, err := repo.LoadRequirements()
	if err != nil {
		t.Fatalf("LoadRequirements() error = %v", err)
	}
	if len(loaded) != 1 {
		t.Fatalf("loaded %d requirements, want 1", len(loaded))
	}
	if loaded[0].ID != "req-1" || loaded[0].Status != requirement.StatusDraft {
		t.Errorf("loaded requirement = %+v", loaded[0])
	}
	if len(loaded[0].AcceptanceCriteria) != 1 {
		t.Errorf("criteria = %v, want 1 entry", loaded[0].AcceptanceCriteria)
	}
}
