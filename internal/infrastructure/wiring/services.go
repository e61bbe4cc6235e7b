// Package wiring assembles the application services for a workspace root.
package wiring

import (
	"time"

	"github.com/felixgeelhaar/prdlens/internal/infrastructure/config"
	"github.com/felixgeelhaar/prdlens/pkg/application"
	"github.com/felixgeelhaar/prdlens/pkg/storage"
)

// AppServices exposes the application layer services wired together with
// a workspace.
type AppServices struct {
	Repo         *storage.FilesystemRepository
	Analysis     *application.AnalysisService
	Requirements *application.RequirementService

	// Debounce is the resolved watch-mode debounce window.
	Debounce time.Duration
}

// BuildAppServices wires the services for the given workspace root,
// applying configuration from .prdlens/config.yaml when present.
func BuildAppServices(root string) (*AppServices, error) {
	repo := storage.NewFilesystemRepository(root)

	historyLimit := 0
	qualityGate := 0
	debounce := time.Duration(0)

	cfg, err := config.Load(root)
	if err != nil {
		return nil, err
	}
	if cfg != nil {
		historyLimit = cfg.HistoryLimit
		qualityGate = cfg.QualityGate
		debounce = time.Duration(cfg.DebounceMs) * time.Millisecond
	}

	analysisSvc := application.NewAnalysisService(repo, historyLimit)

	return &AppServices{
		Repo:         repo,
		Analysis:     analysisSvc,
		Requirements: application.NewRequirementService(repo, analysisSvc, qualityGate),
		Debounce:     debounce,
	}, nil
}
