package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/felixgeelhaar/fortify/retry"
	"github.com/felixgeelhaar/prdlens/pkg/domain"
	"github.com/felixgeelhaar/prdlens/pkg/domain/analysis"
	"github.com/felixgeelhaar/prdlens/pkg/domain/requirement"
	"gopkg.in/yaml.v3"
)

const PrdlensDir = ".prdlens"
const ReportFile = "report.json"
const HistoryFile = "history.json"
const RequirementsFile = "requirements.yaml"
const ConfigFile = "config.yaml"

type FilesystemRepository struct {
	root        string
	retryConfig retry.Config
}

func NewFilesystemRepository(root string) *FilesystemRepository {
	return &FilesystemRepository{
		root: root,
		retryConfig: retry.Config{
			MaxAttempts:   3,
			InitialDelay:  10 * time.Millisecond,
			BackoffPolicy: retry.BackoffExponential,
		},
	}
}

// Root returns the workspace root directory.
func (r *FilesystemRepository) Root() string {
	return r.root
}

// ResolvePath ensures the path is within the .prdlens directory and
// prevents traversal.
func (r *FilesystemRepository) ResolvePath(filename string) (string, error) {
	if filename == "" {
		return "", fmt.Errorf("filename cannot be empty")
	}

	baseDir := filepath.Join(r.root, PrdlensDir)
	fullPath := filepath.Join(baseDir, filename)
	cleanPath := filepath.Clean(fullPath)

	// Direct children of .prdlens only.
	if !strings.HasPrefix(cleanPath, baseDir) || filepath.Dir(cleanPath) != baseDir {
		return "", fmt.Errorf("invalid file path: %s", filename)
	}

	return cleanPath, nil
}

func (r *FilesystemRepository) Initialize() error {
	path := filepath.Join(r.root, PrdlensDir)
	if err := os.MkdirAll(path, 0700); err != nil {
		return fmt.Errorf("failed to create .prdlens directory: %w", err)
	}
	return nil
}

func (r *FilesystemRepository) IsInitialized() bool {
	_, err := os.Stat(filepath.Join(r.root, PrdlensDir))
	return err == nil
}

// SaveReport persists the most recent analysis report.
func (r *FilesystemRepository) SaveReport(report *analysis.Report) error {
	path, err := r.ResolvePath(ReportFile)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}

// LoadReport loads the most recent analysis report. Loads retry briefly
// so a concurrent writer does not surface a spurious failure.
func (r *FilesystemRepository) LoadReport() (*analysis.Report, error) {
	retryer := retry.New[*analysis.Report](r.retryConfig)

	return retryer.Do(context.Background(), func(ctx context.Context) (*analysis.Report, error) {
		path, err := r.ResolvePath(ReportFile)
		if err != nil {
			return nil, err
		}

		// #nosec G304 -- Path is resolved and validated via ResolvePath
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read report file: %w", err)
		}

		var report analysis.Report
		if err := json.Unmarshal(data, &report); err != nil {
			return nil, fmt.Errorf("failed to unmarshal report: %w", err)
		}

		return &report, nil
	})
}

// SaveHistory persists the quality-score history.
func (r *FilesystemRepository) SaveHistory(entries []domain.HistoryEntry) error {
	path, err := r.ResolvePath(HistoryFile)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}

// LoadHistory loads the quality-score history. A missing file is an empty
// history, not an error.
func (r *FilesystemRepository) LoadHistory() ([]domain.HistoryEntry, error) {
	path, err := r.ResolvePath(HistoryFile)
	if err != nil {
		return nil, err
	}

	// #nosec G304 -- Path is resolved and validated via ResolvePath
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.HistoryEntry{}, nil
		}
		return nil, fmt.Errorf("failed to read history file: %w", err)
	}

	var entries []domain.HistoryEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal history: %w", err)
	}

	return entries, nil
}

// SaveRequirements persists the structured requirement catalog.
func (r *FilesystemRepository) SaveRequirements(reqs []*requirement.Requirement) error {
	path, err := r.ResolvePath(RequirementsFile)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(reqs)
	if err != nil {
		return fmt.Errorf("failed to marshal requirements: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}

// LoadRequirements loads the structured requirement catalog. A missing
// file is an empty catalog, not an error.
func (r *FilesystemRepository) LoadRequirements() ([]*requirement.Requirement, error) {
	path, err := r.ResolvePath(RequirementsFile)
	if err != nil {
		return nil, err
	}

	// #nosec G304 -- Path is resolved and validated via ResolvePath
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []*requirement.Requirement{}, nil
		}
		return nil, fmt.Errorf("failed to read requirements file: %w", err)
	}

	var reqs []*requirement.Requirement
	if err := yaml.Unmarshal(data, &reqs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal requirements: %w", err)
	}

	return reqs, nil
}
