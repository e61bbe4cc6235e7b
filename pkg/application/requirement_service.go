package application

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/felixgeelhaar/prdlens/pkg/domain"
	"github.com/felixgeelhaar/prdlens/pkg/domain/analysis"
	"github.com/felixgeelhaar/prdlens/pkg/domain/requirement"
	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

// DefaultQualityGate is the minimum quality score a requirement needs
// before it can be approved.
const DefaultQualityGate = 60

// importSchemaJSON validates requirement import payloads before they are
// unmarshaled into records.
const importSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "items": {
    "type": "object",
    "properties": {
      "id": {"type": "string"},
      "title": {"type": "string", "minLength": 1},
      "description": {"type": "string"},
      "category": {"type": "string"},
      "priority": {"type": "string"},
      "acceptance_criteria": {
        "type": "array",
        "items": {"type": "string"}
      }
    },
    "required": ["title"],
    "additionalProperties": true
  }
}`

var importSchemaLoader = gojsonschema.NewStringLoader(importSchemaJSON)

// RequirementService manages the structured requirement catalog and its
// review lifecycle.
type RequirementService struct {
	repo        domain.WorkspaceRepository
	analysisSvc *AnalysisService
	qualityGate int
}

func NewRequirementService(repo domain.WorkspaceRepository, analysisSvc *AnalysisService, qualityGate int) *RequirementService {
	if qualityGate <= 0 {
		qualityGate = DefaultQualityGate
	}
	return &RequirementService{repo: repo, analysisSvc: analysisSvc, qualityGate: qualityGate}
}

// ImportFile loads requirement records from a JSON or YAML file, validates
// the payload against the import schema, and merges the records into the
// catalog. Existing records with the same ID are replaced.
func (s *RequirementService) ImportFile(path string) ([]*requirement.Requirement, error) {
	cleanPath := filepath.Clean(path)
	// #nosec G304 -- importing a user-named file is the point of the command
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read import file: %w", err)
	}

	payload, err := toJSON(data, filepath.Ext(cleanPath))
	if err != nil {
		return nil, err
	}

	result, err := gojsonschema.Validate(importSchemaLoader, gojsonschema.NewBytesLoader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to validate import payload: %w", err)
	}
	if !result.Valid() {
		var problems []string
		for _, desc := range result.Errors() {
			problems = append(problems, desc.String())
		}
		return nil, fmt.Errorf("import payload is not valid: %s", strings.Join(problems, "; "))
	}

	var imported []*requirement.Requirement
	if err := json.Unmarshal(payload, &imported); err != nil {
		return nil, fmt.Errorf("failed to unmarshal requirements: %w", err)
	}

	existing, err := s.repo.LoadRequirements()
	if err != nil {
		return nil, err
	}
	byID := make(map[string]int, len(existing))
	for i, r := range existing {
		byID[r.ID] = i
	}

	for _, r := range imported {
		if r.ID == "" {
			r.ID = slugify(r.Title)
		}
		if r.Status == "" {
			r.Status = requirement.StatusDraft
		}
		if errs := r.Validate(); len(errs) > 0 {
			return nil, fmt.Errorf("invalid requirement %q: %v", r.ID, errs[0])
		}
		if i, ok := byID[r.ID]; ok {
			existing[i] = r
		} else {
			byID[r.ID] = len(existing)
			existing = append(existing, r)
		}
	}

	if err := s.repo.SaveRequirements(existing); err != nil {
		return nil, err
	}
	return imported, nil
}

// Add creates a new draft requirement in the catalog.
func (s *RequirementService) Add(title, description, category, priority string, criteria []string) (*requirement.Requirement, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("requirement title is required")
	}

	reqs, err := s.repo.LoadRequirements()
	if err != nil {
		return nil, err
	}

	r := requirement.New(slugify(title), title, description)
	r.Category = category
	r.Priority = priority
	r.AcceptanceCriteria = criteria

	// A symbol-only title slugifies to an empty ID; Validate rejects it
	// the same way ImportFile rejects malformed records.
	if errs := r.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("invalid requirement %q: %v", title, errs[0])
	}

	for _, existing := range reqs {
		if existing.ID == r.ID {
			return nil, fmt.Errorf("requirement %q already exists", r.ID)
		}
	}

	reqs = append(reqs, r)
	if err := s.repo.SaveRequirements(reqs); err != nil {
		return nil, err
	}
	return r, nil
}

// List returns the requirement catalog.
func (s *RequirementService) List() ([]*requirement.Requirement, error) {
	return s.repo.LoadRequirements()
}

// Get returns one requirement by ID.
func (s *RequirementService) Get(id string) (*requirement.Requirement, error) {
	reqs, err := s.repo.LoadRequirements()
	if err != nil {
		return nil, err
	}
	for _, r := range reqs {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, fmt.Errorf("requirement %q not found", id)
}

// Analyze composes the requirement into a document, analyzes it, stores
// the score on the record, and moves it to the analyzed state.
func (s *RequirementService) Analyze(id string) (*analysis.Report, error) {
	reqs, err := s.repo.LoadRequirements()
	if err != nil {
		return nil, err
	}

	r := findByID(reqs, id)
	if r == nil {
		return nil, fmt.Errorf("requirement %q not found", id)
	}

	report, err := s.analysisSvc.AnalyzeText(r.Compose(), "requirement:"+r.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze requirement %q: %w", id, err)
	}

	if err := s.transition(r, requirement.EventAnalyze); err != nil {
		return nil, err
	}
	r.RecordScore(report.Summary.QualityScore)

	if err := s.repo.SaveRequirements(reqs); err != nil {
		return nil, err
	}
	return report, nil
}

// Approve moves an analyzed requirement to approved, provided its last
// score meets the quality gate.
func (s *RequirementService) Approve(id string) (*requirement.Requirement, error) {
	return s.applyEvent(id, requirement.EventApprove)
}

// Flag marks an analyzed requirement as needing work.
func (s *RequirementService) Flag(id string) (*requirement.Requirement, error) {
	return s.applyEvent(id, requirement.EventFlag)
}

// Reopen returns an approved or flagged requirement to draft.
func (s *RequirementService) Reopen(id string) (*requirement.Requirement, error) {
	return s.applyEvent(id, requirement.EventReopen)
}

// QualityGate returns the configured minimum score for approval.
func (s *RequirementService) QualityGate() int {
	return s.qualityGate
}

func (s *RequirementService) applyEvent(id, event string) (*requirement.Requirement, error) {
	reqs, err := s.repo.LoadRequirements()
	if err != nil {
		return nil, err
	}

	r := findByID(reqs, id)
	if r == nil {
		return nil, fmt.Errorf("requirement %q not found", id)
	}

	if err := s.transition(r, event); err != nil {
		return nil, err
	}

	if err := s.repo.SaveRequirements(reqs); err != nil {
		return nil, err
	}
	return r, nil
}

// transition runs the review state machine for a single event and writes
// the resulting status back onto the record.
func (s *RequirementService) transition(r *requirement.Requirement, event string) error {
	gate := func(string) bool { return r.LastQualityScore >= s.qualityGate }

	sm, err := requirement.NewReviewStateMachine(r.Status, r.ID, gate)
	if err != nil {
		return err
	}
	if err := sm.Transition(event); err != nil {
		if event == requirement.EventApprove && r.Status == requirement.StatusAnalyzed {
			return fmt.Errorf("requirement %q scored %d, below the quality gate of %d", r.ID, r.LastQualityScore, s.qualityGate)
		}
		return err
	}

	r.Status = sm.Current()
	return nil
}

func findByID(reqs []*requirement.Requirement, id string) *requirement.Requirement {
	for _, r := range reqs {
		if r.ID == id {
			return r
		}
	}
	return nil
}

func slugify(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r == ' ' || r == '-' || r == '_':
			return '-'
		default:
			return -1
		}
	}, slug)
	return strings.Trim(slug, "-")
}

// toJSON normalizes an import payload to JSON. YAML payloads are decoded
// and re-encoded; JSON passes through.
func toJSON(data []byte, ext string) ([]byte, error) {
	switch strings.ToLower(ext) {
	case ".json":
		return data, nil
	case ".yaml", ".yml":
		var decoded any
		if err := yaml.Unmarshal(data, &decoded); err != nil {
			return nil, fmt.Errorf("failed to parse YAML import: %w", err)
		}
		payload, err := json.Marshal(decoded)
		if err != nil {
			return nil, fmt.Errorf("failed to convert YAML import: %w", err)
		}
		return payload, nil
	default:
		return nil, fmt.Errorf("unsupported import format %q (use .json, .yaml, or .yml)", ext)
	}
}
