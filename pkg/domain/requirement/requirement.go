// Package requirement models structured requirement records and their
// review lifecycle. A record can be composed into a markdown document for
// analysis, so structured and free-text input share one scoring path.
package requirement

import (
	"fmt"
	"strings"
	"time"
)

// Requirement is one structured requirement record.
type Requirement struct {
	ID                 string    `json:"id" yaml:"id"`
	Title              string    `json:"title" yaml:"title"`
	Description        string    `json:"description" yaml:"description"`
	Category           string    `json:"category" yaml:"category"`
	Priority           string    `json:"priority" yaml:"priority"`
	AcceptanceCriteria []string  `json:"acceptance_criteria" yaml:"acceptance_criteria"`
	Status             Status    `json:"status" yaml:"status"`
	LastQualityScore   int       `json:"last_quality_score" yaml:"last_quality_score"`
	CreatedAt          time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt          time.Time `json:"updated_at" yaml:"updated_at"`
}

// New creates a draft requirement with timestamps set.
func New(id, title, description string) *Requirement {
	now := time.Now()
	return &Requirement{
		ID:          id,
		Title:       title,
		Description: description,
		Status:      StatusDraft,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Compose assembles the record into a markdown document suitable for the
// analyzer: title, description, category and priority lines, and a
// synthesized Acceptance Criteria section.
func (r *Requirement) Compose() string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", r.Title)
	if r.Description != "" {
		b.WriteString(r.Description)
		b.WriteString("\n\n")
	}
	if r.Category != "" {
		fmt.Fprintf(&b, "Category: %s\n", r.Category)
	}
	if r.Priority != "" {
		fmt.Fprintf(&b, "Priority: %s\n", r.Priority)
	}
	if r.Category != "" || r.Priority != "" {
		b.WriteString("\n")
	}

	if len(r.AcceptanceCriteria) > 0 {
		b.WriteString("## Acceptance Criteria\n\n")
		for _, c := range r.AcceptanceCriteria {
			fmt.Fprintf(&b, "- %s\n", c)
		}
	}

	return b.String()
}

// Validate checks the record for structural integrity.
func (r *Requirement) Validate() []error {
	var errs []error
	if r.ID == "" {
		errs = append(errs, fmt.Errorf("requirement ID is required"))
	}
	if r.Title == "" {
		errs = append(errs, fmt.Errorf("requirement Title is required"))
	}
	if r.Status != "" && !r.Status.IsValid() {
		errs = append(errs, fmt.Errorf("unknown status: %s", r.Status))
	}

	seen := make(map[string]bool)
	for i, c := range r.AcceptanceCriteria {
		trimmed := strings.TrimSpace(c)
		if trimmed == "" {
			errs = append(errs, fmt.Errorf("acceptance criterion at index %d is empty", i))
			continue
		}
		if seen[trimmed] {
			errs = append(errs, fmt.Errorf("duplicate acceptance criterion: %s", trimmed))
		}
		seen[trimmed] = true
	}
	return errs
}

// RecordScore stores the latest analysis score on the record.
func (r *Requirement) RecordScore(score int) {
	r.LastQualityScore = score
	r.UpdatedAt = time.Now()
}
