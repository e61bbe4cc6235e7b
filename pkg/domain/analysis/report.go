// Package analysis provides heuristic quality scoring and complexity
// estimation for product requirement documents. The analyzer is a pure
// function over the document text: no inference, no I/O, no shared state.
package analysis

import "time"

// Priority classifies how urgently a finding should be addressed.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// IsValid returns true if the priority is a recognized value.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	default:
		return false
	}
}

// String returns the string representation of the priority.
func (p Priority) String() string {
	return string(p)
}

// Level classifies the overall complexity of a document.
type Level string

const (
	LevelLow    Level = "Low"
	LevelMedium Level = "Medium"
	LevelHigh   Level = "High"
)

// Summary holds the structural statistics of a document.
type Summary struct {
	// WordCount is the number of whitespace-delimited tokens.
	WordCount int `json:"word_count" yaml:"word_count"`

	// SectionCount is the number of Markdown headings (levels 1-3).
	SectionCount int `json:"section_count" yaml:"section_count"`

	// BulletPoints is the number of bulleted list lines.
	BulletPoints int `json:"bullet_points" yaml:"bullet_points"`

	// NumberedItems is the number of numbered list lines.
	NumberedItems int `json:"numbered_items" yaml:"numbered_items"`

	// LineCount is the number of lines in the document.
	LineCount int `json:"line_count" yaml:"line_count"`

	// QualityScore is the weighted percentage of matched checks (0-100).
	QualityScore int `json:"quality_score" yaml:"quality_score"`
}

// MissingCriterion reports a quality check that did not match.
type MissingCriterion struct {
	Key        string   `json:"key" yaml:"key"`
	Label      string   `json:"label" yaml:"label"`
	Priority   Priority `json:"priority" yaml:"priority"`
	Suggestion string   `json:"suggestion" yaml:"suggestion"`
}

// Improvement is a heuristic finding about the document's content.
type Improvement struct {
	Type        string   `json:"type" yaml:"type"`
	Priority    Priority `json:"priority" yaml:"priority"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
}

// Factor records one contribution to the complexity score.
type Factor struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Impact      int    `json:"impact" yaml:"impact"`
}

// Breakdown splits the complexity estimate into four dimensions,
// each capped at 3, for visualization.
type Breakdown struct {
	Scope       int `json:"scope" yaml:"scope"`
	Technical   int `json:"technical" yaml:"technical"`
	Integration int `json:"integration" yaml:"integration"`
	UI          int `json:"ui" yaml:"ui"`
}

// Complexity is the effort estimate derived from keyword density and
// document size.
type Complexity struct {
	// Score is the normalized complexity (1-10).
	Score int `json:"score" yaml:"score"`

	// Level buckets the score: Low <=3, Medium <=6, High >6.
	Level Level `json:"level" yaml:"level"`

	// EffortEstimate is a discrete duration bucket.
	EffortEstimate string `json:"effort_estimate" yaml:"effort_estimate"`

	// Breakdown holds per-dimension sub-scores.
	Breakdown Breakdown `json:"breakdown" yaml:"breakdown"`

	// Factors lists every contribution to the raw score.
	Factors []Factor `json:"factors" yaml:"factors"`
}

// Report is the full result of analyzing one document. It is built fresh
// per call and never mutated afterwards.
type Report struct {
	Summary         Summary            `json:"summary" yaml:"summary"`
	MissingCriteria []MissingCriterion `json:"missing_criteria" yaml:"missing_criteria"`
	Improvements    []Improvement      `json:"improvements" yaml:"improvements"`
	Complexity      Complexity         `json:"complexity" yaml:"complexity"`
	GeneratedAt     time.Time          `json:"generated_at" yaml:"generated_at"`
}

// MatchedCount returns the number of catalog checks the document satisfied.
func (r *Report) MatchedCount() int {
	return len(Catalog()) - len(r.MissingCriteria)
}
