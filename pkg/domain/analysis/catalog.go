package analysis

import "regexp"

// QualityCheck is one fixed criterion scored present/absent against the
// document text. Checks are static configuration: the catalog is identical
// for every analysis call and is never mutated at runtime.
type QualityCheck struct {
	// Key uniquely identifies the check.
	Key string `json:"key" yaml:"key"`

	// Label is the human-readable name shown in reports.
	Label string `json:"label" yaml:"label"`

	// Weight is the relative importance (1-3). Checks with weight >= 2
	// surface as high-priority missing criteria.
	Weight int `json:"weight" yaml:"weight"`

	// Pattern detects the criterion in the raw text.
	Pattern *regexp.Regexp `json:"-" yaml:"-"`

	// Suggestion is the fixed advice shown when the check does not match.
	Suggestion string `json:"suggestion" yaml:"suggestion"`
}

// Matches reports whether the check's pattern occurs in the text.
func (c QualityCheck) Matches(text string) bool {
	return c.Pattern.MatchString(text)
}

// MissingPriority returns the priority a missing criterion carries.
func (c QualityCheck) MissingPriority() Priority {
	if c.Weight >= 2 {
		return PriorityHigh
	}
	return PriorityLow
}

var catalog = []QualityCheck{
	{
		Key:        "hasTitle",
		Label:      "Document title",
		Weight:     1,
		Pattern:    regexp.MustCompile(`(?m)^#\s+\S`),
		Suggestion: "Start the document with a single top-level heading naming the feature.",
	},
	{
		Key:        "hasOverview",
		Label:      "Overview",
		Weight:     2,
		Pattern:    regexp.MustCompile(`(?im)^#{1,3}\s+.*(overview|summary|introduction)|\b(overview|tl;dr)\b`),
		Suggestion: "Add an Overview section explaining the problem and the proposed solution.",
	},
	{
		Key:        "hasGoals",
		Label:      "Goals",
		Weight:     2,
		Pattern:    regexp.MustCompile(`(?i)\b(goals?|objectives?|purpose)\b`),
		Suggestion: "State the goals: what outcome this work is meant to achieve.",
	},
	{
		Key:        "hasUserStories",
		Label:      "User stories",
		Weight:     2,
		Pattern:    regexp.MustCompile(`(?i)user stor(y|ies)|as an?\s+\w[\w\s]*,?\s+i (want|need|can)`),
		Suggestion: "Describe who uses the feature with user stories (\"As a ..., I want ...\").",
	},
	{
		Key:        "hasAcceptanceCriteria",
		Label:      "Acceptance criteria",
		Weight:     3,
		Pattern:    regexp.MustCompile(`(?i)acceptance criteria|definition of done`),
		Suggestion: "Add an Acceptance Criteria section listing verifiable conditions for completion.",
	},
	{
		Key:        "hasEdgeCases",
		Label:      "Edge cases",
		Weight:     2,
		Pattern:    regexp.MustCompile(`(?i)edge cases?|error (handling|scenarios?|states?)|failure modes?`),
		Suggestion: "Document edge cases and error scenarios, not just the happy path.",
	},
	{
		Key:        "hasTechnicalRequirements",
		Label:      "Technical requirements",
		Weight:     2,
		Pattern:    regexp.MustCompile(`(?i)technical (requirements?|constraints?|notes?)|architecture|implementation`),
		Suggestion: "Capture technical requirements and constraints the implementation must honor.",
	},
	{
		Key:        "hasMetrics",
		Label:      "Success metrics",
		Weight:     2,
		Pattern:    regexp.MustCompile(`(?i)success metrics?|kpis?\b|measur(e|able|ed|ement)`),
		Suggestion: "Define measurable success metrics so the outcome can be evaluated.",
	},
	{
		Key:        "hasTimeline",
		Label:      "Timeline",
		Weight:     1,
		Pattern:    regexp.MustCompile(`(?i)timeline|milestones?|deadline|schedule|phases?\b`),
		Suggestion: "Sketch a timeline or milestones for delivery.",
	},
	{
		Key:        "hasScope",
		Label:      "Scope boundaries",
		Weight:     2,
		Pattern:    regexp.MustCompile(`(?i)out of scope|non-goals?|in scope|\bscope\b`),
		Suggestion: "State what is explicitly out of scope to bound the work.",
	},
	{
		Key:        "hasDependencies",
		Label:      "Dependencies",
		Weight:     1,
		Pattern:    regexp.MustCompile(`(?i)dependenc(y|ies)|prerequisites?|blocked (by|on)`),
		Suggestion: "List dependencies and prerequisites this work relies on.",
	},
	{
		Key:        "hasPriority",
		Label:      "Priority",
		Weight:     1,
		Pattern:    regexp.MustCompile(`(?i)priorit(y|ies)|must[- ]have|should[- ]have|nice[- ]to[- ]have|\bp[0-3]\b`),
		Suggestion: "Mark the priority so the work can be sequenced against other efforts.",
	},
}

// Catalog returns the fixed quality-check catalog. Callers must treat the
// returned slice as read-only.
func Catalog() []QualityCheck {
	return catalog
}

// TotalWeight returns the sum of all check weights.
func TotalWeight() int {
	total := 0
	for _, c := range catalog {
		total += c.Weight
	}
	return total
}
