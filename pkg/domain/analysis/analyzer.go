package analysis

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"
	"unicode"
)

// ErrEmptyDocument is returned when the document is empty after trimming
// whitespace. It is the only failure mode: every other input is scored.
var ErrEmptyDocument = errors.New("document is empty")

var (
	headingPattern  = regexp.MustCompile(`(?m)^(#{1,3})\s+(.+)$`)
	bulletPattern   = regexp.MustCompile(`(?m)^\s*[-*+]\s+\S`)
	numberedPattern = regexp.MustCompile(`(?m)^\s*\d+[.)]\s+\S`)

	// quantifiedPattern detects numeric targets with a unit, e.g. "200ms",
	// "5 seconds", "99.9%", "1000 users".
	quantifiedPattern = regexp.MustCompile(`(?i)\d+(\.\d+)?\s*(ms|milliseconds?|seconds?|%|users?|requests?|mb|gb|kb)\b`)
)

// vagueWords are terms that signal unmeasurable requirements. The list is
// fixed configuration; matching is whole-word and case-insensitive.
var vagueWords = []string{
	"fast", "good", "easy", "simple", "improve", "various", "etc", "some", "many", "few",
}

var vaguePattern = regexp.MustCompile(`(?i)\b(` + strings.Join(vagueWords, "|") + `)\b`)

// Analyze scores a requirement document and returns a full report.
// The computation is deterministic: identical input yields an identical
// report apart from the GeneratedAt timestamp.
func Analyze(text string) (*Report, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyDocument
	}

	summary := computeSummary(text)

	var missing []MissingCriterion
	matchedWeight := 0
	acceptanceMatched := false
	userStoriesMatched := false
	edgeCasesMatched := false
	for _, check := range Catalog() {
		if check.Matches(text) {
			matchedWeight += check.Weight
			switch check.Key {
			case "hasAcceptanceCriteria":
				acceptanceMatched = true
			case "hasUserStories":
				userStoriesMatched = true
			case "hasEdgeCases":
				edgeCasesMatched = true
			}
			continue
		}
		missing = append(missing, MissingCriterion{
			Key:        check.Key,
			Label:      check.Label,
			Priority:   check.MissingPriority(),
			Suggestion: check.Suggestion,
		})
	}
	summary.QualityScore = int(math.Round(float64(matchedWeight) / float64(TotalWeight()) * 100))

	improvements := buildImprovements(text, summary, acceptanceMatched, userStoriesMatched, edgeCasesMatched)

	return &Report{
		Summary:         summary,
		MissingCriteria: missing,
		Improvements:    improvements,
		Complexity:      EstimateComplexity(text, summary),
		GeneratedAt:     time.Now(),
	}, nil
}

func computeSummary(text string) Summary {
	words := 0
	for _, token := range strings.Fields(text) {
		if strings.ContainsFunc(token, func(r rune) bool {
			return unicode.IsLetter(r) || unicode.IsDigit(r)
		}) {
			words++
		}
	}

	return Summary{
		WordCount:     words,
		SectionCount:  len(headingPattern.FindAllString(text, -1)),
		BulletPoints:  len(bulletPattern.FindAllString(text, -1)),
		NumberedItems: len(numberedPattern.FindAllString(text, -1)),
		LineCount:     strings.Count(text, "\n") + 1,
	}
}

// buildImprovements runs the heuristic content rules in a fixed order.
// Each rule is independent and optionally appends one finding.
func buildImprovements(text string, summary Summary, acceptanceMatched, userStoriesMatched, edgeCasesMatched bool) []Improvement {
	var findings []Improvement

	switch {
	case summary.WordCount < 100:
		findings = append(findings, Improvement{
			Type:        "length",
			Priority:    PriorityHigh,
			Title:       "PRD is too brief",
			Description: fmt.Sprintf("The document has only %d words. Expand it so implementers do not have to guess intent.", summary.WordCount),
		})
	case summary.WordCount < 300:
		findings = append(findings, Improvement{
			Type:        "length",
			Priority:    PriorityMedium,
			Title:       "Add more detail",
			Description: "The document is on the short side. Flesh out requirements, constraints, and examples.",
		})
	}

	if summary.SectionCount < 3 {
		findings = append(findings, Improvement{
			Type:        "structure",
			Priority:    PriorityHigh,
			Title:       "Improve document structure",
			Description: "Organize the document with headings (Overview, Goals, Requirements, ...) so readers can navigate it.",
		})
	}

	if summary.BulletPoints < 3 && summary.NumberedItems < 3 {
		findings = append(findings, Improvement{
			Type:        "structure",
			Priority:    PriorityMedium,
			Title:       "Use structured lists",
			Description: "Break requirements into bulleted or numbered lists instead of prose paragraphs.",
		})
	}

	if vague := vaguePattern.FindAllString(text, -1); len(vague) > 3 {
		examples := uniqueLower(vague, 3)
		findings = append(findings, Improvement{
			Type:        "clarity",
			Priority:    PriorityMedium,
			Title:       "Replace vague language",
			Description: fmt.Sprintf("Found %d vague terms (e.g. %s). Replace them with concrete, testable statements.", len(vague), strings.Join(examples, ", ")),
		})
	}

	if acceptanceMatched && !quantifiedPattern.MatchString(text) {
		findings = append(findings, Improvement{
			Type:        "measurability",
			Priority:    PriorityMedium,
			Title:       "Add quantitative targets",
			Description: "Acceptance criteria exist but carry no numbers. Add measurable targets such as \"response time under 200ms\".",
		})
	}

	if !edgeCasesMatched {
		findings = append(findings, Improvement{
			Type:        "coverage",
			Priority:    PriorityMedium,
			Title:       "Address error scenarios",
			Description: "No edge cases or error handling are described. State what should happen when things go wrong.",
		})
	}

	if f, ok := headingConsistencyFinding(text); ok {
		findings = append(findings, f)
	}

	if !userStoriesMatched {
		findings = append(findings, Improvement{
			Type:        "audience",
			Priority:    PriorityMedium,
			Title:       "Define target users",
			Description: "The document does not say who the feature is for. Add user stories or personas.",
		})
	}

	return findings
}

// headingConsistencyFinding flags documents whose headings mix lowercase
// and uppercase first letters, once there are more than 2 headings.
func headingConsistencyFinding(text string) (Improvement, bool) {
	headings := headingPattern.FindAllStringSubmatch(text, -1)
	if len(headings) <= 2 {
		return Improvement{}, false
	}

	lower, upper := 0, 0
	for _, h := range headings {
		title := strings.TrimSpace(h[2])
		if title == "" {
			continue
		}
		r := []rune(title)[0]
		switch {
		case unicode.IsLower(r):
			lower++
		case unicode.IsUpper(r):
			upper++
		}
	}

	if lower == 0 || upper == 0 {
		return Improvement{}, false
	}
	return Improvement{
		Type:        "consistency",
		Priority:    PriorityLow,
		Title:       "Standardize heading capitalization",
		Description: fmt.Sprintf("Headings mix capitalization styles (%d lowercase, %d uppercase). Pick one and apply it throughout.", lower, upper),
	}, true
}

// uniqueLower returns up to limit distinct lowercase forms, preserving
// first-seen order.
func uniqueLower(matches []string, limit int) []string {
	seen := make(map[string]bool)
	var out []string
	for _, m := range matches {
		m = strings.ToLower(m)
		if seen[m] {
			continue
		}
		seen[m] = true
		out = append(out, m)
		if len(out) == limit {
			break
		}
	}
	return out
}
