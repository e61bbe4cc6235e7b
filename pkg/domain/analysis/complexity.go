package analysis

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

// Keyword lists driving the complexity estimate. These are fixed,
// English-only configuration; occurrences are counted across the whole
// document, case-insensitive and whole-word.
var (
	technicalTerms = []string{
		"api", "database", "migration", "authentication", "authorization",
		"encryption", "websocket", "microservices?", "oauth", "jwt",
		"graphql", "webhooks?", "cach(e|ing)", "queues?", "indexing",
	}
	integrationTerms = []string{
		"integrations?", "third[- ]party", "external", "sync", "imports?",
		"exports?", "sso", "payments?", "stripe", "salesforce",
	}
	securityTerms = []string{
		"security", "compliance", "gdpr", "hipaa", "soc ?2", "audit", "privacy", "pii",
	}
	uiTerms = []string{
		"dashboards?", "charts?", "graphs?", "animations?", "drag", "responsive",
		"mobile", "accessibility", "dark mode", "real[- ]time", "wizard",
	}
)

var (
	technicalPattern   = termsPattern(technicalTerms)
	integrationPattern = termsPattern(integrationTerms)
	securityPattern    = termsPattern(securityTerms)
	uiPattern          = termsPattern(uiTerms)
)

func termsPattern(terms []string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b(` + strings.Join(terms, "|") + `)\b`)
}

// complexityScale is the raw score the normalization divides by; the
// normalized score is clamped to [1,10].
const complexityScale = 13

// EstimateComplexity derives the 1-10 complexity estimate from document
// size and keyword density. The summary must belong to the same text.
func EstimateComplexity(text string, summary Summary) Complexity {
	raw := 0
	var factors []Factor
	var breakdown Breakdown

	add := func(points int, dimension *int, name, description string) {
		raw += points
		*dimension += points
		factors = append(factors, Factor{Name: name, Description: description, Impact: points})
	}

	switch {
	case summary.WordCount > 500:
		add(2, &breakdown.Scope, "Document size", fmt.Sprintf("%d words describe a broad scope", summary.WordCount))
	case summary.WordCount > 200:
		add(1, &breakdown.Scope, "Document size", fmt.Sprintf("%d words describe a moderate scope", summary.WordCount))
	}

	switch {
	case summary.SectionCount > 6:
		add(2, &breakdown.Scope, "Section count", fmt.Sprintf("%d sections span many concerns", summary.SectionCount))
	case summary.SectionCount > 3:
		add(1, &breakdown.Scope, "Section count", fmt.Sprintf("%d sections cover several concerns", summary.SectionCount))
	}

	techCount := len(technicalPattern.FindAllString(text, -1))
	switch {
	case techCount > 5:
		add(3, &breakdown.Technical, "Technical depth", fmt.Sprintf("%d technical terms indicate heavy backend work", techCount))
	case techCount > 2:
		add(2, &breakdown.Technical, "Technical depth", fmt.Sprintf("%d technical terms indicate real backend work", techCount))
	case techCount > 0:
		add(1, &breakdown.Technical, "Technical depth", fmt.Sprintf("%d technical terms present", techCount))
	}

	integrationCount := len(integrationPattern.FindAllString(text, -1))
	switch {
	case integrationCount > 3:
		add(2, &breakdown.Integration, "Integrations", fmt.Sprintf("%d integration terms suggest external coupling", integrationCount))
	case integrationCount > 0:
		add(1, &breakdown.Integration, "Integrations", fmt.Sprintf("%d integration terms present", integrationCount))
	}

	if securityPattern.MatchString(text) {
		add(1, &breakdown.Technical, "Security and compliance", "Security or compliance obligations apply")
	}

	uiCount := len(uiPattern.FindAllString(text, -1))
	switch {
	case uiCount > 3:
		add(2, &breakdown.UI, "UI complexity", fmt.Sprintf("%d UI terms suggest substantial frontend work", uiCount))
	case uiCount > 0:
		add(1, &breakdown.UI, "UI complexity", fmt.Sprintf("%d UI terms present", uiCount))
	}

	score := clamp(int(math.Round(float64(raw)/complexityScale*10)), 1, 10)

	return Complexity{
		Score:          score,
		Level:          levelFor(score),
		EffortEstimate: effortFor(score),
		Breakdown: Breakdown{
			Scope:       capAt(breakdown.Scope, 3),
			Technical:   capAt(breakdown.Technical, 3),
			Integration: capAt(breakdown.Integration, 3),
			UI:          capAt(breakdown.UI, 3),
		},
		Factors: factors,
	}
}

func levelFor(score int) Level {
	switch {
	case score <= 3:
		return LevelLow
	case score <= 6:
		return LevelMedium
	default:
		return LevelHigh
	}
}

func effortFor(score int) string {
	switch {
	case score <= 2:
		return "1-2 days"
	case score <= 4:
		return "3-5 days"
	case score <= 6:
		return "1-2 weeks"
	case score <= 8:
		return "2-4 weeks"
	default:
		return "1-2 months"
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func capAt(v, max int) int {
	if v > max {
		return max
	}
	return v
}
