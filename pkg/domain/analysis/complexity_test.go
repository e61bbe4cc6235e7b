package analysis

import (
	"strings"
	"testing"
)

func estimate(t *testing.T, text string) Complexity {
	t.Helper()
	return EstimateComplexity(text, computeSummary(text))
}

func TestEstimateComplexityFloor(t *testing.T) {
	c := estimate(t, "hello world")

	if c.Score != 1 {
		t.Errorf("Score = %d, want 1 for a trivial document", c.Score)
	}
	if c.Level != LevelLow {
		t.Errorf("Level = %s, want Low", c.Level)
	}
	if c.EffortEstimate != "1-2 days" {
		t.Errorf("EffortEstimate = %q, want \"1-2 days\"", c.EffortEstimate)
	}
	if len(c.Factors) != 0 {
		t.Errorf("Factors = %+v, want none", c.Factors)
	}
}

func TestEstimateComplexityKeywordTiers(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantImpact int
		dimension  func(Breakdown) int
	}{
		{
			name:       "single technical term",
			text:       "store it in the database",
			wantImpact: 1,
			dimension:  func(b Breakdown) int { return b.Technical },
		},
		{
			name:       "several technical terms",
			text:       "an api over the database with oauth",
			wantImpact: 2,
			dimension:  func(b Breakdown) int { return b.Technical },
		},
		{
			name:       "dense technical terms",
			text:       "api database oauth jwt websocket graphql",
			wantImpact: 3,
			dimension:  func(b Breakdown) int { return b.Technical },
		},
		{
			name:       "single integration term",
			text:       "a third-party data source",
			wantImpact: 1,
			dimension:  func(b Breakdown) int { return b.Integration },
		},
		{
			name:       "many integration terms",
			text:       "integration with external sync and payments export",
			wantImpact: 2,
			dimension:  func(b Breakdown) int { return b.Integration },
		},
		{
			name:       "ui terms",
			text:       "a dashboard with a chart, responsive mobile layout, drag reorder",
			wantImpact: 2,
			dimension:  func(b Breakdown) int { return b.UI },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := estimate(t, tt.text)
			if got := tt.dimension(c.Breakdown); got != tt.wantImpact {
				t.Errorf("dimension = %d, want %d (factors %+v)", got, tt.wantImpact, c.Factors)
			}
		})
	}
}

func TestEstimateComplexitySecurityFlag(t *testing.T) {
	c := estimate(t, "must satisfy gdpr compliance")

	found := false
	for _, f := range c.Factors {
		if f.Name == "Security and compliance" {
			found = true
			if f.Impact != 1 {
				t.Errorf("security impact = %d, want 1", f.Impact)
			}
		}
	}
	if !found {
		t.Error("expected a security factor for compliance language")
	}
}

func TestEstimateComplexitySizeTiers(t *testing.T) {
	medium := strings.Repeat("word ", 250)
	large := strings.Repeat("word ", 600)

	if c := estimate(t, medium); c.Breakdown.Scope != 1 {
		t.Errorf("moderate document scope = %d, want 1", c.Breakdown.Scope)
	}
	if c := estimate(t, large); c.Breakdown.Scope != 2 {
		t.Errorf("large document scope = %d, want 2", c.Breakdown.Scope)
	}
}

func TestEstimateComplexityBreakdownCaps(t *testing.T) {
	// 600 words, 8 sections: scope raw 4, capped at 3.
	var b strings.Builder
	for i := 0; i < 8; i++ {
		b.WriteString("## Section Heading\n\n")
		b.WriteString(strings.Repeat("word ", 80))
		b.WriteString("\n\n")
	}

	c := estimate(t, b.String())
	if c.Breakdown.Scope != 3 {
		t.Errorf("Scope = %d, want capped at 3", c.Breakdown.Scope)
	}
}

func TestLevelAndEffortBuckets(t *testing.T) {
	tests := []struct {
		score  int
		level  Level
		effort string
	}{
		{1, LevelLow, "1-2 days"},
		{2, LevelLow, "1-2 days"},
		{3, LevelLow, "3-5 days"},
		{4, LevelMedium, "3-5 days"},
		{5, LevelMedium, "1-2 weeks"},
		{6, LevelMedium, "1-2 weeks"},
		{7, LevelHigh, "2-4 weeks"},
		{8, LevelHigh, "2-4 weeks"},
		{9, LevelHigh, "1-2 months"},
		{10, LevelHigh, "1-2 months"},
	}

	for _, tt := range tests {
		if got := levelFor(tt.score); got != tt.level {
			t.Errorf("levelFor(%d) = %s, want %s", tt.score, got, tt.level)
		}
		if got := effortFor(tt.score); got != tt.effort {
			t.Errorf("effortFor(%d) = %q, want %q", tt.score, got, tt.effort)
		}
	}
}

func TestFactorImpactsSumToRawScore(t *testing.T) {
	c := estimate(t, richDocument())

	sum := 0
	for _, f := range c.Factors {
		sum += f.Impact
	}
	if sum < complexityScale-1 {
		t.Errorf("factor impacts sum = %d, want near the scale for a dense document", sum)
	}
	if c.Score != clamp(roundedScore(sum), 1, 10) {
		t.Errorf("Score = %d, inconsistent with factor sum %d", c.Score, sum)
	}
}

func roundedScore(raw int) int {
	return int(float64(raw)/complexityScale*10 + 0.5)
}
