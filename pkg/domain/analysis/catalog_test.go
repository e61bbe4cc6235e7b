package analysis

import "testing"

func TestCatalogShape(t *testing.T) {
	checks := Catalog()
	if len(checks) != 12 {
		t.Fatalf("catalog size = %d, want 12", len(checks))
	}

	seen := make(map[string]bool)
	for _, c := range checks {
		if c.Key == "" || c.Label == "" || c.Suggestion == "" {
			t.Errorf("check %q has empty fields: %+v", c.Key, c)
		}
		if c.Weight < 1 || c.Weight > 3 {
			t.Errorf("check %q weight = %d, want 1-3", c.Key, c.Weight)
		}
		if c.Pattern == nil {
			t.Errorf("check %q has no pattern", c.Key)
		}
		if seen[c.Key] {
			t.Errorf("duplicate check key %q", c.Key)
		}
		seen[c.Key] = true
	}
}

func TestMissingPriority(t *testing.T) {
	tests := []struct {
		weight int
		want   Priority
	}{
		{1, PriorityLow},
		{2, PriorityHigh},
		{3, PriorityHigh},
	}

	for _, tt := range tests {
		c := QualityCheck{Weight: tt.weight}
		if got := c.MissingPriority(); got != tt.want {
			t.Errorf("weight %d priority = %s, want %s", tt.weight, got, tt.want)
		}
	}
}

func TestCheckMatching(t *testing.T) {
	tests := []struct {
		key   string
		text  string
		match bool
	}{
		{"hasTitle", "# Search Revamp\n\nbody", true},
		{"hasTitle", "Search Revamp without heading", false},
		{"hasTitle", "body\n# Late Title", true},
		{"hasOverview", "## Overview\n\ntext", true},
		{"hasUserStories", "As a maintainer, I want fewer pages.", true},
		{"hasUserStories", "users exist", false},
		{"hasAcceptanceCriteria", "Definition of Done: tests pass", true},
		{"hasEdgeCases", "Error handling is described here.", true},
		{"hasScope", "This is out of scope.", true},
		{"hasPriority", "This work is a must-have.", true},
	}

	byKey := make(map[string]QualityCheck)
	for _, c := range Catalog() {
		byKey[c.Key] = c
	}

	for _, tt := range tests {
		t.Run(tt.key+"/"+tt.text, func(t *testing.T) {
			c, ok := byKey[tt.key]
			if !ok {
				t.Fatalf("no catalog check %q", tt.key)
			}
			if got := c.Matches(tt.text); got != tt.match {
				t.Errorf("Matches(%q) = %v, want %v", tt.text, got, tt.match)
			}
		})
	}
}

func TestTotalWeight(t *testing.T) {
	total := TotalWeight()
	if total <= 0 {
		t.Fatalf("TotalWeight() = %d, want positive", total)
	}

	sum := 0
	for _, c := range Catalog() {
		sum += c.Weight
	}
	if total != sum {
		t.Errorf("TotalWeight() = %d, want %d", total, sum)
	}
}
