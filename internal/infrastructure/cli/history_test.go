package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/felixgeelhaar/prdlens/pkg/domain"
)

func TestHistoryCmd(t *testing.T) {
	_, cleanup := withTempDir(t)
	defer cleanup()
	initWorkspace(t)

	if _, err := runCommand(t, "analyze", "--text", sampleDocument, "--output", "text"); err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if _, err := runCommand(t, "analyze", "--text", sampleDocument+"\n\nMore detail.", "--output", "text"); err != nil {
		t.Fatalf("analyze: %v", err)
	}

	out, err := runCommand(t, "history", "--output", "json", "--limit", "0")
	if err != nil {
		t.Fatalf("history: %v", err)
	}

	var entries []domain.HistoryEntry
	if err := json.Unmarshal([]byte(out), &entries); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
}

func TestHistoryCmd_Limit(t *testing.T) {
	_, cleanup := withTempDir(t)
	defer cleanup()
	initWorkspace(t)

	for i := 0; i < 3; i++ {
		if _, err := runCommand(t, "analyze", "--text", sampleDocument, "--output", "text"); err != nil {
			t.Fatalf("analyze: %v", err)
		}
	}

	out, err := runCommand(t, "history", "--output", "json", "--limit", "2")
	if err != nil {
		t.Fatalf("history: %v", err)
	}

	var entries []domain.HistoryEntry
	if err := json.Unmarshal([]byte(out), &entries); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
}

func TestHistoryCmd_Empty(t *testing.T) {
	_, cleanup := withTempDir(t)
	defer cleanup()
	initWorkspace(t)

	out, err := runCommand(t, "history", "--output", "text", "--limit", "0")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if !strings.Contains(out, "No analyses recorded yet") {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestHistoryCmd_Clear(t *testing.T) {
	_, cleanup := withTempDir(t)
	defer cleanup()
	initWorkspace(t)

	if _, err := runCommand(t, "analyze", "--text", sampleDocument, "--output", "text"); err != nil {
		t.Fatalf("analyze: %v", err)
	}

	out, err := runCommand(t, "history", "clear")
	if err != nil {
		t.Fatalf("history clear: %v", err)
	}
	if !strings.Contains(out, "History cleared") {
		t.Errorf("unexpected output: %q", out)
	}

	out, err = runCommand(t, "history", "--output", "text", "--limit", "0")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if !strings.Contains(out, "No analyses recorded yet") {
		t.Errorf("history should be empty after clear: %q", out)
	}
}
