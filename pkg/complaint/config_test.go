package complaint

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "heuristics.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadHeuristics(t *testing.T) {
	path := writeConfig(t, "cause_keywords:\n  - replevin\n  - detinue\nmax_cause_name_length: 60\n")

	config, err := LoadHeuristics(path)
	if err != nil {
		t.Fatalf("LoadHeuristics: %v", err)
	}
	if len(config.CauseKeywords) != 2 || config.CauseKeywords[0] != "replevin" {
		t.Errorf("CauseKeywords = %v", config.CauseKeywords)
	}
	if config.MaxCauseNameLength != 60 {
		t.Errorf("MaxCauseNameLength = %d, want 60", config.MaxCauseNameLength)
	}
}

func TestLoadHeuristicsPartial(t *testing.T) {
	path := writeConfig(t, "max_cause_name_length: 42\n")

	config, err := LoadHeuristics(path)
	if err != nil {
		t.Fatalf("LoadHeuristics: %v", err)
	}
	if config.MaxCauseNameLength != 42 {
		t.Errorf("MaxCauseNameLength = %d, want 42", config.MaxCauseNameLength)
	}
	if len(config.CauseKeywords) == 0 {
		t.Error("missing keywords should fall back to defaults")
	}
}

func TestLoadHeuristicsMissingFile(t *testing.T) {
	config, err := LoadHeuristics(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
	if config.MaxCauseNameLength != DefaultHeuristics().MaxCauseNameLength {
		t.Error("error path should still return the defaults")
	}
}

func TestLoadHeuristicsMalformed(t *testing.T) {
	path := writeConfig(t, "cause_keywords: [unbalanced\n")
	if _, err := LoadHeuristics(path); err == nil {
		t.Fatal("expected an error for malformed YAML")
	}
}

func TestMatchesKeyword(t *testing.T) {
	config := DefaultHeuristics()
	if !config.matchesKeyword("Negligent Infliction of Emotional Distress") {
		t.Error("expected a keyword match")
	}
	if config.matchesKeyword("The sun was shining.") {
		t.Error("unexpected keyword match")
	}
}
