package complaint

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// HeuristicsConfig tunes the classifier's cause-name lookahead heuristic.
// Cause headings are frequently followed by a bare name line ("Negligence",
// "(Fraud)") that belongs in the heading; deciding whether a line is such a
// name is inherently heuristic, so the knobs stay configurable rather than
// hardened into a grammar.
type HeuristicsConfig struct {
	// CauseKeywords are substrings that mark an unparenthesized line as a
	// likely cause name. Matching is case-insensitive.
	CauseKeywords []string `yaml:"cause_keywords"`

	// MaxCauseNameLength is the maximum length of a line that can be
	// folded into a cause heading.
	MaxCauseNameLength int `yaml:"max_cause_name_length"`
}

// DefaultHeuristics returns the built-in lookahead configuration.
func DefaultHeuristics() HeuristicsConfig {
	return HeuristicsConfig{
		CauseKeywords: []string{
			"negligence", "breach", "fraud", "misrepresentation",
			"liability", "malpractice", "battery", "assault",
			"defamation", "nuisance", "trespass", "conversion",
			"infliction", "emotional distress", "warranty",
			"unjust enrichment", "unfair", "premises", "products",
			"wrongful", "conspiracy", "interference",
		},
		MaxCauseNameLength: 100,
	}
}

// LoadHeuristics reads a heuristics configuration from a YAML file.
// Missing fields fall back to the defaults.
func LoadHeuristics(path string) (HeuristicsConfig, error) {
	config := DefaultHeuristics()

	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("reading heuristics config: %w", err)
	}

	var loaded HeuristicsConfig
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return config, fmt.Errorf("parsing heuristics config %s: %w", path, err)
	}

	if len(loaded.CauseKeywords) > 0 {
		config.CauseKeywords = loaded.CauseKeywords
	}
	if loaded.MaxCauseNameLength > 0 {
		config.MaxCauseNameLength = loaded.MaxCauseNameLength
	}
	return config, nil
}

// matchesKeyword reports whether the line contains any configured cause
// keyword.
func (c HeuristicsConfig) matchesKeyword(line string) bool {
	lowered := strings.ToLower(line)
	for _, keyword := range c.CauseKeywords {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	return false
}
