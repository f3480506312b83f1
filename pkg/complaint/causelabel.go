package complaint

import (
	"regexp"
	"strings"
)

var (
	// labelAfterColonPattern captures the cause name after "CAUSE OF
	// ACTION:" in a compound title.
	labelAfterColonPattern = regexp.MustCompile(`(?i)CAUSE\s+OF\s+ACTION\s*:\s*(.+)$`)

	// labelParentheticalPattern captures a parenthesized cause name after
	// "CAUSE OF ACTION" in a title.
	labelParentheticalPattern = regexp.MustCompile(`(?i)CAUSE\s+OF\s+ACTION\s*\(([^)]+)\)`)

	// bodyParentheticalPattern matches a body line that begins with a
	// parenthesized group.
	bodyParentheticalPattern = regexp.MustCompile(`^\s*\(([^)]+)\)`)

	// labelStripPattern removes the leading ordinal and the literal
	// "CAUSE OF ACTION" phrase from a title.
	labelStripPattern = regexp.MustCompile(`(?i)^\s*(?:` + strings.Join(ordinalWords, "|") + `|\d+(?:ST|ND|RD|TH))?\s*CAUSE\s+OF\s+ACTION\s*[-:.]?\s*`)
)

// CauseLabel derives a short human-readable label for a cause-of-action
// section, for use in the case caption's cause list. Extraction rules are
// tried in priority order and the result is always non-empty: a compound
// "CAUSE OF ACTION: <name>" title wins, then a parenthetical in the title,
// then a parenthetical opening the body, then the title with its ordinal
// and "CAUSE OF ACTION" phrase stripped, then the whole title.
func CauseLabel(section *Section) string {
	title := strings.TrimSpace(section.Title)

	if m := labelAfterColonPattern.FindStringSubmatch(title); m != nil {
		return strings.ToUpper(strings.TrimSpace(m[1]))
	}
	if m := labelParentheticalPattern.FindStringSubmatch(title); m != nil {
		return strings.ToUpper(strings.TrimSpace(m[1]))
	}
	for _, line := range section.BodyLines() {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if m := bodyParentheticalPattern.FindStringSubmatch(line); m != nil {
			return strings.TrimSpace(m[1])
		}
		break
	}
	if stripped := strings.TrimSpace(labelStripPattern.ReplaceAllString(title, "")); stripped != "" {
		return stripped
	}
	if title == "" {
		return "CAUSE OF ACTION"
	}
	return title
}

// CauseList applies CauseLabel to every cause-of-action section in
// document order, producing the caption's cause list.
func CauseList(doc *Document) []string {
	var labels []string
	for _, section := range doc.Sections {
		if section.Kind == KindCauseOfAction {
			labels = append(labels, CauseLabel(section))
		}
	}
	return labels
}
