package complaint

import (
	"regexp"
	"strconv"
	"strings"
)

// ordinalWords is the fixed ordinal table for cause-of-action headings.
// Positions beyond the table render as "<n>TH".
var ordinalWords = []string{
	"FIRST", "SECOND", "THIRD", "FOURTH", "FIFTH",
	"SIXTH", "SEVENTH", "EIGHTH", "NINTH", "TENTH",
	"ELEVENTH", "TWELFTH", "THIRTEENTH", "FOURTEENTH", "FIFTEENTH",
}

var (
	// paragraphNumberPattern matches a numbered paragraph line, capturing
	// leading whitespace, the number, the separator, and the text so that
	// everything but the number survives renumbering verbatim.
	paragraphNumberPattern = regexp.MustCompile(`^(\s*)(\d+)(\.\s+)(.*)$`)

	// leadingOrdinalPattern matches an ordinal word (or "<n>TH" fallback
	// form) at the start of a title or heading line, case-insensitively,
	// so a heading can move from "THIRD" to "FIRST" after a reorder.
	leadingOrdinalPattern = regexp.MustCompile(`(?i)^(\s*)(` + strings.Join(ordinalWords, "|") + `|\d+(?:ST|ND|RD|TH))\b`)
)

// Ordinal returns the ordinal word for a 1-based cause position.
func Ordinal(n int) string {
	return ordinalWord(n)
}

// counterState threads the numbering counters through the renumbering
// pass. bodyCounter numbers paragraphs outside the prayer; prayerCounter
// takes over permanently once the first prayer section is reached, so
// relief paragraphs run 1..M independently of the body's 1..N.
type counterState struct {
	bodyCounter   int
	prayerCounter int
	insidePrayer  bool
}

// Renumber rewrites paragraph numbers and cause-of-action ordinals across
// the whole document in a single left-to-right pass. It never relies on
// prior numbering state, so re-running it on its own output is a no-op.
// It must be applied to the entire document after every structural edit;
// a single reorder can change every downstream number and ordinal.
//
// The header section is left untouched. All numbered lines outside the
// prayer become 1..N in document order; numbered lines from the first
// prayer section onward become 1..M on an independent counter. Cause
// ordinals become FIRST, SECOND, ... by position among causes only.
//
// Renumber mutates the document in place and returns it for chaining.
func Renumber(doc *Document) *Document {
	state := counterState{bodyCounter: 1, prayerCounter: 1}
	causeIndex := 0

	for _, section := range doc.Sections {
		if section.Kind == KindHeader {
			continue
		}

		if section.Kind == KindCauseOfAction {
			ordinal := Ordinal(causeIndex + 1)
			causeIndex++
			section.Title = replaceLeadingOrdinal(section.Title, ordinal)
			section.Body = replaceBodyOrdinal(section.Body, ordinal)
		}

		if section.Kind == KindPrayer && !state.insidePrayer {
			state.insidePrayer = true
			state.prayerCounter = 1
		}

		section.Body = renumberBody(section.Body, &state)
	}
	return doc
}

// renumberBody rewrites every numbered line in a body using the active
// counter, preserving leading whitespace, the separator, and the text.
func renumberBody(body string, state *counterState) string {
	if body == "" {
		return body
	}
	lines := strings.Split(body, "\n")
	for i, line := range lines {
		m := paragraphNumberPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		var n int
		if state.insidePrayer {
			n = state.prayerCounter
			state.prayerCounter++
		} else {
			n = state.bodyCounter
			state.bodyCounter++
		}
		lines[i] = m[1] + strconv.Itoa(n) + m[3] + m[4]
	}
	return strings.Join(lines, "\n")
}

// replaceLeadingOrdinal swaps the ordinal word at the start of a title for
// the given one, leaving titles without a leading ordinal unchanged.
func replaceLeadingOrdinal(title, ordinal string) string {
	m := leadingOrdinalPattern.FindStringSubmatch(title)
	if m == nil {
		return title
	}
	return m[1] + ordinal + title[len(m[0]):]
}

// replaceBodyOrdinal rewrites the ordinal word on the first body line that
// carries one, which is the embedded heading line of a cause section.
func replaceBodyOrdinal(body, ordinal string) string {
	if body == "" {
		return body
	}
	lines := strings.Split(body, "\n")
	for i, line := range lines {
		if leadingOrdinalPattern.MatchString(line) {
			lines[i] = replaceLeadingOrdinal(line, ordinal)
			return strings.Join(lines, "\n")
		}
	}
	return body
}
