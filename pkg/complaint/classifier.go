package complaint

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// SectionOpener is the classifier's verdict that a line opens a new
// section: which kind, and for heading forms, a normalized title.
type SectionOpener struct {
	Kind  SectionKind
	Title string
}

// Classifier decides whether a line of pleading text opens a new section.
// Rules are evaluated in a fixed priority order; later rules are more
// general and would shadow the earlier, more specific ones if reordered.
// The classifier is safe for concurrent use since it only reads from its
// compiled patterns.
type Classifier struct {
	heuristics HeuristicsConfig

	jurisdictionHeading  *regexp.Regexp
	jurisdictionSentence *regexp.Regexp
	venueHeading         *regexp.Regexp
	venueSentence        *regexp.Regexp
	factualHeading       *regexp.Regexp
	causeOrdinalWord     *regexp.Regexp
	causeOrdinalNumeral  *regexp.Regexp
	causeNumbered        *regexp.Regexp
	causeRoman           *regexp.Regexp
	countHeading         *regexp.Regexp
	prayerHeading        *regexp.Regexp
	whereforeSentence    *regexp.Regexp
	juryHeading          *regexp.Regexp
	datedLine            *regexp.Regexp
	submittedLine        *regexp.Regexp

	parentheticalLine *regexp.Regexp
	numberedLine      *regexp.Regexp
	partyPhrase       *regexp.Regexp
}

// enumerator optionally prefixes headings: "III. PARTIES", "2. VENUE".
const enumerator = `(?:[IVXLCDM]+\.?\s+|\d+\.?\s+)?`

// NewClassifier creates a classifier with all patterns compiled, using the
// given lookahead heuristics.
func NewClassifier(heuristics HeuristicsConfig) *Classifier {
	ordinalAlternation := strings.Join(ordinalWords, "|")
	return &Classifier{
		heuristics: heuristics,

		jurisdictionHeading:  regexp.MustCompile(`(?i)^` + enumerator + `JURISDICTION(?:\s+AND\s+VENUE)?\s*:?\s*$`),
		jurisdictionSentence: regexp.MustCompile(`(?i)^This\s+Court\s+has\s+jurisdiction`),
		venueHeading:         regexp.MustCompile(`(?i)^` + enumerator + `VENUE\s*:?\s*$`),
		venueSentence:        regexp.MustCompile(`(?i)^Venue\s+is\s+proper`),
		factualHeading:       regexp.MustCompile(`(?i)^` + enumerator + `(?:THE\s+)?(PARTIES|(?:GENERAL\s+)?FACTUAL\s+ALLEGATIONS|COMMON\s+ALLEGATIONS|ALLEGATIONS|STATEMENT\s+OF\s+FACTS|FACTS|BACKGROUND)\s*:?\s*$`),
		causeOrdinalWord:     regexp.MustCompile(`(?i)^(?:\d+\.\s+)?(` + ordinalAlternation + `)\s+CAUSE\s+OF\s+ACTION\b\s*[-:]?\s*(.*)$`),
		causeOrdinalNumeral:  regexp.MustCompile(`(?i)^(?:\d+\.\s+)?(\d+)(?:ST|ND|RD|TH)\s+CAUSE\s+OF\s+ACTION\b\s*[-:]?\s*(.*)$`),
		causeNumbered:        regexp.MustCompile(`(?i)^CAUSE\s+OF\s+ACTION\s+NO\.?\s*(\d+)\b\s*[-:]?\s*(.*)$`),
		causeRoman:           regexp.MustCompile(`(?i)^([IVXLCDM]+)\.?\s+CAUSE\s+OF\s+ACTION\b\s*[-:]?\s*(.*)$`),
		countHeading:         regexp.MustCompile(`(?i)^COUNT\s+([IVXLCDM]+|\d+|[A-Z]+)\s*[-:]?\s*(.*)$`),
		prayerHeading:        regexp.MustCompile(`(?i)^` + enumerator + `PRAYER(?:\s+FOR\s+RELIEF)?\s*:?\s*$`),
		whereforeSentence:    regexp.MustCompile(`(?i)^WHEREFORE\b`),
		juryHeading:          regexp.MustCompile(`(?i)^` + enumerator + `(?:JURY\s+DEMAND|DEMAND\s+FOR\s+JURY(?:\s+TRIAL)?)\s*:?\s*$`),
		datedLine:            regexp.MustCompile(`(?i)^Dated\s*:`),
		submittedLine:        regexp.MustCompile(`(?i)^Respectfully\s+submitted`),

		parentheticalLine: regexp.MustCompile(`^\((.+)\)$`),
		numberedLine:      regexp.MustCompile(`^\d+\.`),
		partyPhrase:       regexp.MustCompile(`(?i)^(?:plaintiff|defendant|on\s+or\s+about|at\s+all)`),
	}
}

// Classify decides whether the given line opens a new section. The line
// must already be cleaned of emphasis markers (see CleanLine); raw lines
// are what gets stored in the body. Returns nil when the line belongs to
// whatever section is currently open.
func (c *Classifier) Classify(line string) *SectionOpener {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return nil
	}

	// Rule order matters: specific heading forms first, the generic COUNT
	// and sentence forms last within their kind.
	if c.jurisdictionHeading.MatchString(trimmed) || c.jurisdictionSentence.MatchString(trimmed) {
		return &SectionOpener{Kind: KindJurisdiction, Title: "JURISDICTION"}
	}
	if c.venueHeading.MatchString(trimmed) || c.venueSentence.MatchString(trimmed) {
		return &SectionOpener{Kind: KindVenue, Title: "VENUE"}
	}
	if m := c.factualHeading.FindStringSubmatch(trimmed); m != nil {
		return &SectionOpener{Kind: KindFactualAllegations, Title: strings.ToUpper(normalizeSpaces(m[1]))}
	}
	if opener := c.classifyCause(trimmed); opener != nil {
		return opener
	}
	if c.prayerHeading.MatchString(trimmed) || c.whereforeSentence.MatchString(trimmed) {
		return &SectionOpener{Kind: KindPrayer, Title: "PRAYER FOR RELIEF"}
	}
	if c.juryHeading.MatchString(trimmed) {
		return &SectionOpener{Kind: KindJuryDemand, Title: "JURY DEMAND"}
	}
	if c.datedLine.MatchString(trimmed) || c.submittedLine.MatchString(trimmed) {
		return &SectionOpener{Kind: KindSignature, Title: "SIGNATURE"}
	}
	return nil
}

// classifyCause matches the cause-of-action heading surface forms and
// normalizes them to "<ORDINAL> CAUSE OF ACTION[: <name>]".
func (c *Classifier) classifyCause(line string) *SectionOpener {
	if m := c.causeOrdinalWord.FindStringSubmatch(line); m != nil {
		return causeOpener(strings.ToUpper(m[1]), m[2])
	}
	if m := c.causeOrdinalNumeral.FindStringSubmatch(line); m != nil {
		n, _ := strconv.Atoi(m[1])
		return causeOpener(ordinalWord(n), m[2])
	}
	if m := c.causeNumbered.FindStringSubmatch(line); m != nil {
		n, _ := strconv.Atoi(m[1])
		return causeOpener(ordinalWord(n), m[2])
	}
	if m := c.causeRoman.FindStringSubmatch(line); m != nil {
		if n := romanToInt(m[1]); n > 0 {
			return causeOpener(ordinalWord(n), m[2])
		}
	}
	if m := c.countHeading.FindStringSubmatch(line); m != nil {
		title := "COUNT " + strings.ToUpper(m[1])
		if name := strings.TrimSpace(m[2]); name != "" {
			title += ": " + name
		}
		return &SectionOpener{Kind: KindCauseOfAction, Title: title}
	}
	return nil
}

// causeOpener builds a cause opener title from an ordinal word and any
// trailing cause name already present on the heading line.
func causeOpener(ordinal, remainder string) *SectionOpener {
	title := ordinal + " CAUSE OF ACTION"
	if name := strings.Trim(strings.TrimSpace(remainder), "()"); name != "" {
		title += ": " + name
	}
	return &SectionOpener{Kind: KindCauseOfAction, Title: title}
}

// FoldableCauseName reports whether the line following a cause heading is a
// bare cause name that belongs in the heading, and returns the name. Two
// surface forms qualify: a short parenthetical "(Fraud)", and a short
// unnumbered phrase that mentions a configured cause keyword and does not
// read like a party allegation. The check is deliberately heuristic; the
// input is free-form prose with no fixed schema.
func (c *Classifier) FoldableCauseName(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || len(trimmed) >= c.heuristics.MaxCauseNameLength {
		return "", false
	}

	if m := c.parentheticalLine.FindStringSubmatch(trimmed); m != nil {
		return strings.TrimSpace(m[1]), true
	}

	if c.numberedLine.MatchString(trimmed) {
		return "", false
	}
	if c.partyPhrase.MatchString(trimmed) {
		return "", false
	}
	if !c.heuristics.matchesKeyword(trimmed) {
		return "", false
	}
	return trimmed, true
}

// normalizeSpaces collapses runs of whitespace to single spaces.
func normalizeSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// romanValues maps roman numeral characters to their values.
var romanValues = map[byte]int{'I': 1, 'V': 5, 'X': 10, 'L': 50, 'C': 100, 'D': 500, 'M': 1000}

// romanToInt converts an uppercase roman numeral to an integer, returning
// 0 for malformed input.
func romanToInt(numeral string) int {
	numeral = strings.ToUpper(numeral)
	total := 0
	for i := 0; i < len(numeral); i++ {
		value, ok := romanValues[numeral[i]]
		if !ok {
			return 0
		}
		if i+1 < len(numeral) && romanValues[numeral[i+1]] > value {
			total -= value
		} else {
			total += value
		}
	}
	return total
}

// ordinalWord returns the ordinal word for a 1-based position, falling
// back to "<n>TH" beyond the fixed table.
func ordinalWord(n int) string {
	if n >= 1 && n <= len(ordinalWords) {
		return ordinalWords[n-1]
	}
	return fmt.Sprintf("%dTH", n)
}
