// Package complaint provides structure recovery and renumbering for civil
// complaint documents. It converts an unstructured block of pleading text
// into an ordered list of typed, independently editable sections, and
// re-derives paragraph numbers and cause-of-action ordinals after every
// structural edit.
package complaint

import (
	"strings"

	"github.com/google/uuid"
)

// SectionKind classifies the structural role of a complaint section.
type SectionKind string

const (
	// KindHeader is the caption block preceding the body: attorney
	// information, court name, party names, and case number. At most one
	// header exists and it is always first.
	KindHeader SectionKind = "header"

	// KindJurisdiction is the jurisdictional allegations section.
	KindJurisdiction SectionKind = "jurisdiction"

	// KindVenue is the venue allegations section.
	KindVenue SectionKind = "venue"

	// KindFactualAllegations is the general factual allegations section
	// (also surfaced as "Parties", "Statement of Facts", or "Background").
	KindFactualAllegations SectionKind = "factual"

	// KindCauseOfAction is a single cause of action, numbered with an
	// ordinal word (FIRST, SECOND, ...).
	KindCauseOfAction SectionKind = "cause"

	// KindPrayer is the prayer for relief. Its numbered paragraphs run on
	// an independent counter.
	KindPrayer SectionKind = "prayer"

	// KindJuryDemand is the jury trial demand section.
	KindJuryDemand SectionKind = "jury"

	// KindSignature is the dated signature block.
	KindSignature SectionKind = "signature"

	// KindGeneric holds text that matched no structural heading.
	KindGeneric SectionKind = "generic"
)

// Section is one titled, independently editable unit of a complaint.
type Section struct {
	// ID is an opaque stable identifier assigned at creation. It is never
	// recomputed from content, so editors can track a section across
	// reorders.
	ID string `json:"id"`

	// Kind is the structural role of the section.
	Kind SectionKind `json:"kind"`

	// Title is the display heading. For causes of action it has the
	// compound form "<ORDINAL> CAUSE OF ACTION: <cause name>".
	Title string `json:"title"`

	// Body is the section text, one or more lines. Lines of the form
	// "<n>. <text>" are subject to renumbering.
	Body string `json:"body"`

	// Expanded is a display-only flag preserved for editors; it has no
	// structural meaning.
	Expanded bool `json:"expanded"`
}

// NewSection creates a section with a fresh identifier.
func NewSection(kind SectionKind, title, body string) *Section {
	return &Section{
		ID:       uuid.NewString(),
		Kind:     kind,
		Title:    title,
		Body:     body,
		Expanded: true,
	}
}

// Clone returns a deep copy of the section, keeping the same ID.
func (s *Section) Clone() *Section {
	copied := *s
	return &copied
}

// BodyLines splits the body into lines.
func (s *Section) BodyLines() []string {
	if s.Body == "" {
		return nil
	}
	return strings.Split(s.Body, "\n")
}

// Document is an ordered sequence of sections. Order is semantically
// meaningful: it is the order paragraphs and causes are numbered and
// ultimately rendered.
type Document struct {
	Sections []*Section `json:"sections"`
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{Sections: []*Section{}}
}

// Len returns the number of sections.
func (d *Document) Len() int {
	return len(d.Sections)
}

// Append adds a section at the end of the document.
func (d *Document) Append(section *Section) {
	d.Sections = append(d.Sections, section)
}

// InsertAt inserts a section at the given index, clamping the index to the
// valid range.
func (d *Document) InsertAt(index int, section *Section) {
	if index < 0 {
		index = 0
	}
	if index > len(d.Sections) {
		index = len(d.Sections)
	}
	d.Sections = append(d.Sections, nil)
	copy(d.Sections[index+1:], d.Sections[index:])
	d.Sections[index] = section
}

// Remove deletes the section with the given ID and reports whether it was
// present.
func (d *Document) Remove(sectionID string) bool {
	for i, section := range d.Sections {
		if section.ID == sectionID {
			d.Sections = append(d.Sections[:i], d.Sections[i+1:]...)
			return true
		}
	}
	return false
}

// Move relocates the section at index from to index to, shifting the
// sections in between. Out-of-range indices are ignored.
func (d *Document) Move(from, to int) {
	if from < 0 || from >= len(d.Sections) || to < 0 || to >= len(d.Sections) || from == to {
		return
	}
	section := d.Sections[from]
	d.Sections = append(d.Sections[:from], d.Sections[from+1:]...)
	d.Sections = append(d.Sections, nil)
	copy(d.Sections[to+1:], d.Sections[to:])
	d.Sections[to] = section
}

// FirstIndexOf returns the index of the first section of the given kind,
// or -1 if none exists.
func (d *Document) FirstIndexOf(kind SectionKind) int {
	for i, section := range d.Sections {
		if section.Kind == kind {
			return i
		}
	}
	return -1
}

// Find returns the section with the given ID, or nil.
func (d *Document) Find(sectionID string) *Section {
	for _, section := range d.Sections {
		if section.ID == sectionID {
			return section
		}
	}
	return nil
}

// Header returns the header section, or nil if the document has none.
func (d *Document) Header() *Section {
	if len(d.Sections) > 0 && d.Sections[0].Kind == KindHeader {
		return d.Sections[0]
	}
	return nil
}

// Causes returns the cause-of-action sections in document order.
func (d *Document) Causes() []*Section {
	var causes []*Section
	for _, section := range d.Sections {
		if section.Kind == KindCauseOfAction {
			causes = append(causes, section)
		}
	}
	return causes
}

// Clone returns a deep copy of the document. Section IDs are preserved.
func (d *Document) Clone() *Document {
	cloned := &Document{Sections: make([]*Section, len(d.Sections))}
	for i, section := range d.Sections {
		cloned.Sections[i] = section.Clone()
	}
	return cloned
}

// DocumentStatistics holds aggregate counts for a structured complaint.
type DocumentStatistics struct {
	Sections         int `json:"sections"`
	Causes           int `json:"causes"`
	BodyParagraphs   int `json:"body_paragraphs"`
	PrayerParagraphs int `json:"prayer_paragraphs"`
}

// Statistics computes aggregate counts from the document's sections.
func (d *Document) Statistics() DocumentStatistics {
	stats := DocumentStatistics{Sections: len(d.Sections)}
	insidePrayer := false
	for _, section := range d.Sections {
		if section.Kind == KindCauseOfAction {
			stats.Causes++
		}
		if section.Kind == KindHeader {
			continue
		}
		if section.Kind == KindPrayer {
			insidePrayer = true
		}
		for _, line := range section.BodyLines() {
			if !paragraphNumberPattern.MatchString(line) {
				continue
			}
			if insidePrayer {
				stats.PrayerParagraphs++
			} else {
				stats.BodyParagraphs++
			}
		}
	}
	return stats
}
