package complaint

import "github.com/google/uuid"

// FromRawText builds a structured, repaired, renumbered document from raw
// pleading text using the default lookahead heuristics. Re-running it on a
// rendering of its own output converges to the same structure.
func FromRawText(raw string) *Document {
	return FromRawTextWith(raw, DefaultHeuristics())
}

// FromRawTextWith is FromRawText with explicit classifier heuristics.
func FromRawTextWith(raw string, heuristics HeuristicsConfig) *Document {
	doc := NewSegmenter(heuristics).Segment(raw)
	EnsureFactualAllegations(doc)
	return Renumber(doc)
}

// FromPersisted wraps a previously saved section list, bypassing
// segmentation, and brings it up to the structural invariants: persisted
// data may predate the factual-allegations guarantee, and its numbering is
// re-derived rather than trusted. Sections missing an ID (hand-written or
// legacy data) are assigned one.
func FromPersisted(sections []*Section) *Document {
	doc := &Document{Sections: sections}
	if doc.Sections == nil {
		doc.Sections = []*Section{}
	}
	for _, section := range doc.Sections {
		if section.ID == "" {
			section.ID = uuid.NewString()
		}
	}
	EnsureFactualAllegations(doc)
	return Renumber(doc)
}
