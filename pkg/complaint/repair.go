package complaint

// placeholderFactualBody seeds the factual allegations section inserted by
// invariant repair. The text stays freely editable like any other body.
const placeholderFactualBody = "1. [State your general factual allegations here.]"

// EnsureFactualAllegations guarantees the document contains a factual
// allegations section, inserting a placeholder one when segmentation did
// not produce it (or persisted data predates the invariant). The insert
// position is deterministic: immediately after the last of venue,
// jurisdiction, or header that is present, but never after the first cause
// of action. Calling it twice produces the same document.
func EnsureFactualAllegations(doc *Document) *Document {
	if doc.FirstIndexOf(KindFactualAllegations) >= 0 {
		return doc
	}

	index := 0
	for _, kind := range []SectionKind{KindVenue, KindJurisdiction, KindHeader} {
		if at := doc.FirstIndexOf(kind); at >= 0 {
			index = at + 1
			break
		}
	}
	if firstCause := doc.FirstIndexOf(KindCauseOfAction); firstCause >= 0 && index > firstCause {
		index = firstCause
	}

	section := NewSection(KindFactualAllegations, "GENERAL FACTUAL ALLEGATIONS", placeholderFactualBody)
	doc.InsertAt(index, section)
	return doc
}
