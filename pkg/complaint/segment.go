package complaint

import "strings"

// Segmenter splits raw complaint text into an ordered list of typed
// sections using the lexical classifier. Classification is best-effort:
// unmatched text is never dropped, it is attached to whichever section is
// currently open, so the worst case is one oversized generic section.
type Segmenter struct {
	classifier *Classifier
}

// NewSegmenter creates a segmenter with the given lookahead heuristics.
func NewSegmenter(heuristics HeuristicsConfig) *Segmenter {
	return &Segmenter{classifier: NewClassifier(heuristics)}
}

// Segment converts raw pleading text into a structured document. A single
// code-fence wrapper is stripped first; emphasis markers are stripped for
// classification only, and the raw lines are what gets stored in section
// bodies. The result satisfies the header invariant (at most one header,
// at index 0) but is not yet repaired or renumbered; see FromRawText.
func (s *Segmenter) Segment(raw string) *Document {
	doc := NewDocument()

	text := StripFence(raw)
	if strings.TrimSpace(text) == "" {
		return doc
	}
	lines := strings.Split(text, "\n")

	// Everything before the first structural heading is the caption block.
	headerEnd := s.findFirstOpener(lines)
	if headerEnd < 0 {
		// No heading anywhere: keep the text intact in one generic section.
		doc.Append(NewSection(KindGeneric, "", strings.TrimSpace(text)))
		return doc
	}
	if header := strings.TrimSpace(strings.Join(lines[:headerEnd], "\n")); header != "" {
		doc.Append(NewSection(KindHeader, "CAPTION", header))
	}

	var (
		current *Section
		emitted bool     // current is already in doc (resumed accumulator)
		factual *Section // running factual-allegations accumulator
	)

	flush := func() {
		if current != nil && !emitted {
			current.Body = strings.TrimRight(current.Body, " \t\n")
			doc.Append(current)
		}
		current = nil
		emitted = false
	}

	appendLine := func(line string) {
		if current.Body == "" {
			current.Body = line
		} else {
			current.Body += "\n" + line
		}
	}

	for i := headerEnd; i < len(lines); i++ {
		rawLine := lines[i]
		opener := s.classifier.Classify(CleanLine(rawLine))

		if opener == nil {
			if current != nil {
				appendLine(rawLine)
			}
			continue
		}

		// Prayer text is frequently interrupted by sub-headings, and a
		// signature block pairs a Dated line with a Respectfully submitted
		// line; appending keeps each a single section instead of
		// fragmenting it.
		if current != nil && opener.Kind == current.Kind &&
			(opener.Kind == KindPrayer || opener.Kind == KindSignature) {
			appendLine(rawLine)
			continue
		}

		// A repeated factual heading resumes the earlier accumulator
		// rather than opening a second factual section.
		if opener.Kind == KindFactualAllegations && factual != nil {
			flush()
			current = factual
			emitted = true
			appendLine(rawLine)
			continue
		}

		flush()
		current = NewSection(opener.Kind, opener.Title, rawLine)
		if opener.Kind == KindFactualAllegations {
			factual = current
		}

		// Bounded lookahead: a cause heading is often followed by a bare
		// cause name line that belongs in the heading. The folded line is
		// consumed; it does not become its own body line.
		if opener.Kind == KindCauseOfAction && i+1 < len(lines) {
			next := CleanLine(lines[i+1])
			if s.classifier.Classify(next) == nil {
				if name, ok := s.classifier.FoldableCauseName(next); ok && !strings.Contains(current.Title, ": ") {
					current.Title += ": " + name
					i++
				}
			}
		}
	}
	flush()

	return doc
}

// findFirstOpener returns the index of the first line the classifier
// recognizes as a section opener, or -1.
func (s *Segmenter) findFirstOpener(lines []string) int {
	for i, line := range lines {
		if s.classifier.Classify(CleanLine(line)) != nil {
			return i
		}
	}
	return -1
}
