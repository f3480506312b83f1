// Package render flattens a structured complaint back into flowed plain
// text: the final, renumbered title and body pairs in document order.
// Paginated output (page borders, line numbers, fonts) is the downstream
// document renderer's concern, not this package's.
package render

import (
	"strings"

	"github.com/coolbeans/pleader/pkg/complaint"
)

// Options controls plain-text rendering.
type Options struct {
	// IncludeHeader renders the header section's body at the top. The
	// header has no heading line of its own.
	IncludeHeader bool

	// TitleRule underlines each section title when non-empty, e.g. "=".
	TitleRule string
}

// Text renders the document with default options (header included).
func Text(doc *complaint.Document) string {
	return TextWith(doc, Options{IncludeHeader: true})
}

// TextWith renders the document's sections in order as title and body
// blocks separated by blank lines.
func TextWith(doc *complaint.Document, opts Options) string {
	var blocks []string

	for _, section := range doc.Sections {
		if section.Kind == complaint.KindHeader {
			if opts.IncludeHeader && strings.TrimSpace(section.Body) != "" {
				blocks = append(blocks, strings.TrimSpace(section.Body))
			}
			continue
		}
		blocks = append(blocks, renderSection(section, opts))
	}

	return strings.Join(blocks, "\n\n") + "\n"
}

// renderSection emits one section. The title is skipped when the body
// already begins with the heading line, which is how segmentation stores
// recovered sections; explicitly added sections carry the title only.
func renderSection(section *complaint.Section, opts Options) string {
	body := strings.TrimRight(section.Body, " \t\n")
	title := strings.TrimSpace(section.Title)

	if title == "" || bodyLeadsWithTitle(section) {
		return restoreCauseName(section, body)
	}

	heading := title
	if opts.TitleRule != "" {
		heading += "\n" + strings.Repeat(opts.TitleRule, len(title))
	}
	if body == "" {
		return heading
	}
	return heading + "\n\n" + body
}

// restoreCauseName re-emits the cause name folded into a compound title as
// a parenthetical after the heading line, so rendering and re-parsing
// converge to the same structure instead of silently dropping the name.
func restoreCauseName(section *complaint.Section, body string) string {
	if section.Kind != complaint.KindCauseOfAction {
		return body
	}
	at := strings.Index(section.Title, ": ")
	if at < 0 {
		return body
	}
	name := strings.TrimSpace(section.Title[at+2:])
	if name == "" || strings.Contains(body, name) {
		return body
	}

	lines := strings.Split(body, "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		withName := append([]string{}, lines[:i+1]...)
		withName = append(withName, "("+name+")")
		withName = append(withName, lines[i+1:]...)
		return strings.Join(withName, "\n")
	}
	return body
}

// bodyLeadsWithTitle reports whether the body's first non-empty line is
// the section's heading line (ignoring emphasis markers and the cause
// name folded into a compound title).
func bodyLeadsWithTitle(section *complaint.Section) bool {
	title := strings.ToUpper(strings.TrimSpace(section.Title))
	if at := strings.Index(title, ":"); at >= 0 {
		title = strings.TrimSpace(title[:at])
	}
	if title == "" {
		return false
	}
	for _, line := range section.BodyLines() {
		cleaned := strings.ToUpper(complaint.CleanLine(line))
		if cleaned == "" {
			continue
		}
		return strings.HasPrefix(cleaned, title)
	}
	return false
}
