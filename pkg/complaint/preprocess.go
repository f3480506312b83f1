package complaint

import (
	"regexp"
	"strings"
)

var (
	// openingFencePattern matches a single leading markdown code fence,
	// optionally tagged ("```plaintext"). Generators frequently wrap the
	// whole pleading in one.
	openingFencePattern = regexp.MustCompile("(?i)^(?:```[a-z]*|''')\\s*\n?")

	// closingFencePattern matches a single trailing code fence.
	closingFencePattern = regexp.MustCompile("\n?(?:```|''')\\s*$")

	// emphasisPattern matches markdown emphasis and heading markers that
	// carry no document text.
	emphasisPattern = regexp.MustCompile(`[*_]{1,3}|^#{1,6}\s*`)
)

// StripFence removes a single leading and trailing code-fence wrapper from
// generated text, when present. The fence is transport wrapping, never
// document content, so stripping it is safe for stored bodies. Calling
// StripFence on already-stripped text is a no-op.
func StripFence(text string) string {
	stripped := strings.TrimSpace(text)
	stripped = openingFencePattern.ReplaceAllString(stripped, "")
	stripped = closingFencePattern.ReplaceAllString(stripped, "")
	return strings.TrimSpace(stripped)
}

// CleanLine strips markdown emphasis markers from a line for
// classification. The raw line is what gets stored in section bodies;
// cleaning only ever feeds the classifier.
func CleanLine(line string) string {
	cleaned := emphasisPattern.ReplaceAllString(line, "")
	return strings.TrimSpace(cleaned)
}
