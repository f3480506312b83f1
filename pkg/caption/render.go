package caption

import (
	"fmt"
	"strings"

	"github.com/coolbeans/pleader/pkg/complaint"
)

// RenderHeader produces the caption block as plain text: the attorney
// block, the court designation, the party listing, the case number, and
// the document title with its cause list. This is the body of the
// document's header section.
func (c *CaseCaption) RenderHeader() string {
	var b strings.Builder

	for i, attorney := range c.Attorneys {
		if i > 0 {
			b.WriteString("\n")
		}
		writeAttorney(&b, attorney)
	}
	if len(c.Attorneys) > 0 {
		b.WriteString(fmt.Sprintf("Attorney%s for Plaintiff%s\n\n",
			plural(len(c.Attorneys)), plural(len(c.Plaintiffs))))
	}

	b.WriteString("SUPERIOR COURT OF CALIFORNIA\n")
	county := strings.TrimSpace(c.County)
	if county == "" {
		county = "[COUNTY]"
	}
	b.WriteString("COUNTY OF " + strings.ToUpper(county) + "\n\n")

	writeParties(&b, c.Plaintiffs, "[PLAINTIFF NAME]")
	b.WriteString("Plaintiff" + plural(len(c.Plaintiffs)) + ",\n\nv.\n\n")
	defendants := append([]string{}, c.Defendants...)
	if c.IncludeDoes {
		defendants = append(defendants, "DOES 1 through 50, inclusive")
	}
	writeParties(&b, defendants, "[DEFENDANT NAME]")
	b.WriteString("Defendant" + plural(len(defendants)) + ".\n\n")

	caseNumber := strings.TrimSpace(c.CaseNumber)
	if caseNumber == "" {
		caseNumber = "[CASE NUMBER]"
	}
	b.WriteString("Case No. " + caseNumber + "\n")
	if c.JudgeName != "" {
		b.WriteString("Assigned to Hon. " + c.JudgeName)
		if c.DepartmentNumber != "" {
			b.WriteString(", Dept. " + c.DepartmentNumber)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	title := strings.TrimSpace(c.DocumentType)
	if title == "" {
		title = "COMPLAINT FOR DAMAGES"
	}
	b.WriteString(strings.ToUpper(title) + "\n")
	for i, cause := range c.CausesOfAction {
		b.WriteString(fmt.Sprintf("%d. %s\n", i+1, cause))
	}
	if c.DemandJuryTrial {
		b.WriteString("\nDEMAND FOR JURY TRIAL\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// ApplyTo writes the rendered caption into the document's header section,
// replacing any header text recovered by segmentation. A header section is
// created at index 0 when the document has none. The document should be
// renumbered afterward like any structural edit; the header itself is
// exempt from numbering either way.
func (c *CaseCaption) ApplyTo(doc *complaint.Document) {
	body := c.RenderHeader()
	if header := doc.Header(); header != nil {
		header.Body = body
		return
	}
	doc.InsertAt(0, complaint.NewSection(complaint.KindHeader, "CAPTION", body))
}

func writeAttorney(b *strings.Builder, attorney Attorney) {
	name := strings.TrimSpace(attorney.Name)
	if name == "" {
		name = "[ATTORNEY NAME]"
	}
	b.WriteString(name)
	if attorney.BarNumber != "" {
		b.WriteString(" (SBN " + attorney.BarNumber + ")")
	}
	b.WriteString("\n")
	if attorney.Firm != "" {
		b.WriteString(strings.ToUpper(attorney.Firm) + "\n")
	}
	if attorney.Address != "" {
		b.WriteString(attorney.Address + "\n")
	}
	if attorney.Phone != "" {
		b.WriteString("Telephone: " + attorney.Phone + "\n")
	}
	if attorney.Fax != "" {
		b.WriteString("Facsimile: " + attorney.Fax + "\n")
	}
	if attorney.Email != "" {
		b.WriteString("Email: " + attorney.Email + "\n")
	}
}

func writeParties(b *strings.Builder, names []string, placeholder string) {
	listed := false
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			continue
		}
		b.WriteString(strings.TrimSpace(name) + ",\n")
		listed = true
	}
	if !listed {
		b.WriteString(placeholder + ",\n")
	}
}

func plural(n int) string {
	if n > 1 {
		return "s"
	}
	return ""
}
