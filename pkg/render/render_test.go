package render

import (
	"strings"
	"testing"

	"github.com/coolbeans/pleader/pkg/complaint"
)

func TestTextRoundTrip(t *testing.T) {
	raw := strings.Join([]string{
		"JOHN DOE, Plaintiff,",
		"v.",
		"ACME CORP, Defendant.",
		"JURISDICTION",
		"1. This Court has jurisdiction.",
		"GENERAL FACTUAL ALLEGATIONS",
		"2. On June 1, 2024, the collision occurred.",
		"FIRST CAUSE OF ACTION",
		"(Negligence)",
		"3. Defendant owed a duty of care.",
		"PRAYER FOR RELIEF",
		"1. For damages.",
	}, "\n")

	doc := complaint.FromRawText(raw)
	text := Text(doc)
	reparsed := complaint.FromRawText(text)

	if got, want := reparsed.Len(), doc.Len(); got != want {
		t.Fatalf("re-parsed into %d sections, want %d\nrendered:\n%s", got, want, text)
	}
	for i := range doc.Sections {
		if got, want := reparsed.Sections[i].Kind, doc.Sections[i].Kind; got != want {
			t.Errorf("section %d kind = %s, want %s", i, got, want)
		}
		if got, want := reparsed.Sections[i].Title, doc.Sections[i].Title; got != want {
			t.Errorf("section %d title = %q, want %q", i, got, want)
		}
	}
}

func TestTextHeadingNotDuplicated(t *testing.T) {
	doc := complaint.FromRawText("VENUE\nVenue is proper in this county.")
	text := Text(doc)

	if got := strings.Count(text, "VENUE"); got != 1 {
		t.Errorf("heading appears %d times, want 1:\n%s", got, text)
	}
}

func TestTextExplicitSectionCarriesTitle(t *testing.T) {
	doc := complaint.NewDocument()
	doc.Append(complaint.NewSection(complaint.KindFactualAllegations,
		"GENERAL FACTUAL ALLEGATIONS", "1. A fact."))

	text := Text(doc)
	if !strings.Contains(text, "GENERAL FACTUAL ALLEGATIONS\n\n1. A fact.") {
		t.Errorf("title block missing:\n%s", text)
	}
}

func TestTextWithoutHeader(t *testing.T) {
	doc := complaint.FromRawText("CAPTION TEXT\nVENUE\nVenue is proper here.")

	text := TextWith(doc, Options{IncludeHeader: false})
	if strings.Contains(text, "CAPTION TEXT") {
		t.Errorf("header rendered despite IncludeHeader=false:\n%s", text)
	}
}

func TestTextTitleRule(t *testing.T) {
	doc := complaint.NewDocument()
	doc.Append(complaint.NewSection(complaint.KindVenue, "VENUE", ""))

	text := TextWith(doc, Options{TitleRule: "="})
	if !strings.Contains(text, "VENUE\n=====") {
		t.Errorf("title rule missing:\n%s", text)
	}
}

func TestTextRestoresFoldedCauseName(t *testing.T) {
	doc := complaint.FromRawText("FIRST CAUSE OF ACTION\n(Fraud)\n1. Defendant lied.")

	text := Text(doc)
	if !strings.Contains(text, "(Fraud)") {
		t.Errorf("folded cause name lost in rendering:\n%s", text)
	}
}

func TestTextEmptyDocument(t *testing.T) {
	if got := Text(complaint.NewDocument()); got != "\n" {
		t.Errorf("Text(empty) = %q", got)
	}
}
