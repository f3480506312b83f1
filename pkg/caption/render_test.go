package caption

import (
	"strings"
	"testing"

	"github.com/coolbeans/pleader/pkg/complaint"
)

func sampleCaption() *CaseCaption {
	return &CaseCaption{
		Attorneys: []Attorney{{
			Name:      "Jane Roe",
			BarNumber: "123456",
			Firm:      "Roe & Associates",
			Address:   "100 Main Street, Los Angeles, CA 90012",
			Phone:     "(213) 555-0100",
			Email:     "jroe@example.com",
		}},
		Plaintiffs:      []string{"JOHN DOE"},
		Defendants:      []string{"ACME CORP"},
		IncludeDoes:     true,
		County:          "Los Angeles",
		CaseNumber:      "24STCV01234",
		DocumentType:    "Complaint for Damages",
		DemandJuryTrial: true,
		CausesOfAction:  []string{"NEGLIGENCE", "FRAUD"},
	}
}

func TestRenderHeader(t *testing.T) {
	got := sampleCaption().RenderHeader()

	for _, want := range []string{
		"Jane Roe (SBN 123456)",
		"ROE & ASSOCIATES",
		"Telephone: (213) 555-0100",
		"Email: jroe@example.com",
		"Attorney for Plaintiff",
		"SUPERIOR COURT OF CALIFORNIA",
		"COUNTY OF LOS ANGELES",
		"JOHN DOE,",
		"v.",
		"ACME CORP,",
		"DOES 1 through 50, inclusive,",
		"Defendants.",
		"Case No. 24STCV01234",
		"COMPLAINT FOR DAMAGES",
		"1. NEGLIGENCE",
		"2. FRAUD",
		"DEMAND FOR JURY TRIAL",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("RenderHeader missing %q:\n%s", want, got)
		}
	}
}

func TestRenderHeaderPlaceholders(t *testing.T) {
	got := (&CaseCaption{}).RenderHeader()

	for _, want := range []string{
		"COUNTY OF [COUNTY]",
		"[PLAINTIFF NAME],",
		"[DEFENDANT NAME],",
		"Case No. [CASE NUMBER]",
		"COMPLAINT FOR DAMAGES",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("RenderHeader missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "DEMAND FOR JURY TRIAL") {
		t.Error("jury demand rendered without being requested")
	}
	if strings.Contains(got, "SBN") {
		t.Error("attorney block rendered with no attorneys")
	}
}

func TestRenderHeaderJudgeAssignment(t *testing.T) {
	c := sampleCaption()
	c.JudgeName = "A. Smith"
	c.DepartmentNumber = "54"

	got := c.RenderHeader()
	if !strings.Contains(got, "Assigned to Hon. A. Smith, Dept. 54") {
		t.Errorf("judge line missing:\n%s", got)
	}
}

func TestApplyToReplacesHeader(t *testing.T) {
	doc := complaint.FromRawText("OLD CAPTION TEXT\nVENUE\nVenue is proper here.")
	header := doc.Header()
	if header == nil {
		t.Fatal("fixture has no header")
	}
	oldID := header.ID

	sampleCaption().ApplyTo(doc)

	header = doc.Header()
	if header.ID != oldID {
		t.Error("ApplyTo replaced the header section instead of its body")
	}
	if !strings.Contains(header.Body, "SUPERIOR COURT OF CALIFORNIA") {
		t.Errorf("header body = %q", header.Body)
	}
}

func TestApplyToInsertsHeader(t *testing.T) {
	doc := complaint.FromRawText("VENUE\nVenue is proper here.")
	if doc.Header() != nil {
		t.Fatal("fixture unexpectedly has a header")
	}

	sampleCaption().ApplyTo(doc)

	header := doc.Header()
	if header == nil {
		t.Fatal("no header after ApplyTo")
	}
	if header.Kind != complaint.KindHeader || header.Title != "CAPTION" {
		t.Errorf("header = %s %q", header.Kind, header.Title)
	}
}

func TestIsCaliforniaCounty(t *testing.T) {
	tests := []struct {
		county string
		want   bool
	}{
		{"Los Angeles", true},
		{"los angeles", true},
		{"SAN FRANCISCO", true},
		{"Yolo", true},
		{"Cook", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsCaliforniaCounty(tt.county); got != tt.want {
			t.Errorf("IsCaliforniaCounty(%q) = %v, want %v", tt.county, got, tt.want)
		}
	}
}

func TestCaliforniaCountiesComplete(t *testing.T) {
	if len(CaliforniaCounties) != 58 {
		t.Errorf("len(CaliforniaCounties) = %d, want 58", len(CaliforniaCounties))
	}
}
