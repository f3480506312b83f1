package caption

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	content := `attorneys:
  - name: Jane Roe
    bar_number: "123456"
    firm: Roe & Associates
plaintiffs:
  - JOHN DOE
defendants:
  - ACME CORP
include_does: true
county: Los Angeles
case_number: 24STCV01234
demand_jury_trial: true
`
	path := filepath.Join(t.TempDir(), "caption.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(c.Attorneys) != 1 || c.Attorneys[0].BarNumber != "123456" {
		t.Errorf("Attorneys = %+v", c.Attorneys)
	}
	if c.County != "Los Angeles" || !c.IncludeDoes || !c.DemandJuryTrial {
		t.Errorf("caption = %+v", c)
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
