package draftstore

import (
	"strings"
	"testing"

	"github.com/coolbeans/pleader/pkg/complaint"
)

func sampleDocument() *complaint.Document {
	return complaint.FromRawText("PARTIES\n1. Plaintiff is an individual.\nFIRST CAUSE OF ACTION: Negligence\n2. Defendant was careless.")
}

func TestInitAndOpen(t *testing.T) {
	dir := t.TempDir()

	if _, err := Init(dir); err != nil {
		t.Fatalf("Init: %v", err)
	}
	store, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if got := store.List(); len(got) != 0 {
		t.Errorf("new store lists %d drafts, want 0", len(got))
	}
}

func TestOpenMissing(t *testing.T) {
	if _, err := Open(t.TempDir()); err == nil {
		t.Fatal("Open on an empty directory should fail")
	}
}

func TestOpenOrInit(t *testing.T) {
	dir := t.TempDir()

	store, err := OpenOrInit(dir)
	if err != nil {
		t.Fatalf("OpenOrInit (init path): %v", err)
	}
	if _, err := store.Save("case-a", sampleDocument()); err != nil {
		t.Fatalf("Save: %v", err)
	}

	reopened, err := OpenOrInit(dir)
	if err != nil {
		t.Fatalf("OpenOrInit (open path): %v", err)
	}
	if got := reopened.List(); len(got) != 1 || got[0].Name != "case-a" {
		t.Errorf("reopened store lists %v", got)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store, err := Init(t.TempDir())
	if err != nil {
		t.Fatalf("Init: %v", err)
	}

	saved := sampleDocument()
	entry, err := store.Save("doe-v-acme", saved)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if entry.ID == "" {
		t.Error("entry has no ID")
	}
	if entry.Sections != saved.Len() {
		t.Errorf("entry.Sections = %d, want %d", entry.Sections, saved.Len())
	}
	if entry.Causes != 1 {
		t.Errorf("entry.Causes = %d, want 1", entry.Causes)
	}

	loaded, err := store.Load("doe-v-acme")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Len() != saved.Len() {
		t.Fatalf("loaded %d sections, want %d", loaded.Len(), saved.Len())
	}
	for i := range saved.Sections {
		if loaded.Sections[i].ID != saved.Sections[i].ID {
			t.Errorf("section %d ID changed across save/load", i)
		}
		if loaded.Sections[i].Body != saved.Sections[i].Body {
			t.Errorf("section %d body = %q, want %q",
				i, loaded.Sections[i].Body, saved.Sections[i].Body)
		}
	}
}

func TestSaveOverwritesByName(t *testing.T) {
	store, err := Init(t.TempDir())
	if err != nil {
		t.Fatalf("Init: %v", err)
	}

	first, err := store.Save("case-a", sampleDocument())
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	second, err := store.Save("case-a", complaint.FromRawText("VENUE\nVenue is proper."))
	if err != nil {
		t.Fatalf("Save (overwrite): %v", err)
	}

	if second.ID != first.ID {
		t.Error("overwriting by name changed the draft ID")
	}
	if got := store.List(); len(got) != 1 {
		t.Errorf("store lists %d drafts after overwrite, want 1", len(got))
	}
}

func TestSaveEmptyName(t *testing.T) {
	store, err := Init(t.TempDir())
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	if _, err := store.Save("", sampleDocument()); err == nil {
		t.Fatal("Save with empty name should fail")
	}
}

func TestLoadMissing(t *testing.T) {
	store, err := Init(t.TempDir())
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	if _, err := store.Load("absent"); err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("Load(absent) err = %v, want not found", err)
	}
}

func TestRemove(t *testing.T) {
	store, err := Init(t.TempDir())
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	if _, err := store.Save("case-a", sampleDocument()); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if err := store.Remove("case-a"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if got := store.List(); len(got) != 0 {
		t.Errorf("store lists %d drafts after remove, want 0", len(got))
	}
	if err := store.Remove("case-a"); err == nil {
		t.Fatal("second Remove should fail")
	}
}

func TestListSorted(t *testing.T) {
	store, err := Init(t.TempDir())
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	for _, name := range []string{"zeta", "alpha", "mid"} {
		if _, err := store.Save(name, sampleDocument()); err != nil {
			t.Fatalf("Save(%s): %v", name, err)
		}
	}

	got := store.List()
	want := []string{"alpha", "mid", "zeta"}
	for i := range want {
		if got[i].Name != want[i] {
			t.Errorf("List()[%d] = %q, want %q", i, got[i].Name, want[i])
		}
	}
}

func TestLoadRenumbersStaleData(t *testing.T) {
	store, err := Init(t.TempDir())
	if err != nil {
		t.Fatalf("Init: %v", err)
	}

	doc := sampleDocument()
	// Simulate a draft saved before a reorder was renumbered.
	doc.Causes()[0].Title = "NINTH CAUSE OF ACTION: Negligence"
	if _, err := store.Save("stale", doc); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := store.Load("stale")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := loaded.Causes()[0].Title; got != "FIRST CAUSE OF ACTION: Negligence" {
		t.Errorf("loaded cause title = %q, want re-derived ordinal", got)
	}
}
