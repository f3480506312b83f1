// Package draftstore persists complaint drafts as JSON on disk: a
// manifest indexing the drafts plus one sections file per draft. Loading
// a draft re-applies structural invariant repair and renumbering, since
// persisted data may predate either.
package draftstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/coolbeans/pleader/pkg/complaint"
)

const (
	manifestFileName = "drafts.json"
	draftsDir        = "drafts"
	manifestVersion  = "1.0.0"
)

// DraftEntry describes one stored draft in the manifest.
type DraftEntry struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Sections  int       `json:"sections"`
	Causes    int       `json:"causes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Manifest is the top-level index of all drafts in a store.
type Manifest struct {
	Version   string        `json:"version"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
	Drafts    []*DraftEntry `json:"drafts"`
}

// Store manages a directory of persisted complaint drafts.
type Store struct {
	mu       sync.RWMutex
	path     string
	manifest *Manifest
}

// Init creates a new draft store at the given path.
func Init(storePath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Join(storePath, draftsDir), 0755); err != nil {
		return nil, fmt.Errorf("creating store directory: %w", err)
	}

	now := time.Now().UTC()
	store := &Store{
		path: storePath,
		manifest: &Manifest{
			Version:   manifestVersion,
			CreatedAt: now,
			UpdatedAt: now,
			Drafts:    []*DraftEntry{},
		},
	}
	if err := store.saveManifest(); err != nil {
		return nil, err
	}
	return store, nil
}

// Open loads an existing draft store from disk.
func Open(storePath string) (*Store, error) {
	data, err := os.ReadFile(filepath.Join(storePath, manifestFileName))
	if err != nil {
		return nil, fmt.Errorf("reading store manifest: %w", err)
	}
	var manifest Manifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("parsing store manifest: %w", err)
	}
	return &Store{path: storePath, manifest: &manifest}, nil
}

// OpenOrInit opens the store at path, initializing it if absent.
func OpenOrInit(storePath string) (*Store, error) {
	store, err := Open(storePath)
	if err == nil {
		return store, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return Init(storePath)
	}
	return nil, err
}

// Save persists the document under the given name, creating a new draft
// or overwriting the existing one with that name.
func (s *Store) Save(name string, doc *complaint.Document) (*DraftEntry, error) {
	if name == "" {
		return nil, fmt.Errorf("draft name is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	entry := s.findByNameUnsafe(name)
	if entry == nil {
		entry = &DraftEntry{
			ID:        uuid.NewString(),
			Name:      name,
			CreatedAt: now,
		}
		s.manifest.Drafts = append(s.manifest.Drafts, entry)
	}
	stats := doc.Statistics()
	entry.Sections = stats.Sections
	entry.Causes = stats.Causes
	entry.UpdatedAt = now

	data, err := json.MarshalIndent(doc.Sections, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding draft %q: %w", name, err)
	}
	if err := os.WriteFile(s.draftPath(entry.ID), data, 0644); err != nil {
		return nil, fmt.Errorf("writing draft %q: %w", name, err)
	}
	if err := s.saveManifest(); err != nil {
		return nil, err
	}
	return entry, nil
}

// Load reads the named draft and returns it as a repaired, renumbered
// document.
func (s *Store) Load(name string) (*complaint.Document, error) {
	s.mu.RLock()
	entry := s.findByNameUnsafe(name)
	s.mu.RUnlock()
	if entry == nil {
		return nil, fmt.Errorf("draft not found: %s", name)
	}

	data, err := os.ReadFile(s.draftPath(entry.ID))
	if err != nil {
		return nil, fmt.Errorf("reading draft %q: %w", name, err)
	}
	var sections []*complaint.Section
	if err := json.Unmarshal(data, &sections); err != nil {
		return nil, fmt.Errorf("parsing draft %q: %w", name, err)
	}
	return complaint.FromPersisted(sections), nil
}

// Remove deletes the named draft from the store.
func (s *Store) Remove(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, entry := range s.manifest.Drafts {
		if entry.Name != name {
			continue
		}
		if err := os.Remove(s.draftPath(entry.ID)); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("removing draft %q: %w", name, err)
		}
		s.manifest.Drafts = append(s.manifest.Drafts[:i], s.manifest.Drafts[i+1:]...)
		s.manifest.UpdatedAt = time.Now().UTC()
		return s.saveManifest()
	}
	return fmt.Errorf("draft not found: %s", name)
}

// List returns the manifest entries sorted by name.
func (s *Store) List() []*DraftEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]*DraftEntry, len(s.manifest.Drafts))
	copy(entries, s.manifest.Drafts)
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries
}

func (s *Store) findByNameUnsafe(name string) *DraftEntry {
	for _, entry := range s.manifest.Drafts {
		if entry.Name == name {
			return entry
		}
	}
	return nil
}

func (s *Store) draftPath(id string) string {
	return filepath.Join(s.path, draftsDir, id+".json")
}

func (s *Store) saveManifest() error {
	s.manifest.UpdatedAt = time.Now().UTC()
	data, err := json.MarshalIndent(s.manifest, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding store manifest: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.path, manifestFileName), data, 0644); err != nil {
		return fmt.Errorf("writing store manifest: %w", err)
	}
	return nil
}
