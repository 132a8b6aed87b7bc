// Package levels provides the read-only, ordered catalog of level texts.
// A catalog is loaded once at host start-up and its entries are parsed on
// demand; this package depends on puzzle but puzzle does not depend on it.
package levels

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pipelab/pipeworks/internal/puzzle"
)

// Entry is a single catalog level: an identifier derived from the file name
// and the raw level text in the plain-text grid format.
type Entry struct {
	ID  string
	Raw string
}

// World parses the entry's text into a playable world.
func (e Entry) World() (puzzle.World, error) {
	w, err := puzzle.Parse(e.Raw)
	if err != nil {
		return puzzle.World{}, fmt.Errorf("level %s: %w", e.ID, err)
	}
	return w, nil
}

// Catalog is an ordered, read-only collection of levels.
type Catalog struct {
	entries []Entry
}

// NewCatalog builds a catalog from entries, keeping their order.
func NewCatalog(entries []Entry) *Catalog {
	return &Catalog{entries: entries}
}

// Len returns the number of levels.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Entry returns the i-th level. Panics when i is out of range, like a slice.
func (c *Catalog) Entry(i int) Entry {
	return c.entries[i]
}

// IDs returns all level identifiers in catalog order.
func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.entries))
	for i, e := range c.entries {
		ids[i] = e.ID
	}
	return ids
}

// IndexOf returns the position of the level with the given ID, or -1.
func (c *Catalog) IndexOf(id string) int {
	for i, e := range c.entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// World parses the i-th level on demand.
func (c *Catalog) World(i int) (puzzle.World, error) {
	return c.entries[i].World()
}

// Validate parses every level. A malformed level is always surfaced, never
// skipped: the host must not start a session over a broken catalog.
func (c *Catalog) Validate() error {
	for _, e := range c.entries {
		if _, err := e.World(); err != nil {
			return err
		}
	}
	return nil
}

// LoadDir loads every *.txt file under root as a level, ordered by file
// name. Any malformed file fails the whole load.
func LoadDir(root string) (*Catalog, error) {
	var entries []Entry

	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".txt") {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading level %s: %w", path, err)
		}
		entries = append(entries, Entry{
			ID:  levelID(filepath.Base(path)),
			Raw: string(data),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking level directory %s: %w", root, err)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ID < entries[j].ID
	})

	catalog := NewCatalog(entries)
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	return catalog, nil
}

// levelID strips the extension from a level file name.
func levelID(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}
