package levels

import (
	"embed"
	"fmt"
	"sort"
)

//go:embed levels/*.txt
var builtinFS embed.FS

// Builtin returns the bundled level pack, ordered by file name. The bundled
// levels are stored in solved orientation and shuffled at play time.
func Builtin() (*Catalog, error) {
	files, err := builtinFS.ReadDir("levels")
	if err != nil {
		return nil, fmt.Errorf("reading bundled levels: %w", err)
	}

	entries := make([]Entry, 0, len(files))
	for _, f := range files {
		data, err := builtinFS.ReadFile("levels/" + f.Name())
		if err != nil {
			return nil, fmt.Errorf("reading bundled level %s: %w", f.Name(), err)
		}
		entries = append(entries, Entry{
			ID:  levelID(f.Name()),
			Raw: string(data),
		})
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

func init() {
	RegisterSource("builtin", func(string) (*Catalog, error) {
		return Builtin()
	})
	RegisterSource("dir", func(root string) (*Catalog, error) {
		return LoadDir(root)
	})
}
