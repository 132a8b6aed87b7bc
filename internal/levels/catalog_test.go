package levels

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBuiltinLevelsParseAndAreSolved(t *testing.T) {
	catalog, err := Builtin()
	if err != nil {
		t.Fatalf("Builtin(): %v", err)
	}
	if catalog.Len() == 0 {
		t.Fatal("bundled catalog is empty")
	}

	for i := 0; i < catalog.Len(); i++ {
		entry := catalog.Entry(i)
		w, err := entry.World()
		if err != nil {
			t.Fatalf("level %s: %v", entry.ID, err)
		}
		// Bundled levels are stored in solved orientation.
		if !w.Solved() {
			t.Errorf("bundled level %s is not solved as stored", entry.ID)
		}
	}
}

func TestBuiltinOrderStable(t *testing.T) {
	a, err := Builtin()
	if err != nil {
		t.Fatal(err)
	}
	b, err := Builtin()
	if err != nil {
		t.Fatal(err)
	}

	idsA, idsB := a.IDs(), b.IDs()
	for i := range idsA {
		if idsA[i] != idsB[i] {
			t.Fatalf("catalog order unstable: %v vs %v", idsA, idsB)
		}
	}
	for i := 1; i < len(idsA); i++ {
		if idsA[i-1] >= idsA[i] {
			t.Errorf("catalog not sorted: %q before %q", idsA[i-1], idsA[i])
		}
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	write("b_second.txt", "2,2\n79\n13\n")
	write("a_first.txt", "1,2\n><\n")
	write("notes.md", "not a level")

	catalog, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if catalog.Len() != 2 {
		t.Fatalf("Len() = %d, want 2 (non-txt files ignored)", catalog.Len())
	}
	if ids := catalog.IDs(); ids[0] != "a_first" || ids[1] != "b_second" {
		t.Errorf("IDs() = %v, want sorted by name", ids)
	}
	if catalog.IndexOf("b_second") != 1 {
		t.Errorf("IndexOf(b_second) = %d", catalog.IndexOf("b_second"))
	}
	if catalog.IndexOf("missing") != -1 {
		t.Error("IndexOf of a missing level must be -1")
	}
}

func TestLoadDirRejectsMalformedLevel(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "good.txt"), []byte("1,2\n><\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "bad.txt"), []byte("2,2\n><\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadDir(dir); err == nil {
		t.Fatal("a malformed level must fail the whole load, not be skipped")
	}
}

func TestOpenSource(t *testing.T) {
	if _, err := OpenSource("builtin", ""); err != nil {
		t.Errorf("builtin source: %v", err)
	}
	if _, err := OpenSource("nope", ""); err == nil {
		t.Error("unknown source must fail")
	}

	names := Sources()
	var hasBuiltin, hasDir bool
	for _, n := range names {
		hasBuiltin = hasBuiltin || n == "builtin"
		hasDir = hasDir || n == "dir"
	}
	if !hasBuiltin || !hasDir {
		t.Errorf("Sources() = %v, want builtin and dir", names)
	}
}
