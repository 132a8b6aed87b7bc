package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
	return store
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, moves := range []int{24, 11, 37} {
		if _, err := store.SaveClear("02_small_loop", moves); err != nil {
			t.Fatalf("SaveClear() failed: %v", err)
		}
	}
	if _, err := store.SaveClear("03_keypad", 80); err != nil {
		t.Fatalf("SaveClear() failed: %v", err)
	}

	best, ok, err := store.BestMoves("02_small_loop")
	if err != nil {
		t.Fatalf("BestMoves() failed: %v", err)
	}
	if !ok || best != 11 {
		t.Errorf("BestMoves() = %d, %v; want 11, true", best, ok)
	}

	count, err := store.ClearCount("02_small_loop")
	if err != nil {
		t.Fatalf("ClearCount() failed: %v", err)
	}
	if count != 3 {
		t.Errorf("ClearCount() = %d, want 3", count)
	}

	recent, err := store.RecentClears("02_small_loop", 2)
	if err != nil {
		t.Fatalf("RecentClears() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("RecentClears() returned %d entries, want 2", len(recent))
	}
	if recent[0].Moves != 37 {
		t.Errorf("most recent clear has %d moves, want 37", recent[0].Moves)
	}
}

func TestStoreUnclearedLevel(t *testing.T) {
	store := openTestStore(t)

	_, ok, err := store.BestMoves("never_played")
	if err != nil {
		t.Fatalf("BestMoves() failed: %v", err)
	}
	if ok {
		t.Error("BestMoves() reported a clear for an untouched level")
	}

	count, err := store.ClearCount("never_played")
	if err != nil {
		t.Fatalf("ClearCount() failed: %v", err)
	}
	if count != 0 {
		t.Errorf("ClearCount() = %d, want 0", count)
	}
}

func TestClearedLevels(t *testing.T) {
	store := openTestStore(t)

	for _, id := range []string{"b", "a", "b"} {
		if _, err := store.SaveClear(id, 10); err != nil {
			t.Fatalf("SaveClear() failed: %v", err)
		}
	}

	ids, err := store.ClearedLevels()
	if err != nil {
		t.Fatalf("ClearedLevels() failed: %v", err)
	}
	if len(ids) != 2 || ids[0] != "a" || ids[1] != "b" {
		t.Errorf("ClearedLevels() = %v, want [a b]", ids)
	}
}

func TestOpenCreatesParentDirs(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store.Close()
}
