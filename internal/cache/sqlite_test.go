package cache

import (
	"context"
	"path/filepath"
	"testing"
)

func TestSQLiteStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")

	store, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}

	store.Put(Key("as", "মেকুৰী"), "cat")
	store.Put(Key("es", "perro"), "dog")
	if err := store.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}

	// Second flush overwrites an existing row.
	store.Put(Key("es", "perro"), "hound")
	if err := store.Flush(); err != nil {
		t.Fatalf("Second flush failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("Reopen failed: %v", err)
	}
	defer reopened.Close()

	if reopened.Len() != 2 {
		t.Errorf("Expected 2 entries, got %d", reopened.Len())
	}
	if value, ok := reopened.Get(Key("as", "মেকুৰী")); !ok || value != "cat" {
		t.Errorf("Get() = %q, %v, want %q, true", value, ok, "cat")
	}
	if value, _ := reopened.Get(Key("es", "perro")); value != "hound" {
		t.Errorf("Expected overwritten value 'hound', got %q", value)
	}
}

func TestSQLiteStore_FlushWithoutChanges(t *testing.T) {
	store, err := OpenSQLite(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}
	defer store.Close()

	if err := store.Flush(); err != nil {
		t.Errorf("Flush on clean store failed: %v", err)
	}
}

func TestOpen_SQLiteBackend(t *testing.T) {
	store, err := Open(context.Background(), Config{
		Backend:    "sqlite",
		SQLitePath: filepath.Join(t.TempDir(), "cache.db"),
	})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()

	if _, ok := store.(*SQLiteStore); !ok {
		t.Errorf("Expected *SQLiteStore, got %T", store)
	}
}
