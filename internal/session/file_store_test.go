package session

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileStore_PersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.json")

	first := NewFileStore(path)
	if err := first.Set("admin_token", "tok123"); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if err := first.Set("admin_user", `{"id":1}`); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	// A new instance over the same path sees the same session, the way a
	// page reload sees browser storage.
	second := NewFileStore(path)
	if v, ok := second.Get("admin_token"); !ok || v != "tok123" {
		t.Fatalf("expected persisted token, got %q (%v)", v, ok)
	}

	if err := second.Delete("admin_token"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, ok := first.Get("admin_token"); ok {
		t.Fatalf("expected delete to be visible to other instances")
	}
	if v, ok := first.Get("admin_user"); !ok || v != `{"id":1}` {
		t.Fatalf("expected unrelated key untouched, got %q", v)
	}
}

func TestFileStore_MissingFileIsEmpty(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "absent.json"))
	if _, ok := store.Get("admin_token"); ok {
		t.Fatalf("expected empty store for missing file")
	}
	if err := store.Delete("admin_token"); err != nil {
		t.Fatalf("delete on missing file should not error: %v", err)
	}
}

func TestFileStore_CorruptFileTreatedAsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	if err := os.WriteFile(path, []byte("{{{"), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	store := NewFileStore(path)
	if _, ok := store.Get("admin_token"); ok {
		t.Fatalf("expected corrupt file to read as empty")
	}
	if err := store.Set("admin_token", "fresh"); err != nil {
		t.Fatalf("Set over corrupt file: %v", err)
	}
	if v, _ := store.Get("admin_token"); v != "fresh" {
		t.Fatalf("expected store usable after overwrite, got %q", v)
	}
}
