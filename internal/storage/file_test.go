package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shhac/postie/internal/logging"
)

func TestAtomicWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.json")
	data := []byte(`{"hello": "world"}`)

	if err := atomicWriteFile(path, data, 0644); err != nil {
		t.Fatalf("atomicWriteFile failed: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(got) != string(data) {
		t.Errorf("got %q, want %q", got, data)
	}

	// Verify permissions
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0644 {
		t.Errorf("permissions = %o, want 0644", perm)
	}
}

func TestAtomicWriteFile_Overwrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.json")

	if err := atomicWriteFile(path, []byte("old"), 0644); err != nil {
		t.Fatalf("first write failed: %v", err)
	}
	if err := atomicWriteFile(path, []byte("new"), 0644); err != nil {
		t.Fatalf("second write failed: %v", err)
	}

	got, _ := os.ReadFile(path)
	if string(got) != "new" {
		t.Errorf("got %q, want %q", got, "new")
	}
}

func TestAtomicWriteFile_NoTempFileOnFailure(t *testing.T) {
	parent := t.TempDir()
	path := filepath.Join(parent, "nodir", "test.json")
	if err := atomicWriteFile(path, []byte("data"), 0644); err == nil {
		t.Fatal("expected error writing to non-existent directory")
	}

	entries, _ := os.ReadDir(parent)
	if len(entries) != 0 {
		t.Errorf("unexpected files left behind: %v", entries)
	}
}

func TestFileStore_MissingFileIsEmpty(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "not-created"), logging.NewNopLogger())

	value, ok, err := store.GetItem("anything")
	if err != nil {
		t.Fatalf("GetItem failed: %v", err)
	}
	if ok || value != "" {
		t.Errorf("GetItem = (%q, %v), want (\"\", false)", value, ok)
	}
}

func TestFileStore_SetAndGet(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "postie")
	store := NewFileStore(dir, logging.NewNopLogger())

	if err := store.SetItem("a", "1"); err != nil {
		t.Fatalf("SetItem failed: %v", err)
	}
	if err := store.SetItem("b", ""); err != nil {
		t.Fatalf("SetItem failed: %v", err)
	}
	if err := store.SetItem("a", "2"); err != nil {
		t.Fatalf("SetItem failed: %v", err)
	}

	// A fresh store over the same directory sees the persisted values.
	reopened := NewFileStore(dir, logging.NewNopLogger())

	value, ok, err := reopened.GetItem("a")
	if err != nil || !ok || value != "2" {
		t.Errorf("GetItem(a) = (%q, %v, %v), want (\"2\", true, nil)", value, ok, err)
	}
	value, ok, err = reopened.GetItem("b")
	if err != nil || !ok || value != "" {
		t.Errorf("GetItem(b) = (%q, %v, %v), want (\"\", true, nil)", value, ok, err)
	}
}

func TestFileStore_CorruptFileIsMovedAsideOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, storeFile)
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	store := NewFileStore(dir, logging.NewNopLogger())
	if _, _, err := store.GetItem("a"); err == nil {
		t.Error("GetItem should fail on a corrupt store file")
	}

	// Reads leave the file alone.
	got, _ := os.ReadFile(path)
	if string(got) != "{not json" {
		t.Errorf("corrupt file was modified by a read: %q", got)
	}

	if err := store.SetItem("a", "1"); err != nil {
		t.Fatalf("SetItem after corruption failed: %v", err)
	}
	aside, err := os.ReadFile(path + corruptSuffix)
	if err != nil {
		t.Fatalf("corrupt file was not kept: %v", err)
	}
	if string(aside) != "{not json" {
		t.Errorf("kept file = %q, want original bytes", aside)
	}

	value, ok, err := store.GetItem("a")
	if err != nil || !ok || value != "1" {
		t.Errorf("GetItem(a) = (%q, %v, %v), want (\"1\", true, nil)", value, ok, err)
	}

	// Later writes keep working.
	if err := store.SetItem("b", "2"); err != nil {
		t.Errorf("second SetItem failed: %v", err)
	}
}
