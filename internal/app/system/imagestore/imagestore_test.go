package imagestore

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(t.TempDir(), "/images", "default.png")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return s
}

func TestSave(t *testing.T) {
	s := newTestStore(t)

	name, err := s.Save("64b0c4", "photo.png", strings.NewReader("png-bytes"))
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if name != "64b0c4photo.png" {
		t.Errorf("stored name: got %q, want %q", name, "64b0c4photo.png")
	}

	data, err := os.ReadFile(filepath.Join(s.Root(), name))
	if err != nil {
		t.Fatalf("stored file unreadable: %v", err)
	}
	if string(data) != "png-bytes" {
		t.Errorf("stored content: got %q", data)
	}
}

func TestSave_SanitizesName(t *testing.T) {
	s := newTestStore(t)

	name, err := s.Save("abc", "../../etc/passwd", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if strings.Contains(name, "/") || strings.Contains(name, "..") {
		t.Errorf("unsanitized name: %q", name)
	}
}

func TestRemove(t *testing.T) {
	s := newTestStore(t)

	name, err := s.Save("abc", "pic.jpg", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := s.Remove(name); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(s.Root(), name)); !os.IsNotExist(err) {
		t.Error("file still exists after Remove")
	}
}

func TestRemove_MissingFileIsNoError(t *testing.T) {
	s := newTestStore(t)
	if err := s.Remove("never-existed.png"); err != nil {
		t.Errorf("Remove of missing file: %v", err)
	}
}

func TestRemove_DefaultIsSkipped(t *testing.T) {
	s := newTestStore(t)

	// Place a file with the default name; Remove must leave it alone.
	if _, err := s.Save("", "default.png", strings.NewReader("shared")); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := s.Remove("default.png"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(s.Root(), "default.png")); err != nil {
		t.Error("default image was removed")
	}
}
