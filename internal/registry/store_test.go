package registry

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestStoreLoadEmbedded(t *testing.T) {
	store := NewStore("")

	for _, entry := range New().Entries() {
		data, err := store.LoadForEntry(entry)
		if err != nil {
			t.Errorf("LoadForEntry(%s): %v", entry.TemplateFile, err)
			continue
		}
		if len(data) == 0 {
			t.Errorf("LoadForEntry(%s): empty template", entry.TemplateFile)
		}
	}
}

func TestStoreLoadIdempotent(t *testing.T) {
	store := NewStore("")

	first, err := store.Load("resume.json")
	if err != nil {
		t.Fatalf("first Load: %v", err)
	}
	second, err := store.Load("resume.json")
	if err != nil {
		t.Fatalf("second Load: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Error("repeated loads returned different results")
	}
}

func TestStoreLoadMissing(t *testing.T) {
	store := NewStore("")

	_, err := store.Load("nonexistent.json")
	if err == nil {
		t.Fatal("expected error for missing template")
	}
	if !errors.Is(err, ErrTemplateNotFound) {
		t.Errorf("error = %v, want ErrTemplateNotFound", err)
	}
}

func TestStoreLoadInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	store := NewStore(dir)
	_, err := store.Load("broken.json")
	if err == nil {
		t.Fatal("expected error for invalid JSON template")
	}
	if errors.Is(err, ErrTemplateNotFound) {
		t.Error("invalid JSON should not report ErrTemplateNotFound")
	}
}

func TestStoreRejectsPathTraversal(t *testing.T) {
	store := NewStore(t.TempDir())

	for _, name := range []string{"../secret.json", "sub/dir.json", "/etc/passwd"} {
		_, err := store.Load(name)
		if !errors.Is(err, ErrTemplateNotFound) {
			t.Errorf("Load(%q) error = %v, want ErrTemplateNotFound", name, err)
		}
	}
}

func TestStoreDirOverridesEmbedded(t *testing.T) {
	dir := t.TempDir()
	custom := []byte(`{"custom_field": ""}`)
	if err := os.WriteFile(filepath.Join(dir, "resume.json"), custom, 0o644); err != nil {
		t.Fatal(err)
	}

	store := NewStore(dir)

	data, err := store.Load("resume.json")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !bytes.Contains(data, []byte("custom_field")) {
		t.Errorf("override not used, got %s", data)
	}

	// Files absent from the override dir still come from the embedded set.
	if _, err := store.Load("passport.json"); err != nil {
		t.Errorf("embedded fallback failed: %v", err)
	}
}

func TestStoreList(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "extra.json"), []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	store := NewStore(dir)
	names, err := store.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	seen := make(map[string]bool, len(names))
	for _, n := range names {
		seen[n] = true
	}
	if !seen["extra.json"] {
		t.Error("List missing override file extra.json")
	}
	if !seen["resume.json"] {
		t.Error("List missing embedded file resume.json")
	}

	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Fatalf("List not sorted: %q before %q", names[i-1], names[i])
		}
	}
}
