package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/pradyten/pdf-extractor/templates"
)

// ErrTemplateNotFound is returned when a template file cannot be read.
var ErrTemplateNotFound = errors.New("template not found")

// Store loads extraction templates. Templates are read from the configured
// directory when set, falling back to the embedded defaults. Templates are
// opaque JSON objects: the pipeline serializes them into the prompt but
// never interprets their fields.
type Store struct {
	dir      string
	embedded fs.FS
}

// NewStore returns a store reading from dir, or from the embedded defaults
// when dir is empty.
func NewStore(dir string) *Store {
	return &Store{dir: dir, embedded: templates.FS()}
}

// Load reads and parses the named template file. The returned value is the
// normalized JSON document; loading the same file twice yields structurally
// identical results.
func (s *Store) Load(templateFile string) (json.RawMessage, error) {
	data, err := s.read(templateFile)
	if err != nil {
		return nil, err
	}

	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("template %s is not valid JSON: %w", templateFile, err)
	}

	normalized, err := json.Marshal(parsed)
	if err != nil {
		return nil, fmt.Errorf("failed to normalize template %s: %w", templateFile, err)
	}
	return normalized, nil
}

// LoadForEntry loads the template referenced by a registry entry.
func (s *Store) LoadForEntry(entry Entry) (json.RawMessage, error) {
	return s.Load(entry.TemplateFile)
}

func (s *Store) read(templateFile string) ([]byte, error) {
	// Reject path traversal; template files are plain names.
	if filepath.Base(templateFile) != templateFile {
		return nil, fmt.Errorf("invalid template file name %q: %w", templateFile, ErrTemplateNotFound)
	}

	if s.dir != "" {
		data, err := os.ReadFile(filepath.Join(s.dir, templateFile))
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read template %s: %w", templateFile, err)
		}
		// Fall back to embedded defaults for files absent from the override dir.
	}

	data, err := fs.ReadFile(s.embedded, templateFile)
	if err != nil {
		return nil, fmt.Errorf("template %s: %w", templateFile, ErrTemplateNotFound)
	}
	return data, nil
}

// List returns the template file names available to this store, with the
// override directory merged over the embedded defaults.
func (s *Store) List() ([]string, error) {
	names := make(map[string]struct{})

	entries, err := fs.ReadDir(s.embedded, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to list embedded templates: %w", err)
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ".json" {
			names[e.Name()] = struct{}{}
		}
	}

	if s.dir != "" {
		dirEntries, err := os.ReadDir(s.dir)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to list template directory: %w", err)
		}
		for _, e := range dirEntries {
			if !e.IsDir() && filepath.Ext(e.Name()) == ".json" {
				names[e.Name()] = struct{}{}
			}
		}
	}

	out := make([]string, 0, len(names))
	for name := range names {
		out = append(out, name)
	}
	sort.Strings(out)
	return out, nil
}
