package registry

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ManifestFileName is the optional registry override file in the templates
// directory. When present, its entries are matched before the built-in ones,
// so deployments can add document types without rebuilding.
const ManifestFileName = "registry.yaml"

// manifest is the on-disk shape of registry.yaml.
type manifest struct {
	// Replace drops the built-in entries entirely instead of prepending.
	Replace bool    `yaml:"replace"`
	Entries []Entry `yaml:"entries"`
}

// LoadManifest reads registry.yaml from dir and returns a registry combining
// its entries with the built-in set. A missing manifest yields the built-in
// registry; a malformed one is an error.
func LoadManifest(dir string) (*Registry, error) {
	if dir == "" {
		return New(), nil
	}

	data, err := os.ReadFile(filepath.Join(dir, ManifestFileName))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return New(), nil
		}
		return nil, fmt.Errorf("failed to read registry manifest: %w", err)
	}

	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("invalid registry manifest: %w", err)
	}

	for i, e := range m.Entries {
		if e.Keyword == "" || e.TemplateFile == "" {
			return nil, fmt.Errorf("registry manifest entry %d missing keyword or template_file", i)
		}
	}

	if m.Replace {
		return NewWithEntries(m.Entries), nil
	}

	// Manifest entries take precedence over built-ins.
	combined := make([]Entry, 0, len(m.Entries)+len(builtin))
	combined = append(combined, m.Entries...)
	combined = append(combined, builtin...)
	return NewWithEntries(combined), nil
}
