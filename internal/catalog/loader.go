// Package catalog loads phrase catalogs from YAML files, allowing the
// built-in lists to be replaced without recompiling.
package catalog

import (
	"fmt"
	"os"

	"github.com/credo-scan/credo/internal/detect"
	"github.com/credo-scan/credo/internal/model"
	"gopkg.in/yaml.v3"
)

// Load reads a catalog from a YAML file and validates it eagerly, so a
// malformed catalog fails at startup rather than producing degenerate
// scores later.
func Load(path string) (model.Catalog, error) {
	var catalog model.Catalog

	data, err := os.ReadFile(path)
	if err != nil {
		return catalog, fmt.Errorf("read catalog: %w", err)
	}

	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return catalog, fmt.Errorf("parse catalog: %w", err)
	}

	if _, err := detect.New(catalog); err != nil {
		return catalog, fmt.Errorf("invalid catalog %s: %w", path, err)
	}

	return catalog, nil
}

// LoadOrDefault returns the catalog at path, or the built-in catalog
// when path is empty.
func LoadOrDefault(path string) (model.Catalog, error) {
	if path == "" {
		return model.DefaultCatalog(), nil
	}
	return Load(path)
}
