package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	return path
}

func TestLoad_ValidCatalog(t *testing.T) {
	path := writeCatalog(t, `
indicators:
  - name: hype
    phrases: ["shocking", "unreal"]
    weight: 2.0
  - name: pressure
    phrases: ["act now"]
    weight: 1.5
credibility:
  - name: attribution
    phrases: ["according to"]
`)

	catalog, err := Load(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(catalog.Indicators) != 2 {
		t.Errorf("Expected 2 indicator categories, got %d", len(catalog.Indicators))
	}
	if catalog.Indicators[0].Name != "hype" || catalog.Indicators[0].Weight != 2.0 {
		t.Errorf("Unexpected first category: %+v", catalog.Indicators[0])
	}
	if len(catalog.Credibility) != 1 {
		t.Errorf("Expected 1 credibility category, got %d", len(catalog.Credibility))
	}
}

func TestLoad_RejectsInvalidCatalog(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{
			name: "zero weight",
			content: `
indicators:
  - name: hype
    phrases: ["shocking"]
    weight: 0
`,
		},
		{
			name: "duplicate phrases",
			content: `
indicators:
  - name: hype
    phrases: ["shocking", "shocking"]
    weight: 1.0
`,
		},
		{
			name:    "no categories",
			content: `indicators: []`,
		},
		{
			name:    "not yaml",
			content: `{{{{`,
		},
	}

	for _, tc := range cases {
		path := writeCatalog(t, tc.content)
		if _, err := Load(path); err == nil {
			t.Errorf("%s: expected error, got nil", tc.name)
		}
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Expected error for missing file, got nil")
	}
}

func TestLoadOrDefault_EmptyPathUsesBuiltin(t *testing.T) {
	catalog, err := LoadOrDefault("")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(catalog.Indicators) != 7 {
		t.Errorf("Expected 7 built-in indicator categories, got %d", len(catalog.Indicators))
	}
	if len(catalog.Credibility) != 3 {
		t.Errorf("Expected 3 built-in credibility categories, got %d", len(catalog.Credibility))
	}
}
