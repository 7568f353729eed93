package worker

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/credo-scan/credo/internal/model"
	"github.com/credo-scan/credo/internal/pipeline"
)

type fakeRunner struct {
	mu       sync.Mutex
	scanned  []string
	analyzed []string
	failFor  map[string]bool
}

func (f *fakeRunner) ScanURL(ctx context.Context, url string) (*pipeline.ScanResult, error) {
	f.mu.Lock()
	f.scanned = append(f.scanned, url)
	f.mu.Unlock()

	if f.failFor[url] {
		return nil, errors.New("fetch failed")
	}
	return &pipeline.ScanResult{Report: &model.Report{SourceURL: url}}, nil
}

func (f *fakeRunner) AnalyzeText(text string) *model.Analysis {
	f.mu.Lock()
	f.analyzed = append(f.analyzed, text)
	f.mu.Unlock()
	return &model.Analysis{}
}

func TestBatchProcessor_ProcessURLs(t *testing.T) {
	runner := &fakeRunner{}
	b := NewBatchProcessor(runner, 3, 100, 10)

	inputs := []string{
		"https://example.com/a",
		"https://example.com/b",
		"https://example.com/c",
	}

	results := b.Process(context.Background(), inputs)

	if len(results) != len(inputs) {
		t.Fatalf("expected %d results, got %d", len(inputs), len(results))
	}

	covered := make(map[string]bool)
	for _, r := range results {
		if r.Err != nil {
			t.Errorf("unexpected error for %s: %v", r.Input, r.Err)
		}
		if r.Report == nil || r.Report.SourceURL != r.Input {
			t.Errorf("report for %s does not carry its source URL", r.Input)
		}
		covered[r.Input] = true
	}
	for _, in := range inputs {
		if !covered[in] {
			t.Errorf("no result for input %s", in)
		}
	}
}

func TestBatchProcessor_LocalFileInput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "article.txt")
	if err := os.WriteFile(path, []byte("some article text to score"), 0o644); err != nil {
		t.Fatal(err)
	}

	runner := &fakeRunner{}
	b := NewBatchProcessor(runner, 1, 100, 10)

	results := b.Process(context.Background(), []string{path})
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}

	r := results[0]
	if r.Err != nil {
		t.Fatalf("unexpected error: %v", r.Err)
	}
	if r.Report.Subject != "article.txt" {
		t.Errorf("expected file name as subject, got %q", r.Report.Subject)
	}
	if len(runner.scanned) != 0 {
		t.Errorf("local file must not be fetched, scanned %v", runner.scanned)
	}
	if len(runner.analyzed) != 1 {
		t.Errorf("expected 1 text analysis, got %d", len(runner.analyzed))
	}
}

func TestBatchProcessor_ErrorPerInput(t *testing.T) {
	runner := &fakeRunner{failFor: map[string]bool{"https://bad.example/": true}}
	b := NewBatchProcessor(runner, 2, 100, 10)

	results := b.Process(context.Background(), []string{
		"https://good.example/",
		"https://bad.example/",
	})

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	failed := 0
	for _, r := range results {
		if r.GetError() != nil {
			failed++
			if r.Input != "https://bad.example/" {
				t.Errorf("wrong input failed: %s", r.Input)
			}
		}
	}
	if failed != 1 {
		t.Errorf("expected exactly 1 failure, got %d", failed)
	}
}

func TestBatchProcessor_MissingLocalFile(t *testing.T) {
	runner := &fakeRunner{}
	b := NewBatchProcessor(runner, 1, 100, 10)

	results := b.Process(context.Background(), []string{"/nonexistent/article.txt"})
	if len(results) != 1 || results[0].Err == nil {
		t.Error("expected an error result for a missing file")
	}
}

func TestBatchProcessor_EmptyInputs(t *testing.T) {
	b := NewBatchProcessor(&fakeRunner{}, 2, 100, 10)
	if results := b.Process(context.Background(), nil); len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
}

func TestReadInputsFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "inputs.txt")
	content := `# sources to check
https://example.com/a

https://example.com/b
https://example.com/a
  https://example.com/c
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	inputs, err := ReadInputsFromFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{
		"https://example.com/a",
		"https://example.com/b",
		"https://example.com/c",
	}
	if len(inputs) != len(want) {
		t.Fatalf("expected %d inputs, got %d: %v", len(want), len(inputs), inputs)
	}
	for i, w := range want {
		if inputs[i] != w {
			t.Errorf("input %d: expected %q, got %q", i, w, inputs[i])
		}
	}
}

func TestReadInputsFromFile_Missing(t *testing.T) {
	if _, err := ReadInputsFromFile("/nonexistent/inputs.txt"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestProcessFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "inputs.txt")
	if err := os.WriteFile(path, []byte("https://example.com/a\nhttps://example.com/b\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	runner := &fakeRunner{}
	b := NewBatchProcessor(runner, 2, 100, 10)

	results, err := b.ProcessFile(context.Background(), path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Errorf("expected 2 results, got %d", len(results))
	}
}
