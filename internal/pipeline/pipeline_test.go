package pipeline

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/credo-scan/credo/internal/detect"
	"github.com/credo-scan/credo/internal/model"
)

func testConfig(t *testing.T) *model.Config {
	t.Helper()
	cfg := model.DefaultConfig()
	cfg.HTTP.RespectRobots = false
	cfg.Cache.Enabled = false
	return cfg
}

func testPipeline(t *testing.T, cfg *model.Config) *Pipeline {
	t.Helper()
	detector, err := detect.New(model.DefaultCatalog())
	if err != nil {
		t.Fatalf("build detector: %v", err)
	}
	return NewPipeline(cfg, detector)
}

func TestScanURL_EndToEnd(t *testing.T) {
	page := `<html>
	<head><title>Miracle Cure Found</title></head>
	<body>
		<script>var hidden = "conspiracy";</script>
		<p>SHOCKING!!! Doctors hate this weird trick. Click here before it's too late!!!</p>
	</body>
	</html>`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = fmt.Fprint(w, page)
	}))
	defer server.Close()

	p := testPipeline(t, testConfig(t))
	result, err := p.ScanURL(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	report := result.Report
	if report.Subject != "Miracle Cure Found" {
		t.Errorf("Expected title as subject, got %q", report.Subject)
	}
	if report.Analysis == nil {
		t.Fatal("Expected analysis")
	}
	if m := report.Analysis.Indicator("clickbait"); m == nil {
		t.Error("Expected clickbait indicators from page text")
	}
	// Script content must not leak into matching
	if m := report.Analysis.Indicator("conspiracy"); m != nil {
		t.Errorf("Expected script content to be excluded, got %+v", m)
	}
	if report.Authority != model.TierTertiary {
		t.Errorf("Expected tertiary authority for test server, got %s", report.Authority)
	}
}

func TestScanURL_TooLittleTextYieldsNilAnalysis(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprint(w, "<html><body><p>hi</p></body></html>")
	}))
	defer server.Close()

	p := testPipeline(t, testConfig(t))
	result, err := p.ScanURL(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if result.Report.Analysis != nil {
		t.Error("Expected nil analysis for near-empty page")
	}
}

func TestScanURL_UsesCache(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = fmt.Fprint(w, "<html><body><p>A perfectly ordinary article about local gardening news.</p></body></html>")
	}))
	defer server.Close()

	cfg := testConfig(t)
	cfg.Cache.Enabled = true
	cfg.Cache.Dir = t.TempDir()

	p := testPipeline(t, cfg)

	for i := 0; i < 2; i++ {
		if _, err := p.ScanURL(context.Background(), server.URL); err != nil {
			t.Fatalf("Scan %d: expected no error, got %v", i, err)
		}
	}

	if hits.Load() != 1 {
		t.Errorf("Expected 1 upstream fetch with cache enabled, got %d", hits.Load())
	}
}

func TestScanURL_RespectsRobots(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprint(w, "User-agent: *\nDisallow: /\n")
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprint(w, "<html><body><p>should not be reached by the scanner</p></body></html>")
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	cfg := testConfig(t)
	cfg.HTTP.RespectRobots = true

	p := testPipeline(t, cfg)
	if _, err := p.ScanURL(context.Background(), server.URL+"/article"); err == nil {
		t.Error("Expected robots.txt denial to fail the scan")
	}
}

func TestAnalyzeText_Passthrough(t *testing.T) {
	p := testPipeline(t, testConfig(t))

	if p.AnalyzeText("short") != nil {
		t.Error("Expected nil for short text")
	}
	result := p.AnalyzeText("breaking news about a shocking discovery")
	if result == nil {
		t.Fatal("Expected analysis")
	}
	if m := result.Indicator("sensational"); m == nil || m.Count != 2 {
		t.Errorf("Expected 2 sensational hits (breaking, shocking), got %+v", m)
	}
}
