// Package pipeline orchestrates URL scans: fetch the page, extract its
// visible text, score it, and render the report.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/credo-scan/credo/internal/cache"
	"github.com/credo-scan/credo/internal/detect"
	"github.com/credo-scan/credo/internal/extract"
	"github.com/credo-scan/credo/internal/llm"
	"github.com/credo-scan/credo/internal/model"
	"github.com/credo-scan/credo/internal/util"
	"github.com/credo-scan/credo/internal/validate"
)

// Pipeline wires the fetcher, detector and renderer together
type Pipeline struct {
	fetcher    *Fetcher
	detector   *detect.Detector
	classifier *validate.AuthorityClassifier
	robots     *util.RobotsChecker
	pageCache  cache.Cache
	summarizer *llm.Summarizer // nil when disabled
	renderer   *Renderer
	config     *model.Config
}

// NewPipeline creates a pipeline from configuration and a detector
func NewPipeline(cfg *model.Config, detector *detect.Detector) *Pipeline {
	var summarizer *llm.Summarizer
	if cfg.LLM.Provider != "" {
		s, err := llm.NewSummarizer(llm.ConfigFromModel(cfg.LLM))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to initialize LLM provider: %v\n", err)
		} else {
			summarizer = s
		}
	}

	var pageCache cache.Cache
	if cfg.Cache.Enabled {
		pageCache = cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)
	}

	var robots *util.RobotsChecker
	if cfg.HTTP.RespectRobots {
		robots = util.NewRobotsChecker(cfg.HTTP.UserAgent, 10*time.Second)
	}

	return &Pipeline{
		fetcher: NewFetcher(cfg.HTTP.Timeout, cfg.HTTP.UserAgent, cfg.HTTP.MaxBodyBytes,
			cfg.HTTP.InsecureTLS, cfg.HTTP.HTTPProxy, cfg.HTTP.HTTPSProxy, cfg.HTTP.NoProxy),
		detector:   detector,
		classifier: validate.NewAuthorityClassifier(&cfg.Authority),
		robots:     robots,
		pageCache:  pageCache,
		summarizer: summarizer,
		renderer:   NewRenderer(cfg.Output.IncludeFooter),
		config:     cfg,
	}
}

// ScanResult contains the complete scan result
type ScanResult struct {
	Report *model.Report
}

// AnalyzeText scores raw text directly, without any fetching.
// A nil result means the input was too short to analyze.
func (p *Pipeline) AnalyzeText(text string) *model.Analysis {
	return p.detector.Analyze(text)
}

// ScanURL fetches a page, scores its visible text, and builds a report
func (p *Pipeline) ScanURL(ctx context.Context, url string) (*ScanResult, error) {
	if p.robots != nil {
		if !p.robots.IsAllowed(ctx, url) {
			return nil, fmt.Errorf("robots.txt disallows fetching %s", url)
		}
	}

	fetchResult, err := p.fetchCached(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}

	text, err := extract.VisibleText(fetchResult.HTML)
	if err != nil {
		return nil, fmt.Errorf("extract text: %w", err)
	}

	subject := extract.Title(fetchResult.HTML)
	if subject == "" {
		subject = fetchResult.Subject
	}

	report := &model.Report{
		Subject:    subject,
		SourceURL:  fetchResult.FinalURL,
		FetchedAt:  time.Now().UTC(),
		FetchMeta:  fetchResult.Meta,
		Authority:  p.classifier.Classify(fetchResult.FinalURL),
		TextLength: len(text),
		Analysis:   p.detector.Analyze(text),
	}

	// LLM summary comes last and never affects the analysis
	if p.summarizer != nil && p.summarizer.IsEnabled() && report.Analysis != nil {
		summary, err := p.summarizer.Summarize(ctx, report.Subject, report.Analysis)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: LLM summary generation failed: %v\n", err)
		} else if summary != nil {
			report.LLM = summary
		}
	}

	return &ScanResult{Report: report}, nil
}

// fetchCached serves the page from cache when possible
func (p *Pipeline) fetchCached(ctx context.Context, url string) (*FetchResult, error) {
	if p.pageCache == nil {
		return p.fetcher.FetchWithRetry(ctx, url)
	}

	key := cache.Key(url)
	if data, found := p.pageCache.Get(key); found {
		var cached FetchResult
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
		// Corrupt entry: drop it and refetch
		_ = p.pageCache.Delete(key)
	}

	result, err := p.fetcher.FetchWithRetry(ctx, url)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(result); err == nil {
		_ = p.pageCache.Set(key, data, 0)
	}

	return result, nil
}

// RenderReport renders a scan report to the configured outputs
func (p *Pipeline) RenderReport(report *model.Report, jsonPath, mdPath string, verbose bool) error {
	if jsonPath != "" {
		if err := p.renderer.RenderJSON(report, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote JSON: %s\n", jsonPath)
		}
	}

	if mdPath != "" {
		if err := p.renderer.RenderMarkdown(report, mdPath); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote Markdown: %s\n", mdPath)
		}
	}

	p.renderer.RenderSummary(os.Stdout, report)
	return nil
}

// Renderer returns the pipeline's renderer for direct text analyses
func (p *Pipeline) Renderer() *Renderer {
	return p.renderer
}
