package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/credo-scan/credo/internal/pipeline"
	"github.com/credo-scan/credo/internal/worker"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
	requestsPerS float64
	burstSize    int
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Score multiple inputs from a file in parallel",
	Long: `Batch processes multiple inputs concurrently:
- Read inputs from a file (one per line, # comments skipped)
- Each input is a URL to scan or a local text file to score
- Fetches are rate limited per host
- Generate an individual report for each input

Example:
  credo batch inputs.txt
  credo batch inputs.txt --concurrency 10 --output-dir ./reports
  credo batch inputs.txt --rps 1 --timeout 5m`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./credo-reports", "output directory for reports")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")
	batchCmd.Flags().Float64Var(&requestsPerS, "rps", 2, "max requests per second per host")
	batchCmd.Flags().IntVar(&burstSize, "burst", 5, "rate limit burst per host")

	// Shared with scan
	batchCmd.Flags().DurationVar(&timeout, "scan-timeout", 30*time.Second, "timeout for individual scans")
	batchCmd.Flags().StringVar(&userAgent, "ua", "Credo/0.1 (+https://github.com/credo-scan/credo)", "HTTP User-Agent")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable cache (force fresh fetch)")
	batchCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")
	batchCmd.Flags().StringVar(&httpProxy, "http-proxy", "", "HTTP proxy URL (overrides HTTP_PROXY env var)")
	batchCmd.Flags().StringVar(&httpsProxy, "https-proxy", "", "HTTPS proxy URL (overrides HTTPS_PROXY env var)")
	batchCmd.Flags().StringVar(&scanCatalog, "catalog", "", "custom rule catalog YAML (default: built-in)")

	// LLM flags
	batchCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM summary generation (OpenAI)")
	batchCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	fmt.Fprintf(os.Stderr, "Batch input: %s\n", file)
	fmt.Fprintf(os.Stderr, "Workers: %d, rate: %.1f req/s per host\n", concurrency, requestsPerS)
	fmt.Fprintf(os.Stderr, "Output dir: %s\n\n", outputDir)

	cfg, err := buildScanConfig()
	if err != nil {
		return err
	}
	cfg.Concurrency.Workers = concurrency
	cfg.Concurrency.RequestsPerSec = requestsPerS
	cfg.Concurrency.Burst = burstSize

	detector, err := buildDetector(scanCatalog)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	p := pipeline.NewPipeline(cfg, detector)
	processor := worker.NewBatchProcessor(p, concurrency, requestsPerS, burstSize)

	results, err := processor.ProcessFile(ctx, file)
	if err != nil {
		return fmt.Errorf("process file: %w", err)
	}

	renderer := pipeline.NewRenderer(cfg.Output.IncludeFooter)
	successCount := 0
	failureCount := 0

	for _, result := range results {
		if result.Err != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "FAIL %s: %v\n", result.Input, result.Err)
			continue
		}

		slug := sanitizeFilename(result.Report.Subject)
		jsonPath := filepath.Join(outputDir, slug+".json")
		if err := renderer.RenderJSON(result.Report, jsonPath); err != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "FAIL %s: write JSON: %v\n", result.Input, err)
			continue
		}
		mdPath := filepath.Join(outputDir, slug+".md")
		if err := renderer.RenderMarkdown(result.Report, mdPath); err != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "FAIL %s: write Markdown: %v\n", result.Input, err)
			continue
		}

		successCount++
		if result.Report.Analysis != nil {
			fmt.Fprintf(os.Stderr, "OK   %s (score: %.2f/100)\n", result.Report.Subject, result.Report.Analysis.Score)
		} else {
			fmt.Fprintf(os.Stderr, "OK   %s (too little text to score)\n", result.Report.Subject)
		}
	}

	fmt.Fprintf(os.Stderr, "\nBatch complete: %d total, %d ok, %d failed\n", len(results), successCount, failureCount)
	fmt.Fprintf(os.Stderr, "Reports written to %s\n", outputDir)

	if failureCount > 0 && successCount == 0 {
		return fmt.Errorf("all %d inputs failed", failureCount)
	}
	return nil
}

// sanitizeFilename turns a report subject into a safe file name
func sanitizeFilename(s string) string {
	replacer := strings.NewReplacer(
		"/", "_", "\\", "_", ":", "_", "*", "_", "?", "_",
		"\"", "_", "<", "_", ">", "_", "|", "_", " ", "-",
	)
	s = replacer.Replace(strings.TrimSpace(s))

	if s == "" {
		s = "report"
	}
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}
