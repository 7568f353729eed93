package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/credo-scan/credo/internal/catalog"
	"github.com/credo-scan/credo/internal/detect"
	"github.com/credo-scan/credo/internal/model"
	"github.com/credo-scan/credo/internal/pipeline"
)

var (
	outJSON     string
	outMD       string
	timeout     time.Duration
	userAgent   string
	maxBytes    int64
	noCache     bool
	noRobots    bool
	noFooter    bool
	insecureTLS bool
	httpProxy   string
	httpsProxy  string
	scanCatalog string
	llmEnabled  bool
	llmModel    string
)

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan <url>",
	Short: "Fetch a web page and score its visible text",
	Long: `Scan fetches a single web page and:
- Extracts the visible text (scripts, styles and frames excluded)
- Scores it against the rule catalog
- Classifies the source domain authority (informational only)
- Generates transparent, explainable reports

Example:
  credo scan https://example.com/article
  credo scan https://example.com --json report.json --md report.md
  credo scan https://example.com --llm --llm-model gpt-4o-mini`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)

	// Output flags
	scanCmd.Flags().StringVar(&outJSON, "json", "report.json", "output JSON path")
	scanCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")

	// HTTP flags
	scanCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall scan timeout")
	scanCmd.Flags().StringVar(&userAgent, "ua", "Credo/0.1 (+https://github.com/credo-scan/credo)", "HTTP User-Agent")
	scanCmd.Flags().Int64Var(&maxBytes, "max-bytes", 2_000_000, "max response bytes to read")
	scanCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable cache (force fresh fetch)")
	scanCmd.Flags().BoolVar(&noRobots, "no-robots", false, "skip robots.txt check")
	scanCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")
	scanCmd.Flags().BoolVar(&insecureTLS, "insecure", false, "skip TLS certificate verification (use for self-signed certs)")
	scanCmd.Flags().StringVar(&httpProxy, "http-proxy", "", "HTTP proxy URL (overrides HTTP_PROXY env var)")
	scanCmd.Flags().StringVar(&httpsProxy, "https-proxy", "", "HTTPS proxy URL (overrides HTTPS_PROXY env var)")

	// Catalog flag
	scanCmd.Flags().StringVar(&scanCatalog, "catalog", "", "custom rule catalog YAML (default: built-in)")

	// LLM flags
	scanCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM summary generation (OpenAI)")
	scanCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

func runScan(cmd *cobra.Command, args []string) error {
	url := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if verbose {
		fmt.Fprintf(os.Stderr, "Scanning: %s\n", url)
		fmt.Fprintf(os.Stderr, "Timeout: %v\n", timeout)
		fmt.Fprintf(os.Stderr, "Cache: %v\n", !noCache)
		fmt.Fprintln(os.Stderr)
	}

	cfg, err := buildScanConfig()
	if err != nil {
		return err
	}

	detector, err := buildDetector(scanCatalog)
	if err != nil {
		return err
	}

	p := pipeline.NewPipeline(cfg, detector)

	if verbose {
		fmt.Fprintf(os.Stderr, "Fetching HTML...\n")
	}

	result, err := p.ScanURL(ctx, url)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	if verbose {
		report := result.Report
		fmt.Fprintf(os.Stderr, "Extracted %d characters of visible text\n", report.TextLength)
		if report.Analysis != nil {
			fmt.Fprintf(os.Stderr, "Score: %.2f/100 (%s)\n", report.Analysis.Score, report.Analysis.Verdict.Label)
		} else {
			fmt.Fprintf(os.Stderr, "Too little text to score\n")
		}
		if report.LLM != nil && report.LLM.Enabled {
			fmt.Fprintf(os.Stderr, "Generated LLM summary using %s/%s\n", report.LLM.Provider, report.LLM.Model)
		}
		fmt.Fprintln(os.Stderr)
	}

	if err := p.RenderReport(result.Report, outJSON, outMD, verbose); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	return nil
}

// buildScanConfig assembles configuration from flags
func buildScanConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	cfg.HTTP.Timeout = timeout
	cfg.HTTP.UserAgent = userAgent
	cfg.HTTP.MaxBodyBytes = maxBytes
	cfg.HTTP.InsecureTLS = insecureTLS
	cfg.HTTP.HTTPProxy = httpProxy
	cfg.HTTP.HTTPSProxy = httpsProxy
	cfg.HTTP.RespectRobots = !noRobots
	cfg.Cache.Enabled = !noCache
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter

	if llmEnabled {
		cfg.LLM.Provider = "openai"
		cfg.LLM.Model = llmModel
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.LLM.APIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
		if baseURL := os.Getenv("OPENAI_BASE_URL"); baseURL != "" {
			cfg.LLM.BaseURL = baseURL
		}
	}

	return cfg, nil
}

// buildDetector compiles the detector from the catalog path (or built-in)
func buildDetector(catalogPath string) (*detect.Detector, error) {
	cat, err := catalog.LoadOrDefault(catalogPath)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	detector, err := detect.New(cat)
	if err != nil {
		return nil, fmt.Errorf("build detector: %w", err)
	}

	return detector, nil
}
