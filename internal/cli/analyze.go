package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/credo-scan/credo/internal/catalog"
	"github.com/credo-scan/credo/internal/detect"
	"github.com/credo-scan/credo/internal/pipeline"
)

var (
	analyzeFile    string
	analyzeJSON    string
	analyzeCatalog string
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze [text]",
	Short: "Score a piece of text for fake news likelihood",
	Long: `Analyze scores raw text with the rule catalog:
- Weighted red-flag phrase matching (sensationalism, clickbait, ...)
- Credibility markers (attribution, sourcing, dates)
- Surface style statistics (capitalization, punctuation)

Text comes from the argument, --file, or stdin.

Example:
  credo analyze "SHOCKING!!! You won't believe this one weird trick"
  credo analyze --file article.txt --json result.json
  cat article.txt | credo analyze`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVar(&analyzeFile, "file", "", "read text from file instead of argument")
	analyzeCmd.Flags().StringVar(&analyzeJSON, "json", "", "output JSON path (optional)")
	analyzeCmd.Flags().StringVar(&analyzeCatalog, "catalog", "", "custom rule catalog YAML (default: built-in)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	text, err := readAnalyzeInput(args)
	if err != nil {
		return err
	}

	cat, err := catalog.LoadOrDefault(analyzeCatalog)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	detector, err := detect.New(cat)
	if err != nil {
		return fmt.Errorf("build detector: %w", err)
	}

	analysis := detector.Analyze(text)
	if analysis == nil {
		return fmt.Errorf("text too short to analyze (need at least 10 characters)")
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Analyzed %d characters\n", len(text))
		fmt.Fprintf(os.Stderr, "Score: %.2f/100 (%s)\n\n", analysis.Score, analysis.Verdict.Label)
	}

	renderer := pipeline.NewRenderer(false)
	if analyzeJSON != "" {
		if err := renderer.RenderAnalysisJSON(analysis, analyzeJSON); err != nil {
			return fmt.Errorf("write JSON: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "Wrote %s\n", analyzeJSON)
		}
	}

	renderer.RenderAnalysisSummary(os.Stdout, analysis)

	return nil
}

// readAnalyzeInput resolves the text source: argument, --file, or stdin
func readAnalyzeInput(args []string) (string, error) {
	if analyzeFile != "" {
		data, err := os.ReadFile(analyzeFile)
		if err != nil {
			return "", fmt.Errorf("read file: %w", err)
		}
		return string(data), nil
	}

	if len(args) == 1 {
		return args[0], nil
	}

	// Fall back to stdin when piped
	stat, err := os.Stdin.Stat()
	if err == nil && (stat.Mode()&os.ModeCharDevice) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		if strings.TrimSpace(string(data)) != "" {
			return string(data), nil
		}
	}

	return "", fmt.Errorf("no input: pass text as an argument, use --file, or pipe to stdin")
}
