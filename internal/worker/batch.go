package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/credo-scan/credo/internal/model"
	"github.com/credo-scan/credo/internal/pipeline"
)

// Runner scores a single input. The pipeline satisfies this.
type Runner interface {
	ScanURL(ctx context.Context, url string) (*pipeline.ScanResult, error)
	AnalyzeText(text string) *model.Analysis
}

// BatchResult is the outcome for one batch input
type BatchResult struct {
	Input  string
	Report *model.Report
	Err    error
}

// GetError returns the error for this input, if any
func (r *BatchResult) GetError() error {
	return r.Err
}

// batchJob scores one input, which is either a URL or a local text file
type batchJob struct {
	input   string
	runner  Runner
	limiter *Limiter
}

func (j *batchJob) Execute(ctx context.Context) Result {
	if isURL(j.input) {
		return j.scanURL(ctx)
	}
	return j.analyzeFile()
}

func (j *batchJob) scanURL(ctx context.Context) Result {
	if j.limiter != nil {
		if err := j.limiter.Wait(ctx, j.input); err != nil {
			return &BatchResult{Input: j.input, Err: fmt.Errorf("rate limit: %w", err)}
		}
	}

	result, err := j.runner.ScanURL(ctx, j.input)
	if err != nil {
		return &BatchResult{Input: j.input, Err: err}
	}
	return &BatchResult{Input: j.input, Report: result.Report}
}

func (j *batchJob) analyzeFile() Result {
	data, err := os.ReadFile(j.input)
	if err != nil {
		return &BatchResult{Input: j.input, Err: fmt.Errorf("read file: %w", err)}
	}

	text := string(data)
	report := &model.Report{
		Subject:    filepath.Base(j.input),
		FetchedAt:  time.Now().UTC(),
		TextLength: len(text),
		Analysis:   j.runner.AnalyzeText(text),
	}
	return &BatchResult{Input: j.input, Report: report}
}

func isURL(input string) bool {
	return strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://")
}

// BatchProcessor scores a list of inputs concurrently
type BatchProcessor struct {
	runner      Runner
	concurrency int
	limiter     *Limiter
}

// NewBatchProcessor creates a batch processor. URL fetches are
// throttled per host at requestsPerSec/burst.
func NewBatchProcessor(runner Runner, concurrency int, requestsPerSec float64, burst int) *BatchProcessor {
	return &BatchProcessor{
		runner:      runner,
		concurrency: concurrency,
		limiter:     NewLimiter(requestsPerSec, burst),
	}
}

// Process scores all inputs concurrently and returns one result per input
func (b *BatchProcessor) Process(ctx context.Context, inputs []string) []*BatchResult {
	if len(inputs) == 0 {
		return []*BatchResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	for _, input := range inputs {
		pool.Submit(&batchJob{
			input:   input,
			runner:  b.runner,
			limiter: b.limiter,
		})
	}

	results := pool.Wait()

	batchResults := make([]*BatchResult, len(results))
	for i, result := range results {
		batchResults[i] = result.(*BatchResult)
	}

	return batchResults
}

// ProcessFile reads inputs from a file and scores them concurrently
func (b *BatchProcessor) ProcessFile(ctx context.Context, filePath string) ([]*BatchResult, error) {
	inputs, err := ReadInputsFromFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read inputs: %w", err)
	}

	return b.Process(ctx, inputs), nil
}

// ReadInputsFromFile reads one input per line, skipping blank lines
// and # comments, deduplicating while preserving order
func ReadInputsFromFile(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var inputs []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if !seen[line] {
			seen[line] = true
			inputs = append(inputs, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return inputs, nil
}
