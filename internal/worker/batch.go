package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/zainab-06-p/linkscout/internal/model"
)

// Analyzer analyzes a single URL and produces a report.
type Analyzer interface {
	AnalyzeURL(ctx context.Context, url string) (*model.Report, error)
}

// AnalyzeJob represents a URL analysis job.
type AnalyzeJob struct {
	Ctx      context.Context
	URL      string
	Analyzer Analyzer
}

// Execute runs the analysis for the job's URL.
func (j *AnalyzeJob) Execute(ctx context.Context) Result {
	jobCtx := j.Ctx
	if jobCtx == nil {
		jobCtx = ctx
	}
	report, err := j.Analyzer.AnalyzeURL(jobCtx, j.URL)
	return &AnalyzeResult{
		URL:    j.URL,
		Report: report,
		Error:  err,
	}
}

// AnalyzeResult represents the result of an analysis job.
type AnalyzeResult struct {
	URL    string
	Report *model.Report
	Error  error
}

// GetError returns the error from the analysis result.
func (r *AnalyzeResult) GetError() error {
	return r.Error
}

// BatchProcessor analyzes multiple URLs concurrently.
type BatchProcessor struct {
	analyzer    Analyzer
	concurrency int
}

// NewBatchProcessor creates a new batch processor.
func NewBatchProcessor(analyzer Analyzer, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		analyzer:    analyzer,
		concurrency: concurrency,
	}
}

// ProcessURLs analyzes multiple URLs concurrently.
func (b *BatchProcessor) ProcessURLs(ctx context.Context, urls []string) []*AnalyzeResult {
	if len(urls) == 0 {
		return []*AnalyzeResult{}
	}

	pool := NewPoolSize(b.concurrency, len(urls))
	pool.Start()

	for _, url := range urls {
		pool.Submit(&AnalyzeJob{
			Ctx:      ctx,
			URL:      url,
			Analyzer: b.analyzer,
		})
	}

	results := pool.Wait()

	analyzeResults := make([]*AnalyzeResult, len(results))
	for i, result := range results {
		analyzeResults[i] = result.(*AnalyzeResult)
	}

	return analyzeResults
}

// ProcessFile reads URLs from a file and analyzes them concurrently.
func (b *BatchProcessor) ProcessFile(ctx context.Context, filePath string) ([]*AnalyzeResult, error) {
	urls, err := ReadURLsFromFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read URLs: %w", err)
	}

	return b.ProcessURLs(ctx, urls), nil
}

// ReadURLsFromFile reads URLs from a file (one per line)
func ReadURLsFromFile(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var urls []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Deduplicate URLs
		if !seen[line] {
			seen[line] = true
			urls = append(urls, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return urls, nil
}
