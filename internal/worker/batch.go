package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/psharma/contractguard/internal/model"
	"github.com/psharma/contractguard/internal/pipeline"
)

// Analyzer analyzes contract text into a report
type Analyzer interface {
	Analyze(ctx context.Context, text, document string) *model.Report
}

// AnalyzeJob analyzes a single contract file
type AnalyzeJob struct {
	Path     string
	Analyzer Analyzer
}

// Execute reads the file and runs the analysis
func (j *AnalyzeJob) Execute(ctx context.Context) Result {
	text, err := pipeline.ReadContract(j.Path)
	if err != nil {
		return &FileResult{Path: j.Path, Error: err}
	}

	return &FileResult{
		Path:   j.Path,
		Report: j.Analyzer.Analyze(ctx, text, filepath.Base(j.Path)),
	}
}

// FileResult is the outcome of analyzing one contract file
type FileResult struct {
	Path   string
	Report *model.Report
	Error  error
}

// GetError returns the error from the file result
func (r *FileResult) GetError() error {
	return r.Error
}

// BatchProcessor analyzes multiple contract files concurrently
type BatchProcessor struct {
	analyzer    Analyzer
	concurrency int
}

// NewBatchProcessor creates a new batch processor
func NewBatchProcessor(analyzer Analyzer, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		analyzer:    analyzer,
		concurrency: concurrency,
	}
}

// ProcessFiles analyzes the given files concurrently. Results are sorted by
// path so batch output is stable regardless of completion order.
func (b *BatchProcessor) ProcessFiles(ctx context.Context, paths []string) []*FileResult {
	if len(paths) == 0 {
		return []*FileResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	for _, path := range paths {
		pool.Submit(&AnalyzeJob{
			Path:     path,
			Analyzer: b.analyzer,
		})
	}

	results := pool.Wait()

	fileResults := make([]*FileResult, len(results))
	for i, result := range results {
		fileResults[i] = result.(*FileResult)
	}
	sort.Slice(fileResults, func(i, j int) bool {
		return fileResults[i].Path < fileResults[j].Path
	})

	return fileResults
}

// ProcessManifest reads file paths from a manifest and analyzes them
func (b *BatchProcessor) ProcessManifest(ctx context.Context, manifestPath string) ([]*FileResult, error) {
	paths, err := ReadPathsFromFile(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	return b.ProcessFiles(ctx, paths), nil
}

// ReadPathsFromFile reads file paths from a manifest, one per line.
// Blank lines and # comments are skipped and duplicates dropped.
func ReadPathsFromFile(manifestPath string) ([]string, error) {
	file, err := os.Open(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("open manifest: %w", err)
	}
	defer func() { _ = file.Close() }()

	var paths []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if !seen[line] {
			seen[line] = true
			paths = append(paths, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan manifest: %w", err)
	}

	return paths, nil
}
