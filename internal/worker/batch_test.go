package worker

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/psharma/contractguard/internal/model"
)

// stubAnalyzer returns a fixed clean report for any input
type stubAnalyzer struct{}

func (s *stubAnalyzer) Analyze(ctx context.Context, text, document string) *model.Report {
	return &model.Report{
		Document:   document,
		AnalyzedAt: time.Now().UTC(),
		Language:   model.LangEnglish,
		Score:      model.ScoreReport{Score: 100, Grade: "A+", TotalClauses: 1},
	}
}

func writeContract(t *testing.T, dir, name, text string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestBatchProcessor_ProcessFiles(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writeContract(t, dir, "b.txt", "Payment is due on receipt of invoice."),
		writeContract(t, dir, "a.txt", "Either party may terminate with notice."),
		writeContract(t, dir, "c.txt", "Notices go to the registered address."),
	}

	results := NewBatchProcessor(&stubAnalyzer{}, 2).ProcessFiles(context.Background(), paths)

	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	// Stable path order regardless of completion order
	for i := 1; i < len(results); i++ {
		if results[i-1].Path > results[i].Path {
			t.Errorf("results not sorted: %q before %q", results[i-1].Path, results[i].Path)
		}
	}
	for _, r := range results {
		if r.Error != nil {
			t.Errorf("unexpected error for %s: %v", r.Path, r.Error)
		}
		if r.Report == nil || r.Report.Document != filepath.Base(r.Path) {
			t.Errorf("report for %s carries wrong document name", r.Path)
		}
	}
}

func TestBatchProcessor_UnreadableFile(t *testing.T) {
	dir := t.TempDir()
	good := writeContract(t, dir, "good.txt", "Payment is due on receipt.")
	missing := filepath.Join(dir, "missing.txt")

	results := NewBatchProcessor(&stubAnalyzer{}, 2).ProcessFiles(context.Background(), []string{good, missing})

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	byPath := map[string]*FileResult{}
	for _, r := range results {
		byPath[r.Path] = r
	}
	if byPath[good].GetError() != nil {
		t.Errorf("readable file failed: %v", byPath[good].Error)
	}
	if byPath[missing].GetError() == nil {
		t.Error("expected an error for the missing file")
	}
	if byPath[missing].Report != nil {
		t.Error("failed file should carry no report")
	}
}

func TestBatchProcessor_NoFiles(t *testing.T) {
	results := NewBatchProcessor(&stubAnalyzer{}, 2).ProcessFiles(context.Background(), nil)
	if len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
}

func TestReadPathsFromFile(t *testing.T) {
	dir := t.TempDir()
	manifest := writeContract(t, dir, "manifest.txt", `# contracts to review
contracts/msa.txt

contracts/nda.txt
contracts/msa.txt
`)

	paths, err := ReadPathsFromFile(manifest)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"contracts/msa.txt", "contracts/nda.txt"}
	if len(paths) != len(want) {
		t.Fatalf("expected %d paths, got %v", len(want), paths)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Errorf("path %d: expected %q, got %q", i, want[i], paths[i])
		}
	}
}

func TestReadPathsFromFile_Missing(t *testing.T) {
	if _, err := ReadPathsFromFile(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Error("expected an error for a missing manifest")
	}
}

func TestProcessManifest(t *testing.T) {
	dir := t.TempDir()
	contract := writeContract(t, dir, "msa.txt", "Payment is due in advance of service.")
	manifest := writeContract(t, dir, "manifest.txt", contract+"\n")

	results, err := NewBatchProcessor(&stubAnalyzer{}, 1).ProcessManifest(context.Background(), manifest)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 || results[0].Error != nil {
		t.Fatalf("expected one clean result, got %+v", results)
	}
}
