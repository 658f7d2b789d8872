package execution

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"okc/internal/cases"
	"okc/internal/config"
	"okc/internal/domain"
)

const validFixture = `{
  "name": "hw01",
  "tests": [
    {
      "names": ["q1"],
      "suites": [[{"type": "concept", "question": "2+2?", "answer": "4", "locked": false}]]
    },
    {
      "names": ["q2"],
      "points": 3,
      "suites": [
        [{"type": "doctest", "input": ">>> f()", "outputs": [{"answer": "1"}]}],
        [{"type": "doctest", "input": ">>> g()", "outputs": [{"answer": "2"}]}]
      ]
    }
  ]
}`

const invalidFixture = `{"tests": [{"suites": [[{"type": "unknown"}]]}]}`

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
	return dir
}

func TestChecker_Check(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"hw01.json": validFixture,
		"bad.json":  invalidFixture,
		"notes.txt": "not a fixture",
	})
	checker := NewChecker(cases.DefaultRegistry())

	t.Run("valid fixture", func(t *testing.T) {
		result := checker.Check(filepath.Join(dir, "hw01.json"))
		if !result.Success() {
			t.Fatalf("unexpected error: %v", result.Err)
		}
		if result.Tests != 2 || result.Cases != 3 || result.Locked != 2 {
			t.Errorf("unexpected counts: %+v", result)
		}
		if result.Points != 4 {
			t.Errorf("expected 4 points, got %v", result.Points)
		}
	})

	t.Run("unknown case type", func(t *testing.T) {
		result := checker.Check(filepath.Join(dir, "bad.json"))
		if !errors.Is(result.Err, domain.ErrUnknownCaseType) {
			t.Errorf("expected ErrUnknownCaseType, got %v", result.Err)
		}
	})

	t.Run("unsupported extension", func(t *testing.T) {
		result := checker.Check(filepath.Join(dir, "notes.txt"))
		if result.Success() {
			t.Error("expected unsupported file to fail")
		}
	})
}

func TestWorkerPool_Check(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a.json": validFixture,
		"b.json": invalidFixture,
		"c.json": validFixture,
		"d.json": validFixture,
	})
	files := []string{
		filepath.Join(dir, "b.json"),
		filepath.Join(dir, "a.json"),
		filepath.Join(dir, "c.json"),
		filepath.Join(dir, "d.json"),
	}
	checker := NewChecker(cases.DefaultRegistry())

	t.Run("checks all files", func(t *testing.T) {
		cfg := config.New()
		cfg.Workers = 3
		pool := NewWorkerPool(cfg, checker, NewRoundRobinScheduler())

		results, _, err := pool.Check(context.Background(), files)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != 4 {
			t.Fatalf("expected 4 results, got %d", len(results))
		}
		if results[0].Path != files[1] {
			t.Errorf("expected results sorted by path, first is %s", results[0].Path)
		}
		invalid := 0
		for _, r := range results {
			if !r.Success() {
				invalid++
			}
		}
		if invalid != 1 {
			t.Errorf("expected 1 invalid file, got %d", invalid)
		}
	})

	t.Run("fail fast stops after first invalid file", func(t *testing.T) {
		cfg := config.New()
		cfg.Workers = 1
		cfg.Flags.FailFast = true
		pool := NewWorkerPool(cfg, checker, NewRoundRobinScheduler())

		results, _, err := pool.Check(context.Background(), files)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != 1 || results[0].Success() {
			t.Errorf("expected a single invalid result, got %+v", results)
		}
	})

	t.Run("no files", func(t *testing.T) {
		pool := NewWorkerPool(config.New(), checker, NewRoundRobinScheduler())
		results, _, err := pool.Check(context.Background(), nil)
		if err != nil || results != nil {
			t.Errorf("expected no results, got %v, %v", results, err)
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		pool := NewWorkerPool(config.New(), checker, NewRoundRobinScheduler())
		if _, _, err := pool.Check(ctx, files); !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	})
}
