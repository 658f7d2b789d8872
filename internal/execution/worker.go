package execution

import (
	"context"
	"sort"
	"sync"
	"time"

	"okc/internal/config"
	"okc/internal/domain"
	"okc/internal/ui"
)

// WorkerPool checks fixture files in parallel
type WorkerPool struct {
	config    *config.Config
	checker   *Checker
	scheduler Scheduler
	progress  *ui.ProgressBar
}

// NewWorkerPool creates a new WorkerPool
func NewWorkerPool(cfg *config.Config, checker *Checker, scheduler Scheduler) *WorkerPool {
	return &WorkerPool{
		config:    cfg,
		checker:   checker,
		scheduler: scheduler,
	}
}

// SetProgress sets the progress bar for the worker pool
func (wp *WorkerPool) SetProgress(progress *ui.ProgressBar) {
	wp.progress = progress
}

// Check validates every file. With config.Flags.FailFast set, workers stop
// picking up new files after the first invalid one. Results are sorted by path.
func (wp *WorkerPool) Check(parent context.Context, files []string) ([]domain.CheckResult, time.Duration, error) {
	if len(files) == 0 {
		return nil, 0, nil
	}

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	workerCount := wp.config.Workers
	if workerCount <= 0 {
		workerCount = 1
	}
	if workerCount > len(files) {
		workerCount = len(files)
	}
	batches := wp.scheduler.Schedule(files, workerCount)

	results := make(chan domain.CheckResult, len(files))
	var mu sync.Mutex
	var valid, invalid int
	startTime := time.Now()

	var wg sync.WaitGroup
	for _, batch := range batches {
		wg.Add(1)
		go func(batch []string) {
			defer wg.Done()
			for _, path := range batch {
				if ctx.Err() != nil {
					return
				}
				result := wp.checker.Check(path)
				results <- result

				mu.Lock()
				if result.Success() {
					valid++
				} else {
					invalid++
					if wp.config.Flags.FailFast {
						cancel()
					}
				}
				if wp.progress != nil {
					wp.progress.Update(valid, invalid)
				}
				mu.Unlock()
			}
		}(batch)
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	var allResults []domain.CheckResult
	for result := range results {
		allResults = append(allResults, result)
	}
	if wp.progress != nil {
		wp.progress.Finish()
	}
	sort.Slice(allResults, func(i, j int) bool {
		return allResults[i].Path < allResults[j].Path
	})
	if err := parent.Err(); err != nil {
		return allResults, time.Since(startTime), err
	}
	return allResults, time.Since(startTime), nil
}
