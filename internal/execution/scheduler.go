package execution

import (
	"os"
	"sort"
)

// Scheduler distributes fixture files across workers
type Scheduler interface {
	Schedule(files []string, workerCount int) [][]string
}

// RoundRobinScheduler distributes fixture files evenly across workers
type RoundRobinScheduler struct{}

// NewRoundRobinScheduler creates a new RoundRobinScheduler
func NewRoundRobinScheduler() *RoundRobinScheduler {
	return &RoundRobinScheduler{}
}

// Schedule distributes files evenly across workers using round-robin
func (s *RoundRobinScheduler) Schedule(files []string, workerCount int) [][]string {
	if workerCount <= 0 {
		workerCount = 1
	}

	distribution := make([][]string, workerCount)
	for i := range distribution {
		distribution[i] = make([]string, 0)
	}

	for i, file := range files {
		workerIndex := i % workerCount
		distribution[workerIndex] = append(distribution[workerIndex], file)
	}

	return distribution
}

// SizeBalancedScheduler assigns the largest fixture files first, each to the
// worker with the fewest bytes so far. Files that cannot be stat'ed count as
// empty; the checker reports them.
type SizeBalancedScheduler struct {
	sizeOf func(path string) int64
}

// NewSizeBalancedScheduler creates a scheduler weighing files by their size on disk
func NewSizeBalancedScheduler() *SizeBalancedScheduler {
	return &SizeBalancedScheduler{sizeOf: fileSize}
}

func fileSize(path string) int64 {
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return info.Size()
}

// Schedule distributes files so every worker gets a similar number of bytes
func (s *SizeBalancedScheduler) Schedule(files []string, workerCount int) [][]string {
	if workerCount <= 0 {
		workerCount = 1
	}

	sizes := make(map[string]int64, len(files))
	for _, file := range files {
		sizes[file] = s.sizeOf(file)
	}
	ordered := make([]string, len(files))
	copy(ordered, files)
	sort.SliceStable(ordered, func(i, j int) bool {
		return sizes[ordered[i]] > sizes[ordered[j]]
	})

	distribution := make([][]string, workerCount)
	loads := make([]int64, workerCount)
	for i := range distribution {
		distribution[i] = make([]string, 0)
	}
	for _, file := range ordered {
		lightest := 0
		for w := 1; w < workerCount; w++ {
			if loads[w] < loads[lightest] {
				lightest = w
			}
		}
		distribution[lightest] = append(distribution[lightest], file)
		loads[lightest] += sizes[file]
	}

	return distribution
}
