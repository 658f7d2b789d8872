package execution

import (
	"context"
	"time"

	"okc/internal/domain"
)

// Executor checks fixture files and returns their results
type Executor interface {
	Check(ctx context.Context, files []string) ([]domain.CheckResult, time.Duration, error)
}
