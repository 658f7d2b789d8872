package execution

import (
	"bytes"
	"fmt"
	"time"

	"okc/internal/domain"
	"okc/internal/storage"
)

// Checker validates a single fixture file
type Checker struct {
	registry *domain.Registry
}

// NewChecker creates a new Checker decoding cases through registry
func NewChecker(registry *domain.Registry) *Checker {
	return &Checker{registry: registry}
}

// Check loads the fixture at path and verifies that every test survives a
// serialize, deserialize, serialize round trip unchanged.
func (c *Checker) Check(path string) (result domain.CheckResult) {
	start := time.Now()
	result = domain.CheckResult{Path: path}
	defer func() {
		result.Duration = time.Since(start)
	}()

	st, err := storage.ForPath(path, c.registry)
	if err != nil {
		result.Err = err
		return result
	}
	assignment, err := st.Load(path)
	if err != nil {
		result.Err = err
		return result
	}

	for _, test := range assignment.Tests {
		if err := c.roundTrip(test, assignment.Info); err != nil {
			result.Err = err
			return result
		}
	}

	result.Tests = len(assignment.Tests)
	result.Cases = assignment.CountCases()
	result.Locked = assignment.CountLocked()
	result.Points = assignment.Points()
	return result
}

func (c *Checker) roundTrip(test *domain.Test, info domain.AssignmentInfo) error {
	first, err := test.Serialize()
	if err != nil {
		return err
	}
	decoded, err := domain.DeserializeTest(first, info, c.registry)
	if err != nil {
		return fmt.Errorf("re-read test %s: %w", test.Name(), err)
	}
	second, err := decoded.Serialize()
	if err != nil {
		return err
	}
	if !bytes.Equal(first, second) {
		return fmt.Errorf("test %s does not round-trip", test.Name())
	}
	return nil
}
