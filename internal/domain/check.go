package domain

import "time"

// CheckResult is the outcome of validating one fixture file.
type CheckResult struct {
	Path     string        // Fixture file that was checked
	Tests    int           // Number of tests decoded
	Cases    int           // Number of test cases decoded
	Locked   int           // Number of locked test cases
	Points   float64       // Sum of the tests' points
	Err      error         // Load or round-trip failure
	Duration time.Duration // Time taken to check the file
}

// Success reports whether the file loaded and round-tripped cleanly.
func (r CheckResult) Success() bool {
	return r.Err == nil
}
