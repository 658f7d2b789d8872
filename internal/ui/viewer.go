package ui

import "okc/internal/domain"

// Viewer displays an assignment's test cases in an interactive TUI
type Viewer interface {
	View(path string, assignment *domain.Assignment) error
}
