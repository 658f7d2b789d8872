package ui

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"okc/internal/config"
	"okc/internal/domain"
)

// Formatter formats and displays fixture listings and check summaries
type Formatter struct {
	config *config.Config
	out    io.Writer
}

// NewFormatter creates a new Formatter writing to color.Output
func NewFormatter(cfg *config.Config) *Formatter {
	return &Formatter{
		config: cfg,
		out:    color.Output,
	}
}

// SetOutput redirects the formatter's output
func (f *Formatter) SetOutput(w io.Writer) {
	f.out = w
}

// relPath returns path relative to the project for cleaner display
func (f *Formatter) relPath(path string) string {
	rel, err := filepath.Rel(f.config.ProjectPath, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}

// PrintTests prints the given tests of an assignment as a tree, optionally
// with their suites and cases.
func (f *Formatter) PrintTests(path string, assignment *domain.Assignment, tests []*domain.Test, showCases bool) {
	header := f.relPath(path)
	if assignment.Name != "" {
		header = fmt.Sprintf("%s (%s)", header, assignment.Name)
	}
	fmt.Fprintln(f.out, color.CyanString("%s", header))

	if len(tests) == 0 {
		fmt.Fprintf(f.out, "└── %s\n", color.YellowString("(no tests)"))
		return
	}

	for i, test := range tests {
		isLastTest := i == len(tests)-1
		branch, indent := "├── ", "│   "
		if isLastTest {
			branch, indent = "└── ", "    "
		}

		name := color.YellowString(test.Name())
		if len(test.Names) > 1 {
			name += color.HiBlackString(" (%s)", strings.Join(test.Names[1:], ", "))
		}
		fmt.Fprintf(f.out, "%s%s  %s\n", branch, name, f.testStats(test))

		if !showCases {
			continue
		}
		suites := test.Suites()
		for s, suite := range suites {
			isLastSuite := s == len(suites)-1
			suiteBranch, suiteIndent := "├── ", "│   "
			if isLastSuite {
				suiteBranch, suiteIndent = "└── ", "    "
			}
			fmt.Fprintf(f.out, "%s%ssuite %d\n", indent, suiteBranch, s+1)

			for c, tc := range suite {
				caseBranch := "├── "
				if c == len(suite)-1 {
					caseBranch = "└── "
				}
				fmt.Fprintf(f.out, "%s%s%s%s\n", indent, suiteIndent, caseBranch, f.caseLine(c, tc))
			}
		}
	}
}

func (f *Formatter) testStats(test *domain.Test) string {
	stats := fmt.Sprintf("%s pts, %d cases", FormatPoints(test.Points()), test.CountCases())
	if locked := test.CountLocked(); locked > 0 {
		return stats + ", " + color.RedString("%d locked", locked)
	}
	return stats + ", " + color.GreenString("0 locked")
}

func (f *Formatter) caseLine(index int, tc domain.Case) string {
	marker := color.GreenString("unlocked")
	if tc.IsLocked() {
		marker = color.RedString("locked")
	}
	return fmt.Sprintf("case %d [%s] %s %s", index+1, tc.Type(), marker, FirstLine(tc.Input()))
}

// PrintCheckSummary prints a table of check results followed by the failures
func (f *Formatter) PrintCheckSummary(results []domain.CheckResult, duration time.Duration, workers int) {
	var valid, invalid, tests, cases, locked int
	for _, r := range results {
		if r.Success() {
			valid++
		} else {
			invalid++
		}
		tests += r.Tests
		cases += r.Cases
		locked += r.Locked
	}

	fmt.Fprintln(f.out)
	fmt.Fprintln(f.out, color.CyanString("╔═══════════════════════════════════════════════════════════════╗"))
	fmt.Fprintln(f.out, color.CyanString("║                    Fixture Check Statistics                   ║"))
	fmt.Fprintln(f.out, color.CyanString("╚═══════════════════════════════════════════════════════════════╝"))

	rows := []struct {
		label string
		value string
		paint func(format string, a ...interface{}) string
	}{
		{"Fixture Files", strconv.Itoa(len(results)), color.WhiteString},
		{"Valid Files", strconv.Itoa(valid), color.GreenString},
		{"Invalid Files", strconv.Itoa(invalid), color.RedString},
		{"Tests", strconv.Itoa(tests), color.WhiteString},
		{"Test Cases", strconv.Itoa(cases), color.WhiteString},
		{"Locked Cases", strconv.Itoa(locked), color.YellowString},
		{"Duration", fmt.Sprintf("%.2fs", duration.Seconds()), color.WhiteString},
		{"Workers", strconv.Itoa(workers), color.WhiteString},
	}

	fmt.Fprintln(f.out, "┌─────────────────────────────────┬─────────────────────────────┐")
	for i, row := range rows {
		fmt.Fprintf(f.out, "│ %-31s │ %s │\n", row.label, row.paint("%-27s", row.value))
		if i < len(rows)-1 {
			fmt.Fprintln(f.out, "├─────────────────────────────────┼─────────────────────────────┤")
		}
	}
	fmt.Fprintln(f.out, "└─────────────────────────────────┴─────────────────────────────┘")

	fmt.Fprintln(f.out)
	if invalid == 0 {
		fmt.Fprintln(f.out, color.GreenString("✓ All fixtures are valid!"))
		return
	}
	fmt.Fprintln(f.out, color.RedString("✗ %d fixture file(s) are invalid", invalid))
	for _, r := range results {
		if !r.Success() {
			fmt.Fprintf(f.out, "  %s %s\n", color.YellowString(f.relPath(r.Path)), color.RedString("%v", r.Err))
		}
	}
}

// FormatPoints renders points without a trailing ".0" for whole numbers
func FormatPoints(points float64) string {
	return strconv.FormatFloat(points, 'f', -1, 64)
}

// FirstLine returns the first non-blank line of s, marking truncation with "…"
func FirstLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	if len(lines) == 0 {
		return ""
	}
	if len(lines) > 1 {
		return lines[0] + " …"
	}
	return lines[0]
}
