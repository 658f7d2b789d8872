package textutil

import "github.com/lithammer/dedent"

// Dedent removes the common leading whitespace from every line of s.
// Lines that contain only whitespace are normalized to empty lines.
func Dedent(s string) string {
	if s == "" {
		return s
	}
	return dedent.Dedent(s)
}
