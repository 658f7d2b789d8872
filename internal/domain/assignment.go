package domain

// AssignmentInfo is assignment-level metadata handed to case variants during
// deserialization. The core never inspects it.
type AssignmentInfo map[string]any

// Assignment is the collection of tests stored in a single fixture file.
type Assignment struct {
	Name  string
	Info  AssignmentInfo
	Tests []*Test
}

// CountCases returns the number of test cases across all tests.
func (a *Assignment) CountCases() int {
	total := 0
	for _, t := range a.Tests {
		total += t.CountCases()
	}
	return total
}

// CountLocked returns the number of locked test cases across all tests.
func (a *Assignment) CountLocked() int {
	total := 0
	for _, t := range a.Tests {
		total += t.CountLocked()
	}
	return total
}

// Points returns the sum of the tests' points.
func (a *Assignment) Points() float64 {
	var total float64
	for _, t := range a.Tests {
		total += t.Points()
	}
	return total
}
