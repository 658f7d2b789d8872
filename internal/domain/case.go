package domain

import (
	"encoding/json"
	"fmt"

	"okc/internal/textutil"
)

// DefaultCaseType is the type tag of BaseCase.
const DefaultCaseType = "default"

// Case is a single test case: an input plus its expected answers.
// Concrete variants embed BaseCase and provide Type and Serialize.
type Case interface {
	Type() string
	Input() string
	Outputs() []TestCaseAnswer
	SetOutputs(outputs []TestCaseAnswer)
	IsLocked() bool
	SetLocked(locked bool)
	// Test returns the test owning this case, or nil when the case has not
	// been added to a suite.
	Test() *Test
	SuiteNum() int
	Serialize() (json.RawMessage, error)

	attach(t *Test, suiteNum int)
}

// Status holds the flags of a test case.
type Status struct {
	// Lock is nil when unspecified; an unspecified case is locked.
	Lock *bool
	// Flags carries status keys the core does not interpret.
	Flags map[string]any
}

// Locked returns s with Lock set.
func (s Status) Locked(locked bool) Status {
	s.Lock = &locked
	return s
}

// BaseCase implements the state shared by every case variant.
type BaseCase struct {
	input    string
	outputs  []TestCaseAnswer
	test     *Test
	suiteNum int
	status   Status
}

// NewBaseCase creates a BaseCase. The input is dedented.
func NewBaseCase(input string, outputs []TestCaseAnswer, status Status) BaseCase {
	return BaseCase{
		input:   textutil.Dedent(input),
		outputs: outputs,
		status:  status,
	}
}

func (c *BaseCase) Type() string { return DefaultCaseType }

func (c *BaseCase) Input() string { return c.input }

func (c *BaseCase) Outputs() []TestCaseAnswer { return c.outputs }

// SetOutputs replaces the whole answer list.
func (c *BaseCase) SetOutputs(outputs []TestCaseAnswer) {
	c.outputs = outputs
}

// IsLocked reports whether the answer is withheld from the student.
func (c *BaseCase) IsLocked() bool {
	if c.status.Lock == nil {
		return true
	}
	return *c.status.Lock
}

func (c *BaseCase) SetLocked(locked bool) {
	c.status.Lock = &locked
}

// Status returns a copy of the case status.
func (c *BaseCase) Status() Status { return c.status }

func (c *BaseCase) Test() *Test { return c.test }

func (c *BaseCase) SuiteNum() int { return c.suiteNum }

// Serialize must be provided by the concrete variant.
func (c *BaseCase) Serialize() (json.RawMessage, error) {
	return nil, fmt.Errorf("serialize %s case: %w", DefaultCaseType, ErrNotImplemented)
}

// Deserialize must be provided by the concrete variant.
func (c *BaseCase) Deserialize(caseJSON json.RawMessage, info AssignmentInfo) (Case, error) {
	return nil, fmt.Errorf("deserialize %s case: %w", DefaultCaseType, ErrNotImplemented)
}

func (c *BaseCase) attach(t *Test, suiteNum int) {
	c.test = t
	c.suiteNum = suiteNum
}

// AssertCorrectType checks that caseJSON carries the type tag caseType.
func AssertCorrectType(caseJSON json.RawMessage, caseType string) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(caseJSON, &fields); err != nil {
		return fmt.Errorf("parse case: %w", err)
	}
	raw, ok := fields["type"]
	if !ok {
		return &SerializationError{Expected: caseType, Missing: true}
	}
	var actual string
	if err := json.Unmarshal(raw, &actual); err != nil {
		return &SerializationError{Expected: caseType, Actual: string(raw)}
	}
	if actual != caseType {
		return &SerializationError{Expected: caseType, Actual: actual}
	}
	return nil
}
