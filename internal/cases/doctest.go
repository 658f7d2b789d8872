package cases

import (
	"encoding/json"
	"fmt"

	"okc/internal/domain"
	"okc/internal/textutil"
)

// DoctestType is the type tag of interactive code cases.
const DoctestType = "doctest"

// DoctestCase is a code session whose expected outputs the student must
// reproduce. Teardown runs after the session.
type DoctestCase struct {
	domain.BaseCase
	Teardown string
}

type doctestOutputJSON struct {
	Answer      string   `json:"answer"`
	Choices     []string `json:"choices,omitempty"`
	Explanation string   `json:"explanation,omitempty"`
}

type doctestJSON struct {
	Type     string              `json:"type"`
	Input    string              `json:"input"`
	Outputs  []doctestOutputJSON `json:"outputs"`
	Locked   *bool               `json:"locked,omitempty"`
	Teardown string              `json:"teardown,omitempty"`
}

// NewDoctestCase creates a locked doctest case.
func NewDoctestCase(input string, outputs []domain.TestCaseAnswer, teardown string) *DoctestCase {
	return &DoctestCase{
		BaseCase: domain.NewBaseCase(input, outputs, domain.Status{}),
		Teardown: textutil.Dedent(teardown),
	}
}

func (c *DoctestCase) Type() string { return DoctestType }

// Serialize encodes the case in the doctest fixture format.
func (c *DoctestCase) Serialize() (json.RawMessage, error) {
	locked := c.IsLocked()
	wire := doctestJSON{
		Type:     DoctestType,
		Input:    c.Input(),
		Outputs:  make([]doctestOutputJSON, 0, len(c.Outputs())),
		Locked:   &locked,
		Teardown: c.Teardown,
	}
	for _, out := range c.Outputs() {
		wire.Outputs = append(wire.Outputs, doctestOutputJSON{
			Answer:      out.Answer,
			Choices:     out.Choices,
			Explanation: out.Explanation,
		})
	}
	data, err := domain.EncodeJSON(wire)
	if err != nil {
		return nil, fmt.Errorf("marshal doctest case: %w", err)
	}
	return data, nil
}

// DoctestVariant decodes doctest cases.
type DoctestVariant struct{}

func (DoctestVariant) Type() string { return DoctestType }

// Deserialize decodes a doctest case.
func (DoctestVariant) Deserialize(caseJSON json.RawMessage, info domain.AssignmentInfo) (domain.Case, error) {
	if err := domain.AssertCorrectType(caseJSON, DoctestType); err != nil {
		return nil, err
	}
	var wire doctestJSON
	if err := json.Unmarshal(caseJSON, &wire); err != nil {
		return nil, fmt.Errorf("parse doctest case: %w", err)
	}
	outputs := make([]domain.TestCaseAnswer, 0, len(wire.Outputs))
	for _, out := range wire.Outputs {
		outputs = append(outputs, domain.NewTestCaseAnswer(out.Answer, out.Choices, out.Explanation))
	}
	c := NewDoctestCase(wire.Input, outputs, wire.Teardown)
	if wire.Locked != nil {
		c.SetLocked(*wire.Locked)
	}
	return c, nil
}
