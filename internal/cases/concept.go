package cases

import (
	"encoding/json"
	"fmt"

	"okc/internal/domain"
)

// ConceptType is the type tag of concept questions.
const ConceptType = "concept"

// ConceptCase is a conceptual question with a single, optionally multiple
// choice, answer.
type ConceptCase struct {
	domain.BaseCase
}

type conceptJSON struct {
	Type        string   `json:"type"`
	Question    string   `json:"question"`
	Answer      string   `json:"answer"`
	Choices     []string `json:"choices,omitempty"`
	Explanation string   `json:"explanation,omitempty"`
	Locked      *bool    `json:"locked,omitempty"`
}

// NewConceptCase creates a locked concept case.
func NewConceptCase(question string, answer domain.TestCaseAnswer) *ConceptCase {
	return &ConceptCase{
		BaseCase: domain.NewBaseCase(question, []domain.TestCaseAnswer{answer}, domain.Status{}),
	}
}

func (c *ConceptCase) Type() string { return ConceptType }

// Serialize encodes the case in the concept fixture format, which holds a
// single answer.
func (c *ConceptCase) Serialize() (json.RawMessage, error) {
	if n := len(c.Outputs()); n > 1 {
		return nil, fmt.Errorf("serialize concept case: %d answers, the format holds one", n)
	}
	locked := c.IsLocked()
	wire := conceptJSON{
		Type:     ConceptType,
		Question: c.Input(),
		Locked:   &locked,
	}
	if outputs := c.Outputs(); len(outputs) > 0 {
		wire.Answer = outputs[0].Answer
		wire.Choices = outputs[0].Choices
		wire.Explanation = outputs[0].Explanation
	}
	data, err := domain.EncodeJSON(wire)
	if err != nil {
		return nil, fmt.Errorf("marshal concept case: %w", err)
	}
	return data, nil
}

// ConceptVariant decodes concept cases.
type ConceptVariant struct{}

func (ConceptVariant) Type() string { return ConceptType }

// Deserialize decodes a concept case.
func (ConceptVariant) Deserialize(caseJSON json.RawMessage, info domain.AssignmentInfo) (domain.Case, error) {
	if err := domain.AssertCorrectType(caseJSON, ConceptType); err != nil {
		return nil, err
	}
	var wire conceptJSON
	if err := json.Unmarshal(caseJSON, &wire); err != nil {
		return nil, fmt.Errorf("parse concept case: %w", err)
	}
	if wire.Question == "" {
		return nil, fmt.Errorf("parse concept case: missing question")
	}
	c := NewConceptCase(wire.Question, domain.NewTestCaseAnswer(wire.Answer, wire.Choices, wire.Explanation))
	if wire.Locked != nil {
		c.SetLocked(*wire.Locked)
	}
	return c, nil
}
