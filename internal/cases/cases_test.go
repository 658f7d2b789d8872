package cases

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"okc/internal/domain"
)

func TestConceptVariant_Deserialize(t *testing.T) {
	tests := []struct {
		name       string
		caseJSON   string
		wantErr    bool
		wantLocked bool
		wantMC     bool
	}{
		{
			name:       "free-form question defaults to locked",
			caseJSON:   `{"type":"concept","question":"What is 2+2?","answer":"4"}`,
			wantLocked: true,
		},
		{
			name:       "unlocked multiple choice",
			caseJSON:   `{"type":"concept","question":"Pick","answer":"4","choices":["3","4","5"],"locked":false}`,
			wantLocked: false,
			wantMC:     true,
		},
		{
			name:     "wrong type",
			caseJSON: `{"type":"doctest","question":"Pick","answer":"4"}`,
			wantErr:  true,
		},
		{
			name:     "missing question",
			caseJSON: `{"type":"concept","answer":"4"}`,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ConceptVariant{}.Deserialize(json.RawMessage(tt.caseJSON), nil)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if c.IsLocked() != tt.wantLocked {
				t.Errorf("expected locked %v, got %v", tt.wantLocked, c.IsLocked())
			}
			if len(c.Outputs()) != 1 {
				t.Fatalf("expected 1 output, got %d", len(c.Outputs()))
			}
			if c.Outputs()[0].IsMultipleChoice() != tt.wantMC {
				t.Errorf("expected multiple choice %v", tt.wantMC)
			}
		})
	}
}

func TestConceptVariant_WrongTypeIsSerializationError(t *testing.T) {
	_, err := ConceptVariant{}.Deserialize(json.RawMessage(`{"type":"doctest"}`), nil)
	var serr *domain.SerializationError
	if !errors.As(err, &serr) {
		t.Fatalf("expected SerializationError, got %v", err)
	}
	if serr.Expected != ConceptType || serr.Actual != DoctestType {
		t.Errorf("unexpected error fields: %+v", serr)
	}
}

func TestDoctestVariant_Deserialize(t *testing.T) {
	caseJSON := `{
		"type": "doctest",
		"input": "    >>> square(3)\n    9",
		"outputs": [{"answer": "9"}, {"answer": "b", "choices": ["a", "b"], "explanation": "b is right"}],
		"locked": false,
		"teardown": "    reset()"
	}`
	c, err := DoctestVariant{}.Deserialize(json.RawMessage(caseJSON), domain.AssignmentInfo{"name": "hw01"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doctest, ok := c.(*DoctestCase)
	if !ok {
		t.Fatalf("expected *DoctestCase, got %T", c)
	}
	if doctest.Input() != ">>> square(3)\n9" {
		t.Errorf("expected dedented input, got %q", doctest.Input())
	}
	if doctest.Teardown != "reset()" {
		t.Errorf("expected dedented teardown, got %q", doctest.Teardown)
	}
	if doctest.IsLocked() {
		t.Error("expected case to be unlocked")
	}

	want := []domain.TestCaseAnswer{
		domain.NewTestCaseAnswer("9", nil, ""),
		domain.NewTestCaseAnswer("b", []string{"a", "b"}, "b is right"),
	}
	if diff := cmp.Diff(want, doctest.Outputs()); diff != "" {
		t.Errorf("outputs mismatch (-want +got):\n%s", diff)
	}
}

func TestDefaultRegistry(t *testing.T) {
	registry := DefaultRegistry()
	if diff := cmp.Diff([]string{ConceptType, DoctestType}, registry.Types()); diff != "" {
		t.Errorf("types mismatch (-want +got):\n%s", diff)
	}
}

func TestVariants_RoundTrip(t *testing.T) {
	registry := DefaultRegistry()
	unlocked := NewDoctestCase(">>> 1 + 1", []domain.TestCaseAnswer{domain.NewTestCaseAnswer("2", nil, "")}, "")
	unlocked.SetLocked(false)

	test := domain.NewTest(domain.TestOptions{
		Names: []string{"q1"},
		Note:  "Mixed suites",
		Suites: []domain.Suite{
			{
				NewConceptCase("What does square return?", domain.NewTestCaseAnswer("a number", []string{"a number", "a string"}, "")),
				unlocked,
			},
			{
				NewDoctestCase(">>> square(2)", []domain.TestCaseAnswer{domain.NewTestCaseAnswer("4", nil, "")}, "cleanup()"),
			},
		},
	})

	first, err := test.Serialize()
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	decoded, err := domain.DeserializeTest(first, domain.AssignmentInfo{}, registry)
	if err != nil {
		t.Fatalf("deserialize: %v", err)
	}
	second, err := decoded.Serialize()
	if err != nil {
		t.Fatalf("serialize again: %v", err)
	}
	if diff := cmp.Diff(string(first), string(second)); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
	if decoded.CountLocked() != 2 {
		t.Errorf("expected 2 locked cases, got %d", decoded.CountLocked())
	}
}

func TestConceptCase_SerializeRejectsExtraAnswers(t *testing.T) {
	c := NewConceptCase("2 + 2?", domain.NewTestCaseAnswer("4", nil, ""))
	c.SetOutputs([]domain.TestCaseAnswer{
		domain.NewTestCaseAnswer("4", nil, ""),
		domain.NewTestCaseAnswer("four", nil, ""),
	})

	if _, err := c.Serialize(); err == nil {
		t.Error("expected error for a concept case with two answers")
	}

	test := domain.NewTest(domain.TestOptions{Names: []string{"q1"}, Suites: []domain.Suite{{c}}})
	if _, err := test.Serialize(); err == nil {
		t.Error("expected test serialization to fail")
	}
}

func TestDoctestCase_SerializeKeepsPrompt(t *testing.T) {
	c := NewDoctestCase(">>> 1 < 2 & True", []domain.TestCaseAnswer{domain.NewTestCaseAnswer("True", nil, "")}, "")
	data, err := c.Serialize()
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	if !strings.Contains(string(data), `"input":">>> 1 < 2 & True"`) {
		t.Errorf("expected unescaped input, got %s", data)
	}
}
