package domain

// TestCaseAnswer is one expected answer of a test case.
type TestCaseAnswer struct {
	// Answer is stored as given and may be encoded by the variant that owns it.
	Answer string
	// Choices lists the options of a multiple choice answer. Empty when the
	// answer is free-form.
	Choices     []string
	Explanation string
}

// NewTestCaseAnswer creates a TestCaseAnswer. A nil choices slice means the
// answer is not multiple choice.
func NewTestCaseAnswer(answer string, choices []string, explanation string) TestCaseAnswer {
	if choices == nil {
		choices = []string{}
	}
	return TestCaseAnswer{
		Answer:      answer,
		Choices:     choices,
		Explanation: explanation,
	}
}

// IsMultipleChoice reports whether the answer offers choices.
func (a TestCaseAnswer) IsMultipleChoice() bool {
	return len(a.Choices) > 0
}
