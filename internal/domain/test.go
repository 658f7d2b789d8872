package domain

import (
	"encoding/json"
	"fmt"

	"okc/internal/textutil"
)

// Suite is an ordered group of test cases belonging to one Test.
type Suite []Case

// Test is a named, scored collection of suites.
type Test struct {
	Names []string
	Note  string
	// Cache is an opaque text blob used by code-based variants. It is never
	// serialized.
	Cache string

	suites []Suite
	points *float64
}

// TestOptions configures NewTest. The zero value yields an empty, unnamed test.
type TestOptions struct {
	Names  []string
	Suites []Suite
	// Points overrides the derived score when non-nil.
	Points *float64
	Note   string
	Cache  string
}

// PointsOf returns a pointer to v, for use in TestOptions.
func PointsOf(v float64) *float64 {
	return &v
}

// NewTest creates a Test. Empty suites are dropped.
func NewTest(opts TestOptions) *Test {
	names := opts.Names
	if names == nil {
		names = []string{}
	}
	t := &Test{
		Names:  names,
		Note:   textutil.Dedent(opts.Note),
		Cache:  textutil.Dedent(opts.Cache),
		suites: []Suite{},
		points: opts.Points,
	}
	for _, suite := range opts.Suites {
		t.AddSuite(suite)
	}
	return t
}

// Name returns the canonical name of the test.
func (t *Test) Name() string {
	if len(t.Names) == 0 {
		return fmt.Sprintf("Test(%p)", t)
	}
	return t.Names[0]
}

// Suites returns the non-empty suites of the test. The returned slice is a
// copy; use AddSuite to attach more.
func (t *Test) Suites() []Suite {
	suites := make([]Suite, len(t.suites))
	copy(suites, t.suites)
	return suites
}

// Points returns the explicit score, or the number of suites when none was set.
func (t *Test) Points() float64 {
	if t.points == nil {
		return float64(len(t.suites))
	}
	return *t.points
}

// ExplicitPoints returns the explicit score and whether one was set.
func (t *Test) ExplicitPoints() (float64, bool) {
	if t.points == nil {
		return 0, false
	}
	return *t.points, true
}

// CountCases returns the number of test cases in the test.
func (t *Test) CountCases() int {
	total := 0
	for _, suite := range t.suites {
		total += len(suite)
	}
	return total
}

// CountLocked returns the number of locked test cases in the test.
func (t *Test) CountLocked() int {
	locked := 0
	for _, suite := range t.suites {
		for _, c := range suite {
			if c.IsLocked() {
				locked++
			}
		}
	}
	return locked
}

// AddSuite appends suite and links each case back to t with the suite's index.
// An empty suite is ignored.
func (t *Test) AddSuite(suite Suite) {
	if len(suite) == 0 {
		return
	}
	t.suites = append(t.suites, suite)
	suiteNum := len(t.suites) - 1
	for _, c := range suite {
		c.attach(t, suiteNum)
	}
}

type testJSON struct {
	Names  []string            `json:"names"`
	Suites [][]json.RawMessage `json:"suites,omitempty"`
	Points *float64            `json:"points,omitempty"`
	Note   string              `json:"note,omitempty"`
}

// DeserializeTest builds a Test from its JSON form. Each case is decoded by the
// variant registered for its type tag; info is passed through untouched.
func DeserializeTest(data json.RawMessage, info AssignmentInfo, registry *Registry) (*Test, error) {
	var wire testJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("parse test: %w", err)
	}

	t := NewTest(TestOptions{
		Names:  wire.Names,
		Points: wire.Points,
		Note:   wire.Note,
	})
	for i, rawSuite := range wire.Suites {
		suite := make(Suite, 0, len(rawSuite))
		for j, rawCase := range rawSuite {
			var head struct {
				Type json.RawMessage `json:"type"`
			}
			if err := json.Unmarshal(rawCase, &head); err != nil {
				return nil, fmt.Errorf("parse suite %d case %d: %w", i, j, err)
			}
			// A missing or null tag is looked up as ""; a non-string tag never matches
			var tag string
			if len(head.Type) > 0 {
				if err := json.Unmarshal(head.Type, &tag); err != nil {
					return nil, fmt.Errorf("suite %d case %d: %w %s", i, j, ErrUnknownCaseType, head.Type)
				}
			}
			variant, err := registry.Lookup(tag)
			if err != nil {
				return nil, fmt.Errorf("suite %d case %d: %w", i, j, err)
			}
			c, err := variant.Deserialize(rawCase, info)
			if err != nil {
				return nil, fmt.Errorf("suite %d case %d: %w", i, j, err)
			}
			suite = append(suite, c)
		}
		t.AddSuite(suite)
	}
	return t, nil
}

// Serialize returns the JSON form of the test. Suites are emitted only when
// the test has cases, points only when set explicitly and the note only when
// non-empty.
func (t *Test) Serialize() (json.RawMessage, error) {
	names := t.Names
	if names == nil {
		names = []string{}
	}
	wire := testJSON{
		Names:  names,
		Points: t.points,
		Note:   t.Note,
	}
	if t.CountCases() > 0 {
		wire.Suites = make([][]json.RawMessage, 0, len(t.suites))
		for _, suite := range t.suites {
			cases := make([]json.RawMessage, 0, len(suite))
			for _, c := range suite {
				raw, err := c.Serialize()
				if err != nil {
					return nil, fmt.Errorf("serialize test %s: %w", t.Name(), err)
				}
				cases = append(cases, raw)
			}
			wire.Suites = append(wire.Suites, cases)
		}
	}
	data, err := EncodeJSON(wire)
	if err != nil {
		return nil, fmt.Errorf("marshal test %s: %w", t.Name(), err)
	}
	return data, nil
}
