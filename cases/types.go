// Package cases defines parametrized case files: a parameter-name header
// plus rows of values, one row per case, the last column usually being the
// expected result.
//
// File format (YAML):
//
//	problem: linked_list_cycle
//	params: [values, pos, expected]   # or "values, pos, expected"
//	cases:
//	  - [[3, 2, 0, -4], 1, true]
//	  - [[1], -1, false]
//
// Values are decoded by gopkg.in/yaml.v3 into plain Go values (int, bool,
// string, []any, map[string]any, nil), so consumers validate their shape.
package cases

import (
	"errors"
	"fmt"
)

// ExpectedParam is the parameter name holding the expected result.
const ExpectedParam = "expected"

// Sentinel errors for case-file parsing.
var (
	// ErrNoProblem indicates a suite without a problem slug.
	ErrNoProblem = errors.New("cases: problem slug is empty")

	// ErrNoParams indicates a suite without parameter names.
	ErrNoParams = errors.New("cases: no parameter names")

	// ErrNoExpected indicates a header without the "expected" column.
	ErrNoExpected = errors.New("cases: no expected parameter")

	// ErrDuplicateParam indicates the same parameter name listed twice.
	ErrDuplicateParam = errors.New("cases: duplicate parameter name")

	// ErrArity indicates a row whose length differs from the header.
	ErrArity = errors.New("cases: row length does not match params")

	// ErrNoCases indicates a suite with zero rows.
	ErrNoCases = errors.New("cases: suite has no cases")

	// ErrDuplicateProblem indicates two files in one directory for the same slug.
	ErrDuplicateProblem = errors.New("cases: duplicate problem suite")
)

// Suite is the decoded content of one case file.
type Suite struct {
	Problem string
	Params  []string
	Cases   []Case
	Source  string // file path, empty when parsed from memory
}

// Case is one row of a Suite.
type Case struct {
	Index  int
	Params []string // shared with the owning Suite; do not mutate
	Values []any
	Suite  string // owning problem slug
}

// Name identifies the case as "<problem>[<index>]".
func (c Case) Name() string {
	return fmt.Sprintf("%s[%d]", c.Suite, c.Index)
}

// Get returns the value bound to the named parameter. A parameter without a
// matching value (Params longer than Values) is reported as absent.
func (c Case) Get(name string) (any, bool) {
	for i, p := range c.Params {
		if p == name {
			if i >= len(c.Values) {
				return nil, false
			}
			return c.Values[i], true
		}
	}

	return nil, false
}

// Expected returns the value of the "expected" parameter.
func (c Case) Expected() any {
	v, _ := c.Get(ExpectedParam)

	return v
}

// Inputs returns the parameter names and values without the expected column.
func (c Case) Inputs() ([]string, []any) {
	names := make([]string, 0, len(c.Params))
	vals := make([]any, 0, len(c.Values))
	for i, p := range c.Params {
		if p == ExpectedParam || i >= len(c.Values) {
			continue
		}
		names = append(names, p)
		vals = append(vals, c.Values[i])
	}

	return names, vals
}
