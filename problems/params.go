package problems

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvleet/cases"
)

// param fetches a required parameter from c.
func param(slug string, c cases.Case, name string) (any, error) {
	v, ok := c.Get(name)
	if !ok {
		return nil, fmt.Errorf("%s: %s: %q: %w", slug, c.Name(), name, ErrMissingParam)
	}

	return v, nil
}

// intParam fetches a required integer parameter. yaml.v3 decodes integers
// into int, or int64/uint64 when they do not fit.
func intParam(slug string, c cases.Case, name string) (int, error) {
	v, err := param(slug, c, name)
	if err != nil {
		return 0, err
	}
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		if n >= math.MinInt && n <= math.MaxInt {
			return int(n), nil
		}
	case uint64:
		if n <= math.MaxInt {
			return int(n), nil
		}
	}

	return 0, fmt.Errorf("%s: %s: %q must be an int, got %T: %w", slug, c.Name(), name, v, ErrBadParam)
}

// listParam fetches a required sequence parameter.
func listParam(slug string, c cases.Case, name string) ([]any, error) {
	v, err := param(slug, c, name)
	if err != nil {
		return nil, err
	}
	list, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%s: %s: %q must be a list, got %T: %w", slug, c.Name(), name, v, ErrBadParam)
	}

	return list, nil
}
