// Package problems is the catalogue of bundled exercises. Each Problem pairs
// a slug with a reference solution adapter that consumes one parametrized
// case and returns the value to compare with its expected column.
//
// Built-in problems:
//
//   - first_bad_version           (params: n, bad)
//   - implement_trie_prefix_tree  (params: ops, args)
//   - linked_list_cycle           (params: values, pos)
//
// Built-in case suites ship embedded; see BuiltinSuites.
package problems

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"slices"
	"sort"

	"github.com/katalvlaran/lvleet/cases"
)

// Sentinel errors for the catalogue and the solution adapters.
var (
	// ErrUnknownProblem indicates a slug that is not registered.
	ErrUnknownProblem = errors.New("problems: unknown problem")

	// ErrDuplicateProblem indicates a slug registered twice.
	ErrDuplicateProblem = errors.New("problems: problem already registered")

	// ErrInvalidProblem indicates a Problem without slug or Solve function.
	ErrInvalidProblem = errors.New("problems: invalid problem definition")

	// ErrMissingParam indicates a case lacking a parameter the solution needs.
	ErrMissingParam = errors.New("problems: missing parameter")

	// ErrBadParam indicates a parameter value of the wrong shape.
	ErrBadParam = errors.New("problems: bad parameter value")
)

// SolveFunc runs a reference solution on one case and returns its answer.
// Implementations should return promptly once ctx is done.
type SolveFunc func(ctx context.Context, c cases.Case) (any, error)

// Problem describes one exercise.
type Problem struct {
	Slug   string
	Title  string
	Params []string // input parameters a case must provide
	Solve  SolveFunc
}

// Registry maps slugs to problems. It is not safe for concurrent mutation;
// register everything before sharing it.
type Registry struct {
	bySlug map[string]Problem
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{bySlug: make(map[string]Problem)}
}

// Default returns a fresh Registry holding the built-in problems.
func Default() *Registry {
	r := NewRegistry()
	for _, p := range []Problem{firstBadVersion(), implementTrie(), linkedListCycle()} {
		// Built-ins are well-formed and unique, so Register cannot fail.
		_ = r.Register(p)
	}

	return r
}

// Register adds p to the registry.
func (r *Registry) Register(p Problem) error {
	if p.Slug == "" || p.Solve == nil {
		return fmt.Errorf("problems: Register(%q): %w", p.Slug, ErrInvalidProblem)
	}
	if _, dup := r.bySlug[p.Slug]; dup {
		return fmt.Errorf("problems: Register(%q): %w", p.Slug, ErrDuplicateProblem)
	}
	p.Params = slices.Clone(p.Params)
	r.bySlug[p.Slug] = p

	return nil
}

// Get returns the problem registered under slug. The returned Params slice
// is a copy; changing it does not affect the registry.
func (r *Registry) Get(slug string) (Problem, error) {
	p, ok := r.bySlug[slug]
	if !ok {
		return Problem{}, fmt.Errorf("problems: Get(%q): %w", slug, ErrUnknownProblem)
	}
	p.Params = slices.Clone(p.Params)

	return p, nil
}

// Slugs returns every registered slug in ascending order.
func (r *Registry) Slugs() []string {
	out := make([]string, 0, len(r.bySlug))
	for s := range r.bySlug {
		out = append(out, s)
	}
	sort.Strings(out)

	return out
}

//go:embed cases/*.yaml
var builtinCases embed.FS

// BuiltinSuites decodes the embedded case suites, keyed by problem slug.
func BuiltinSuites() (map[string]*cases.Suite, error) {
	return cases.LoadFS(builtinCases, "cases")
}
