package problems

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvleet/cases"
	"github.com/katalvlaran/lvleet/cyclefixture"
	"github.com/katalvlaran/lvleet/problems/firstbadversion"
	"github.com/katalvlaran/lvleet/problems/linkedlistcycle"
	"github.com/katalvlaran/lvleet/trie"
)

// Built-in slugs.
const (
	SlugFirstBadVersion = "first_bad_version"
	SlugImplementTrie   = "implement_trie_prefix_tree"
	SlugLinkedListCycle = "linked_list_cycle"
)

// linkedListCycle runs the Floyd solution through the cyclic fixture builder.
// Fixture validation errors surface unchanged, so a swapped column in a case
// file reports cyclefixture.ErrArgumentOrder.
func linkedListCycle() Problem {
	newDetector := func() cyclefixture.Detector { return linkedlistcycle.New() }

	return Problem{
		Slug:   SlugLinkedListCycle,
		Title:  "Linked List Cycle",
		Params: []string{"values", "pos"},
		Solve: func(_ context.Context, c cases.Case) (any, error) {
			values, err := param(SlugLinkedListCycle, c, "values")
			if err != nil {
				return nil, err
			}
			pos, err := param(SlugLinkedListCycle, c, "pos")
			if err != nil {
				return nil, err
			}

			return cyclefixture.RunHasCycle(newDetector, values, pos)
		},
	}
}

// firstBadVersion searches 1..n against the oracle version >= bad.
func firstBadVersion() Problem {
	return Problem{
		Slug:   SlugFirstBadVersion,
		Title:  "First Bad Version",
		Params: []string{"n", "bad"},
		Solve: func(_ context.Context, c cases.Case) (any, error) {
			n, err := intParam(SlugFirstBadVersion, c, "n")
			if err != nil {
				return nil, err
			}
			bad, err := intParam(SlugFirstBadVersion, c, "bad")
			if err != nil {
				return nil, err
			}

			return firstbadversion.New(bad).FirstBadVersion(n), nil
		},
	}
}

// Trie operation names, LeetCode spelling plus the snake_case alias.
const (
	opConstruct   = "Trie"
	opInsert      = "insert"
	opSearch      = "search"
	opStartsWith  = "startsWith"
	opStartsWith2 = "starts_with"
)

// implementTrie replays an operation list against a fresh trie.Trie and
// returns one output per operation: nil for "Trie"/"insert", a bool for
// queries.
func implementTrie() Problem {
	return Problem{
		Slug:   SlugImplementTrie,
		Title:  "Implement Trie (Prefix Tree)",
		Params: []string{"ops", "args"},
		Solve: func(ctx context.Context, c cases.Case) (any, error) {
			ops, err := listParam(SlugImplementTrie, c, "ops")
			if err != nil {
				return nil, err
			}
			args, err := listParam(SlugImplementTrie, c, "args")
			if err != nil {
				return nil, err
			}
			if len(ops) != len(args) {
				return nil, fmt.Errorf("%s: %s: %d ops but %d args: %w",
					SlugImplementTrie, c.Name(), len(ops), len(args), ErrBadParam)
			}

			var tr *trie.Trie
			out := make([]any, len(ops))
			for i, raw := range ops {
				// Honor cancellation between operations.
				if err := ctx.Err(); err != nil {
					return nil, err
				}
				op, ok := raw.(string)
				if !ok {
					return nil, fmt.Errorf("%s: %s: ops[%d] must be a string, got %T: %w",
						SlugImplementTrie, c.Name(), i, raw, ErrBadParam)
				}
				if op == opConstruct {
					tr = trie.New()
					out[i] = nil
					continue
				}
				if tr == nil {
					return nil, fmt.Errorf("%s: %s: ops[%d] %q before %q: %w",
						SlugImplementTrie, c.Name(), i, op, opConstruct, ErrBadParam)
				}
				word, err := wordArg(c, i, args[i])
				if err != nil {
					return nil, err
				}
				switch op {
				case opInsert:
					tr.Insert(word)
					out[i] = nil
				case opSearch:
					out[i] = tr.Search(word)
				case opStartsWith, opStartsWith2:
					out[i] = tr.StartsWith(word)
				default:
					return nil, fmt.Errorf("%s: %s: ops[%d] unknown operation %q: %w",
						SlugImplementTrie, c.Name(), i, op, ErrBadParam)
				}
			}

			return out, nil
		},
	}
}

// wordArg extracts the single string argument of operation i.
func wordArg(c cases.Case, i int, raw any) (string, error) {
	list, ok := raw.([]any)
	if !ok || len(list) != 1 {
		return "", fmt.Errorf("%s: %s: args[%d] must hold exactly one word: %w",
			SlugImplementTrie, c.Name(), i, ErrBadParam)
	}
	word, ok := list[0].(string)
	if !ok {
		return "", fmt.Errorf("%s: %s: args[%d][0] must be a string, got %T: %w",
			SlugImplementTrie, c.Name(), i, list[0], ErrBadParam)
	}

	return word, nil
}
