// Package lvleet is your in-memory playground for interview-style exercises,
// from reusable data-structure primitives to fixture builders and a small
// case runner that checks reference solutions against parametrized cases.
//
// 🚀 What is lvleet?
//
//	A compact, dependency-light library that brings together:
//		• Prefix trees: generic dicttree.Tree[K] and a rune-keyed trie.Trie
//		• Linked lists: arena-backed listnode.List[T] with index links
//		• Fixtures: cyclefixture builds cyclic lists and validates arguments
//		• Problems: reference solutions (linked list cycle, first bad version,
//		  implement trie) behind one catalogue
//		• Cases & runner: YAML case files executed with deadlines and reports
//
// ✨ Why choose lvleet?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Explicit structure – terminal flags instead of sentinel keys,
//     arena indices instead of back-pointers
//   - Deterministic – sorted iteration everywhere, reproducible reports
//   - Testable – every invariant has a table test and an example
//
// Under the hood, everything is organized under these subpackages:
//
//	dicttree/     — generic prefix tree of explicit nodes
//	trie/         — Insert / Search / StartsWith over runes
//	listnode/     — arena linked list; cycles are plain indices
//	cyclefixture/ — CreateCycleList, RunHasCycle, AssertHasCycle
//	problems/     — catalogue + reference solutions
//	cases/        — parametrized case files (YAML)
//	runner/       — executes a suite against a problem
//	config/       — viper-backed settings for the CLI
//	cmd/lvleet/   — command-line entry point
//
// Quick ASCII example (CreateCycleList([3,2,0,-4], 1)):
//
//	3 → 2 → 0 → -4
//	    ↑        │
//	    └────────┘
//
//	go get github.com/katalvlaran/lvleet
package lvleet
