// Package trie provides a rune-keyed prefix tree with exact-word search and
// prefix search, built on dicttree.Tree[rune].
//
// Keys are Unicode code points, so matching is case and character sensitive:
// "Apple" and "apple" are different words, and "é" is a single edge.
//
// Empty string policy:
//
//   - Insert("") marks the root terminal; Search("") reports whether that
//     happened.
//   - StartsWith("") is always true, even on an empty trie.
//
// Complexity:
//
//   - Insert:     O(L) time, at most L new nodes (L = rune count).
//   - Search:     O(L) time, O(1) extra space beyond the rune slice.
//   - StartsWith: O(L) time.
//
// A Trie is not safe for concurrent mutation; serialize access externally.
package trie

import (
	"github.com/katalvlaran/lvleet/dicttree"
)

// Trie is a set of strings with prefix queries.
type Trie struct {
	tree *dicttree.Tree[rune]
}

// New returns an empty Trie.
func New() *Trie {
	return &Trie{tree: dicttree.New[rune]()}
}

// Insert adds word to the trie. Inserting an existing word is a no-op.
func (t *Trie) Insert(word string) {
	t.tree.Insert([]rune(word))
}

// Search reports whether word was previously inserted in full.
func (t *Trie) Search(word string) bool {
	return t.tree.Contains([]rune(word))
}

// StartsWith reports whether any inserted word has the given prefix.
func (t *Trie) StartsWith(prefix string) bool {
	return t.tree.HasPrefix([]rune(prefix))
}

// Len returns the number of distinct words.
func (t *Trie) Len() int {
	return t.tree.Len()
}

// Words returns every stored word in ascending code-point order.
func (t *Trie) Words() []string {
	return t.WordsWithPrefix("")
}

// WordsWithPrefix returns the stored words starting with prefix, sorted.
// It returns nil when no word matches.
func (t *Trie) WordsWithPrefix(prefix string) []string {
	var out []string
	t.tree.Walk([]rune(prefix), func(seq []rune) bool {
		out = append(out, string(seq))
		return true
	})

	return out
}
