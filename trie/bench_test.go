package trie_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvleet/trie"
)

// BenchmarkTrie_Search measures Search on a trie of N words sharing prefixes.
func BenchmarkTrie_Search(b *testing.B) {
	const N = 5000
	tr := trie.New()
	words := make([]string, N)
	for i := range words {
		words[i] = fmt.Sprintf("word-%d", i)
		tr.Insert(words[i])
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = tr.Search(words[i%N])
	}
}

// BenchmarkTrie_StartsWith measures prefix queries of increasing length.
func BenchmarkTrie_StartsWith(b *testing.B) {
	tr := trie.New()
	for i := 0; i < 5000; i++ {
		tr.Insert(fmt.Sprintf("word-%d", i))
	}
	prefixes := []string{"w", "wo", "word-", "word-1", "word-12", "word-123"}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = tr.StartsWith(prefixes[i%len(prefixes)])
	}
}
