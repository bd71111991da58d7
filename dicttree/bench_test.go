package dicttree_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvleet/dicttree"
)

// BenchmarkTree_Insert measures inserting N decimal keys into a fresh tree.
func BenchmarkTree_Insert(b *testing.B) {
	const N = 10000
	keys := make([][]rune, N)
	for i := range keys {
		keys[i] = []rune(fmt.Sprintf("key%06d", i))
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		tr := dicttree.New[rune]()
		for _, k := range keys {
			tr.Insert(k)
		}
	}
}

// BenchmarkTree_Contains measures lookups against a populated tree.
func BenchmarkTree_Contains(b *testing.B) {
	const N = 10000
	tr := dicttree.New[rune]()
	keys := make([][]rune, N)
	for i := range keys {
		keys[i] = []rune(fmt.Sprintf("key%06d", i))
		tr.Insert(keys[i])
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = tr.Contains(keys[i%N])
	}
}
