package dicttree_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvleet/dicttree"
)

// ExampleTree stores slash-separated paths segment by segment and lists
// everything under /usr.
func ExampleTree() {
	tr := dicttree.New[string]()
	for _, p := range []string{"/usr/bin", "/usr/lib", "/etc/hosts", "/usr"} {
		tr.Insert(strings.Split(strings.Trim(p, "/"), "/"))
	}

	tr.Walk([]string{"usr"}, func(seq []string) bool {
		fmt.Println("/" + strings.Join(seq, "/"))
		return true
	})
	fmt.Println(tr.Contains([]string{"etc"}), tr.HasPrefix([]string{"etc"}))

	// Output:
	// /usr
	// /usr/bin
	// /usr/lib
	// false true
}
