package parser

import (
	"testing"
)

// FuzzParse feeds arbitrary inputs to the parser. Malformed input must
// surface as an error value, never as a panic.
func FuzzParse(f *testing.F) {
	seeds := []string{
		``,
		`()`,
		`(a 1 2)`,
		`(set x (add 1 2))`,
		`)`,
		`(a b`,
		`((((()))))`,
		`007`,
		`(a ? b)`,
		`(1)(2)(3)`,
		`$`,
	}

	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, input string) {
		root, err := Parse([]byte(input))
		if err == nil && root == nil {
			t.Fatalf("Parse(%q) returned neither a node nor an error", input)
		}
	})
}
