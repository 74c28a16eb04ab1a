package enumerate

import (
	"github.com/operator-framework/backtrack/pkg/backtrack"
	"github.com/operator-framework/backtrack/pkg/backtrack/engine"
)

var keypad = [10]string{
	"", "", "abc", "def", "ghi", "jkl", "mno", "pqrs", "tuv", "wxyz",
}

// LetterCombinations returns every string a phone keypad could spell
// for digits. Digits without letters, and any other character, leave
// nothing to spell; an empty input has no combinations.
func LetterCombinations(digits string, options ...engine.Option) []string {
	letters := make([]string, len(digits))
	for i := 0; i < len(digits); i++ {
		d := digits[i]
		if d < '0' || d > '9' || keypad[d-'0'] == "" {
			return []string{}
		}
		letters[i] = keypad[d-'0']
	}
	if len(letters) == 0 {
		return []string{}
	}

	paths := run(backtrack.Problem[byte]{
		Size: len(letters),
		// the pool of each depth is the key of that digit
		Element: func(cur backtrack.Cursor, i int) byte {
			return letters[cur.Depth][i]
		},
		Window: func(cur backtrack.Cursor) (int, int) {
			if cur.Depth == len(letters) {
				return 0, 0
			}
			return 0, len(letters[cur.Depth])
		},
		Accept: func(cur backtrack.Cursor, _ []byte) bool {
			return cur.Depth == len(letters)
		},
	}, options...)

	words := make([]string, len(paths))
	for i, p := range paths {
		words[i] = string(p)
	}
	return words
}
