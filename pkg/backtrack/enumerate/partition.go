package enumerate

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/operator-framework/backtrack/pkg/backtrack"
	"github.com/operator-framework/backtrack/pkg/backtrack/engine"
)

// ValidityTable records which substrings of an input are legal
// segments: t[i][j] reports whether the runes i through j of the input,
// inclusive, form one. It has one row per rune.
type ValidityTable [][]bool

// Valid reports whether runes i through j form a legal segment. Out of
// range indexes are never valid.
func (t ValidityTable) Valid(i, j int) bool {
	return i >= 0 && i < len(t) && j >= i && j < len(t[i]) && t[i][j]
}

// SegmentValidator builds the ValidityTable of an input.
type SegmentValidator func(input string) ValidityTable

// Partition splits input into consecutive legal segments in every
// possible way. Segments never split a rune. An empty input has no
// partitions.
func Partition(input string, validator SegmentValidator, options ...engine.Option) ([][]string, error) {
	return partition(input, validator, 0, options...)
}

// PartitionInto is Partition restricted to exactly parts segments.
func PartitionInto(input string, validator SegmentValidator, parts int, options ...engine.Option) ([][]string, error) {
	if parts < 1 {
		return [][]string{}, nil
	}
	return partition(input, validator, parts, options...)
}

func partition(input string, validator SegmentValidator, parts int, options ...engine.Option) ([][]string, error) {
	if validator == nil {
		return nil, backtrack.ErrNilValidator
	}
	if input == "" {
		return [][]string{}, nil
	}
	table := validator(input)
	offsets := runeOffsets(input)
	n := len(offsets) - 1
	if len(table) != n {
		return nil, fmt.Errorf("validity table has %d rows for an input of %d runes", len(table), n)
	}

	e, err := engine.New(backtrack.Problem[string]{
		Size: n,
		// rune i closes the segment that opens at rune cur.Start
		Element: func(cur backtrack.Cursor, i int) string {
			return input[offsets[cur.Start]:offsets[i+1]]
		},
		Skip: func(cur backtrack.Cursor, i int) bool {
			return !table.Valid(cur.Start, i)
		},
		Prune: func(cur backtrack.Cursor, _ int) bool {
			return parts > 0 && cur.Depth >= parts
		},
		Accept: func(cur backtrack.Cursor, _ []string) bool {
			return cur.Start == n && (parts == 0 || cur.Depth == parts)
		},
	}, options...)
	if err != nil {
		return nil, err
	}
	return e.Search(), nil
}

// Segments tabulates an arbitrary segment predicate.
func Segments(valid func(segment string) bool) SegmentValidator {
	return func(input string) ValidityTable {
		offsets := runeOffsets(input)
		n := len(offsets) - 1
		t := newTable(n)
		for i := 0; i < n; i++ {
			for j := i; j < n; j++ {
				t[i][j] = valid(input[offsets[i]:offsets[j+1]])
			}
		}
		return t
	}
}

// Palindromes marks every substring of input that reads the same rune
// by rune in both directions. The table is filled by increasing length
// so each entry is decided from its inner substring in constant time.
func Palindromes(input string) ValidityTable {
	runes := []rune(input)
	n := len(runes)
	t := newTable(n)
	for length := 1; length <= n; length++ {
		for i := 0; i+length <= n; i++ {
			j := i + length - 1
			t[i][j] = runes[i] == runes[j] && (length <= 2 || t[i+1][j-1])
		}
	}
	return t
}

// Octets marks the substrings of input that are decimal octets: one to
// three digits, at most 255, no leading zero.
func Octets(input string) ValidityTable {
	offsets := runeOffsets(input)
	n := len(offsets) - 1
	t := newTable(n)
	for i := 0; i < n; i++ {
		for j := i; j < n && j < i+3; j++ {
			t[i][j] = isOctet(input[offsets[i]:offsets[j+1]])
		}
	}
	return t
}

func isOctet(s string) bool {
	if len(s) > 1 && s[0] == '0' {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	v, err := strconv.Atoi(s)
	return err == nil && v <= 255
}

// RestoreIPAddresses returns every dotted IPv4 address that can be
// formed by inserting three dots into s.
func RestoreIPAddresses(s string, options ...engine.Option) []string {
	if len(s) < 4 || len(s) > 12 {
		return []string{}
	}
	parts, err := PartitionInto(s, Octets, 4, options...)
	if err != nil {
		// Octets always matches the input length.
		panic(err)
	}
	addrs := make([]string, len(parts))
	for i, p := range parts {
		addrs[i] = strings.Join(p, ".")
	}
	return addrs
}

// runeOffsets returns the byte offset of every rune in s followed by
// len(s), so rune i spans s[offsets[i]:offsets[i+1]].
func runeOffsets(s string) []int {
	offsets := make([]int, 0, utf8.RuneCountInString(s)+1)
	for i := range s {
		offsets = append(offsets, i)
	}
	return append(offsets, len(s))
}

func newTable(n int) ValidityTable {
	t := make(ValidityTable, n)
	for i := range t {
		t[i] = make([]bool, n)
	}
	return t
}
