package numeral

import (
	"regexp"
	"strings"
	"unicode"
)

const (
	// MinValue is the smallest integer expressible as a Roman numeral.
	MinValue = 1
	// MaxValue is the largest integer expressible in standard notation.
	MaxValue = 3999
)

// symbol pairs a Roman symbol (or subtractive pair) with its value.
type symbol struct {
	text  string
	value int
}

// symbols must stay ordered by descending value; both conversions rely on it.
var symbols = [...]symbol{
	{"M", 1000},
	{"CM", 900},
	{"D", 500},
	{"CD", 400},
	{"C", 100},
	{"XC", 90},
	{"L", 50},
	{"XL", 40},
	{"X", 10},
	{"IX", 9},
	{"V", 5},
	{"IV", 4},
	{"I", 1},
}

// grammar is the complete grammar of canonical numerals, not a prefilter.
// It also matches the empty string, which ToArabic rejects separately.
var grammar = regexp.MustCompile(`^M{0,3}(CM|CD|D?C{0,3})(XC|XL|L?X{0,3})(IX|IV|V?I{0,3})$`)

// ToRoman converts n to its canonical Roman numeral using greedy subtraction
// over the symbol table.
//
// Returns ErrOutOfRange if n is outside [MinValue, MaxValue].
func ToRoman(n int) (string, error) {
	if n < MinValue || n > MaxValue {
		return "", ErrOutOfRange
	}

	var b strings.Builder
	remaining := n
	for _, s := range symbols {
		for remaining >= s.value {
			b.WriteString(s.text)
			remaining -= s.value
		}
	}

	return b.String(), nil
}

// ToArabic converts a Roman numeral to its integer value. Input is
// case-insensitive and any whitespace inside it is ignored, so "mcm xciv"
// yields 1994.
//
// Returns ErrEmpty for empty input and ErrInvalidNumeral for anything the
// grammar rejects (e.g. "IIII", "IC", "VX", "VL").
func ToArabic(s string) (int, error) {
	normalized := normalize(s)
	if normalized == "" {
		return 0, ErrEmpty
	}
	if !grammar.MatchString(normalized) {
		return 0, ErrInvalidNumeral
	}

	total := 0
	rest := normalized
	for _, sym := range symbols {
		for strings.HasPrefix(rest, sym.text) {
			total += sym.value
			rest = rest[len(sym.text):]
		}
	}

	// Unreachable for grammar-matched input; guards the decomposition anyway.
	if rest != "" || total < MinValue || total > MaxValue {
		return 0, ErrInvalidNumeral
	}

	return total, nil
}

// normalize drops all whitespace and uppercases ASCII letters. Non-ASCII
// letters are left alone so that look-alikes such as the dotless i never
// fold into a valid symbol.
func normalize(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case unicode.IsSpace(r):
			return -1
		case r >= 'a' && r <= 'z':
			return r - ('a' - 'A')
		default:
			return r
		}
	}, s)
}
