package domain

// NumberKind is the lexical category of a candidate number literal.
type NumberKind string

const (
	NumberInvalid NumberKind = "invalid"
	NumberInteger NumberKind = "integer"
	NumberDecimal NumberKind = "decimal"
)

// Classify scans s and reports what kind of real-number literal it is.
//
// Accepted grammar: an optional leading '+' or '-', then ASCII digits with at
// most one '.', and at least one digit overall. "5." and ".5" are decimals;
// ".", "+", "-" and "" are invalid. Whitespace, exponents and non-ASCII
// digits are rejected.
func Classify(s string) NumberKind {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	digits, dots := 0, 0
	for ; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			digits++
		case c == '.':
			dots++
			if dots > 1 {
				return NumberInvalid
			}
		default:
			return NumberInvalid
		}
	}

	if digits == 0 {
		return NumberInvalid
	}
	if dots == 1 {
		return NumberDecimal
	}
	return NumberInteger
}

// IsNumeric reports whether s lexically represents a valid real number.
func IsNumeric(s string) bool {
	return Classify(s) != NumberInvalid
}
