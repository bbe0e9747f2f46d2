// Package glob matches words against shell-style patterns.
//
// Only the operators needed for word lookups are supported:
//
//	*      any run of zero or more characters
//	?      exactly one character
//	[abc]  one character from the set, with ranges like [a-e] and negation [!abc]
//
// Every other character matches itself. Matching is anchored and works on runes.
// There is no path separator handling and no escape character.
package glob

// Pattern is a pattern converted once for matching against many names.
type Pattern struct {
	runes []rune
}

// Compile prepares pattern for repeated matching. Every pattern is valid.
func Compile(pattern string) Pattern {
	return Pattern{runes: []rune(pattern)}
}

// Match reports whether the whole of name matches pattern.
// Use Compile when matching one pattern against many names.
func Match(pattern, name string) bool {
	return Compile(pattern).Match(name)
}

// Match reports whether the whole of name matches the pattern.
func (pat Pattern) Match(name string) bool {
	p := pat.runes
	n := []rune(name)

	pi, ni := 0, 0
	// position of the last '*' seen and the name index it is currently absorbing up to
	star, mark := -1, 0

	for ni < len(n) {
		if pi < len(p) {
			if p[pi] == '*' {
				star, mark = pi, ni
				pi++
				continue
			}
			if width, ok := matchOne(p[pi:], n[ni]); ok {
				pi += width
				ni++
				continue
			}
		}
		if star < 0 {
			return false
		}
		mark++
		pi, ni = star+1, mark
	}

	for pi < len(p) && p[pi] == '*' {
		pi++
	}
	return pi == len(p)
}

// matchOne matches a single non-'*' pattern element against c and returns
// how many pattern runes it consumed.
func matchOne(p []rune, c rune) (int, bool) {
	switch p[0] {
	case '?':
		return 1, true
	case '[':
		if matched, width, valid := matchClass(p, c); valid {
			return width, matched
		}
		// unterminated bracket is a literal '['
		return 1, c == '['
	default:
		return 1, p[0] == c
	}
}

// matchClass evaluates the bracket expression at the start of p.
// valid is false when there is no closing ']'.
func matchClass(p []rune, c rune) (matched bool, width int, valid bool) {
	i := 1
	negate := false
	if i < len(p) && p[i] == '!' {
		negate = true
		i++
	}
	start := i
	// a ']' right after the opening bracket is a member, not the terminator
	if i < len(p) && p[i] == ']' {
		i++
	}
	for i < len(p) && p[i] != ']' {
		i++
	}
	if i >= len(p) {
		return false, 0, false
	}
	end := i

	for k := start; k < end; {
		if k+2 < end && p[k+1] == '-' {
			if p[k] <= c && c <= p[k+2] {
				matched = true
			}
			k += 3
			continue
		}
		if p[k] == c {
			matched = true
		}
		k++
	}
	return matched != negate, end + 1, true
}

// LiteralPrefix returns the leading run of pattern that contains no operators.
// Every name matching pattern starts with it.
func LiteralPrefix(pattern string) string {
	for i, r := range pattern {
		if r == '*' || r == '?' || r == '[' {
			return pattern[:i]
		}
	}
	return pattern
}

// HasOperators reports whether pattern contains any glob operator.
func HasOperators(pattern string) bool {
	return LiteralPrefix(pattern) != pattern
}
