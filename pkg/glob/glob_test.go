package glob

import (
	"strings"
	"testing"
)

func TestMatch(t *testing.T) {
	testCases := []struct {
		pattern  string
		name     string
		expected bool
		desc     string
	}{
		// literals
		{"hello", "hello", true, "exact literal"},
		{"hello", "hellos", false, "anchored at end"},
		{"ello", "hello", false, "anchored at start"},
		{"", "", true, "empty matches empty"},
		{"", "hello", false, "empty never matches a word"},

		// '?'
		{"h?llo", "hello", true, "single wildcard"},
		{"h?llo", "hallo", true, "single wildcard, other letter"},
		{"h?llo", "hllo", false, "'?' needs exactly one char"},
		{"?????", "crane", true, "five wildcards"},
		{"?????", "cranes", false, "five wildcards, six chars"},
		{"????", "crane", false, "four wildcards, five chars"},

		// '*'
		{"*", "crane", true, "star alone"},
		{"*", "", true, "star matches empty"},
		{"c*", "crane", true, "leading literal"},
		{"*e", "crane", true, "trailing literal"},
		{"*a*", "crane", true, "inner literal"},
		{"*z*", "crane", false, "missing inner literal"},
		{"c*e", "crane", true, "star in the middle"},
		{"c*e", "crate", true, "star in the middle, other word"},
		{"c*e", "cranes", false, "star in the middle, wrong end"},
		{"**e", "crane", true, "double star"},
		{"*r*n?", "crane", true, "mixed operators"},
		{"a*a*a", "aaaa", true, "backtracking over repeats"},
		{"a*b", "aaaac", false, "backtracking exhausts"},

		// brackets
		{"[ch]rane", "crane", true, "set member"},
		{"[bd]rane", "crane", false, "set non member"},
		{"[a-d]rane", "crane", true, "range"},
		{"[d-z]rane", "crane", false, "range miss"},
		{"[!c]rane", "crane", false, "negated set"},
		{"[!b]rane", "crane", true, "negated set miss"},
		{"[]]x", "]x", true, "leading ']' is literal"},
		{"[!]]x", "ax", true, "leading ']' after '!' is literal"},
		{"[z-a]x", "mx", false, "reversed range matches nothing"},
		{"[a-]x", "-x", true, "trailing '-' is literal"},
		{"[^c]x", "^x", true, "'^' is an ordinary member"},
		{"ab[c", "ab[c", true, "unterminated bracket is literal"},
		{"ab[c", "abc", false, "unterminated bracket needs '['"},
		{"*[aeiou]", "crane", true, "class after star"},

		// runes
		{"caf?", "café", true, "wildcard over multibyte rune"},
		{"?????", "cafés", true, "rune length, not byte length"},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			if got := Match(tc.pattern, tc.name); got != tc.expected {
				t.Errorf("Match(%q, %q) = %v, want %v", tc.pattern, tc.name, got, tc.expected)
			}
		})
	}
}

func TestLiteralPrefix(t *testing.T) {
	testCases := []struct {
		pattern  string
		expected string
	}{
		{"", ""},
		{"crane", "crane"},
		{"cr*", "cr"},
		{"c?ane", "c"},
		{"[ab]c", ""},
		{"*", ""},
	}

	for _, tc := range testCases {
		if got := LiteralPrefix(tc.pattern); got != tc.expected {
			t.Errorf("LiteralPrefix(%q) = %q, want %q", tc.pattern, got, tc.expected)
		}
		if got := HasOperators(tc.pattern); got != (tc.pattern != tc.expected) {
			t.Errorf("HasOperators(%q) = %v", tc.pattern, got)
		}
	}
}

func TestCompiledPattern(t *testing.T) {
	words := []string{"crane", "crate", "hello", "trust", "[abc", "cr]ne"}
	patterns := []string{"c*e", "h?llo", "[!c]*", "[a-c]*", "cr[]]ne", "[abc", "*t", ""}

	for _, pattern := range patterns {
		compiled := Compile(pattern)
		for _, word := range words {
			if got, want := compiled.Match(word), Match(pattern, word); got != want {
				t.Errorf("Compile(%q).Match(%q) = %v, Match = %v", pattern, word, got, want)
			}
		}
	}
}

func TestCompiledPatternDoesNotReconvert(t *testing.T) {
	// a huge pattern must not be converted again for every name
	compiled := Compile(strings.Repeat("*", 1<<20) + "o")
	allocs := testing.AllocsPerRun(20, func() {
		if !compiled.Match("hello") {
			t.Fatal("expected match")
		}
	})
	if allocs > 1 {
		t.Errorf("Match allocated %.0f times per call", allocs)
	}
}
