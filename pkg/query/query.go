// Package query runs a word lookup: glob match, letter filters, then the repeat partition.
//
// Every stage is a pure function over the previous stage's output and the
// shared Dictionary is only read, so Run is safe to call from many goroutines.
package query

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/bastiangx/wordglob/pkg/dictionary"
	"github.com/bastiangx/wordglob/pkg/glob"
	"github.com/bastiangx/wordglob/pkg/letters"
)

// Query holds the normalized user input for one lookup.
type Query struct {
	Pattern   string
	Blacklist letters.Set
	Yellow    letters.Set
}

// New lower-cases the pattern and turns the blacklist and yellow inputs into letter sets.
// Any input is accepted.
func New(pattern, blacklist, yellow string) Query {
	return Query{
		Pattern:   strings.ToLower(pattern),
		Blacklist: letters.Parse(blacklist),
		Yellow:    letters.Parse(yellow),
	}
}

// Result holds the three word groups of one lookup, each sorted.
// NoRepeat and WithRepeat partition All.
type Result struct {
	All        []string `json:"all"`
	NoRepeat   []string `json:"no_repeat"`
	WithRepeat []string `json:"with_repeat"`
}

// Count returns the number of matching words.
func (r Result) Count() int {
	return len(r.All)
}

// Empty reports whether nothing matched.
func (r Result) Empty() bool {
	return len(r.All) == 0
}

// Run executes q against dict.
func Run(dict *dictionary.Dictionary, q Query) Result {
	matches := MatchPattern(q.Pattern, dict)
	matches = FilterBlacklist(matches, q.Blacklist)
	matches = FilterYellow(matches, q.Yellow)
	noRepeat, withRepeat := Partition(matches)

	return Result{
		All:        matches,
		NoRepeat:   noRepeat,
		WithRepeat: withRepeat,
	}
}

// MatchPattern returns the five-letter words of dict matching pattern, sorted.
// The pattern is lower-cased first. An empty pattern matches nothing.
func MatchPattern(pattern string, dict *dictionary.Dictionary) []string {
	pattern = strings.ToLower(pattern)
	matches := make([]string, 0)

	if !glob.HasOperators(pattern) {
		// at most one exact hit
		if utf8.RuneCountInString(pattern) == dictionary.WordLength && dict.Contains(pattern) {
			matches = append(matches, pattern)
		}
		return matches
	}

	prefix := glob.LiteralPrefix(pattern)
	compiled := glob.Compile(pattern)

	dict.VisitPrefix(prefix, func(word string) {
		if utf8.RuneCountInString(word) == dictionary.WordLength && compiled.Match(word) {
			matches = append(matches, word)
		}
	})
	if prefix != "" {
		sort.Strings(matches)
	}
	return matches
}

// FilterBlacklist drops words containing any blacklisted letter.
// An empty blacklist keeps every word.
func FilterBlacklist(words []string, blacklist letters.Set) []string {
	if blacklist.Empty() {
		return words
	}
	kept := make([]string, 0, len(words))
	for _, word := range words {
		if !blacklist.ContainsAny(word) {
			kept = append(kept, word)
		}
	}
	return kept
}

// FilterYellow keeps words containing every yellow letter somewhere.
// An empty yellow set keeps every word.
func FilterYellow(words []string, yellow letters.Set) []string {
	if yellow.Empty() {
		return words
	}
	kept := make([]string, 0, len(words))
	for _, word := range words {
		if yellow.SubsetOf(word) {
			kept = append(kept, word)
		}
	}
	return kept
}

// Partition splits words into those with all-distinct letters and those with a repeat,
// keeping the input order in both.
func Partition(words []string) (noRepeat, withRepeat []string) {
	noRepeat = make([]string, 0, len(words))
	withRepeat = make([]string, 0)
	for _, word := range words {
		if letters.HasRepeats(word) {
			withRepeat = append(withRepeat, word)
		} else {
			noRepeat = append(noRepeat, word)
		}
	}
	return noRepeat, withRepeat
}
