package query

import (
	"sync"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bastiangx/wordglob/pkg/dictionary"
	"github.com/bastiangx/wordglob/pkg/glob"
	"github.com/bastiangx/wordglob/pkg/letters"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

var fixtureWords = []string{
	"hello", "hallo", "hills", "holly", "jelly",
	"crane", "crate", "crypt", "lynch", "nymph",
	"stare", "toast", "roast", "shore", "trust",
	"eerie", "geese", "audio", "slate", "pygmy",
}

func newFixture(t *testing.T) *dictionary.Dictionary {
	t.Helper()
	dict := dictionary.New(fixtureWords)
	require.Equal(t, len(fixtureWords), dict.Len())
	return dict
}

func TestMatchPattern(t *testing.T) {
	dict := newFixture(t)

	tests := []struct {
		name     string
		pattern  string
		expected []string
	}{
		{"empty pattern", "", []string{}},
		{"exact word", "crane", []string{"crane"}},
		{"exact word upper case", "CRANE", []string{"crane"}},
		{"exact word not in dictionary", "brine", []string{}},
		{"too short literal", "cran", []string{}},
		{"single wildcard", "h?llo", []string{"hallo", "hello"}},
		{"literal prefix and star", "cr*", []string{"crane", "crate", "crypt"}},
		{"star suffix literal", "*ast", []string{"roast", "toast"}},
		{"star matches everything", "*", fixtureSorted()},
		{"five wildcards", "?????", fixtureSorted()},
		{"four wildcards", "????", []string{}},
		{"six wildcards", "??????", []string{}},
		{"bracket set", "[ch]r*", []string{"crane", "crate", "crypt"}},
		{"negated bracket", "[!c]r*", []string{"trust"}},
		{"long pattern", "crane*crane", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchPattern(tt.pattern, dict)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestMatchPatternProperties(t *testing.T) {
	dict := newFixture(t)
	patterns := []string{"", "*", "?????", "h*", "*y*", "?r???", "[a-h]*", "*e", "s*e", "**"}

	for _, pattern := range patterns {
		got := MatchPattern(pattern, dict)
		for _, word := range got {
			assert.Len(t, []rune(word), dictionary.WordLength, "pattern %q", pattern)
			assert.True(t, glob.Match(pattern, word), "pattern %q returned non-matching %q", pattern, word)
		}
		assert.IsIncreasing(t, got, "pattern %q result not sorted", pattern)
	}
}

func TestFilterBlacklist(t *testing.T) {
	dict := newFixture(t)
	all := MatchPattern("*", dict)

	kept := FilterBlacklist(all, letters.Parse("aeiou"))
	assert.ElementsMatch(t, []string{"crypt", "lynch", "nymph", "pygmy"}, kept)

	// idempotent
	assert.Equal(t, kept, FilterBlacklist(kept, letters.Parse("aeiou")))

	// empty blacklist is a no-op
	assert.Equal(t, all, FilterBlacklist(all, letters.Parse("")))

	// input untouched
	assert.Equal(t, fixtureSorted(), all)
}

func TestFilterYellow(t *testing.T) {
	dict := newFixture(t)
	all := MatchPattern("*", dict)

	yellow := letters.Parse("st")
	kept := FilterYellow(all, yellow)
	assert.ElementsMatch(t, []string{"stare", "toast", "roast", "trust", "slate"}, kept)
	for _, word := range kept {
		assert.True(t, yellow.SubsetOf(word), "%q lacks a yellow letter", word)
	}

	assert.Equal(t, all, FilterYellow(all, letters.Parse("")))
	assert.Empty(t, FilterYellow(all, letters.Parse("zq")))
}

func TestPartition(t *testing.T) {
	words := []string{"crane", "hello", "eerie", "crypt", "geese", "slate"}
	noRepeat, withRepeat := Partition(words)

	assert.Equal(t, []string{"crane", "crypt", "slate"}, noRepeat)
	assert.Equal(t, []string{"hello", "eerie", "geese"}, withRepeat)

	emptyNo, emptyWith := Partition(nil)
	assert.Empty(t, emptyNo)
	assert.Empty(t, emptyWith)
}

func TestRun(t *testing.T) {
	dict := newFixture(t)

	tests := []struct {
		name       string
		query      Query
		all        []string
		noRepeat   []string
		withRepeat []string
	}{
		{
			name:       "wildcard with no letter filters",
			query:      New("h?llo", "", ""),
			all:        []string{"hallo", "hello"},
			noRepeat:   []string{},
			withRepeat: []string{"hallo", "hello"},
		},
		{
			name:       "vowel blacklist",
			query:      New("*", "aeiou", ""),
			all:        []string{"crypt", "lynch", "nymph", "pygmy"},
			noRepeat:   []string{"crypt", "lynch", "nymph"},
			withRepeat: []string{"pygmy"},
		},
		{
			name:       "yellow letters",
			query:      New("*", "", "ST"),
			all:        []string{"roast", "slate", "stare", "toast", "trust"},
			noRepeat:   []string{"roast", "slate", "stare"},
			withRepeat: []string{"toast", "trust"},
		},
		{
			name:       "blacklist and yellow together",
			query:      New("*", "o", "st"),
			all:        []string{"slate", "stare", "trust"},
			noRepeat:   []string{"slate", "stare"},
			withRepeat: []string{"trust"},
		},
		{
			name:       "yellow letter may sit on a pattern position",
			query:      New("c????", "", "c"),
			all:        []string{"crane", "crate", "crypt"},
			noRepeat:   []string{"crane", "crate", "crypt"},
			withRepeat: []string{},
		},
		{
			name:       "empty pattern",
			query:      New("", "", ""),
			all:        []string{},
			noRepeat:   []string{},
			withRepeat: []string{},
		},
		{
			name:       "metacharacters in letter sets are literal",
			query:      New("cr*", "*?", "?"),
			all:        []string{},
			noRepeat:   []string{},
			withRepeat: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Run(dict, tt.query)
			assert.Equal(t, tt.all, res.All)
			assert.Equal(t, tt.noRepeat, res.NoRepeat)
			assert.Equal(t, tt.withRepeat, res.WithRepeat)
			assert.Equal(t, len(tt.all), res.Count())

			// partition is complete and disjoint
			union := append(append([]string{}, res.NoRepeat...), res.WithRepeat...)
			assert.ElementsMatch(t, res.All, union)
			for _, w := range res.NoRepeat {
				assert.NotContains(t, res.WithRepeat, w)
			}
		})
	}
}

func TestRunConcurrent(t *testing.T) {
	dict := newFixture(t)
	patterns := []string{"*", "h?llo", "cr*", "?????", "*st", ""}

	expected := make(map[string]Result, len(patterns))
	for _, p := range patterns {
		expected[p] = Run(dict, New(p, "", ""))
	}

	var wg sync.WaitGroup
	for worker := 0; worker < 8; worker++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				p := patterns[i%len(patterns)]
				got := Run(dict, New(p, "", ""))
				if !assert.Equal(t, expected[p], got) {
					return
				}
			}
		}()
	}
	wg.Wait()
}

func fixtureSorted() []string {
	return dictionary.New(fixtureWords).Words()
}
