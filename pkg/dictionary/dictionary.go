/*
Package dictionary loads and holds the fixed set of five-letter words used by wordglob.

A Dictionary is built once at startup and never changes afterwards, so every
front end can share one instance across goroutines without locking.

Words are stored twice: as a sorted slice for full scans and in a Patricia trie
so lookups whose pattern starts with literal letters only visit the matching subtree.

	dict, err := dictionary.Load("")
	if errors.Is(err, dictionary.ErrDataUnavailable) {
		// fatal, nothing can be served
	}
	dict.VisitPrefix("cr", func(word string) { ... })
*/
package dictionary

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// WordLength is the only word length kept in a Dictionary.
const WordLength = 5

// Dictionary is an immutable set of lowercase five-letter words.
type Dictionary struct {
	words []string
	index map[string]struct{}
	trie  *patricia.Trie
}

// New builds a Dictionary from raw entries.
// Entries are lower-cased and trimmed, anything not five runes long is dropped
// and duplicates collapse.
func New(entries []string) *Dictionary {
	index := make(map[string]struct{}, len(entries))
	words := make([]string, 0, len(entries))
	trie := patricia.NewTrie()

	dropped := 0
	for _, entry := range entries {
		word := strings.ToLower(strings.TrimSpace(entry))
		if utf8.RuneCountInString(word) != WordLength {
			dropped++
			continue
		}
		if _, exists := index[word]; exists {
			continue
		}
		index[word] = struct{}{}
		words = append(words, word)
		trie.Insert(patricia.Prefix(word), struct{}{})
	}
	sort.Strings(words)

	if dropped > 0 {
		log.Debugf("Dropped %d entries that are not %d letters long", dropped, WordLength)
	}

	return &Dictionary{
		words: words,
		index: index,
		trie:  trie,
	}
}

// Len returns the number of words.
func (d *Dictionary) Len() int {
	return len(d.words)
}

// Contains reports whether word is in the dictionary, ignoring case.
func (d *Dictionary) Contains(word string) bool {
	_, ok := d.index[strings.ToLower(word)]
	return ok
}

// Words returns a sorted copy of every word.
func (d *Dictionary) Words() []string {
	out := make([]string, len(d.words))
	copy(out, d.words)
	return out
}

// Each calls fn for every word in sorted order.
func (d *Dictionary) Each(fn func(word string)) {
	for _, word := range d.words {
		fn(word)
	}
}

// VisitPrefix calls fn for every word starting with prefix.
// An empty prefix visits the whole dictionary in sorted order; otherwise
// the visiting order is the trie's and callers that need order must sort.
func (d *Dictionary) VisitPrefix(prefix string, fn func(word string)) {
	if prefix == "" {
		d.Each(fn)
		return
	}
	if utf8.RuneCountInString(prefix) > WordLength {
		return
	}

	err := d.trie.VisitSubtree(patricia.Prefix(prefix), func(p patricia.Prefix, _ patricia.Item) error {
		fn(string(p))
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting trie subtree: %v", err)
	}
}
