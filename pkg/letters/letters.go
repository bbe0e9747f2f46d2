// Package letters implements the small character sets used to filter candidate words.
//
// a-z are kept in a 26-bit mask; anything else (digits, symbols, non-ASCII runes)
// falls back to a map so arbitrary user input stays a valid set.
package letters

import (
	"math/bits"
	"sort"
	"strings"
)

// Set is an immutable set of runes. The zero value is the empty set.
type Set struct {
	mask  uint32
	extra map[rune]struct{}
}

// Parse lower-cases s and collects its runes. Duplicates collapse,
// glob metacharacters are plain members.
func Parse(s string) Set {
	return Of(strings.ToLower(s))
}

// Of collects the runes of s as given, without case folding.
func Of(s string) Set {
	var set Set
	for _, r := range s {
		set.add(r)
	}
	return set
}

func (s *Set) add(r rune) {
	if r >= 'a' && r <= 'z' {
		s.mask |= 1 << uint(r-'a')
		return
	}
	if s.extra == nil {
		s.extra = make(map[rune]struct{})
	}
	s.extra[r] = struct{}{}
}

// Empty reports whether the set has no members.
func (s Set) Empty() bool {
	return s.mask == 0 && len(s.extra) == 0
}

// Len returns the number of distinct members.
func (s Set) Len() int {
	return bits.OnesCount32(s.mask) + len(s.extra)
}

// Has reports whether r is a member.
func (s Set) Has(r rune) bool {
	if r >= 'a' && r <= 'z' {
		return s.mask&(1<<uint(r-'a')) != 0
	}
	_, ok := s.extra[r]
	return ok
}

// ContainsAny reports whether any rune of word is a member.
func (s Set) ContainsAny(word string) bool {
	if s.Empty() {
		return false
	}
	for _, r := range word {
		if s.Has(r) {
			return true
		}
	}
	return false
}

// SubsetOf reports whether every member appears somewhere in word.
func (s Set) SubsetOf(word string) bool {
	if s.Empty() {
		return true
	}
	w := Of(word)
	if s.mask&^w.mask != 0 {
		return false
	}
	for r := range s.extra {
		if !w.Has(r) {
			return false
		}
	}
	return true
}

// String returns the members in ascending rune order.
func (s Set) String() string {
	var b strings.Builder
	for i := 0; i < 26; i++ {
		if s.mask&(1<<uint(i)) != 0 {
			b.WriteRune('a' + rune(i))
		}
	}
	if len(s.extra) > 0 {
		rest := make([]rune, 0, len(s.extra))
		for r := range s.extra {
			rest = append(rest, r)
		}
		sort.Slice(rest, func(i, j int) bool { return rest[i] < rest[j] })
		for _, r := range rest {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// HasRepeats reports whether any rune occurs more than once in word.
func HasRepeats(word string) bool {
	var mask uint32
	var seen map[rune]struct{}
	for _, r := range word {
		if r >= 'a' && r <= 'z' {
			bit := uint32(1) << uint(r-'a')
			if mask&bit != 0 {
				return true
			}
			mask |= bit
			continue
		}
		if seen == nil {
			seen = make(map[rune]struct{})
		}
		if _, ok := seen[r]; ok {
			return true
		}
		seen[r] = struct{}{}
	}
	return false
}
