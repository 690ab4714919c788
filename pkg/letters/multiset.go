// Package letters implements the letter-multiset primitive the rest of the
// generator is built on: counting letters in a word or bag, and testing
// sub-multiset containment.
package letters

import (
	"sort"
	"strings"
)

// Multiset counts occurrences of each uppercase Latin letter A..Z.
type Multiset struct {
	counts [26]int
}

// From builds a Multiset from a word, normalizing to uppercase. Non-letter
// runes are ignored.
func From(word string) Multiset {
	var m Multiset
	for _, r := range strings.ToUpper(word) {
		if r >= 'A' && r <= 'Z' {
			m.counts[r-'A']++
		}
	}
	return m
}

// Count returns the number of occurrences of letter (case-insensitive).
func (m Multiset) Count(letter byte) int {
	letter = toUpperByte(letter)
	if letter < 'A' || letter > 'Z' {
		return 0
	}
	return m.counts[letter-'A']
}

// Contains reports whether every letter's count in other is <= this
// multiset's count for that letter, i.e. other is a sub-multiset of m.
func (m Multiset) Contains(other Multiset) bool {
	for i := range m.counts {
		if other.counts[i] > m.counts[i] {
			return false
		}
	}
	return true
}

// Set returns the distinct-letters bitset underlying m, for cheap
// pre-filtering before a full Contains check.
func (m Multiset) Set() Set {
	var s Set
	for i, c := range m.counts {
		if c > 0 {
			s.Add(byte('A' + i))
		}
	}
	return s
}

// Size returns the total number of letters represented.
func (m Multiset) Size() int {
	total := 0
	for _, c := range m.counts {
		total += c
	}
	return total
}

// Signature returns the letters of the multiset in sorted order, used as a
// canonical anagram key. A letter appearing N times appears N times in the
// signature.
func (m Multiset) Signature() string {
	var b strings.Builder
	for i, c := range m.counts {
		for j := 0; j < c; j++ {
			b.WriteByte(byte('A' + i))
		}
	}
	return b.String()
}

// Signature returns the sorted-letters signature of a word directly,
// without constructing an intermediate Multiset where only the key matters.
func Signature(word string) string {
	up := strings.ToUpper(word)
	b := []byte(up)
	sort.Slice(b, func(i, j int) bool { return b[i] < b[j] })
	return string(b)
}

func toUpperByte(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}
