package letters

import (
	"fmt"
	"math/bits"
	"strings"
)

// Set is a bitset over A..Z, used as a cheap pre-filter before a full
// Multiset containment check: any dictionary word using a letter absent
// from the bag's Set can be rejected in O(1) without walking its runes.
type Set struct {
	bits  uint32
	count int
}

// SetFrom builds a Set of the distinct letters present in word.
func SetFrom(word string) Set {
	var s Set
	for _, r := range strings.ToUpper(word) {
		if r >= 'A' && r <= 'Z' {
			s.Add(byte(r))
		}
	}
	return s
}

// Add adds a letter to the set. Non-letter bytes are ignored.
func (s *Set) Add(letter byte) {
	letter = toUpperByte(letter)
	if letter < 'A' || letter > 'Z' {
		return
	}
	bit := uint32(1) << uint(letter-'A')
	if s.bits&bit == 0 {
		s.bits |= bit
		s.count = bits.OnesCount32(s.bits)
	}
}

// Contains reports whether letter is present in the set.
func (s Set) Contains(letter byte) bool {
	letter = toUpperByte(letter)
	if letter < 'A' || letter > 'Z' {
		return false
	}
	return s.bits&(uint32(1)<<uint(letter-'A')) != 0
}

// SupersetOf reports whether every letter in other also appears in s —
// a necessary (not sufficient) condition for s's owning bag to be able
// to spell a word using other's letters.
func (s Set) SupersetOf(other Set) bool {
	return other.bits&^s.bits == 0
}

// Count returns the number of distinct letters in the set.
func (s Set) Count() int { return s.count }

func (s Set) String() string {
	if s.count == 0 {
		return "{}"
	}
	var letters []string
	for i := uint(0); i < 26; i++ {
		if s.bits&(1<<i) != 0 {
			letters = append(letters, fmt.Sprintf("%c", rune('A'+i)))
		}
	}
	return "{" + strings.Join(letters, "") + "}"
}
