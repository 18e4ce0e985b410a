package solver

import (
	"math/bits"
	"strings"
)

// LetterSet is a bitmask over the letters 'a'..'z'. The zero value is the
// empty set; Add returns a new set, so copies are always safe to keep.
type LetterSet uint32

// Has reports whether c is in the set.
func (s LetterSet) Has(c byte) bool {
	return s&(1<<(c-'a')) != 0
}

// Add returns the set with c included.
func (s LetterSet) Add(c byte) LetterSet {
	return s | 1<<(c-'a')
}

// Empty reports whether the set holds no letters.
func (s LetterSet) Empty() bool {
	return s == 0
}

// Len returns the number of letters in the set.
func (s LetterSet) Len() int {
	return bits.OnesCount32(uint32(s))
}

// String lists the letters in alphabetical order.
func (s LetterSet) String() string {
	var b strings.Builder
	for c := byte('a'); c <= 'z'; c++ {
		if s.Has(c) {
			b.WriteByte(c)
		}
	}
	return b.String()
}
