package solver

import (
	"fmt"

	"github.com/solvekit/hintserve/pkg/lexicon"
)

// ConstraintSet is everything learned from the feedback so far. It is a
// plain value — arrays and bitmasks, no pointers — so Apply returns a new
// set and leaves the receiver untouched, which makes rollback on
// inconsistent input free.
//
// Knowledge only grows: fixed positions never unfix, exclusion masks never
// shrink, count bounds only tighten. Input that would have to undo any of
// that is rejected with ErrInconsistentFeedback.
type ConstraintSet struct {
	fixed    [lexicon.WordLength]byte      // 0 where the position is open
	notAt    [lexicon.WordLength]LetterSet // letters ruled out per position
	required LetterSet                     // letters known to be in the answer
	excluded LetterSet                     // letters known absent entirely
	minCount [26]uint8                     // per-letter occurrence lower bound
	maxCount [26]uint8                     // per-letter occurrence upper bound
}

// NewConstraintSet returns the empty constraint set: nothing fixed, nothing
// excluded, every count bounded only by the word length.
func NewConstraintSet() ConstraintSet {
	var c ConstraintSet
	for i := range c.maxCount {
		c.maxCount[i] = lexicon.WordLength
	}
	return c
}

// Apply folds one turn of feedback into the constraints and returns the
// tightened set. The guess must already be normalized.
//
// Grey usually means the letter is absent, but when the same letter also
// got green or yellow elsewhere in this guess, grey instead caps the
// letter's count at the number of green/yellow occurrences. Treating every
// grey as a full exclusion would wrongly kill answers with repeated letters.
func (c ConstraintSet) Apply(guess string, fb FeedbackVector) (ConstraintSet, error) {
	next := c

	// Tally each guess letter by feedback class; the split drives both the
	// duplicate-letter grey rule and the count bounds below.
	var hits, misses [26]uint8
	for i := 0; i < lexicon.WordLength; i++ {
		li := guess[i] - 'a'
		if fb[i] == Grey {
			misses[li]++
		} else {
			hits[li]++
		}
	}

	for i := 0; i < lexicon.WordLength; i++ {
		letter := guess[i]
		li := letter - 'a'
		switch fb[i] {
		case Green:
			if prev := next.fixed[i]; prev != 0 && prev != letter {
				return c, fmt.Errorf("%w: position %d is fixed to %q, new feedback says %q",
					ErrInconsistentFeedback, i+1, prev, letter)
			}
			if next.notAt[i].Has(letter) {
				return c, fmt.Errorf("%w: %q was ruled out at position %d, new feedback puts it there",
					ErrInconsistentFeedback, letter, i+1)
			}
			if next.excluded.Has(letter) {
				return c, fmt.Errorf("%w: %q was excluded, new feedback requires it",
					ErrInconsistentFeedback, letter)
			}
			next.fixed[i] = letter
			next.required = next.required.Add(letter)
		case Yellow:
			if next.fixed[i] == letter {
				return c, fmt.Errorf("%w: %q is fixed at position %d but marked yellow there",
					ErrInconsistentFeedback, letter, i+1)
			}
			if next.excluded.Has(letter) {
				return c, fmt.Errorf("%w: %q was excluded, new feedback requires it",
					ErrInconsistentFeedback, letter)
			}
			next.required = next.required.Add(letter)
			next.notAt[i] = next.notAt[i].Add(letter)
		case Grey:
			if next.fixed[i] == letter {
				return c, fmt.Errorf("%w: %q is fixed at position %d but marked grey there",
					ErrInconsistentFeedback, letter, i+1)
			}
			// Even under a count bound the letter cannot sit here.
			next.notAt[i] = next.notAt[i].Add(letter)
			if hits[li] == 0 {
				if next.required.Has(letter) {
					return c, fmt.Errorf("%w: %q is required but marked fully absent",
						ErrInconsistentFeedback, letter)
				}
				next.excluded = next.excluded.Add(letter)
			}
		}
	}

	// Count bounds: greens and yellows give a lower bound; a grey alongside
	// them pins the count to exactly that many.
	for li := 0; li < 26; li++ {
		if hits[li] == 0 {
			continue
		}
		if hits[li] > next.minCount[li] {
			next.minCount[li] = hits[li]
		}
		if misses[li] > 0 && hits[li] < next.maxCount[li] {
			next.maxCount[li] = hits[li]
		}
		if next.minCount[li] > next.maxCount[li] {
			return c, fmt.Errorf("%w: %q needs at least %d occurrences but at most %d",
				ErrInconsistentFeedback, byte('a'+li), next.minCount[li], next.maxCount[li])
		}
	}

	return next, nil
}

// Allows reports whether word is still consistent with the constraints.
// The word must be normalized.
func (c ConstraintSet) Allows(word string) bool {
	var counts [26]uint8
	for i := 0; i < lexicon.WordLength; i++ {
		letter := word[i]
		if f := c.fixed[i]; f != 0 && f != letter {
			return false
		}
		if c.notAt[i].Has(letter) {
			return false
		}
		if c.excluded.Has(letter) {
			return false
		}
		counts[letter-'a']++
	}
	for li := 0; li < 26; li++ {
		if counts[li] < c.minCount[li] || counts[li] > c.maxCount[li] {
			return false
		}
	}
	return true
}

// Snapshot is the display-friendly view of the constraints: everything a
// presentation layer needs without recomputing anything itself.
type Snapshot struct {
	Fixed    string // one rune per position, '_' where open
	Required string // letters known present, alphabetical
	Excluded string // letters known absent, alphabetical
}

// Snapshot renders the constraints for display. Fixed letters come back
// uppercase, matching how players read the grid.
func (c ConstraintSet) Snapshot() Snapshot {
	fixed := make([]byte, lexicon.WordLength)
	for i, ch := range c.fixed {
		if ch == 0 {
			fixed[i] = '_'
		} else {
			fixed[i] = ch - 'a' + 'A'
		}
	}
	return Snapshot{
		Fixed:    string(fixed),
		Required: c.required.String(),
		Excluded: c.excluded.String(),
	}
}

// Empty reports whether no feedback has been folded in yet.
func (s Snapshot) Empty() bool {
	return s.Required == "" && s.Excluded == "" && s.Fixed == "_____"
}
