package solver

import (
	"fmt"

	"github.com/solvekit/hintserve/pkg/lexicon"
)

// Feedback classifies one guess position.
type Feedback uint8

const (
	// Grey marks a letter absent from the answer, or present fewer times
	// than the guess used it.
	Grey Feedback = iota
	// Yellow marks a letter present in the answer but at another position.
	Yellow
	// Green marks a letter at its correct position.
	Green
)

// FeedbackVector holds one symbol per guess position.
type FeedbackVector [lexicon.WordLength]Feedback

// ParseFeedback reads the g/y/x notation used at the input boundary.
// Case is ignored.
func ParseFeedback(s string) (FeedbackVector, error) {
	var v FeedbackVector
	if len(s) != lexicon.WordLength {
		return v, fmt.Errorf("%w: got %d symbols", ErrInvalidFeedback, len(s))
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		switch c {
		case 'g':
			v[i] = Green
		case 'y':
			v[i] = Yellow
		case 'x':
			v[i] = Grey
		default:
			return FeedbackVector{}, fmt.Errorf("%w: symbol %q at position %d", ErrInvalidFeedback, s[i], i+1)
		}
	}
	return v, nil
}

// AllGreen reports whether every position is Green.
func (v FeedbackVector) AllGreen() bool {
	for _, f := range v {
		if f != Green {
			return false
		}
	}
	return true
}

// String renders the vector in g/y/x notation.
func (v FeedbackVector) String() string {
	b := make([]byte, len(v))
	for i, f := range v {
		switch f {
		case Green:
			b[i] = 'g'
		case Yellow:
			b[i] = 'y'
		default:
			b[i] = 'x'
		}
	}
	return string(b)
}

// Judge computes the feedback the game would give for guess against answer.
// Greens claim their answer letters first; the remaining letters satisfy
// yellows left to right, so guess letters duplicated beyond the answer's
// count come back grey. Both words must be normalized five-letter words.
func Judge(guess, answer string) FeedbackVector {
	var v FeedbackVector
	var remaining [26]int
	for i := 0; i < lexicon.WordLength; i++ {
		if guess[i] == answer[i] {
			v[i] = Green
		} else {
			remaining[answer[i]-'a']++
		}
	}
	for i := 0; i < lexicon.WordLength; i++ {
		if v[i] == Green {
			continue
		}
		li := guess[i] - 'a'
		if remaining[li] > 0 {
			v[i] = Yellow
			remaining[li]--
		}
	}
	return v
}
