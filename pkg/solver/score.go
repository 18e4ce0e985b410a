package solver

import (
	"sort"

	"github.com/solvekit/hintserve/pkg/lexicon"
)

// MaxScore is the top of the display scale; blended scores land in
// [0, MaxScore]. Only the ordering matters to the solver itself.
const MaxScore = 5.0

// Suggestion pairs a candidate word with its blended score.
type Suggestion struct {
	Word  string
	Score float64
}

// Scorer ranks candidates against the current pool. It carries no state
// beyond the lexicon it reads commonality from and the blend weights, so
// ranking the same pool twice gives identical output.
type Scorer struct {
	lex          *lexicon.Lexicon
	letterWeight float64
	commonWeight float64
}

// NewScorer builds a scorer with explicit blend weights.
func NewScorer(lex *lexicon.Lexicon, letterWeight, commonWeight float64) *Scorer {
	return &Scorer{lex: lex, letterWeight: letterWeight, commonWeight: commonWeight}
}

// DefaultScorer uses the even 50/50 blend.
func DefaultScorer(lex *lexicon.Lexicon) *Scorer {
	return NewScorer(lex, 0.5, 0.5)
}

// letterPresence returns, per letter, the fraction of pool words containing
// it at least once.
func letterPresence(pool []string) [26]float64 {
	var out [26]float64
	if len(pool) == 0 {
		return out
	}
	var counts [26]int
	for _, w := range pool {
		var seen LetterSet
		for i := 0; i < len(w); i++ {
			c := w[i]
			if !seen.Has(c) {
				seen = seen.Add(c)
				counts[c-'a']++
			}
		}
	}
	total := float64(len(pool))
	for i, n := range counts {
		out[i] = float64(n) / total
	}
	return out
}

// Rank scores every pool word against the pool itself and returns them in
// descending score order, ties broken alphabetically so equal-scoring pools
// always rank the same way.
//
// The letter score counts each distinct letter once: a word with a repeated
// letter probes fewer letters and scores lower than one covering five.
func (s *Scorer) Rank(pool []string) []Suggestion {
	presence := letterPresence(pool)
	out := make([]Suggestion, len(pool))
	for i, w := range pool {
		out[i] = Suggestion{Word: w, Score: s.score(w, &presence)}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Word < out[j].Word
	})
	return out
}

func (s *Scorer) score(word string, presence *[26]float64) float64 {
	var seen LetterSet
	letterSum := 0.0
	for i := 0; i < len(word); i++ {
		c := word[i]
		if seen.Has(c) {
			continue
		}
		seen = seen.Add(c)
		letterSum += presence[c-'a']
	}
	letterScore := letterSum / lexicon.WordLength
	blend := s.letterWeight*letterScore + s.commonWeight*s.lex.Commonality(word)
	return blend * MaxScore
}
