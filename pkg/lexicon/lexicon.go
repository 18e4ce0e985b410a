/*
Package lexicon holds the immutable word data a solving session reads:
the set of valid guess words, per-word corpus commonality, and the
root-word dictionary used for plural detection.

A Lexicon never changes after construction. Refreshing word data means
building a new Lexicon value; sessions started against the old one keep
using it untouched.
*/
package lexicon

import (
	"fmt"
	"math"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// WordLength is the fixed length of every guess and answer.
const WordLength = 5

// Normalize lowercases a word and reports whether it is exactly
// WordLength ASCII letters.
func Normalize(word string) (string, bool) {
	if len(word) != WordLength {
		return "", false
	}
	var b [WordLength]byte
	for i := 0; i < WordLength; i++ {
		c := word[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
			c += 'a' - 'A'
		default:
			return "", false
		}
		b[i] = c
	}
	return string(b[:]), true
}

// Lexicon is the shared, read-only word data for a solving session.
type Lexicon struct {
	words       []string
	wordSet     map[string]struct{}
	commonality map[string]float64
	roots       *patricia.Trie
}

// New builds a Lexicon from the valid guess words, raw corpus frequencies,
// and the full corpus token list that becomes the root-word dictionary.
//
// Frequencies are compressed with ln(1+f) and normalized against the corpus
// maximum, so Commonality always lands in [0, 1]. Words carrying no
// frequency simply score zero there. Malformed or duplicate entries in the
// word list are dropped, not errors.
func New(words []string, freqs map[string]float64, rootTokens []string) (*Lexicon, error) {
	wordSet := make(map[string]struct{}, len(words))
	kept := make([]string, 0, len(words))
	skipped := 0
	for _, w := range words {
		normalized, ok := Normalize(w)
		if !ok {
			skipped++
			continue
		}
		if _, dup := wordSet[normalized]; dup {
			continue
		}
		wordSet[normalized] = struct{}{}
		kept = append(kept, normalized)
	}
	if skipped > 0 {
		log.Debugf("lexicon: dropped %d malformed words", skipped)
	}
	if len(kept) == 0 {
		return nil, fmt.Errorf("lexicon: no valid %d-letter words", WordLength)
	}
	sort.Strings(kept)

	maxFreq := 0.0
	for w, f := range freqs {
		if f < 0 {
			log.Warnf("lexicon: negative frequency for %q ignored", w)
			continue
		}
		if f > maxFreq {
			maxFreq = f
		}
	}
	commonality := make(map[string]float64, len(freqs))
	if maxFreq > 0 {
		logMax := math.Log1p(maxFreq)
		for w, f := range freqs {
			if f < 0 {
				continue
			}
			commonality[w] = math.Log1p(f) / logMax
		}
	}

	roots := patricia.NewTrie()
	for _, token := range rootTokens {
		roots.Insert(patricia.Prefix(token), true)
	}

	log.Debugf("lexicon: %d words, %d with frequency data, %d root tokens",
		len(kept), len(commonality), len(rootTokens))

	return &Lexicon{
		words:       kept,
		wordSet:     wordSet,
		commonality: commonality,
		roots:       roots,
	}, nil
}

// Contains reports whether word (any case) is a valid guess.
func (l *Lexicon) Contains(word string) bool {
	normalized, ok := Normalize(word)
	if !ok {
		return false
	}
	_, present := l.wordSet[normalized]
	return present
}

// Words returns the valid words in sorted order. The returned slice is a
// copy; callers may keep or narrow it freely.
func (l *Lexicon) Words() []string {
	out := make([]string, len(l.words))
	copy(out, l.words)
	return out
}

// Size returns the number of valid words.
func (l *Lexicon) Size() int {
	return len(l.words)
}

// Commonality returns the normalized usage score in [0, 1].
// Words absent from the corpus score zero.
func (l *Lexicon) Commonality(word string) float64 {
	return l.commonality[word]
}

// HasRoot reports whether token appears in the root-word dictionary.
func (l *Lexicon) HasRoot(token string) bool {
	return l.roots.Get(patricia.Prefix(token)) != nil
}
