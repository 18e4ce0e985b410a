/*
Package dictionary parses the on-disk word lists the solver consumes: the
valid-guess list, the past-answer list, and the frequency corpus.

Fetching and refreshing those files is a separate concern; this package
only reads whatever is already on disk. Formats are line based:

  - word list: one word per line
  - past answers: one word per line
  - frequency corpus: "token count" per line, most frequent first
*/
package dictionary

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/solvekit/hintserve/pkg/lexicon"
)

// FrequencyData is the parsed corpus: raw usage counts for five-letter
// words, plus every token seen, which seeds the plural-root dictionary.
type FrequencyData struct {
	Counts map[string]float64
	Tokens []string
}

// ParseWordList reads one word per line, keeping valid five-letter words
// and dropping everything else.
func ParseWordList(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	var words []string
	skipped := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		w, ok := lexicon.Normalize(line)
		if !ok {
			skipped++
			continue
		}
		words = append(words, w)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading word list: %w", err)
	}
	if skipped > 0 {
		log.Debugf("word list: skipped %d malformed entries", skipped)
	}
	return words, nil
}

// ParseFrequency reads "token count" lines. Every token feeds the root
// dictionary regardless of length; counts are kept only for five-letter
// tokens. Malformed lines and negative counts are dropped silently — the
// corpus is noisy by nature.
func ParseFrequency(r io.Reader) (*FrequencyData, error) {
	data := &FrequencyData{Counts: make(map[string]float64)}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		token, countStr, ok := strings.Cut(line, " ")
		if !ok {
			continue
		}
		token = strings.ToLower(token)
		data.Tokens = append(data.Tokens, token)

		w, ok := lexicon.Normalize(token)
		if !ok {
			continue
		}
		count, err := strconv.ParseFloat(countStr, 64)
		if err != nil || count < 0 {
			continue
		}
		data.Counts[w] = count
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading frequency corpus: %w", err)
	}
	log.Debugf("frequency corpus: %d tokens, %d five-letter counts", len(data.Tokens), len(data.Counts))
	return data, nil
}

// LoadWordList reads a word-list file.
func LoadWordList(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening word list %s: %w", path, err)
	}
	defer file.Close()
	return ParseWordList(file)
}

// LoadAnswerList reads a past-answer file into a set.
func LoadAnswerList(path string) (map[string]struct{}, error) {
	words, err := LoadWordList(path)
	if err != nil {
		return nil, err
	}
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set, nil
}

// LoadFrequency reads a frequency-corpus file.
func LoadFrequency(path string) (*FrequencyData, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening frequency corpus %s: %w", path, err)
	}
	defer file.Close()
	return ParseFrequency(file)
}

// LoadLexicon assembles the Lexicon and the past-answer set from the three
// configured files under dir.
//
// Only the word list is mandatory. A missing answer file means past answers
// stay in the pool; a missing frequency file disables commonality scoring
// and plural detection. Both degrade with a warning rather than failing the
// whole load.
func LoadLexicon(dir, wordsFile, answersFile, frequencyFile string) (*lexicon.Lexicon, map[string]struct{}, error) {
	words, err := LoadWordList(filepath.Join(dir, wordsFile))
	if err != nil {
		return nil, nil, err
	}

	pastAnswers, err := LoadAnswerList(filepath.Join(dir, answersFile))
	if err != nil {
		log.Warnf("no past-answer list (%v); keeping all words in the pool", err)
		pastAnswers = map[string]struct{}{}
	}

	freq, err := LoadFrequency(filepath.Join(dir, frequencyFile))
	if err != nil {
		log.Warnf("no frequency corpus (%v); commonality scoring disabled", err)
		freq = &FrequencyData{Counts: map[string]float64{}}
	}

	lex, err := lexicon.New(words, freq.Counts, freq.Tokens)
	if err != nil {
		return nil, nil, err
	}
	log.Debugf("loaded %d words, %d past answers", lex.Size(), len(pastAnswers))
	return lex, pastAnswers, nil
}
