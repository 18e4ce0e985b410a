package lexicon

// IsRegularPlural reports whether word looks like a regular plural: it ends
// in 's' and stripping the suffix ('s', 'es', or 'ies'->'y') yields a word
// in the root dictionary. The daily game never uses regular plurals as
// answers, so these are pruned from the answer pool.
//
// This is a suffix heuristic, not morphology: irregular plurals with no
// derivable root ("geese") slip through, and a rare word whose trailing 's'
// coincides with an unrelated root may be pruned wrongly. Both are accepted
// trade-offs.
func (l *Lexicon) IsRegularPlural(word string) bool {
	if len(word) != WordLength || word[WordLength-1] != 's' {
		return false
	}
	// "glass", "dress": a double-s ending is not a plural suffix.
	if word[3] == 's' {
		return false
	}
	// "spots" -> "spot"
	if l.HasRoot(word[:4]) {
		return true
	}
	// "boxes" -> "box"
	if word[3] == 'e' && l.HasRoot(word[:3]) {
		return true
	}
	// "flies" -> "fly"
	if word[2] == 'i' && word[3] == 'e' && l.HasRoot(word[:2]+"y") {
		return true
	}
	return false
}

// FilterPlurals returns the subset of words that remain plausible answers
// once regular plurals are pruned. Order is preserved and the input slice
// is left untouched.
func FilterPlurals(words []string, lex *Lexicon) []string {
	kept := make([]string, 0, len(words))
	for _, w := range words {
		if !lex.IsRegularPlural(w) {
			kept = append(kept, w)
		}
	}
	return kept
}
