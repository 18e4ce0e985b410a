package solver

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/solvekit/hintserve/pkg/lexicon"
)

// State tracks where a session is in its lifecycle.
type State int

const (
	// StateAwaitingGuess means the session is ready for the next
	// guess/feedback pair.
	StateAwaitingGuess State = iota
	// StateSolved means the pool is down to the answer, or all-green
	// feedback arrived.
	StateSolved
	// StateExhausted means no candidate matches: the feedback was
	// contradictory somewhere, or the answer is outside the lexicon.
	StateExhausted
)

func (s State) String() string {
	switch s {
	case StateAwaitingGuess:
		return "awaiting-guess"
	case StateSolved:
		return "solved"
	case StateExhausted:
		return "exhausted"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Turn records one submitted guess with its feedback.
type Turn struct {
	Guess    string
	Feedback FeedbackVector
}

// Session owns one solving attempt: the candidate pool, the constraint set,
// and the guess history. Sessions share nothing mutable with each other —
// the lexicon they read is immutable — so a server can run many side by
// side without locking inside the engine.
type Session struct {
	lex         *lexicon.Lexicon
	scorer      *Scorer
	initial     []string
	pool        []string
	constraints ConstraintSet
	history     []Turn
	state       State
}

// NewSession builds the initial candidate pool: the lexicon's words minus
// past answers, minus regular plurals when filterPlurals is set. The pool
// stays sorted, so every downstream ranking is deterministic.
func NewSession(lex *lexicon.Lexicon, pastAnswers map[string]struct{}, filterPlurals bool) *Session {
	words := lex.Words() // already sorted
	pool := make([]string, 0, len(words))
	for _, w := range words {
		if _, used := pastAnswers[w]; used {
			continue
		}
		pool = append(pool, w)
	}
	if filterPlurals {
		before := len(pool)
		pool = lexicon.FilterPlurals(pool, lex)
		log.Debugf("session: plural filter removed %d of %d candidates", before-len(pool), before)
	}
	return &Session{
		lex:         lex,
		scorer:      DefaultScorer(lex),
		initial:     pool,
		pool:        pool,
		constraints: NewConstraintSet(),
	}
}

// SetScorer swaps in a scorer with non-default blend weights. Call it
// before the first submit.
func (s *Session) SetScorer(sc *Scorer) {
	s.scorer = sc
}

// Submit applies one turn of feedback, shrinks the pool, and returns the
// re-ranked suggestions for what remains. On malformed or inconsistent
// input the session is left exactly as it was and the error says why.
//
// An emptied pool is not an error: the session moves to StateExhausted and
// the caller decides whether to restart.
func (s *Session) Submit(guess, feedback string) ([]Suggestion, error) {
	if s.state != StateAwaitingGuess {
		return nil, fmt.Errorf("%w: session is %s", ErrSessionFinished, s.state)
	}
	normalized, ok := lexicon.Normalize(guess)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidWordFormat, guess)
	}
	if !s.lex.Contains(normalized) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownWord, normalized)
	}
	fb, err := ParseFeedback(feedback)
	if err != nil {
		return nil, err
	}

	next, err := s.constraints.Apply(normalized, fb)
	if err != nil {
		return nil, err
	}

	s.constraints = next
	s.history = append(s.history, Turn{Guess: normalized, Feedback: fb})

	if fb.AllGreen() {
		s.pool = []string{normalized}
		s.state = StateSolved
		return []Suggestion{{Word: normalized, Score: MaxScore}}, nil
	}

	// Replace, never mutate in place: the pool only ever shrinks.
	kept := make([]string, 0, len(s.pool))
	for _, w := range s.pool {
		if next.Allows(w) {
			kept = append(kept, w)
		}
	}
	s.pool = kept
	log.Debugf("session: %d candidates after %s/%s", len(kept), normalized, fb)

	switch len(kept) {
	case 0:
		s.state = StateExhausted
		return nil, nil
	case 1:
		s.state = StateSolved
	}
	return s.scorer.Rank(s.pool), nil
}

// TopSuggestions ranks the current pool without touching session state.
// It works before the first guess too, for starter suggestions. n <= 0 or
// past the pool size returns the whole ranking.
func (s *Session) TopSuggestions(n int) []Suggestion {
	ranked := s.scorer.Rank(s.pool)
	if n > 0 && n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

// Reset returns the session to its initial pool, dropping all feedback.
func (s *Session) Reset() {
	s.pool = s.initial
	s.constraints = NewConstraintSet()
	s.history = nil
	s.state = StateAwaitingGuess
}

// State returns the session lifecycle state.
func (s *Session) State() State {
	return s.state
}

// CandidateCount returns the size of the current pool.
func (s *Session) CandidateCount() int {
	return len(s.pool)
}

// Candidates returns a copy of the current pool in sorted order.
func (s *Session) Candidates() []string {
	out := make([]string, len(s.pool))
	copy(out, s.pool)
	return out
}

// History returns the submitted turns in order.
func (s *Session) History() []Turn {
	out := make([]Turn, len(s.history))
	copy(out, s.history)
	return out
}

// SessionSnapshot bundles what a presentation layer renders after a turn.
type SessionSnapshot struct {
	Constraints Snapshot
	Candidates  int
	Turns       int
	State       State
}

// Snapshot returns the current display view of the session.
func (s *Session) Snapshot() SessionSnapshot {
	return SessionSnapshot{
		Constraints: s.constraints.Snapshot(),
		Candidates:  len(s.pool),
		Turns:       len(s.history),
		State:       s.state,
	}
}
