package solver

import "errors"

// Error kinds surfaced at the engine boundary. Callers discriminate with
// errors.Is; every error leaves the session exactly as it was.
var (
	// ErrInvalidWordFormat reports a guess that is not exactly five ASCII letters.
	ErrInvalidWordFormat = errors.New("guess must be exactly five letters")

	// ErrUnknownWord reports a well-formed guess that is not in the lexicon.
	ErrUnknownWord = errors.New("word is not in the lexicon")

	// ErrInvalidFeedback reports feedback that is not five symbols over g, y, x.
	ErrInvalidFeedback = errors.New("feedback must be five symbols over g, y, x")

	// ErrInconsistentFeedback reports feedback that contradicts earlier turns:
	// either a data-entry mistake or an upstream bug, never silently reconciled.
	ErrInconsistentFeedback = errors.New("feedback contradicts earlier feedback")

	// ErrSessionFinished reports a submit after the session reached
	// Solved or Exhausted.
	ErrSessionFinished = errors.New("session already finished")
)
