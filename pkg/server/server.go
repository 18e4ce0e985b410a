package server

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/solvekit/hintserve/internal/logger"
	"github.com/solvekit/hintserve/pkg/lexicon"
	"github.com/solvekit/hintserve/pkg/solver"
)

// Options carries the per-session solver settings the server applies when
// it creates sessions.
type Options struct {
	FilterPlurals     bool
	LetterWeight      float64
	CommonalityWeight float64
	DefaultLimit      int
}

// Server hosts solver sessions over msgpack IPC. The lexicon and past-answer
// set are shared read-only; each session owns its pool and constraints, so
// only the session map itself needs a lock.
type Server struct {
	lex         *lexicon.Lexicon
	pastAnswers map[string]struct{}
	opts        Options

	mu       sync.RWMutex
	sessions map[string]*solver.Session
	nextID   int

	dec *msgpack.Decoder
	enc *msgpack.Encoder
	log *log.Logger
}

// NewServer creates a session server speaking msgpack over stdin/stdout.
func NewServer(lex *lexicon.Lexicon, pastAnswers map[string]struct{}, opts Options) *Server {
	return NewServerIO(os.Stdin, os.Stdout, lex, pastAnswers, opts)
}

// NewServerIO creates a session server on explicit streams, mainly for
// tests and embedding.
func NewServerIO(r io.Reader, w io.Writer, lex *lexicon.Lexicon, pastAnswers map[string]struct{}, opts Options) *Server {
	if opts.DefaultLimit < 1 {
		opts.DefaultLimit = 15
	}
	return &Server{
		lex:         lex,
		pastAnswers: pastAnswers,
		opts:        opts,
		sessions:    make(map[string]*solver.Session),
		dec:         msgpack.NewDecoder(r),
		enc:         msgpack.NewEncoder(w),
		log:         logger.New("ipc"),
	}
}

// Start announces readiness and processes requests until the input stream
// closes. Requests are handled one at a time in arrival order.
func (s *Server) Start() error {
	s.log.Debug("starting session server")
	s.send(HealthResponse{Status: "ready"})

	for {
		var req Request
		if err := s.dec.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			s.log.Errorf("decoding request: %v", err)
			return err
		}
		s.handle(req)
	}
}

func (s *Server) handle(req Request) {
	switch req.Op {
	case "start":
		s.handleStart(req)
	case "guess":
		s.handleGuess(req)
	case "suggest":
		s.handleSuggest(req)
	case "state":
		s.handleState(req)
	case "reset":
		s.handleReset(req)
	case "health":
		s.send(HealthResponse{ID: req.ID, Status: "ok"})
	default:
		s.sendError(req.ID, fmt.Sprintf("unknown op: %q", req.Op), 400)
	}
}

func (s *Server) newSession() *solver.Session {
	sess := solver.NewSession(s.lex, s.pastAnswers, s.opts.FilterPlurals)
	sess.SetScorer(solver.NewScorer(s.lex, s.opts.LetterWeight, s.opts.CommonalityWeight))
	return sess
}

func (s *Server) session(sid string) (*solver.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[sid]
	return sess, ok
}

func (s *Server) handleStart(req Request) {
	sess := s.newSession()

	s.mu.Lock()
	s.nextID++
	sid := fmt.Sprintf("s%06d", s.nextID)
	s.sessions[sid] = sess
	s.mu.Unlock()

	s.log.Debugf("session %s started with %d candidates", sid, sess.CandidateCount())
	s.send(StartResponse{ID: req.ID, Session: sid, Candidates: sess.CandidateCount()})
}

func (s *Server) handleGuess(req Request) {
	sess, ok := s.session(req.Session)
	if !ok {
		s.sendError(req.ID, fmt.Sprintf("unknown session: %q", req.Session), 404)
		return
	}

	start := time.Now()
	suggestions, err := sess.Submit(req.Guess, req.Feedback)
	if err != nil {
		s.sendError(req.ID, err.Error(), errorCode(err))
		return
	}
	elapsed := time.Since(start)

	s.send(s.suggestResponse(req, sess, suggestions, elapsed))
}

func (s *Server) handleSuggest(req Request) {
	sess, ok := s.session(req.Session)
	if !ok {
		s.sendError(req.ID, fmt.Sprintf("unknown session: %q", req.Session), 404)
		return
	}

	start := time.Now()
	suggestions := sess.TopSuggestions(s.limit(req))
	elapsed := time.Since(start)

	s.send(s.suggestResponse(req, sess, suggestions, elapsed))
}

func (s *Server) handleState(req Request) {
	sess, ok := s.session(req.Session)
	if !ok {
		s.sendError(req.ID, fmt.Sprintf("unknown session: %q", req.Session), 404)
		return
	}

	snap := sess.Snapshot()
	s.send(StateResponse{
		ID:         req.ID,
		Fixed:      snap.Constraints.Fixed,
		Required:   snap.Constraints.Required,
		Excluded:   snap.Constraints.Excluded,
		Candidates: snap.Candidates,
		Turns:      snap.Turns,
		State:      snap.State.String(),
	})
}

// handleReset drops a session's accumulated feedback. An unknown or empty
// session ID gets a fresh session instead, so frontends can use reset as
// "new puzzle" unconditionally.
func (s *Server) handleReset(req Request) {
	if sess, ok := s.session(req.Session); ok {
		sess.Reset()
		s.send(StartResponse{ID: req.ID, Session: req.Session, Candidates: sess.CandidateCount()})
		return
	}
	s.handleStart(req)
}

func (s *Server) suggestResponse(req Request, sess *solver.Session, suggestions []solver.Suggestion, elapsed time.Duration) SuggestResponse {
	limit := s.limit(req)
	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	wire := make([]Suggestion, len(suggestions))
	for i, sg := range suggestions {
		wire[i] = Suggestion{Word: sg.Word, Score: sg.Score}
	}
	return SuggestResponse{
		ID:          req.ID,
		Suggestions: wire,
		Count:       len(wire),
		Candidates:  sess.CandidateCount(),
		State:       sess.State().String(),
		TimeTaken:   elapsed.Microseconds(),
	}
}

func (s *Server) limit(req Request) int {
	if req.Limit > 0 {
		return req.Limit
	}
	return s.opts.DefaultLimit
}

func (s *Server) send(response any) {
	if err := s.enc.Encode(response); err != nil {
		s.log.Errorf("encoding response: %v", err)
	}
}

func (s *Server) sendError(id, message string, code int) {
	s.send(ErrorResponse{ID: id, Error: message, Code: code})
}

// errorCode maps engine errors onto protocol codes.
func errorCode(err error) int {
	switch {
	case errors.Is(err, solver.ErrInconsistentFeedback):
		return 409
	case errors.Is(err, solver.ErrSessionFinished):
		return 410
	default:
		return 400
	}
}
