package server

import (
	"bytes"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/solvekit/hintserve/pkg/lexicon"
)

func newTestServer(t *testing.T, requests []Request) *msgpack.Decoder {
	t.Helper()

	lex, err := lexicon.New([]string{"burns", "briny", "carts", "crane", "horns", "irons", "thorn"}, nil, nil)
	if err != nil {
		t.Fatalf("lexicon.New: %v", err)
	}

	var in, out bytes.Buffer
	enc := msgpack.NewEncoder(&in)
	for _, req := range requests {
		if err := enc.Encode(req); err != nil {
			t.Fatalf("encoding request: %v", err)
		}
	}

	srv := NewServerIO(&in, &out, lex, map[string]struct{}{}, Options{
		LetterWeight:      0.5,
		CommonalityWeight: 0.5,
		DefaultLimit:      10,
	})
	if err := srv.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	return msgpack.NewDecoder(&out)
}

func decode[T any](t *testing.T, dec *msgpack.Decoder) T {
	t.Helper()
	var v T
	if err := dec.Decode(&v); err != nil {
		t.Fatalf("decoding %T: %v", v, err)
	}
	return v
}

func TestServerSessionFlow(t *testing.T) {
	dec := newTestServer(t, []Request{
		{ID: "r1", Op: "start"},
		{ID: "r2", Op: "guess", Session: "s000001", Guess: "crane", Feedback: "xyxgx"},
		{ID: "r3", Op: "state", Session: "s000001"},
		{ID: "r4", Op: "reset", Session: "s000001"},
	})

	ready := decode[HealthResponse](t, dec)
	if ready.Status != "ready" {
		t.Fatalf("startup status = %q, want ready", ready.Status)
	}

	started := decode[StartResponse](t, dec)
	if started.ID != "r1" || started.Session != "s000001" {
		t.Fatalf("start response = %+v", started)
	}
	if started.Candidates != 7 {
		t.Errorf("Candidates = %d, want 7", started.Candidates)
	}

	guessed := decode[SuggestResponse](t, dec)
	if guessed.ID != "r2" || guessed.Candidates != 2 || guessed.Count != 2 {
		t.Fatalf("guess response = %+v, want two survivors", guessed)
	}
	if guessed.Suggestions[0].Word != "burns" {
		t.Errorf("top suggestion = %q, want burns", guessed.Suggestions[0].Word)
	}
	if guessed.State != "awaiting-guess" {
		t.Errorf("State = %q, want awaiting-guess", guessed.State)
	}

	state := decode[StateResponse](t, dec)
	if state.Fixed != "___N_" || state.Required != "nr" || state.Excluded != "ace" {
		t.Errorf("state response = %+v", state)
	}
	if state.Turns != 1 || state.Candidates != 2 {
		t.Errorf("state response = %+v, want one turn, two candidates", state)
	}

	reset := decode[StartResponse](t, dec)
	if reset.ID != "r4" || reset.Session != "s000001" || reset.Candidates != 7 {
		t.Fatalf("reset response = %+v, want the full pool back", reset)
	}
}

func TestServerErrors(t *testing.T) {
	dec := newTestServer(t, []Request{
		{ID: "r1", Op: "start"},
		{ID: "r2", Op: "guess", Session: "s000001", Guess: "crane", Feedback: "xyxgx"},
		{ID: "r3", Op: "guess", Session: "s000001", Guess: "carts", Feedback: "xxxgx"},
		{ID: "r4", Op: "guess", Session: "nope", Guess: "crane", Feedback: "xxxxx"},
		{ID: "r5", Op: "frobnicate"},
		{ID: "r6", Op: "guess", Session: "s000001", Guess: "zzzzz", Feedback: "xxxxx"},
	})

	decode[HealthResponse](t, dec)
	decode[StartResponse](t, dec)
	decode[SuggestResponse](t, dec)

	testCases := []struct {
		id          string
		code        int
		description string
	}{
		{"r3", 409, "feedback contradicting an earlier turn"},
		{"r4", 404, "unknown session"},
		{"r5", 400, "unknown op"},
		{"r6", 400, "guess not in the lexicon"},
	}
	for _, tc := range testCases {
		errResp := decode[ErrorResponse](t, dec)
		if errResp.ID != tc.id || errResp.Code != tc.code {
			t.Errorf("%s: got id=%q code=%d, want id=%q code=%d",
				tc.description, errResp.ID, errResp.Code, tc.id, tc.code)
		}
	}
}

func TestServerReusesNothingAcrossSessions(t *testing.T) {
	dec := newTestServer(t, []Request{
		{ID: "r1", Op: "start"},
		{ID: "r2", Op: "start"},
		{ID: "r3", Op: "guess", Session: "s000001", Guess: "crane", Feedback: "xyxgx"},
		{ID: "r4", Op: "state", Session: "s000002"},
	})

	decode[HealthResponse](t, dec)
	first := decode[StartResponse](t, dec)
	second := decode[StartResponse](t, dec)
	if first.Session == second.Session {
		t.Fatalf("both sessions got ID %q", first.Session)
	}

	decode[SuggestResponse](t, dec)

	// the second session never saw the first session's feedback
	state := decode[StateResponse](t, dec)
	if state.Candidates != 7 || state.Turns != 0 {
		t.Errorf("state response = %+v, want an untouched session", state)
	}
}

func TestServerSuggestLimit(t *testing.T) {
	dec := newTestServer(t, []Request{
		{ID: "r1", Op: "start"},
		{ID: "r2", Op: "suggest", Session: "s000001", Limit: 3},
		{ID: "r3", Op: "suggest", Session: "s000001"},
	})

	decode[HealthResponse](t, dec)
	decode[StartResponse](t, dec)

	limited := decode[SuggestResponse](t, dec)
	if limited.Count != 3 || len(limited.Suggestions) != 3 {
		t.Errorf("limited response = %+v, want 3 suggestions", limited)
	}
	if limited.Candidates != 7 {
		t.Errorf("Candidates = %d, want the full pool size", limited.Candidates)
	}

	unlimited := decode[SuggestResponse](t, dec)
	if unlimited.Count != 7 {
		t.Errorf("default-limit response = %+v, want all 7", unlimited)
	}
}
