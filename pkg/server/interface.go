/*
Package server implements msgpack IPC for solver sessions.

The server speaks binary msgpack over stdin/stdout on a request/response
model. Each request carries an ID the response echoes back, an op, and the
op's fields. One process can host many sessions at once — one per connected
player — each fully isolated from the others.

Start a session and read starter suggestions:

	{"id": "r1", "op": "start"}
	{"id": "r2", "op": "suggest", "sid": "s000001", "l": 10}

Submit a turn (guess plus g/y/x feedback) and get the re-ranked pool:

	{"id": "r3", "op": "guess", "sid": "s000001", "g": "crane", "f": "xyxgx"}

Inspect what the engine knows, or start the puzzle over:

	{"id": "r4", "op": "state", "sid": "s000001"}
	{"id": "r5", "op": "reset", "sid": "s000001"}

Failures come back as an ErrorResponse with a code: 400 malformed input,
404 unknown session, 409 feedback contradicting earlier turns, 410 session
already finished.
*/
package server

// Request is the envelope for every client message.
type Request struct {
	ID       string `msgpack:"id"`
	Op       string `msgpack:"op"` // "start", "guess", "suggest", "state", "reset", "health"
	Session  string `msgpack:"sid,omitempty"`
	Guess    string `msgpack:"g,omitempty"`
	Feedback string `msgpack:"f,omitempty"`
	Limit    int    `msgpack:"l,omitempty"`
}

// Suggestion is the wire form of one ranked candidate.
type Suggestion struct {
	Word  string  `msgpack:"w"`
	Score float64 `msgpack:"s"`
}

// StartResponse answers "start" and "reset".
type StartResponse struct {
	ID         string `msgpack:"id"`
	Session    string `msgpack:"sid"`
	Candidates int    `msgpack:"n"`
}

// SuggestResponse answers "guess" and "suggest".
type SuggestResponse struct {
	ID          string       `msgpack:"id"`
	Suggestions []Suggestion `msgpack:"s"`
	Count       int          `msgpack:"c"`
	Candidates  int          `msgpack:"n"`
	State       string       `msgpack:"st"`
	TimeTaken   int64        `msgpack:"t"` // microseconds
}

// StateResponse answers "state": the constraint snapshot a frontend
// renders without recomputing anything.
type StateResponse struct {
	ID         string `msgpack:"id"`
	Fixed      string `msgpack:"fx"`
	Required   string `msgpack:"rq"`
	Excluded   string `msgpack:"ex"`
	Candidates int    `msgpack:"n"`
	Turns      int    `msgpack:"tn"`
	State      string `msgpack:"st"`
}

// HealthResponse answers "health" and announces readiness at startup.
type HealthResponse struct {
	ID     string `msgpack:"id,omitempty"`
	Status string `msgpack:"status"`
}

// ErrorResponse reports a failed request.
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
