// Package cli runs the interactive solving loop: read a guess, read its
// feedback, show the narrowed pool and re-ranked suggestions.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/solvekit/hintserve/pkg/solver"
)

var (
	greenTile  = lipgloss.NewStyle().Background(lipgloss.Color("2")).Foreground(lipgloss.Color("0")).Padding(0, 1)
	yellowTile = lipgloss.NewStyle().Background(lipgloss.Color("3")).Foreground(lipgloss.Color("0")).Padding(0, 1)
	greyTile   = lipgloss.NewStyle().Background(lipgloss.Color("8")).Foreground(lipgloss.Color("15")).Padding(0, 1)
)

// InputHandler drives one solving session from stdin.
type InputHandler struct {
	session *solver.Session
	limit   int
	reader  *bufio.Reader
}

// NewInputHandler wires a session to the terminal. limit caps how many
// suggestions are shown per turn.
func NewInputHandler(session *solver.Session, limit int) *InputHandler {
	return &InputHandler{
		session: session,
		limit:   limit,
		reader:  bufio.NewReader(os.Stdin),
	}
}

// Start runs the loop until the puzzle is solved, the pool empties, or the
// player quits. Returns nil on EOF so piped input ends cleanly.
func (h *InputHandler) Start() error {
	log.Printf("hintserve — %d candidates loaded", h.session.CandidateCount())
	log.Print("enter a guess, then its feedback (g=green, y=yellow, x=grey); '?' for help")

	log.Print("starter suggestions:")
	h.printSuggestions(h.session.TopSuggestions(h.limit))

	for {
		fmt.Print("\nguess> ")
		line, err := h.reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		input := strings.TrimSpace(line)
		switch input {
		case "":
			continue
		case "q", "quit":
			return nil
		case "?":
			printHelp()
			continue
		case "s":
			h.printState()
			continue
		}

		fmt.Print("feedback> ")
		fbLine, err := h.reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}

		h.handleTurn(input, strings.TrimSpace(fbLine))
		if h.session.State() != solver.StateAwaitingGuess {
			return nil
		}
	}
}

func (h *InputHandler) handleTurn(guess, feedback string) {
	suggestions, err := h.session.Submit(guess, feedback)
	if err != nil {
		log.Errorf("%v", err)
		return
	}

	h.printHistory()
	h.printState()

	switch h.session.State() {
	case solver.StateSolved:
		log.Printf("the answer is: %s", h.session.Candidates()[0])
	case solver.StateExhausted:
		log.Warn("no words match these constraints — double-check your feedback")
	default:
		if len(suggestions) > h.limit {
			suggestions = suggestions[:h.limit]
		}
		log.Print("top suggestions:")
		h.printSuggestions(suggestions)
	}
}

func (h *InputHandler) printHistory() {
	for _, turn := range h.session.History() {
		fmt.Println(renderTiles(turn))
	}
}

// renderTiles draws one guess row the way the game colors it.
func renderTiles(turn solver.Turn) string {
	var b strings.Builder
	for i := 0; i < len(turn.Guess); i++ {
		letter := strings.ToUpper(string(turn.Guess[i]))
		switch turn.Feedback[i] {
		case solver.Green:
			b.WriteString(greenTile.Render(letter))
		case solver.Yellow:
			b.WriteString(yellowTile.Render(letter))
		default:
			b.WriteString(greyTile.Render(letter))
		}
		if i < len(turn.Guess)-1 {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

func (h *InputHandler) printSuggestions(suggestions []solver.Suggestion) {
	if len(suggestions) == 0 {
		log.Warn("nothing to suggest")
		return
	}
	for i, s := range suggestions {
		log.Printf("%2d. %-8s (%.2f)", i+1, s.Word, s.Score)
	}
}

func (h *InputHandler) printState() {
	snap := h.session.Snapshot()
	if snap.Constraints.Empty() {
		log.Printf("no constraints yet — %d candidates", snap.Candidates)
		return
	}
	log.Printf("fixed:     %s", snap.Constraints.Fixed)
	if snap.Constraints.Required != "" {
		log.Printf("required:  %s", snap.Constraints.Required)
	}
	if snap.Constraints.Excluded != "" {
		log.Printf("excluded:  %s", snap.Constraints.Excluded)
	}
	log.Printf("candidates: %d", snap.Candidates)
}

func printHelp() {
	log.Print("enter your 5-letter guess, then the game's feedback:")
	log.Print("  g = green  (correct letter, correct position)")
	log.Print("  y = yellow (correct letter, wrong position)")
	log.Print("  x = grey   (letter not in the word)")
	log.Print("example: guessed 'crane', got green-yellow-grey-grey-green -> gyxxg")
	log.Print("commands: q = quit, s = show constraints, ? = this help")
}
