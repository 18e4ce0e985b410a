// Command simulate replays the solver against known answers and reports how
// many turns it needs. Useful for tuning the ranking weights: run it, change
// the blend in config.toml, run it again.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/schollz/progressbar/v3"

	"github.com/solvekit/hintserve/internal/logger"
	"github.com/solvekit/hintserve/pkg/config"
	"github.com/solvekit/hintserve/pkg/dictionary"
	"github.com/solvekit/hintserve/pkg/solver"
)

// maxTurns is where a run counts as failed; the real game allows six.
const maxTurns = 10

func main() {
	configPath := flag.String("config", "", "Path to a config.toml")
	dataDir := flag.String("data", "", "Directory containing the word-list files (overrides config)")
	count := flag.Int("n", 0, "Number of answers to play (0 for all)")
	opening := flag.String("start", "", "Fixed opening guess (default: top-ranked suggestion)")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	flag.Parse()

	logger.SetDebug(*debugMode)

	cfg, _, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *dataDir != "" {
		cfg.Data.Dir = *dataDir
	}

	lex, _, err := dictionary.LoadLexicon(cfg.Data.Dir, cfg.Data.WordsFile, cfg.Data.AnswersFile, cfg.Data.FrequencyFile)
	if err != nil {
		log.Fatalf("Failed to load word lists: %v", err)
	}

	answers, err := dictionary.LoadWordList(filepath.Join(cfg.Data.Dir, cfg.Data.AnswersFile))
	if err != nil {
		log.Warnf("no answer list (%v); playing every lexicon word", err)
		answers = lex.Words()
	}
	if *count > 0 && *count < len(answers) {
		answers = answers[:*count]
	}

	// Past answers stay in the pool here: they are exactly the words we
	// are about to play.
	sess := solver.NewSession(lex, map[string]struct{}{}, cfg.Solver.FilterPlurals)
	sess.SetScorer(solver.NewScorer(lex, cfg.Solver.LetterWeight, cfg.Solver.CommonalityWeight))

	first := *opening
	if first == "" {
		starters := sess.TopSuggestions(1)
		if len(starters) == 0 {
			log.Fatal("empty candidate pool")
		}
		first = starters[0].Word
	}
	fmt.Printf("playing %d answers, opening with %q\n", len(answers), first)

	turnCounts := make(map[int]int)
	var failures []string
	totalTurns := 0
	solved := 0

	bar := progressbar.Default(int64(len(answers)))
	for _, answer := range answers {
		turns := play(sess, first, answer)
		bar.Add(1)
		if turns == 0 {
			failures = append(failures, answer)
			continue
		}
		turnCounts[turns]++
		totalTurns += turns
		solved++
	}

	fmt.Println()
	for t := 1; t <= maxTurns; t++ {
		if turnCounts[t] > 0 {
			fmt.Printf("%2d turns: %5d\n", t, turnCounts[t])
		}
	}
	if solved > 0 {
		fmt.Printf("solved %d/%d, avg %.3f turns\n", solved, len(answers), float64(totalTurns)/float64(solved))
	}
	if len(failures) > 0 {
		fmt.Printf("failed on %d answers: %v\n", len(failures), failures)
		os.Exit(1)
	}
}

// play runs one puzzle to completion and returns the turn count, or 0 when
// the solver runs out of candidates or turns. The answer itself judges each
// guess, so a nonzero result also proves the constraint set never pruned the
// answer away.
func play(sess *solver.Session, opening, answer string) int {
	sess.Reset()
	guess := opening

	for turn := 1; turn <= maxTurns; turn++ {
		fb := solver.Judge(guess, answer)
		if fb.AllGreen() {
			return turn
		}

		suggestions, err := sess.Submit(guess, fb.String())
		if err != nil {
			log.Errorf("%s: turn %d (%s): %v", answer, turn, guess, err)
			return 0
		}

		switch sess.State() {
		case solver.StateExhausted:
			log.Debugf("%s: pool exhausted after %s", answer, guess)
			return 0
		case solver.StateSolved:
			guess = sess.Candidates()[0]
		default:
			guess = suggestions[0].Word
		}
	}
	log.Debugf("%s: not solved in %d turns", answer, maxTurns)
	return 0
}
