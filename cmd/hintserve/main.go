/*
Package main implements the hintserve solving assistant.

HintServe narrows a five-letter word puzzle with you: you play the guesses in
the real game, report the colored feedback here, and the engine prunes its
candidate pool and ranks what remains by letter coverage and everyday-English
commonality. It runs as an interactive CLI or as a MessagePack IPC server for
frontend integration.

# Usage

Solve interactively with the default word lists:

	hintserve

Point at a different data directory and enable debug logging:

	hintserve -data /path/to/lists -d

Run as an IPC server for a frontend:

	hintserve -ipc

The data directory holds three plain-text files: the valid-guess list (one
word per line), the past-answer list (one word per line), and a frequency
corpus ("token count" per line). Only the guess list is mandatory; the other
two degrade gracefully when missing.

# Configuration

Runtime configuration lives in a TOML file created with defaults on first
run:

	[solver]
	letter_weight = 0.5
	commonality_weight = 0.5
	filter_plurals = true

	[data]
	dir = "data/"
	words_file = "words.txt"
	answers_file = "answers.txt"
	frequency_file = "en_50k.txt"

	[cli]
	default_limit = 15

Flags override the file; the file overrides builtin defaults.

# IPC Protocol

Server mode speaks msgpack over stdin/stdout. Start a session, submit turns,
and read back ranked suggestions:

	{"id": "r1", "op": "start"}
	{"id": "r2", "op": "guess", "sid": "s000001", "g": "crane", "f": "xyxgx"}

See the server package for the full op and error-code reference.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/solvekit/hintserve/internal/cli"
	"github.com/solvekit/hintserve/internal/logger"
	"github.com/solvekit/hintserve/pkg/config"
	"github.com/solvekit/hintserve/pkg/dictionary"
	"github.com/solvekit/hintserve/pkg/server"
	"github.com/solvekit/hintserve/pkg/solver"
)

const (
	Version = "0.3.0"
	AppName = "hintserve"
	gh      = "https://github.com/solvekit/hintserve"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main wires config, word lists, and the engine together, then hands off to
// the CLI loop or the IPC server. No solving logic lives here.
func main() {
	sigHandler()
	defaults := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	configPath := flag.String("config", "", "Path to a config.toml (default: ~/.config/hintserve/config.toml)")
	dataDir := flag.String("data", "", "Directory containing the word-list files (overrides config)")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	ipcMode := flag.Bool("ipc", false, "Run the msgpack IPC server instead of the interactive CLI")
	limit := flag.Int("limit", defaults.CLI.DefaultLimit, "Number of suggestions to show")
	noPluralFilter := flag.Bool("no-plural-filter", false, "Keep regular plurals in the candidate pool")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	logger.SetDebug(*debugMode)

	cfg, cfgPath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfgPath != "" {
		log.Debugf("Using config file: (%s)", cfgPath)
	}

	if *dataDir != "" {
		cfg.Data.Dir = *dataDir
	}
	if *noPluralFilter {
		cfg.Solver.FilterPlurals = false
	}

	log.Debugf("Using data dir at: %s", cfg.Data.Dir)
	lex, pastAnswers, err := dictionary.LoadLexicon(cfg.Data.Dir, cfg.Data.WordsFile, cfg.Data.AnswersFile, cfg.Data.FrequencyFile)
	if err != nil {
		log.Fatalf("Failed to load word lists: %v", err)
	}

	if *ipcMode {
		log.Debug("spawning IPC")
		srv := server.NewServer(lex, pastAnswers, server.Options{
			FilterPlurals:     cfg.Solver.FilterPlurals,
			LetterWeight:      cfg.Solver.LetterWeight,
			CommonalityWeight: cfg.Solver.CommonalityWeight,
			DefaultLimit:      cfg.CLI.DefaultLimit,
		})

		showStartupInfo(cfg.Data.Dir, lex.Size())

		if err := srv.Start(); err != nil {
			log.Fatalf("Server error: %v", err)
		}
		return
	}

	log.SetReportTimestamp(false)
	sess := solver.NewSession(lex, pastAnswers, cfg.Solver.FilterPlurals)
	sess.SetScorer(solver.NewScorer(lex, cfg.Solver.LetterWeight, cfg.Solver.CommonalityWeight))

	handler := cli.NewInputHandler(sess, *limit)
	if err := handler.Start(); err != nil {
		log.Fatalf("CLI error: %v", err)
	}
}

func printVersion() {
	vlog := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	vlog.SetStyles(styles)

	vlog.Print("")
	vlog.Print("[ HintServe ] Narrows word puzzles, one feedback at a time.")
	vlog.Print("", "version", Version)
	vlog.Print("")
	vlog.Print("use -h or --help to see available options")
	vlog.Print("Github Repo", "gh", gh)
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(dataDir string, words int) {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	println("===========")
	println(" HintServe ")
	println("===========")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", pid)
	log.Infof("lexicon: %d words", words)
	log.Infof("data dir: ( %s )", dataDir)
	log.Info("status: ready")
	println("===========")
	println("Press Ctrl+C to exit")

	log.SetLevel(currentLevel)
}
