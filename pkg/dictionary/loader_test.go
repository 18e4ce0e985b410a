package dictionary

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseWordList(t *testing.T) {
	input := "crane\nSLATE\n\n  thorn  \ntoolong\nbad!\ncr4ne\n"
	words, err := ParseWordList(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseWordList: %v", err)
	}

	want := []string{"crane", "slate", "thorn"}
	if len(words) != len(want) {
		t.Fatalf("words = %v, want %v", words, want)
	}
	for i := range want {
		if words[i] != want[i] {
			t.Fatalf("words = %v, want %v", words, want)
		}
	}
}

func TestParseFrequency(t *testing.T) {
	input := strings.Join([]string{
		"the 23135851162",  // short token: root only, no count
		"about 1226734006", // five letters: root and count
		"CRANE 4423408",    // case folded
		"spots 12 extra",   // trailing garbage after the count
		"noise abc",        // unparseable count
		"wrong -5",         // negative count
		"",
	}, "\n")

	data, err := ParseFrequency(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseFrequency: %v", err)
	}

	if len(data.Tokens) != 6 {
		t.Errorf("Tokens = %v, want all six tokens kept for the root dictionary", data.Tokens)
	}
	if data.Tokens[0] != "the" || data.Tokens[2] != "crane" {
		t.Errorf("Tokens = %v, want lowercased tokens in file order", data.Tokens)
	}

	if _, ok := data.Counts["about"]; !ok {
		t.Error("five-letter token should carry a count")
	}
	if _, ok := data.Counts["crane"]; !ok {
		t.Error("counts should be case folded")
	}
	for _, absent := range []string{"the", "spots", "noise", "wrong"} {
		if _, ok := data.Counts[absent]; ok {
			t.Errorf("%q should not carry a count", absent)
		}
	}
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
}

func TestLoadLexicon(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "words.txt", "crane\nslate\nspots\n")
	writeFile(t, dir, "answers.txt", "slate\n")
	writeFile(t, dir, "freq.txt", "spot 900\ncrane 500\n")

	lex, pastAnswers, err := LoadLexicon(dir, "words.txt", "answers.txt", "freq.txt")
	if err != nil {
		t.Fatalf("LoadLexicon: %v", err)
	}

	if lex.Size() != 3 {
		t.Errorf("Size = %d, want 3", lex.Size())
	}
	if _, ok := pastAnswers["slate"]; !ok {
		t.Error("past answers should contain slate")
	}
	if lex.Commonality("crane") <= 0 {
		t.Error("crane should carry commonality from the corpus")
	}
	if !lex.IsRegularPlural("spots") {
		t.Error("corpus tokens should feed the root dictionary")
	}
}

func TestLoadLexiconDegradesGracefully(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "words.txt", "crane\nslate\n")

	lex, pastAnswers, err := LoadLexicon(dir, "words.txt", "missing.txt", "missing.txt")
	if err != nil {
		t.Fatalf("LoadLexicon should survive missing optional files: %v", err)
	}
	if lex.Size() != 2 || len(pastAnswers) != 0 {
		t.Errorf("Size = %d, pastAnswers = %v", lex.Size(), pastAnswers)
	}
	if lex.Commonality("crane") != 0 {
		t.Error("no corpus means zero commonality")
	}

	if _, _, err := LoadLexicon(dir, "missing.txt", "missing.txt", "missing.txt"); err == nil {
		t.Error("LoadLexicon must fail when the word list itself is missing")
	}
}
