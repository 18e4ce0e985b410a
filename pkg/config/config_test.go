package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Solver.LetterWeight != 0.5 || cfg.Solver.CommonalityWeight != 0.5 {
		t.Errorf("default blend = %v/%v, want 0.5/0.5", cfg.Solver.LetterWeight, cfg.Solver.CommonalityWeight)
	}
	if !cfg.Solver.FilterPlurals {
		t.Error("plural filtering should default on")
	}
	if cfg.Data.WordsFile == "" || cfg.Data.Dir == "" {
		t.Error("data paths should have defaults")
	}
	if cfg.CLI.DefaultLimit < 1 {
		t.Errorf("DefaultLimit = %d, want a positive default", cfg.CLI.DefaultLimit)
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := DefaultConfig()
	cfg.Solver.LetterWeight = 0.7
	cfg.Solver.CommonalityWeight = 0.3
	cfg.Solver.FilterPlurals = false
	cfg.Data.Dir = "/srv/hintserve/data"
	cfg.CLI.DefaultLimit = 25

	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}
	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if *loaded != *cfg {
		t.Errorf("roundtrip mismatch:\n got %+v\nwant %+v", loaded, cfg)
	}
}

func TestLoadConfigPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	partial := "[solver]\nletter_weight = 0.8\ncommonality_weight = 0.2\n"
	if err := os.WriteFile(path, []byte(partial), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Solver.LetterWeight != 0.8 || cfg.Solver.CommonalityWeight != 0.2 {
		t.Errorf("solver section not applied: %+v", cfg.Solver)
	}
	// untouched sections keep their defaults
	defaults := DefaultConfig()
	if cfg.Data != defaults.Data || cfg.CLI != defaults.CLI {
		t.Errorf("missing sections should fall back to defaults: %+v", cfg)
	}
}

func TestLoadConfigSalvagesBrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	broken := "[cli\ndefault_limit = 30\n"
	if err := os.WriteFile(path, []byte(broken), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig should fall back to defaults, got %v", err)
	}
	if *cfg != *DefaultConfig() {
		t.Errorf("unsalvageable file should yield defaults, got %+v", cfg)
	}
}

func TestInitConfigCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg, err := InitConfig(path)
	if err != nil {
		t.Fatalf("InitConfig: %v", err)
	}
	if *cfg != *DefaultConfig() {
		t.Errorf("fresh config should carry defaults, got %+v", cfg)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("InitConfig should have written %s: %v", path, err)
	}
}
