/*
Package config manages TOML configuration for hintserve.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/solvekit/hintserve/internal/utils"
)

// Config holds the entire config structure.
type Config struct {
	Solver SolverConfig `toml:"solver"`
	Data   DataConfig   `toml:"data"`
	CLI    CliConfig    `toml:"cli"`
}

// SolverConfig tunes the ranking engine.
type SolverConfig struct {
	LetterWeight      float64 `toml:"letter_weight"`
	CommonalityWeight float64 `toml:"commonality_weight"`
	FilterPlurals     bool    `toml:"filter_plurals"`
}

// DataConfig names the word-list files the loaders read.
type DataConfig struct {
	Dir           string `toml:"dir"`
	WordsFile     string `toml:"words_file"`
	AnswersFile   string `toml:"answers_file"`
	FrequencyFile string `toml:"frequency_file"`
}

// CliConfig holds interactive interface options.
type CliConfig struct {
	DefaultLimit int `toml:"default_limit"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Solver: SolverConfig{
			LetterWeight:      0.5,
			CommonalityWeight: 0.5,
			FilterPlurals:     true,
		},
		Data: DataConfig{
			Dir:           "data/",
			WordsFile:     "words.txt",
			AnswersFile:   "answers.txt",
			FrequencyFile: "en_50k.txt",
		},
		CLI: CliConfig{
			DefaultLimit: 15,
		},
	}
}

// GetConfigDir returns the config directory with fallback priority:
// 1. ~/.config/hintserve
// 2. Current executable dir
// 3. builtin defaults (handled by callers)
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		return utils.GetExecutableDir()
	}
	primaryPath := filepath.Join(homeDir, ".config", "hintserve")
	if result := utils.CheckDirStatus(primaryPath); result.Writable {
		return primaryPath, nil
	}
	return utils.GetExecutableDir()
}

// GetDefaultConfigPath returns the default path for config.toml.
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path: ~/.config/hintserve/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customPath string) (*Config, string, error) {
	if customPath != "" {
		if _, statErr := os.Stat(customPath); statErr == nil {
			cfg, err := LoadConfig(customPath)
			if err == nil {
				log.Debugf("Loaded config from custom path: %s", customPath)
				return cfg, customPath, nil
			}
			log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customPath, err)
		} else {
			log.Warnf("Custom config file not found at %s. Trying default path...", customPath)
		}
	}
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using builtin defaults...", err)
		return DefaultConfig(), "", nil
	}
	cfg, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return cfg, defaultPath, nil
}

// InitConfig loads config from file or creates a default one if missing.
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)
	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using builtin defaults...", configDir, err)
		return DefaultConfig(), nil
	}
	if !utils.FileExists(configPath) {
		cfg := DefaultConfig()
		if err := SaveConfig(cfg, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using builtin defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return cfg, nil
	}
	return LoadConfig(configPath)
}

// LoadConfig loads from a TOML file, salvaging valid sections from a
// partially broken file before giving up.
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()
	if err := utils.LoadTOMLFile(configPath, cfg); err != nil {
		return tryPartialParse(configPath)
	}
	return cfg, nil
}

// SaveConfig saves into a TOML file.
func SaveConfig(cfg *Config, configPath string) error {
	return utils.SaveTOMLFile(cfg, configPath)
}

// tryPartialParse pulls whatever valid sections exist out of a broken file,
// leaving defaults everywhere else.
func tryPartialParse(configPath string) (*Config, error) {
	cfg := DefaultConfig()
	loose, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return cfg, nil
	}
	if section, ok := utils.ExtractSection(loose, "solver"); ok {
		extractSolverConfig(section, &cfg.Solver)
	}
	if section, ok := utils.ExtractSection(loose, "data"); ok {
		extractDataConfig(section, &cfg.Data)
	}
	if section, ok := utils.ExtractSection(loose, "cli"); ok {
		extractCliConfig(section, &cfg.CLI)
	}
	return cfg, nil
}

func extractSolverConfig(data map[string]any, solver *SolverConfig) {
	if val, ok := utils.ExtractFloat(data, "letter_weight"); ok {
		solver.LetterWeight = val
	}
	if val, ok := utils.ExtractFloat(data, "commonality_weight"); ok {
		solver.CommonalityWeight = val
	}
	if val, ok := utils.ExtractBool(data, "filter_plurals"); ok {
		solver.FilterPlurals = val
	}
}

func extractDataConfig(data map[string]any, dataCfg *DataConfig) {
	if val, ok := utils.ExtractString(data, "dir"); ok {
		dataCfg.Dir = val
	}
	if val, ok := utils.ExtractString(data, "words_file"); ok {
		dataCfg.WordsFile = val
	}
	if val, ok := utils.ExtractString(data, "answers_file"); ok {
		dataCfg.AnswersFile = val
	}
	if val, ok := utils.ExtractString(data, "frequency_file"); ok {
		dataCfg.FrequencyFile = val
	}
}

func extractCliConfig(data map[string]any, cli *CliConfig) {
	if val, ok := utils.ExtractInt(data, "default_limit"); ok {
		cli.DefaultLimit = val
	}
}
