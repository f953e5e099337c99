package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type DatasetConfig struct {
	Input       string `toml:"input"`
	Separator   string `toml:"separator"`
	PairsJSONL  string `toml:"pairs_jsonl"`
	SummaryJSON string `toml:"summary_json"`
}

type PairingConfig struct {
	ExpectedPairs int `toml:"expected_pairs"`
	PairSize      int `toml:"pair_size"`
}

type LLMConfig struct {
	Provider          string `toml:"provider"`
	Model             string `toml:"model"`
	APIKey            string `toml:"api_key"`
	BaseURL           string `toml:"base_url"`
	MinDelaySeconds   int    `toml:"min_delay_seconds"`
	MaxRetries        int    `toml:"max_retries"`
	RetryDelaySeconds int    `toml:"retry_delay_seconds"`
}

type EvalConfig struct {
	Intent      string `toml:"intent"`
	BiasType    string `toml:"bias_type"`
	SampleSize  int    `toml:"sample_size"`
	ResultsJSON string `toml:"results_json"`
	Seed        int64  `toml:"seed"`
	UseLLM      bool   `toml:"use_llm"`
}

type Config struct {
	Dataset DatasetConfig `toml:"dataset"`
	Pairing PairingConfig `toml:"pairing"`
	LLM     LLMConfig     `toml:"llm"`
	Eval    EvalConfig    `toml:"eval"`
}

// Default returns the configuration the original pipeline assumes: 20 pairs
// of 2 rows per combination, comma-separated CSV, free-tier LLM pacing.
func Default() *Config {
	return &Config{
		Dataset: DatasetConfig{
			Input:       "data/raw_dataset.csv",
			Separator:   ",",
			PairsJSONL:  "data/dataset.jsonl",
			SummaryJSON: "data/stats_summary.json",
		},
		Pairing: PairingConfig{
			ExpectedPairs: 20,
			PairSize:      2,
		},
		LLM: LLMConfig{
			Provider:          "gemini",
			Model:             "gemini-2.5-flash",
			MinDelaySeconds:   30,
			MaxRetries:        5,
			RetryDelaySeconds: 15,
		},
		Eval: EvalConfig{
			Intent:      "Question",
			BiasType:    "race-color",
			SampleSize:  5,
			ResultsJSON: "data/eval_results.json",
			UseLLM:      true,
		},
	}
}

// Load reads a TOML config file over the defaults. Keys absent from the file
// keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	return cfg, nil
}

// ApplyEnv overrides LLM settings from the environment, matching the
// variables the server entry point honors.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("LLM_PROVIDER"); v != "" {
		c.LLM.Provider = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		c.LLM.Model = v
	}
	if v := os.Getenv("LLM_API_KEY"); v != "" {
		c.LLM.APIKey = v
	}
	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		c.LLM.BaseURL = v
	}
}

// ConfigError marks a programmer/operator mistake in the supplied
// configuration. It aborts the pipeline before any processing begins.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid config: %s %s", e.Field, e.Reason)
}

// Validate fails fast on values the engines cannot run with.
func (c *Config) Validate() error {
	if c.Pairing.ExpectedPairs <= 0 {
		return &ConfigError{Field: "pairing.expected_pairs", Reason: "must be positive"}
	}
	if c.Pairing.PairSize <= 0 {
		return &ConfigError{Field: "pairing.pair_size", Reason: "must be positive"}
	}
	if len([]rune(c.Dataset.Separator)) != 1 {
		return &ConfigError{Field: "dataset.separator", Reason: "must be a single character"}
	}
	if c.Eval.SampleSize < 0 {
		return &ConfigError{Field: "eval.sample_size", Reason: "must not be negative"}
	}
	return nil
}

// SeparatorRune returns the CSV field separator as a rune. Call Validate
// first; an empty separator falls back to a comma.
func (c *Config) SeparatorRune() rune {
	rs := []rune(c.Dataset.Separator)
	if len(rs) == 0 {
		return ','
	}
	return rs[0]
}
