// Package config provides configuration loading and validation for the
// analyzer CLI and server.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/jonathan/resume-analyzer/internal/extract"
	"github.com/jonathan/resume-analyzer/internal/llm"
	"github.com/jonathan/resume-analyzer/internal/scoring"
	"github.com/jonathan/resume-analyzer/internal/suggest"
)

// Config represents the analyzer configuration. It can be loaded from a
// JSON file, with environment variables overriding individual fields.
// Missing values use defaults.
type Config struct {
	// AI suggestion service
	APIKey         string  `json:"api_key,omitempty"`
	Model          string  `json:"model,omitempty"`
	AIEnabled      *bool   `json:"ai_enabled,omitempty"`
	MaxRetries     int     `json:"max_retries,omitempty"`
	BaseBackoffMS  int     `json:"base_backoff_ms,omitempty"`
	MaxBackoffMS   int     `json:"max_backoff_ms,omitempty"`
	RequestTimeout int     `json:"request_timeout_seconds,omitempty"`
	Temperature    float64 `json:"temperature,omitempty"`

	// Scoring policy
	Weights              *scoring.Weights `json:"weights,omitempty"`
	KeywordDensityTarget float64          `json:"keyword_density_target,omitempty"`

	// Extraction policy
	AdvancedThreshold     int `json:"advanced_threshold,omitempty"`
	IntermediateThreshold int `json:"intermediate_threshold,omitempty"`

	// Dictionaries
	DictionaryPath string `json:"dictionary_path,omitempty"`

	// Server
	ListenAddr      string `json:"listen_addr,omitempty"`
	MaxRequestBytes int64  `json:"max_request_bytes,omitempty"`

	// Behavior
	Verbose bool `json:"verbose,omitempty"`
}

// Load reads configuration from a JSON file. An empty path returns an
// empty Config so env overrides and defaults still apply.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		if !filepath.IsAbs(path) {
			cwd, err := os.Getwd()
			if err != nil {
				return nil, &ConfigurationError{Message: "failed to get current directory", Cause: err}
			}
			path = filepath.Join(cwd, path)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, &ConfigurationError{Message: "failed to read config file " + path, Cause: err}
		}
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, &ConfigurationError{Message: "failed to parse config JSON", Cause: err}
		}
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overrides file values with environment variables where set.
func (c *Config) applyEnv() {
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv("ANALYZER_MODEL"); v != "" {
		c.Model = v
	}
	if v := os.Getenv("ANALYZER_AI_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.AIEnabled = &b
		}
	}
	if v := os.Getenv("ANALYZER_LISTEN_ADDR"); v != "" {
		c.ListenAddr = v
	}
	if v := os.Getenv("ANALYZER_DICTIONARY"); v != "" {
		c.DictionaryPath = v
	}
}

// Validate checks that the configuration has usable values. It is called
// at startup; any error here is fatal.
func (c *Config) Validate() error {
	if c.Weights != nil {
		if err := c.Weights.Validate(); err != nil {
			return &ConfigurationError{Message: "invalid scoring weights", Cause: err}
		}
	}
	if c.KeywordDensityTarget < 0 {
		return &ConfigurationError{Message: "'keyword_density_target' must be non-negative"}
	}
	if c.MaxRetries < 0 {
		return &ConfigurationError{Message: "'max_retries' must be non-negative"}
	}
	if c.BaseBackoffMS < 0 || c.MaxBackoffMS < 0 {
		return &ConfigurationError{Message: "backoff values must be non-negative"}
	}
	if c.RequestTimeout < 0 {
		return &ConfigurationError{Message: "'request_timeout_seconds' must be non-negative"}
	}
	if c.AdvancedThreshold < 0 || c.IntermediateThreshold < 0 {
		return &ConfigurationError{Message: "proficiency thresholds must be non-negative"}
	}
	if c.AdvancedThreshold > 0 && c.IntermediateThreshold > c.AdvancedThreshold {
		return &ConfigurationError{Message: "'intermediate_threshold' must not exceed 'advanced_threshold'"}
	}
	if c.MaxRequestBytes < 0 {
		return &ConfigurationError{Message: "'max_request_bytes' must be non-negative"}
	}
	if c.DictionaryPath != "" {
		if _, err := os.Stat(c.DictionaryPath); os.IsNotExist(err) {
			return &ConfigurationError{Message: "dictionary file not found: " + c.DictionaryPath}
		}
	}
	return nil
}

// AIActive reports whether the AI suggestion service should be used.
// Defaults to true when an API key is present.
func (c *Config) AIActive() bool {
	if c.AIEnabled != nil {
		return *c.AIEnabled
	}
	return c.APIKey != ""
}

// ScoringConfig materializes the scoring policy, falling back to
// defaults for anything unset.
func (c *Config) ScoringConfig() scoring.Config {
	sc := scoring.DefaultConfig()
	if c.Weights != nil {
		sc.Weights = *c.Weights
	}
	if c.KeywordDensityTarget > 0 {
		sc.KeywordDensityTarget = c.KeywordDensityTarget
	}
	return sc
}

// ProficiencyThresholds materializes the skill proficiency policy.
func (c *Config) ProficiencyThresholds() extract.ProficiencyThresholds {
	t := extract.DefaultProficiencyThresholds()
	if c.AdvancedThreshold > 0 {
		t.Advanced = c.AdvancedThreshold
	}
	if c.IntermediateThreshold > 0 {
		t.Intermediate = c.IntermediateThreshold
	}
	return t
}

// SuggestConfig materializes the suggestion orchestrator policy.
func (c *Config) SuggestConfig() suggest.Config {
	sc := suggest.DefaultConfig()
	sc.Enabled = c.AIActive()
	if c.MaxRetries > 0 {
		sc.MaxRetries = c.MaxRetries
	}
	if c.BaseBackoffMS > 0 {
		sc.BaseBackoff = time.Duration(c.BaseBackoffMS) * time.Millisecond
	}
	if c.MaxBackoffMS > 0 {
		sc.MaxBackoff = time.Duration(c.MaxBackoffMS) * time.Millisecond
	}
	if c.RequestTimeout > 0 {
		sc.RequestTimeout = time.Duration(c.RequestTimeout) * time.Second
	}
	return sc
}

// LLMConfig materializes the model client configuration.
func (c *Config) LLMConfig() *llm.Config {
	mc := llm.DefaultConfig()
	if c.Model != "" {
		mc.Model = c.Model
	}
	if c.Temperature > 0 {
		mc.Temperature = float32(c.Temperature)
	}
	return mc
}

// Addr returns the server listen address, defaulting to :8080.
func (c *Config) Addr() string {
	if c.ListenAddr != "" {
		return c.ListenAddr
	}
	return ":8080"
}

// RequestLimit returns the request body size cap, defaulting to 1 MiB.
func (c *Config) RequestLimit() int64 {
	if c.MaxRequestBytes > 0 {
		return c.MaxRequestBytes
	}
	return 1 << 20
}
