// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-extractor/internal/types"
)

// Default values applied by MergeWithDefaults
const (
	DefaultFuzzyTopN      = 5
	DefaultFuzzyThreshold = 80
	DefaultUploadDir      = "uploads"
	DefaultPort           = 8080
	DefaultMaxUploadMB    = 10
)

// Config represents the configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Lexicons
	Skills              []string `json:"skills,omitempty" validate:"omitempty,dive,required"`
	InstitutionKeywords []string `json:"institution_keywords,omitempty" validate:"omitempty,dive,required"`

	// Filename cross-check
	FuzzyTopN      int `json:"fuzzy_top_n,omitempty" validate:"gte=1"`
	FuzzyThreshold int `json:"fuzzy_threshold,omitempty" validate:"gte=0,lte=100"`

	// Upload server
	UploadDir   string `json:"upload_dir,omitempty"`
	Port        int    `json:"port,omitempty" validate:"gte=0,lte=65535"`
	MaxUploadMB int64  `json:"max_upload_mb,omitempty" validate:"gte=0"`

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// ApplyEnv overrides fields from RESUME_UPLOAD_DIR, RESUME_PORT and RESUME_MAX_UPLOAD_MB
func (c *Config) ApplyEnv() error {
	if dir := os.Getenv("RESUME_UPLOAD_DIR"); dir != "" {
		c.UploadDir = dir
	}
	if portStr := os.Getenv("RESUME_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return fmt.Errorf("invalid RESUME_PORT: %v", err)
		}
		c.Port = port
	}
	if sizeStr := os.Getenv("RESUME_MAX_UPLOAD_MB"); sizeStr != "" {
		size, err := strconv.ParseInt(sizeStr, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid RESUME_MAX_UPLOAD_MB: %v", err)
		}
		c.MaxUploadMB = size
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults,
// falling back to the built-in values when defaults leave them empty too.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if len(result.Skills) == 0 {
		result.Skills = defaults.Skills
	}
	if len(result.Skills) == 0 {
		result.Skills = append([]string(nil), types.DefaultSkills...)
	}
	if len(result.InstitutionKeywords) == 0 {
		result.InstitutionKeywords = defaults.InstitutionKeywords
	}
	if len(result.InstitutionKeywords) == 0 {
		result.InstitutionKeywords = append([]string(nil), types.DefaultInstitutionKeywords...)
	}

	result.FuzzyTopN = firstNonZero(result.FuzzyTopN, defaults.FuzzyTopN, DefaultFuzzyTopN)
	result.FuzzyThreshold = firstNonZero(result.FuzzyThreshold, defaults.FuzzyThreshold, DefaultFuzzyThreshold)
	result.Port = firstNonZero(result.Port, defaults.Port, DefaultPort)
	if result.MaxUploadMB == 0 {
		result.MaxUploadMB = defaults.MaxUploadMB
	}
	if result.MaxUploadMB == 0 {
		result.MaxUploadMB = DefaultMaxUploadMB
	}

	if result.UploadDir == "" {
		result.UploadDir = defaults.UploadDir
	}
	if result.UploadDir == "" {
		result.UploadDir = DefaultUploadDir
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// Lexicon returns the lexicon part of the configuration
func (c *Config) Lexicon() types.Lexicon {
	return types.Lexicon{
		Skills:              c.Skills,
		InstitutionKeywords: c.InstitutionKeywords,
	}
}

// Load reads path when it is set, applies environment overrides, fills defaults
// and validates the result
func Load(path string) (Config, error) {
	cfg := &Config{}
	if path != "" {
		loaded, err := LoadConfig(path)
		if err != nil {
			return Config{}, err
		}
		cfg = loaded
	}
	if err := cfg.ApplyEnv(); err != nil {
		return Config{}, err
	}

	merged := cfg.MergeWithDefaults(Config{})
	if err := merged.Validate(); err != nil {
		return Config{}, err
	}
	return merged, nil
}

// firstNonZero leaves negative values in place so that Validate can reject them
func firstNonZero(values ...int) int {
	for _, v := range values {
		if v != 0 {
			return v
		}
	}
	return 0
}
