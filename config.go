package jsonutils

import (
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultIndentFactor is the indentation step used when none is configured
const DefaultIndentFactor = 2

// Config holds the renderer configuration
type Config struct {
	// Function-literal grammar; empty keeps the built-in pattern
	FunctionPattern       string `json:"function_pattern" yaml:"function_pattern"`
	FunctionHeaderPattern string `json:"function_header_pattern" yaml:"function_header_pattern"`
	FunctionParamsPattern string `json:"function_params_pattern" yaml:"function_params_pattern"`

	// DisableFunctionLiterals makes function-literal text an ordinary string
	DisableFunctionLiterals bool `json:"disable_function_literals" yaml:"disable_function_literals"`

	// IndentFactor is the default indentation step for pretty output
	IndentFactor int `json:"indent_factor" yaml:"indent_factor"`

	// Matcher overrides the pattern fields when set
	Matcher FunctionMatcher `json:"-" yaml:"-"`

	// Logger receives debug records; nil uses slog.Default()
	Logger *slog.Logger `json:"-" yaml:"-"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		IndentFactor:            DefaultIndentFactor,
		DisableFunctionLiterals: false,
	}
}

// Clone creates a copy of the Config. Matcher and Logger are shared.
func (c *Config) Clone() *Config {
	if c == nil {
		return DefaultConfig()
	}
	clone := *c
	return &clone
}

// ValidateConfig validates configuration values and applies corrections
func ValidateConfig(config *Config) error {
	if config == nil {
		return newOperationError("validate_config", "config cannot be nil", ErrInvalidConfig)
	}

	if config.IndentFactor < 0 {
		return newOperationError("validate_config", "IndentFactor cannot be negative", ErrInvalidConfig)
	}
	if config.IndentFactor == 0 {
		config.IndentFactor = DefaultIndentFactor
	}

	if config.Matcher == nil && config.hasCustomPatterns() {
		if _, err := NewFunctionMatcher(config.FunctionPattern, config.FunctionHeaderPattern, config.FunctionParamsPattern); err != nil {
			return err
		}
	}

	return nil
}

// LoadConfig reads a YAML configuration file on top of the defaults
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, newOperationError("load_config", err.Error(), ErrInvalidConfig)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, newOperationError("load_config", "parse "+path+": "+err.Error(), ErrInvalidConfig)
	}
	if err := ValidateConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) hasCustomPatterns() bool {
	return c.FunctionPattern != "" || c.FunctionHeaderPattern != "" || c.FunctionParamsPattern != ""
}

// functionMatcher resolves the matcher the config describes
func (c *Config) functionMatcher() (FunctionMatcher, error) {
	switch {
	case c.DisableFunctionLiterals:
		return noFunctionMatcher{}, nil
	case c.Matcher != nil:
		return c.Matcher, nil
	case c.hasCustomPatterns():
		return NewFunctionMatcher(c.FunctionPattern, c.FunctionHeaderPattern, c.FunctionParamsPattern)
	default:
		return DefaultFunctionMatcher(), nil
	}
}
