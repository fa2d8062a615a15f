package context7

import (
	"fmt"
	"strings"
	"unicode"
)

// Validate checks constraints on Config. Zero values are accepted because
// WithDefaults replaces them; an empty MCPorterConfigPath is not an error here
// since an unconfigured tool still answers with an explanatory result.
func (c Config) Validate() error {
	if c.MaxChars < 0 {
		return fmt.Errorf("maxChars must be non-negative, got %d: %w", c.MaxChars, ErrValidation)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must be non-negative, got %s: %w", c.Timeout, ErrValidation)
	}
	if c.MaxOutputBytes < 0 {
		return fmt.Errorf("maxOutputBytes must be non-negative, got %d: %w", c.MaxOutputBytes, ErrValidation)
	}
	if strings.ContainsFunc(c.ServerName, func(r rune) bool { return r == '.' || unicode.IsSpace(r) }) {
		return fmt.Errorf("serverName must not contain dots or whitespace, got %q: %w", c.ServerName, ErrValidation)
	}
	if c.Command != "" && strings.TrimSpace(c.Command) == "" {
		return fmt.Errorf("command must not be blank: %w", ErrValidation)
	}
	return nil
}
