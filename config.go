package context7

import (
	"strings"
	"time"
)

// Defaults applied by Config.WithDefaults.
const (
	DefaultServerName     = "context7"
	DefaultMaxChars       = 40_000
	DefaultCommand        = "mcporter"
	DefaultTimeout        = 60 * time.Second
	DefaultMaxOutputBytes = 10 * 1024 * 1024 // 10MB

	// ResolverClipChars bounds the resolver diagnostics block of a successful
	// lookup. It does not follow MaxChars.
	ResolverClipChars = 4_000
)

// Config is supplied by the host at setup. Zero values mean "use the default",
// except MCPorterConfigPath: an empty path leaves the tool unconfigured.
type Config struct {
	MCPorterConfigPath string // path to the bridge config file
	ServerName         string // server name inside the bridge config
	MaxChars           int    // clip bound for documentation and resolver output; 0 means DefaultMaxChars

	Command        string        // bridge executable
	Timeout        time.Duration // per bridge call
	MaxOutputBytes int64         // stdout ceiling per bridge call
}

// DefaultConfig returns a Config with every default filled in and no bridge
// config path.
func DefaultConfig() Config {
	return Config{}.WithDefaults()
}

// WithDefaults returns a copy of c with zero fields replaced by defaults.
func (c Config) WithDefaults() Config {
	if c.ServerName == "" {
		c.ServerName = DefaultServerName
	}
	if c.MaxChars == 0 {
		c.MaxChars = DefaultMaxChars
	}
	if c.Command == "" {
		c.Command = DefaultCommand
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	if c.MaxOutputBytes == 0 {
		c.MaxOutputBytes = DefaultMaxOutputBytes
	}
	return c
}

// Configured reports whether a bridge config path is set.
func (c Config) Configured() bool {
	return strings.TrimSpace(c.MCPorterConfigPath) != ""
}
