// Package yaml loads context7 configuration files. YAML is a superset of
// JSON, so plugin config written as JSON loads the same way.
package yaml

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/fwojciec/context7"
)

// configDTO is the file representation of context7.Config. Unknown keys are
// ignored so the tool can read a host's shared plugin config.
type configDTO struct {
	MCPorterConfigPath string `yaml:"mcporterConfigPath"`
	ServerName         string `yaml:"serverName"`
	MaxChars           int    `yaml:"maxChars"`
	Command            string `yaml:"command"`
	TimeoutMs          int64  `yaml:"timeoutMs"`
	MaxOutputBytes     int64  `yaml:"maxOutputBytes"`
}

// UnmarshalConfig decodes and validates a config document. Absent keys stay
// zero; callers apply defaults with Config.WithDefaults.
func UnmarshalConfig(data []byte) (context7.Config, error) {
	var dto configDTO
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return context7.Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg := context7.Config{
		MCPorterConfigPath: strings.TrimSpace(dto.MCPorterConfigPath),
		ServerName:         dto.ServerName,
		MaxChars:           dto.MaxChars,
		Command:            dto.Command,
		Timeout:            time.Duration(dto.TimeoutMs) * time.Millisecond,
		MaxOutputBytes:     dto.MaxOutputBytes,
	}
	if err := cfg.Validate(); err != nil {
		return context7.Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads a config file. A relative mcporterConfigPath is resolved
// against the directory of the file.
func LoadConfig(path string) (context7.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return context7.Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := UnmarshalConfig(data)
	if err != nil {
		return context7.Config{}, fmt.Errorf("%s: %w", path, err)
	}
	if cfg.MCPorterConfigPath != "" && !filepath.IsAbs(cfg.MCPorterConfigPath) {
		cfg.MCPorterConfigPath = filepath.Join(filepath.Dir(path), cfg.MCPorterConfigPath)
	}
	return cfg, nil
}
