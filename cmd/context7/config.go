package main

import (
	"github.com/spf13/cobra"

	"github.com/fwojciec/context7"
	"github.com/fwojciec/context7/mcporter"
	c7yaml "github.com/fwojciec/context7/yaml"
)

// resolveConfig builds the configuration from, lowest precedence first:
// built-in defaults, the plugin config file, the environment, and flags set
// on the command line. Without a bridge config path, the search directories
// are tried in order.
func resolveConfig(cmd *cobra.Command, g *globalOptions) (context7.Config, error) {
	var cfg context7.Config
	if g.configPath != "" {
		loaded, err := c7yaml.LoadConfig(g.configPath)
		if err != nil {
			return context7.Config{}, err
		}
		cfg = loaded
	}

	if g.getenv != nil {
		if path := g.getenv(EnvMCPorterConfig); path != "" {
			cfg.MCPorterConfigPath = path
		}
	}

	flags := cmd.Flags()
	if flags.Changed("mcporter-config") {
		cfg.MCPorterConfigPath = g.mcporterConfig
	}
	if flags.Changed("server") {
		cfg.ServerName = g.server
	}
	if flags.Changed("max-chars") {
		cfg.MaxChars = g.maxChars
	}
	if flags.Changed("command") {
		cfg.Command = g.command
	}
	if flags.Changed("timeout") {
		cfg.Timeout = g.timeout
	}

	if !cfg.Configured() {
		for _, dir := range g.searchDirs {
			path, err := mcporter.DiscoverIn(dir)
			if err != nil {
				return context7.Config{}, err
			}
			if path != "" {
				cfg.MCPorterConfigPath = path
				break
			}
		}
	}

	if err := cfg.Validate(); err != nil {
		return context7.Config{}, err
	}
	return cfg.WithDefaults(), nil
}
