package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.opentelemetry.io/otel"

	"github.com/fwojciec/context7"
	c7logrus "github.com/fwojciec/context7/logrus"
	"github.com/fwojciec/context7/mcporter"
	c7otel "github.com/fwojciec/context7/otel"
)

// EnvMCPorterConfig overrides the bridge config path of a plugin config file.
const EnvMCPorterConfig = "CONTEXT7_MCPORTER_CONFIG"

type globalOptions struct {
	configPath     string
	mcporterConfig string
	server         string
	maxChars       int
	command        string
	timeout        time.Duration
	logLevel       string
	logFormat      string
	trace          bool

	getenv     func(string) string
	searchDirs []string
}

func newRootCmd(getenv func(string) string, searchDirs []string) *cobra.Command {
	g := &globalOptions{getenv: getenv, searchDirs: searchDirs}

	root := &cobra.Command{
		Use:           "context7",
		Short:         "Look up library documentation via Context7",
		Long:          "context7 resolves a library name to a Context7 libraryId and queries its documentation through mcporter.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetVersionTemplate(fmt.Sprintf("context7 version %s\n", version))

	g.addFlags(root.PersistentFlags())

	root.AddCommand(newLookupCmd(g))
	root.AddCommand(newServeCmd(g))
	root.AddCommand(newTUICmd(g))
	root.AddCommand(newSchemaCmd())
	return root
}

func (g *globalOptions) addFlags(flags *pflag.FlagSet) {
	flags.StringVar(&g.configPath, "config", "", "Plugin config file (JSON or YAML)")
	flags.StringVar(&g.mcporterConfig, "mcporter-config", "", "Path to the mcporter config file")
	flags.StringVar(&g.server, "server", context7.DefaultServerName, "Server name inside the mcporter config")
	flags.IntVar(&g.maxChars, "max-chars", context7.DefaultMaxChars, "Maximum characters of documentation returned (0 means the default)")
	flags.StringVar(&g.command, "command", context7.DefaultCommand, "Bridge executable")
	flags.DurationVar(&g.timeout, "timeout", context7.DefaultTimeout, "Timeout per bridge call")
	flags.StringVar(&g.logLevel, "log-level", "warning", "Log level: debug, info, warning, error")
	flags.StringVar(&g.logFormat, "log-format", "text", "Log format: text | json")
	flags.BoolVar(&g.trace, "trace", false, "Export traces over OTLP/HTTP (configured by OTEL_* variables)")
}

// app holds the wired components shared by the subcommands.
type app struct {
	cfg    context7.Config
	log    *logrus.Logger
	lookup *context7.Lookup
	close  func()
}

// setup resolves the configuration and wires logging, instrumentation and
// the bridge. Logs are written to logOut. The caller must call close.
func setup(cmd *cobra.Command, g *globalOptions, logOut io.Writer) (*app, error) {
	log, err := c7logrus.NewLogger(logOut, g.logLevel, g.logFormat)
	if err != nil {
		return nil, exitError(exitConfig, "%w", err)
	}

	cfg, err := resolveConfig(cmd, g)
	if err != nil {
		return nil, exitError(exitConfig, "%w", err)
	}
	log.WithFields(logrus.Fields{
		"mcporter_config": cfg.MCPorterConfigPath,
		"server":          cfg.ServerName,
		"command":         cfg.Command,
		"timeout":         cfg.Timeout,
	}).Debug("configuration resolved")

	closeFn := func() {}
	if g.trace {
		tp, err := c7otel.NewTracerProvider(cmd.Context())
		if err != nil {
			return nil, exitError(exitConfig, "%w", err)
		}
		otel.SetTracerProvider(tp)
		closeFn = func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tp.Shutdown(ctx); err != nil {
				log.WithError(err).Warn("trace provider shutdown failed")
			}
		}
	}

	meter := otel.GetMeterProvider().Meter(c7otel.InstrumentationName)
	bridge, err := c7otel.NewBridge(mcporter.New(cfg), meter, otel.Tracer(c7otel.InstrumentationName))
	if err != nil {
		closeFn()
		return nil, fmt.Errorf("instrument bridge: %w", err)
	}
	metrics, err := c7otel.NewEventMetrics(meter)
	if err != nil {
		closeFn()
		return nil, fmt.Errorf("instrument lookups: %w", err)
	}
	logEvent := c7logrus.EventHandler(log)

	lookup := context7.NewLookup(bridge, cfg, context7.WithEventHandler(func(e context7.Event) {
		logEvent(e)
		metrics.Handle(e)
	}))
	return &app{cfg: cfg, log: log, lookup: lookup, close: closeFn}, nil
}
