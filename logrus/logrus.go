// Package logrus adapts context7 lookup events to structured logrus logs.
package logrus

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/fwojciec/context7"
)

// NewLogger returns a logger writing to w. Level is any logrus level name
// ("debug", "info", ...); format is "text" or "json".
func NewLogger(w io.Writer, level, format string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(lvl)
	switch format {
	case "", "text":
		logger.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("log format %q: %w", format, context7.ErrValidation)
	}
	return logger, nil
}

// EventHandler returns a callback for context7.WithEventHandler that logs
// each event. Rejections and unresolved libraries log at info, bridge
// progress at debug.
func EventHandler(log logrus.FieldLogger) func(context7.Event) {
	return func(e context7.Event) {
		switch e := e.(type) {
		case context7.EventRejected:
			log.WithFields(logrus.Fields{
				"request_id": e.RequestID,
				"reason":     e.Reason,
			}).Info("lookup rejected")
		case context7.EventResolveStarted:
			log.WithFields(logrus.Fields{
				"request_id": e.RequestID,
				"search":     e.Search,
			}).Debug("resolving library id")
		case context7.EventResolved:
			log.WithFields(logrus.Fields{
				"request_id": e.RequestID,
				"library_id": e.LibraryID,
			}).Debug("library id resolved")
		case context7.EventUnresolved:
			log.WithFields(logrus.Fields{
				"request_id":     e.RequestID,
				"resolver_chars": e.Chars,
			}).Info("library id not found in resolver output")
		case context7.EventQueryStarted:
			fields := logrus.Fields{
				"request_id": e.RequestID,
				"library_id": e.LibraryID,
				"query":      e.Query,
			}
			if e.VersionHint != "" {
				fields["version_hint"] = e.VersionHint
			}
			log.WithFields(fields).Debug("querying docs")
		case context7.EventQueryFinished:
			log.WithFields(logrus.Fields{
				"request_id": e.RequestID,
				"library_id": e.LibraryID,
				"chars":      e.Chars,
				"clipped":    e.Clipped,
			}).Info("docs retrieved")
		}
	}
}

// ErrorFields returns log fields describing err. A *context7.BridgeError
// contributes its operation, exit code and stderr.
func ErrorFields(err error) logrus.Fields {
	fields := logrus.Fields{logrus.ErrorKey: err}
	var be *context7.BridgeError
	if errors.As(err, &be) {
		fields["operation"] = string(be.Operation)
		fields["exit_code"] = be.ExitCode
		if be.Stderr != "" {
			fields["stderr"] = be.Stderr
		}
	}
	return fields
}
