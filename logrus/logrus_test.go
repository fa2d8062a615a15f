package logrus_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/context7"
	c7logrus "github.com/fwojciec/context7/logrus"
)

func TestNewLogger(t *testing.T) {
	t.Parallel()

	t.Run("json format", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		logger, err := c7logrus.NewLogger(&buf, "info", "json")
		require.NoError(t, err)

		logger.WithField("library_id", "/a/b").Info("docs retrieved")
		logger.Debug("hidden")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "docs retrieved", entry["msg"])
		assert.Equal(t, "/a/b", entry["library_id"])
		assert.NotContains(t, buf.String(), "hidden")
	})

	t.Run("text format is the default", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		logger, err := c7logrus.NewLogger(&buf, "debug", "")
		require.NoError(t, err)

		logger.Debug("visible")
		assert.Contains(t, buf.String(), "msg=visible")
		assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	})

	t.Run("rejects unknown level", func(t *testing.T) {
		t.Parallel()
		_, err := c7logrus.NewLogger(&bytes.Buffer{}, "loud", "text")
		assert.Error(t, err)
	})

	t.Run("rejects unknown format", func(t *testing.T) {
		t.Parallel()
		_, err := c7logrus.NewLogger(&bytes.Buffer{}, "info", "xml")
		assert.ErrorIs(t, err, context7.ErrValidation)
	})
}

func TestEventHandler(t *testing.T) {
	t.Parallel()

	t.Run("logs lifecycle events with fields", func(t *testing.T) {
		t.Parallel()
		logger, hook := test.NewNullLogger()
		logger.SetLevel(logrus.DebugLevel)
		handle := c7logrus.EventHandler(logger)

		handle(context7.EventResolveStarted{RequestID: "r1", Search: "fastapi"})
		handle(context7.EventResolved{RequestID: "r1", LibraryID: "/tiangolo/fastapi"})
		handle(context7.EventQueryStarted{RequestID: "r1", LibraryID: "/tiangolo/fastapi", Query: "cors", VersionHint: "0.110"})
		handle(context7.EventQueryFinished{RequestID: "r1", LibraryID: "/tiangolo/fastapi", Chars: 42000, Clipped: true})

		entries := hook.AllEntries()
		require.Len(t, entries, 4)
		assert.Equal(t, "resolving library id", entries[0].Message)
		assert.Equal(t, logrus.DebugLevel, entries[0].Level)
		assert.Equal(t, "fastapi", entries[0].Data["search"])
		assert.Equal(t, "0.110", entries[2].Data["version_hint"])

		last := hook.LastEntry()
		assert.Equal(t, "docs retrieved", last.Message)
		assert.Equal(t, logrus.InfoLevel, last.Level)
		assert.Equal(t, "r1", last.Data["request_id"])
		assert.Equal(t, 42000, last.Data["chars"])
		assert.Equal(t, true, last.Data["clipped"])
	})

	t.Run("omits empty version hint", func(t *testing.T) {
		t.Parallel()
		logger, hook := test.NewNullLogger()
		logger.SetLevel(logrus.DebugLevel)

		c7logrus.EventHandler(logger)(context7.EventQueryStarted{LibraryID: "/a/b", Query: "q"})
		require.Len(t, hook.AllEntries(), 1)
		assert.NotContains(t, hook.LastEntry().Data, "version_hint")
	})

	t.Run("logs rejections and unresolved lookups at info", func(t *testing.T) {
		t.Parallel()
		logger, hook := test.NewNullLogger()
		handle := c7logrus.EventHandler(logger)

		handle(context7.EventRejected{RequestID: "r2", Reason: "missing query"})
		handle(context7.EventUnresolved{RequestID: "r3", Chars: 17})
		handle(context7.EventResolved{RequestID: "r3", LibraryID: "/x"})

		entries := hook.AllEntries()
		require.Len(t, entries, 2, "debug events are filtered at info level")
		assert.Equal(t, "missing query", entries[0].Data["reason"])
		assert.Equal(t, 17, entries[1].Data["resolver_chars"])
	})
}

func TestErrorFields(t *testing.T) {
	t.Parallel()

	t.Run("bridge errors contribute details", func(t *testing.T) {
		t.Parallel()
		err := fmt.Errorf("query docs: %w", &context7.BridgeError{
			Operation: context7.OpQueryDocs,
			ExitCode:  2,
			Stderr:    "unknown server",
			Err:       context7.ErrBridgeFailed,
		})
		fields := c7logrus.ErrorFields(err)
		assert.Equal(t, err, fields[logrus.ErrorKey])
		assert.Equal(t, "query-docs", fields["operation"])
		assert.Equal(t, 2, fields["exit_code"])
		assert.Equal(t, "unknown server", fields["stderr"])
	})

	t.Run("other errors only set the error key", func(t *testing.T) {
		t.Parallel()
		fields := c7logrus.ErrorFields(assert.AnError)
		assert.Len(t, fields, 1)
	})
}
