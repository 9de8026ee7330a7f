package logger

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/muhammadchandra19/quotestream/pkg/errors"
	"github.com/muhammadchandra19/quotestream/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readEntries(t *testing.T, path string) []map[string]any {
	t.Helper()

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(string(raw)), "\n") {
		if line == "" {
			continue
		}
		entry := map[string]any{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestLogger_Levels(t *testing.T) {
	testCases := []struct {
		name     string
		level    Level
		logFn    func(l *Logger)
		assertFn func(t *testing.T, entries []map[string]any)
	}{
		{
			name:  "info level drops debug",
			level: InfoLevel,
			logFn: func(l *Logger) {
				l.Debug("hidden")
				l.Info("visible", NewField("pair", "ETHUSDT"))
			},
			assertFn: func(t *testing.T, entries []map[string]any) {
				require.Len(t, entries, 1)
				assert.Equal(t, "visible", entries[0]["message"])
				assert.Equal(t, "ETHUSDT", entries[0]["pair"])
			},
		},
		{
			name:  "debug level keeps debug",
			level: DebugLevel,
			logFn: func(l *Logger) {
				l.Debug("shown")
			},
			assertFn: func(t *testing.T, entries []map[string]any) {
				require.Len(t, entries, 1)
				assert.Equal(t, "debug", entries[0]["level"])
			},
		},
		{
			name:  "error carries tracer stack",
			level: InfoLevel,
			logFn: func(l *Logger) {
				l.Error(errors.NewTracer("flush failed").Wrap(assert.AnError), NewField("action", "flush"))
			},
			assertFn: func(t *testing.T, entries []map[string]any) {
				require.Len(t, entries, 1)
				assert.Equal(t, "flush failed", entries[0]["message"])
				assert.Equal(t, "flush", entries[0]["action"])
				assert.NotEmpty(t, entries[0]["stacktrace"])
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "log.json")
			l, err := NewLogger(WithLoggingLevel(tc.level), WithOutputPaths([]string{path}))
			require.NoError(t, err)

			tc.logFn(l)
			_ = l.Sync()

			tc.assertFn(t, readEntries(t, path))
		})
	}
}

func TestLogger_ContextAndWith(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.json")
	l, err := NewLogger(WithOutputPaths([]string{path}), WithInitialFields(NewField("service", "quotestream")))
	require.NoError(t, err)

	ctx := util.WithClientIP(util.WithRequestID(context.Background(), "req-1"), "10.0.0.7")
	l.With(NewField("component", "hub")).(*Logger).InfoContext(ctx, "subscriber registered")
	l.WarnContext(util.WithSubscriberID(context.Background(), "01HQ"), "subscriber queue full")
	l.InfoContext(context.Background(), "no request id")
	_ = l.Sync()

	entries := readEntries(t, path)
	require.Len(t, entries, 3)
	assert.Equal(t, "req-1", entries[0]["request_id"])
	assert.Equal(t, "10.0.0.7", entries[0]["client_ip"])
	assert.Equal(t, "hub", entries[0]["component"])
	assert.Equal(t, "quotestream", entries[0]["service"])
	assert.Equal(t, "01HQ", entries[1]["subscriber_id"])
	_, ok := entries[2]["request_id"]
	assert.False(t, ok)
}
