package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestLogger_JSONOutputWithContext(t *testing.T) {
	var buf bytes.Buffer
	l := newLoggerWithWriter(&LogConfig{Level: "debug", Format: "json", ServiceName: "bakery-api"}, &buf)

	ctx := context.WithValue(context.Background(), ContextKeyRequestID, "req-42")
	ctx = context.WithValue(ctx, ContextKeyMethod, "POST")

	l.InfoContext(ctx, "saved bakery item", slog.Int64("id", 7))

	entry := decodeLine(t, &buf)
	assert.Equal(t, "saved bakery item", entry["msg"])
	assert.Equal(t, "INFO", entry["severity"])
	assert.Equal(t, "req-42", entry["request_id"])
	assert.Equal(t, "POST", entry["method"])
	assert.Equal(t, "bakery-api", entry["service"])
	assert.EqualValues(t, 7, entry["id"])
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := newLoggerWithWriter(&LogConfig{Level: "warn", Format: "json"}, &buf)

	l.Info("hidden")
	assert.Zero(t, buf.Len())

	l.Warn("shown")
	assert.NotZero(t, buf.Len())
}

func TestSanitizationHandler(t *testing.T) {
	tests := []struct {
		name     string
		log      func(l *slog.Logger)
		key      string
		expected string
	}{
		{
			name:     "blacklisted_key_is_redacted",
			log:      func(l *slog.Logger) { l.Info("item", slog.String("contact", "0712345678")) },
			key:      "contact",
			expected: redacted,
		},
		{
			name:     "phone_number_in_value_is_redacted",
			log:      func(l *slog.Logger) { l.Info("item", slog.String("detail", "call 0712 345 678 today")) },
			key:      "detail",
			expected: "call " + redacted + " today",
		},
		{
			name:     "credentials_in_value_are_masked",
			log:      func(l *slog.Logger) { l.Info("item", slog.String("dsn", "host=db password=hunter2")) },
			key:      "dsn",
			expected: "host=db password=" + redacted,
		},
		{
			name:     "plain_values_are_kept",
			log:      func(l *slog.Logger) { l.Info("item", slog.String("name", "Croissant")) },
			key:      "name",
			expected: "Croissant",
		},
		{
			name:     "phone_number_in_message_is_redacted",
			log:      func(l *slog.Logger) { l.Info("contact +254712345678 updated") },
			key:      "msg",
			expected: "contact " + redacted + " updated",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := newLoggerWithWriter(&LogConfig{Level: "info", Format: "json"}, &buf)

			tt.log(l.Logger)

			entry := decodeLine(t, &buf)
			assert.Equal(t, tt.expected, entry[tt.key])
		})
	}
}

func TestMultiHandler_FansOut(t *testing.T) {
	var a, b bytes.Buffer
	h := NewMultiHandler(
		slog.NewJSONHandler(&a, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewJSONHandler(&b, &slog.HandlerOptions{Level: slog.LevelError}),
	)
	l := slog.New(h)

	l.Info("info only")
	assert.NotZero(t, a.Len())
	assert.Zero(t, b.Len())

	l.Error("both")
	assert.NotZero(t, b.Len())
}

func TestPrettyTextHandler(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(NewPrettyTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})).
		With(slog.String("handler", "items"))

	l.Debug("listing", slog.Int("count", 3))

	out := buf.String()
	assert.Contains(t, out, "DEBUG")
	assert.Contains(t, out, "listing")
	assert.Contains(t, out, "handler")
	assert.Contains(t, out, "count")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG").Level())
	assert.Equal(t, slog.LevelWarn, parseLevel("warning").Level())
	assert.Equal(t, slog.LevelError, parseLevel("error").Level())
	assert.Equal(t, slog.LevelInfo, parseLevel("bogus").Level())
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	l := newLoggerWithWriter(&LogConfig{Level: "info", Format: "json"}, &buf)

	ctx := WithLogger(context.Background(), l)
	ctx = context.WithValue(ctx, ContextKeyJobID, "job-1")

	FromContext(ctx).Info("export done")

	entry := decodeLine(t, &buf)
	assert.Equal(t, "job-1", entry["job_id"])
}
