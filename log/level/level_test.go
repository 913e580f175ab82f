package level

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTextLogger(buf *bytes.Buffer, min slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: min}))
}

func TestInfoLogWithMessage(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := newTextLogger(buf, slog.LevelInfo)

	assert.NoError(t, Info(logger).Log("msg", "hello", "k", "v", "n", 1))

	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "msg=hello")
	assert.Contains(t, out, "k=v")
	assert.Contains(t, out, "n=1")
}

func TestDefaultMessageAndFiltering(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := newTextLogger(buf, slog.LevelWarn)

	_ = Debug(logger).Log("msg", "hidden")
	_ = Info(logger).Log("msg", "hidden")
	_ = Warn(logger).Log("k", 1)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=warn")
	assert.Equal(t, 1, strings.Count(out, "\n"))
}

func TestTypedNilAndInvalidKeys(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := newTextLogger(buf, slog.LevelDebug)

	var err *struct{ error }

	assert.NotPanics(t, func() {
		_ = Error(logger).Log("msg", "boom", "err", err, 42, "ignored", "dangling")
	})

	out := buf.String()
	assert.Contains(t, out, "err=<nil>")
	assert.NotContains(t, out, "ignored")
	assert.NotContains(t, out, "dangling")
}

func TestNilLogger(t *testing.T) {
	assert.NoError(t, Info(nil).Log("msg", "x", "error", errors.New("y")))
}
