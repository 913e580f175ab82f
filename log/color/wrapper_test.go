package color

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineWrapper_ColorsWholeLine(t *testing.T) {
	buf := &bytes.Buffer{}
	colors := ThemeColorMap("light")
	logger := slog.New(NewLineWrapper(buf, &slog.HandlerOptions{Level: slog.LevelDebug}, colors))

	logger.With("instance", "test").Warn("careful", "k", "v")

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, colors[slog.LevelWarn]))
	assert.True(t, strings.HasSuffix(out, ansiReset+"\n"))
	assert.Contains(t, out, "instance=test")
	assert.Contains(t, out, "msg=careful")
}

func TestLineWrapper_RespectsLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(NewLineWrapper(buf, &slog.HandlerOptions{Level: slog.LevelError}, nil))

	logger.Info("dropped")

	assert.Empty(t, buf.String())
}

func TestThemeColorMap_Dark(t *testing.T) {
	assert.NotEqual(t, ThemeColorMap("dark")[slog.LevelInfo], ThemeColorMap("")[slog.LevelInfo])
	assert.Equal(t, ThemeColorMap("DARK "), ThemeColorMap("dark"))
}
