// Copyright (C) 2026 Christian Rößner
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.

// Package color provides a slog.Handler that renders with slog.TextHandler and colors whole lines.
package color

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
)

const ansiReset = "\x1b[0m"

// ThemeColorMap returns a level->ANSI-color map. "dark" selects bright colors, anything else the standard ones.
func ThemeColorMap(theme string) map[slog.Level]string {
	if strings.EqualFold(strings.TrimSpace(theme), "dark") {
		return map[slog.Level]string{
			slog.LevelDebug: "\x1b[96m",
			slog.LevelInfo:  "\x1b[92m",
			slog.LevelWarn:  "\x1b[93m",
			slog.LevelError: "\x1b[91m",
		}
	}

	return map[slog.Level]string{
		slog.LevelDebug: "\x1b[36m",
		slog.LevelInfo:  "\x1b[32m",
		slog.LevelWarn:  "\x1b[33m",
		slog.LevelError: "\x1b[31m",
	}
}

// LineWrapper delegates formatting to slog.TextHandler and wraps each line in a level color.
type LineWrapper struct {
	mu     *sync.Mutex
	out    io.Writer
	opts   *slog.HandlerOptions
	attrs  []slog.Attr
	groups []string
	colors map[slog.Level]string
}

// NewLineWrapper creates a LineWrapper. A nil colors map selects the light theme.
func NewLineWrapper(out io.Writer, opts *slog.HandlerOptions, colors map[slog.Level]string) *LineWrapper {
	if colors == nil {
		colors = ThemeColorMap("")
	}

	if opts == nil {
		opts = &slog.HandlerOptions{}
	}

	return &LineWrapper{mu: &sync.Mutex{}, out: out, opts: opts, colors: colors}
}

func (h *LineWrapper) Enabled(_ context.Context, lvl slog.Level) bool {
	if h.opts.Level == nil {
		return lvl >= slog.LevelInfo
	}

	return lvl >= h.opts.Level.Level()
}

func (h *LineWrapper) Handle(ctx context.Context, r slog.Record) error {
	var buf bytes.Buffer

	var inner slog.Handler = slog.NewTextHandler(&buf, h.opts)

	for _, g := range h.groups {
		inner = inner.WithGroup(g)
	}

	if len(h.attrs) > 0 {
		inner = inner.WithAttrs(h.attrs)
	}

	if err := inner.Handle(ctx, r); err != nil {
		return err
	}

	line := bytes.TrimSuffix(buf.Bytes(), []byte{'\n'})

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := io.WriteString(h.out, h.pickColor(r.Level)+string(line)+ansiReset+"\n")

	return err
}

func (h *LineWrapper) WithAttrs(attrs []slog.Attr) slog.Handler {
	cp := *h
	cp.attrs = append(append([]slog.Attr(nil), h.attrs...), attrs...)

	return &cp
}

func (h *LineWrapper) WithGroup(name string) slog.Handler {
	cp := *h
	cp.groups = append(append([]string(nil), h.groups...), name)

	return &cp
}

func (h *LineWrapper) pickColor(lvl slog.Level) string {
	if c, ok := h.colors[lvl]; ok {
		return c
	}

	switch {
	case lvl >= slog.LevelError:
		return h.colors[slog.LevelError]
	case lvl >= slog.LevelWarn:
		return h.colors[slog.LevelWarn]
	case lvl >= slog.LevelInfo:
		return h.colors[slog.LevelInfo]
	default:
		return h.colors[slog.LevelDebug]
	}
}

var _ slog.Handler = (*LineWrapper)(nil)
