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

package log

import (
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/jimmielin/PKU-IAAA/definitions"
	"github.com/jimmielin/PKU-IAAA/log/color"
)

var (
	mu sync.Mutex

	// Logger is used for all messages that are printed to stdout
	Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
)

// Options describes the output format of the global logger.
type Options struct {
	Level      int
	JSON       bool
	Color      bool
	ColorTheme string
	Instance   string
}

// SetupLogging initializes the global "Logger" object writing to stdout.
func SetupLogging(opts Options) {
	SetupLoggingTo(os.Stdout, opts)
}

// SetupLoggingTo initializes the global "Logger" object writing to out.
func SetupLoggingTo(out io.Writer, opts Options) {
	mu.Lock()

	defer mu.Unlock()

	Logger = NewLogger(out, opts)
}

// NewLogger builds a logger without touching the global one.
func NewLogger(out io.Writer, opts Options) *slog.Logger {
	if opts.Level == definitions.LogLevelNone {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	handlerOpts := &slog.HandlerOptions{Level: toSlogLevel(opts.Level)}

	var handler slog.Handler

	switch {
	case opts.JSON:
		handler = slog.NewJSONHandler(out, handlerOpts)
	case opts.Color:
		handler = color.NewLineWrapper(out, handlerOpts, color.ThemeColorMap(opts.ColorTheme))
	default:
		handler = slog.NewTextHandler(out, handlerOpts)
	}

	instance := opts.Instance
	if instance == "" {
		instance = definitions.InstanceName
	}

	return slog.New(handler).With(definitions.LogKeyInstance, instance)
}

func toSlogLevel(configLogLevel int) slog.Level {
	switch configLogLevel {
	case definitions.LogLevelError:
		return slog.LevelError
	case definitions.LogLevelWarn:
		return slog.LevelWarn
	case definitions.LogLevelDebug:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}
