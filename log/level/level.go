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

// Package level offers the keyvals logging style on top of log/slog:
//
//	level.Info(log.Logger).Log(definitions.LogKeyMsg, "verified", definitions.LogKeyUsername, user)
//
// A "msg" key with a string value becomes the record message. Other pairs become attributes.
package level

import (
	"context"
	"log/slog"
	"reflect"
)

// Logger accepts alternating key/value pairs.
type Logger interface {
	Log(keyvals ...any) error
}

type leveled struct {
	l   *slog.Logger
	lvl slog.Level
}

func newLeveled(l *slog.Logger, lvl slog.Level) Logger {
	return &leveled{l: l, lvl: lvl}
}

// Debug returns a Logger that logs at slog.LevelDebug.
func Debug(l *slog.Logger) Logger { return newLeveled(l, slog.LevelDebug) }

// Info returns a Logger that logs at slog.LevelInfo.
func Info(l *slog.Logger) Logger { return newLeveled(l, slog.LevelInfo) }

// Warn returns a Logger that logs at slog.LevelWarn.
func Warn(l *slog.Logger) Logger { return newLeveled(l, slog.LevelWarn) }

// Error returns a Logger that logs at slog.LevelError.
func Error(l *slog.Logger) Logger { return newLeveled(l, slog.LevelError) }

func (s *leveled) Log(keyvals ...any) error {
	if s.l == nil || !s.l.Enabled(context.Background(), s.lvl) {
		return nil
	}

	msg := ""
	attrs := make([]slog.Attr, 0, len(keyvals)/2)

	for i := 0; i+1 < len(keyvals); i += 2 {
		key, ok := keyvals[i].(string)
		if !ok {
			continue
		}

		value := keyvals[i+1]

		if text, isString := value.(string); isString {
			if key == "msg" {
				msg = text

				continue
			}

			attrs = append(attrs, slog.String(key, text))

			continue
		}

		if isNil(value) {
			attrs = append(attrs, slog.String(key, "<nil>"))

			continue
		}

		attrs = append(attrs, slog.Any(key, value))
	}

	if msg == "" {
		msg = defaultMessage(s.lvl)
	}

	s.l.LogAttrs(context.Background(), s.lvl, msg, attrs...)

	return nil
}

// isNil also catches typed nils, which make slog.Any panic when formatted.
func isNil(v any) bool {
	if v == nil {
		return true
	}

	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Map, reflect.Pointer, reflect.Interface, reflect.Slice:
		return rv.IsNil()
	default:
		return false
	}
}

func defaultMessage(lvl slog.Level) string {
	switch {
	case lvl >= slog.LevelError:
		return "error"
	case lvl >= slog.LevelWarn:
		return "warn"
	case lvl >= slog.LevelInfo:
		return "info"
	default:
		return "debug"
	}
}
