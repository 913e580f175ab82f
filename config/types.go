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

package config

import (
	"fmt"
	"strings"

	"github.com/jimmielin/PKU-IAAA/definitions"
	"github.com/jimmielin/PKU-IAAA/errors"
)

// Verbosity is a type that represents the verbosity details.
type Verbosity struct {
	// verboseLevel holds the level of detail for logging
	verboseLevel int

	// name is the name of the verbosity level
	name string
}

func (v *Verbosity) String() string {
	return v.name
}

// Set updates the verbosity level and name based on the provided value.
// Valid values are "none", "error", "warn", "info", and "debug".
func (v *Verbosity) Set(value string) error {
	value = strings.ToLower(strings.TrimSpace(value))

	switch value {
	case "none", "":
		v.verboseLevel = definitions.LogLevelNone
	case "error":
		v.verboseLevel = definitions.LogLevelError
	case "warn":
		v.verboseLevel = definitions.LogLevelWarn
	case "info":
		v.verboseLevel = definitions.LogLevelInfo
	case "debug":
		v.verboseLevel = definitions.LogLevelDebug
	default:
		return fmt.Errorf("%w: <%s>", errors.ErrWrongVerboseLevel, value)
	}

	v.name = value

	return nil
}

// Type returns the type of the Verbosity struct.
func (v *Verbosity) Type() string {
	return "Verbosity"
}

// Level returns the verbosity level of the Verbosity instance.
func (v *Verbosity) Level() int {
	return v.verboseLevel
}

// Get returns the name of the log level as string.
func (v *Verbosity) Get() string {
	return v.name
}
