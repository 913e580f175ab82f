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

package verifier

import (
	"log/slog"

	"github.com/jimmielin/PKU-IAAA/config"
	"github.com/jimmielin/PKU-IAAA/log"

	"go.uber.org/fx"
)

// Module provides a *Verifier built from the *config.File supplied by the embedding application.
// The log section of that file is applied to the global logger before the Verifier is built.
var Module = fx.Module("verifier",
	fx.Provide(
		NewLogger,
		newModuleVerifier,
	),
)

// NewLogger applies the log section of file to the global log.Logger and returns it.
func NewLogger(file *config.File) *slog.Logger {
	log.SetupLogging(file.LogOptions())

	return log.Logger
}

func newModuleVerifier(file *config.File, logger *slog.Logger) *Verifier {
	return NewFromConfig(file, WithLogger(logger))
}
