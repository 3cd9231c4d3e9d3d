// Copyright (C) 2022 CYBERCRYPT
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package log

import (
	"github.com/gofrs/uuid"
	"github.com/rs/zerolog"
)

// WithRunID adds a run ID field to the log.
func WithRunID(l *zerolog.Logger, id uuid.UUID) {
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Stringer("run", id)
	})
}

// WithMode adds a derivation mode field to the log.
func WithMode(l *zerolog.Logger, mode string) {
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("mode", mode)
	})
}

// WithVectorFile adds a vector file field to the log.
func WithVectorFile(l *zerolog.Logger, path string) {
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("file", path)
	})
}
