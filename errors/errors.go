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

package errors

import (
	"errors"
)

// DetailedError is a sentinel error that can carry a request GUID and a free text detail.
// The With* methods return a copy, so package level sentinels are never mutated.
type DetailedError struct {
	err     error
	guid    string
	details string
}

func (d *DetailedError) Error() string {
	return d.err.Error()
}

// Unwrap returns the sentinel so errors.Is matches copies made by the With* methods.
func (d *DetailedError) Unwrap() error {
	return d.err
}

func (d *DetailedError) WithGUID(guid string) *DetailedError {
	if d == nil {
		return nil
	}

	c := *d
	c.guid = guid

	return &c
}

func (d *DetailedError) WithDetail(detail string) *DetailedError {
	if d == nil {
		return nil
	}

	c := *d
	c.details = detail

	return &c
}

func (d *DetailedError) GetGUID() string {
	return d.guid
}

func (d *DetailedError) GetDetails() string {
	return d.details
}

func NewDetailedError(err string) *DetailedError {
	return &DetailedError{err: errors.New(err)}
}

// TransportError wraps a failure reported by the HTTP client before any reply was read.
// Text keeps the client's descriptive message for pattern matching.
type TransportError struct {
	Op   string
	URL  string
	Text string
	Err  error
}

func (t *TransportError) Error() string {
	return t.Op + " " + t.URL + ": " + t.Text
}

func (t *TransportError) Unwrap() error {
	return t.Err
}

// verifier.

var (
	ErrProxyAuthRequired = NewDetailedError("proxy_authentication_required")
	ErrWrongPassword     = NewDetailedError("wrong_password")
	ErrLoginRejected     = NewDetailedError("login_rejected")
	ErrMalformedReply    = NewDetailedError("malformed_reply")
	ErrTransport         = NewDetailedError("transport_error")
)

// transport.

var (
	ErrNoProxyAddress  = errors.New("no proxy address configured")
	ErrInvalidProxyURL = errors.New("invalid proxy address")
	ErrTooManyRedirect = errors.New("stopped after too many redirects")
)

// config.

var (
	ErrWrongVerboseLevel = errors.New("wrong verbose level")
	ErrConfigValidation  = errors.New("configuration validation failed")
)
