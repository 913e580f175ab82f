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
	"github.com/jimmielin/PKU-IAAA/definitions"
)

// PortalToken is the opaque session token returned by a successful direct login. Nothing in this
// package uses it; it is handed to the caller for a later portal profile request.
type PortalToken string

// VerificationRequest is one credential check.
type VerificationRequest struct {
	Username string
	Password string
	Method   definitions.Method

	// OnNetwork only matters for the direct login. False routes it through the proxy.
	OnNetwork bool
}

// Result is the outcome of one verification.
type Result struct {
	OK    bool
	Code  definitions.ErrorCode
	Token PortalToken

	// GUID identifies the verification in log lines.
	GUID string

	// Err explains a failed verification. It is diagnostic only and never returned by Verify.
	Err error
}

func success(token PortalToken) Result {
	return Result{OK: true, Code: definitions.ErrorNone, Token: token}
}

func authFailed(err error) Result {
	return Result{Code: definitions.ErrorAuthFailed, Err: err}
}

func networkError(err error) Result {
	return Result{Code: definitions.ErrorNetwork, Err: err}
}
