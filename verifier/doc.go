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

// Package verifier checks Peking University accounts against the IAAA single-sign-on service.
//
// Two strategies exist:
//
//   - proxy: a GET through the institutional proxy with the account as proxy credentials. The
//     proxy checks the credentials while establishing the tunnel, so a "407 Proxy Authentication
//     Required" in the captured reply is the only negative signal.
//   - iaaa: a form POST to the IAAA login endpoint whose JSON reply names the failure reason.
//
// Every outcome is folded into one of three codes: definitions.ErrorNone,
// definitions.ErrorAuthFailed or definitions.ErrorNetwork. Verify never returns an error and
// never panics into the caller.
//
// Known limitations of the remote side:
//
//   - The proxy is not supported from the wired 162.105.* ranges; results there are undefined.
//   - Alumni accounts that are no longer student or faculty accounts are rejected by both
//     strategies even with correct credentials.
//   - The direct login posts stub values for the captcha and SMS fields, so IAAA may refuse
//     it whenever it decides to challenge the account.
//
// The legacy accessor Error reports the code of the last finished call on the instance. It is
// not synchronized: callers sharing a Verifier across goroutines must serialize Verify and Error
// themselves, or use Check which returns the outcome directly.
package verifier
