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

package definitions

import "strconv"

// ErrorCode is the numeric outcome of a verification. The set of values is closed.
type ErrorCode uint8

// Method selects the authentication strategy used by a verification.
type Method string

func (e ErrorCode) String() string {
	switch e {
	case ErrorNone:
		return ErrorNoneName
	case ErrorAuthFailed:
		return ErrorAuthFailedName
	case ErrorNetwork:
		return ErrorNetworkName
	default:
		return "unknown(" + strconv.Itoa(int(e)) + ")"
	}
}

// IsValid reports whether e is one of the codes a verification can produce.
func (e ErrorCode) IsValid() bool {
	switch e {
	case ErrorNone, ErrorAuthFailed, ErrorNetwork:
		return true
	default:
		return false
	}
}

func (m Method) String() string {
	return string(m)
}

// IsProxy reports whether m routes to the proxy strategy. Every other value, including
// unknown ones, routes to the direct IAAA login.
func (m Method) IsProxy() bool {
	return m == MethodProxy
}

// Strategy returns the canonical strategy name used for metrics and logging.
func (m Method) Strategy() Method {
	if m.IsProxy() {
		return MethodProxy
	}

	return MethodIAAA
}
