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

// Verification results. The numeric values are part of the public contract.
const (
	// ErrorNone denotes a successful verification.
	ErrorNone ErrorCode = 0

	// ErrorAuthFailed denotes credentials that were definitively rejected.
	ErrorAuthFailed ErrorCode = 1

	// ErrorNetwork covers everything else: connectivity faults, protocol anomalies,
	// unrecognized rejection reasons and malformed replies.
	ErrorNetwork ErrorCode = 9
)

const (
	ErrorNoneName       = "none"
	ErrorAuthFailedName = "auth_failed"
	ErrorNetworkName    = "network_error"
)

// Authentication methods.
const (
	// MethodProxy authenticates as a side effect of the institutional proxy's credential check.
	MethodProxy Method = "proxy"

	// MethodIAAA posts the credentials to the IAAA web login.
	MethodIAAA Method = "iaaa"

	// MethodDefault is used when a caller does not pick a method.
	MethodDefault = MethodProxy
)

// Wire contract of the institution. These are external-system contracts and must match byte for byte.
const (
	// ProxyAddress is the authenticating proxy (host:port).
	ProxyAddress = "proxy.pku.edu.cn:8080"

	// ProbeURL is a known address that does not resolve outside the institution.
	ProbeURL = "http://elective.pku.edu.cn"

	// LoginURL is the IAAA OAuth login endpoint. Its reply is JSON.
	LoginURL = "https://iaaa.pku.edu.cn/iaaa/oauthlogin.do"

	// AppID identifies the portal as the relying application.
	AppID = "portal"

	// RedirectURL is the portal SSO target handed to IAAA.
	RedirectURL = "http://portal.pku.edu.cn/portal2013/login.jsp/../ssoLogin.do"

	// RandCodeStub is the placeholder for the captcha field. The flow never solves the captcha.
	RandCodeStub = "验证码"

	// SMSCodeStub is the placeholder for the SMS challenge field.
	SMSCodeStub = "短信验证码"

	// WrongPasswordMsg is the errors.msg value IAAA returns for a bad password.
	WrongPasswordMsg = "密码错误"

	// ProxyAuthRequiredMarker is searched case-insensitively in captured replies.
	ProxyAuthRequiredMarker = "407 Proxy Authentication Required"

	// ProxyAuthRequiredErrorPattern matches transport error texts that carry a proxy 407.
	ProxyAuthRequiredErrorPattern = `(?is)HTTP code 407|Proxy Authentication Required`
)

// Login form field names.
const (
	FormFieldAppID       = "appid"
	FormFieldUserName    = "userName"
	FormFieldPassword    = "password"
	FormFieldRandCode    = "randCode"
	FormFieldSMSCode     = "smsCode"
	FormFieldRedirectURL = "redirUrl"
)

// Log keys.
const (
	// LogKeyGUID represents the verification identifier used in log entries.
	LogKeyGUID = "session"

	// LogKeyMsg represents the message content in log entries.
	LogKeyMsg = "msg"

	// LogKeyError represents error information in log entries.
	LogKeyError = "error"

	// LogKeyErrorDetails represents additional error details in log entries.
	LogKeyErrorDetails = "error_details"

	// LogKeyInstance represents instance identification in log entries.
	LogKeyInstance = "instance"

	// LogKeyUsername represents the username being verified.
	LogKeyUsername = "username"

	// LogKeyAuthMethod represents the strategy used for a verification.
	LogKeyAuthMethod = "auth_method"

	// LogKeyResult represents the resulting error code.
	LogKeyResult = "result"

	// LogKeyLatency represents the duration of a verification.
	LogKeyLatency = "latency"

	LogKeyOnNetwork = "on_network"
	LogKeyURL       = "url"
	LogKeyStatus    = "status"
)

// Log level.
const (
	// LogLevelNone is the iota constant representing no logs
	LogLevelNone = iota

	// LogLevelError is the iota constant for error logs
	LogLevelError

	// LogLevelWarn is the iota constant for warning logs
	LogLevelWarn

	// LogLevelInfo is the iota constant for info logs
	LogLevelInfo

	// LogLevelDebug is the iota constant for debug logs
	LogLevelDebug
)

// InstanceName is the default instance label attached to log lines.
const InstanceName = "pku-iaaa"

// ServiceName is the instrumentation scope used for tracing.
const ServiceName = "pku-iaaa"
