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
	"bytes"
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/jimmielin/PKU-IAAA/definitions"
	"github.com/jimmielin/PKU-IAAA/errors"
	"github.com/jimmielin/PKU-IAAA/monitoring/trace"
	"github.com/jimmielin/PKU-IAAA/transport"

	jsoniter "github.com/json-iterator/go"
	"go.opentelemetry.io/otel/attribute"
)

var utf8BOM = []byte("\xef\xbb\xbf")

// loginForm builds the urlencoded body of the IAAA login.
func (v *Verifier) loginForm(req VerificationRequest) url.Values {
	form := url.Values{}

	form.Set(definitions.FormFieldAppID, v.cfg.GetAppID())
	form.Set(definitions.FormFieldUserName, req.Username)
	form.Set(definitions.FormFieldPassword, req.Password)
	form.Set(definitions.FormFieldRandCode, v.cfg.GetRandCode())
	form.Set(definitions.FormFieldSMSCode, v.cfg.GetSMSCode())
	form.Set(definitions.FormFieldRedirectURL, v.cfg.GetRedirectURL())

	return form
}

// verifyDirect posts the login form to IAAA. Off the campus network the request goes through the
// proxy with the same account, so the proxy may refuse it before IAAA sees it.
func (v *Verifier) verifyDirect(ctx context.Context, guid string, req VerificationRequest) Result {
	loginURL := v.cfg.GetLoginURL()
	viaProxy := !req.OnNetwork

	ctx, sp := v.tracer.StartClient(ctx, "iaaa.login",
		attribute.String("url", loginURL),
		attribute.Bool("on_network", req.OnNetwork),
	)
	defer sp.End()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, loginURL, strings.NewReader(v.loginForm(req).Encode()))
	if err != nil {
		trace.RecordError(sp, err)

		return networkError(errors.ErrTransport.WithGUID(guid).WithDetail(err.Error()))
	}

	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	opts := v.transportOptions(viaProxy, req)
	opts.InsecureSkipVerify = v.cfg.InsecureSkipTLSVerifyUnsafe()

	capture, err := v.send(guid, req, opts, httpReq)
	if err != nil {
		trace.RecordError(sp, err)

		if viaProxy && transport.IsProxyAuthError(err) {
			return authFailed(errors.ErrProxyAuthRequired.WithGUID(guid).WithDetail(err.Error()))
		}

		return networkError(err)
	}

	sp.SetAttributes(attribute.Int("http.status_code", capture.StatusCode))

	if viaProxy && transport.ContainsProxyAuthRequired(statusAndBody(capture)) {
		return authFailed(errors.ErrProxyAuthRequired.WithGUID(guid).WithDetail(capture.Status))
	}

	result := parseLoginReply(guid, capture)
	if result.Err != nil {
		trace.RecordError(sp, result.Err)
	}

	return result
}

// statusAndBody is the part of a reply a 407 marker is searched in for the direct login.
func statusAndBody(capture *transport.Capture) []byte {
	var buf bytes.Buffer

	buf.WriteString(capture.Status)
	buf.WriteString("\n")
	buf.Write(capture.Body)

	return buf.Bytes()
}

// parseLoginReply maps the IAAA JSON reply to a Result. Only the byte-exact wrong-password message is
// an authentication failure; every other rejection and every unreadable reply is a network error.
func parseLoginReply(guid string, capture *transport.Capture) Result {
	body, err := capture.DecodedBody()
	if err != nil {
		return networkError(errors.ErrMalformedReply.WithGUID(guid).WithDetail(err.Error()))
	}

	body = bytes.TrimPrefix(bytes.TrimSpace(body), utf8BOM)

	if !jsoniter.Valid(body) {
		return networkError(errors.ErrMalformedReply.WithGUID(guid).WithDetail("reply is not JSON"))
	}

	successField := jsoniter.Get(body, "success")
	if successField.ValueType() != jsoniter.BoolValue {
		return networkError(errors.ErrMalformedReply.WithGUID(guid).WithDetail("reply has no boolean success field"))
	}

	if successField.ToBool() {
		return success(PortalToken(jsoniter.Get(body, "token").ToString()))
	}

	msgField := jsoniter.Get(body, "errors", "msg")
	if msgField.ValueType() != jsoniter.StringValue {
		return networkError(errors.ErrLoginRejected.WithGUID(guid).WithDetail("rejected without message"))
	}

	msg := msgField.ToString()
	if msg == definitions.WrongPasswordMsg {
		return authFailed(errors.ErrWrongPassword.WithGUID(guid))
	}

	return networkError(errors.ErrLoginRejected.WithGUID(guid).WithDetail(msg))
}
