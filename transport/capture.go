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

package transport

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/jimmielin/PKU-IAAA/definitions"
	"github.com/jimmielin/PKU-IAAA/errors"

	"golang.org/x/net/html/charset"
)

// maxBodySize bounds how much of a reply is kept. IAAA replies are a few hundred bytes.
const maxBodySize = 1 << 20

var (
	proxyAuthMarker  = regexp.MustCompile(`(?is)` + regexp.QuoteMeta(definitions.ProxyAuthRequiredMarker))
	proxyAuthErrText = regexp.MustCompile(definitions.ProxyAuthRequiredErrorPattern)
)

// Capture is a fully read reply. Raw holds the status line, the headers and the body in wire order.
type Capture struct {
	StatusCode int
	Status     string
	Header     http.Header
	Body       []byte
	Raw        []byte
}

// Do sends req, reads the whole reply and closes the body on every path. Failures before a
// reply is available are returned as *errors.TransportError.
func Do(doer Doer, req *http.Request) (*Capture, error) {
	resp, err := doer.Do(req)
	if err != nil {
		return nil, NewTransportError(req, err)
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, NewTransportError(req, err)
	}

	var raw bytes.Buffer

	fmt.Fprintf(&raw, "%s %s\r\n", resp.Proto, resp.Status)
	_ = resp.Header.Write(&raw)
	raw.WriteString("\r\n")
	raw.Write(body)

	return &Capture{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Header:     resp.Header,
		Body:       body,
		Raw:        raw.Bytes(),
	}, nil
}

// NewTransportError converts a client failure into a *errors.TransportError keeping the full text.
func NewTransportError(req *http.Request, err error) *errors.TransportError {
	var te *errors.TransportError
	if stderrors.As(err, &te) {
		return te
	}

	transportErr := &errors.TransportError{Text: err.Error(), Err: err}

	if req != nil {
		transportErr.Op = req.Method
		transportErr.URL = req.URL.String()
	}

	var urlErr *url.Error
	if stderrors.As(err, &urlErr) && urlErr.Err != nil {
		transportErr.Text = urlErr.Err.Error()
	}

	return transportErr
}

// ContainsProxyAuthRequired reports whether text carries the proxy's 407 status, ignoring case.
// The marker must not be broken across lines.
func ContainsProxyAuthRequired(text []byte) bool {
	return proxyAuthMarker.Match(text)
}

// IsProxyAuthError reports whether a transport failure was caused by a proxy 407, e.g. a refused CONNECT.
func IsProxyAuthError(err error) bool {
	if err == nil {
		return false
	}

	var te *errors.TransportError
	if stderrors.As(err, &te) {
		return proxyAuthErrText.MatchString(te.Text)
	}

	return proxyAuthErrText.MatchString(err.Error())
}

// DecodedBody returns the body as UTF-8. A non UTF-8 charset declared in Content-Type (GBK,
// GB18030, ...) is converted; everything else is returned unchanged.
func (c *Capture) DecodedBody() ([]byte, error) {
	if c == nil {
		return nil, nil
	}

	_, params, err := mime.ParseMediaType(c.Header.Get("Content-Type"))
	if err != nil {
		return c.Body, nil
	}

	label := strings.ToLower(strings.TrimSpace(params["charset"]))
	if label == "" || label == "utf-8" || label == "utf8" {
		return c.Body, nil
	}

	enc, _ := charset.Lookup(label)
	if enc == nil {
		return c.Body, nil
	}

	return enc.NewDecoder().Bytes(c.Body)
}
