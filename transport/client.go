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
	"crypto/tls"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jimmielin/PKU-IAAA/errors"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"go.opentelemetry.io/otel/trace"
)

// Doer issues a single HTTP request. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// ProxyCredentials are sent verbatim as Basic proxy authorization. Empty values are not filtered.
type ProxyCredentials struct {
	Username string
	Password string
}

// Options describes one client. A zero Options yields a direct client with verification enabled.
type Options struct {
	// ProxyAddress is host:port or a URL. Empty means no proxy.
	ProxyAddress string

	// ProxyAuth is attached to the proxy URL when ProxyAddress is set.
	ProxyAuth *ProxyCredentials

	// InsecureSkipVerify disables certificate-chain verification. Unsafe.
	InsecureSkipVerify bool

	// Timeout bounds the whole exchange including redirects. Zero disables the timeout.
	Timeout time.Duration

	// MaxRedirects caps followed redirects. Zero keeps net/http's default of 10.
	MaxRedirects int

	// Tracing wraps the transport with otelhttp client spans.
	Tracing bool
}

// ProxyURL builds the proxy URL for address with optional credentials.
func ProxyURL(address string, creds *ProxyCredentials) (*url.URL, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, errors.ErrNoProxyAddress
	}

	if !strings.Contains(address, "://") {
		address = "http://" + address
	}

	proxyURL, err := url.Parse(address)
	if err != nil || proxyURL.Host == "" {
		return nil, fmt.Errorf("%w: %q", errors.ErrInvalidProxyURL, address)
	}

	if creds != nil {
		proxyURL.User = url.UserPassword(creds.Username, creds.Password)
	}

	return proxyURL, nil
}

// NewHTTPClient creates a client for exactly one verification. Keep-alives are disabled so the
// connection is released together with the response body.
func NewHTTPClient(opts Options) (*http.Client, error) {
	baseTransport := &http.Transport{
		Proxy:             nil,
		DisableKeepAlives: true,
		ForceAttemptHTTP2: true,
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: opts.InsecureSkipVerify, //nolint:gosec // explicit, loudly named opt-in
		},
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: opts.Timeout,
	}

	if opts.ProxyAddress != "" {
		proxyURL, err := ProxyURL(opts.ProxyAddress, opts.ProxyAuth)
		if err != nil {
			return nil, err
		}

		baseTransport.Proxy = http.ProxyURL(proxyURL)
	}

	var transport http.RoundTripper = baseTransport
	if opts.Tracing {
		transport = otelhttp.NewTransport(
			baseTransport,
			otelhttp.WithSpanOptions(trace.WithAttributes(semconv.PeerService("iaaa"))),
		)
	}

	httpClient := &http.Client{
		Timeout:   opts.Timeout,
		Transport: transport,
	}

	if opts.MaxRedirects > 0 {
		maxRedirects := opts.MaxRedirects

		httpClient.CheckRedirect = func(_ *http.Request, via []*http.Request) error {
			if len(via) >= maxRedirects {
				return fmt.Errorf("%w (%d)", errors.ErrTooManyRedirect, maxRedirects)
			}

			return nil
		}
	}

	return httpClient, nil
}
