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
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jimmielin/PKU-IAAA/config"
	"github.com/jimmielin/PKU-IAAA/definitions"
	"github.com/jimmielin/PKU-IAAA/errors"
	"github.com/jimmielin/PKU-IAAA/log"
	"github.com/jimmielin/PKU-IAAA/log/level"
	"github.com/jimmielin/PKU-IAAA/monitoring/trace"
	"github.com/jimmielin/PKU-IAAA/stats"
	"github.com/jimmielin/PKU-IAAA/transport"

	"github.com/segmentio/ksuid"
	"go.opentelemetry.io/otel/attribute"
)

// DoerFactory builds the HTTP client for one verification.
type DoerFactory func(opts transport.Options) (transport.Doer, error)

// DefaultDoerFactory returns a fresh *http.Client per verification.
func DefaultDoerFactory(opts transport.Options) (transport.Doer, error) {
	return transport.NewHTTPClient(opts)
}

// Verifier is the credential verifier. The zero value is not usable; call New.
type Verifier struct {
	cfg     *config.VerifierSection
	tracing bool
	newDoer DoerFactory
	tracer  trace.Tracer
	logger  *slog.Logger

	// lastError is written by every Check without synchronization.
	lastError definitions.ErrorCode
}

// Option customizes a Verifier.
type Option func(*Verifier)

// WithDoerFactory replaces the HTTP client construction, e.g. for tests.
func WithDoerFactory(factory DoerFactory) Option {
	return func(v *Verifier) {
		if factory != nil {
			v.newDoer = factory
		}
	}
}

// WithTracing enables otelhttp client spans on the outgoing request.
func WithTracing(enabled bool) Option {
	return func(v *Verifier) {
		v.tracing = enabled
	}
}

// WithLogger sets the logger used for verification log lines. Without it the global log.Logger
// is used at the time of each call.
func WithLogger(logger *slog.Logger) Option {
	return func(v *Verifier) {
		v.logger = logger
	}
}

// New returns a Verifier for cfg. A nil cfg selects the institution's defaults.
func New(cfg *config.VerifierSection, opts ...Option) *Verifier {
	if cfg == nil {
		cfg = config.DefaultVerifierSection()
	}

	v := &Verifier{
		cfg:     cfg,
		newDoer: DefaultDoerFactory,
		tracer:  trace.New(definitions.ServiceName + "/verifier"),
	}

	for _, opt := range opts {
		opt(v)
	}

	if cfg.InsecureSkipTLSVerifyUnsafe() {
		level.Warn(v.getLogger()).Log(
			definitions.LogKeyMsg, "TLS certificate verification is disabled for the IAAA login (iaaa.insecure_skip_tls_verify=true)",
			definitions.LogKeyURL, cfg.GetLoginURL(),
		)
	}

	return v
}

// NewFromConfig builds a Verifier from a loaded configuration file. The log section is not applied
// here; call log.SetupLogging(file.LogOptions()) first or use Module.
func NewFromConfig(file *config.File, opts ...Option) *Verifier {
	return New(file.GetVerifier(), append([]Option{WithTracing(file.IsTracingEnabled())}, opts...)...)
}

func (v *Verifier) getLogger() *slog.Logger {
	if v.logger != nil {
		return v.logger
	}

	return log.Logger
}

// Verify checks username and password with method. "proxy" selects the proxy strategy; any other
// value selects the direct IAAA login using the configured network location. Callers that want
// the historical default pass definitions.MethodDefault.
//
// The outcome code is stored on the instance and can be read with Error.
func (v *Verifier) Verify(username, password string, method definitions.Method) bool {
	return v.Check(context.Background(), VerificationRequest{
		Username:  username,
		Password:  password,
		Method:    method,
		OnNetwork: v.cfg.IsOnNetwork(),
	}).OK
}

// Error returns the code stored by the most recently completed verification on this instance.
// Reading has no side effects. Not safe for concurrent use with Verify or Check.
func (v *Verifier) Error() definitions.ErrorCode {
	return v.lastError
}

// Check runs one verification and returns its outcome. It also stores the code for Error.
func (v *Verifier) Check(ctx context.Context, req VerificationRequest) (result Result) {
	if ctx == nil {
		ctx = context.Background()
	}

	guid := ksuid.New().String()
	start := time.Now()

	ctx, sp := v.tracer.Start(ctx, "iaaa.verify",
		attribute.String("auth_method", req.Method.Strategy().String()),
		attribute.String("session", guid),
	)

	defer func() {
		if r := recover(); r != nil {
			result = networkError(errors.ErrMalformedReply.WithGUID(guid).WithDetail(fmt.Sprintf("recovered: %v", r)))
		}

		result.GUID = guid
		v.lastError = result.Code

		sp.SetAttributes(attribute.String("result", result.Code.String()))
		trace.RecordError(sp, result.Err)
		sp.End()

		v.finish(req, result, time.Since(start))
	}()

	if req.Method.IsProxy() {
		return v.verifyProxy(ctx, guid, req)
	}

	return v.verifyDirect(ctx, guid, req)
}

func (v *Verifier) finish(req VerificationRequest, result Result, took time.Duration) {
	stats.ObserveVerification(req.Method, result.Code, took)

	keyvals := []any{
		definitions.LogKeyGUID, result.GUID,
		definitions.LogKeyMsg, "Verification finished",
		definitions.LogKeyAuthMethod, req.Method.Strategy().String(),
		definitions.LogKeyUsername, req.Username,
		definitions.LogKeyResult, result.Code.String(),
		definitions.LogKeyLatency, took.String(),
	}

	if !req.Method.IsProxy() {
		keyvals = append(keyvals, definitions.LogKeyOnNetwork, req.OnNetwork)
	}

	if result.Err != nil {
		keyvals = append(keyvals, definitions.LogKeyError, result.Err)

		var detailed *errors.DetailedError
		if stderrors.As(result.Err, &detailed) && detailed.GetDetails() != "" {
			keyvals = append(keyvals, definitions.LogKeyErrorDetails, detailed.GetDetails())
		}
	}

	if result.Code == definitions.ErrorNetwork {
		level.Warn(v.getLogger()).Log(keyvals...)

		return
	}

	level.Info(v.getLogger()).Log(keyvals...)
}

func (v *Verifier) transportOptions(viaProxy bool, req VerificationRequest) transport.Options {
	opts := transport.Options{
		Timeout:      v.cfg.GetTimeout(),
		MaxRedirects: v.cfg.GetMaxRedirects(),
		Tracing:      v.tracing,
	}

	if viaProxy {
		opts.ProxyAddress = v.cfg.GetProxyAddress()
		opts.ProxyAuth = &transport.ProxyCredentials{Username: req.Username, Password: req.Password}
	}

	return opts
}

func (v *Verifier) setHeaders(httpReq *http.Request) {
	if ua := v.cfg.GetUserAgent(); ua != "" {
		httpReq.Header.Set("User-Agent", ua)
	}
}

// send builds the client, issues httpReq and reads the reply. Transport failures are counted.
func (v *Verifier) send(guid string, req VerificationRequest, opts transport.Options, httpReq *http.Request) (*transport.Capture, error) {
	doer, err := v.newDoer(opts)
	if err != nil {
		return nil, err
	}

	v.setHeaders(httpReq)

	capture, err := transport.Do(doer, httpReq)
	if err != nil {
		stats.ObserveTransportError(req.Method)

		return nil, err
	}

	level.Debug(v.getLogger()).Log(
		definitions.LogKeyGUID, guid,
		definitions.LogKeyMsg, "Reply received",
		definitions.LogKeyURL, httpReq.URL.String(),
		definitions.LogKeyStatus, capture.Status,
	)

	return capture, nil
}
