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
	"net/http"

	"github.com/jimmielin/PKU-IAAA/errors"
	"github.com/jimmielin/PKU-IAAA/monitoring/trace"
	"github.com/jimmielin/PKU-IAAA/transport"

	"go.opentelemetry.io/otel/attribute"
)

// verifyProxy fetches the probe page through the proxy using the account as proxy credentials.
// Any reply without the 407 marker counts as accepted credentials, whatever its status.
func (v *Verifier) verifyProxy(ctx context.Context, guid string, req VerificationRequest) Result {
	probeURL := v.cfg.GetProbeURL()

	ctx, sp := v.tracer.StartClient(ctx, "iaaa.proxy", attribute.String("url", probeURL))
	defer sp.End()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, probeURL, nil)
	if err != nil {
		trace.RecordError(sp, err)

		return networkError(errors.ErrTransport.WithGUID(guid).WithDetail(err.Error()))
	}

	capture, err := v.send(guid, req, v.transportOptions(true, req), httpReq)
	if err != nil {
		trace.RecordError(sp, err)

		return networkError(err)
	}

	sp.SetAttributes(attribute.Int("http.status_code", capture.StatusCode))

	if transport.ContainsProxyAuthRequired(capture.Raw) {
		return authFailed(errors.ErrProxyAuthRequired.WithGUID(guid).WithDetail(capture.Status))
	}

	return success("")
}
