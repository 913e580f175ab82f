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

package stats

import (
	"time"

	"github.com/jimmielin/PKU-IAAA/definitions"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// VerificationsTotal counts finished verifications by strategy and resulting error code.
	VerificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "iaaa_verifications_total",
			Help: "Number of credential verifications by method and result.",
		},
		[]string{"method", "result"})

	// VerificationDurationSeconds observes the wall time of a verification including the HTTP round trip.
	VerificationDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "iaaa_verification_duration_seconds",
			Help:    "Duration of credential verifications.",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"method"})

	// TransportErrorsTotal counts requests that failed before a reply was read.
	TransportErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "iaaa_transport_errors_total",
			Help: "Number of verification requests that failed in the transport layer.",
		},
		[]string{"method"})
)

// ObserveVerification records one finished verification.
func ObserveVerification(method definitions.Method, code definitions.ErrorCode, took time.Duration) {
	strategy := method.Strategy().String()

	VerificationsTotal.WithLabelValues(strategy, code.String()).Inc()
	VerificationDurationSeconds.WithLabelValues(strategy).Observe(took.Seconds())
}

// ObserveTransportError records a request that never produced a reply.
func ObserveTransportError(method definitions.Method) {
	TransportErrorsTotal.WithLabelValues(method.Strategy().String()).Inc()
}
