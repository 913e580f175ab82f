package stats

import (
	"testing"
	"time"

	"github.com/jimmielin/PKU-IAAA/definitions"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveVerification(t *testing.T) {
	counter := VerificationsTotal.WithLabelValues("iaaa", definitions.ErrorAuthFailedName)
	before := testutil.ToFloat64(counter)

	// Unknown methods are reported under the direct strategy.
	ObserveVerification(definitions.Method("whatever"), definitions.ErrorAuthFailed, 20*time.Millisecond)

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
	assert.Positive(t, testutil.CollectAndCount(VerificationDurationSeconds))
}

func TestObserveTransportError(t *testing.T) {
	counter := TransportErrorsTotal.WithLabelValues("proxy")
	before := testutil.ToFloat64(counter)

	ObserveTransportError(definitions.MethodProxy)

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}
