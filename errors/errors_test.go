package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetailedError_WithDetailDoesNotMutateSentinel(t *testing.T) {
	err := ErrMalformedReply.WithDetail("unexpected end of JSON input").WithGUID("abc")

	assert.Equal(t, "unexpected end of JSON input", err.GetDetails())
	assert.Equal(t, "abc", err.GetGUID())
	assert.Empty(t, ErrMalformedReply.GetDetails())
	assert.Empty(t, ErrMalformedReply.GetGUID())
	assert.Equal(t, "malformed_reply", err.Error())
}

func TestDetailedError_Is(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", ErrWrongPassword.WithDetail("x"))

	assert.True(t, stderrors.Is(err, ErrWrongPassword))
	assert.False(t, stderrors.Is(err, ErrLoginRejected))
}

func TestDetailedError_NilReceiver(t *testing.T) {
	var d *DetailedError

	assert.Nil(t, d.WithDetail("x"))
	assert.Nil(t, d.WithGUID("x"))
}

func TestTransportError(t *testing.T) {
	cause := stderrors.New("dial tcp: lookup proxy.pku.edu.cn: no such host")
	err := &TransportError{Op: "GET", URL: "http://elective.pku.edu.cn", Text: cause.Error(), Err: cause}

	var te *TransportError

	assert.True(t, stderrors.As(fmt.Errorf("x: %w", err), &te))
	assert.True(t, stderrors.Is(err, cause))
	assert.Equal(t, "GET http://elective.pku.edu.cn: dial tcp: lookup proxy.pku.edu.cn: no such host", err.Error())
}
