package errs

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromResponseParsesErrorBody(t *testing.T) {
	body := []byte(`{"code":404,"message":"Node not found","debugInfo":"node 42","errorCode":-40751}`)
	err := FromResponse(http.StatusNotFound, "https://dracoon.example/api/v4/nodes/42", body)

	assert.Equal(t, http.StatusNotFound, err.StatusCode)
	assert.Equal(t, "Node not found", err.Message)
	assert.Equal(t, "node 42", err.DebugInfo)
	assert.Equal(t, -40751, err.ErrorCode)
	assert.Contains(t, err.Error(), "Node not found")
}

func TestFromResponseOAuthBody(t *testing.T) {
	body := []byte(`{"error":"invalid_grant","error_description":"Wrong username or password."}`)
	err := FromResponse(http.StatusUnauthorized, "https://dracoon.example/oauth/token", body)

	assert.Equal(t, "Wrong username or password.", err.Message)
}

func TestFromResponseGarbageBody(t *testing.T) {
	err := FromResponse(http.StatusBadGateway, "https://dracoon.example/api/v4/nodes", []byte("<html>bad gateway</html>"))

	assert.Equal(t, http.StatusBadGateway, err.StatusCode)
	assert.Empty(t, err.Message)
}

func TestStatusMapping(t *testing.T) {
	cases := []struct {
		status   int
		sentinel error
	}{
		{http.StatusBadRequest, BadRequest},
		{http.StatusUnauthorized, Unauthorized},
		{http.StatusPaymentRequired, PaymentRequired},
		{http.StatusForbidden, Forbidden},
		{http.StatusNotFound, NotFound},
		{http.StatusConflict, Conflict},
		{http.StatusPreconditionFailed, PreconditionFailed},
		{http.StatusTooManyRequests, TooManyRequests},
		{http.StatusInternalServerError, ServerError},
		{http.StatusBadGateway, ServerError},
	}
	for _, tc := range cases {
		err := FromResponse(tc.status, "https://dracoon.example", nil)
		assert.ErrorIs(t, err, tc.sentinel, "status %d", tc.status)
		assert.ErrorIs(t, err, HTTPError, "status %d", tc.status)
	}
}

func TestIsNotFoundError(t *testing.T) {
	err := FromResponse(http.StatusNotFound, "https://dracoon.example", nil)
	assert.True(t, IsNotFoundError(err))
	assert.False(t, IsNotFoundError(errors.New("other")))
}

func TestStatusCode(t *testing.T) {
	err := FromResponse(http.StatusConflict, "https://dracoon.example", nil)
	assert.Equal(t, http.StatusConflict, StatusCode(err))
	assert.Equal(t, 0, StatusCode(errors.New("not an api error")))
}

func TestConnectError(t *testing.T) {
	inner := errors.New("dial tcp: connection refused")
	err := &ConnectError{URL: "https://dracoon.example", Err: inner}

	require.ErrorIs(t, err, inner)
	assert.True(t, IsConnectError(error(err)))
	assert.Contains(t, err.Error(), "connection to DRACOON failed")
}
