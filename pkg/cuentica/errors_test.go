package cuentica_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/magarcia/cuentica-sdk/pkg/cuentica"
)

func TestRequestError_Error(t *testing.T) {
	err := &cuentica.RequestError{StatusCode: 500, Body: "Internal Server Error"}
	assert.Equal(t, "HTTP 500: Internal Server Error", err.Error())
}

func TestRateLimitError_Error(t *testing.T) {
	t.Run("with reset time", func(t *testing.T) {
		err := &cuentica.RateLimitError{ResetAt: time.Unix(1765000000, 0).UTC()}
		assert.Contains(t, err.Error(), "rate limit exceeded, resets at")
	})

	t.Run("without reset time", func(t *testing.T) {
		err := &cuentica.RateLimitError{}
		assert.Equal(t, "rate limit exceeded", err.Error())
	})
}

func TestErrorHelpers(t *testing.T) {
	notFound := &cuentica.RequestError{StatusCode: 404, Body: "Not Found"}
	unauthorized := &cuentica.RequestError{StatusCode: 401, Body: "Unauthorized"}
	forbidden := &cuentica.RequestError{StatusCode: 403, Body: "Forbidden"}
	rateLimited := &cuentica.RateLimitError{}

	assert.True(t, cuentica.IsNotFound(notFound))
	assert.False(t, cuentica.IsNotFound(unauthorized))

	assert.True(t, cuentica.IsUnauthorized(unauthorized))
	assert.False(t, cuentica.IsUnauthorized(forbidden))

	assert.True(t, cuentica.IsForbidden(forbidden))
	assert.False(t, cuentica.IsForbidden(notFound))

	assert.True(t, cuentica.IsRateLimited(rateLimited))
	assert.False(t, cuentica.IsRateLimited(notFound))

	assert.False(t, cuentica.IsNotFound(nil))
	assert.False(t, cuentica.IsRateLimited(nil))
}

func TestErrorHelpers_Wrapped(t *testing.T) {
	// Helpers see through fmt.Errorf %w chains, the way resource clients
	// wrap transport errors.
	wrapped := fmt.Errorf("getting customer: %w", &cuentica.RequestError{StatusCode: 404, Body: "Not Found"})
	assert.True(t, cuentica.IsNotFound(wrapped))

	wrappedRate := fmt.Errorf("listing invoices: %w", &cuentica.RateLimitError{ResetAt: time.Unix(1765000000, 0)})
	assert.True(t, cuentica.IsRateLimited(wrappedRate))

	rateLimitErr := &cuentica.RateLimitError{}
	assert.ErrorAs(t, wrappedRate, &rateLimitErr)
	assert.Equal(t, int64(1765000000), rateLimitErr.ResetAt.Unix())
}
