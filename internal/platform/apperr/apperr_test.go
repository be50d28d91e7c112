// Copyright (c) 2026 Super 3000. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/super3000/internal/platform/apperr"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name   string
		err    *apperr.AppError
		code   string
		status int
	}{
		{"not_found", apperr.NotFound("Product"), "NOT_FOUND", http.StatusNotFound},
		{"validation", apperr.ValidationError("bad"), "VALIDATION_ERROR", http.StatusBadRequest},
		{"rate_limited", apperr.RateLimited(2), "RATE_LIMITED", http.StatusTooManyRequests},
		{"internal", apperr.Internal(errors.New("boom")), "INTERNAL_ERROR", http.StatusInternalServerError},
		{"unavailable", apperr.ServiceUnavailable("down"), "SERVICE_UNAVAILABLE", http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.status, tt.err.HTTPStatus)
		})
	}

	assert.Equal(t, "Product not found", apperr.NotFound("Product").Error())
}

/*
TestInternal_HidesCause verifies the cause is reachable for logging but not in the message.
*/
func TestInternal_HidesCause(t *testing.T) {
	cause := errors.New("redis: connection refused")
	err := apperr.Internal(cause)

	assert.NotContains(t, err.Error(), "redis")
	assert.ErrorIs(t, err, cause)
}

func TestAs(t *testing.T) {
	wrapped := fmt.Errorf("browse: %w", apperr.NotFound("Browse session"))

	require.True(t, apperr.IsAppError(wrapped))
	assert.Equal(t, "NOT_FOUND", apperr.As(wrapped).Code)
	assert.Nil(t, apperr.As(errors.New("plain")))
}
