// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/visa-assistant/internal/logger"
	"github.com/MKhiriev/visa-assistant/internal/service"
	"github.com/MKhiriev/visa-assistant/internal/validators"
	"github.com/MKhiriev/visa-assistant/models"
	"github.com/stretchr/testify/assert"
)

func TestErrorResponse(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want models.ErrorResponse
	}{
		{
			name: "wrong credentials",
			err:  service.ErrWrongCredentials,
			want: models.ErrorResponse{Code: 401, Error: "Wrong Credentials"},
		},
		{
			name: "unauthorized",
			err:  fmt.Errorf("lookup: %w", service.ErrUnauthorized),
			want: models.ErrorResponse{Code: 401, Error: "Unauthorized"},
		},
		{
			name: "missing header",
			err:  ErrEmptyAuthorizationHeader,
			want: models.ErrorResponse{Code: 401, Error: "Unauthenticated"},
		},
		{
			name: "invalid JSON",
			err:  fmt.Errorf("%w: unexpected EOF", ErrInvalidJSON),
			want: models.ErrorResponse{Code: 400, Error: "Invalid JSON was passed"},
		},
		{
			name: "no AI response",
			err:  service.ErrNoAIResponse,
			want: models.ErrorResponse{Code: 500, Error: "No response from AI"},
		},
		{
			name: "persistence failure hides the cause",
			err:  fmt.Errorf("%w: %w", service.ErrPersistence, errors.New("pq: relation does not exist")),
			want: models.ErrorResponse{
				Code:    500,
				Error:   "Database error",
				Message: "The request could not be saved. Please try again later.",
			},
		},
		{
			name: "unknown error",
			err:  errors.New("boom"),
			want: models.ErrorResponse{Code: 500, Error: "Internal Server Error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errorResponse(tt.err))
		})
	}
}

func TestErrorResponse_Validation(t *testing.T) {
	fields := validators.FieldErrors{"age": {"The age field must be at least 0."}}

	got := errorResponse(fmt.Errorf("edit profile: %w", fields.Err()))

	assert.Equal(t, models.ErrorResponse{
		Code:    http.StatusUnprocessableEntity,
		Message: "The given data was invalid.",
		Errors:  map[string][]string{"age": {"The age field must be at least 0."}},
	}, got)
}

func TestErrorResponse_FirstMappingWins(t *testing.T) {
	err := errors.Join(service.ErrTokenIsExpiredOrInvalid, service.ErrPersistence)

	assert.Equal(t, http.StatusUnauthorized, errorResponse(err).Code)
}

func TestWriteError_CodeMatchesStatus(t *testing.T) {
	errs := []error{
		service.ErrWrongCredentials,
		ErrRequestTooLarge,
		ErrUnsupportedContentType,
		service.ErrServiceUnhealthy,
		validators.NewFieldError("email", "taken"),
		errors.New("unknown"),
	}

	for _, err := range errs {
		t.Run(err.Error(), func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/login", nil)
			req = req.WithContext(logger.Nop().WithContext(req.Context()))
			rec := httptest.NewRecorder()

			writeError(rec, req, err)

			assert.Equal(t, rec.Code, decodeBody[models.ErrorResponse](t, rec).Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		})
	}
}
