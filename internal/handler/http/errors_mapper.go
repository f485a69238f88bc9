package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/visa-assistant/internal/logger"
	"github.com/MKhiriev/visa-assistant/internal/service"
	"github.com/MKhiriev/visa-assistant/internal/utils"
	"github.com/MKhiriev/visa-assistant/internal/validators"
	"github.com/MKhiriev/visa-assistant/models"
)

// Response texts clients match on.
const (
	msgInvalidData      = "The given data was invalid."
	msgWrongCredentials = "Wrong Credentials"
	msgUnauthorized     = "Unauthorized"
	msgUnauthenticated  = "Unauthenticated"
	msgNoAIResponse     = "No response from AI"
	msgDatabaseError    = "Database error"
	msgInvalidJSON      = "Invalid JSON was passed"
)

// errorMapping describes how a known error is reported to clients.
type errorMapping struct {
	target  error
	status  int
	text    string
	message string
}

// errorMappings is ordered: the first matching target wins.
var errorMappings = []errorMapping{
	{target: validators.ErrValidation, status: http.StatusUnprocessableEntity},

	{target: service.ErrWrongCredentials, status: http.StatusUnauthorized, text: msgWrongCredentials},
	{target: service.ErrUnauthorized, status: http.StatusUnauthorized, text: msgUnauthorized},
	{target: service.ErrTokenIsExpiredOrInvalid, status: http.StatusUnauthorized, text: msgUnauthenticated},
	{target: ErrEmptyAuthorizationHeader, status: http.StatusUnauthorized, text: msgUnauthenticated},
	{target: ErrInvalidAuthorizationHeader, status: http.StatusUnauthorized, text: msgUnauthenticated},

	{target: ErrInvalidJSON, status: http.StatusBadRequest, text: msgInvalidJSON},
	{target: ErrInvalidForm, status: http.StatusBadRequest, text: "Invalid form was passed"},
	{target: ErrRequestTooLarge, status: http.StatusRequestEntityTooLarge, text: "Request body is too large"},
	{target: ErrUnsupportedContentType, status: http.StatusUnsupportedMediaType, text: "Unsupported content type"},

	{
		target:  service.ErrRemoteService,
		status:  http.StatusInternalServerError,
		text:    msgNoAIResponse,
		message: "The AI service could not be reached. Please try again later.",
	},
	{target: service.ErrNoAIResponse, status: http.StatusInternalServerError, text: msgNoAIResponse},
	{
		target:  service.ErrPersistence,
		status:  http.StatusInternalServerError,
		text:    msgDatabaseError,
		message: "The request could not be saved. Please try again later.",
	},
	{target: service.ErrFileStorage, status: http.StatusInternalServerError, text: "File storage error"},
	{target: service.ErrServiceUnhealthy, status: http.StatusServiceUnavailable, text: "Service Unavailable"},
}

// errorResponse builds the body for err. Code always equals the status.
func errorResponse(err error) models.ErrorResponse {
	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		return models.ErrorResponse{
			Code:    http.StatusUnprocessableEntity,
			Message: msgInvalidData,
			Errors:  validationErr.Fields,
		}
	}

	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return models.ErrorResponse{Code: m.status, Error: m.text, Message: m.message}
		}
	}

	return models.ErrorResponse{
		Code:  http.StatusInternalServerError,
		Error: http.StatusText(http.StatusInternalServerError),
	}
}

// writeError logs err and writes its JSON representation.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	resp := errorResponse(err)

	log := logger.FromRequest(r)
	if resp.Code >= http.StatusInternalServerError {
		log.Err(err).Int("status", resp.Code).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", resp.Code).Msg("request rejected")
	}

	if _, writeErr := utils.WriteJSON(w, resp, resp.Code); writeErr != nil {
		log.Err(writeErr).Msg("error writing error response")
	}
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.ErrorResponse{Code: http.StatusNotFound, Error: http.StatusText(http.StatusNotFound)}, http.StatusNotFound)
}
