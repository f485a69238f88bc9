package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/visa-assistant/internal/logger"
	"github.com/MKhiriev/visa-assistant/internal/service"
	"github.com/MKhiriev/visa-assistant/internal/utils"
	"github.com/MKhiriev/visa-assistant/models"
	"github.com/golang-jwt/jwt/v5"
)

// maxJSONBodyBytes bounds JSON request bodies.
const maxJSONBodyBytes = 1 << 20

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.RegisterRequest
	if err := decodeJSONBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.RegisterUser(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResponse(w, r, models.RegisterResponse{
		Code:      http.StatusOK,
		Message:   "User Registered Successfully",
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Token:     token.SignedString,
	})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.LoginRequest
	if err := decodeJSONBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.AuthService.RememberToken(ctx, user, token); err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Int64("user_id", user.ID).Msg("user successfully logged in")

	writeResponse(w, r, models.LoginResponse{
		Code:    http.StatusOK,
		Message: "User logged in Successfully",
		User:    user.Profile(),
		Token:   token.SignedString,
	})
}

// logout revokes the token the request was authenticated with.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, _ := utils.GetUserIDFromContext(ctx)
	tokenID, ok := utils.GetTokenIDFromContext(ctx)
	if !ok {
		writeError(w, r, service.ErrTokenIsExpiredOrInvalid)
		return
	}

	token := models.Token{
		RegisteredClaims: jwt.RegisteredClaims{ID: tokenID},
		UserID:           userID,
	}
	if err := h.services.AuthService.Logout(ctx, token); err != nil {
		writeError(w, r, err)
		return
	}

	writeResponse(w, r, models.MessageResponse{Code: http.StatusOK, Message: "Logged out"})
}

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, r, service.ErrTokenIsExpiredOrInvalid)
		return
	}

	user, err := h.services.AuthService.GetProfile(ctx, userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResponse(w, r, models.ProfileResponse{Code: http.StatusOK, User: user.Profile()})
}

// decodeJSONBody decodes the request body into dst. An empty body leaves dst
// untouched so that validation reports the missing fields.
func decodeJSONBody(r *http.Request, dst any) error {
	err := utils.DecodeJSON(r.Body, dst, maxJSONBodyBytes)
	switch {
	case err == nil, errors.Is(err, utils.ErrEmptyBody):
		return nil
	default:
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
}

// writeResponse writes a 200 JSON body.
func writeResponse(w http.ResponseWriter, r *http.Request, data any) {
	if _, err := utils.WriteJSON(w, data, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}
