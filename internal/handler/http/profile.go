package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"

	"github.com/MKhiriev/visa-assistant/internal/validators"
	"github.com/MKhiriev/visa-assistant/models"
)

// Limits of multipart profile uploads. The body limit leaves room for the
// text fields next to the largest accepted image.
const (
	maxMultipartBodyBytes = 10 << 20
	maxMultipartMemory    = 4 << 20
)

// editProfilePayload is the JSON form of an edit-profile request. Age is
// accepted both as a number and as a string.
type editProfilePayload struct {
	Email       string          `json:"email"`
	FirstName   *string         `json:"first_name"`
	LastName    *string         `json:"last_name"`
	Location    *string         `json:"location"`
	Description *string         `json:"description"`
	Age         json.RawMessage `json:"age"`
}

func (h *Handler) editProfile(w http.ResponseWriter, r *http.Request) {
	req, err := parseProfileRequest(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.ProfileService.EditProfile(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResponse(w, r, models.ProfileResponse{
		Code:    http.StatusOK,
		Message: "Profile updated successfully",
		User:    user.Profile(),
	})
}

// parseProfileRequest reads an edit-profile request sent as JSON, as
// multipart/form-data or as an urlencoded form.
func parseProfileRequest(w http.ResponseWriter, r *http.Request) (models.ProfileUpdateRequest, error) {
	mediaType := "application/json"
	if contentType := r.Header.Get("Content-Type"); contentType != "" {
		parsed, _, err := mime.ParseMediaType(contentType)
		if err != nil {
			return models.ProfileUpdateRequest{}, fmt.Errorf("%w: %w", ErrUnsupportedContentType, err)
		}
		mediaType = parsed
	}

	switch mediaType {
	case "application/json":
		return parseProfileJSON(r)
	case "multipart/form-data":
		r.Body = http.MaxBytesReader(w, r.Body, maxMultipartBodyBytes)
		if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
			return models.ProfileUpdateRequest{}, formError(err)
		}
		return parseProfileForm(r)
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return models.ProfileUpdateRequest{}, formError(err)
		}
		return parseProfileForm(r)
	default:
		return models.ProfileUpdateRequest{}, fmt.Errorf("%w: %s", ErrUnsupportedContentType, mediaType)
	}
}

func parseProfileJSON(r *http.Request) (models.ProfileUpdateRequest, error) {
	var payload editProfilePayload
	if err := decodeJSONBody(r, &payload); err != nil {
		return models.ProfileUpdateRequest{}, err
	}

	return models.ProfileUpdateRequest{
		Email:       payload.Email,
		FirstName:   payload.FirstName,
		LastName:    payload.LastName,
		Location:    payload.Location,
		Description: payload.Description,
		Age:         ageFromJSON(payload.Age),
	}, nil
}

// ageFromJSON returns the submitted age as text, or nil for a missing or
// null value.
func ageFromJSON(raw json.RawMessage) *string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}

	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return &text
	}

	text = string(raw)
	return &text
}

func parseProfileForm(r *http.Request) (models.ProfileUpdateRequest, error) {
	req := models.ProfileUpdateRequest{
		Email:       r.PostFormValue(validators.FieldEmail),
		FirstName:   formValue(r, validators.FieldFirstName),
		LastName:    formValue(r, validators.FieldLastName),
		Location:    formValue(r, validators.FieldLocation),
		Description: formValue(r, validators.FieldDescription),
		Age:         formValue(r, validators.FieldAge),
	}

	if r.MultipartForm == nil {
		return req, nil
	}

	file, header, err := r.FormFile(validators.FieldImage)
	switch {
	case errors.Is(err, http.ErrMissingFile):
		return req, nil
	case err != nil:
		return models.ProfileUpdateRequest{}, formError(err)
	}
	defer file.Close()

	img, err := readImage(file, header)
	if err != nil {
		return models.ProfileUpdateRequest{}, formError(err)
	}
	req.Image = img

	return req, nil
}

// formValue returns a pointer to the first value of key, or nil when the
// form does not carry the key.
func formValue(r *http.Request, key string) *string {
	values, ok := r.PostForm[key]
	if !ok || len(values) == 0 {
		return nil
	}
	return &values[0]
}

// readImage reads at most one byte past the image limit, which is enough
// for validation to reject oversized files.
func readImage(file multipart.File, header *multipart.FileHeader) (*models.ImageUpload, error) {
	content, err := io.ReadAll(io.LimitReader(file, validators.MaxImageBytes+1))
	if err != nil {
		return nil, fmt.Errorf("error reading uploaded image: %w", err)
	}

	return &models.ImageUpload{
		FileName: header.Filename,
		Size:     max(header.Size, int64(len(content))),
		Content:  content,
	}, nil
}

func formError(err error) error {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return fmt.Errorf("%w: %w", ErrRequestTooLarge, err)
	}
	return fmt.Errorf("%w: %w", ErrInvalidForm, err)
}
