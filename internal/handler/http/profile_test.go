package http

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/MKhiriev/visa-assistant/internal/service"
	"github.com/MKhiriev/visa-assistant/internal/validators"
	"github.com/MKhiriev/visa-assistant/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var pngContent = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

func strPtr(s string) *string { return &s }

// multipartBody builds a multipart/form-data body with the given fields and
// an optional image part.
func multipartBody(t *testing.T, fields map[string]string, image []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if image != nil {
		part, err := w.CreateFormFile("image", "avatar.png")
		require.NoError(t, err)
		_, err = part.Write(image)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	return &buf, w.FormDataContentType()
}

// expectEdit captures the request passed to EditProfile.
func expectEdit(m *serviceMocks, got *models.ProfileUpdateRequest, user models.User, err error) {
	m.profile.EXPECT().EditProfile(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req models.ProfileUpdateRequest) (models.User, error) {
			*got = req
			return user, err
		})
}

func TestEditProfile_JSON(t *testing.T) {
	tests := []struct {
		name string
		body string
		want models.ProfileUpdateRequest
	}{
		{
			name: "numeric age",
			body: `{"email":"amina@example.com","first_name":"Amina","age":27}`,
			want: models.ProfileUpdateRequest{Email: "amina@example.com", FirstName: strPtr("Amina"), Age: strPtr("27")},
		},
		{
			name: "string age",
			body: `{"email":"amina@example.com","age":"27"}`,
			want: models.ProfileUpdateRequest{Email: "amina@example.com", Age: strPtr("27")},
		},
		{
			name: "fractional age is passed on for validation",
			body: `{"email":"amina@example.com","age":20.5}`,
			want: models.ProfileUpdateRequest{Email: "amina@example.com", Age: strPtr("20.5")},
		},
		{
			name: "null fields are absent",
			body: `{"email":"amina@example.com","location":null,"age":null,"description":"Nurse"}`,
			want: models.ProfileUpdateRequest{Email: "amina@example.com", Description: strPtr("Nurse")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newMockedHandler(t)

			var got models.ProfileUpdateRequest
			expectEdit(m, &got, testUser, nil)

			rec := serve(h, http.MethodPost, "/api/edit-profile", strings.NewReader(tt.body), jsonHeaders)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEditProfile_ResponseBody(t *testing.T) {
	h, m := newMockedHandler(t)

	age := 27
	user := testUser
	user.Age = &age
	user.Image = strPtr("http://localhost:8080/storage/user_images/a.png")

	var got models.ProfileUpdateRequest
	expectEdit(m, &got, user, nil)

	rec := serve(h, http.MethodPost, "/api/edit-profile", strings.NewReader(`{"email":"amina@example.com","age":27}`), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[models.ProfileResponse](t, rec)
	assert.Equal(t, models.ProfileResponse{
		Code:    http.StatusOK,
		Message: "Profile updated successfully",
		User:    user.Profile(),
	}, resp)
}

func TestEditProfile_Multipart(t *testing.T) {
	h, m := newMockedHandler(t)

	var got models.ProfileUpdateRequest
	expectEdit(m, &got, testUser, nil)

	body, contentType := multipartBody(t, map[string]string{
		"email":    "amina@example.com",
		"location": "Tashkent",
		"age":      "31",
	}, pngContent)

	rec := serve(h, http.MethodPost, "/api/edit-profile", body, map[string]string{"Content-Type": contentType})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "amina@example.com", got.Email)
	assert.Equal(t, strPtr("Tashkent"), got.Location)
	assert.Equal(t, strPtr("31"), got.Age)
	assert.Nil(t, got.FirstName)

	require.NotNil(t, got.Image)
	assert.Equal(t, "avatar.png", got.Image.FileName)
	assert.Equal(t, pngContent, got.Image.Content)
	assert.Equal(t, int64(len(pngContent)), got.Image.Size)
}

func TestEditProfile_MultipartWithoutImage(t *testing.T) {
	h, m := newMockedHandler(t)

	var got models.ProfileUpdateRequest
	expectEdit(m, &got, testUser, nil)

	body, contentType := multipartBody(t, map[string]string{"email": "amina@example.com", "last_name": "K."}, nil)
	rec := serve(h, http.MethodPost, "/api/edit-profile", body, map[string]string{"Content-Type": contentType})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, got.Image)
	assert.Equal(t, strPtr("K."), got.LastName)
}

func TestEditProfile_OversizedImageIsTruncatedForValidation(t *testing.T) {
	h, m := newMockedHandler(t)

	var got models.ProfileUpdateRequest
	expectEdit(m, &got, models.User{}, validators.NewFieldError(validators.FieldImage, "too large"))

	image := append(bytes.Clone(pngContent), make([]byte, 3*validators.MaxImageBytes)...)
	body, contentType := multipartBody(t, map[string]string{"email": "amina@example.com"}, image)

	rec := serve(h, http.MethodPost, "/api/edit-profile", body, map[string]string{"Content-Type": contentType})

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.NotNil(t, got.Image)
	assert.Len(t, got.Image.Content, validators.MaxImageBytes+1)
	assert.Equal(t, int64(len(image)), got.Image.Size)
}

func TestEditProfile_URLEncodedForm(t *testing.T) {
	h, m := newMockedHandler(t)

	var got models.ProfileUpdateRequest
	expectEdit(m, &got, testUser, nil)

	form := url.Values{"email": {"amina@example.com"}, "description": {"Looking for a job in Germany"}}
	rec := serve(h, http.MethodPost, "/api/edit-profile", strings.NewReader(form.Encode()),
		map[string]string{"Content-Type": "application/x-www-form-urlencoded"})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.ProfileUpdateRequest{
		Email:       "amina@example.com",
		Description: strPtr("Looking for a job in Germany"),
	}, got)
}

func TestEditProfile_RequestErrors(t *testing.T) {
	tests := []struct {
		name        string
		body        func(t *testing.T) (*bytes.Buffer, string)
		wantStatus  int
		wantMessage string
	}{
		{
			name: "unsupported content type",
			body: func(t *testing.T) (*bytes.Buffer, string) {
				return bytes.NewBufferString("email=a"), "text/plain"
			},
			wantStatus:  http.StatusUnsupportedMediaType,
			wantMessage: "Unsupported content type",
		},
		{
			name: "malformed content type",
			body: func(t *testing.T) (*bytes.Buffer, string) {
				return bytes.NewBufferString("{}"), "multipart/"
			},
			wantStatus:  http.StatusUnsupportedMediaType,
			wantMessage: "Unsupported content type",
		},
		{
			name: "multipart without boundary",
			body: func(t *testing.T) (*bytes.Buffer, string) {
				return bytes.NewBufferString("garbage"), "multipart/form-data"
			},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid form was passed",
		},
		{
			name: "invalid JSON",
			body: func(t *testing.T) (*bytes.Buffer, string) {
				return bytes.NewBufferString(`{"email":`), "application/json"
			},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid JSON was passed",
		},
		{
			name: "body over the upload limit",
			body: func(t *testing.T) (*bytes.Buffer, string) {
				return multipartBody(t, map[string]string{"email": "a@b.co"}, make([]byte, maxMultipartBodyBytes+1))
			},
			wantStatus:  http.StatusRequestEntityTooLarge,
			wantMessage: "Request body is too large",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newMockedHandler(t)

			body, contentType := tt.body(t)
			rec := serve(h, http.MethodPost, "/api/edit-profile", body, map[string]string{"Content-Type": contentType})

			require.Equal(t, tt.wantStatus, rec.Code)
			resp := decodeBody[models.ErrorResponse](t, rec)
			assert.Equal(t, tt.wantStatus, resp.Code)
			assert.Equal(t, tt.wantMessage, resp.Error)
		})
	}
}

func TestEditProfile_ServiceErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{name: "unknown email", err: service.ErrUnauthorized, wantStatus: http.StatusUnauthorized, wantError: "Unauthorized"},
		{name: "storage failure", err: service.ErrFileStorage, wantStatus: http.StatusInternalServerError, wantError: "File storage error"},
		{name: "database failure", err: service.ErrPersistence, wantStatus: http.StatusInternalServerError, wantError: "Database error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newMockedHandler(t)
			m.profile.EXPECT().EditProfile(gomock.Any(), gomock.Any()).Return(models.User{}, tt.err)

			rec := serve(h, http.MethodPost, "/api/edit-profile", strings.NewReader(`{"email":"ghost@example.com"}`), jsonHeaders)

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantError, decodeBody[models.ErrorResponse](t, rec).Error)
		})
	}
}

func TestAgeFromJSON(t *testing.T) {
	assert.Nil(t, ageFromJSON(nil))
	assert.Nil(t, ageFromJSON([]byte(" null ")))
	assert.Equal(t, strPtr("42"), ageFromJSON([]byte("42")))
	assert.Equal(t, strPtr("forty"), ageFromJSON([]byte(`"forty"`)))
	assert.Equal(t, strPtr("true"), ageFromJSON([]byte("true")))
}
