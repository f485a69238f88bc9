package models

// RegisterRequest is the payload of POST /api/register.
type RegisterRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// LoginRequest is the payload of POST /api/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ChatRequest is the payload of POST /api/chat.
type ChatRequest struct {
	Prompt string `json:"prompt"`
	Email  string `json:"email"`
}

// ProfileUpdateRequest is the decoded payload of POST /api/edit-profile.
//
// A nil field means the field was not present in the request and must be left
// untouched. Age is kept as submitted text so that non-integer input can be
// reported as a validation error instead of a decoding failure.
type ProfileUpdateRequest struct {
	Email string

	FirstName   *string
	LastName    *string
	Location    *string
	Description *string
	Age         *string

	Image *ImageUpload
}

// ImageUpload is an uploaded image file held in memory.
type ImageUpload struct {
	// FileName is the client-side file name; informational only.
	FileName string

	// Size is the size of the uploaded file in bytes.
	Size int64

	// Content is the raw file content. It may be truncated to the upload
	// limit plus one byte, in which case Size is larger than len(Content).
	Content []byte

	// ContentType and Extension are filled by validation from the detected
	// content type, never from the client-supplied file name.
	ContentType string
	Extension   string
}
