package validators

import (
	"context"
	"errors"
	"math"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/visa-assistant/models"
	"github.com/gabriel-vasile/mimetype"
	"github.com/go-playground/validator/v10"
)

// Request field names as they appear in the API.
const (
	FieldFirstName   = "first_name"
	FieldLastName    = "last_name"
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldAge         = "age"
	FieldLocation    = "location"
	FieldDescription = "description"
	FieldImage       = "image"
	FieldPrompt      = "prompt"
)

// Limits applied to user input.
const (
	MinPasswordLength    = 6
	MaxPasswordBytes     = 72
	MaxNameLength        = 255
	MaxLocationLength    = 255
	MaxDescriptionLength = 1000
	MaxImageKilobytes    = 2048
	MaxImageBytes        = MaxImageKilobytes * 1024
	MaxAge               = math.MaxInt32
)

// allowedImageTypes maps accepted detected MIME types to the extension the
// stored file gets.
var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
}

// MsgEmailTaken is reported on the email field when the address is in use.
const MsgEmailTaken = "The email has already been taken."

var emailValidator = validator.New()

type RequestValidator struct {
}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate dispatches to the typed validation function of obj. When fields
// are given, only failures of those fields are reported.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	var errs FieldErrors

	switch value := obj.(type) {
	case models.RegisterRequest:
		errs = ValidateRegister(value)
	case *models.RegisterRequest:
		errs = ValidateRegister(*value)

	case models.LoginRequest:
		errs = ValidateLogin(value)
	case *models.LoginRequest:
		errs = ValidateLogin(*value)

	case *models.ProfileUpdateRequest:
		errs = ValidateProfileUpdate(value)

	case models.ChatRequest:
		errs = ValidateChat(value)
	case *models.ChatRequest:
		errs = ValidateChat(*value)

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}

	if len(fields) > 0 {
		for field := range errs {
			if !slices.Contains(fields, field) {
				delete(errs, field)
			}
		}
	}

	return errs.Err()
}

// ValidateRegister checks POST /api/register input. Email uniqueness is
// checked by the store.
func ValidateRegister(req models.RegisterRequest) FieldErrors {
	errs := FieldErrors{}

	required(errs, FieldFirstName, req.FirstName)
	required(errs, FieldLastName, req.LastName)

	if required(errs, FieldEmail, req.Email) {
		email(errs, FieldEmail, req.Email)
	}

	if required(errs, FieldPassword, req.Password) {
		switch {
		case utf8.RuneCountInString(req.Password) < MinPasswordLength:
			errs.Add(FieldPassword, fmt.Sprintf("The password field must be at least %d characters.", MinPasswordLength))
		case len(req.Password) > MaxPasswordBytes:
			// bcrypt only hashes the first 72 bytes
			errs.Add(FieldPassword, fmt.Sprintf("The password field must not be greater than %d characters.", MaxPasswordBytes))
		}
	}

	return errs
}

// ValidateLogin checks POST /api/login input.
func ValidateLogin(req models.LoginRequest) FieldErrors {
	errs := FieldErrors{}

	required(errs, FieldEmail, req.Email)
	required(errs, FieldPassword, req.Password)

	return errs
}

// ValidateChat checks POST /api/chat input.
func ValidateChat(req models.ChatRequest) FieldErrors {
	errs := FieldErrors{}

	required(errs, FieldPrompt, req.Prompt)
	required(errs, FieldEmail, req.Email)

	return errs
}

// ValidateProfileUpdate checks the fields present in an edit-profile request.
// On success the image, if any, gets its detected ContentType and Extension.
func ValidateProfileUpdate(req *models.ProfileUpdateRequest) FieldErrors {
	errs := FieldErrors{}

	maxLength(errs, FieldFirstName, req.FirstName, MaxNameLength)
	maxLength(errs, FieldLastName, req.LastName, MaxNameLength)
	maxLength(errs, FieldLocation, req.Location, MaxLocationLength)
	maxLength(errs, FieldDescription, req.Description, MaxDescriptionLength)

	if req.Age != nil {
		age(errs, *req.Age)
	}

	if req.Image != nil {
		image(errs, req.Image)
	}

	return errs
}

// ParseAge converts submitted age text to an integer between 0 and
// [MaxAge], the range of the INTEGER age column.
func ParseAge(raw string) (int, bool) {
	age, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || age < 0 || age > MaxAge {
		return 0, false
	}
	return int(age), true
}

func age(errs FieldErrors, raw string) {
	value, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	switch {
	case errors.Is(err, strconv.ErrRange) && !strings.HasPrefix(strings.TrimSpace(raw), "-"):
		errs.Add(FieldAge, fmt.Sprintf("The age field must not be greater than %d.", MaxAge))
	case errors.Is(err, strconv.ErrRange):
		errs.Add(FieldAge, "The age field must be at least 0.")
	case err != nil:
		errs.Add(FieldAge, "The age field must be an integer.")
	case value < 0:
		errs.Add(FieldAge, "The age field must be at least 0.")
	case value > MaxAge:
		errs.Add(FieldAge, fmt.Sprintf("The age field must not be greater than %d.", MaxAge))
	}
}

func required(errs FieldErrors, field, value string) bool {
	if strings.TrimSpace(value) == "" {
		errs.Add(field, fmt.Sprintf("The %s field is required.", attribute(field)))
		return false
	}
	return true
}

func email(errs FieldErrors, field, value string) {
	if err := emailValidator.Var(value, "email"); err != nil {
		errs.Add(field, fmt.Sprintf("The %s field must be a valid email address.", attribute(field)))
	}
}

func maxLength(errs FieldErrors, field string, value *string, limit int) {
	if value == nil {
		return
	}
	if utf8.RuneCountInString(*value) > limit {
		errs.Add(field, fmt.Sprintf("The %s field must not be greater than %d characters.", attribute(field), limit))
	}
}

func image(errs FieldErrors, img *models.ImageUpload) {
	size := img.Size
	if size < int64(len(img.Content)) {
		size = int64(len(img.Content))
	}

	if size == 0 {
		errs.Add(FieldImage, "The image field must be an image.")
		return
	}

	detected := mimetype.Detect(img.Content)
	ext, ok := allowedImageTypes[detected.String()]
	if !ok {
		if !strings.HasPrefix(detected.String(), "image/") {
			errs.Add(FieldImage, "The image field must be an image.")
		}
		errs.Add(FieldImage, "The image field must be a file of type: jpg, jpeg, png.")
	}

	if size > MaxImageBytes {
		errs.Add(FieldImage, fmt.Sprintf("The image field must not be greater than %d kilobytes.", MaxImageKilobytes))
	}

	if _, failed := errs[FieldImage]; !failed {
		img.ContentType = detected.String()
		img.Extension = ext
	}
}

// attribute turns a field name into its display form: "first_name" -> "first name".
func attribute(field string) string {
	return strings.ReplaceAll(field, "_", " ")
}
