package store

import (
	"context"

	"github.com/MKhiriev/visa-assistant/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts in the "users" table.
type UserRepository interface {
	// CreateUser inserts a new user and returns it with server-assigned fields.
	// A taken email yields ErrEmailAlreadyExists.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail looks a user up by email, case-insensitively.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// UpdateProfile applies the non-nil fields of update and returns the
	// updated user.
	UpdateProfile(ctx context.Context, userID int64, update models.ProfileUpdate) (models.User, error)

	// SetRememberToken overwrites the remember token digest of the user.
	SetRememberToken(ctx context.Context, userID int64, digest string) error
}

// AccessTokenRepository persists issued bearer tokens so that they can be
// revoked before they expire.
type AccessTokenRepository interface {
	CreateToken(ctx context.Context, token models.AccessToken) error
	FindToken(ctx context.Context, tokenID string) (models.AccessToken, error)
	DeleteToken(ctx context.Context, tokenID string) error
}

// ChatLogRepository persists AI exchanges in the "ai_chat_log" table.
type ChatLogRepository interface {
	CreateChatLog(ctx context.Context, entry models.ChatLogEntry) (models.ChatLogEntry, error)
	FindChatLogByID(ctx context.Context, id int64) (models.ChatLogEntry, error)
}
