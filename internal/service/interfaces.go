package service

import (
	"context"

	"github.com/MKhiriev/visa-assistant/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService registers users and issues, checks and revokes bearer tokens.
type AuthService interface {
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	RememberToken(ctx context.Context, user models.User, token models.Token) error
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	Logout(ctx context.Context, token models.Token) error
	GetProfile(ctx context.Context, userID int64) (models.User, error)
}

// ProfileService applies partial profile updates.
type ProfileService interface {
	EditProfile(ctx context.Context, req models.ProfileUpdateRequest) (models.User, error)
}

// ChatService forwards one prompt to the completion API and logs the exchange.
type ChatService interface {
	TalkToAI(ctx context.Context, req models.ChatRequest) (models.ChatLogEntry, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	CheckHealth(ctx context.Context) error
}

// Pinger reports whether a backing dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}
