package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/visa-assistant/internal/config"
	"github.com/MKhiriev/visa-assistant/internal/logger"
	"github.com/MKhiriev/visa-assistant/internal/store"
	"github.com/MKhiriev/visa-assistant/internal/utils"
	"github.com/MKhiriev/visa-assistant/internal/validators"
	"github.com/MKhiriev/visa-assistant/models"
)

// accessTokenName is the name recorded for every issued API token.
const accessTokenName = "api-token"

type idGenerator interface {
	Generate() string
}

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and the JWT token
// lifecycle. Every issued token is backed by an access token row, so a token
// can be revoked before it expires.
type authService struct {
	userRepository        store.UserRepository
	accessTokenRepository store.AccessTokenRepository
	validator             validators.Validator

	// passwordHashCost is the bcrypt cost used for new password hashes.
	passwordHashCost int

	// hashKey is the HMAC secret used for the remember token digest.
	hashKey string

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	tokenIDs idGenerator

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given repositories
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(
	userRepository store.UserRepository,
	accessTokenRepository store.AccessTokenRepository,
	validator validators.Validator,
	cfg config.App,
	logger *logger.Logger,
) AuthService {
	return &authService{
		userRepository:        userRepository,
		accessTokenRepository: accessTokenRepository,
		validator:             validator,
		passwordHashCost:      cfg.PasswordHashCost,
		hashKey:               cfg.HashKey,
		tokenSignKey:          cfg.TokenSignKey,
		tokenIssuer:           cfg.TokenIssuer,
		tokenDuration:         cfg.TokenDuration,
		tokenIDs:              utils.NewUUIDGenerator(),
		logger:                logger,
	}
}

// RegisterUser creates a new user account.
//
// Returns the persisted user (with a server-assigned ID) or:
//   - a *validators.ValidationError for missing or malformed input and for an
//     email that is already taken, including one taken concurrently;
//   - ErrPersistence (wrapped) if the repository fails.
func (a *authService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.Email = strings.TrimSpace(req.Email)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Msg("registration rejected by validation")
		return models.User{}, err
	}

	_, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	switch {
	case err == nil:
		return models.User{}, validators.NewFieldError(validators.FieldEmail, validators.MsgEmailTaken)
	case !errors.Is(err, store.ErrNoUserWasFound):
		log.Err(err).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	passwordHash, err := utils.HashPassword(req.Password, a.passwordHashCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, err
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  passwordHash,
	})
	switch {
	case errors.Is(err, store.ErrEmailAlreadyExists):
		return models.User{}, validators.NewFieldError(validators.FieldEmail, validators.MsgEmailTaken)
	case err != nil:
		log.Err(err).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	log.Info().Int64("user_id", registeredUser.ID).Msg("user registered")
	return registeredUser, nil
}

// Login authenticates an existing user by email and password.
//
// An unknown email and a wrong password both yield ErrWrongCredentials.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	req.Email = strings.TrimSpace(req.Email)
	if err := a.validator.Validate(ctx, req); err != nil {
		return models.User{}, err
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	switch {
	case errors.Is(err, store.ErrNoUserWasFound):
		log.Debug().Msg("login attempt for unknown email")
		return models.User{}, ErrWrongCredentials
	case err != nil:
		log.Err(err).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	ok, err := utils.CheckPassword(foundUser.Password, req.Password)
	if err != nil {
		log.Err(err).Int64("user_id", foundUser.ID).Msg("stored password hash is unusable")
		return models.User{}, ErrWrongCredentials
	}
	if !ok {
		log.Debug().Int64("user_id", foundUser.ID).Msg("wrong password")
		return models.User{}, ErrWrongCredentials
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user and records it as an
// access token. The token id ("jti") is a fresh UUIDv7.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	tokenID := a.tokenIDs.Generate()

	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, tokenID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	err = a.accessTokenRepository.CreateToken(ctx, models.AccessToken{
		ID:     tokenID,
		UserID: user.ID,
		Name:   accessTokenName,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", user.ID).Msg("access token was not saved")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// RememberToken stores the keyed digest of token on the user record,
// replacing the previous one.
func (a *authService) RememberToken(ctx context.Context, user models.User, token models.Token) error {
	digest := utils.HashString(token.SignedString, a.hashKey)

	if err := a.userRepository.SetRememberToken(ctx, user.ID, digest); err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", user.ID).Msg("remember token was not saved")
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return nil
}

// ParseToken validates and parses a raw JWT string.
//
// Signature, issuer and expiry are verified first; then the access token
// referenced by the "jti" claim must still exist and belong to the subject.
// Any validation failure is normalised to ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	accessToken, err := a.accessTokenRepository.FindToken(ctx, token.ID)
	switch {
	case errors.Is(err, store.ErrAccessTokenNotFound):
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	case err != nil:
		return models.Token{}, fmt.Errorf("%w: %w", ErrPersistence, err)
	case accessToken.UserID != token.UserID:
		logger.FromContext(ctx).Warn().
			Str("token_id", token.ID).
			Str("subject", strconv.FormatInt(token.UserID, 10)).
			Msg("access token owner does not match token subject")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// Logout revokes the presented token. Other tokens of the user stay valid.
func (a *authService) Logout(ctx context.Context, token models.Token) error {
	err := a.accessTokenRepository.DeleteToken(ctx, token.ID)
	switch {
	case errors.Is(err, store.ErrAccessTokenNotFound):
		return ErrTokenIsExpiredOrInvalid
	case err != nil:
		logger.FromContext(ctx).Err(err).Str("token_id", token.ID).Msg("access token was not deleted")
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	logger.FromContext(ctx).Info().Int64("user_id", token.UserID).Msg("user logged out")
	return nil
}

// GetProfile returns the user the authenticated token belongs to.
func (a *authService) GetProfile(ctx context.Context, userID int64) (models.User, error) {
	user, err := a.userRepository.FindUserByID(ctx, userID)
	switch {
	case errors.Is(err, store.ErrNoUserWasFound):
		return models.User{}, ErrUnauthorized
	case err != nil:
		return models.User{}, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	return user, nil
}
