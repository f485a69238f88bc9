package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/visa-assistant/internal/logger"
	"github.com/MKhiriev/visa-assistant/models"
)

type accessTokenRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewAccessTokenRepository(db *DB, logger *logger.Logger) AccessTokenRepository {
	logger.Debug().Msg("creating access token repository")
	return &accessTokenRepository{
		db:     db,
		logger: logger,
	}
}

// CreateToken stores the token row referenced by the "jti" claim.
func (r *accessTokenRepository) CreateToken(ctx context.Context, token models.AccessToken) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, createAccessToken, token.ID, token.UserID, token.Name); err != nil {
		log.Err(err).Str("func", "*accessTokenRepository.CreateToken").Int64("user_id", token.UserID).Msg("error saving access token")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// FindToken returns the token row, or [ErrAccessTokenNotFound] when it was
// never issued or has been revoked.
func (r *accessTokenRepository) FindToken(ctx context.Context, tokenID string) (models.AccessToken, error) {
	log := logger.FromContext(ctx)

	var token models.AccessToken
	err := r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, findAccessToken, tokenID).
			Scan(&token.ID, &token.UserID, &token.Name, &token.CreatedAt)
	})

	switch {
	case err == nil:
		return token, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.AccessToken{}, ErrAccessTokenNotFound
	default:
		log.Err(err).Str("func", "*accessTokenRepository.FindToken").Msg("error finding access token")
		return models.AccessToken{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}

// DeleteToken revokes a token. Deleting an unknown token yields
// [ErrAccessTokenNotFound].
func (r *accessTokenRepository) DeleteToken(ctx context.Context, tokenID string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteAccessToken, tokenID)
	if err != nil {
		log.Err(err).Str("func", "*accessTokenRepository.DeleteToken").Msg("error deleting access token")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrAccessTokenNotFound
	}

	return nil
}
