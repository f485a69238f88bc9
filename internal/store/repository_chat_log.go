package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/visa-assistant/internal/logger"
	"github.com/MKhiriev/visa-assistant/models"
)

type chatLogRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewChatLogRepository(db *DB, logger *logger.Logger) ChatLogRepository {
	logger.Debug().Msg("creating chat log repository")
	return &chatLogRepository{
		db:     db,
		logger: logger,
	}
}

// CreateChatLog inserts the exchange and returns it with ID and timestamps set.
func (r *chatLogRepository) CreateChatLog(ctx context.Context, entry models.ChatLogEntry) (models.ChatLogEntry, error) {
	log := logger.FromContext(ctx)

	err := r.db.QueryRowContext(ctx, createChatLog,
		entry.UserID,
		entry.Email,
		entry.FirstName,
		entry.LastName,
		entry.Prompt,
		entry.Response,
	).Scan(&entry.ID, &entry.CreatedAt, &entry.UpdatedAt)
	if err != nil {
		log.Err(err).Str("func", "*chatLogRepository.CreateChatLog").Int64("user_id", entry.UserID).Msg("error saving chat log")
		return models.ChatLogEntry{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return entry, nil
}

func (r *chatLogRepository) FindChatLogByID(ctx context.Context, id int64) (models.ChatLogEntry, error) {
	log := logger.FromContext(ctx)

	var entry models.ChatLogEntry
	err := r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, findChatLogByID, id).Scan(
			&entry.ID,
			&entry.UserID,
			&entry.Email,
			&entry.FirstName,
			&entry.LastName,
			&entry.Prompt,
			&entry.Response,
			&entry.CreatedAt,
			&entry.UpdatedAt,
		)
	})

	switch {
	case err == nil:
		return entry, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.ChatLogEntry{}, ErrChatLogNotFound
	default:
		log.Err(err).Str("func", "*chatLogRepository.FindChatLogByID").Int64("id", id).Msg("error reading chat log")
		return models.ChatLogEntry{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}
