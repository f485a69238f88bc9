package store

import "github.com/MKhiriev/visa-assistant/internal/logger"

// Storages aggregates the repositories the services depend on.
type Storages struct {
	UserRepository        UserRepository
	AccessTokenRepository AccessTokenRepository
	ChatLogRepository     ChatLogRepository
}

// NewStorages builds all PostgreSQL repositories on top of db.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:        NewUserRepository(db, log),
		AccessTokenRepository: NewAccessTokenRepository(db, log),
		ChatLogRepository:     NewChatLogRepository(db, log),
	}
}
