package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/visa-assistant/internal/logger"
	"github.com/MKhiriev/visa-assistant/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userRowColumns = []string{
	"id", "first_name", "last_name", "email", "password", "age", "location",
	"description", "image", "remember_token", "created_at", "updated_at",
}

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return &DB{DB: db, logger: logger.Nop(), errorClassificator: NewPostgresErrorClassifier()}, mock
}

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &userRepository{db: db, logger: logger.Nop()}, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func ptr[T any](v T) *T { return &v }

// ─────────────────────────────────────────────────────────────────────────────
// CreateUser
// ─────────────────────────────────────────────────────────────────────────────

func TestCreateUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	user := models.User{FirstName: "Amina", LastName: "Karimova", Email: "amina@example.com", Password: "$2a$10$hash"}
	now := time.Now()

	rows := sqlmock.NewRows(userRowColumns).
		AddRow(1, user.FirstName, user.LastName, user.Email, user.Password, nil, nil, nil, nil, nil, now, now)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.FirstName, user.LastName, user.Email, user.Password).
		WillReturnRows(rows)

	created, err := repo.CreateUser(context.Background(), user)
	require.NoError(t, err)

	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, user.Email, created.Email)
	assert.Nil(t, created.Age)
	assert.Nil(t, created.Image)
	assert.Nil(t, created.RememberToken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(context.Background(), models.User{Email: "taken@example.com"})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(context.Background(), models.User{Email: "a@b.co"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected DB error")
	assert.NotErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestCreateUser_ScanError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1)) // intentionally wrong shape

	_, err := repo.CreateUser(context.Background(), models.User{Email: "a@b.co"})
	assert.Error(t, err)
}

// ─────────────────────────────────────────────────────────────────────────────
// FindUserByEmail / FindUserByID
// ─────────────────────────────────────────────────────────────────────────────

func TestFindUserByEmail_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	now := time.Now()

	rows := sqlmock.NewRows(userRowColumns).
		AddRow(7, "Amina", "Karimova", "amina@example.com", "hash", 34, "Tashkent", "Needs a cardiology visit", "http://localhost/storage/user_images/a.png", "digest", now, now)

	mock.ExpectQuery("SELECT (.+) FROM users WHERE LOWER\\(email\\) = LOWER\\(\\$1\\)").
		WithArgs("Amina@Example.com").
		WillReturnRows(rows)

	found, err := repo.FindUserByEmail(context.Background(), "Amina@Example.com")
	require.NoError(t, err)

	assert.Equal(t, int64(7), found.ID)
	require.NotNil(t, found.Age)
	assert.Equal(t, 34, *found.Age)
	require.NotNil(t, found.Location)
	assert.Equal(t, "Tashkent", *found.Location)
	require.NotNil(t, found.RememberToken)
	assert.Equal(t, "digest", *found.RememberToken)
}

func TestFindUserByEmail_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("ghost@example.com").
		WillReturnRows(sqlmock.NewRows(userRowColumns))

	_, err := repo.FindUserByEmail(context.Background(), "ghost@example.com")
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestFindUserByEmail_UnexpectedError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM users").
		WillReturnError(errors.New("db failure"))

	_, err := repo.FindUserByEmail(context.Background(), "a@b.co")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected DB error")
}

func TestFindUserByID_RetriesTransientError(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM users WHERE id = \\$1").
		WithArgs(int64(3)).
		WillReturnError(pgError(pgerrcode.ConnectionFailure))
	mock.ExpectQuery("SELECT (.+) FROM users WHERE id = \\$1").
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(userRowColumns).
			AddRow(3, "Ali", "Valiev", "ali@example.com", "hash", nil, nil, nil, nil, nil, now, now))

	found, err := repo.FindUserByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "ali@example.com", found.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindUserByID_DoesNotRetryPermanentError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM users WHERE id = \\$1").
		WillReturnError(pgError(pgerrcode.UndefinedTable))

	_, err := repo.FindUserByID(context.Background(), 3)
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ─────────────────────────────────────────────────────────────────────────────
// UpdateProfile
// ─────────────────────────────────────────────────────────────────────────────

func TestUpdateProfile_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	now := time.Now()

	update := models.ProfileUpdate{Age: ptr(35), FirstName: ptr("Amina")}

	mock.ExpectQuery("UPDATE users SET age = \\$1, first_name = \\$2, updated_at = NOW\\(\\) WHERE id = \\$3 RETURNING").
		WithArgs(35, "Amina", int64(7)).
		WillReturnRows(sqlmock.NewRows(userRowColumns).
			AddRow(7, "Amina", "Karimova", "amina@example.com", "hash", 35, nil, nil, nil, nil, now, now))

	updated, err := repo.UpdateProfile(context.Background(), 7, update)
	require.NoError(t, err)
	require.NotNil(t, updated.Age)
	assert.Equal(t, 35, *updated.Age)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateProfile_NoFields(t *testing.T) {
	repo, _ := newTestUserRepo(t)

	_, err := repo.UpdateProfile(context.Background(), 7, models.ProfileUpdate{})
	assert.ErrorIs(t, err, ErrNoFieldsToUpdate)
}

func TestUpdateProfile_UserGone(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("UPDATE users").
		WillReturnRows(sqlmock.NewRows(userRowColumns))

	_, err := repo.UpdateProfile(context.Background(), 7, models.ProfileUpdate{Location: ptr("Bukhara")})
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestUpdateProfile_DBError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("UPDATE users").
		WillReturnError(sql.ErrConnDone)

	_, err := repo.UpdateProfile(context.Background(), 7, models.ProfileUpdate{Location: ptr("Bukhara")})
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

// ─────────────────────────────────────────────────────────────────────────────
// SetRememberToken
// ─────────────────────────────────────────────────────────────────────────────

func TestSetRememberToken(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectExec("UPDATE users SET remember_token").
		WithArgs("digest", int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SetRememberToken(context.Background(), 7, "digest"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetRememberToken_UnknownUser(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectExec("UPDATE users SET remember_token").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.SetRememberToken(context.Background(), 99, "digest"), ErrNoUserWasFound)
}
