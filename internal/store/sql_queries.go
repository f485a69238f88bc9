package store

import (
	"fmt"

	"github.com/MKhiriev/visa-assistant/models"
	sq "github.com/Masterminds/squirrel"
)

const userColumns = `id, first_name, last_name, email, password, age, location, description, image, remember_token, created_at, updated_at`

const (
	createUser = `INSERT INTO users (first_name, last_name, email, password)
    VALUES ($1, $2, $3, $4)
    RETURNING ` + userColumns + `;`

	findUserByEmail = `SELECT ` + userColumns + `
    FROM users
    WHERE LOWER(email) = LOWER($1);`

	findUserByID = `SELECT ` + userColumns + `
    FROM users
    WHERE id = $1;`

	setRememberToken = `UPDATE users
    SET remember_token = $1, updated_at = NOW()
    WHERE id = $2;`

	createAccessToken = `INSERT INTO access_tokens (id, user_id, name)
    VALUES ($1, $2, $3);`

	findAccessToken = `SELECT id, user_id, name, created_at
    FROM access_tokens
    WHERE id = $1;`

	deleteAccessToken = `DELETE FROM access_tokens
    WHERE id = $1;`

	createChatLog = `INSERT INTO ai_chat_log (user_id, email, first_name, last_name, prompt, response)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING id, created_at, updated_at;`

	findChatLogByID = `SELECT id, user_id, email, first_name, last_name, prompt, response, created_at, updated_at
    FROM ai_chat_log
    WHERE id = $1;`
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildUpdateProfileQuery builds an UPDATE of the users row that sets only
// the non-nil fields of update and returns the updated row.
func buildUpdateProfileQuery(userID int64, update models.ProfileUpdate) (string, []any, error) {
	if update.IsEmpty() {
		return "", nil, ErrNoFieldsToUpdate
	}

	set := sq.Eq{}
	if update.FirstName != nil {
		set["first_name"] = *update.FirstName
	}
	if update.LastName != nil {
		set["last_name"] = *update.LastName
	}
	if update.Age != nil {
		set["age"] = *update.Age
	}
	if update.Location != nil {
		set["location"] = *update.Location
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.Image != nil {
		set["image"] = *update.Image
	}

	query, args, err := psql.Update(models.User{}.TableName()).
		SetMap(set).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": userID}).
		Suffix("RETURNING " + userColumns).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
