package models

import "time"

// User represents an account of the assistant.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the internal unique identifier of the user, assigned by the database.
	ID int64 `json:"id"`

	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`

	// Email is unique across all users and is used as the login identifier.
	Email string `json:"email"`

	// Password holds the bcrypt hash of the user's password.
	// It is never serialized.
	Password string `json:"-"`

	// Optional profile fields. A nil value is stored as NULL.
	Age         *int    `json:"age"`
	Location    *string `json:"location"`
	Description *string `json:"description"`

	// Image is the public URL of the profile image, if any.
	Image *string `json:"image"`

	// RememberToken is the keyed digest of the latest login token.
	RememberToken *string `json:"-"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Profile returns the public projection of the user returned by the API.
func (u User) Profile() Profile {
	return Profile{
		ID:          u.ID,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Email:       u.Email,
		Age:         u.Age,
		Location:    u.Location,
		Description: u.Description,
		Image:       u.Image,
	}
}

// Profile is the user projection exposed by login, profile read and profile edit.
type Profile struct {
	ID          int64   `json:"id"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	Email       string  `json:"email"`
	Age         *int    `json:"age"`
	Location    *string `json:"location"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
}

// ProfileUpdate carries the validated subset of profile fields to persist.
// Only non-nil fields are written (partial update).
type ProfileUpdate struct {
	FirstName   *string
	LastName    *string
	Location    *string
	Description *string
	Age         *int
	Image       *string
}

// IsEmpty reports whether the update has no fields to apply.
func (p ProfileUpdate) IsEmpty() bool {
	return p.FirstName == nil && p.LastName == nil && p.Location == nil &&
		p.Description == nil && p.Age == nil && p.Image == nil
}
