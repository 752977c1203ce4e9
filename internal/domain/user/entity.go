package user

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrEmptyName = errors.New("first and last name are required")

// User is a registered storefront customer.
type User struct {
	id           uuid.UUID
	email        Email
	firstName    string
	lastName     string
	passwordHash string
	createdAt    time.Time
}

func NewUser(email Email, firstName, lastName, passwordHash string, now time.Time) (*User, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	if firstName == "" || lastName == "" {
		return nil, ErrEmptyName
	}
	return &User{
		id:           uuid.New(),
		email:        email,
		firstName:    firstName,
		lastName:     lastName,
		passwordHash: passwordHash,
		createdAt:    now,
	}, nil
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Email() Email         { return u.email }
func (u *User) FirstName() string    { return u.firstName }
func (u *User) LastName() string     { return u.lastName }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) CreatedAt() time.Time { return u.createdAt }

// Rename updates the display name, keeping the old value for blank input.
func (u *User) Rename(firstName, lastName string) {
	if f := strings.TrimSpace(firstName); f != "" {
		u.firstName = f
	}
	if l := strings.TrimSpace(lastName); l != "" {
		u.lastName = l
	}
}

// Reconstruct rebuilds a stored user without re-validating it.
func Reconstruct(id uuid.UUID, email Email, firstName, lastName, passwordHash string, createdAt time.Time) *User {
	return &User{
		id:           id,
		email:        email,
		firstName:    firstName,
		lastName:     lastName,
		passwordHash: passwordHash,
		createdAt:    createdAt,
	}
}
