//go:build unit || e2e

package builder

import (
	"time"

	"storefront-cart/internal/domain/user"
	"storefront-cart/internal/usecase"
)

type UserBuilder struct {
	Email        string
	FirstName    string
	LastName     string
	PasswordHash string
	CreatedAt    time.Time
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		Email:        "test@example.com",
		FirstName:    "Taro",
		LastName:     "Yamada",
		PasswordHash: "hashed_password",
		CreatedAt:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}
	return user.NewUser(email, u.FirstName, u.LastName, u.PasswordHash, u.CreatedAt)
}

func (u *UserBuilder) BuildView() *usecase.UserView {
	usr, err := u.BuildDomain()
	if err != nil {
		panic(err)
	}
	return usecase.NewUserView(usr)
}

// Fluent builder methods
func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithName(first, last string) *UserBuilder {
	u.FirstName = first
	u.LastName = last
	return u
}

func (u *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	u.PasswordHash = hash
	return u
}
