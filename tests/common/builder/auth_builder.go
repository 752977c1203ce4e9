//go:build unit || e2e

package builder

import (
	"storefront-cart/internal/domain/auth"
	reqdto "storefront-cart/internal/handler/dto/request"
)

type AuthBuilder struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Email:     "test@example.com",
		Password:  "password123",
		FirstName: "Taro",
		LastName:  "Yamada",
	}
}

func (a *AuthBuilder) WithEmail(email string) *AuthBuilder {
	a.Email = email
	return a
}

func (a *AuthBuilder) WithPassword(password string) *AuthBuilder {
	a.Password = password
	return a
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildRegisterDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Email:     a.Email,
		Password:  a.Password,
		FirstName: a.FirstName,
		LastName:  a.LastName,
	}
}

func (a *AuthBuilder) MustBuildCredentials() auth.Credentials {
	creds, err := auth.NewCredentials(a.Email, a.Password)
	if err != nil {
		panic(err)
	}
	return creds
}
