package request

import (
	"strings"

	"storefront-cart/internal/domain/auth"
	"storefront-cart/internal/usecase"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r *LoginRequest) ToDomain() (auth.Credentials, error) {
	return auth.NewCredentials(r.Email, r.Password)
}

type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"firstName" binding:"required,max=100"`
	LastName  string `json:"lastName" binding:"required,max=100"`
}

func (r *RegisterRequest) ToParams() (usecase.RegisterParams, error) {
	credentials, err := auth.NewCredentials(r.Email, r.Password)
	if err != nil {
		return usecase.RegisterParams{}, err
	}
	return usecase.RegisterParams{
		Credentials: credentials,
		FirstName:   strings.TrimSpace(r.FirstName),
		LastName:    strings.TrimSpace(r.LastName),
	}, nil
}
