package response

import (
	"time"

	"storefront-cart/internal/usecase"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	CreatedAt time.Time `json:"createdAt"`
}

type AuthResponse struct {
	AccessToken string        `json:"access_token"`
	SessionKind string        `json:"sessionKind"`
	User        *UserResponse `json:"user,omitempty"`
}

func FromUserView(v *usecase.UserView) *UserResponse {
	if v == nil {
		return nil
	}
	return &UserResponse{
		ID:        v.ID,
		Email:     v.Email,
		FirstName: v.FirstName,
		LastName:  v.LastName,
		CreatedAt: v.CreatedAt,
	}
}

func FromAuthResult(r *usecase.AuthResult) AuthResponse {
	return AuthResponse{
		AccessToken: r.Token,
		SessionKind: string(r.Session.Kind),
		User:        FromUserView(r.User),
	}
}
