package usecase

import (
	"time"

	"storefront-cart/internal/domain/user"
	"storefront-cart/internal/pkg/jwt"

	"github.com/google/uuid"
)

type UserView struct {
	ID        uuid.UUID
	Email     string
	FirstName string
	LastName  string
	CreatedAt time.Time
}

func NewUserView(u *user.User) *UserView {
	return &UserView{
		ID:        u.ID(),
		Email:     u.Email().Value(),
		FirstName: u.FirstName(),
		LastName:  u.LastName(),
		CreatedAt: u.CreatedAt(),
	}
}

// Session is the validated identity behind a request.
type Session struct {
	Subject string
	Kind    jwt.SessionKind
	CartKey string
}

// UserID is set only for registered users.
func (s Session) UserID() (uuid.UUID, bool) {
	if s.Kind != jwt.KindUser {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(s.Subject)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

type AuthResult struct {
	Token   string
	Session Session
	User    *UserView
}
