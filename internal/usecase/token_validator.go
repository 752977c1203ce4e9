package usecase

//go:generate mockgen -source=token_validator.go -destination=../../tests/mock/usecase/token_validator_mock.go -package=usecasemock

import (
	"storefront-cart/internal/pkg/errs"
	"storefront-cart/internal/pkg/jwt"
)

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (Session, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (Session, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return Session{}, errs.Mark(err, errs.ErrTokenValidation)
	}

	return Session{
		Subject: claims.Subject,
		Kind:    jwt.SessionKind(claims.Kind),
		CartKey: claims.CartKey,
	}, nil
}
