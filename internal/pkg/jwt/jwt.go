package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

type SessionKind string

const (
	KindGuest SessionKind = "guest"
	KindUser  SessionKind = "user"
)

func (k SessionKind) IsValid() bool {
	return k == KindGuest || k == KindUser
}

// Claims identify a storefront session. Subject is the user id for
// registered users and a random id for guests. CartKey survives login so a
// guest keeps their cart after signing in.
type Claims struct {
	Kind    string `json:"kind"`
	CartKey string `json:"cart_key"`
	jwt.RegisteredClaims
}

type Service struct {
	secretKey     []byte
	tokenDuration time.Duration
}

func NewService(secretKey string, tokenDuration time.Duration) *Service {
	return &Service{
		secretKey:     []byte(secretKey),
		tokenDuration: tokenDuration,
	}
}

func (s *Service) TokenDuration() time.Duration {
	return s.tokenDuration
}

func (s *Service) GenerateToken(subject string, kind SessionKind, cartKey string) (string, error) {
	if subject == "" || cartKey == "" || !kind.IsValid() {
		return "", ErrInvalidToken
	}
	now := time.Now()
	claims := Claims{
		Kind:    string(kind),
		CartKey: cartKey,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenDuration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secretKey, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" || claims.CartKey == "" || !SessionKind(claims.Kind).IsValid() {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
