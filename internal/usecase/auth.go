package usecase

//go:generate mockgen -source=auth.go -destination=../../tests/mock/usecase/auth_mock.go -package=usecasemock

import (
	"context"

	"storefront-cart/internal/domain/auth"
	"storefront-cart/internal/domain/user"
	"storefront-cart/internal/infra"
	"storefront-cart/internal/pkg/clock"
	"storefront-cart/internal/pkg/errs"
	"storefront-cart/internal/pkg/jwt"
	"storefront-cart/internal/pkg/password"

	"github.com/google/uuid"
)

type RegisterParams struct {
	Credentials auth.Credentials
	FirstName   string
	LastName    string
}

// AuthUseCase issues session tokens. cartKey carries the caller's current
// cart over to the new session; an empty key starts a fresh cart.
type AuthUseCase interface {
	GuestSession(ctx context.Context, cartKey string) (*AuthResult, error)
	Register(ctx context.Context, params RegisterParams, cartKey string) (*AuthResult, error)
	Login(ctx context.Context, credentials auth.Credentials, cartKey string) (*AuthResult, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserView, error)
}

type authUseCaseImpl struct {
	userRepo   UserRepository
	jwtService *jwt.Service
	clock      clock.Clock
}

func NewAuthUseCase(userRepo UserRepository, jwtService *jwt.Service, clock clock.Clock) AuthUseCase {
	return &authUseCaseImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
		clock:      clock,
	}
}

func (a *authUseCaseImpl) GuestSession(_ context.Context, cartKey string) (*AuthResult, error) {
	return a.issue(uuid.NewString(), jwt.KindGuest, cartKey, nil)
}

func (a *authUseCaseImpl) Register(ctx context.Context, params RegisterParams, cartKey string) (*AuthResult, error) {
	existing, err := a.userRepo.FindByEmail(ctx, params.Credentials.Email())
	if err != nil && !infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(errs.Wrap(err, "failed to look up email"), errs.ErrStorageOperationFailed)
	}
	if existing != nil {
		return nil, errs.ErrEmailAlreadyExists
	}

	hash, err := password.HashPassword(params.Credentials.Password().Value())
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}

	newUser, err := user.NewUser(params.Credentials.Email(), params.FirstName, params.LastName, hash, a.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if err := a.userRepo.Create(ctx, newUser); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.ErrEmailAlreadyExists
		}
		return nil, errs.Mark(errs.Wrap(err, "failed to create user"), errs.ErrStorageOperationFailed)
	}

	return a.issue(newUser.ID().String(), jwt.KindUser, cartKey, NewUserView(newUser))
}

func (a *authUseCaseImpl) Login(ctx context.Context, credentials auth.Credentials, cartKey string) (*AuthResult, error) {
	found, err := a.userRepo.FindByEmail(ctx, credentials.Email())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrInvalidCredentials
		}
		return nil, errs.Mark(errs.Wrap(err, "failed to find user"), errs.ErrStorageOperationFailed)
	}

	if err := password.ComparePassword(found.PasswordHash(), credentials.Password().Value()); err != nil {
		return nil, errs.ErrInvalidCredentials
	}

	return a.issue(found.ID().String(), jwt.KindUser, cartKey, NewUserView(found))
}

func (a *authUseCaseImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserView, error) {
	found, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, errs.Mark(errs.Wrap(err, "failed to find user"), errs.ErrStorageOperationFailed)
	}
	return NewUserView(found), nil
}

func (a *authUseCaseImpl) issue(subject string, kind jwt.SessionKind, cartKey string, view *UserView) (*AuthResult, error) {
	if cartKey == "" {
		cartKey = uuid.NewString()
	}
	token, err := a.jwtService.GenerateToken(subject, kind, cartKey)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrTokenGeneration)
	}
	return &AuthResult{
		Token:   token,
		Session: Session{Subject: subject, Kind: kind, CartKey: cartKey},
		User:    view,
	}, nil
}
