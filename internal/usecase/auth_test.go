//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"storefront-cart/internal/domain/user"
	"storefront-cart/internal/infra"
	"storefront-cart/internal/pkg/clock"
	"storefront-cart/internal/pkg/errs"
	"storefront-cart/internal/pkg/jwt"
	"storefront-cart/internal/pkg/password"
	"storefront-cart/internal/usecase"
	"storefront-cart/tests/common/builder"
	usecasemock "storefront-cart/tests/mock/usecase"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthUseCaseTestSuite struct {
	suite.Suite
	ctx        context.Context
	mockCtrl   *gomock.Controller
	userRepo   *usecasemock.MockUserRepository
	jwtService *jwt.Service
	useCase    usecase.AuthUseCase
	now        time.Time
}

func (s *AuthUseCaseTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.userRepo = usecasemock.NewMockUserRepository(s.mockCtrl)
	s.jwtService = jwt.NewService("test-secret", time.Hour)
	s.now = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	s.useCase = usecase.NewAuthUseCase(s.userRepo, s.jwtService, clock.NewMockClock(s.now))
}

func (s *AuthUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthUseCaseSuite(t *testing.T) {
	suite.Run(t, new(AuthUseCaseTestSuite))
}

func notFoundUser() error {
	return infra.WrapRepoErr(discardLogger(), infra.KindNotFound, "user not found", nil)
}

func (s *AuthUseCaseTestSuite) TestGuestSession() {
	s.Run("カートキーが無ければ新しく発行する", func() {
		result, err := s.useCase.GuestSession(s.ctx, "")

		s.Require().NoError(err)
		s.NotEmpty(result.Session.CartKey)
		s.Equal(jwt.KindGuest, result.Session.Kind)
		s.Nil(result.User)

		claims, err := s.jwtService.ValidateToken(result.Token)
		s.Require().NoError(err)
		s.Equal(result.Session.CartKey, claims.CartKey)
	})

	s.Run("既存のカートキーを引き継ぐ", func() {
		result, err := s.useCase.GuestSession(s.ctx, "existing-cart")

		s.Require().NoError(err)
		s.Equal("existing-cart", result.Session.CartKey)
	})
}

func (s *AuthUseCaseTestSuite) TestRegister() {
	params := func() usecase.RegisterParams {
		return usecase.RegisterParams{
			Credentials: builder.NewAuthBuilder().MustBuildCredentials(),
			FirstName:   "Hanako",
			LastName:    "Sato",
		}
	}

	s.Run("登録するとユーザーとしてカートを引き継いだトークンを返す", func() {
		s.userRepo.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(nil, notFoundUser())
		var created *user.User
		s.userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u *user.User) error {
			created = u
			return nil
		})

		result, err := s.useCase.Register(s.ctx, params(), "guest-cart")

		s.Require().NoError(err)
		s.Require().NotNil(created)
		s.Equal(jwt.KindUser, result.Session.Kind)
		s.Equal("guest-cart", result.Session.CartKey)
		s.Equal(created.ID().String(), result.Session.Subject)
		s.Equal("Hanako", result.User.FirstName)
		s.Equal(s.now, result.User.CreatedAt)
		s.NoError(password.ComparePassword(created.PasswordHash(), "password123"))

		id, ok := result.Session.UserID()
		s.True(ok)
		s.Equal(created.ID(), id)
	})

	s.Run("登録済みのメールはErrEmailAlreadyExists", func() {
		existing, err := builder.NewUserBuilder().BuildDomain()
		s.Require().NoError(err)
		s.userRepo.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(existing, nil)

		_, err = s.useCase.Register(s.ctx, params(), "")

		s.ErrorIs(err, errs.ErrEmailAlreadyExists)
	})

	s.Run("作成時の一意制約違反もErrEmailAlreadyExists", func() {
		s.userRepo.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(nil, notFoundUser())
		s.userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr(discardLogger(), infra.KindDuplicateKey, "email taken", nil))

		_, err := s.useCase.Register(s.ctx, params(), "")

		s.ErrorIs(err, errs.ErrEmailAlreadyExists)
	})

	s.Run("空の名前はErrDomainValidation", func() {
		p := params()
		p.FirstName = ""
		s.userRepo.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(nil, notFoundUser())

		_, err := s.useCase.Register(s.ctx, p, "")

		s.True(errs.Is(err, errs.ErrDomainValidation))
	})
}

func (s *AuthUseCaseTestSuite) TestLogin() {
	hash, err := password.HashPassword("password123")
	s.Require().NoError(err)
	registered, err := builder.NewUserBuilder().WithPasswordHash(hash).BuildDomain()
	s.Require().NoError(err)

	s.Run("正しい資格情報でログインできる", func() {
		s.userRepo.EXPECT().FindByEmail(gomock.Any(), registered.Email()).Return(registered, nil)

		result, err := s.useCase.Login(s.ctx, builder.NewAuthBuilder().MustBuildCredentials(), "cart-1")

		s.Require().NoError(err)
		s.Equal(registered.ID().String(), result.Session.Subject)
		s.Equal("cart-1", result.Session.CartKey)
		s.Equal(registered.Email().Value(), result.User.Email)
	})

	s.Run("パスワード違いはErrInvalidCredentials", func() {
		s.userRepo.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(registered, nil)

		_, err := s.useCase.Login(s.ctx, builder.NewAuthBuilder().WithPassword("wrongpass1").MustBuildCredentials(), "")

		s.ErrorIs(err, errs.ErrInvalidCredentials)
	})

	s.Run("未登録のメールもErrInvalidCredentials", func() {
		s.userRepo.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(nil, notFoundUser())

		_, err := s.useCase.Login(s.ctx, builder.NewAuthBuilder().MustBuildCredentials(), "")

		s.ErrorIs(err, errs.ErrInvalidCredentials)
	})

	s.Run("ストレージ障害はErrStorageOperationFailed", func() {
		s.userRepo.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapRepoErr(discardLogger(), infra.KindDBFailure, "lookup failed", errors.New("boom")))

		_, err := s.useCase.Login(s.ctx, builder.NewAuthBuilder().MustBuildCredentials(), "")

		s.True(errs.Is(err, errs.ErrStorageOperationFailed))
	})
}

func (s *AuthUseCaseTestSuite) TestGetCurrentUser() {
	s.Run("存在しないユーザーはErrUserNotFound", func() {
		registered, err := builder.NewUserBuilder().BuildDomain()
		s.Require().NoError(err)
		s.userRepo.EXPECT().FindByID(gomock.Any(), registered.ID()).Return(nil, notFoundUser())

		_, err = s.useCase.GetCurrentUser(s.ctx, registered.ID())

		s.ErrorIs(err, errs.ErrUserNotFound)
	})
}
