package usecase_test

import (
	"context"
	"testing"
	"time"

	"kiosk/internal/domain/model"
	repo "kiosk/internal/repository"
	"kiosk/internal/usecase"
	"kiosk/internal/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

type issuerMock struct{ mock.Mock }

func (m *issuerMock) Issue(userID string, role model.Role, now time.Time) (string, time.Time, error) {
	args := m.Called(userID, role, now)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func newAuthUsecase(users *UserRepoMock, issuer *issuerMock) *usecase.AuthUsecase {
	return usecase.NewAuthUsecase(users, validator.NewUserValidator(users), issuer)
}

func TestAuthUsecase_Register_HashesPassword(t *testing.T) {
	users := new(UserRepoMock)
	issuer := new(issuerMock)

	users.On("FindByUsername", mock.Anything, "taras").Return(model.User{}, repo.ErrNotFound)
	users.On("FindByEmail", mock.Anything, "taras@example.com").Return(model.User{}, repo.ErrNotFound)
	users.On("Create", mock.Anything, mock.MatchedBy(func(u model.User) bool {
		if u.PasswordHash == "" || u.PasswordHash == "secret_pass_1" {
			return false
		}
		return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret_pass_1")) == nil
	})).Return(model.User{ID: "u1", Username: "taras", Role: model.RoleUser}, nil)

	uc := newAuthUsecase(users, issuer)
	out, err := uc.Register(context.Background(), usecase.RegisterInput{
		Username: "taras",
		Email:    "taras@example.com",
		Password: "secret_pass_1",
	})
	assert.NoError(t, err)
	assert.Equal(t, "u1", out.ID)
	assert.Equal(t, model.RoleUser, out.Role)

	users.AssertExpectations(t)
}

// 検証は集約：短いパスワードと不正なusernameが同時に報告される
func TestAuthUsecase_Register_AggregatedValidation(t *testing.T) {
	users := new(UserRepoMock)
	issuer := new(issuerMock)

	users.On("FindByUsername", mock.Anything, "a!").Return(model.User{}, repo.ErrNotFound)
	users.On("FindByEmail", mock.Anything, "bad").Return(model.User{}, repo.ErrNotFound)

	uc := newAuthUsecase(users, issuer)
	_, err := uc.Register(context.Background(), usecase.RegisterInput{
		Username: "a!",
		Email:    "bad",
		Password: "short",
	})

	ve, ok := usecase.AsValidationError(err)
	assert.True(t, ok)
	assert.GreaterOrEqual(t, len(ve.Messages), 3)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthUsecase_Register_DuplicateUsername(t *testing.T) {
	users := new(UserRepoMock)
	issuer := new(issuerMock)

	users.On("FindByUsername", mock.Anything, "taras").Return(model.User{ID: "other"}, nil)
	users.On("FindByEmail", mock.Anything, "taras@example.com").Return(model.User{}, repo.ErrNotFound)

	uc := newAuthUsecase(users, issuer)
	_, err := uc.Register(context.Background(), usecase.RegisterInput{
		Username: "taras",
		Email:    "taras@example.com",
		Password: "secret_pass_1",
	})
	assertErrContains(t, err, "already taken")
}

func TestAuthUsecase_Login_Success(t *testing.T) {
	users := new(UserRepoMock)
	issuer := new(issuerMock)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret_pass_1"), bcrypt.MinCost)
	assert.NoError(t, err)

	users.On("FindByUsername", mock.Anything, "taras").Return(model.User{
		ID: "u1", Username: "taras", Role: model.RoleUser, PasswordHash: string(hash),
	}, nil)

	expiresAt := time.Now().Add(15 * time.Minute)
	issuer.On("Issue", "u1", model.RoleUser, mock.Anything).Return("signed-token", expiresAt, nil)

	uc := newAuthUsecase(users, issuer)
	out, err := uc.Login(context.Background(), usecase.LoginInput{
		Username: "taras",
		Password: "secret_pass_1",
	})
	assert.NoError(t, err)
	assert.Equal(t, "signed-token", out.AccessToken)
	assert.Equal(t, "u1", out.User.ID)

	issuer.AssertExpectations(t)
}

func TestAuthUsecase_Login_WrongPassword(t *testing.T) {
	users := new(UserRepoMock)
	issuer := new(issuerMock)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret_pass_1"), bcrypt.MinCost)
	assert.NoError(t, err)

	users.On("FindByUsername", mock.Anything, "taras").Return(model.User{
		ID: "u1", PasswordHash: string(hash),
	}, nil)

	uc := newAuthUsecase(users, issuer)
	_, err = uc.Login(context.Background(), usecase.LoginInput{
		Username: "taras",
		Password: "wrong_password",
	})
	assertErrContains(t, err, "invalid credentials")
	issuer.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything, mock.Anything)
}

// 存在しないユーザーも同じメッセージ（存在の有無を漏らさない）
func TestAuthUsecase_Login_UnknownUser(t *testing.T) {
	users := new(UserRepoMock)
	issuer := new(issuerMock)

	users.On("FindByUsername", mock.Anything, "ghost").Return(model.User{}, repo.ErrNotFound)

	uc := newAuthUsecase(users, issuer)
	_, err := uc.Login(context.Background(), usecase.LoginInput{
		Username: "ghost",
		Password: "whatever_pass",
	})
	assertErrContains(t, err, "invalid credentials")
}
