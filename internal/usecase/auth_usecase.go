package usecase

import (
	"context"
	"errors"
	"net/http"
	"time"

	"kiosk/internal/domain/model"
	repo "kiosk/internal/repository"
	"kiosk/internal/validator"

	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

type UserValidator interface {
	Validate(ctx context.Context, user model.User, existing bool) validator.Result
}

// JWTの発行はmain側の実装に任せる
type TokenIssuer interface {
	Issue(userID string, role model.Role, now time.Time) (string, time.Time, error)
}

type AuthUsecase struct {
	users         repo.UserRepository
	userValidator UserValidator
	issuer        TokenIssuer
}

func NewAuthUsecase(users repo.UserRepository, userValidator UserValidator, issuer TokenIssuer) *AuthUsecase {
	return &AuthUsecase{users: users, userValidator: userValidator, issuer: issuer}
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

type LoginInput struct {
	Username string
	Password string
}

type TokenOutput struct {
	AccessToken string     `json:"access_token"`
	ExpiresAt   time.Time  `json:"expires_at"`
	User        model.User `json:"user"`
}

func (u *AuthUsecase) Register(ctx context.Context, in RegisterInput) (model.User, error) {
	user := model.User{
		Username:  in.Username,
		Email:     in.Email,
		Role:      model.RoleUser,
		CreatedAt: time.Now(),
	}

	//パスワードはハッシュ前に検証し、他の違反と一緒に返す
	res := validator.PasswordValid(in.Password)
	res.Merge(u.userValidator.Validate(ctx, user, false))
	if !res.Valid {
		return model.User{}, NewValidationError(res.Errors)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return model.User{}, NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	user.PasswordHash = string(hash)

	created, err := u.users.Create(ctx, user)
	if err != nil {
		return model.User{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return created, nil
}

func (u *AuthUsecase) Login(ctx context.Context, in LoginInput) (TokenOutput, error) {
	if in.Username == "" || in.Password == "" {
		return TokenOutput{}, NewHTTPError(http.StatusBadRequest, "username and password are required")
	}

	user, err := u.users.FindByUsername(ctx, in.Username)
	if errors.Is(err, repo.ErrNotFound) {
		//存在の有無は漏らさない
		return TokenOutput{}, NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}
	if err != nil {
		return TokenOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return TokenOutput{}, NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}

	token, expiresAt, err := u.issuer.Issue(user.ID, user.Role, time.Now())
	if err != nil {
		return TokenOutput{}, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return TokenOutput{AccessToken: token, ExpiresAt: expiresAt, User: user}, nil
}
