package validator

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"kiosk/internal/domain/model"
	"kiosk/internal/repository"
)

const (
	minUsernameLength = 3
	maxUsernameLength = 50
	minPasswordLength = 8
	maxPasswordLength = 100
	maxEmailLength    = 100
)

var (
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	emailPattern    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// 平文パスワードのチェック（ハッシュ前に呼ぶ）
func PasswordValid(password string) Result {
	res := NewResult()
	if password == "" {
		res.Add("password is required")
		return res
	}
	if len(password) < minPasswordLength {
		res.Add(fmt.Sprintf("password must be at least %d characters", minPasswordLength))
	}
	if len(password) > maxPasswordLength {
		res.Add(fmt.Sprintf("password must not exceed %d characters", maxPasswordLength))
	}
	return res
}

type UserValidator struct {
	users repository.UserRepository
}

func NewUserValidator(users repository.UserRepository) *UserValidator {
	return &UserValidator{users: users}
}

func (v *UserValidator) Validate(ctx context.Context, user model.User, existing bool) Result {
	res := NewResult()

	if existing && user.ID == "" {
		res.Add("user id is required for an existing user")
	}

	if user.Username == "" {
		res.Add("username is required")
	} else {
		if len(user.Username) < minUsernameLength {
			res.Add(fmt.Sprintf("username %q must be at least %d characters", user.Username, minUsernameLength))
		}
		if len(user.Username) > maxUsernameLength {
			res.Add(fmt.Sprintf("username %q must not exceed %d characters", user.Username, maxUsernameLength))
		}
		if !usernamePattern.MatchString(user.Username) {
			res.Add(fmt.Sprintf("username %q may only contain letters, digits and underscores", user.Username))
		}

		found, err := v.users.FindByUsername(ctx, user.Username)
		switch {
		case err == nil:
			if user.ID == "" || found.ID != user.ID {
				res.Add(fmt.Sprintf("username %q is already taken", user.Username))
			}
		case errors.Is(err, repository.ErrNotFound):
		default:
			res.Add("username uniqueness check failed: db error")
		}
	}

	if user.Email == "" {
		res.Add("email is required")
	} else {
		if len(user.Email) > maxEmailLength {
			res.Add(fmt.Sprintf("email must not exceed %d characters", maxEmailLength))
		}
		if !emailPattern.MatchString(user.Email) {
			res.Add(fmt.Sprintf("email %q is not a valid address", user.Email))
		}

		found, err := v.users.FindByEmail(ctx, user.Email)
		switch {
		case err == nil:
			if user.ID == "" || found.ID != user.ID {
				res.Add(fmt.Sprintf("email %q is already registered", user.Email))
			}
		case errors.Is(err, repository.ErrNotFound):
		default:
			res.Add("email uniqueness check failed: db error")
		}
	}

	if user.Role != model.RoleUser && user.Role != model.RoleAdmin {
		res.Add(fmt.Sprintf("role %q is not recognized", user.Role))
	}

	return res
}
