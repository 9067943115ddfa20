package repository

import (
	"context"

	"kiosk/internal/domain/model"
)

// 保存・取得を約束
type UserRepository interface {
	FindByID(ctx context.Context, userID string) (model.User, error)
	FindByUsername(ctx context.Context, username string) (model.User, error)
	FindByEmail(ctx context.Context, email string) (model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Create(ctx context.Context, user model.User) (model.User, error)
	Update(ctx context.Context, user model.User) (model.User, error)
	DeleteByID(ctx context.Context, userID string) error
}
