package repository

import (
	"context"

	"kiosk/internal/domain/model"
)

type CategoryRepository interface {
	FindByID(ctx context.Context, categoryID string) (model.Category, error)
	FindByName(ctx context.Context, name string) (model.Category, error)
	List(ctx context.Context) ([]model.Category, error)
	Create(ctx context.Context, category model.Category) (model.Category, error)
	Update(ctx context.Context, category model.Category) (model.Category, error)
	DeleteByID(ctx context.Context, categoryID string) error
}
