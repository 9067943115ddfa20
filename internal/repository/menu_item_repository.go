package repository

import (
	"context"

	"kiosk/internal/domain/model"
)

type MenuItemRepository interface {
	FindByID(ctx context.Context, itemID string) (model.MenuItem, error)
	FindByName(ctx context.Context, name string) (model.MenuItem, error)
	List(ctx context.Context) ([]model.MenuItem, error)
	ListByCategory(ctx context.Context, categoryID string) ([]model.MenuItem, error)
	Create(ctx context.Context, item model.MenuItem) (model.MenuItem, error)
	Update(ctx context.Context, item model.MenuItem) (model.MenuItem, error)
	DeleteByID(ctx context.Context, itemID string) error
}
