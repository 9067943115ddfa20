package usecase

import (
	"context"
	"errors"
	"net/http"

	"kiosk/internal/domain/model"
	repo "kiosk/internal/repository"
	"kiosk/internal/validator"
)

type MenuItemValidator interface {
	Validate(ctx context.Context, item model.MenuItem, existing bool) validator.Result
}

// メニュー管理（スタッフ向けCRUD＋公開側の一覧）
type MenuUsecase struct {
	menuItems repo.MenuItemRepository
	validator MenuItemValidator
}

func NewMenuUsecase(menuItems repo.MenuItemRepository, v MenuItemValidator) *MenuUsecase {
	return &MenuUsecase{menuItems: menuItems, validator: v}
}

func (u *MenuUsecase) List(ctx context.Context) ([]model.MenuItem, error) {
	items, err := u.menuItems.List(ctx)
	if err != nil {
		return []model.MenuItem{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}

func (u *MenuUsecase) ListByCategory(ctx context.Context, categoryID string) ([]model.MenuItem, error) {
	if categoryID == "" {
		return []model.MenuItem{}, NewHTTPError(http.StatusBadRequest, "invalid category_id")
	}
	items, err := u.menuItems.ListByCategory(ctx, categoryID)
	if err != nil {
		return []model.MenuItem{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}

func (u *MenuUsecase) Get(ctx context.Context, itemID string) (model.MenuItem, error) {
	item, err := u.menuItems.FindByID(ctx, itemID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.MenuItem{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.MenuItem{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return item, nil
}

func (u *MenuUsecase) Create(ctx context.Context, item model.MenuItem) (model.MenuItem, error) {
	if item.DefaultPortionSize == "" {
		item.DefaultPortionSize = model.PortionMedium
	}

	if res := u.validator.Validate(ctx, item, false); !res.Valid {
		return model.MenuItem{}, NewValidationError(res.Errors)
	}

	created, err := u.menuItems.Create(ctx, item)
	if err != nil {
		return model.MenuItem{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return created, nil
}

func (u *MenuUsecase) Update(ctx context.Context, item model.MenuItem) (model.MenuItem, error) {
	if item.ID == "" {
		return model.MenuItem{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if res := u.validator.Validate(ctx, item, true); !res.Valid {
		return model.MenuItem{}, NewValidationError(res.Errors)
	}

	updated, err := u.menuItems.Update(ctx, item)
	if errors.Is(err, repo.ErrNotFound) {
		return model.MenuItem{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.MenuItem{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return updated, nil
}

func (u *MenuUsecase) Delete(ctx context.Context, itemID string) error {
	if itemID == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	err := u.menuItems.DeleteByID(ctx, itemID)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
