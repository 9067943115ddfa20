package usecase

import (
	"context"
	"errors"
	"net/http"

	"kiosk/internal/domain/model"
	repo "kiosk/internal/repository"
	"kiosk/internal/validator"
)

type CategoryValidator interface {
	Validate(ctx context.Context, category model.Category, existing bool) validator.Result
}

// カテゴリ管理（スタッフ向けCRUD）
type CategoryUsecase struct {
	categories repo.CategoryRepository
	validator  CategoryValidator
}

func NewCategoryUsecase(categories repo.CategoryRepository, v CategoryValidator) *CategoryUsecase {
	return &CategoryUsecase{categories: categories, validator: v}
}

func (u *CategoryUsecase) List(ctx context.Context) ([]model.Category, error) {
	categories, err := u.categories.List(ctx)
	if err != nil {
		return []model.Category{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return categories, nil
}

func (u *CategoryUsecase) Create(ctx context.Context, category model.Category) (model.Category, error) {
	if res := u.validator.Validate(ctx, category, false); !res.Valid {
		return model.Category{}, NewValidationError(res.Errors)
	}

	created, err := u.categories.Create(ctx, category)
	if err != nil {
		return model.Category{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return created, nil
}

func (u *CategoryUsecase) Update(ctx context.Context, category model.Category) (model.Category, error) {
	if category.ID == "" {
		return model.Category{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if res := u.validator.Validate(ctx, category, true); !res.Valid {
		return model.Category{}, NewValidationError(res.Errors)
	}

	updated, err := u.categories.Update(ctx, category)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Category{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Category{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return updated, nil
}

func (u *CategoryUsecase) Delete(ctx context.Context, categoryID string) error {
	if categoryID == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	err := u.categories.DeleteByID(ctx, categoryID)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
