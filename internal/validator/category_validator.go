package validator

import (
	"context"
	"errors"
	"fmt"

	"kiosk/internal/domain/model"
	"kiosk/internal/repository"
)

type CategoryValidator struct {
	categories repository.CategoryRepository
}

func NewCategoryValidator(categories repository.CategoryRepository) *CategoryValidator {
	return &CategoryValidator{categories: categories}
}

func (v *CategoryValidator) Validate(ctx context.Context, category model.Category, existing bool) Result {
	res := NewResult()

	if existing && category.ID == "" {
		res.Add("category id is required for an existing category")
	}

	if category.Name == "" {
		res.Add("category name is required")
	} else {
		if len([]rune(category.Name)) < minNameLength {
			res.Add(fmt.Sprintf("category name %q must be at least %d characters", category.Name, minNameLength))
		}
		if len([]rune(category.Name)) > maxNameLength {
			res.Add(fmt.Sprintf("category name %q must not exceed %d characters", category.Name, maxNameLength))
		}

		found, err := v.categories.FindByName(ctx, category.Name)
		switch {
		case err == nil:
			if category.ID == "" || found.ID != category.ID {
				res.Add(fmt.Sprintf("category name %q is already used", category.Name))
			}
		case errors.Is(err, repository.ErrNotFound):
		default:
			res.Add("category name uniqueness check failed: db error")
		}
	}

	return res
}
