package validator

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"kiosk/internal/domain/model"
	"kiosk/internal/repository"

	"github.com/shopspring/decimal"
)

const (
	minNameLength        = 2
	maxNameLength        = 100
	maxDescriptionLength = 500
)

// 文字・空白・ハイフンのみ（メニュー名）
var menuNamePattern = regexp.MustCompile(`^[\p{L}\s-]+$`)

type MenuItemValidator struct {
	menuItems  repository.MenuItemRepository
	categories repository.CategoryRepository
}

func NewMenuItemValidator(menuItems repository.MenuItemRepository, categories repository.CategoryRepository) *MenuItemValidator {
	return &MenuItemValidator{menuItems: menuItems, categories: categories}
}

func MenuItemNameValid(name string) Result {
	res := NewResult()
	if name == "" {
		res.Add("menu item name is required")
		return res
	}
	if len([]rune(name)) < minNameLength {
		res.Add(fmt.Sprintf("name %q must be at least %d characters", name, minNameLength))
	}
	if len([]rune(name)) > maxNameLength {
		res.Add(fmt.Sprintf("name %q must not exceed %d characters", name, maxNameLength))
	}
	if !menuNamePattern.MatchString(name) {
		res.Add(fmt.Sprintf("name %q may only contain letters, spaces and hyphens", name))
	}
	return res
}

func (v *MenuItemValidator) Validate(ctx context.Context, item model.MenuItem, existing bool) Result {
	res := NewResult()

	if existing && item.ID == "" {
		res.Add("menu item id is required for an existing menu item")
	}

	res.Merge(MenuItemNameValid(item.Name))

	//名前の一意性（自分自身は除外）
	if item.Name != "" {
		found, err := v.menuItems.FindByName(ctx, item.Name)
		switch {
		case err == nil:
			if item.ID == "" || found.ID != item.ID {
				res.Add(fmt.Sprintf("name %q is already used by another menu item", item.Name))
			}
		case errors.Is(err, repository.ErrNotFound):
			// 未使用ならOK
		default:
			res.Add("name uniqueness check failed: db error")
		}
	}

	if len([]rune(item.Description)) > maxDescriptionLength {
		res.Add(fmt.Sprintf("description must not exceed %d characters", maxDescriptionLength))
	}

	if item.Price.LessThanOrEqual(decimal.Zero) {
		res.Add("price must be greater than zero")
	}

	if item.CategoryID == "" {
		res.Add("category id is required")
	} else if _, err := v.categories.FindByID(ctx, item.CategoryID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			res.Add(fmt.Sprintf("category %s does not exist", item.CategoryID))
		} else {
			res.Add("category existence check failed: db error")
		}
	}

	if item.DefaultPortionSize != "" && !item.DefaultPortionSize.IsValid() {
		res.Add(fmt.Sprintf("portion size %q is not recognized", item.DefaultPortionSize))
	}

	return res
}
