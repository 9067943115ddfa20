package validator

import (
	"context"
	"errors"
	"fmt"

	"kiosk/internal/domain/model"
	"kiosk/internal/repository"

	"github.com/shopspring/decimal"
)

const (
	minQuantity = 1
	maxQuantity = 100
)

var (
	minSubtotal = decimal.NewFromFloat(0.01)
	maxSubtotal = decimal.NewFromFloat(100000.00)
)

// 数量の範囲チェック
func QuantityValid(quantity int) Result {
	res := NewResult()
	if quantity < minQuantity {
		res.Add(fmt.Sprintf("quantity (%d) must be at least %d", quantity, minQuantity))
	}
	if quantity > maxQuantity {
		res.Add(fmt.Sprintf("quantity (%d) must not exceed %d", quantity, maxQuantity))
	}
	return res
}

// 小計の範囲チェック
func SubtotalValid(subtotal decimal.Decimal) Result {
	res := NewResult()
	if subtotal.LessThan(minSubtotal) {
		res.Add(fmt.Sprintf("subtotal (%s) must be at least %s", subtotal, minSubtotal))
	}
	if subtotal.GreaterThan(maxSubtotal) {
		res.Add(fmt.Sprintf("subtotal (%s) must not exceed %s", subtotal, maxSubtotal))
	}
	return res
}

type CartItemValidator struct {
	users     repository.UserRepository
	menuItems repository.MenuItemRepository
}

func NewCartItemValidator(users repository.UserRepository, menuItems repository.MenuItemRepository) *CartItemValidator {
	return &CartItemValidator{users: users, menuItems: menuItems}
}

// existing=trueは既存レコードの検証（IDが必須になる）。
func (v *CartItemValidator) Validate(ctx context.Context, item model.CartItem, existing bool) Result {
	res := NewResult()

	if existing && item.ID == "" {
		res.Add("cart item id is required for an existing cart item")
	}

	if item.UserID == "" {
		res.Add("user id is required")
	} else if _, err := v.users.FindByID(ctx, item.UserID); err != nil {
		// NotFound以外のDB失敗は「ユニーク扱い」せず違反として返す
		if errors.Is(err, repository.ErrNotFound) {
			res.Add(fmt.Sprintf("user %s does not exist", item.UserID))
		} else {
			res.Add("user existence check failed: db error")
		}
	}

	if item.MenuItemID == "" {
		res.Add("menu item id is required")
	} else if _, err := v.menuItems.FindByID(ctx, item.MenuItemID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			res.Add(fmt.Sprintf("menu item %s does not exist", item.MenuItemID))
		} else {
			res.Add("menu item existence check failed: db error")
		}
	}

	res.Merge(QuantityValid(item.Quantity))
	res.Merge(SubtotalValid(item.Subtotal))

	return res
}
