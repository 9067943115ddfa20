package usecase

import (
	"context"
	"errors"
	"net/http"
	"time"

	"kiosk/internal/domain/model"
	repo "kiosk/internal/repository"

	"github.com/shopspring/decimal"
)

// CartUsecase はカートへの追加・一覧・削除を扱う。
// 同一ユーザー×同一商品の重複チェックは追加時に行う（確定時はカートを信用する）。
type CartUsecase struct {
	cartItems     repo.CartItemRepository
	menuItems     repo.MenuItemRepository
	cartValidator CartItemValidator
}

func NewCartUsecase(
	cartItems repo.CartItemRepository,
	menuItems repo.MenuItemRepository,
	cartValidator CartItemValidator,
) *CartUsecase {
	return &CartUsecase{
		cartItems:     cartItems,
		menuItems:     menuItems,
		cartValidator: cartValidator,
	}
}

type AddToCartInput struct {
	MenuItemID  string
	PortionSize model.PortionSize
	Quantity    int
}

type CartOutput struct {
	Items []model.CartItem `json:"items"`
	Total decimal.Decimal  `json:"total"`
}

func (u *CartUsecase) AddToCart(ctx context.Context, userID string, in AddToCartInput) (model.CartItem, error) {
	if userID == "" {
		return model.CartItem{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if in.MenuItemID == "" {
		return model.CartItem{}, NewHTTPError(http.StatusBadRequest, "invalid menu_item_id")
	}

	//商品チェック（販売中のみ）
	m, err := u.menuItems.FindByID(ctx, in.MenuItemID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.CartItem{}, NewHTTPError(http.StatusBadRequest, "invalid menu_item_id")
	}
	if err != nil {
		return model.CartItem{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !m.Available {
		return model.CartItem{}, NewHTTPError(http.StatusBadRequest, "menu item is not available")
	}

	//未注文の重複は許さない
	exists, err := u.cartItems.ExistsUnordered(ctx, userID, in.MenuItemID)
	if err != nil {
		return model.CartItem{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if exists {
		return model.CartItem{}, NewHTTPError(http.StatusConflict, "menu item is already in the cart")
	}

	//小計はサイズ適用後の単価×数量（2桁固定）
	subtotal := m.PriceForSize(in.PortionSize).
		Mul(decimal.NewFromInt(int64(in.Quantity))).
		Round(2)

	item := model.CartItem{
		UserID:     userID,
		MenuItemID: in.MenuItemID,
		Quantity:   in.Quantity,
		Subtotal:   subtotal,
		Ordered:    false,
		CreatedAt:  time.Now(),
	}

	if res := u.cartValidator.Validate(ctx, item, false); !res.Valid {
		return model.CartItem{}, NewValidationError(res.Errors)
	}

	created, err := u.cartItems.Create(ctx, item)
	if err != nil {
		return model.CartItem{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return created, nil
}

// 未注文の明細と合計を返す。
func (u *CartUsecase) ListCart(ctx context.Context, userID string) (CartOutput, error) {
	if userID == "" {
		return CartOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	items, err := u.cartItems.ListUnorderedByUser(ctx, userID)
	if err != nil {
		return CartOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal)
	}

	return CartOutput{Items: items, Total: total.Round(2)}, nil
}

// 未注文の明細だけ削除できる（注文済みは凍結）。
func (u *CartUsecase) RemoveItem(ctx context.Context, userID string, cartItemID string) error {
	if userID == "" {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	item, err := u.cartItems.FindByID(ctx, cartItemID)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//他人の明細は「存在しない扱い」
	if item.UserID != userID {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if item.Ordered {
		return NewHTTPError(http.StatusConflict, "ordered cart items cannot be removed")
	}

	if err := u.cartItems.DeleteByID(ctx, cartItemID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
