package usecase

import (
	"context"
	"errors"
	"net/http"
	"time"

	"kiosk/internal/domain/model"
	repo "kiosk/internal/repository"
)

// order_id導入前の旧データ復元に使う時刻窓
const legacyLinkWindow = 2 * time.Minute

type OrderUsecase struct {
	orders    repo.OrderRepository
	cartItems repo.CartItemRepository
}

func NewOrderUsecase(orders repo.OrderRepository, cartItems repo.CartItemRepository) *OrderUsecase {
	return &OrderUsecase{orders: orders, cartItems: cartItems}
}

// userIDが空ならスタッフ向けに全件返す。
func (u *OrderUsecase) ListOrders(ctx context.Context, userID string) ([]model.Order, error) {
	var (
		orders []model.Order
		err    error
	)
	if userID == "" {
		orders, err = u.orders.List(ctx)
	} else {
		orders, err = u.orders.ListByUserID(ctx, userID)
	}
	if err != nil {
		return []model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return orders, nil
}

// 注文の明細を返す。まずorder_idで引き、旧データは支払いの時刻窓で復元する。
// 見つからなくても空リスト（エラーにしない）。
// userIDが空ならスタッフ扱いで所有チェックを飛ばす。
func (u *OrderUsecase) GetOrderLineItems(ctx context.Context, userID string, orderID string) ([]model.CartItem, error) {
	order, err := u.orders.FindByID(ctx, orderID)
	if errors.Is(err, repo.ErrNotFound) {
		return []model.CartItem{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return []model.CartItem{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//他人の注文は「存在しない扱い」
	if userID != "" && order.UserID != userID {
		return []model.CartItem{}, NewHTTPError(http.StatusNotFound, "not found")
	}

	items, err := u.cartItems.ListByOrderID(ctx, orderID)
	if err != nil {
		return []model.CartItem{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if len(items) > 0 {
		return items, nil
	}

	items, err = u.cartItems.ListOrderedInWindow(ctx, order.UserID,
		order.CreatedAt.Add(-legacyLinkWindow), order.CreatedAt.Add(legacyLinkWindow))
	if err != nil {
		return []model.CartItem{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}

// PENDINGのときだけ取り消せる。userIDが空ならスタッフ扱いで所有チェックを飛ばす。
func (u *OrderUsecase) Cancel(ctx context.Context, userID string, orderID string) error {
	order, err := u.orders.FindByID(ctx, orderID)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//他人の注文は「存在しない扱い」
	if userID != "" && order.UserID != userID {
		return NewHTTPError(http.StatusNotFound, "not found")
	}

	if order.Status != model.OrderStatusPending {
		return NewWorkflowError(KindNotCancellable, http.StatusConflict,
			"only pending orders can be cancelled")
	}

	if err := u.orders.UpdateStatus(ctx, orderID, model.OrderStatusCancelled); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// スタッフ用のステータス変更。同じ値への変更は受け付けない。
func (u *OrderUsecase) UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) error {
	if !status.IsValid() {
		return NewHTTPError(http.StatusBadRequest, "invalid status")
	}

	order, err := u.orders.FindByID(ctx, orderID)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if order.Status == status {
		return NewHTTPError(http.StatusBadRequest, "status is unchanged")
	}

	if err := u.orders.UpdateStatus(ctx, orderID, status); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
