package repository

import (
	"context"
	"time"

	"kiosk/internal/domain/model"
)

type CartItemRepository interface {
	FindByID(ctx context.Context, cartItemID string) (model.CartItem, error)
	ListByUser(ctx context.Context, userID string) ([]model.CartItem, error)
	// 未注文の明細のみ
	ListUnorderedByUser(ctx context.Context, userID string) ([]model.CartItem, error)
	// カテゴリ経由の便宜JOIN
	ListByCategory(ctx context.Context, categoryID string) ([]model.CartItem, error)
	ListByOrderID(ctx context.Context, orderID string) ([]model.CartItem, error)
	// order_idが無い旧データ向け：支払いの作成時刻窓で復元する
	ListOrderedInWindow(ctx context.Context, userID string, from time.Time, to time.Time) ([]model.CartItem, error)
	// 同一ユーザー×同一商品の未注文明細が既にあるか
	ExistsUnordered(ctx context.Context, userID string, menuItemID string) (bool, error)
	Create(ctx context.Context, item model.CartItem) (model.CartItem, error)
	DeleteByID(ctx context.Context, cartItemID string) error
	// 一括で注文済みにする。既に注文済みの行はno-op（冪等）。
	MarkOrdered(ctx context.Context, orderID string, cartItemIDs []string) error
}
