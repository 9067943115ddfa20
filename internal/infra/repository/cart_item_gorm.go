package repository

import (
	"context"
	"errors"
	"time"

	"kiosk/internal/domain/model"
	repo "kiosk/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CartItemGormRepository struct {
	db *gorm.DB
}

func NewCartItemGormRepository(db *gorm.DB) *CartItemGormRepository {
	return &CartItemGormRepository{db: db}
}

func (r *CartItemGormRepository) FindByID(ctx context.Context, cartItemID string) (model.CartItem, error) {
	var item model.CartItem
	err := r.db.WithContext(ctx).Where("id = ?", cartItemID).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.CartItem{}, repo.ErrNotFound
	}
	if err != nil {
		return model.CartItem{}, err
	}
	return item, nil
}

func (r *CartItemGormRepository) ListByUser(ctx context.Context, userID string) ([]model.CartItem, error) {
	var items []model.CartItem
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at asc").
		Find(&items).Error
	if err != nil {
		return []model.CartItem{}, err
	}
	return items, nil
}

func (r *CartItemGormRepository) ListUnorderedByUser(ctx context.Context, userID string) ([]model.CartItem, error) {
	var items []model.CartItem
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_ordered = ?", userID, false).
		Order("created_at asc").
		Find(&items).Error
	if err != nil {
		return []model.CartItem{}, err
	}
	return items, nil
}

func (r *CartItemGormRepository) ListByCategory(ctx context.Context, categoryID string) ([]model.CartItem, error) {
	var items []model.CartItem
	err := r.db.WithContext(ctx).
		Joins("INNER JOIN menu_items ON menu_items.id = cart_items.menu_item_id").
		Where("menu_items.category_id = ?", categoryID).
		Find(&items).Error
	if err != nil {
		return []model.CartItem{}, err
	}
	return items, nil
}

func (r *CartItemGormRepository) ListByOrderID(ctx context.Context, orderID string) ([]model.CartItem, error) {
	var items []model.CartItem
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at asc").
		Find(&items).Error
	if err != nil {
		return []model.CartItem{}, err
	}
	return items, nil
}

// order_id導入前の行向け。支払い作成時刻が注文時刻の前後に収まる明細を拾う。
func (r *CartItemGormRepository) ListOrderedInWindow(ctx context.Context, userID string, from time.Time, to time.Time) ([]model.CartItem, error) {
	var items []model.CartItem
	err := r.db.WithContext(ctx).
		Joins("INNER JOIN payments ON payments.cart_item_id = cart_items.id").
		Where("cart_items.user_id = ? AND cart_items.is_ordered = ?", userID, true).
		Where("payments.created_at BETWEEN ? AND ?", from, to).
		Distinct("cart_items.*").
		Find(&items).Error
	if err != nil {
		return []model.CartItem{}, err
	}
	return items, nil
}

func (r *CartItemGormRepository) ExistsUnordered(ctx context.Context, userID string, menuItemID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.CartItem{}).
		Where("user_id = ? AND menu_item_id = ? AND is_ordered = ?", userID, menuItemID, false).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *CartItemGormRepository) Create(ctx context.Context, item model.CartItem) (model.CartItem, error) {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(&item).Error; err != nil {
		return model.CartItem{}, err
	}
	return item, nil
}

func (r *CartItemGormRepository) DeleteByID(ctx context.Context, cartItemID string) error {
	res := r.db.WithContext(ctx).Where("id = ?", cartItemID).Delete(&model.CartItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 既に注文済みの行は対象外にして二重確定を無害化する。
func (r *CartItemGormRepository) MarkOrdered(ctx context.Context, orderID string, cartItemIDs []string) error {
	if len(cartItemIDs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&model.CartItem{}).
		Where("id IN ? AND is_ordered = ?", cartItemIDs, false).
		Updates(map[string]interface{}{
			"is_ordered": true,
			"order_id":   orderID,
		}).Error
}
