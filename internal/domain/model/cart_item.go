package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// カート明細。注文確定後は is_ordered=true で凍結される。
// order_id は確定時に埋まる（未確定はNULL）。
type CartItem struct {
	ID         string          `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     string          `gorm:"type:uuid;not null;index" json:"user_id"`
	MenuItemID string          `gorm:"type:uuid;not null;index" json:"menu_item_id"`
	OrderID    *string         `gorm:"type:uuid;index" json:"order_id,omitempty"`
	Quantity   int             `gorm:"not null" json:"quantity"`
	Subtotal   decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"subtotal"`
	Ordered    bool            `gorm:"not null;default:false;column:is_ordered" json:"is_ordered"`
	CreatedAt  time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
}
