package model

import "time"

type PaymentMethod string

const (
	PaymentMethodCash PaymentMethod = "CASH"
	PaymentMethodCard PaymentMethod = "CARD"
)

func (m PaymentMethod) IsValid() bool {
	return m == PaymentMethodCash || m == PaymentMethodCard
}

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
)

func (s PaymentStatus) IsValid() bool {
	return s == PaymentStatusPending || s == PaymentStatusCompleted || s == PaymentStatusFailed
}

// 支払いはカート明細1件につき1レコード（レジで明細ごとに精算できる）。
type Payment struct {
	ID         string        `gorm:"type:uuid;primaryKey" json:"id"`
	CartItemID string        `gorm:"type:uuid;not null;index" json:"cart_item_id"`
	OrderID    *string       `gorm:"type:uuid;index" json:"order_id,omitempty"`
	Method     PaymentMethod `gorm:"type:varchar(20);not null" json:"method"`
	Status     PaymentStatus `gorm:"type:varchar(20);not null" json:"status"`
	CreatedAt  time.Time     `gorm:"not null;autoCreateTime" json:"created_at"`
}
