package model

import "github.com/shopspring/decimal"

type PortionSize string

const (
	PortionSmall      PortionSize = "SMALL"
	PortionMedium     PortionSize = "MEDIUM"
	PortionLarge      PortionSize = "LARGE"
	PortionExtraLarge PortionSize = "EXTRA_LARGE"
)

// サイズごとの価格係数
func (p PortionSize) Multiplier() decimal.Decimal {
	switch p {
	case PortionSmall:
		return decimal.NewFromFloat(0.8)
	case PortionLarge:
		return decimal.NewFromFloat(1.3)
	case PortionExtraLarge:
		return decimal.NewFromFloat(1.6)
	default:
		return decimal.NewFromInt(1)
	}
}

func (p PortionSize) IsValid() bool {
	switch p {
	case PortionSmall, PortionMedium, PortionLarge, PortionExtraLarge:
		return true
	}
	return false
}

type MenuItem struct {
	ID                 string          `gorm:"type:uuid;primaryKey" json:"id"`
	Name               string          `gorm:"type:varchar(100);not null;uniqueIndex" json:"name"`
	Description        string          `gorm:"type:varchar(500)" json:"description,omitempty"`
	Price              decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price"`
	CategoryID         string          `gorm:"type:uuid;not null;index" json:"category_id"`
	Available          bool            `gorm:"not null;default:true;column:is_available" json:"is_available"`
	ImagePath          string          `gorm:"type:varchar(255)" json:"image_path,omitempty"`
	DefaultPortionSize PortionSize     `gorm:"type:varchar(20);not null;default:'MEDIUM'" json:"default_portion_size"`
}

// サイズ適用後の単価（2桁丸め）
func (m MenuItem) PriceForSize(size PortionSize) decimal.Decimal {
	if !size.IsValid() {
		size = m.DefaultPortionSize
	}
	return m.Price.Mul(size.Multiplier()).Round(2)
}
