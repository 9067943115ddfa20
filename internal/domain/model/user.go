package model

import "time"

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

type User struct {
	ID           string    `gorm:"type:uuid;primaryKey" json:"id"`
	Username     string    `gorm:"type:varchar(50);not null;uniqueIndex" json:"username"`
	PasswordHash string    `gorm:"type:varchar(100);not null" json:"-"`
	Role         Role      `gorm:"type:varchar(20);not null" json:"role"`
	Email        string    `gorm:"type:varchar(100);not null;uniqueIndex" json:"email"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
