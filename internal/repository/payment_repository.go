package repository

import (
	"context"

	"kiosk/internal/domain/model"
)

type PaymentRepository interface {
	FindByID(ctx context.Context, paymentID string) (model.Payment, error)
	List(ctx context.Context) ([]model.Payment, error)
	ListByOrderID(ctx context.Context, orderID string) ([]model.Payment, error)
	Create(ctx context.Context, payment model.Payment) (model.Payment, error)
	Update(ctx context.Context, payment model.Payment) (model.Payment, error)
	DeleteByID(ctx context.Context, paymentID string) error
}
