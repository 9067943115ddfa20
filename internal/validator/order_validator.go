package validator

import (
	"context"
	"errors"
	"fmt"

	"kiosk/internal/domain/model"
	"kiosk/internal/repository"

	"github.com/shopspring/decimal"
)

type OrderValidator struct {
	users repository.UserRepository
}

func NewOrderValidator(users repository.UserRepository) *OrderValidator {
	return &OrderValidator{users: users}
}

func (v *OrderValidator) Validate(ctx context.Context, order model.Order, existing bool) Result {
	res := NewResult()

	if existing && order.ID == "" {
		res.Add("order id is required for an existing order")
	}

	if order.UserID == "" {
		res.Add("user id is required")
	} else if _, err := v.users.FindByID(ctx, order.UserID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			res.Add(fmt.Sprintf("user %s does not exist", order.UserID))
		} else {
			res.Add("user existence check failed: db error")
		}
	}

	if order.TotalPrice.LessThan(decimal.Zero) {
		res.Add(fmt.Sprintf("total price (%s) must not be negative", order.TotalPrice))
	}

	if order.Status == "" {
		res.Add("order status is required")
	} else if !order.Status.IsValid() {
		res.Add(fmt.Sprintf("order status %q is not recognized", order.Status))
	} else if !existing && order.Status != model.OrderStatusPending {
		//新規注文はPENDING始まり
		res.Add(fmt.Sprintf("a new order must start as %s", model.OrderStatusPending))
	}

	if order.CreatedAt.IsZero() {
		res.Add("order creation time is required")
	}

	return res
}
