package validator

import (
	"fmt"

	"kiosk/internal/domain/model"
)

type PaymentValidator struct{}

func NewPaymentValidator() *PaymentValidator {
	return &PaymentValidator{}
}

// 支払い方法の単体チェック
func PaymentMethodValid(method model.PaymentMethod) Result {
	res := NewResult()
	if method == "" {
		res.Add("payment method is required")
	} else if !method.IsValid() {
		res.Add(fmt.Sprintf("payment method %q is not recognized", method))
	}
	return res
}

func (v *PaymentValidator) Validate(payment model.Payment, existing bool) Result {
	res := NewResult()

	if existing && payment.ID == "" {
		res.Add("payment id is required for an existing payment")
	}

	if payment.CartItemID == "" {
		res.Add("cart item id is required")
	}

	res.Merge(PaymentMethodValid(payment.Method))

	if payment.Status == "" {
		res.Add("payment status is required")
	} else if !payment.Status.IsValid() {
		res.Add(fmt.Sprintf("payment status %q is not recognized", payment.Status))
	}

	if payment.CreatedAt.IsZero() {
		res.Add("payment creation time is required")
	}

	return res
}
