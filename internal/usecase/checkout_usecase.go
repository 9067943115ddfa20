package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"kiosk/internal/domain/model"
	repo "kiosk/internal/repository"
	"kiosk/internal/validator"

	"github.com/shopspring/decimal"
)

// Usecaseが依存するValidatorの約束
type CartItemValidator interface {
	Validate(ctx context.Context, item model.CartItem, existing bool) validator.Result
}

type OrderValidator interface {
	Validate(ctx context.Context, order model.Order, existing bool) validator.Result
}

type PaymentValidator interface {
	Validate(payment model.Payment, existing bool) validator.Result
}

// CheckoutUsecase は未注文のカート明細を注文＋支払いに変換する。
type CheckoutUsecase struct {
	cartItems        repo.CartItemRepository
	menuItems        repo.MenuItemRepository
	tx               repo.TransactionManager
	cartValidator    CartItemValidator
	orderValidator   OrderValidator
	paymentValidator PaymentValidator

	// trueなら確定時に販売可否を再チェックする（既定はカート投入時の判定を信用）
	recheckAvailability bool
}

func NewCheckoutUsecase(
	cartItems repo.CartItemRepository,
	menuItems repo.MenuItemRepository,
	tx repo.TransactionManager,
	cartValidator CartItemValidator,
	orderValidator OrderValidator,
	paymentValidator PaymentValidator,
	recheckAvailability bool,
) *CheckoutUsecase {
	return &CheckoutUsecase{
		cartItems:           cartItems,
		menuItems:           menuItems,
		tx:                  tx,
		cartValidator:       cartValidator,
		orderValidator:      orderValidator,
		paymentValidator:    paymentValidator,
		recheckAvailability: recheckAvailability,
	}
}

type PlaceOrderInput struct {
	Method model.PaymentMethod
}

type PlacedOrderOutput struct {
	Order    model.Order     `json:"order"`
	Payments []model.Payment `json:"payments"`
	Items    []model.CartItem `json:"items"`
}

// PlaceOrder は確定フロー本体。
// 確定点より前は読み取りと検証だけで、書き込みは一切しない。
// 書き込み（注文→支払い→注文済みフラグ）は1トランザクションにまとめ、
// 途中で失敗したら全部巻き戻る＝カートは再提出できる。
func (u *CheckoutUsecase) PlaceOrder(ctx context.Context, userID string, in PlaceOrderInput) (PlacedOrderOutput, error) {
	if userID == "" {
		return PlacedOrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	//未注文の明細を集める
	items, err := u.cartItems.ListUnorderedByUser(ctx, userID)
	if err != nil {
		return PlacedOrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if len(items) == 0 {
		return PlacedOrderOutput{}, NewWorkflowError(KindEmptyCart, http.StatusBadRequest, "cart is empty")
	}

	//明細ごとの検証。失敗しても止めずに全違反を集める。
	cartRes := validator.NewResult()
	for _, item := range items {
		cartRes.Merge(u.cartValidator.Validate(ctx, item, true))
		if u.recheckAvailability {
			cartRes.Merge(u.checkAvailability(ctx, item))
		}
	}
	if !cartRes.Valid {
		return PlacedOrderOutput{}, NewWorkflowError(KindInvalidCart, http.StatusBadRequest, cartRes.Errors...)
	}

	//支払い方法
	if methodRes := validator.PaymentMethodValid(in.Method); !methodRes.Valid {
		return PlacedOrderOutput{}, NewWorkflowError(KindInvalidPaymentMethod, http.StatusBadRequest, methodRes.Errors...)
	}

	now := time.Now()

	//支払いは明細1件につき1レコード。確定前にまとめて検証する。
	prototypes := make([]model.Payment, 0, len(items))
	payRes := validator.NewResult()
	for _, item := range items {
		p := model.Payment{
			CartItemID: item.ID,
			Method:     in.Method,
			Status:     model.PaymentStatusPending,
			CreatedAt:  now,
		}
		payRes.Merge(u.paymentValidator.Validate(p, false))
		prototypes = append(prototypes, p)
	}
	if !payRes.Valid {
		return PlacedOrderOutput{}, NewWorkflowError(KindInvalidPaymentMethod, http.StatusBadRequest, payRes.Errors...)
	}

	//合計は確定時点のスナップショット（2桁固定）
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal)
	}
	total = total.Round(2)
	order := model.Order{
		UserID:     userID,
		TotalPrice: total,
		Status:     model.OrderStatusPending,
		CreatedAt:  now,
	}

	if orderRes := u.orderValidator.Validate(ctx, order, false); !orderRes.Valid {
		return PlacedOrderOutput{}, NewWorkflowError(KindInvalidOrder, http.StatusBadRequest, orderRes.Errors...)
	}

	var out PlacedOrderOutput

	//確定フェーズ
	err = u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		created, err := r.Orders().Create(ctx, order)
		if err != nil {
			return NewWorkflowError(KindPlacementFailed, http.StatusInternalServerError, "failed to create order")
		}

		payments := make([]model.Payment, 0, len(prototypes))
		for i := range prototypes {
			prototypes[i].OrderID = &created.ID
			p, err := r.Payments().Create(ctx, prototypes[i])
			if err != nil {
				//最初の失敗で打ち切り。txごと巻き戻る。
				return NewWorkflowError(KindPartialPaymentFailure, http.StatusInternalServerError,
					fmt.Sprintf("failed to create payment for cart item %s", prototypes[i].CartItemID))
			}
			payments = append(payments, p)
		}

		ids := make([]string, 0, len(items))
		for _, item := range items {
			ids = append(ids, item.ID)
		}
		if err := r.CartItems().MarkOrdered(ctx, created.ID, ids); err != nil {
			return NewWorkflowError(KindMarkOrderedFailed, http.StatusInternalServerError,
				"failed to mark cart items as ordered")
		}

		out = PlacedOrderOutput{Order: created, Payments: payments, Items: items}
		return nil
	})
	if err != nil {
		if _, ok := AsWorkflowError(err); ok {
			return PlacedOrderOutput{}, err
		}
		return PlacedOrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return out, nil
}

// 確定時の販売可否再チェック
func (u *CheckoutUsecase) checkAvailability(ctx context.Context, item model.CartItem) validator.Result {
	res := validator.NewResult()
	m, err := u.menuItems.FindByID(ctx, item.MenuItemID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			res.Add(fmt.Sprintf("menu item %s does not exist", item.MenuItemID))
		} else {
			res.Add("menu item availability check failed: db error")
		}
		return res
	}
	if !m.Available {
		res.Add(fmt.Sprintf("menu item %q is no longer available", m.Name))
	}
	return res
}
