package usecase

import (
	"errors"
	"fmt"
	"strings"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// 注文確定フローの失敗種別。メッセージはそのまま画面に出せる前提。
type WorkflowKind string

const (
	KindEmptyCart             WorkflowKind = "EMPTY_CART"
	KindInvalidCart           WorkflowKind = "INVALID_CART"
	KindInvalidPaymentMethod  WorkflowKind = "INVALID_PAYMENT_METHOD"
	KindInvalidOrder          WorkflowKind = "INVALID_ORDER"
	KindPlacementFailed       WorkflowKind = "PLACEMENT_FAILED"
	KindPartialPaymentFailure WorkflowKind = "PARTIAL_PAYMENT_FAILURE"
	KindMarkOrderedFailed     WorkflowKind = "MARK_ORDERED_FAILED"
	KindNotCancellable        WorkflowKind = "NOT_CANCELLABLE"
)

type WorkflowError struct {
	Kind     WorkflowKind
	Status   int
	Messages []string
}

func (e *WorkflowError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, strings.Join(e.Messages, "; "))
}

func NewWorkflowError(kind WorkflowKind, status int, messages ...string) error {
	return &WorkflowError{Kind: kind, Status: status, Messages: messages}
}

func AsWorkflowError(err error) (*WorkflowError, bool) {
	var we *WorkflowError
	ok := errors.As(err, &we)
	return we, ok
}

// フィールド検証の失敗。違反は必ずリストで返す（1件でも）。
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

func NewValidationError(messages []string) error {
	return &ValidationError{Messages: messages}
}

func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}
