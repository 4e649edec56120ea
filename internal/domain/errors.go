package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound    = errors.New("record not found")
	ErrPasswordMissMatch = errors.New("password mismatch")
	ErrDuplicateKey      = errors.New("duplicate key")
	ErrUnknown           = errors.New("unknown error")

	// Precondition-ошибки валидатора заказа. Состояние не мутируется.
	ErrNotCheckedIn        = errors.New("not checked in at this venue")
	ErrVenueNotFound       = errors.New("venue not found")
	ErrVenueUnavailable    = errors.New("venue is not accepting orders")
	ErrItemsUnavailable    = errors.New("one or more items are unavailable")
	ErrAlcoholWindowClosed = errors.New("alcohol service is not available at this time")

	// Resource-ошибки леджера. Никогда не применяются частично.
	ErrInsufficientFunds  = errors.New("insufficient wallet balance")
	ErrDailyLimitExceeded = errors.New("daily send limit reached")

	// ErrLedgerDrift — баланс кошелька разошелся со знаковой суммой леджера.
	// Инвариант сохранения нарушен, дальше работать с кошельком нельзя.
	ErrLedgerDrift = errors.New("wallet balance does not match ledger sum")

	// Validation — отклонено до любых обращений к состоянию.
	ErrAmountTooSmall = errors.New("amount is below the minimum")

	// Conflict-ошибки.
	ErrForbidden         = errors.New("forbidden")
	ErrRecipientNotFound = errors.New("recipient not found")
	ErrSelfTransfer      = errors.New("cannot send to yourself")
	// ErrUserBanned — аккаунт забанен администратором и срок бана еще не истек.
	ErrUserBanned = errors.New("user is banned")
)

// IllegalTransitionError возвращается при попытке недопустимого перехода статуса заказа.
// Побочных эффектов у отклоненного перехода нет.
type IllegalTransitionError struct {
	From OrderStatusType
	To   OrderStatusType
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("cannot transition order from %s to %s", e.From, e.To)
}

func NewIllegalTransitionError(from, to OrderStatusType) error {
	return &IllegalTransitionError{From: from, To: to}
}
