package api

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/clicks-pr/clicks-core/internal/transport/api/middlewares"
)

var errBadAmount = errors.New("amount must be positive with at most two decimal places")

// getUserIDFromContext берет из контекста gin ID текущего юзера. ID устанавливается в
// middlewares.AuthRequired. В случае, если значения в контексте нет или ошибка утверждения типа -
// вернется 0.
func getUserIDFromContext(c *gin.Context) int64 {
	userIDStr, exist := c.Get(middlewares.CurrentUserIDKey)
	if !exist {
		return 0
	}
	userID, ok := userIDStr.(int64)
	if !ok {
		return 0
	}
	return userID
}

var centsShift = decimal.NewFromInt(100)

// dollarsFromCents конвертирует внутренние центы в доллары для ответа.
// Два знака после запятой представимы точно, потерь нет.
func dollarsFromCents(cents int64) decimal.Decimal {
	return decimal.NewFromInt(cents).Div(centsShift)
}

// centsFromDollars конвертирует пришедшую с клиента сумму в центы.
// Отклоняет неположительные суммы и суммы с долями цента.
func centsFromDollars(dollars decimal.Decimal) (int64, error) {
	if !dollars.IsPositive() {
		return 0, errBadAmount
	}
	shifted := dollars.Mul(centsShift)
	if !shifted.IsInteger() {
		return 0, errBadAmount
	}
	return shifted.IntPart(), nil
}
