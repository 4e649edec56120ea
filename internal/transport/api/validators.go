package api

import (
	"fmt"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/clicks-pr/clicks-core/internal/domain"
)

// validateOrderStatus проверяет, что строка является известным статусом заказа.
// Допустимость самого перехода проверяет сервисный слой.
func validateOrderStatus(fl validator.FieldLevel) bool {
	str, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return domain.OrderStatusType(str).Valid()
}

func registerValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("validator registration: unexpected engine %T", binding.Validator.Engine())
	}
	if err := v.RegisterValidation("orderstatus", validateOrderStatus); err != nil {
		return fmt.Errorf("validator registration: %s", err.Error())
	}
	return nil
}
