package repoargs

import (
	"time"

	"github.com/clicks-pr/clicks-core/internal/domain"
)

type OrderItemCreate struct {
	MenuItemID int64
	Name       string
	PriceCents int64
	Qty        int
	IsAlcohol  bool
}

type OrderCreate struct {
	UserID     int64
	VenueID    int64
	OrderCode  string
	TotalCents int64
	Items      []OrderItemCreate
}

// OrderStatusUpdate — переход статуса с оптимистичной предпроверкой: UPDATE выполняется
// с условием status = Expected. Если условие не выполнилось, переход не применяется.
type OrderStatusUpdate struct {
	OrderID  int64
	Expected domain.OrderStatusType
	To       domain.OrderStatusType
	At       time.Time
}
