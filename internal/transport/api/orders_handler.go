package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/clicks-pr/clicks-core/internal/domain"
	"github.com/clicks-pr/clicks-core/internal/service"
)

type OrdersHandler struct {
	orderSvs OrderServicer
}

func NewOrdersHandler(orderSvs OrderServicer) *OrdersHandler {
	return &OrdersHandler{
		orderSvs: orderSvs,
	}
}

type OrderLineParams struct {
	MenuItemID int64 `binding:"required,gt=0"         json:"menuItemId"`
	Qty        int   `binding:"required,gt=0,lte=50"  json:"qty"`
}

type PlaceOrderParams struct {
	VenueID int64             `binding:"required,gt=0"               json:"venueId"`
	Items   []OrderLineParams `binding:"required,min=1,max=50,dive"  json:"items"`
}

type PlacedOrderResponse struct {
	OrderID   int64           `json:"orderId"`
	OrderCode string          `json:"orderCode"`
	VenueName string          `json:"venueName"`
	Total     decimal.Decimal `json:"totalDollars"`
}

// Create POST RouteGroup + OrdersRoute. Оформляет заказ из текущего чекина.
func (o *OrdersHandler) Create(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params PlaceOrderParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	lines := make([]service.OrderLine, len(params.Items))
	for i, item := range params.Items {
		lines[i] = service.OrderLine{MenuItemID: item.MenuItemID, Qty: item.Qty}
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	placed, err := o.orderSvs.Place(reqCtx, service.PlaceOrderArgs{
		UserID:  currentUserID,
		VenueID: params.VenueID,
		Lines:   lines,
	})
	if err != nil {
		o.abortWithPlaceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, PlacedOrderResponse{
		OrderID:   placed.OrderID,
		OrderCode: placed.OrderCode,
		VenueName: placed.VenueName,
		Total:     dollarsFromCents(placed.TotalCents),
	})
}

// abortWithPlaceError транслирует отказы валидатора заказа в http статусы:
// 402 — нет денег, 403 — не выполнено предусловие, 404 — нет заведения, 409 — конфликт состояния.
func (o *OrdersHandler) abortWithPlaceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInsufficientFunds):
		_ = c.AbortWithError(http.StatusPaymentRequired, errors.New("insufficient wallet balance")).
			SetType(gin.ErrorTypePublic)
	case errors.Is(err, domain.ErrNotCheckedIn):
		_ = c.AbortWithError(http.StatusForbidden, errors.New("check in at the venue first")).
			SetType(gin.ErrorTypePublic)
	case errors.Is(err, domain.ErrAlcoholWindowClosed):
		_ = c.AbortWithError(http.StatusForbidden, errors.New("alcohol sales are closed for today")).
			SetType(gin.ErrorTypePublic)
	case errors.Is(err, domain.ErrDailyLimitExceeded):
		_ = c.AbortWithError(http.StatusForbidden, errors.New("daily spending limit reached")).
			SetType(gin.ErrorTypePublic)
	case errors.Is(err, domain.ErrVenueNotFound):
		c.AbortWithStatus(http.StatusNotFound)
	case errors.Is(err, domain.ErrVenueUnavailable):
		_ = c.AbortWithError(http.StatusConflict, errors.New("venue is not accepting orders")).
			SetType(gin.ErrorTypePublic)
	case errors.Is(err, domain.ErrItemsUnavailable):
		_ = c.AbortWithError(http.StatusConflict, errors.New("some items are unavailable")).
			SetType(gin.ErrorTypePublic)
	default:
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
	}
}

type OrderItemResponse struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"priceDollars"`
	Qty   int             `json:"qty"`
}

type OrderResponse struct {
	OrderID   int64                  `json:"orderId"`
	OrderCode string                 `json:"orderCode"`
	Status    domain.OrderStatusType `json:"status"`
	Total     decimal.Decimal        `json:"totalDollars"`
	CreatedAt time.Time              `json:"createdAt"`
	Items     []OrderItemResponse    `json:"items"`
}

// Index GET RouteGroup + OrdersRoute. История заказов юзера, свежие сверху.
func (o *OrdersHandler) Index(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()
	orders, err := o.orderSvs.GetByUserID(reqCtx, currentUserID)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).
			SetType(gin.ErrorTypePrivate)
		return
	}

	if len(orders) == 0 {
		c.AbortWithStatus(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, newOrderResponses(orders))
}

func newOrderResponses(orders []domain.Order) []OrderResponse {
	response := make([]OrderResponse, len(orders))
	for i, order := range orders {
		items := make([]OrderItemResponse, len(order.Items))
		for j, item := range order.Items {
			items[j] = OrderItemResponse{
				Name:  item.Name,
				Price: dollarsFromCents(item.PriceCents),
				Qty:   item.Qty,
			}
		}
		response[i] = OrderResponse{
			OrderID:   order.ID,
			OrderCode: order.OrderCode,
			Status:    order.Status,
			Total:     dollarsFromCents(order.TotalCents),
			CreatedAt: order.CreatedAt,
			Items:     items,
		}
	}
	return response
}
