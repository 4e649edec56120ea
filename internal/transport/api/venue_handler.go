package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/clicks-pr/clicks-core/internal/domain"
	"github.com/clicks-pr/clicks-core/internal/service"
)

type VenueHandler struct {
	orderSvs OrderServicer
	venueSvs VenueServicer
	menuSvs  MenuServicer
}

func NewVenueHandler(orderSvs OrderServicer, venueSvs VenueServicer, menuSvs MenuServicer) *VenueHandler {
	return &VenueHandler{
		orderSvs: orderSvs,
		venueSvs: venueSvs,
		menuSvs:  menuSvs,
	}
}

// Orders GET RouteGroup + VenueOrdersRoute. Очередь заказов заведения текущего менеджера.
func (v *VenueHandler) Orders(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	orders, err := v.orderSvs.GetVenueQueue(reqCtx, currentUserID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	if len(orders) == 0 {
		c.AbortWithStatus(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, newOrderResponses(orders))
}

type UpdateOrderStatusParams struct {
	Status string `binding:"required,orderstatus" json:"status"`
}

// UpdateOrderStatus PATCH RouteGroup + VenueOrderRoute. Перевод заказа по машине состояний.
func (v *VenueHandler) UpdateOrderStatus(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	orderID, idErr := pathID(c)
	if idErr != nil {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	var params UpdateOrderStatusParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	err := v.orderSvs.AdvanceStatus(reqCtx, currentUserID, orderID, domain.OrderStatusType(params.Status))
	if err != nil {
		var illegalErr *domain.IllegalTransitionError
		switch {
		case errors.As(err, &illegalErr):
			_ = c.AbortWithError(http.StatusBadRequest, illegalErr).SetType(gin.ErrorTypePublic)
		case errors.Is(err, domain.ErrForbidden):
			c.AbortWithStatus(http.StatusForbidden)
		case errors.Is(err, domain.ErrRecordNotFound):
			c.AbortWithStatus(http.StatusNotFound)
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		}
		return
	}

	c.AbortWithStatus(http.StatusOK)
}

type PauseResponse struct {
	Paused          bool `json:"paused"`
	CancelledOrders int  `json:"cancelledOrders"`
}

// TogglePause POST RouteGroup + VenuePauseRoute. Пауза/возобновление работы заведения.
func (v *VenueHandler) TogglePause(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	result, err := v.venueSvs.TogglePause(reqCtx, currentUserID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, PauseResponse{
		Paused:          result.Paused,
		CancelledOrders: result.CancelledOrders,
	})
}

type MenuItemResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"priceDollars"`
	IsAlcohol   bool            `json:"isAlcohol"`
	IsAvailable bool            `json:"isAvailable"`
}

// Menu GET RouteGroup + VenueMenuRoute. Публичное меню заведения, скрытые позиции не отдаются.
func (v *VenueHandler) Menu(c *gin.Context) {
	venueID, idErr := pathID(c)
	if idErr != nil {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	items, err := v.menuSvs.ListByVenue(reqCtx, venueID)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	available := make([]domain.MenuItem, 0, len(items))
	for _, item := range items {
		if item.IsAvailable {
			available = append(available, item)
		}
	}
	c.JSON(http.StatusOK, newMenuItemResponses(available))
}

// OwnMenu GET RouteGroup + ManagerMenuRoute. Меню заведения менеджера, включая скрытые позиции.
func (v *VenueHandler) OwnMenu(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	items, err := v.menuSvs.ListOwn(reqCtx, currentUserID)
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}
	c.JSON(http.StatusOK, newMenuItemResponses(items))
}

type MenuItemCreateParams struct {
	Name        string          `binding:"required,min=1,max=255" json:"name"`
	Price       decimal.Decimal `binding:"required"               json:"priceDollars"`
	IsAlcohol   bool            `json:"isAlcohol"`
	IsAvailable *bool           `json:"isAvailable"`
}

// CreateMenuItem POST RouteGroup + ManagerMenuRoute.
func (v *VenueHandler) CreateMenuItem(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params MenuItemCreateParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}
	priceCents, priceErr := centsFromDollars(params.Price)
	if priceErr != nil {
		_ = c.AbortWithError(http.StatusUnprocessableEntity, priceErr).SetType(gin.ErrorTypePublic)
		return
	}

	isAvailable := true
	if params.IsAvailable != nil {
		isAvailable = *params.IsAvailable
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	item, err := v.menuSvs.Create(reqCtx, currentUserID, service.MenuItemCreateArgs{
		Name:        params.Name,
		PriceCents:  priceCents,
		IsAlcohol:   params.IsAlcohol,
		IsAvailable: isAvailable,
	})
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusCreated, newMenuItemResponse(item))
}

type MenuItemUpdateParams struct {
	Name        *string          `binding:"omitempty,min=1,max=255" json:"name"`
	Price       *decimal.Decimal `json:"priceDollars"`
	IsAvailable *bool            `json:"isAvailable"`
}

// UpdateMenuItem PATCH RouteGroup + ManagerMenuItem. Частичное обновление позиции.
func (v *VenueHandler) UpdateMenuItem(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	itemID, idErr := pathID(c)
	if idErr != nil {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	var params MenuItemUpdateParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	args := service.MenuItemUpdateArgs{
		ItemID:      itemID,
		Name:        params.Name,
		IsAvailable: params.IsAvailable,
	}
	if params.Price != nil {
		priceCents, priceErr := centsFromDollars(*params.Price)
		if priceErr != nil {
			_ = c.AbortWithError(http.StatusUnprocessableEntity, priceErr).SetType(gin.ErrorTypePublic)
			return
		}
		args.PriceCents = &priceCents
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	item, err := v.menuSvs.Update(reqCtx, currentUserID, args)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrForbidden):
			c.AbortWithStatus(http.StatusForbidden)
		case errors.Is(err, domain.ErrRecordNotFound):
			c.AbortWithStatus(http.StatusNotFound)
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		}
		return
	}

	c.JSON(http.StatusOK, newMenuItemResponse(item))
}

// DeleteMenuItem DELETE RouteGroup + ManagerMenuItem.
func (v *VenueHandler) DeleteMenuItem(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	itemID, idErr := pathID(c)
	if idErr != nil {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := v.menuSvs.Delete(reqCtx, currentUserID, itemID); err != nil {
		switch {
		case errors.Is(err, domain.ErrForbidden):
			c.AbortWithStatus(http.StatusForbidden)
		case errors.Is(err, domain.ErrRecordNotFound):
			c.AbortWithStatus(http.StatusNotFound)
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		}
		return
	}

	c.AbortWithStatus(http.StatusNoContent)
}

func newMenuItemResponse(item *domain.MenuItem) MenuItemResponse {
	return MenuItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Price:       dollarsFromCents(item.PriceCents),
		IsAlcohol:   item.IsAlcohol,
		IsAvailable: item.IsAvailable,
	}
}

func newMenuItemResponses(items []domain.MenuItem) []MenuItemResponse {
	response := make([]MenuItemResponse, len(items))
	for i := range items {
		response[i] = newMenuItemResponse(&items[i])
	}
	return response
}

// pathID парсит числовой параметр :id.
func pathID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}
