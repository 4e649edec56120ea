package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/clicks-pr/clicks-core/internal/domain"
)

type CheckInHandler struct {
	svs CheckInServicer
}

func NewCheckInHandler(svs CheckInServicer) *CheckInHandler {
	return &CheckInHandler{svs: svs}
}

type CheckInParams struct {
	VenueID int64 `binding:"required,gt=0" json:"venueId"`
}

type CheckInResponse struct {
	ID        int64     `json:"id"`
	VenueID   int64     `json:"venueId"`
	StartedAt time.Time `json:"startedAt"`
}

// Create POST RouteGroup + CheckInRoute. Открывает чекин в заведении, закрывая предыдущий.
func (h *CheckInHandler) Create(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params CheckInParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	checkIn, err := h.svs.CheckIn(reqCtx, currentUserID, params.VenueID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrVenueNotFound):
			c.AbortWithStatus(http.StatusNotFound)
		case errors.Is(err, domain.ErrVenueUnavailable):
			_ = c.AbortWithError(http.StatusConflict, errors.New("venue is not accepting guests")).
				SetType(gin.ErrorTypePublic)
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		}
		return
	}

	c.JSON(http.StatusCreated, CheckInResponse{
		ID:        checkIn.ID,
		VenueID:   checkIn.VenueID,
		StartedAt: checkIn.StartedAt,
	})
}

// Show GET RouteGroup + CheckInRoute. Текущий открытый чекин юзера.
func (h *CheckInHandler) Show(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	checkIn, err := h.svs.Current(reqCtx, currentUserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotCheckedIn) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, CheckInResponse{
		ID:        checkIn.ID,
		VenueID:   checkIn.VenueID,
		StartedAt: checkIn.StartedAt,
	})
}

// Delete DELETE RouteGroup + CheckInRoute. Закрывает открытый чекин.
func (h *CheckInHandler) Delete(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.svs.CheckOut(reqCtx, currentUserID); err != nil {
		if errors.Is(err, domain.ErrNotCheckedIn) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.AbortWithStatus(http.StatusNoContent)
}
