package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/clicks-pr/clicks-core/internal/domain"
	"github.com/clicks-pr/clicks-core/internal/repository/repoargs"
	"github.com/clicks-pr/clicks-core/internal/service"
)

type AdminHandler struct {
	userSvs UserServicer
	muniSvs MunicipalityServicer
}

func NewAdminHandler(userSvs UserServicer, muniSvs MunicipalityServicer) *AdminHandler {
	return &AdminHandler{
		userSvs: userSvs,
		muniSvs: muniSvs,
	}
}

type MunicipalityResponse struct {
	ID                int64   `json:"id"`
	Name              string  `json:"name"`
	DefaultStartMins  int     `json:"defaultStartMins"`
	DefaultCutoffMins int     `json:"defaultCutoffMins"`
	DayStartMins      [7]*int `json:"dayStartMins"`
	DayCutoffMins     [7]*int `json:"dayCutoffMins"`
}

// Municipalities GET RouteGroup + AdminMunisRoute.
func (a *AdminHandler) Municipalities(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	munis, err := a.muniSvs.List(reqCtx)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	response := make([]MunicipalityResponse, len(munis))
	for i := range munis {
		response[i] = MunicipalityResponse{
			ID:                munis[i].ID,
			Name:              munis[i].Name,
			DefaultStartMins:  munis[i].DefaultStartMins,
			DefaultCutoffMins: munis[i].DefaultCutoffMins,
			DayStartMins:      munis[i].DayStartMins,
			DayCutoffMins:     munis[i].DayCutoffMins,
		}
	}
	c.JSON(http.StatusOK, response)
}

type MunicipalityWindowParams struct {
	DefaultStartMins  *int    `binding:"required" json:"defaultStartMins"`
	DefaultCutoffMins *int    `binding:"required" json:"defaultCutoffMins"`
	DayStartMins      [7]*int `json:"dayStartMins"`
	DayCutoffMins     [7]*int `json:"dayCutoffMins"`
}

// UpdateMunicipalityWindow PATCH RouteGroup + AdminMuniRoute. Меняет окно продажи алкоголя.
func (a *AdminHandler) UpdateMunicipalityWindow(c *gin.Context) {
	muniID, idErr := pathID(c)
	if idErr != nil {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	var params MunicipalityWindowParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	err := a.muniSvs.UpdateWindow(reqCtx, repoargs.MunicipalityWindowUpdate{
		ID:                muniID,
		DefaultStartMins:  *params.DefaultStartMins,
		DefaultCutoffMins: *params.DefaultCutoffMins,
		DayStartMins:      params.DayStartMins,
		DayCutoffMins:     params.DayCutoffMins,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMinutesOutOfRange):
			_ = c.AbortWithError(http.StatusUnprocessableEntity, err).SetType(gin.ErrorTypePublic)
		case errors.Is(err, domain.ErrRecordNotFound):
			c.AbortWithStatus(http.StatusNotFound)
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		}
		return
	}

	c.AbortWithStatus(http.StatusOK)
}

type UserBanParams struct {
	BannedUntil *time.Time `json:"bannedUntil"`
	Reason      string     `binding:"max=255" json:"reason"`
}

// UpdateUserBan PATCH RouteGroup + AdminUserRoute. Тело без bannedUntil снимает бан.
func (a *AdminHandler) UpdateUserBan(c *gin.Context) {
	userID, idErr := pathID(c)
	if idErr != nil {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	var params UserBanParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	var err error
	if params.BannedUntil != nil {
		err = a.userSvs.Ban(reqCtx, service.BanUserArgs{
			UserID:      userID,
			BannedUntil: *params.BannedUntil,
			Reason:      params.Reason,
		})
	} else {
		err = a.userSvs.Unban(reqCtx, userID)
	}
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.AbortWithStatus(http.StatusOK)
}

// DeleteUser DELETE RouteGroup + AdminUserRoute.
func (a *AdminHandler) DeleteUser(c *gin.Context) {
	userID, idErr := pathID(c)
	if idErr != nil {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := a.userSvs.Delete(reqCtx, userID); err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.AbortWithStatus(http.StatusNoContent)
}
