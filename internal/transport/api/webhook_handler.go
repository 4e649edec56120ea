package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/clicks-pr/clicks-core/internal/domain"
	"github.com/clicks-pr/clicks-core/internal/service"
)

// SignatureHeader — hex HMAC-SHA256 тела запроса, считается биллинг-провайдером.
const SignatureHeader = "X-Signature"

type WebhookHandler struct {
	billingSvs BillingServicer
}

func NewWebhookHandler(billingSvs BillingServicer) *WebhookHandler {
	return &WebhookHandler{billingSvs: billingSvs}
}

type BillingEventParams struct {
	Type        string    `json:"type"`
	VenueID     int64     `json:"venueId"`
	AmountCents int64     `json:"amountCents"`
	PeriodStart time.Time `json:"periodStart"`
	PeriodEnd   time.Time `json:"periodEnd"`
	ProviderRef string    `json:"providerRef"`
}

// Billing POST RouteGroup + BillingWebhookPath. Подпись проверяется по сырому телу
// до разбора json, поэтому тело читается вручную, а не через ShouldBindJSON.
func (w *WebhookHandler) Billing(c *gin.Context) {
	body, readErr := io.ReadAll(c.Request.Body)
	if readErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, readErr).SetType(gin.ErrorTypePrivate)
		return
	}

	if err := w.billingSvs.VerifySignature(body, c.GetHeader(SignatureHeader)); err != nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	var params BillingEventParams
	if unmarshalErr := json.Unmarshal(body, &params); unmarshalErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, unmarshalErr).SetType(gin.ErrorTypeBind)
		return
	}
	if params.Type == "" || params.VenueID <= 0 {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	err := w.billingSvs.ApplyEvent(reqCtx, service.BillingEvent{
		Type:        params.Type,
		VenueID:     params.VenueID,
		AmountCents: params.AmountCents,
		PeriodStart: params.PeriodStart,
		PeriodEnd:   params.PeriodEnd,
		ProviderRef: params.ProviderRef,
	})
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
