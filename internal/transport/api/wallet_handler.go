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

type WalletHandler struct {
	svs WalletServicer
}

func NewWalletHandler(svs WalletServicer) *WalletHandler {
	return &WalletHandler{
		svs: svs,
	}
}

type WalletTxnResponse struct {
	Type      domain.WalletTxnType `json:"type"`
	Amount    decimal.Decimal      `json:"amountDollars"`
	Memo      string               `json:"memo"`
	CreatedAt time.Time            `json:"createdAt"`
}

type WalletResponse struct {
	Balance      decimal.Decimal     `json:"balanceDollars"`
	Transactions []WalletTxnResponse `json:"transactions"`
}

// Index GET RouteGroup + WalletRoute. Баланс и последние записи леджера.
func (w *WalletHandler) Index(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	wallet, txns, err := w.svs.Statement(reqCtx, currentUserID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			// кошелек еще не создан: нулевой баланс без транзакций
			c.JSON(http.StatusOK, WalletResponse{
				Balance:      decimal.Zero,
				Transactions: []WalletTxnResponse{},
			})
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	response := WalletResponse{
		Balance:      dollarsFromCents(wallet.BalanceCents),
		Transactions: make([]WalletTxnResponse, len(txns)),
	}
	for i, txn := range txns {
		response.Transactions[i] = WalletTxnResponse{
			Type:      txn.Type,
			Amount:    dollarsFromCents(txn.AmountCents),
			Memo:      txn.Memo,
			CreatedAt: txn.CreatedAt,
		}
	}

	c.JSON(http.StatusOK, response)
}

type TopUpParams struct {
	Amount decimal.Decimal `binding:"required" json:"dollars"`
}

// TopUp POST RouteGroup + WalletTopUpRoute.
func (w *WalletHandler) TopUp(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params TopUpParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}
	amountCents, amountErr := centsFromDollars(params.Amount)
	if amountErr != nil {
		_ = c.AbortWithError(http.StatusUnprocessableEntity, amountErr).SetType(gin.ErrorTypePublic)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := w.svs.TopUp(reqCtx, currentUserID, amountCents); err != nil {
		if errors.Is(err, domain.ErrAmountTooSmall) {
			_ = c.AbortWithError(http.StatusUnprocessableEntity, errors.New("top-up is below the minimum")).
				SetType(gin.ErrorTypePublic)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.AbortWithStatus(http.StatusOK)
}

type TransferParams struct {
	ToEmail string          `binding:"required,email" json:"toEmail"`
	Amount  decimal.Decimal `binding:"required"       json:"dollars"`
	Memo    string          `binding:"max=255"        json:"memo"`
}

// Transfer POST RouteGroup + WalletTransfer. Перевод другому юзеру по email.
func (w *WalletHandler) Transfer(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params TransferParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}
	amountCents, amountErr := centsFromDollars(params.Amount)
	if amountErr != nil {
		_ = c.AbortWithError(http.StatusUnprocessableEntity, amountErr).SetType(gin.ErrorTypePublic)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	err := w.svs.Transfer(reqCtx, service.TransferArgs{
		FromUserID:  currentUserID,
		ToEmail:     params.ToEmail,
		AmountCents: amountCents,
		Memo:        params.Memo,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInsufficientFunds):
			_ = c.AbortWithError(http.StatusPaymentRequired, errors.New("insufficient wallet balance")).
				SetType(gin.ErrorTypePublic)
		case errors.Is(err, domain.ErrDailyLimitExceeded):
			_ = c.AbortWithError(http.StatusForbidden, errors.New("daily spending limit reached")).
				SetType(gin.ErrorTypePublic)
		case errors.Is(err, domain.ErrRecipientNotFound):
			c.AbortWithStatus(http.StatusNotFound)
		case errors.Is(err, domain.ErrSelfTransfer), errors.Is(err, domain.ErrAmountTooSmall):
			_ = c.AbortWithError(http.StatusUnprocessableEntity, err).SetType(gin.ErrorTypePublic)
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		}
		return
	}

	c.AbortWithStatus(http.StatusOK)
}
