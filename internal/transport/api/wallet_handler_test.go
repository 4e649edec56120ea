package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	"github.com/clicks-pr/clicks-core/internal/domain"
	"github.com/clicks-pr/clicks-core/internal/logger"
	"github.com/clicks-pr/clicks-core/internal/service"
	"github.com/clicks-pr/clicks-core/internal/service/tokens"
	"github.com/clicks-pr/clicks-core/internal/transport/api/mocks"
	"github.com/clicks-pr/clicks-core/internal/transport/api/testutils"
)

type WalletHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockWalletService *mocks.MockWalletServicer
	jwtSecret         []byte
	jwtToken          string
	userID            int64
}

func TestWalletHandlerSuite(t *testing.T) {
	suite.Run(t, new(WalletHandlerTestSuite))
}

func (s *WalletHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	defer mockCtrl.Finish()

	s.mockWalletService = mocks.NewMockWalletServicer(mockCtrl)
	s.jwtSecret = []byte("super secret key")
	s.userID = 7

	router, routerErr := New(RouterArgs{
		Logger:        logger.New(os.Stdout),
		WalletService: s.mockWalletService,
		JWTSecretKey:  s.jwtSecret,
	})
	s.Require().NoError(routerErr)
	s.router = router

	token, tokenErr := tokens.GenerateUserJWT(s.userID, domain.RoleUser, time.Hour, s.jwtSecret)
	s.Require().NoError(tokenErr)
	s.jwtToken = token
}

func (s *WalletHandlerTestSuite) TestStatement() {
	counterparty := int64(9)
	s.mockWalletService.EXPECT().
		Statement(gomock.Any(), s.userID).
		Return(
			&domain.WalletAccount{ID: 11, UserID: s.userID, BalanceCents: 2350},
			[]domain.WalletTxn{
				{ID: 1, WalletID: 11, Type: domain.WalletTxnTopup, AmountCents: 5000},
				{
					ID: 2, WalletID: 11, Type: domain.WalletTxnTransferOut,
					AmountCents: 2650, CounterpartyUserID: &counterparty, Memo: "To Maria",
				},
			},
			nil,
		)

	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    RouteGroup + WalletRoute,
	}, testutils.WithBearer(s.jwtToken))
	defer func() {
		closeErr := res.Body.Close()
		s.Require().NoError(closeErr)
	}()

	s.Require().NoError(err)
	s.Require().Equal(http.StatusOK, res.StatusCode)

	var body WalletResponse
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
	s.Equal("23.5", body.Balance.String())
	s.Require().Len(body.Transactions, 2)
	s.Equal("To Maria", body.Transactions[1].Memo)
}

// Кошелька еще нет — отдаем нулевой баланс, а не 404: кошелек создается лениво.
func (s *WalletHandlerTestSuite) TestStatementNoWallet() {
	s.mockWalletService.EXPECT().
		Statement(gomock.Any(), s.userID).
		Return(nil, nil, domain.ErrRecordNotFound)

	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    RouteGroup + WalletRoute,
	}, testutils.WithBearer(s.jwtToken))
	defer func() {
		closeErr := res.Body.Close()
		s.Require().NoError(closeErr)
	}()

	s.Require().NoError(err)
	s.Require().Equal(http.StatusOK, res.StatusCode)

	var body WalletResponse
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
	s.True(body.Balance.IsZero())
	s.Empty(body.Transactions)
}

func (s *WalletHandlerTestSuite) TestTopUp() {
	cases := []struct {
		name       string
		payload    string
		wantCents  int64
		serviceErr error
		wantStatus int
	}{
		{
			name:       "all ok",
			payload:    `{"dollars":"25.00"}`,
			wantCents:  2500,
			wantStatus: http.StatusOK,
		}, {
			name:       "below minimum",
			payload:    `{"dollars":"5.00"}`,
			wantCents:  500,
			serviceErr: domain.ErrAmountTooSmall,
			wantStatus: http.StatusUnprocessableEntity,
		}, {
			name:       "fractional cent",
			payload:    `{"dollars":"10.005"}`,
			wantStatus: http.StatusUnprocessableEntity,
		}, {
			name:       "negative amount",
			payload:    `{"dollars":"-10"}`,
			wantStatus: http.StatusUnprocessableEntity,
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			if t.wantCents != 0 {
				s.mockWalletService.EXPECT().
					TopUp(gomock.Any(), s.userID, t.wantCents).
					Return(t.serviceErr).Times(1)
			}

			res, err := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    RouteGroup + WalletTopUpRoute,
				Body:   bytes.NewReader([]byte(t.payload)),
			}, testutils.WithBearer(s.jwtToken), testutils.WithHeader("Content-Type", "application/json"))
			defer func() {
				closeErr := res.Body.Close()
				s.Require().NoError(closeErr)
			}()

			s.Require().NoError(err)
			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}

func (s *WalletHandlerTestSuite) TestTransfer() {
	cases := []struct {
		name       string
		payload    string
		wantArgs   *service.TransferArgs
		serviceErr error
		wantStatus int
	}{
		{
			name:    "all ok",
			payload: `{"toEmail":"maria@example.com","dollars":"15.00","memo":"To Maria"}`,
			wantArgs: &service.TransferArgs{
				FromUserID:  7,
				ToEmail:     "maria@example.com",
				AmountCents: 1500,
				Memo:        "To Maria",
			},
			wantStatus: http.StatusOK,
		}, {
			name:    "insufficient funds",
			payload: `{"toEmail":"maria@example.com","dollars":"15.00"}`,
			wantArgs: &service.TransferArgs{
				FromUserID: 7, ToEmail: "maria@example.com", AmountCents: 1500,
			},
			serviceErr: domain.ErrInsufficientFunds,
			wantStatus: http.StatusPaymentRequired,
		}, {
			name:    "daily limit",
			payload: `{"toEmail":"maria@example.com","dollars":"15.00"}`,
			wantArgs: &service.TransferArgs{
				FromUserID: 7, ToEmail: "maria@example.com", AmountCents: 1500,
			},
			serviceErr: domain.ErrDailyLimitExceeded,
			wantStatus: http.StatusForbidden,
		}, {
			name:    "recipient missing",
			payload: `{"toEmail":"nobody@example.com","dollars":"15.00"}`,
			wantArgs: &service.TransferArgs{
				FromUserID: 7, ToEmail: "nobody@example.com", AmountCents: 1500,
			},
			serviceErr: domain.ErrRecipientNotFound,
			wantStatus: http.StatusNotFound,
		}, {
			name:    "self transfer",
			payload: `{"toEmail":"me@example.com","dollars":"15.00"}`,
			wantArgs: &service.TransferArgs{
				FromUserID: 7, ToEmail: "me@example.com", AmountCents: 1500,
			},
			serviceErr: domain.ErrSelfTransfer,
			wantStatus: http.StatusUnprocessableEntity,
		}, {
			name:       "not an email",
			payload:    `{"toEmail":"maria","dollars":"15.00"}`,
			wantStatus: http.StatusBadRequest,
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			if t.wantArgs != nil {
				s.mockWalletService.EXPECT().
					Transfer(gomock.Any(), *t.wantArgs).
					Return(t.serviceErr).Times(1)
			}

			res, err := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    RouteGroup + WalletTransfer,
				Body:   bytes.NewReader([]byte(t.payload)),
			}, testutils.WithBearer(s.jwtToken), testutils.WithHeader("Content-Type", "application/json"))
			defer func() {
				closeErr := res.Body.Close()
				s.Require().NoError(closeErr)
			}()

			s.Require().NoError(err)
			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}
