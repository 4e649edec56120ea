package api

import (
	"bytes"
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

type OrdersHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockOrderService *mocks.MockOrderServicer
	jwtSecret        []byte
}

func TestOrdersHandlerSuite(t *testing.T) {
	suite.Run(t, new(OrdersHandlerTestSuite))
}

func (s *OrdersHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	defer mockCtrl.Finish()

	s.mockOrderService = mocks.NewMockOrderServicer(mockCtrl)
	s.jwtSecret = []byte("super secret key")

	router, routerErr := New(RouterArgs{
		Logger:       logger.New(os.Stdout),
		OrderService: s.mockOrderService,
		JWTSecretKey: s.jwtSecret,
	})
	s.Require().NoError(routerErr)
	s.router = router
}

func (s *OrdersHandlerTestSuite) userToken(userID int64) string {
	token, err := tokens.GenerateUserJWT(userID, domain.RoleUser, time.Hour, s.jwtSecret)
	s.Require().NoError(err)
	return token
}

func (s *OrdersHandlerTestSuite) TestCreateOrder() {
	var currentUserID int64 = 7

	jwtToken := s.userToken(currentUserID)

	validPayload := []byte(`{"venueId":3,"items":[{"menuItemId":10,"qty":2}]}`)
	invalidPayload := []byte(`{"venueId":3,"items":[]}`)

	cases := []struct {
		name       string
		payload    []byte
		placeErr   error
		jwtToken   string
		wantStatus int
	}{
		{
			name:       "all ok",
			payload:    validPayload,
			jwtToken:   jwtToken,
			wantStatus: http.StatusCreated,
		}, {
			name:       "not checked in",
			payload:    validPayload,
			placeErr:   domain.ErrNotCheckedIn,
			jwtToken:   jwtToken,
			wantStatus: http.StatusForbidden,
		}, {
			name:       "window closed",
			payload:    validPayload,
			placeErr:   domain.ErrAlcoholWindowClosed,
			jwtToken:   jwtToken,
			wantStatus: http.StatusForbidden,
		}, {
			name:       "no money",
			payload:    validPayload,
			placeErr:   domain.ErrInsufficientFunds,
			jwtToken:   jwtToken,
			wantStatus: http.StatusPaymentRequired,
		}, {
			name:       "daily limit",
			payload:    validPayload,
			placeErr:   domain.ErrDailyLimitExceeded,
			jwtToken:   jwtToken,
			wantStatus: http.StatusForbidden,
		}, {
			name:       "venue paused",
			payload:    validPayload,
			placeErr:   domain.ErrVenueUnavailable,
			jwtToken:   jwtToken,
			wantStatus: http.StatusConflict,
		}, {
			name:       "items unavailable",
			payload:    validPayload,
			placeErr:   domain.ErrItemsUnavailable,
			jwtToken:   jwtToken,
			wantStatus: http.StatusConflict,
		}, {
			name:       "venue missing",
			payload:    validPayload,
			placeErr:   domain.ErrVenueNotFound,
			jwtToken:   jwtToken,
			wantStatus: http.StatusNotFound,
		}, {
			name:       "not authorized",
			payload:    validPayload,
			wantStatus: http.StatusUnauthorized,
		}, {
			name:       "empty items",
			payload:    invalidPayload,
			jwtToken:   jwtToken,
			wantStatus: http.StatusBadRequest,
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			// моки настраиваются по кейсу: без авторизации и на невалидном
			// теле до сервиса дойти не должны
			if t.jwtToken != "" && bytes.Equal(t.payload, validPayload) {
				if t.placeErr != nil {
					s.mockOrderService.EXPECT().
						Place(gomock.Any(), gomock.Any()).
						Return(nil, t.placeErr).Times(1)
				} else {
					s.mockOrderService.EXPECT().
						Place(gomock.Any(), service.PlaceOrderArgs{
							UserID:  currentUserID,
							VenueID: 3,
							Lines:   []service.OrderLine{{MenuItemID: 10, Qty: 2}},
						}).
						Return(&service.PlacedOrder{
							OrderID:    1,
							OrderCode:  "X7K2P9",
							VenueName:  "La Placita",
							TotalCents: 1000,
						}, nil).Times(1)
				}
			}

			args := testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    RouteGroup + OrdersRoute,
				Body:   bytes.NewReader(t.payload),
			}
			var reqOpts []func(*testutils.RequestOptions)
			if t.jwtToken != "" {
				reqOpts = append(reqOpts, testutils.WithBearer(t.jwtToken))
			}
			reqOpts = append(reqOpts, testutils.WithHeader("Content-Type", "application/json"))
			res, err := testutils.MakeRequest(args, reqOpts...)

			defer func() {
				closeErr := res.Body.Close()
				s.Require().NoError(closeErr)
			}()

			s.Require().NoError(err)
			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}

func (s *OrdersHandlerTestSuite) TestIndex() {
	var userID int64 = 7
	var noOrdersUserID int64 = 8

	userJWTToken := s.userToken(userID)
	noOrdersJWTToken := s.userToken(noOrdersUserID)

	orders := []domain.Order{
		{
			ID:         1,
			CreatedAt:  time.Now(),
			UpdatedAt:  time.Now(),
			UserID:     userID,
			VenueID:    3,
			OrderCode:  "X7K2P9",
			TotalCents: 850,
			Status:     domain.OrderStatusPlaced,
			Items: []domain.OrderItem{
				{Name: "Medalla", PriceCents: 500, Qty: 1},
				{Name: "Tostones", PriceCents: 350, Qty: 1},
			},
		},
	}
	s.mockOrderService.EXPECT().GetByUserID(gomock.Any(), userID).Return(orders, nil)
	s.mockOrderService.EXPECT().GetByUserID(gomock.Any(), noOrdersUserID).Return([]domain.Order{}, nil)

	cases := []struct {
		name       string
		jwtToken   string
		wantStatus int
	}{
		{
			name:       "all ok",
			jwtToken:   userJWTToken,
			wantStatus: http.StatusOK,
		}, {
			name:       "not authorized",
			jwtToken:   "",
			wantStatus: http.StatusUnauthorized,
		}, {
			name:       "no orders",
			jwtToken:   noOrdersJWTToken,
			wantStatus: http.StatusNoContent,
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			args := testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodGet,
				URL:    RouteGroup + OrdersRoute,
			}
			var reqOpts []func(*testutils.RequestOptions)
			if t.jwtToken != "" {
				reqOpts = append(reqOpts, testutils.WithBearer(t.jwtToken))
			}
			res, err := testutils.MakeRequest(args, reqOpts...)
			defer func() {
				closeErr := res.Body.Close()
				s.Require().NoError(closeErr)
			}()

			s.Require().NoError(err)
			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}
