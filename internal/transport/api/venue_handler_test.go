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

type VenueHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockOrderService *mocks.MockOrderServicer
	mockVenueService *mocks.MockVenueServicer
	mockMenuService  *mocks.MockMenuServicer
	jwtSecret        []byte
}

func TestVenueHandlerSuite(t *testing.T) {
	suite.Run(t, new(VenueHandlerTestSuite))
}

func (s *VenueHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	defer mockCtrl.Finish()

	s.mockOrderService = mocks.NewMockOrderServicer(mockCtrl)
	s.mockVenueService = mocks.NewMockVenueServicer(mockCtrl)
	s.mockMenuService = mocks.NewMockMenuServicer(mockCtrl)
	s.jwtSecret = []byte("super secret key")

	router, routerErr := New(RouterArgs{
		Logger:       logger.New(os.Stdout),
		OrderService: s.mockOrderService,
		VenueService: s.mockVenueService,
		MenuService:  s.mockMenuService,
		JWTSecretKey: s.jwtSecret,
	})
	s.Require().NoError(routerErr)
	s.router = router
}

func (s *VenueHandlerTestSuite) token(userID int64, role domain.UserRoleType) string {
	token, err := tokens.GenerateUserJWT(userID, role, time.Hour, s.jwtSecret)
	s.Require().NoError(err)
	return token
}

// Роуты оператора закрыты от обычных юзеров: гостевой токен дает 403, а не 401.
func (s *VenueHandlerTestSuite) TestRoleGate() {
	guestToken := s.token(7, domain.RoleUser)

	cases := []struct {
		method string
		url    string
	}{
		{http.MethodGet, RouteGroup + VenueOrdersRoute},
		{http.MethodPost, RouteGroup + VenuePauseRoute},
		{http.MethodGet, RouteGroup + ManagerMenuRoute},
	}
	for _, t := range cases {
		s.Run(t.method+" "+t.url, func() {
			res, err := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: t.method,
				URL:    t.url,
			}, testutils.WithBearer(guestToken))
			defer func() {
				closeErr := res.Body.Close()
				s.Require().NoError(closeErr)
			}()

			s.Require().NoError(err)
			s.Equal(http.StatusForbidden, res.StatusCode)
		})
	}
}

func (s *VenueHandlerTestSuite) TestOrdersQueue() {
	var managerID int64 = 40
	managerToken := s.token(managerID, domain.RoleVenue)

	orders := []domain.Order{
		{ID: 1, OrderCode: "X7K2P9", TotalCents: 850, Status: domain.OrderStatusPlaced},
	}
	s.mockOrderService.EXPECT().GetVenueQueue(gomock.Any(), managerID).Return(orders, nil)

	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    RouteGroup + VenueOrdersRoute,
	}, testutils.WithBearer(managerToken))
	defer func() {
		closeErr := res.Body.Close()
		s.Require().NoError(closeErr)
	}()

	s.Require().NoError(err)
	s.Equal(http.StatusOK, res.StatusCode)
}

func (s *VenueHandlerTestSuite) TestUpdateOrderStatus() {
	var managerID int64 = 40
	managerToken := s.token(managerID, domain.RoleVenue)

	cases := []struct {
		name       string
		orderID    string
		status     string
		serviceErr error
		wantStatus int
	}{
		{
			name:       "legal transition",
			orderID:    "1",
			status:     string(domain.OrderStatusAccepted),
			wantStatus: http.StatusOK,
		}, {
			name:    "illegal transition",
			orderID: "1",
			status:  string(domain.OrderStatusCompleted),
			serviceErr: domain.NewIllegalTransitionError(
				domain.OrderStatusPlaced, domain.OrderStatusCompleted),
			wantStatus: http.StatusBadRequest,
		}, {
			name:       "foreign venue order",
			orderID:    "1",
			status:     string(domain.OrderStatusAccepted),
			serviceErr: domain.ErrForbidden,
			wantStatus: http.StatusForbidden,
		}, {
			name:       "order missing",
			orderID:    "999",
			status:     string(domain.OrderStatusAccepted),
			serviceErr: domain.ErrRecordNotFound,
			wantStatus: http.StatusNotFound,
		}, {
			name:       "unknown status value",
			orderID:    "1",
			status:     "TELEPORTED",
			wantStatus: http.StatusBadRequest,
		}, {
			name:       "bad order id",
			orderID:    "abc",
			status:     string(domain.OrderStatusAccepted),
			wantStatus: http.StatusBadRequest,
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			if t.status != "TELEPORTED" && t.orderID != "abc" {
				s.mockOrderService.EXPECT().
					AdvanceStatus(gomock.Any(), managerID, gomock.Any(), domain.OrderStatusType(t.status)).
					Return(t.serviceErr).Times(1)
			}

			payload, marshalErr := json.Marshal(gin.H{"status": t.status})
			s.Require().NoError(marshalErr)

			res, err := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPatch,
				URL:    RouteGroup + "/v/orders/" + t.orderID,
				Body:   bytes.NewReader(payload),
			}, testutils.WithBearer(managerToken), testutils.WithHeader("Content-Type", "application/json"))
			defer func() {
				closeErr := res.Body.Close()
				s.Require().NoError(closeErr)
			}()

			s.Require().NoError(err)
			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}

func (s *VenueHandlerTestSuite) TestTogglePause() {
	var managerID int64 = 40
	managerToken := s.token(managerID, domain.RoleVenue)

	s.mockVenueService.EXPECT().
		TogglePause(gomock.Any(), managerID).
		Return(&service.PauseResult{Paused: true, CancelledOrders: 3}, nil)

	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    RouteGroup + VenuePauseRoute,
	}, testutils.WithBearer(managerToken))
	defer func() {
		closeErr := res.Body.Close()
		s.Require().NoError(closeErr)
	}()

	s.Require().NoError(err)
	s.Require().Equal(http.StatusOK, res.StatusCode)

	var body PauseResponse
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
	s.True(body.Paused)
	s.Equal(3, body.CancelledOrders)
}

// Публичное меню отдается без токена, скрытые позиции отфильтровываются.
func (s *VenueHandlerTestSuite) TestPublicMenu() {
	items := []domain.MenuItem{
		{ID: 10, Name: "Medalla", PriceCents: 500, IsAlcohol: true, IsAvailable: true},
		{ID: 11, Name: "Tostones", PriceCents: 350, IsAvailable: false},
	}
	s.mockMenuService.EXPECT().ListByVenue(gomock.Any(), int64(3)).Return(items, nil)

	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    RouteGroup + "/venues/3/menu",
	})
	defer func() {
		closeErr := res.Body.Close()
		s.Require().NoError(closeErr)
	}()

	s.Require().NoError(err)
	s.Require().Equal(http.StatusOK, res.StatusCode)

	var body []MenuItemResponse
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
	s.Require().Len(body, 1)
	s.Equal("Medalla", body[0].Name)
}
