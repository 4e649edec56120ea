package api

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
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
	"github.com/clicks-pr/clicks-core/internal/transport/api/mocks"
	"github.com/clicks-pr/clicks-core/internal/transport/api/testutils"
)

type WebhookHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockBillingService *mocks.MockBillingServicer
	webhookSecret      []byte
}

func TestWebhookHandlerSuite(t *testing.T) {
	suite.Run(t, new(WebhookHandlerTestSuite))
}

func (s *WebhookHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	defer mockCtrl.Finish()

	s.mockBillingService = mocks.NewMockBillingServicer(mockCtrl)
	s.webhookSecret = []byte("billing shared secret")

	router, routerErr := New(RouterArgs{
		Logger:         logger.New(os.Stdout),
		BillingService: s.mockBillingService,
		JWTSecretKey:   []byte("super secret key"),
	})
	s.Require().NoError(routerErr)
	s.router = router
}

func (s *WebhookHandlerTestSuite) sign(body []byte) string {
	mac := hmac.New(sha256.New, s.webhookSecret)
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func (s *WebhookHandlerTestSuite) TestBilling() {
	body := []byte(`{` +
		`"type":"invoice.payment_succeeded","venueId":3,"amountCents":2900,` +
		`"periodStart":"2026-03-01T00:00:00Z","periodEnd":"2026-04-01T00:00:00Z",` +
		`"providerRef":"in_001"}`)
	signature := s.sign(body)

	s.mockBillingService.EXPECT().VerifySignature(body, signature).Return(nil)
	s.mockBillingService.EXPECT().
		ApplyEvent(gomock.Any(), service.BillingEvent{
			Type:        service.BillingEventPaymentSucceeded,
			VenueID:     3,
			AmountCents: 2900,
			PeriodStart: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			PeriodEnd:   time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
			ProviderRef: "in_001",
		}).
		Return(nil)

	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    RouteGroup + BillingWebhookPath,
		Body:   bytes.NewReader(body),
	}, testutils.WithHeader(SignatureHeader, signature))
	defer func() {
		closeErr := res.Body.Close()
		s.Require().NoError(closeErr)
	}()

	s.Require().NoError(err)
	s.Equal(http.StatusOK, res.StatusCode)
}

func (s *WebhookHandlerTestSuite) TestBillingBadSignature() {
	body := []byte(`{"type":"invoice.payment_succeeded","venueId":3}`)

	s.mockBillingService.EXPECT().
		VerifySignature(body, "deadbeef").
		Return(service.ErrBadWebhookSignature)

	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    RouteGroup + BillingWebhookPath,
		Body:   bytes.NewReader(body),
	}, testutils.WithHeader(SignatureHeader, "deadbeef"))
	defer func() {
		closeErr := res.Body.Close()
		s.Require().NoError(closeErr)
	}()

	s.Require().NoError(err)
	s.Equal(http.StatusUnauthorized, res.StatusCode)
}

func (s *WebhookHandlerTestSuite) TestBillingUnknownVenue() {
	body := []byte(`{"type":"customer.subscription.deleted","venueId":999}`)
	signature := s.sign(body)

	s.mockBillingService.EXPECT().VerifySignature(body, signature).Return(nil)
	s.mockBillingService.EXPECT().
		ApplyEvent(gomock.Any(), gomock.Any()).
		Return(domain.ErrRecordNotFound)

	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    RouteGroup + BillingWebhookPath,
		Body:   bytes.NewReader(body),
	}, testutils.WithHeader(SignatureHeader, signature))
	defer func() {
		closeErr := res.Body.Close()
		s.Require().NoError(closeErr)
	}()

	s.Require().NoError(err)
	s.Equal(http.StatusNotFound, res.StatusCode)
}

func (s *WebhookHandlerTestSuite) TestBillingMalformedEvent() {
	body := []byte(`{"venueId":0}`)
	signature := s.sign(body)

	s.mockBillingService.EXPECT().VerifySignature(body, signature).Return(nil)

	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    RouteGroup + BillingWebhookPath,
		Body:   bytes.NewReader(body),
	}, testutils.WithHeader(SignatureHeader, signature))
	defer func() {
		closeErr := res.Body.Close()
		s.Require().NoError(closeErr)
	}()

	s.Require().NoError(err)
	s.Equal(http.StatusBadRequest, res.StatusCode)
}
