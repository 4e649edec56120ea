package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/clicks-pr/clicks-core/internal/domain"
	"github.com/clicks-pr/clicks-core/internal/repository/repoargs"
	"github.com/clicks-pr/clicks-core/internal/servingwindow"
	"github.com/clicks-pr/clicks-core/pkg/uow"
)

// События биллинг-провайдера, которые мы обрабатываем. Остальные типы подтверждаются
// без побочных эффектов, чтобы провайдер не ретраил их бесконечно.
const (
	BillingEventPaymentSucceeded    = "invoice.payment_succeeded"
	BillingEventPaymentFailed       = "invoice.payment_failed"
	BillingEventSubscriptionDeleted = "customer.subscription.deleted"
)

var ErrBadWebhookSignature = errors.New("webhook signature mismatch")

type BillingService struct {
	uow           uow.UOW
	clock         servingwindow.Clock
	webhookSecret []byte
}

func NewBillingService(u uow.UOW, clock servingwindow.Clock, webhookSecret []byte) *BillingService {
	return &BillingService{uow: u, clock: clock, webhookSecret: webhookSecret}
}

// VerifySignature сверяет hex-подпись HMAC-SHA256 тела вебхука с общим секретом.
func (s *BillingService) VerifySignature(body []byte, signature string) error {
	mac := hmac.New(sha256.New, s.webhookSecret)
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return ErrBadWebhookSignature
	}
	return nil
}

type BillingEvent struct {
	Type        string
	VenueID     int64
	AmountCents int64
	PeriodStart time.Time
	PeriodEnd   time.Time
	ProviderRef string
}

// ApplyEvent применяет событие биллинга к подписке заведения:
//   - успешный платеж переводит заведение на PRO до конца оплаченного периода
//     и пишет PAID-запись платежа;
//   - неуспешный платеж пишет FAILED-запись, план не трогает — провайдер еще будет ретраить;
//   - отмена подписки возвращает план FREE с немедленным окончанием.
//
// Запись платежа и смена плана идут в одной транзакции.
func (s *BillingService) ApplyEvent(ctx context.Context, event BillingEvent) error {
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		venueRepo, venueRepoErr := uow.GetAs[VenueRepository](tx, uow.RepositoryName(repoargs.VenueRepoName))
		if venueRepoErr != nil {
			return venueRepoErr //nolint:wrapcheck
		}
		if _, err := venueRepo.GetByID(c, event.VenueID); err != nil {
			return err //nolint:wrapcheck
		}

		now := s.clock.Now()
		switch event.Type {
		case BillingEventPaymentSucceeded:
			if err := s.recordPayment(c, tx, event, domain.SubscriptionPaymentPaid, now); err != nil {
				return err
			}
			return venueRepo.UpdatePlan(c, repoargs.VenuePlanUpdate{ //nolint:wrapcheck
				VenueID:   event.VenueID,
				Plan:      domain.PlanPro,
				StartedAt: &event.PeriodStart,
				EndsAt:    &event.PeriodEnd,
			})
		case BillingEventPaymentFailed:
			return s.recordPayment(c, tx, event, domain.SubscriptionPaymentFailed, now)
		case BillingEventSubscriptionDeleted:
			return venueRepo.UpdatePlan(c, repoargs.VenuePlanUpdate{ //nolint:wrapcheck
				VenueID: event.VenueID,
				Plan:    domain.PlanFree,
				EndsAt:  &now,
			})
		default:
			// незнакомое событие — не ошибка
			return nil
		}
	})

	if txErr != nil {
		if errors.Is(txErr, domain.ErrRecordNotFound) {
			return txErr
		}
		return fmt.Errorf("applying billing event %q for venue %d: %w", event.Type, event.VenueID, txErr)
	}
	return nil
}

func (s *BillingService) recordPayment(
	ctx context.Context,
	tx uow.TX,
	event BillingEvent,
	status domain.SubscriptionPaymentStatusType,
	now time.Time,
) error {
	subRepo, repoErr := uow.GetAs[SubscriptionRepository](tx, uow.RepositoryName(repoargs.SubscriptionRepoName))
	if repoErr != nil {
		return repoErr //nolint:wrapcheck
	}
	_, err := subRepo.CreatePayment(ctx, repoargs.SubscriptionPaymentCreate{
		VenueID:     event.VenueID,
		AmountCents: event.AmountCents,
		PaidAt:      now,
		PeriodStart: event.PeriodStart,
		PeriodEnd:   event.PeriodEnd,
		ProviderRef: event.ProviderRef,
		Status:      status,
	})
	return err //nolint:wrapcheck
}
