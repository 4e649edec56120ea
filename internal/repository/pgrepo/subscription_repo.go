package pgrepo

import (
	"context"

	"github.com/clicks-pr/clicks-core/internal/domain"
	"github.com/clicks-pr/clicks-core/internal/repository/repoargs"
	"github.com/clicks-pr/clicks-core/pkg/uow"
)

type SubscriptionRepository struct {
	conn uow.DBTX
}

func NewSubscriptionRepository(conn uow.DBTX) *SubscriptionRepository {
	return &SubscriptionRepository{conn: conn}
}

func (s *SubscriptionRepository) CreatePayment(
	ctx context.Context,
	args repoargs.SubscriptionPaymentCreate,
) (*domain.SubscriptionPayment, error) {
	row := s.conn.QueryRow(ctx, `
		INSERT INTO subscription_payments (venue_id, amount_cents, paid_at, period_start, period_end, provider_ref, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, venue_id, amount_cents, paid_at, period_start, period_end, provider_ref, status`,
		args.VenueID, args.AmountCents, args.PaidAt, args.PeriodStart, args.PeriodEnd, args.ProviderRef, args.Status)

	var payment domain.SubscriptionPayment
	if err := row.Scan(
		&payment.ID, &payment.CreatedAt, &payment.VenueID, &payment.AmountCents,
		&payment.PaidAt, &payment.PeriodStart, &payment.PeriodEnd, &payment.ProviderRef, &payment.Status,
	); err != nil {
		return nil, convertErr(err, "creating subscription payment for venue %d", args.VenueID)
	}
	return &payment, nil
}
