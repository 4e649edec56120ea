package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/clicks-pr/clicks-core/internal/domain"
	"github.com/clicks-pr/clicks-core/internal/repository/repoargs"
	"github.com/clicks-pr/clicks-core/internal/servingwindow"
	"github.com/clicks-pr/clicks-core/pkg/uow"
)

type VenueService struct {
	uow       uow.UOW
	venueRepo VenueRepository
	clock     servingwindow.Clock
}

func NewVenueService(u uow.UOW, clock servingwindow.Clock) (*VenueService, error) {
	venueRepo, err := uow.GetRepositoryAs[VenueRepository](u, uow.RepositoryName(repoargs.VenueRepoName))
	if err != nil {
		return nil, err
	}
	return &VenueService{
		uow:       u,
		venueRepo: venueRepo,
		clock:     clock,
	}, nil
}

type PauseResult struct {
	Paused          bool
	CancelledOrders int
}

// TogglePause ставит заведение менеджера на паузу либо снимает с нее.
//
// Пауза — одна транзакция: все нетерминальные заказы заведения блокируются, каждый переводится
// в CANCELLED с рефандом на кошелек владельца, затем заведение выключается с меткой pausedAt.
// Падение посреди паузы не может оставить часть заказов отмененными при включенном заведении:
// транзакция либо коммитится целиком, либо откатывается целиком.
//
// Снятие с паузы только включает заведение и очищает метку — других побочных эффектов нет.
func (v *VenueService) TogglePause(ctx context.Context, managerID int64) (*PauseResult, error) {
	var result PauseResult

	txErr := v.uow.DoWithRetry(ctx, func(c context.Context, tx uow.TX) error {
		venueRepo, repoErr := uow.GetAs[VenueRepository](tx, uow.RepositoryName(repoargs.VenueRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}
		venue, venueErr := venueRepo.GetByManagerID(c, managerID)
		if venueErr != nil {
			return venueErr //nolint:wrapcheck
		}

		if !venue.IsEnabled {
			result.Paused = false
			return venueRepo.SetEnabled(c, venue.ID, true, nil) //nolint:wrapcheck
		}

		cancelled, pauseErr := v.pauseLocked(c, tx, venueRepo, venue)
		if pauseErr != nil {
			return pauseErr
		}
		result.Paused = true
		result.CancelledOrders = cancelled
		return nil
	})

	if txErr != nil {
		if errors.Is(txErr, domain.ErrRecordNotFound) {
			return nil, txErr
		}
		return nil, fmt.Errorf("toggling pause for manager %d: %w", managerID, txErr)
	}
	return &result, nil
}

// DetachManager выполняет ту же последовательность пауза-отмена-рефанд и затем отвязывает
// менеджера от заведения. Вызывается при удалении аккаунта менеджера: открытые заказы не должны
// зависнуть у заведения, оставшегося без оператора.
func (v *VenueService) DetachManager(ctx context.Context, tx uow.TX, managerID int64) error {
	venueRepo, repoErr := uow.GetAs[VenueRepository](tx, uow.RepositoryName(repoargs.VenueRepoName))
	if repoErr != nil {
		return repoErr //nolint:wrapcheck
	}
	venue, venueErr := venueRepo.GetByManagerID(ctx, managerID)
	if venueErr != nil {
		if errors.Is(venueErr, domain.ErrRecordNotFound) {
			// юзер не управляет заведением, отвязывать нечего
			return nil
		}
		return venueErr //nolint:wrapcheck
	}

	if venue.IsEnabled {
		if _, pauseErr := v.pauseLocked(ctx, tx, venueRepo, venue); pauseErr != nil {
			return pauseErr
		}
	}
	return venueRepo.DetachManager(ctx, venue.ID) //nolint:wrapcheck
}

// pauseLocked отменяет все активные заказы заведения с рефандами и выключает его.
// Выполняется строго внутри переданной транзакции.
func (v *VenueService) pauseLocked(
	ctx context.Context,
	tx uow.TX,
	venueRepo VenueRepository,
	venue *domain.Venue,
) (int, error) {
	orderRepo, repoErr := uow.GetAs[OrderRepository](tx, uow.RepositoryName(repoargs.OrderRepoName))
	if repoErr != nil {
		return 0, repoErr //nolint:wrapcheck
	}

	activeOrders, listErr := orderRepo.ListActiveByVenueForUpdate(ctx, venue.ID)
	if listErr != nil {
		return 0, listErr //nolint:wrapcheck
	}

	now := v.clock.Now()
	cancelled := 0
	for i := range activeOrders {
		order := &activeOrders[i]
		if !order.Status.CanCancelAdministratively() {
			continue
		}
		applied, updateErr := orderRepo.UpdateStatus(ctx, repoargs.OrderStatusUpdate{
			OrderID:  order.ID,
			Expected: order.Status,
			To:       domain.OrderStatusCancelled,
			At:       now,
		})
		if updateErr != nil {
			return 0, updateErr //nolint:wrapcheck
		}
		if !applied {
			// строки под FOR UPDATE, статус смениться не мог
			return 0, fmt.Errorf("pausing venue %d: %w", venue.ID, domain.ErrUnknown)
		}
		if order.TotalCents > 0 {
			if refundErr := refundOrder(ctx, tx, order, fmt.Sprintf("Refund — %s paused", venue.Name)); refundErr != nil {
				return 0, refundErr
			}
		}
		cancelled++
	}

	if toggleErr := venueRepo.SetEnabled(ctx, venue.ID, false, &now); toggleErr != nil {
		return 0, toggleErr //nolint:wrapcheck
	}
	return cancelled, nil
}
