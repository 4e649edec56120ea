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

type CheckInService struct {
	uow   uow.UOW
	clock servingwindow.Clock
}

func NewCheckInService(u uow.UOW, clock servingwindow.Clock) *CheckInService {
	return &CheckInService{uow: u, clock: clock}
}

// CheckIn открывает чекин юзера в заведении. Открытый чекин может быть только один:
// предыдущий, если он есть, закрывается причиной "override" в той же транзакции —
// юзер физически не может находиться в двух барах сразу.
func (s *CheckInService) CheckIn(ctx context.Context, userID, venueID int64) (*domain.CheckIn, error) {
	var checkIn *domain.CheckIn

	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		venueRepo, repoErr := uow.GetAs[VenueRepository](tx, uow.RepositoryName(repoargs.VenueRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}
		venue, venueErr := venueRepo.GetByID(c, venueID)
		if venueErr != nil {
			if errors.Is(venueErr, domain.ErrRecordNotFound) {
				return domain.ErrVenueNotFound
			}
			return venueErr //nolint:wrapcheck
		}
		if !venue.IsEnabled {
			return domain.ErrVenueUnavailable
		}

		checkInRepo, checkInRepoErr := uow.GetAs[CheckInRepository](tx, uow.RepositoryName(repoargs.CheckInRepoName))
		if checkInRepoErr != nil {
			return checkInRepoErr //nolint:wrapcheck
		}

		now := s.clock.Now()
		if _, closeErr := checkInRepo.CloseOpen(c, userID, "override", now); closeErr != nil {
			return closeErr //nolint:wrapcheck
		}
		created, createErr := checkInRepo.Create(c, userID, venueID, now)
		if createErr != nil {
			return createErr //nolint:wrapcheck
		}
		checkIn = created
		return nil
	})

	if txErr != nil {
		if errors.Is(txErr, domain.ErrVenueNotFound) || errors.Is(txErr, domain.ErrVenueUnavailable) {
			return nil, txErr
		}
		return nil, fmt.Errorf("checking in user %d at venue %d: %w", userID, venueID, txErr)
	}
	return checkIn, nil
}

// CheckOut закрывает открытый чекин юзера причиной "manual".
// Отсутствие открытого чекина — domain.ErrNotCheckedIn.
func (s *CheckInService) CheckOut(ctx context.Context, userID int64) error {
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		checkInRepo, repoErr := uow.GetAs[CheckInRepository](tx, uow.RepositoryName(repoargs.CheckInRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}
		closed, closeErr := checkInRepo.CloseOpen(c, userID, "manual", s.clock.Now())
		if closeErr != nil {
			return closeErr //nolint:wrapcheck
		}
		if closed == 0 {
			return domain.ErrNotCheckedIn
		}
		return nil
	})

	if txErr != nil {
		if errors.Is(txErr, domain.ErrNotCheckedIn) {
			return txErr
		}
		return fmt.Errorf("checking out user %d: %w", userID, txErr)
	}
	return nil
}

// Current возвращает открытый чекин юзера либо domain.ErrNotCheckedIn.
func (s *CheckInService) Current(ctx context.Context, userID int64) (*domain.CheckIn, error) {
	var checkIn *domain.CheckIn
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		checkInRepo, repoErr := uow.GetAs[CheckInRepository](tx, uow.RepositoryName(repoargs.CheckInRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}
		found, err := checkInRepo.FindOpen(c, userID)
		if err != nil {
			if errors.Is(err, domain.ErrRecordNotFound) {
				return domain.ErrNotCheckedIn
			}
			return err //nolint:wrapcheck
		}
		checkIn = found
		return nil
	})
	if txErr != nil {
		return nil, txErr //nolint:wrapcheck
	}
	return checkIn, nil
}
