package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/clicks-pr/clicks-core/internal/domain"
	"github.com/clicks-pr/clicks-core/internal/repository/repoargs"
	"github.com/clicks-pr/clicks-core/pkg/uow"
)

const minutesPerDay = 24 * 60

var ErrMinutesOutOfRange = errors.New("minutes must be within [0, 1440)")

type MunicipalityService struct {
	uow      uow.UOW
	muniRepo MunicipalityRepository
}

func NewMunicipalityService(u uow.UOW) (*MunicipalityService, error) {
	muniRepo, err := uow.GetRepositoryAs[MunicipalityRepository](u, uow.RepositoryName(repoargs.MunicipalityRepoName))
	if err != nil {
		return nil, err
	}
	return &MunicipalityService{uow: u, muniRepo: muniRepo}, nil
}

func (s *MunicipalityService) List(ctx context.Context) ([]domain.Municipality, error) {
	munis, err := s.muniRepo.List(ctx)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return munis, nil
}

func (s *MunicipalityService) Get(ctx context.Context, id int64) (*domain.Municipality, error) {
	muni, err := s.muniRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return muni, nil
}

// UpdateWindow обновляет дефолтное окно и дневные переопределения муниципалитета.
// Старт раньше дедлайна и старт позже дедлайна одинаково допустимы: второе означает
// окно через полночь. Единственное ограничение — минуты в пределах суток.
func (s *MunicipalityService) UpdateWindow(ctx context.Context, args repoargs.MunicipalityWindowUpdate) error {
	if !minutesInDay(args.DefaultStartMins) || !minutesInDay(args.DefaultCutoffMins) {
		return ErrMinutesOutOfRange
	}
	for day := range args.DayStartMins {
		if m := args.DayStartMins[day]; m != nil && !minutesInDay(*m) {
			return ErrMinutesOutOfRange
		}
		if m := args.DayCutoffMins[day]; m != nil && !minutesInDay(*m) {
			return ErrMinutesOutOfRange
		}
	}

	if err := s.muniRepo.UpdateWindow(ctx, args); err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return err //nolint:wrapcheck
		}
		return fmt.Errorf("updating window for municipality %d: %w", args.ID, err)
	}
	return nil
}

func minutesInDay(m int) bool {
	return m >= 0 && m < minutesPerDay
}
