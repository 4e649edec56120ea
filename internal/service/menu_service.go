package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/clicks-pr/clicks-core/internal/domain"
	"github.com/clicks-pr/clicks-core/internal/repository/repoargs"
	"github.com/clicks-pr/clicks-core/pkg/uow"
)

// MenuService — CRUD позиций меню для менеджера заведения плюс публичный листинг.
// Принадлежность позиции заведению менеджера проверяется на каждой записи.
type MenuService struct {
	uow uow.UOW
}

func NewMenuService(u uow.UOW) *MenuService {
	return &MenuService{uow: u}
}

func (s *MenuService) ListByVenue(ctx context.Context, venueID int64) ([]domain.MenuItem, error) {
	var items []domain.MenuItem
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		menuRepo, repoErr := uow.GetAs[MenuItemRepository](tx, uow.RepositoryName(repoargs.MenuItemRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}
		var listErr error
		items, listErr = menuRepo.ListByVenue(c, venueID)
		return listErr //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, txErr //nolint:wrapcheck
	}
	return items, nil
}

// ListOwn возвращает меню заведения, которым управляет менеджер, включая скрытые позиции.
func (s *MenuService) ListOwn(ctx context.Context, managerID int64) ([]domain.MenuItem, error) {
	var items []domain.MenuItem
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		venue, venueErr := managedVenue(c, tx, managerID)
		if venueErr != nil {
			return venueErr
		}
		menuRepo, repoErr := uow.GetAs[MenuItemRepository](tx, uow.RepositoryName(repoargs.MenuItemRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}
		var listErr error
		items, listErr = menuRepo.ListByVenue(c, venue.ID)
		return listErr //nolint:wrapcheck
	})
	if txErr != nil {
		if errors.Is(txErr, domain.ErrForbidden) {
			return nil, txErr
		}
		return nil, fmt.Errorf("listing own menu: %w", txErr)
	}
	return items, nil
}

type MenuItemCreateArgs struct {
	Name        string
	PriceCents  int64
	IsAlcohol   bool
	IsAvailable bool
}

func (s *MenuService) Create(ctx context.Context, managerID int64, args MenuItemCreateArgs) (*domain.MenuItem, error) {
	var item *domain.MenuItem
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		venue, venueErr := managedVenue(c, tx, managerID)
		if venueErr != nil {
			return venueErr
		}
		menuRepo, repoErr := uow.GetAs[MenuItemRepository](tx, uow.RepositoryName(repoargs.MenuItemRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}
		var createErr error
		item, createErr = menuRepo.Create(c, repoargs.MenuItemCreate{
			VenueID:     venue.ID,
			Name:        args.Name,
			PriceCents:  args.PriceCents,
			IsAlcohol:   args.IsAlcohol,
			IsAvailable: args.IsAvailable,
		})
		return createErr //nolint:wrapcheck
	})
	if txErr != nil {
		if errors.Is(txErr, domain.ErrForbidden) {
			return nil, txErr
		}
		return nil, fmt.Errorf("creating menu item: %w", txErr)
	}
	return item, nil
}

type MenuItemUpdateArgs struct {
	ItemID      int64
	Name        *string
	PriceCents  *int64
	IsAvailable *bool
}

func (s *MenuService) Update(ctx context.Context, managerID int64, args MenuItemUpdateArgs) (*domain.MenuItem, error) {
	var item *domain.MenuItem
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		venue, venueErr := managedVenue(c, tx, managerID)
		if venueErr != nil {
			return venueErr
		}
		menuRepo, repoErr := uow.GetAs[MenuItemRepository](tx, uow.RepositoryName(repoargs.MenuItemRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}
		var updateErr error
		item, updateErr = menuRepo.Update(c, repoargs.MenuItemUpdate{
			ID:          args.ItemID,
			VenueID:     venue.ID,
			Name:        args.Name,
			PriceCents:  args.PriceCents,
			IsAvailable: args.IsAvailable,
		})
		return updateErr //nolint:wrapcheck
	})
	if txErr != nil {
		if errors.Is(txErr, domain.ErrForbidden) || errors.Is(txErr, domain.ErrRecordNotFound) {
			return nil, txErr
		}
		return nil, fmt.Errorf("updating menu item %d: %w", args.ItemID, txErr)
	}
	return item, nil
}

func (s *MenuService) Delete(ctx context.Context, managerID, itemID int64) error {
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		venue, venueErr := managedVenue(c, tx, managerID)
		if venueErr != nil {
			return venueErr
		}
		menuRepo, repoErr := uow.GetAs[MenuItemRepository](tx, uow.RepositoryName(repoargs.MenuItemRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}
		return menuRepo.Delete(c, venue.ID, itemID) //nolint:wrapcheck
	})
	if txErr != nil {
		if errors.Is(txErr, domain.ErrForbidden) || errors.Is(txErr, domain.ErrRecordNotFound) {
			return txErr
		}
		return fmt.Errorf("deleting menu item %d: %w", itemID, txErr)
	}
	return nil
}

// managedVenue возвращает заведение менеджера либо domain.ErrForbidden, если заведения нет.
func managedVenue(ctx context.Context, tx uow.TX, managerID int64) (*domain.Venue, error) {
	venueRepo, repoErr := uow.GetAs[VenueRepository](tx, uow.RepositoryName(repoargs.VenueRepoName))
	if repoErr != nil {
		return nil, repoErr //nolint:wrapcheck
	}
	venue, venueErr := venueRepo.GetByManagerID(ctx, managerID)
	if venueErr != nil {
		if errors.Is(venueErr, domain.ErrRecordNotFound) {
			return nil, domain.ErrForbidden
		}
		return nil, venueErr //nolint:wrapcheck
	}
	return venue, nil
}
