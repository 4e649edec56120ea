package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/clicks-pr/clicks-core/internal/domain"
	"github.com/clicks-pr/clicks-core/internal/repository/repoargs"
	"github.com/clicks-pr/clicks-core/internal/servingwindow"
	"github.com/clicks-pr/clicks-core/pkg/uow"
)

const orderHistoryLimit = 25
const venueQueueLimit = 50

type OrderService struct {
	uow             uow.UOW
	orderRepo       OrderRepository
	clock           servingwindow.Clock
	loc             *time.Location
	dailyLimitCents int64
}

func NewOrderService(
	u uow.UOW,
	clock servingwindow.Clock,
	loc *time.Location,
	dailyLimitCents int64,
) (*OrderService, error) {
	orderRepo, err := uow.GetRepositoryAs[OrderRepository](u, uow.RepositoryName(repoargs.OrderRepoName))
	if err != nil {
		return nil, err
	}
	return &OrderService{
		uow:             u,
		orderRepo:       orderRepo,
		clock:           clock,
		loc:             loc,
		dailyLimitCents: dailyLimitCents,
	}, nil
}

type OrderLine struct {
	MenuItemID int64
	Qty        int
}

type PlaceOrderArgs struct {
	UserID  int64
	VenueID int64
	Lines   []OrderLine
}

type PlacedOrder struct {
	OrderID    int64
	OrderCode  string
	VenueName  string
	TotalCents int64
}

// Place проводит заказ через цепочку предусловий и при успехе атомарно создает заказ,
// запись леджера TRANSFER_OUT и списание баланса. Проверки выполняются строго по порядку,
// обрываясь на первой неудаче:
//  1. открытый чекин в этом заведении — domain.ErrNotCheckedIn;
//  2. заведение существует — domain.ErrVenueNotFound; принимает заказы — domain.ErrVenueUnavailable;
//  3. все позиции существуют, принадлежат заведению и доступны — domain.ErrItemsUnavailable
//     (частичное совпадение — тоже отказ, частичных заказов не бывает);
//  4. для алкоголя окно продажи открыто — domain.ErrAlcoholWindowClosed;
//  5. дневной лимит исходящих — domain.ErrDailyLimitExceeded;
//  6. баланс достаточен — domain.ErrInsufficientFunds.
//
// Вся цепочка и коммит идут в одной транзакции со строкой кошелька под FOR UPDATE,
// так что конкурентный заказ не может выпотрошить кошелек между проверкой и списанием.
func (o *OrderService) Place(ctx context.Context, args PlaceOrderArgs) (*PlacedOrder, error) {
	var placed *PlacedOrder

	txErr := o.uow.DoWithRetry(ctx, func(c context.Context, tx uow.TX) error {
		checkInRepo, repoErr := uow.GetAs[CheckInRepository](tx, uow.RepositoryName(repoargs.CheckInRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}
		if _, err := checkInRepo.FindOpenAtVenue(c, args.UserID, args.VenueID); err != nil {
			if errors.Is(err, domain.ErrRecordNotFound) {
				return domain.ErrNotCheckedIn
			}
			return err //nolint:wrapcheck
		}

		venue, venueErr := o.loadVenue(c, tx, args.VenueID)
		if venueErr != nil {
			return venueErr
		}

		items, total, itemsErr := o.resolveLines(c, tx, venue, args.Lines)
		if itemsErr != nil {
			return itemsErr
		}

		now := o.clock.Now()

		walletRepo, walletRepoErr := uow.GetAs[WalletRepository](tx, uow.RepositoryName(repoargs.WalletRepoName))
		if walletRepoErr != nil {
			return walletRepoErr //nolint:wrapcheck
		}
		wallet, walletErr := walletRepo.GetByUserIDForUpdate(c, args.UserID)
		if walletErr != nil {
			if errors.Is(walletErr, domain.ErrRecordNotFound) {
				return domain.ErrInsufficientFunds
			}
			return walletErr //nolint:wrapcheck
		}

		if capErr := checkDailyLimit(c, walletRepo, wallet.ID, total, o.dailyLimitCents, now, o.loc); capErr != nil {
			return capErr
		}
		if wallet.BalanceCents < total {
			return domain.ErrInsufficientFunds
		}

		orderRepo, orderRepoErr := uow.GetAs[OrderRepository](tx, uow.RepositoryName(repoargs.OrderRepoName))
		if orderRepoErr != nil {
			return orderRepoErr //nolint:wrapcheck
		}
		order, createErr := orderRepo.Create(c, repoargs.OrderCreate{
			UserID:     args.UserID,
			VenueID:    args.VenueID,
			OrderCode:  generateOrderCode(),
			TotalCents: total,
			Items:      items,
		})
		if createErr != nil {
			return createErr //nolint:wrapcheck
		}

		if _, txnErr := walletRepo.CreateTxn(c, repoargs.WalletTxnCreate{
			WalletID:    wallet.ID,
			Type:        domain.WalletTxnTransferOut,
			AmountCents: total,
			Memo:        fmt.Sprintf("Order at %s", venue.Name),
		}); txnErr != nil {
			return txnErr //nolint:wrapcheck
		}
		if adjErr := walletRepo.AdjustBalance(c, wallet.ID, -total); adjErr != nil {
			return adjErr //nolint:wrapcheck
		}

		placed = &PlacedOrder{
			OrderID:    order.ID,
			OrderCode:  order.OrderCode,
			VenueName:  venue.Name,
			TotalCents: total,
		}
		return nil
	})

	if txErr != nil {
		return nil, fmt.Errorf("placing order: %w", txErr)
	}
	return placed, nil
}

func (o *OrderService) loadVenue(ctx context.Context, tx uow.TX, venueID int64) (*domain.Venue, error) {
	venueRepo, repoErr := uow.GetAs[VenueRepository](tx, uow.RepositoryName(repoargs.VenueRepoName))
	if repoErr != nil {
		return nil, repoErr //nolint:wrapcheck
	}
	venue, err := venueRepo.GetByID(ctx, venueID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, domain.ErrVenueNotFound
		}
		return nil, err //nolint:wrapcheck
	}
	if !venue.IsEnabled {
		return nil, domain.ErrVenueUnavailable
	}
	return venue, nil
}

// resolveLines превращает строки корзины в снапшоты позиций и считает итог.
// Алкогольные позиции дополнительно проверяются по действующему окну продажи.
func (o *OrderService) resolveLines(
	ctx context.Context,
	tx uow.TX,
	venue *domain.Venue,
	lines []OrderLine,
) ([]repoargs.OrderItemCreate, int64, error) {
	menuRepo, repoErr := uow.GetAs[MenuItemRepository](tx, uow.RepositoryName(repoargs.MenuItemRepoName))
	if repoErr != nil {
		return nil, 0, repoErr //nolint:wrapcheck
	}

	ids := make([]int64, len(lines))
	for i, line := range lines {
		ids[i] = line.MenuItemID
	}

	menuItems, itemsErr := menuRepo.GetAvailableForVenue(ctx, venue.ID, ids)
	if itemsErr != nil {
		return nil, 0, itemsErr //nolint:wrapcheck
	}
	byID := make(map[int64]domain.MenuItem, len(menuItems))
	for _, item := range menuItems {
		byID[item.ID] = item
	}

	var wantsAlcohol bool
	var total int64
	items := make([]repoargs.OrderItemCreate, len(lines))
	for i, line := range lines {
		item, ok := byID[line.MenuItemID]
		if !ok {
			return nil, 0, domain.ErrItemsUnavailable
		}
		if item.IsAlcohol {
			wantsAlcohol = true
		}
		total += item.PriceCents * int64(line.Qty)
		items[i] = repoargs.OrderItemCreate{
			MenuItemID: item.ID,
			Name:       item.Name,
			PriceCents: item.PriceCents,
			Qty:        line.Qty,
			IsAlcohol:  item.IsAlcohol,
		}
	}

	if wantsAlcohol {
		muniRepo, muniRepoErr := uow.GetAs[MunicipalityRepository](tx, uow.RepositoryName(repoargs.MunicipalityRepoName))
		if muniRepoErr != nil {
			return nil, 0, muniRepoErr //nolint:wrapcheck
		}
		muni, muniErr := muniRepo.GetByID(ctx, venue.MunicipalityID)
		if muniErr != nil {
			return nil, 0, muniErr //nolint:wrapcheck
		}
		window := servingwindow.Resolve(*muni, venue.AlcoholCutoffOverrideMins, o.clock.Now(), o.loc)
		if !window.Allowed {
			return nil, 0, domain.ErrAlcoholWindowClosed
		}
	}

	return items, total, nil
}

// AdvanceStatus переводит заказ в новый статус по запросу оператора заведения.
// Переход проверяется по центральной таблице; UPDATE выполняется с предусловием
// «статус не изменился с момента чтения», что делает машину состояний безопасной
// при случайном двойном сабмите. Вход в CANCELLED возвращает деньги REFUND-записью
// в той же транзакции — рефанд не может потеряться между записью статуса и записью леджера.
func (o *OrderService) AdvanceStatus(
	ctx context.Context,
	managerID int64,
	orderID int64,
	to domain.OrderStatusType,
) error {
	if !to.Valid() {
		return domain.NewIllegalTransitionError("", to)
	}

	txErr := o.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		orderRepo, repoErr := uow.GetAs[OrderRepository](tx, uow.RepositoryName(repoargs.OrderRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}
		order, orderErr := orderRepo.GetByID(c, orderID)
		if orderErr != nil {
			return orderErr //nolint:wrapcheck
		}

		venueRepo, venueRepoErr := uow.GetAs[VenueRepository](tx, uow.RepositoryName(repoargs.VenueRepoName))
		if venueRepoErr != nil {
			return venueRepoErr //nolint:wrapcheck
		}
		venue, venueErr := venueRepo.GetByManagerID(c, managerID)
		if venueErr != nil {
			if errors.Is(venueErr, domain.ErrRecordNotFound) {
				return domain.ErrForbidden
			}
			return venueErr //nolint:wrapcheck
		}
		if venue.ID != order.VenueID {
			return domain.ErrForbidden
		}

		if !order.Status.CanTransitionTo(to) {
			return domain.NewIllegalTransitionError(order.Status, to)
		}

		applied, updateErr := orderRepo.UpdateStatus(c, repoargs.OrderStatusUpdate{
			OrderID:  order.ID,
			Expected: order.Status,
			To:       to,
			At:       o.clock.Now(),
		})
		if updateErr != nil {
			return updateErr //nolint:wrapcheck
		}
		if !applied {
			// статус уже успел измениться конкурентным запросом
			return domain.NewIllegalTransitionError(order.Status, to)
		}

		if to == domain.OrderStatusCancelled && order.TotalCents > 0 {
			return refundOrder(c, tx, order, fmt.Sprintf("Refund — order %s cancelled", order.OrderCode))
		}
		return nil
	})

	if txErr != nil {
		var illegalErr *domain.IllegalTransitionError
		if errors.Is(txErr, domain.ErrForbidden) || errors.Is(txErr, domain.ErrRecordNotFound) ||
			errors.As(txErr, &illegalErr) {
			return txErr
		}
		return fmt.Errorf("advancing order %d: %w", orderID, txErr)
	}
	return nil
}

// GetByUserID возвращает заказы юзера с позициями, свежие сверху.
func (o *OrderService) GetByUserID(ctx context.Context, userID int64) ([]domain.Order, error) {
	orders, err := o.orderRepo.GetByUserID(ctx, userID, orderHistoryLimit)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return orders, nil
}

// GetVenueQueue — очередь заказов для оператора заведения.
func (o *OrderService) GetVenueQueue(ctx context.Context, managerID int64) ([]domain.Order, error) {
	var orders []domain.Order
	txErr := o.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		venueRepo, repoErr := uow.GetAs[VenueRepository](tx, uow.RepositoryName(repoargs.VenueRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}
		venue, venueErr := venueRepo.GetByManagerID(c, managerID)
		if venueErr != nil {
			return venueErr //nolint:wrapcheck
		}

		orderRepo, orderRepoErr := uow.GetAs[OrderRepository](tx, uow.RepositoryName(repoargs.OrderRepoName))
		if orderRepoErr != nil {
			return orderRepoErr //nolint:wrapcheck
		}
		var listErr error
		orders, listErr = orderRepo.GetByVenueID(c, venue.ID, venueQueueLimit)
		return listErr //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, txErr //nolint:wrapcheck
	}
	return orders, nil
}

// refundOrder возвращает полную сумму заказа на кошелек его владельца: одна REFUND-запись
// леджера и инкремент баланса в переданной транзакции. Дедупликацию рефандов леджер не делает —
// вызывающие потоки (машина состояний, пауза) сами гарантируют единственный вход в CANCELLED
// за счет предусловия UPDATE.
func refundOrder(ctx context.Context, tx uow.TX, order *domain.Order, memo string) error {
	walletRepo, repoErr := uow.GetAs[WalletRepository](tx, uow.RepositoryName(repoargs.WalletRepoName))
	if repoErr != nil {
		return repoErr //nolint:wrapcheck
	}

	wallet, walletErr := walletRepo.UpsertByUserID(ctx, order.UserID)
	if walletErr != nil {
		return walletErr //nolint:wrapcheck
	}
	if _, txnErr := walletRepo.CreateTxn(ctx, repoargs.WalletTxnCreate{
		WalletID:    wallet.ID,
		Type:        domain.WalletTxnRefund,
		AmountCents: order.TotalCents,
		Memo:        memo,
	}); txnErr != nil {
		return txnErr //nolint:wrapcheck
	}
	return walletRepo.AdjustBalance(ctx, wallet.ID, order.TotalCents) //nolint:wrapcheck
}

// checkDailyLimit сверяет сумму сегодняшних исходящих переводов (граница суток — местная полночь)
// плюс новое списание с дневным потолком.
func checkDailyLimit(
	ctx context.Context,
	walletRepo WalletRepository,
	walletID int64,
	amountCents int64,
	limitCents int64,
	now time.Time,
	loc *time.Location,
) error {
	spent, err := walletRepo.SumOutboundSince(ctx, walletID, civilDayStart(now, loc))
	if err != nil {
		return err //nolint:wrapcheck
	}
	if spent+amountCents > limitCents {
		return domain.ErrDailyLimitExceeded
	}
	return nil
}

// civilDayStart — местная полночь тех суток, в которые попадает now.
func civilDayStart(now time.Time, loc *time.Location) time.Time {
	local := now.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// generateOrderCode возвращает 6-значный код для выдачи заказа. Это не секрет,
// а человекочитаемый идентификатор для стойки — криптостойкость не требуется.
func generateOrderCode() string {
	return fmt.Sprintf("%06d", 100000+rand.IntN(900000)) //nolint:gosec
}
