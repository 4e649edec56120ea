package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/clicks-pr/clicks-core/internal/domain"
	"github.com/clicks-pr/clicks-core/internal/repository/repoargs"
	"github.com/clicks-pr/clicks-core/internal/servingwindow"
	"github.com/clicks-pr/clicks-core/pkg/uow"
)

const statementLimit = 25

// MinTopUpCents — минимальное пополнение ($10).
const MinTopUpCents int64 = 1000

// MinTransferCents — минимальный перевод ($1).
const MinTransferCents int64 = 100

type WalletService struct {
	uow             uow.UOW
	walletRepo      WalletRepository
	clock           servingwindow.Clock
	loc             *time.Location
	dailyLimitCents int64
}

func NewWalletService(
	u uow.UOW,
	clock servingwindow.Clock,
	loc *time.Location,
	dailyLimitCents int64,
) (*WalletService, error) {
	walletRepo, err := uow.GetRepositoryAs[WalletRepository](u, uow.RepositoryName(repoargs.WalletRepoName))
	if err != nil {
		return nil, err
	}
	return &WalletService{
		uow:             u,
		walletRepo:      walletRepo,
		clock:           clock,
		loc:             loc,
		dailyLimitCents: dailyLimitCents,
	}, nil
}

// TopUp зачисляет amountCents на кошелек юзера, лениво создавая кошелек при первом пополнении.
// Запись TOPUP и инкремент баланса идут одной транзакцией.
func (w *WalletService) TopUp(ctx context.Context, userID int64, amountCents int64) error {
	if amountCents < MinTopUpCents {
		return fmt.Errorf("top-up of %d cents: %w", amountCents, domain.ErrAmountTooSmall)
	}

	txErr := w.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		walletRepo, repoErr := uow.GetAs[WalletRepository](tx, uow.RepositoryName(repoargs.WalletRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}
		wallet, walletErr := walletRepo.UpsertByUserID(c, userID)
		if walletErr != nil {
			return walletErr //nolint:wrapcheck
		}
		if _, txnErr := walletRepo.CreateTxn(c, repoargs.WalletTxnCreate{
			WalletID:    wallet.ID,
			Type:        domain.WalletTxnTopup,
			AmountCents: amountCents,
			Memo:        "Wallet top-up",
		}); txnErr != nil {
			return txnErr //nolint:wrapcheck
		}
		return walletRepo.AdjustBalance(c, wallet.ID, amountCents) //nolint:wrapcheck
	})

	if txErr != nil {
		return fmt.Errorf("topping up wallet of user %d: %w", userID, txErr)
	}
	return nil
}

type TransferArgs struct {
	FromUserID  int64
	ToEmail     string
	AmountCents int64
	Memo        string
}

// Transfer переводит деньги между кошельками: ровно две записи леджера (TRANSFER_OUT у отправителя,
// TRANSFER_IN у получателя) и две корректировки балансов в одной транзакции.
// Кошелек получателя лениво создается. Дневной лимит исходящих — общий с заказами
// (оба пишут TRANSFER_OUT в один леджер).
//
// Оба кошелька блокируются в порядке возрастания user id: при встречных переводах A->B и B->A
// это исключает дедлок.
func (w *WalletService) Transfer(ctx context.Context, args TransferArgs) error {
	if args.AmountCents < MinTransferCents {
		return fmt.Errorf("transfer of %d cents: %w", args.AmountCents, domain.ErrAmountTooSmall)
	}

	txErr := w.uow.DoWithRetry(ctx, func(c context.Context, tx uow.TX) error {
		userRepo, userRepoErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
		if userRepoErr != nil {
			return userRepoErr //nolint:wrapcheck
		}
		recipient, recipientErr := userRepo.FindByEmail(c, args.ToEmail)
		if recipientErr != nil {
			if errors.Is(recipientErr, domain.ErrRecordNotFound) {
				return domain.ErrRecipientNotFound
			}
			return recipientErr //nolint:wrapcheck
		}
		if recipient.ID == args.FromUserID {
			return domain.ErrSelfTransfer
		}

		walletRepo, walletRepoErr := uow.GetAs[WalletRepository](tx, uow.RepositoryName(repoargs.WalletRepoName))
		if walletRepoErr != nil {
			return walletRepoErr //nolint:wrapcheck
		}

		senderWallet, recipientWallet, lockErr := lockWalletPair(c, walletRepo, args.FromUserID, recipient.ID)
		if lockErr != nil {
			return lockErr
		}

		now := w.clock.Now()
		if capErr := checkDailyLimit(
			c, walletRepo, senderWallet.ID, args.AmountCents, w.dailyLimitCents, now, w.loc,
		); capErr != nil {
			return capErr
		}
		if senderWallet.BalanceCents < args.AmountCents {
			return domain.ErrInsufficientFunds
		}

		outMemo := args.Memo
		if outMemo == "" {
			outMemo = fmt.Sprintf("To %s", recipient.FirstName)
		}
		if _, txnErr := walletRepo.CreateTxn(c, repoargs.WalletTxnCreate{
			WalletID:           senderWallet.ID,
			Type:               domain.WalletTxnTransferOut,
			AmountCents:        args.AmountCents,
			CounterpartyUserID: &recipient.ID,
			Memo:               outMemo,
		}); txnErr != nil {
			return txnErr //nolint:wrapcheck
		}
		if adjErr := walletRepo.AdjustBalance(c, senderWallet.ID, -args.AmountCents); adjErr != nil {
			return adjErr //nolint:wrapcheck
		}

		inMemo := args.Memo
		if inMemo == "" {
			inMemo = fmt.Sprintf("From user %d", args.FromUserID)
		}
		if _, txnErr := walletRepo.CreateTxn(c, repoargs.WalletTxnCreate{
			WalletID:           recipientWallet.ID,
			Type:               domain.WalletTxnTransferIn,
			AmountCents:        args.AmountCents,
			CounterpartyUserID: &args.FromUserID,
			Memo:               inMemo,
		}); txnErr != nil {
			return txnErr //nolint:wrapcheck
		}
		return walletRepo.AdjustBalance(c, recipientWallet.ID, args.AmountCents) //nolint:wrapcheck
	})

	if txErr != nil {
		if errors.Is(txErr, domain.ErrRecipientNotFound) || errors.Is(txErr, domain.ErrSelfTransfer) ||
			errors.Is(txErr, domain.ErrInsufficientFunds) || errors.Is(txErr, domain.ErrDailyLimitExceeded) {
			return txErr
		}
		return fmt.Errorf("transferring from user %d: %w", args.FromUserID, txErr)
	}
	return nil
}

// lockWalletPair берет блокировки кошельков отправителя и получателя в порядке возрастания user id.
// Отсутствие кошелька отправителя равносильно нулевому балансу.
func lockWalletPair(
	ctx context.Context,
	walletRepo WalletRepository,
	fromUserID, toUserID int64,
) (sender *domain.WalletAccount, recipient *domain.WalletAccount, err error) {
	lockSender := func() error {
		var lockErr error
		sender, lockErr = walletRepo.GetByUserIDForUpdate(ctx, fromUserID)
		if lockErr != nil {
			if errors.Is(lockErr, domain.ErrRecordNotFound) {
				return domain.ErrInsufficientFunds
			}
			return lockErr //nolint:wrapcheck
		}
		return nil
	}
	lockRecipient := func() error {
		var lockErr error
		recipient, lockErr = walletRepo.UpsertByUserID(ctx, toUserID)
		return lockErr //nolint:wrapcheck
	}

	if fromUserID < toUserID {
		if err = lockSender(); err != nil {
			return nil, nil, err
		}
		if err = lockRecipient(); err != nil {
			return nil, nil, err
		}
	} else {
		if err = lockRecipient(); err != nil {
			return nil, nil, err
		}
		if err = lockSender(); err != nil {
			return nil, nil, err
		}
	}
	return sender, recipient, nil
}

// Balance возвращает кошелек юзера. Отсутствие кошелька — domain.ErrRecordNotFound.
func (w *WalletService) Balance(ctx context.Context, userID int64) (*domain.WalletAccount, error) {
	wallet, err := w.walletRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return wallet, nil
}

// Statement возвращает кошелек и последние записи леджера.
// Перед выдачей сверяет баланс со знаковой суммой всех записей:
// расхождение означает поврежденный леджер, такую выписку отдавать нельзя.
func (w *WalletService) Statement(ctx context.Context, userID int64) (*domain.WalletAccount, []domain.WalletTxn, error) {
	wallet, err := w.walletRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, nil, err //nolint:wrapcheck
	}
	ledgerSum, sumErr := w.walletRepo.SumTxns(ctx, wallet.ID)
	if sumErr != nil {
		return nil, nil, sumErr //nolint:wrapcheck
	}
	if ledgerSum != wallet.BalanceCents {
		return nil, nil, fmt.Errorf(
			"wallet %d: balance %d, ledger sum %d: %w",
			wallet.ID, wallet.BalanceCents, ledgerSum, domain.ErrLedgerDrift,
		)
	}
	txns, txnsErr := w.walletRepo.ListTxns(ctx, wallet.ID, statementLimit)
	if txnsErr != nil {
		return nil, nil, txnsErr //nolint:wrapcheck
	}
	return wallet, txns, nil
}
