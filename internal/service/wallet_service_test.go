package service

import (
	"context"
	"testing"
	"time"

	"github.com/clicks-pr/clicks-core/internal/domain"
	"github.com/clicks-pr/clicks-core/internal/repository/repoargs"
	"github.com/clicks-pr/clicks-core/internal/service/mocks"
	"github.com/clicks-pr/clicks-core/internal/servingwindow"
	"github.com/clicks-pr/clicks-core/pkg/uow"
	uowmocks "github.com/clicks-pr/clicks-core/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

var walletTestNow = time.Date(2026, 3, 5, 22, 30, 0, 0, time.UTC)

type WalletServiceTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockUOW       *uowmocks.MockUOW
	mockTX        *uowmocks.MockTX
	mockWallet    *mocks.MockWalletRepository
	mockUserRepo  *mocks.MockUserRepository
	walletService *WalletService
}

func TestWalletServiceSuite(t *testing.T) {
	suite.Run(t, new(WalletServiceTestSuite))
}

func (s *WalletServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockWallet = mocks.NewMockWalletRepository(s.mockCtrl)
	s.mockUserRepo = mocks.NewMockUserRepository(s.mockCtrl)

	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.WalletRepoName)).
		Return(s.mockWallet, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.WalletRepoName)).Return(s.mockWallet, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.UserRepoName)).Return(s.mockUserRepo, nil).AnyTimes()

	walletService, servErr := NewWalletService(
		s.mockUOW, servingwindow.FixedClock{T: walletTestNow}, time.UTC, 50000)
	s.Require().NoError(servErr)
	s.walletService = walletService
}

func (s *WalletServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *WalletServiceTestSuite) expectTx() {
	run := func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
		return fn(ctx, s.mockTX)
	}
	s.mockUOW.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(run).AnyTimes()
	s.mockUOW.EXPECT().DoWithRetry(gomock.Any(), gomock.Any()).DoAndReturn(run).AnyTimes()
}

func (s *WalletServiceTestSuite) TestTopUp() {
	s.expectTx()

	wallet := &domain.WalletAccount{ID: 11, UserID: 7}
	s.mockWallet.EXPECT().UpsertByUserID(gomock.Any(), int64(7)).Return(wallet, nil)
	s.mockWallet.EXPECT().
		CreateTxn(gomock.Any(), repoargs.WalletTxnCreate{
			WalletID:    11,
			Type:        domain.WalletTxnTopup,
			AmountCents: 2000,
			Memo:        "Wallet top-up",
		}).Return(&domain.WalletTxn{ID: 1}, nil)
	s.mockWallet.EXPECT().AdjustBalance(gomock.Any(), int64(11), int64(2000)).Return(nil)

	s.Require().NoError(s.walletService.TopUp(s.T().Context(), 7, 2000))
}

func (s *WalletServiceTestSuite) TestTopUpBelowMinimum() {
	// до транзакции дело не доходит
	err := s.walletService.TopUp(s.T().Context(), 7, MinTopUpCents-1)

	s.Require().ErrorIs(err, domain.ErrAmountTooSmall)
}

// Перевод: дебет отправителя и кредит получателя на одну и ту же сумму,
// ровно две записи леджера с перекрестными counterparty.
func (s *WalletServiceTestSuite) TestTransfer() {
	const amount int64 = 1500
	sender := &domain.WalletAccount{ID: 11, UserID: 7, BalanceCents: 5000}
	recipientWallet := &domain.WalletAccount{ID: 12, UserID: 9}
	recipient := &domain.User{ID: 9, Email: "maria@example.com", FirstName: "Maria"}

	s.expectTx()
	s.mockUserRepo.EXPECT().FindByEmail(gomock.Any(), recipient.Email).Return(recipient, nil)

	// 7 < 9: сначала блокируется кошелек отправителя
	gomock.InOrder(
		s.mockWallet.EXPECT().GetByUserIDForUpdate(gomock.Any(), int64(7)).Return(sender, nil),
		s.mockWallet.EXPECT().UpsertByUserID(gomock.Any(), int64(9)).Return(recipientWallet, nil),
	)
	s.mockWallet.EXPECT().SumOutboundSince(gomock.Any(), sender.ID, gomock.Any()).Return(int64(0), nil)

	var debited, credited int64
	s.mockWallet.EXPECT().
		CreateTxn(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.WalletTxnCreate) (*domain.WalletTxn, error) {
			switch args.Type {
			case domain.WalletTxnTransferOut:
				s.Equal(sender.ID, args.WalletID)
				s.Equal(recipient.ID, *args.CounterpartyUserID)
				s.Equal("To Maria", args.Memo)
				debited += args.AmountCents
			case domain.WalletTxnTransferIn:
				s.Equal(recipientWallet.ID, args.WalletID)
				s.Equal(int64(7), *args.CounterpartyUserID)
				credited += args.AmountCents
			default:
				s.Failf("unexpected txn type", "%s", args.Type)
			}
			return &domain.WalletTxn{}, nil
		}).Times(2)
	s.mockWallet.EXPECT().AdjustBalance(gomock.Any(), sender.ID, -amount).Return(nil)
	s.mockWallet.EXPECT().AdjustBalance(gomock.Any(), recipientWallet.ID, amount).Return(nil)

	err := s.walletService.Transfer(s.T().Context(), TransferArgs{
		FromUserID:  7,
		ToEmail:     recipient.Email,
		AmountCents: amount,
	})

	s.Require().NoError(err)
	// сохранение суммы: сколько ушло, столько пришло
	s.Equal(debited, credited)
	s.Equal(amount, debited)
}

// При fromUserID > toUserID порядок блокировок разворачивается.
func (s *WalletServiceTestSuite) TestTransferLockOrdering() {
	sender := &domain.WalletAccount{ID: 13, UserID: 20, BalanceCents: 5000}
	recipientWallet := &domain.WalletAccount{ID: 12, UserID: 9}
	recipient := &domain.User{ID: 9, Email: "maria@example.com", FirstName: "Maria"}

	s.expectTx()
	s.mockUserRepo.EXPECT().FindByEmail(gomock.Any(), recipient.Email).Return(recipient, nil)
	gomock.InOrder(
		s.mockWallet.EXPECT().UpsertByUserID(gomock.Any(), int64(9)).Return(recipientWallet, nil),
		s.mockWallet.EXPECT().GetByUserIDForUpdate(gomock.Any(), int64(20)).Return(sender, nil),
	)
	s.mockWallet.EXPECT().SumOutboundSince(gomock.Any(), sender.ID, gomock.Any()).Return(int64(0), nil)
	s.mockWallet.EXPECT().CreateTxn(gomock.Any(), gomock.Any()).Return(&domain.WalletTxn{}, nil).Times(2)
	s.mockWallet.EXPECT().AdjustBalance(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)

	err := s.walletService.Transfer(s.T().Context(), TransferArgs{
		FromUserID:  20,
		ToEmail:     recipient.Email,
		AmountCents: 500,
	})

	s.Require().NoError(err)
}

func (s *WalletServiceTestSuite) TestTransferErrors() {
	recipient := &domain.User{ID: 9, Email: "maria@example.com"}

	cases := []struct {
		name    string
		setup   func()
		args    TransferArgs
		wantErr error
	}{
		{
			name:    "below minimum",
			setup:   func() {},
			args:    TransferArgs{FromUserID: 7, ToEmail: recipient.Email, AmountCents: MinTransferCents - 1},
			wantErr: domain.ErrAmountTooSmall,
		},
		{
			name: "recipient not found",
			setup: func() {
				s.expectTx()
				s.mockUserRepo.EXPECT().FindByEmail(gomock.Any(), "ghost@example.com").
					Return(nil, domain.ErrRecordNotFound)
			},
			args:    TransferArgs{FromUserID: 7, ToEmail: "ghost@example.com", AmountCents: 500},
			wantErr: domain.ErrRecipientNotFound,
		},
		{
			name: "self transfer",
			setup: func() {
				s.expectTx()
				s.mockUserRepo.EXPECT().FindByEmail(gomock.Any(), recipient.Email).Return(recipient, nil)
			},
			args:    TransferArgs{FromUserID: 9, ToEmail: recipient.Email, AmountCents: 500},
			wantErr: domain.ErrSelfTransfer,
		},
		{
			name: "sender has no wallet",
			setup: func() {
				s.expectTx()
				s.mockUserRepo.EXPECT().FindByEmail(gomock.Any(), recipient.Email).Return(recipient, nil)
				s.mockWallet.EXPECT().GetByUserIDForUpdate(gomock.Any(), int64(7)).
					Return(nil, domain.ErrRecordNotFound)
			},
			args:    TransferArgs{FromUserID: 7, ToEmail: recipient.Email, AmountCents: 500},
			wantErr: domain.ErrInsufficientFunds,
		},
		{
			name: "insufficient funds",
			setup: func() {
				s.expectTx()
				s.mockUserRepo.EXPECT().FindByEmail(gomock.Any(), recipient.Email).Return(recipient, nil)
				s.mockWallet.EXPECT().GetByUserIDForUpdate(gomock.Any(), int64(7)).
					Return(&domain.WalletAccount{ID: 11, BalanceCents: 100}, nil)
				s.mockWallet.EXPECT().UpsertByUserID(gomock.Any(), int64(9)).
					Return(&domain.WalletAccount{ID: 12}, nil)
				s.mockWallet.EXPECT().SumOutboundSince(gomock.Any(), int64(11), gomock.Any()).
					Return(int64(0), nil)
			},
			args:    TransferArgs{FromUserID: 7, ToEmail: recipient.Email, AmountCents: 500},
			wantErr: domain.ErrInsufficientFunds,
		},
		{
			name: "daily limit",
			setup: func() {
				s.expectTx()
				s.mockUserRepo.EXPECT().FindByEmail(gomock.Any(), recipient.Email).Return(recipient, nil)
				s.mockWallet.EXPECT().GetByUserIDForUpdate(gomock.Any(), int64(7)).
					Return(&domain.WalletAccount{ID: 11, BalanceCents: 100000}, nil)
				s.mockWallet.EXPECT().UpsertByUserID(gomock.Any(), int64(9)).
					Return(&domain.WalletAccount{ID: 12}, nil)
				s.mockWallet.EXPECT().SumOutboundSince(gomock.Any(), int64(11), gomock.Any()).
					Return(int64(49900), nil)
			},
			args:    TransferArgs{FromUserID: 7, ToEmail: recipient.Email, AmountCents: 500},
			wantErr: domain.ErrDailyLimitExceeded,
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			t.setup()

			err := s.walletService.Transfer(s.T().Context(), t.args)

			s.Require().ErrorIs(err, t.wantErr)
		})
	}
}

func (s *WalletServiceTestSuite) TestStatement() {
	wallet := &domain.WalletAccount{ID: 11, UserID: 7, BalanceCents: 1500}
	txns := []domain.WalletTxn{
		{ID: 2, WalletID: 11, Type: domain.WalletTxnTransferOut, AmountCents: 500},
		{ID: 1, WalletID: 11, Type: domain.WalletTxnTopup, AmountCents: 2000},
	}

	s.mockWallet.EXPECT().GetByUserID(gomock.Any(), int64(7)).Return(wallet, nil)
	s.mockWallet.EXPECT().SumTxns(gomock.Any(), int64(11)).Return(int64(1500), nil)
	s.mockWallet.EXPECT().ListTxns(gomock.Any(), int64(11), int32(statementLimit)).Return(txns, nil)

	gotWallet, gotTxns, err := s.walletService.Statement(s.T().Context(), 7)

	s.Require().NoError(err)
	s.Equal(wallet, gotWallet)
	s.Len(gotTxns, 2)
}

// Выписка не отдается, если баланс разошелся с суммой леджера.
func (s *WalletServiceTestSuite) TestStatementLedgerDrift() {
	wallet := &domain.WalletAccount{ID: 11, UserID: 7, BalanceCents: 1500}

	s.mockWallet.EXPECT().GetByUserID(gomock.Any(), int64(7)).Return(wallet, nil)
	s.mockWallet.EXPECT().SumTxns(gomock.Any(), int64(11)).Return(int64(1400), nil)

	_, _, err := s.walletService.Statement(s.T().Context(), 7)

	s.Require().ErrorIs(err, domain.ErrLedgerDrift)
}

// Закон сохранения: после последовательности пополнений и перевода баланс
// каждого кошелька равен знаковой сумме его записей леджера. Записи и
// корректировки аккумулируются так же, как их посчитала бы SumTxns.
func (s *WalletServiceTestSuite) TestLedgerConservation() {
	const senderWalletID, recipientWalletID int64 = 11, 12
	recipient := &domain.User{ID: 9, Email: "maria@example.com", FirstName: "Maria"}

	balances := map[int64]int64{}
	ledgerSums := map[int64]int64{}

	s.expectTx()
	s.mockWallet.EXPECT().
		CreateTxn(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.WalletTxnCreate) (*domain.WalletTxn, error) {
			signed := args.AmountCents
			if args.Type == domain.WalletTxnTransferOut {
				signed = -signed
			}
			ledgerSums[args.WalletID] += signed
			return &domain.WalletTxn{WalletID: args.WalletID, Type: args.Type, AmountCents: args.AmountCents}, nil
		}).AnyTimes()
	s.mockWallet.EXPECT().
		AdjustBalance(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, walletID, deltaCents int64) error {
			balances[walletID] += deltaCents
			return nil
		}).AnyTimes()
	s.mockWallet.EXPECT().UpsertByUserID(gomock.Any(), int64(7)).
		DoAndReturn(func(_ context.Context, _ int64) (*domain.WalletAccount, error) {
			return &domain.WalletAccount{ID: senderWalletID, UserID: 7, BalanceCents: balances[senderWalletID]}, nil
		}).AnyTimes()
	s.mockWallet.EXPECT().UpsertByUserID(gomock.Any(), recipient.ID).
		DoAndReturn(func(_ context.Context, _ int64) (*domain.WalletAccount, error) {
			return &domain.WalletAccount{ID: recipientWalletID, UserID: recipient.ID, BalanceCents: balances[recipientWalletID]}, nil
		}).AnyTimes()
	s.mockWallet.EXPECT().GetByUserIDForUpdate(gomock.Any(), int64(7)).
		DoAndReturn(func(_ context.Context, _ int64) (*domain.WalletAccount, error) {
			return &domain.WalletAccount{ID: senderWalletID, UserID: 7, BalanceCents: balances[senderWalletID]}, nil
		}).AnyTimes()
	s.mockWallet.EXPECT().SumOutboundSince(gomock.Any(), senderWalletID, gomock.Any()).
		Return(int64(0), nil).AnyTimes()
	s.mockUserRepo.EXPECT().FindByEmail(gomock.Any(), recipient.Email).Return(recipient, nil)

	s.Require().NoError(s.walletService.TopUp(s.T().Context(), 7, 5000))
	s.Require().NoError(s.walletService.TopUp(s.T().Context(), 7, 2000))
	s.Require().NoError(s.walletService.Transfer(s.T().Context(), TransferArgs{
		FromUserID:  7,
		ToEmail:     recipient.Email,
		AmountCents: 1500,
	}))

	s.EqualValues(5500, balances[senderWalletID])
	s.EqualValues(1500, balances[recipientWalletID])
	s.Equal(balances[senderWalletID], ledgerSums[senderWalletID])
	s.Equal(balances[recipientWalletID], ledgerSums[recipientWalletID])
}
