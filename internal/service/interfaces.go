package service

import (
	"context"
	"time"

	"github.com/clicks-pr/clicks-core/internal/domain"
	"github.com/clicks-pr/clicks-core/internal/repository/repoargs"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type PasswordHasher interface {
	HashPassword(password string) (string, error)
	ComparePassword(password string, hashedPassword string) bool
}

type UserRepository interface {
	CreateUser(ctx context.Context, args repoargs.CreateUser) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	UpdateBan(ctx context.Context, args repoargs.UpdateBan) error
	Delete(ctx context.Context, id int64) error
}

type MunicipalityRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Municipality, error)
	List(ctx context.Context) ([]domain.Municipality, error)
	UpdateWindow(ctx context.Context, args repoargs.MunicipalityWindowUpdate) error
}

type VenueRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Venue, error)
	GetByManagerID(ctx context.Context, managerID int64) (*domain.Venue, error)
	SetEnabled(ctx context.Context, venueID int64, enabled bool, pausedAt *time.Time) error
	UpdatePlan(ctx context.Context, args repoargs.VenuePlanUpdate) error
	DetachManager(ctx context.Context, venueID int64) error
}

type MenuItemRepository interface {
	GetAvailableForVenue(ctx context.Context, venueID int64, ids []int64) ([]domain.MenuItem, error)
	ListByVenue(ctx context.Context, venueID int64) ([]domain.MenuItem, error)
	Create(ctx context.Context, args repoargs.MenuItemCreate) (*domain.MenuItem, error)
	Update(ctx context.Context, args repoargs.MenuItemUpdate) (*domain.MenuItem, error)
	Delete(ctx context.Context, venueID, id int64) error
}

type CheckInRepository interface {
	FindOpenAtVenue(ctx context.Context, userID, venueID int64) (*domain.CheckIn, error)
	FindOpen(ctx context.Context, userID int64) (*domain.CheckIn, error)
	CloseOpen(ctx context.Context, userID int64, reason string, at time.Time) (int64, error)
	Create(ctx context.Context, userID, venueID int64, at time.Time) (*domain.CheckIn, error)
}

type OrderRepository interface {
	Create(ctx context.Context, args repoargs.OrderCreate) (*domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	UpdateStatus(ctx context.Context, args repoargs.OrderStatusUpdate) (bool, error)
	ListActiveByVenueForUpdate(ctx context.Context, venueID int64) ([]domain.Order, error)
	GetByUserID(ctx context.Context, userID int64, limit int32) ([]domain.Order, error)
	GetByVenueID(ctx context.Context, venueID int64, limit int32) ([]domain.Order, error)
}

type WalletRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.WalletAccount, error)
	GetByUserIDForUpdate(ctx context.Context, userID int64) (*domain.WalletAccount, error)
	UpsertByUserID(ctx context.Context, userID int64) (*domain.WalletAccount, error)
	AdjustBalance(ctx context.Context, walletID int64, deltaCents int64) error
	CreateTxn(ctx context.Context, args repoargs.WalletTxnCreate) (*domain.WalletTxn, error)
	SumOutboundSince(ctx context.Context, walletID int64, since time.Time) (int64, error)
	SumTxns(ctx context.Context, walletID int64) (int64, error)
	ListTxns(ctx context.Context, walletID int64, limit int32) ([]domain.WalletTxn, error)
}

type SubscriptionRepository interface {
	CreatePayment(ctx context.Context, args repoargs.SubscriptionPaymentCreate) (*domain.SubscriptionPayment, error)
}
