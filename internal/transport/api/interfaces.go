package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/clicks-pr/clicks-core/internal/domain"
	"github.com/clicks-pr/clicks-core/internal/repository/repoargs"
	"github.com/clicks-pr/clicks-core/internal/service"
)

// UserServicer интерфейс исключительно для моков.
type UserServicer interface {
	Register(ctx context.Context, args service.RegisterUserArgs) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	Ban(ctx context.Context, args service.BanUserArgs) error
	Unban(ctx context.Context, userID int64) error
	Delete(ctx context.Context, userID int64) error
}

type CheckInServicer interface {
	CheckIn(ctx context.Context, userID, venueID int64) (*domain.CheckIn, error)
	CheckOut(ctx context.Context, userID int64) error
	Current(ctx context.Context, userID int64) (*domain.CheckIn, error)
}

type OrderServicer interface {
	Place(ctx context.Context, args service.PlaceOrderArgs) (*service.PlacedOrder, error)
	AdvanceStatus(ctx context.Context, managerID, orderID int64, to domain.OrderStatusType) error
	GetByUserID(ctx context.Context, userID int64) ([]domain.Order, error)
	GetVenueQueue(ctx context.Context, managerID int64) ([]domain.Order, error)
}

type WalletServicer interface {
	TopUp(ctx context.Context, userID int64, amountCents int64) error
	Transfer(ctx context.Context, args service.TransferArgs) error
	Statement(ctx context.Context, userID int64) (*domain.WalletAccount, []domain.WalletTxn, error)
}

type VenueServicer interface {
	TogglePause(ctx context.Context, managerID int64) (*service.PauseResult, error)
}

type MenuServicer interface {
	ListByVenue(ctx context.Context, venueID int64) ([]domain.MenuItem, error)
	ListOwn(ctx context.Context, managerID int64) ([]domain.MenuItem, error)
	Create(ctx context.Context, managerID int64, args service.MenuItemCreateArgs) (*domain.MenuItem, error)
	Update(ctx context.Context, managerID int64, args service.MenuItemUpdateArgs) (*domain.MenuItem, error)
	Delete(ctx context.Context, managerID, itemID int64) error
}

type MunicipalityServicer interface {
	List(ctx context.Context) ([]domain.Municipality, error)
	UpdateWindow(ctx context.Context, args repoargs.MunicipalityWindowUpdate) error
}

type BillingServicer interface {
	VerifySignature(body []byte, signature string) error
	ApplyEvent(ctx context.Context, event service.BillingEvent) error
}
