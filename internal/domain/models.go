package domain

import (
	"time"
)

type User struct {
	ID           int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Role         UserRoleType
	BannedUntil  *time.Time
	BanReason    *string
}

// Municipality хранит дефолтное окно продажи алкоголя в минутах от местной полуночи
// и необязательные переопределения по дням недели (индекс 0 = воскресенье).
// nil в массиве означает «берем дефолт».
type Municipality struct {
	ID                int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
	Name              string
	DefaultStartMins  int
	DefaultCutoffMins int
	DayStartMins      [7]*int
	DayCutoffMins     [7]*int
}

type Zone struct {
	ID             int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
	Name           string
	IsEnabled      bool
	DisabledReason *string
}

type Venue struct {
	ID                       int64
	CreatedAt                time.Time
	UpdatedAt                time.Time
	Name                     string
	MunicipalityID           int64
	ZoneID                   int64
	ManagerID                *int64
	AlcoholCutoffOverrideMins *int
	IsEnabled                bool
	PausedAt                 *time.Time
	BoostActiveUntil         *time.Time
	Plan                     VenuePlanType
	SubscriptionStartedAt    *time.Time
	SubscriptionEndsAt       *time.Time
}

type MenuItem struct {
	ID          int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
	VenueID     int64
	Name        string
	PriceCents  int64
	IsAlcohol   bool
	IsAvailable bool
}

type CheckIn struct {
	ID        int64
	UserID    int64
	VenueID   int64
	StartedAt time.Time
	EndedAt   *time.Time
	EndReason *string
}

type Order struct {
	ID          int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
	UserID      int64
	VenueID     int64
	OrderCode   string
	TotalCents  int64
	Status      OrderStatusType
	AcceptedAt  *time.Time
	ReadyAt     *time.Time
	CompletedAt *time.Time
	CancelledAt *time.Time
	Items       []OrderItem
}

// OrderItem это снапшот позиции меню на момент оформления заказа. Последующие изменения
// цены или удаление позиции из меню исторических заказов не затрагивают.
type OrderItem struct {
	ID         int64
	OrderID    int64
	MenuItemID *int64
	Name       string
	PriceCents int64
	Qty        int
	IsAlcohol  bool
}

// WalletAccount кеширует сумму по своим транзакциям в BalanceCents. Источник истины — леджер
// (WalletTxn); баланс пересчитывается в той же транзакции, что и каждая запись леджера.
type WalletAccount struct {
	ID           int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
	UserID       int64
	BalanceCents int64
}

// WalletTxn — неизменяемая запись леджера. AmountCents всегда положителен, знак определяется типом.
// Записи никогда не обновляются и не удаляются, корректировки — только новыми записями.
type WalletTxn struct {
	ID                 int64
	CreatedAt          time.Time
	WalletID           int64
	Type               WalletTxnType
	AmountCents        int64
	CounterpartyUserID *int64
	Memo               string
}

type SubscriptionPayment struct {
	ID          int64
	CreatedAt   time.Time
	VenueID     int64
	AmountCents int64
	PaidAt      time.Time
	PeriodStart time.Time
	PeriodEnd   time.Time
	ProviderRef string
	Status      SubscriptionPaymentStatusType
}
