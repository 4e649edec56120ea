package repoargs

import (
	"time"

	"github.com/clicks-pr/clicks-core/internal/domain"
)

// MunicipalityWindowUpdate обновляет дефолтное окно и дневные переопределения.
// Все значения минут валидируются сервисом в диапазоне [0, 1440).
type MunicipalityWindowUpdate struct {
	ID                int64
	DefaultStartMins  int
	DefaultCutoffMins int
	DayStartMins      [7]*int
	DayCutoffMins     [7]*int
}

type MenuItemCreate struct {
	VenueID     int64
	Name        string
	PriceCents  int64
	IsAlcohol   bool
	IsAvailable bool
}

type MenuItemUpdate struct {
	ID          int64
	VenueID     int64
	Name        *string
	PriceCents  *int64
	IsAvailable *bool
}

type VenuePlanUpdate struct {
	VenueID   int64
	Plan      domain.VenuePlanType
	StartedAt *time.Time
	EndsAt    *time.Time
}

type SubscriptionPaymentCreate struct {
	VenueID     int64
	AmountCents int64
	PaidAt      time.Time
	PeriodStart time.Time
	PeriodEnd   time.Time
	ProviderRef string
	Status      domain.SubscriptionPaymentStatusType
}
