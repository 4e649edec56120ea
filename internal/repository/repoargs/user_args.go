package repoargs

import (
	"time"

	"github.com/clicks-pr/clicks-core/internal/domain"
)

type CreateUser struct {
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Role         domain.UserRoleType
}

// UpdateBan с nil BannedUntil снимает бан.
type UpdateBan struct {
	UserID      int64
	BannedUntil *time.Time
	Reason      *string
}
