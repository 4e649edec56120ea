package repoargs

import (
	"github.com/clicks-pr/clicks-core/internal/domain"
)

type WalletTxnCreate struct {
	WalletID           int64
	Type               domain.WalletTxnType
	AmountCents        int64
	CounterpartyUserID *int64
	Memo               string
}
