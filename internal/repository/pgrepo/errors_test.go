package pgrepo

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/clicks-pr/clicks-core/internal/domain"
)

// Маппинг ошибок драйвера на доменные. Отдельно важен errNoRowsAffected:
// UPDATE/DELETE по несуществующей записи должен всплывать как "не найдено",
// а не как неизвестная ошибка, иначе хендлеры не смогут отдать 404.
func TestConvertErr(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "нет ошибки", err: nil, want: nil},
		{name: "пустая выборка", err: pgx.ErrNoRows, want: domain.ErrRecordNotFound},
		{name: "ноль затронутых строк", err: errNoRowsAffected, want: domain.ErrRecordNotFound},
		{
			name: "обернутый ноль затронутых строк",
			err:  fmt.Errorf("deleting: %w", errNoRowsAffected),
			want: domain.ErrRecordNotFound,
		},
		{
			name: "дубликат уникального ключа",
			err:  &pgconn.PgError{Code: uniqueViolationCode},
			want: domain.ErrDuplicateKey,
		},
		{
			name: "битый внешний ключ",
			err:  &pgconn.PgError{Code: foreignKeyViolationCode},
			want: domain.ErrRecordNotFound,
		},
		{
			name: "минус на балансе кошелька",
			err:  &pgconn.PgError{Code: checkViolationCode, ConstraintName: "wallet_accounts_balance_non_negative"},
			want: domain.ErrInsufficientFunds,
		},
		{name: "прочее", err: errors.New("connection reset"), want: domain.ErrUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := convertErr(tt.err, "deleting user %d", 42)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}
