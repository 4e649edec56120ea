package pgrepo

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/clicks-pr/clicks-core/internal/domain"
)

const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
	checkViolationCode      = "23514"
)

// convertErr преобразует ошибку к стандартному виду для слоя репозитория.
// Особенности:
//   - pgx.ErrNoRows и errNoRowsAffected возвращаются как domain.ErrRecordNotFound;
//   - нарушение уникального ключа (23505) — domain.ErrDuplicateKey;
//   - нарушение внешнего ключа (23503) — domain.ErrRecordNotFound (ссылка на несуществующую запись);
//   - нарушение CHECK-ограничения (23514) по балансу кошелька — domain.ErrInsufficientFunds:
//     схема страхует инвариант неотрицательного баланса даже если прикладная проверка его упустила;
//   - все остальные ошибки возвращаются как domain.ErrUnknown с оригинальным сообщением.
func convertErr(err error, format string, formatArgs ...any) error {
	if err == nil {
		return nil
	}

	msg := fmt.Sprintf(format, formatArgs...)

	// UPDATE/DELETE по несуществующему id — та же ситуация, что и пустой SELECT.
	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, errNoRowsAffected) {
		return fmt.Errorf("[repository/%s] %w", msg, domain.ErrRecordNotFound)
	}

	var pgErr *pgconn.PgError
	errType := domain.ErrUnknown

	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode:
			errType = domain.ErrDuplicateKey
		case foreignKeyViolationCode:
			errType = domain.ErrRecordNotFound
		case checkViolationCode:
			if pgErr.ConstraintName == "wallet_accounts_balance_non_negative" {
				errType = domain.ErrInsufficientFunds
			}
		}
	}

	return fmt.Errorf("[repository/%s] %w: %s", msg, errType, err.Error())
}
