package pgrepo

import (
	"context"
	"time"

	"github.com/clicks-pr/clicks-core/internal/domain"
	"github.com/clicks-pr/clicks-core/internal/repository/repoargs"
	"github.com/clicks-pr/clicks-core/pkg/uow"
)

type WalletRepository struct {
	conn uow.DBTX
}

func NewWalletRepository(conn uow.DBTX) *WalletRepository {
	return &WalletRepository{conn: conn}
}

const walletColumns = `id, created_at, updated_at, user_id, balance_cents`

func (w *WalletRepository) GetByUserID(ctx context.Context, userID int64) (*domain.WalletAccount, error) {
	row := w.conn.QueryRow(ctx,
		`SELECT `+walletColumns+` FROM wallet_accounts WHERE user_id = $1`, userID)
	wallet, err := scanWallet(row)
	if err != nil {
		return nil, convertErr(err, "getting wallet for user %d", userID)
	}
	return wallet, nil
}

// GetByUserIDForUpdate блокирует строку кошелька до конца текущей транзакции (FOR UPDATE).
// Обязателен для любой последовательности «проверить баланс — изменить баланс»: без блокировки
// два конкурентных списания могут пройти проверку по одному и тому же устаревшему значению.
func (w *WalletRepository) GetByUserIDForUpdate(ctx context.Context, userID int64) (*domain.WalletAccount, error) {
	row := w.conn.QueryRow(ctx,
		`SELECT `+walletColumns+` FROM wallet_accounts WHERE user_id = $1 FOR UPDATE`, userID)
	wallet, err := scanWallet(row)
	if err != nil {
		return nil, convertErr(err, "locking wallet for user %d", userID)
	}
	return wallet, nil
}

// UpsertByUserID лениво создает кошелек с нулевым балансом. Существующая строка при конфликте
// обновляется «вхолостую», что берет на нее блокировку — вызов безопасен внутри денежных транзакций.
func (w *WalletRepository) UpsertByUserID(ctx context.Context, userID int64) (*domain.WalletAccount, error) {
	row := w.conn.QueryRow(ctx, `
		INSERT INTO wallet_accounts (user_id, balance_cents)
		VALUES ($1, 0)
		ON CONFLICT (user_id) DO UPDATE SET updated_at = now()
		RETURNING `+walletColumns, userID)
	wallet, err := scanWallet(row)
	if err != nil {
		return nil, convertErr(err, "upserting wallet for user %d", userID)
	}
	return wallet, nil
}

// AdjustBalance сдвигает кешированный баланс на deltaCents (знаковое значение).
// Вызывается только вместе с CreateTxn в одной транзакции — баланс без строки леджера не меняется.
func (w *WalletRepository) AdjustBalance(ctx context.Context, walletID int64, deltaCents int64) error {
	tag, err := w.conn.Exec(ctx, `
		UPDATE wallet_accounts
		SET balance_cents = balance_cents + $2, updated_at = now()
		WHERE id = $1`, walletID, deltaCents)
	if err != nil {
		return convertErr(err, "adjusting balance of wallet %d", walletID)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(errNoRowsAffected, "adjusting balance of wallet %d", walletID)
	}
	return nil
}

func (w *WalletRepository) CreateTxn(
	ctx context.Context,
	args repoargs.WalletTxnCreate,
) (*domain.WalletTxn, error) {
	row := w.conn.QueryRow(ctx, `
		INSERT INTO wallet_txns (wallet_id, type, amount_cents, counterparty_user_id, memo)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, wallet_id, type, amount_cents, counterparty_user_id, memo`,
		args.WalletID, args.Type, args.AmountCents, args.CounterpartyUserID, args.Memo)

	txn, err := scanWalletTxn(row)
	if err != nil {
		return nil, convertErr(err, "creating wallet txn for wallet %d", args.WalletID)
	}
	return txn, nil
}

// SumOutboundSince возвращает сумму исходящих (TRANSFER_OUT) транзакций кошелька начиная с since.
// Используется для дневного лимита; граница суток считается вызывающей стороной по гражданской зоне.
func (w *WalletRepository) SumOutboundSince(ctx context.Context, walletID int64, since time.Time) (int64, error) {
	var sum int64
	err := w.conn.QueryRow(ctx, `
		SELECT COALESCE(SUM(amount_cents), 0)
		FROM wallet_txns
		WHERE wallet_id = $1 AND type = $2 AND created_at >= $3`,
		walletID, domain.WalletTxnTransferOut, since).Scan(&sum)
	if err != nil {
		return 0, convertErr(err, "summing outbound txns of wallet %d", walletID)
	}
	return sum, nil
}

// SumTxns возвращает знаковую сумму всех записей леджера кошелька. Закон сохранения:
// это значение всегда равно balance_cents.
func (w *WalletRepository) SumTxns(ctx context.Context, walletID int64) (int64, error) {
	var sum int64
	err := w.conn.QueryRow(ctx, `
		SELECT COALESCE(SUM(CASE WHEN type = 'TRANSFER_OUT' THEN -amount_cents ELSE amount_cents END), 0)
		FROM wallet_txns
		WHERE wallet_id = $1`, walletID).Scan(&sum)
	if err != nil {
		return 0, convertErr(err, "summing ledger of wallet %d", walletID)
	}
	return sum, nil
}

func (w *WalletRepository) ListTxns(ctx context.Context, walletID int64, limit int32) ([]domain.WalletTxn, error) {
	rows, err := w.conn.Query(ctx, `
		SELECT id, created_at, wallet_id, type, amount_cents, counterparty_user_id, memo
		FROM wallet_txns
		WHERE wallet_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2`, walletID, limit)
	if err != nil {
		return nil, convertErr(err, "listing txns of wallet %d", walletID)
	}
	defer rows.Close()

	var txns []domain.WalletTxn
	for rows.Next() {
		txn, scanErr := scanWalletTxn(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "listing txns of wallet %d", walletID)
		}
		txns = append(txns, *txn)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "listing txns of wallet %d", walletID)
	}
	return txns, nil
}

func scanWallet(row rowScanner) (*domain.WalletAccount, error) {
	var wallet domain.WalletAccount
	if err := row.Scan(
		&wallet.ID, &wallet.CreatedAt, &wallet.UpdatedAt, &wallet.UserID, &wallet.BalanceCents,
	); err != nil {
		return nil, err
	}
	return &wallet, nil
}

func scanWalletTxn(row rowScanner) (*domain.WalletTxn, error) {
	var txn domain.WalletTxn
	if err := row.Scan(
		&txn.ID, &txn.CreatedAt, &txn.WalletID, &txn.Type,
		&txn.AmountCents, &txn.CounterpartyUserID, &txn.Memo,
	); err != nil {
		return nil, err
	}
	return &txn, nil
}
