package pgrepo

import (
	"context"

	"github.com/clicks-pr/clicks-core/internal/domain"
	"github.com/clicks-pr/clicks-core/internal/repository/repoargs"
	"github.com/clicks-pr/clicks-core/pkg/uow"
)

type UserRepository struct {
	conn uow.DBTX
}

func NewUserRepository(conn uow.DBTX) *UserRepository {
	return &UserRepository{conn: conn}
}

const userColumns = `id, created_at, updated_at, email, password_hash, first_name, last_name, role,
	banned_until, ban_reason`

func (u *UserRepository) CreateUser(ctx context.Context, args repoargs.CreateUser) (*domain.User, error) {
	row := u.conn.QueryRow(ctx, `
		INSERT INTO users (email, password_hash, first_name, last_name, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+userColumns,
		args.Email, args.PasswordHash, args.FirstName, args.LastName, args.Role)

	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "creating user `%s`", args.Email)
	}
	return user, nil
}

func (u *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := u.conn.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "finding user by email `%s`", email)
	}
	return user, nil
}

func (u *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	row := u.conn.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "finding user %d", id)
	}
	return user, nil
}

func (u *UserRepository) UpdateBan(ctx context.Context, args repoargs.UpdateBan) error {
	tag, err := u.conn.Exec(ctx, `
		UPDATE users SET banned_until = $2, ban_reason = $3, updated_at = now()
		WHERE id = $1`, args.UserID, args.BannedUntil, args.Reason)
	if err != nil {
		return convertErr(err, "updating ban of user %d", args.UserID)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(errNoRowsAffected, "updating ban of user %d", args.UserID)
	}
	return nil
}

// Delete удаляет юзера. Зависимые записи (чекины, заказы, кошелек с леджером) уходят каскадом
// по внешним ключам схемы — явная политика каскада описана в миграции.
func (u *UserRepository) Delete(ctx context.Context, id int64) error {
	tag, err := u.conn.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return convertErr(err, "deleting user %d", id)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(errNoRowsAffected, "deleting user %d", id)
	}
	return nil
}

func scanUser(row rowScanner) (*domain.User, error) {
	var user domain.User
	if err := row.Scan(
		&user.ID, &user.CreatedAt, &user.UpdatedAt, &user.Email, &user.PasswordHash,
		&user.FirstName, &user.LastName, &user.Role, &user.BannedUntil, &user.BanReason,
	); err != nil {
		return nil, err
	}
	return &user, nil
}
