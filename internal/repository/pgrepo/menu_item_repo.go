package pgrepo

import (
	"context"

	"github.com/clicks-pr/clicks-core/internal/domain"
	"github.com/clicks-pr/clicks-core/internal/repository/repoargs"
	"github.com/clicks-pr/clicks-core/pkg/uow"
)

type MenuItemRepository struct {
	conn uow.DBTX
}

func NewMenuItemRepository(conn uow.DBTX) *MenuItemRepository {
	return &MenuItemRepository{conn: conn}
}

const menuItemColumns = `id, created_at, updated_at, venue_id, name, price_cents, is_alcohol, is_available`

// GetAvailableForVenue возвращает доступные позиции заведения из переданного набора id.
// Позиции чужих заведений и недоступные позиции в результат не попадают — частичное совпадение
// с запрошенным набором трактуется вызывающей стороной как жесткий отказ.
func (m *MenuItemRepository) GetAvailableForVenue(
	ctx context.Context,
	venueID int64,
	ids []int64,
) ([]domain.MenuItem, error) {
	rows, err := m.conn.Query(ctx, `
		SELECT `+menuItemColumns+`
		FROM menu_items
		WHERE venue_id = $1 AND id = ANY($2) AND is_available`, venueID, ids)
	if err != nil {
		return nil, convertErr(err, "getting menu items of venue %d", venueID)
	}
	defer rows.Close()

	return collectMenuItems(rows, "getting menu items of venue %d", venueID)
}

func (m *MenuItemRepository) ListByVenue(ctx context.Context, venueID int64) ([]domain.MenuItem, error) {
	rows, err := m.conn.Query(ctx, `
		SELECT `+menuItemColumns+` FROM menu_items WHERE venue_id = $1 ORDER BY id`, venueID)
	if err != nil {
		return nil, convertErr(err, "listing menu of venue %d", venueID)
	}
	defer rows.Close()

	return collectMenuItems(rows, "listing menu of venue %d", venueID)
}

func (m *MenuItemRepository) Create(ctx context.Context, args repoargs.MenuItemCreate) (*domain.MenuItem, error) {
	row := m.conn.QueryRow(ctx, `
		INSERT INTO menu_items (venue_id, name, price_cents, is_alcohol, is_available)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+menuItemColumns,
		args.VenueID, args.Name, args.PriceCents, args.IsAlcohol, args.IsAvailable)

	item, err := scanMenuItem(row)
	if err != nil {
		return nil, convertErr(err, "creating menu item for venue %d", args.VenueID)
	}
	return item, nil
}

// Update меняет только переданные (не nil) поля. Позиция должна принадлежать заведению venueID.
func (m *MenuItemRepository) Update(ctx context.Context, args repoargs.MenuItemUpdate) (*domain.MenuItem, error) {
	row := m.conn.QueryRow(ctx, `
		UPDATE menu_items SET
			name = COALESCE($3, name),
			price_cents = COALESCE($4, price_cents),
			is_available = COALESCE($5, is_available),
			updated_at = now()
		WHERE id = $1 AND venue_id = $2
		RETURNING `+menuItemColumns,
		args.ID, args.VenueID, args.Name, args.PriceCents, args.IsAvailable)

	item, err := scanMenuItem(row)
	if err != nil {
		return nil, convertErr(err, "updating menu item %d", args.ID)
	}
	return item, nil
}

func (m *MenuItemRepository) Delete(ctx context.Context, venueID, id int64) error {
	tag, err := m.conn.Exec(ctx,
		`DELETE FROM menu_items WHERE id = $1 AND venue_id = $2`, id, venueID)
	if err != nil {
		return convertErr(err, "deleting menu item %d", id)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(errNoRowsAffected, "deleting menu item %d", id)
	}
	return nil
}

func collectMenuItems(rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}, format string, formatArgs ...any) ([]domain.MenuItem, error) {
	var items []domain.MenuItem
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			return nil, convertErr(err, format, formatArgs...)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, convertErr(err, format, formatArgs...)
	}
	return items, nil
}

func scanMenuItem(row rowScanner) (*domain.MenuItem, error) {
	var item domain.MenuItem
	if err := row.Scan(
		&item.ID, &item.CreatedAt, &item.UpdatedAt, &item.VenueID,
		&item.Name, &item.PriceCents, &item.IsAlcohol, &item.IsAvailable,
	); err != nil {
		return nil, err
	}
	return &item, nil
}
