package pgrepo

import (
	"context"

	"github.com/clicks-pr/clicks-core/internal/domain"
	"github.com/clicks-pr/clicks-core/internal/repository/repoargs"
	"github.com/clicks-pr/clicks-core/pkg/uow"
)

type OrderRepository struct {
	conn uow.DBTX
}

func NewOrderRepository(conn uow.DBTX) *OrderRepository {
	return &OrderRepository{conn: conn}
}

const orderColumns = `id, created_at, updated_at, user_id, venue_id, order_code, total_cents, status,
	accepted_at, ready_at, completed_at, cancelled_at`

// Create вставляет заказ вместе со снапшотами позиций. Вызывается только внутри uow-транзакции
// вместе со списанием кошелька — по отдельности эти записи не существуют.
func (o *OrderRepository) Create(ctx context.Context, args repoargs.OrderCreate) (*domain.Order, error) {
	row := o.conn.QueryRow(ctx, `
		INSERT INTO orders (user_id, venue_id, order_code, total_cents, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+orderColumns,
		args.UserID, args.VenueID, args.OrderCode, args.TotalCents, domain.OrderStatusPlaced)

	order, err := scanOrder(row)
	if err != nil {
		return nil, convertErr(err, "creating order with code `%s`", args.OrderCode)
	}

	for _, item := range args.Items {
		itemRow := o.conn.QueryRow(ctx, `
			INSERT INTO order_items (order_id, menu_item_id, name, price_cents, qty, is_alcohol)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id, order_id, menu_item_id, name, price_cents, qty, is_alcohol`,
			order.ID, item.MenuItemID, item.Name, item.PriceCents, item.Qty, item.IsAlcohol)

		orderItem, itemErr := scanOrderItem(itemRow)
		if itemErr != nil {
			return nil, convertErr(itemErr, "creating order item for order %d", order.ID)
		}
		order.Items = append(order.Items, *orderItem)
	}

	return order, nil
}

func (o *OrderRepository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	row := o.conn.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)
	order, err := scanOrder(row)
	if err != nil {
		return nil, convertErr(err, "getting order %d", id)
	}
	return order, nil
}

// UpdateStatus применяет переход статуса с предусловием status = Expected и проставляет
// временную метку входа в новый статус. Возвращает false, если предусловие не выполнилось
// (заказ уже в другом статусе) — защита от двойного сабмита.
func (o *OrderRepository) UpdateStatus(ctx context.Context, args repoargs.OrderStatusUpdate) (bool, error) {
	tag, err := o.conn.Exec(ctx, `
		UPDATE orders SET
			status = $3,
			updated_at = now(),
			accepted_at  = CASE WHEN $3 = 'ACCEPTED' THEN $4 ELSE accepted_at END,
			ready_at     = CASE WHEN $3 = 'READY' THEN $4 ELSE ready_at END,
			completed_at = CASE WHEN $3 IN ('COMPLETED', 'PICKED_UP') THEN $4 ELSE completed_at END,
			cancelled_at = CASE WHEN $3 = 'CANCELLED' THEN $4 ELSE cancelled_at END
		WHERE id = $1 AND status = $2`,
		args.OrderID, args.Expected, args.To, args.At)
	if err != nil {
		return false, convertErr(err, "updating status of order %d", args.OrderID)
	}
	return tag.RowsAffected() > 0, nil
}

// ListActiveByVenueForUpdate возвращает нетерминальные заказы заведения, блокируя их строки
// до конца транзакции. Используется координатором паузы.
func (o *OrderRepository) ListActiveByVenueForUpdate(ctx context.Context, venueID int64) ([]domain.Order, error) {
	rows, err := o.conn.Query(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE venue_id = $1 AND status = ANY($2)
		ORDER BY id
		FOR UPDATE`,
		venueID, statusStrings(domain.ActiveOrderStatuses))
	if err != nil {
		return nil, convertErr(err, "locking active orders of venue %d", venueID)
	}
	defer rows.Close()

	return collectOrders(rows, "locking active orders of venue %d", venueID)
}

// GetByUserID возвращает заказы юзера с позициями, отсортированные по дате создания по убыванию.
func (o *OrderRepository) GetByUserID(ctx context.Context, userID int64, limit int32) ([]domain.Order, error) {
	rows, err := o.conn.Query(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2`, userID, limit)
	if err != nil {
		return nil, convertErr(err, "getting orders by userID `%d`", userID)
	}
	defer rows.Close()

	orders, collectErr := collectOrders(rows, "getting orders by userID `%d`", userID)
	if collectErr != nil {
		return nil, collectErr
	}
	return o.attachItems(ctx, orders)
}

// GetByVenueID — очередь заказов заведения для оператора, свежие сверху.
func (o *OrderRepository) GetByVenueID(ctx context.Context, venueID int64, limit int32) ([]domain.Order, error) {
	rows, err := o.conn.Query(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE venue_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2`, venueID, limit)
	if err != nil {
		return nil, convertErr(err, "getting orders by venueID `%d`", venueID)
	}
	defer rows.Close()

	orders, collectErr := collectOrders(rows, "getting orders by venueID `%d`", venueID)
	if collectErr != nil {
		return nil, collectErr
	}
	return o.attachItems(ctx, orders)
}

func (o *OrderRepository) attachItems(ctx context.Context, orders []domain.Order) ([]domain.Order, error) {
	if len(orders) == 0 {
		return orders, nil
	}

	ids := make([]int64, len(orders))
	index := make(map[int64]int, len(orders))
	for i, order := range orders {
		ids[i] = order.ID
		index[order.ID] = i
	}

	rows, err := o.conn.Query(ctx, `
		SELECT id, order_id, menu_item_id, name, price_cents, qty, is_alcohol
		FROM order_items
		WHERE order_id = ANY($1)
		ORDER BY id`, ids)
	if err != nil {
		return nil, convertErr(err, "attaching items to orders")
	}
	defer rows.Close()

	for rows.Next() {
		item, scanErr := scanOrderItem(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "attaching items to orders")
		}
		i := index[item.OrderID]
		orders[i].Items = append(orders[i].Items, *item)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "attaching items to orders")
	}
	return orders, nil
}

func collectOrders(rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}, format string, formatArgs ...any) ([]domain.Order, error) {
	var orders []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, convertErr(err, format, formatArgs...)
		}
		orders = append(orders, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, convertErr(err, format, formatArgs...)
	}
	return orders, nil
}

func statusStrings(statuses []domain.OrderStatusType) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

func scanOrder(row rowScanner) (*domain.Order, error) {
	var order domain.Order
	if err := row.Scan(
		&order.ID, &order.CreatedAt, &order.UpdatedAt, &order.UserID, &order.VenueID,
		&order.OrderCode, &order.TotalCents, &order.Status,
		&order.AcceptedAt, &order.ReadyAt, &order.CompletedAt, &order.CancelledAt,
	); err != nil {
		return nil, err
	}
	return &order, nil
}

func scanOrderItem(row rowScanner) (*domain.OrderItem, error) {
	var item domain.OrderItem
	if err := row.Scan(
		&item.ID, &item.OrderID, &item.MenuItemID, &item.Name,
		&item.PriceCents, &item.Qty, &item.IsAlcohol,
	); err != nil {
		return nil, err
	}
	return &item, nil
}
