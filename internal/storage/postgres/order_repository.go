package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/marcheapp/storefront/internal/domain"
)

const (
	opTimeout = 5 * time.Second
)

type orderRepository struct {
	db *sql.DB
}

// NewOrderRepository создаёт PostgreSQL-реализацию OrderRepository.
func NewOrderRepository(store *Store) domain.OrderRepository {
	return &orderRepository{db: store.DB()}
}

func (r *orderRepository) Create(order domain.Order) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	addr := nullAddress(order.Address)
	slot := nullSlot(order.Slot)

	_, err = tx.ExecContext(ctx, `
		INSERT INTO orders (
			id, customer_id, status,
			subtotal_minor, delivery_fee_minor, total_minor,
			method,
			address_id, address_street, address_city, address_zip,
			slot_id, slot_location, slot_date, slot_time_range,
			payment_method_id, note, version, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20)
	`,
		order.ID, order.CustomerID, string(order.Status),
		order.SubtotalMinor, order.DeliveryFeeMinor, order.TotalMinor,
		string(order.Method),
		addr.id, addr.street, addr.city, addr.zip,
		slot.id, slot.location, slot.date, slot.timeRange,
		order.PaymentMethodID, order.Note, order.Version, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrOrderVersionConflict
		}
		return fmt.Errorf("insert order: %w", err)
	}

	for i, line := range order.Lines {
		if _, err = tx.ExecContext(ctx, `
			INSERT INTO order_lines (
				order_id, position, product_id, name, price_minor, unit, qty
			) VALUES ($1,$2,$3,$4,$5,$6,$7)
		`,
			order.ID, i, line.ProductID, line.Name, line.PriceMinor, line.Unit, line.Qty,
		); err != nil {
			return fmt.Errorf("insert order line: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit create order: %w", err)
	}

	return nil
}

func (r *orderRepository) Get(id string) (domain.Order, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	order, err := r.scanOrder(r.db.QueryRowContext(ctx, selectOrderQuery+` WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Order{}, domain.ErrOrderNotFound
		}
		return domain.Order{}, fmt.Errorf("select order: %w", err)
	}

	lines, err := r.loadLines(ctx, order.ID)
	if err != nil {
		return domain.Order{}, err
	}
	order.Lines = lines

	return order, nil
}

func (r *orderRepository) ListByCustomer(customerID string, limit int) ([]domain.Order, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	query := selectOrderQuery + `
		WHERE customer_id = $1
		ORDER BY created_at DESC, id DESC
	`

	var (
		rows *sql.Rows
		err  error
	)

	if limit > 0 {
		rows, err = r.db.QueryContext(ctx, query+" LIMIT $2", customerID, limit)
	} else {
		rows, err = r.db.QueryContext(ctx, query, customerID)
	}
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	orders := make([]domain.Order, 0)
	for rows.Next() {
		order, err := r.scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order row: %w", err)
		}

		lines, err := r.loadLines(ctx, order.ID)
		if err != nil {
			return nil, err
		}
		order.Lines = lines
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order rows: %w", err)
	}

	return orders, nil
}

func (r *orderRepository) Save(order domain.Order) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	// Снимок неизменяем: Save трогает только статус и updated_at.
	res, err := tx.ExecContext(ctx, `
		UPDATE orders
		SET status = $1,
		    note = $2,
		    version = version + 1,
		    updated_at = $3
		WHERE id = $4
		  AND version = $5
	`,
		string(order.Status),
		order.Note,
		order.UpdatedAt,
		order.ID,
		order.Version,
	)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		exists, err := r.orderExistsTx(ctx, tx, order.ID)
		if err != nil {
			return err
		}
		if !exists {
			return domain.ErrOrderNotFound
		}
		return domain.ErrOrderVersionConflict
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit save order: %w", err)
	}

	return nil
}

const selectOrderQuery = `
	SELECT id, customer_id, status,
	       subtotal_minor, delivery_fee_minor, total_minor,
	       method,
	       address_id, address_street, address_city, address_zip,
	       slot_id, slot_location, slot_date, slot_time_range,
	       payment_method_id, note, version, created_at, updated_at
	FROM orders
`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *orderRepository) scanOrder(row rowScanner) (domain.Order, error) {
	var (
		order          domain.Order
		status, method string
		addr           nullAddressCols
		slot           nullSlotCols
	)

	if err := row.Scan(
		&order.ID, &order.CustomerID, &status,
		&order.SubtotalMinor, &order.DeliveryFeeMinor, &order.TotalMinor,
		&method,
		&addr.id, &addr.street, &addr.city, &addr.zip,
		&slot.id, &slot.location, &slot.date, &slot.timeRange,
		&order.PaymentMethodID, &order.Note, &order.Version, &order.CreatedAt, &order.UpdatedAt,
	); err != nil {
		return domain.Order{}, err
	}

	order.Status = domain.OrderStatus(status)
	order.Method = domain.DeliveryMethod(method)
	order.Address = addr.toDomain()
	order.Slot = slot.toDomain()

	return order, nil
}

func (r *orderRepository) loadLines(ctx context.Context, orderID string) ([]domain.CartLine, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT product_id, name, price_minor, unit, qty
		FROM order_lines
		WHERE order_id = $1
		ORDER BY position ASC
	`, orderID)
	if err != nil {
		return nil, fmt.Errorf("load order lines: %w", err)
	}
	defer rows.Close()

	lines := make([]domain.CartLine, 0)
	for rows.Next() {
		var line domain.CartLine
		if err := rows.Scan(&line.ProductID, &line.Name, &line.PriceMinor, &line.Unit, &line.Qty); err != nil {
			return nil, fmt.Errorf("scan order line: %w", err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order lines: %w", err)
	}

	return lines, nil
}

func (r *orderRepository) orderExistsTx(ctx context.Context, tx *sql.Tx, orderID string) (bool, error) {
	var id string
	err := tx.QueryRowContext(ctx, `SELECT id FROM orders WHERE id = $1`, orderID).Scan(&id)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	return false, fmt.Errorf("check order exists: %w", err)
}

type nullAddressCols struct {
	id, street, city, zip sql.NullString
}

func nullAddress(addr *domain.Address) nullAddressCols {
	if addr == nil {
		return nullAddressCols{}
	}
	return nullAddressCols{
		id:     sql.NullString{String: addr.ID, Valid: true},
		street: sql.NullString{String: addr.Street, Valid: true},
		city:   sql.NullString{String: addr.City, Valid: true},
		zip:    sql.NullString{String: addr.ZipCode, Valid: true},
	}
}

func (c nullAddressCols) toDomain() *domain.Address {
	if !c.id.Valid {
		return nil
	}
	return &domain.Address{
		ID:      c.id.String,
		Street:  c.street.String,
		City:    c.city.String,
		ZipCode: c.zip.String,
	}
}

type nullSlotCols struct {
	id, location, date, timeRange sql.NullString
}

func nullSlot(slot *domain.PickupSlot) nullSlotCols {
	if slot == nil {
		return nullSlotCols{}
	}
	return nullSlotCols{
		id:        sql.NullString{String: slot.ID, Valid: true},
		location:  sql.NullString{String: slot.Location, Valid: true},
		date:      sql.NullString{String: slot.Date, Valid: true},
		timeRange: sql.NullString{String: slot.TimeRange, Valid: true},
	}
}

func (c nullSlotCols) toDomain() *domain.PickupSlot {
	if !c.id.Valid {
		return nil
	}
	return &domain.PickupSlot{
		ID:        c.id.String,
		Location:  c.location.String,
		Date:      c.date.String,
		TimeRange: c.timeRange.String,
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

var _ domain.OrderRepository = (*orderRepository)(nil)
