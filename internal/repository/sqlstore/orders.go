package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"garmentsync/internal/domain"
	"garmentsync/internal/errors"
	"garmentsync/internal/repository"
)

const orderColumns = `id, buyer_name, style_number, quantity, estimated_delivery,
	buyer_email, status, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (domain.Order, error) {
	var o domain.Order
	var status string
	var delivery, created, updated int64
	err := row.Scan(
		&o.ID, &o.BuyerName, &o.StyleNumber, &o.Quantity, &delivery,
		&o.BuyerEmail, &status, &created, &updated,
	)
	if err != nil {
		return domain.Order{}, err
	}
	o.Status = domain.OrderStatus(status)
	o.EstimatedDelivery = fromNanos(delivery)
	o.CreatedAt = fromNanos(created)
	o.UpdatedAt = fromNanos(updated)
	return o, nil
}

func (s *Store) CreateOrder(ctx context.Context, order domain.Order) (*domain.Order, error) {
	order = order.WithDefaults()
	order.CreatedAt = s.now()
	order.UpdatedAt = order.CreatedAt

	query := `INSERT INTO orders (` + orderColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, query,
		order.ID, order.BuyerName, order.StyleNumber, order.Quantity, toNanos(order.EstimatedDelivery),
		order.BuyerEmail, string(order.Status), toNanos(order.CreatedAt), toNanos(order.UpdatedAt),
	)
	if err != nil {
		if isDuplicateKey(err) {
			return nil, errors.NewConflictError(fmt.Sprintf("order with id %s already exists", order.ID))
		}
		return nil, fmt.Errorf("inserting order: %w", err)
	}

	return &order, nil
}

func (s *Store) FindOrderByID(ctx context.Context, id string) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = ?`

	order, err := scanOrder(s.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("order with id %s not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying order by id: %w", err)
	}

	return &order, nil
}

func (s *Store) ListOrders(ctx context.Context, filter repository.OrderFilter) ([]domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders`
	var args []any
	if filter.Status != "" {
		query += ` WHERE status = ?`
		args = append(args, string(filter.Status))
	}
	query += ` ORDER BY created_at DESC, id ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying orders: %w", err)
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning order row: %w", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order rows: %w", err)
	}

	return orders, nil
}

func (s *Store) UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	query := `UPDATE orders SET status = ?, updated_at = ? WHERE id = ?`

	result, err := s.db.ExecContext(ctx, query, string(status), toNanos(s.now()), id)
	if err != nil {
		return nil, fmt.Errorf("updating order status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("getting rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return nil, errors.NewNotFoundError(fmt.Sprintf("order with id %s not found", id))
	}

	return s.FindOrderByID(ctx, id)
}
