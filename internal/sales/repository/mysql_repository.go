package repository

import (
	"context"
	"database/sql"
	"fmt"

	"salesdash/internal/domain"
)

type MySQLRepository struct {
	db *sql.DB
}

func NewMySQLRepository(db *sql.DB) *MySQLRepository {
	return &MySQLRepository{db: db}
}

// Load reads order_facts and order_statuses, each ordered by position, so the
// two lists line up the same way the file source does.
func (r *MySQLRepository) Load(ctx context.Context) ([]domain.OrderFact, []domain.StatusFact, error) {
	orders, err := r.findOrders(ctx)
	if err != nil {
		return nil, nil, err
	}

	statuses, err := r.findStatuses(ctx)
	if err != nil {
		return nil, nil, err
	}

	return orders, statuses, nil
}

func (r *MySQLRepository) findOrders(ctx context.Context) ([]domain.OrderFact, error) {
	query := `
		SELECT order_id, order_date, customer_name, product_name, category,
		       quantity, unit_price, total_amount, payment_mode
		FROM order_facts
		ORDER BY position`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying order facts: %w", err)
	}
	defer rows.Close()

	orders := []domain.OrderFact{}
	for rows.Next() {
		var o domain.OrderFact
		var mode string
		err := rows.Scan(
			&o.OrderID, &o.Date, &o.CustomerName, &o.ProductName, &o.Category,
			&o.Quantity, &o.UnitPrice, &o.TotalAmount, &mode,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning order fact row: %w", err)
		}
		o.PaymentMode = domain.PaymentMode(mode)
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order fact rows: %w", err)
	}

	return orders, nil
}

func (r *MySQLRepository) findStatuses(ctx context.Context) ([]domain.StatusFact, error) {
	query := `
		SELECT COALESCE(order_id, ''), sales_rep, status, region, email, phone,
		       verified, comment
		FROM order_statuses
		ORDER BY position`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying order statuses: %w", err)
	}
	defer rows.Close()

	statuses := []domain.StatusFact{}
	for rows.Next() {
		var s domain.StatusFact
		var status string
		err := rows.Scan(
			&s.OrderID, &s.SalesRep, &status, &s.Region, &s.Email, &s.Phone,
			&s.Verified.Raw, &s.Comment,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning order status row: %w", err)
		}
		s.Status = domain.OrderStatus(status)
		statuses = append(statuses, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order status rows: %w", err)
	}

	return statuses, nil
}
