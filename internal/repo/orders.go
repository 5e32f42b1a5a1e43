package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/cowboylogic-net/bookstore/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// Postgres-код нарушения уникальности
const uniqueViolation = "23505"

type orderRepo struct {
	base
}

func NewOrderRepo(db *sqlx.DB) *orderRepo {
	return &orderRepo{base: newBase(db)}
}

// CreateOrder вставляет заказ. Нарушение уникальности provider_payment_id /
// provider_order_id превращается в ErrOrderExists: проигравший конкурентный
// писатель должен перечитать заказ победителя, а не падать.
func (r *orderRepo) CreateOrder(ctx context.Context, o entities.Order) error {
	builder := r.qb.Insert("orders").
		Columns(
			"order_id", "owner_id", "total_price", "status",
			"provider_payment_id", "provider_order_id",
			"ship_name", "ship_phone", "ship_zip", "ship_city", "ship_address", "ship_region",
		)

	var shipName, shipPhone, shipZIP, shipCity, shipAddress, shipRegion sql.NullString
	if o.Shipping != nil {
		shipName = nullString(o.Shipping.Name)
		shipPhone = nullString(o.Shipping.Phone)
		shipZIP = nullString(o.Shipping.ZIP)
		shipCity = nullString(o.Shipping.City)
		shipAddress = nullString(o.Shipping.Address)
		shipRegion = nullString(o.Shipping.Region)
	}

	query, args := builder.Values(
		o.ID, o.OwnerID, o.TotalPrice, string(o.Status),
		nullString(o.ProviderPaymentID), nullString(o.ProviderOrderID),
		shipName, shipPhone, shipZIP, shipCity, shipAddress, shipRegion,
	).MustSql()

	_, err := r.execContext(ctx, query, args...)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return fmt.Errorf("%w: %s", entities.ErrOrderExists, pqErr.Constraint)
	}
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

func (r *orderRepo) CreateOrderLines(ctx context.Context, lines []entities.OrderLine) error {
	if len(lines) == 0 {
		return nil
	}

	q := r.qb.Insert("order_lines").
		Columns("order_id", "product_id", "quantity", "unit_price", "tier")

	for _, l := range lines {
		q = q.Values(l.OrderID, l.ProductID, l.Quantity, l.UnitPrice, string(l.Tier))
	}

	query, args := q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to create order lines: %w", err)
	}
	return nil
}

func (r *orderRepo) GetOrderByID(ctx context.Context, orderID string) (entities.Order, error) {
	return r.getOrder(ctx, sq.Eq{"order_id": orderID})
}

func (r *orderRepo) GetOrderByProviderPaymentID(ctx context.Context, paymentID string) (entities.Order, error) {
	return r.getOrder(ctx, sq.Eq{"provider_payment_id": paymentID})
}

func (r *orderRepo) GetOrderByProviderOrderID(ctx context.Context, providerOrderID string) (entities.Order, error) {
	return r.getOrder(ctx, sq.Eq{"provider_order_id": providerOrderID})
}

func (r *orderRepo) getOrder(ctx context.Context, pred sq.Eq) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(pred).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	query, args = r.qb.Select("order_id", "product_id", "quantity", "unit_price", "tier").
		From("order_lines").
		Where(sq.Eq{"order_id": order.OrderID}).
		MustSql()

	var lines []OrderLine
	if err := r.selectContext(ctx, &lines, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order lines: %w", err)
	}

	return OrderToEntity(order, lines), nil
}

func (r *orderRepo) ListOrdersByOwner(ctx context.Context, ownerID string) ([]entities.Order, error) {
	return r.listOrders(ctx, sq.Eq{"owner_id": ownerID})
}

func (r *orderRepo) ListOrders(ctx context.Context) ([]entities.Order, error) {
	return r.listOrders(ctx, nil)
}

func (r *orderRepo) listOrders(ctx context.Context, pred sq.Eq) ([]entities.Order, error) {
	builder := r.qb.Select(orderColumns...).
		From("orders").
		OrderBy("created_at DESC")
	if pred != nil {
		builder = builder.Where(pred)
	}
	query, args := builder.MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	ids := make([]string, len(orders))
	for i, o := range orders {
		ids[i] = o.OrderID
	}

	// Строки всех заказов одним запросом
	query, args = r.qb.Select("order_id", "product_id", "quantity", "unit_price", "tier").
		From("order_lines").
		Where(sq.Eq{"order_id": ids}).
		MustSql()

	var lines []OrderLine
	if err := r.selectContext(ctx, &lines, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select order lines: %w", err)
	}
	linesMap := make(map[string][]OrderLine, len(ids))
	for _, l := range lines {
		linesMap[l.OrderID] = append(linesMap[l.OrderID], l)
	}

	result := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderToEntity(o, linesMap[o.OrderID]))
	}
	return result, nil
}

var orderColumns = []string{
	"order_id", "owner_id", "total_price", "status",
	"provider_payment_id", "provider_order_id",
	"ship_name", "ship_phone", "ship_zip", "ship_city", "ship_address", "ship_region",
	"created_at",
}
