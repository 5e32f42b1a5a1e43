package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cowboylogic-net/bookstore/internal/entities"
)

// orderQueryService - плоские запросы к заказам вне жесткого ядра.
type orderQueryService struct {
	logger *slog.Logger
	orders OrderRepo
}

func NewOrderQueryService(logger *slog.Logger, orders OrderRepo) *orderQueryService {
	return &orderQueryService{
		logger: logger.With(slog.String("service", "orders")),
		orders: orders,
	}
}

// GetOrder возвращает заказ владельца. Чужой заказ неотличим от несуществующего.
func (s *orderQueryService) GetOrder(ctx context.Context, ownerID, orderID string) (entities.Order, error) {
	order, err := s.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if order.OwnerID != ownerID {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	return order, nil
}

func (s *orderQueryService) ListOrders(ctx context.Context, ownerID string) ([]entities.Order, error) {
	orders, err := s.orders.ListOrdersByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// ListAllOrders - админский просмотр всех заказов.
func (s *orderQueryService) ListAllOrders(ctx context.Context) ([]entities.Order, error) {
	orders, err := s.orders.ListOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list all orders: %w", err)
	}
	return orders, nil
}
