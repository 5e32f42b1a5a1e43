package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cowboylogic-net/bookstore/internal/entities"
	"github.com/cowboylogic-net/bookstore/internal/provider"
	"github.com/cowboylogic-net/bookstore/pkg/trm"

	"github.com/google/uuid"
)

type ReconcileState string

const (
	// Заказ материализован (или уже был), результат окончательный
	ReconcileOK ReconcileState = "ok"
	// Провайдер еще не подтвердил платеж или временно недоступен, опросить позже
	ReconcilePending ReconcileState = "pending"
	// Не передан ни payment_id, ни order_id провайдера
	ReconcileNoInput ReconcileState = "no_input"
)

type ReconcileResult struct {
	State ReconcileState
	Order entities.Order
}

type reconcileService struct {
	logger    *slog.Logger
	txManager trm.Manager
	gateway   PaymentGateway
	orders    OrderRepo
	products  ProductRepo
	carts     CartRepo
	customers CustomerRepo
	cache     Cache
}

func NewReconcileService(
	logger *slog.Logger,
	txManager trm.Manager,
	gateway PaymentGateway,
	orders OrderRepo,
	products ProductRepo,
	carts CartRepo,
	customers CustomerRepo,
	cache Cache,
) *reconcileService {
	return &reconcileService{
		logger:    logger.With(slog.String("service", "reconcile")),
		txManager: txManager,
		gateway:   gateway,
		orders:    orders,
		products:  products,
		carts:     carts,
		customers: customers,
		cache:     cache,
	}
}

// Reconcile приводит локальное состояние к подтвержденному провайдером платежу.
// Вызывается и вебхуком, и опросом клиента, и консьюмером событий - сколько угодно
// раз, в любом порядке и конкурентно. На один платеж всегда сходится ровно один заказ:
// уникальность provider_payment_id в базе - последний рубеж против дублей.
func (s *reconcileService) Reconcile(ctx context.Context, paymentID, providerOrderID string) (ReconcileResult, error) {
	if paymentID == "" && providerOrderID == "" {
		return ReconcileResult{State: ReconcileNoInput}, nil
	}

	if paymentID != "" {
		if order, ok := s.cachedOrder(paymentID); ok {
			return ReconcileResult{State: ReconcileOK, Order: order}, nil
		}

		payment, err := s.gateway.GetPayment(ctx, paymentID)
		if err != nil {
			s.logger.WarnContext(ctx, "payment fetch failed, caller should retry",
				slog.String("payment_id", paymentID), slog.Any("error", err))
			return ReconcileResult{State: ReconcilePending}, nil
		}
		if payment.Status != provider.PaymentStatusCompleted {
			return ReconcileResult{State: ReconcilePending}, nil
		}

		// проверка идемпотентности: этот платеж уже материализован?
		existing, err := s.orders.GetOrderByProviderPaymentID(ctx, paymentID)
		if err == nil {
			s.cacheOrder(existing)
			return ReconcileResult{State: ReconcileOK, Order: existing}, nil
		}
		if !errors.Is(err, entities.ErrOrderNotFound) {
			return ReconcileResult{}, err
		}

		if providerOrderID == "" {
			providerOrderID = payment.OrderID
		}
	}

	if providerOrderID == "" {
		// вебхук мог обогнать создание заказа на стороне провайдера
		return ReconcileResult{State: ReconcilePending}, nil
	}

	providerOrder, err := s.gateway.GetOrder(ctx, providerOrderID)
	if err != nil {
		s.logger.WarnContext(ctx, "provider order fetch failed, caller should retry",
			slog.String("provider_order_id", providerOrderID), slog.Any("error", err))
		return ReconcileResult{State: ReconcilePending}, nil
	}

	order, err := s.materialize(ctx, paymentID, providerOrder)
	if err != nil {
		return ReconcileResult{}, err
	}

	s.cacheOrder(order)
	return ReconcileResult{State: ReconcileOK, Order: order}, nil
}

// materialize создает локальный заказ по данным провайдера.
// Ошибки ErrNoCustomer и ErrNoItems - дефекты интеграции: повторные вызовы их
// не исправят, поэтому они логируются с высокой серьезностью и не маскируются
// под pending.
func (s *reconcileService) materialize(ctx context.Context, paymentID string, po provider.Order) (entities.Order, error) {
	customer, err := s.customers.GetCustomer(ctx, po.ReferenceID)
	if errors.Is(err, entities.ErrNoCustomer) {
		s.logger.ErrorContext(ctx, "provider order references unknown customer",
			slog.String("provider_order_id", po.ID),
			slog.String("reference_id", po.ReferenceID))
		return entities.Order{}, fmt.Errorf("%w: reference %q", entities.ErrNoCustomer, po.ReferenceID)
	}
	if err != nil {
		return entities.Order{}, err
	}

	if len(po.Items) == 0 {
		s.logger.ErrorContext(ctx, "provider order has no line items",
			slog.String("provider_order_id", po.ID))
		return entities.Order{}, fmt.Errorf("%w: provider order %s", entities.ErrNoItems, po.ID)
	}

	order := entities.Order{
		ID:                uuid.NewString(),
		OwnerID:           customer.ID,
		TotalPrice:        orderTotal(po),
		Status:            entities.OrderStatusCompleted,
		ProviderPaymentID: paymentID,
		ProviderOrderID:   po.ID,
		CreatedAt:         time.Now().UTC(),
		Shipping:          shippingFromRecipient(po.Recipient),
	}
	tier := customer.Tier()

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.orders.CreateOrder(ctx, order); err != nil {
			return err
		}

		lines := make([]entities.OrderLine, 0, len(po.Items))
		for _, item := range po.Items {
			ok, err := s.products.TryDecrementStock(ctx, item.ProductRef, item.Quantity)
			if err != nil {
				return err
			}
			if !ok {
				// Деньги уже списаны, поэтому позиция пропускается, а заказ
				// сохраняется: потерять запись о платеже хуже неполного заказа.
				s.logger.WarnContext(ctx, "skipping unfulfillable provider line",
					slog.String("order_id", order.ID),
					slog.String("product_id", item.ProductRef),
					slog.Int("quantity", item.Quantity))
				reconcileSkippedLines.Inc()
				continue
			}
			lines = append(lines, entities.OrderLine{
				OrderID:   order.ID,
				ProductID: item.ProductRef,
				Quantity:  item.Quantity,
				UnitPrice: item.UnitPrice,
				Tier:      tier,
			})
		}

		if err := s.orders.CreateOrderLines(ctx, lines); err != nil {
			return err
		}
		if err := s.carts.Clear(ctx, customer.ID); err != nil {
			return err
		}

		order.Lines = lines
		return nil
	})

	if errors.Is(err, entities.ErrOrderExists) {
		// конкурентная материализация того же платежа успела раньше,
		// возвращаем заказ победителя
		return s.lookupWinner(ctx, paymentID, po.ID)
	}
	if err != nil {
		return entities.Order{}, err
	}

	s.logger.InfoContext(ctx, "order materialized",
		slog.String("order_id", order.ID),
		slog.String("payment_id", paymentID),
		slog.Int("total_price", order.TotalPrice))
	return order, nil
}

func (s *reconcileService) lookupWinner(ctx context.Context, paymentID, providerOrderID string) (entities.Order, error) {
	if paymentID != "" {
		order, err := s.orders.GetOrderByProviderPaymentID(ctx, paymentID)
		if err == nil {
			return order, nil
		}
		// Победитель мог материализоваться по одному только order_id,
		// тогда provider_payment_id у его записи пуст - ищем по заказу.
		if !errors.Is(err, entities.ErrOrderNotFound) || providerOrderID == "" {
			return entities.Order{}, err
		}
	}
	return s.orders.GetOrderByProviderOrderID(ctx, providerOrderID)
}

func (s *reconcileService) cachedOrder(paymentID string) (entities.Order, bool) {
	data, ok := s.cache.Get(paymentID)
	if !ok {
		return entities.Order{}, false
	}
	var order entities.Order
	if err := order.Unmarshal(data); err != nil {
		s.logger.Error("failed to unmarshal cached order", slog.Any("error", err))
		return entities.Order{}, false
	}
	return order, true
}

func (s *reconcileService) cacheOrder(order entities.Order) {
	if order.ProviderPaymentID == "" {
		return
	}
	data, err := order.Marshal()
	if err != nil {
		s.logger.Error("failed to marshal order for cache", slog.Any("error", err))
		return
	}
	s.cache.Set(order.ProviderPaymentID, data)
}

// orderTotal берет итог провайдера, а при его отсутствии суммирует позиции.
func orderTotal(po provider.Order) int {
	if po.Total > 0 {
		return po.Total
	}
	total := 0
	for _, item := range po.Items {
		if item.Total > 0 {
			total += item.Total
			continue
		}
		total += item.UnitPrice * item.Quantity
	}
	return total
}

func shippingFromRecipient(r provider.Recipient) *entities.Shipping {
	if r.Name == "" {
		return nil
	}
	return &entities.Shipping{
		Name:    r.Name,
		Phone:   r.Phone,
		ZIP:     r.ZIP,
		City:    r.City,
		Address: r.Address,
		Region:  r.Region,
	}
}
