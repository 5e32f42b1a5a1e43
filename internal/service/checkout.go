package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cowboylogic-net/bookstore/internal/entities"
	"github.com/cowboylogic-net/bookstore/internal/provider"
	"github.com/cowboylogic-net/bookstore/pkg/trm"

	"github.com/google/uuid"
)

type checkoutService struct {
	logger    *slog.Logger
	txManager trm.Manager
	products  ProductRepo
	carts     CartRepo
	orders    OrderRepo
	gateway   PaymentGateway
}

func NewCheckoutService(
	logger *slog.Logger,
	txManager trm.Manager,
	products ProductRepo,
	carts CartRepo,
	orders OrderRepo,
	gateway PaymentGateway,
) *checkoutService {
	return &checkoutService{
		logger:    logger.With(slog.String("service", "checkout")),
		txManager: txManager,
		products:  products,
		carts:     carts,
		orders:    orders,
		gateway:   gateway,
	}
}

// Checkout оформляет заказ напрямую из корзины покупателя.
// Валидация, резервирование остатков, запись заказа и очистка корзины
// выполняются одной транзакцией: либо все, либо ничего.
func (s *checkoutService) Checkout(ctx context.Context, ownerID string, tier entities.PriceTier) (entities.Order, error) {
	var created entities.Order

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		lines, err := s.carts.ListLines(ctx, ownerID)
		if err != nil {
			return fmt.Errorf("failed to load cart: %w", err)
		}
		if len(lines) == 0 {
			return entities.ErrEmptyCart
		}

		order := entities.Order{
			ID:        uuid.NewString(),
			OwnerID:   ownerID,
			Status:    entities.OrderStatusPending,
			CreatedAt: time.Now().UTC(),
		}

		orderLines := make([]entities.OrderLine, 0, len(lines))
		for _, cl := range lines {
			line, _, err := s.priceLine(ctx, cl, tier)
			if err != nil {
				return err
			}
			line.OrderID = order.ID
			order.TotalPrice += line.UnitPrice * line.Quantity
			orderLines = append(orderLines, line)
		}

		if err := s.orders.CreateOrder(ctx, order); err != nil {
			return err
		}

		for _, l := range orderLines {
			ok, err := s.products.TryDecrementStock(ctx, l.ProductID, l.Quantity)
			if err != nil {
				return err
			}
			if !ok {
				// конкурентный чекаут успел забрать последние единицы,
				// транзакция откатывается целиком вместе с заказом
				return fmt.Errorf("%w: product %s", entities.ErrStockConflict, l.ProductID)
			}
		}

		if err := s.orders.CreateOrderLines(ctx, orderLines); err != nil {
			return err
		}
		if err := s.carts.Clear(ctx, ownerID); err != nil {
			return err
		}

		order.Lines = orderLines
		created = order

		s.logger.Debug("checkout committed",
			slog.String("order_id", order.ID),
			slog.Int("total_price", order.TotalPrice),
		)
		return nil
	})
	if err != nil {
		return entities.Order{}, err
	}

	return created, nil
}

// BeginHostedCheckout расценивает корзину и создает hosted-сессию оплаты у провайдера.
// Локальный заказ при этом не создается: он материализуется асинхронно,
// когда провайдер подтвердит платеж.
func (s *checkoutService) BeginHostedCheckout(ctx context.Context, ownerID string, tier entities.PriceTier) (string, error) {
	lines, err := s.carts.ListLines(ctx, ownerID)
	if err != nil {
		return "", fmt.Errorf("failed to load cart: %w", err)
	}
	if len(lines) == 0 {
		return "", entities.ErrEmptyCart
	}

	req := provider.CheckoutRequest{ReferenceID: ownerID}
	for _, cl := range lines {
		line, product, err := s.priceLine(ctx, cl, tier)
		if err != nil {
			return "", err
		}

		req.Items = append(req.Items, provider.CheckoutItem{
			ProductRef: line.ProductID,
			Title:      product.Title,
			Quantity:   line.Quantity,
			UnitPrice:  line.UnitPrice,
		})
	}

	redirectURL, err := s.gateway.CreateCheckout(ctx, req)
	if err != nil {
		return "", fmt.Errorf("failed to create hosted checkout: %w", err)
	}

	s.logger.Debug("hosted checkout created", slog.String("owner_id", ownerID))
	return redirectURL, nil
}

// priceLine валидирует позицию корзины и снимает цену для уровня покупателя.
func (s *checkoutService) priceLine(ctx context.Context, cl entities.CartLine, tier entities.PriceTier) (entities.OrderLine, entities.Product, error) {
	product, err := s.products.GetProduct(ctx, cl.ProductID)
	if err != nil {
		return entities.OrderLine{}, entities.Product{}, err
	}

	// предварительная проверка; авторитетная выполняется условным декрементом
	if product.Stock < cl.Quantity {
		return entities.OrderLine{}, entities.Product{}, fmt.Errorf("%w: product %s", entities.ErrOutOfStock, product.ID)
	}

	unitPrice, lineTier := ResolveLineUnitPrice(product, tier)

	if tier == entities.TierPartner {
		if lineTier != entities.TierPartner {
			return entities.OrderLine{}, entities.Product{}, fmt.Errorf("%w: product %s has no partner price", entities.ErrMinimumQuantityNotMet, product.ID)
		}
		if err := ValidateQuantity(lineTier, cl.Quantity); err != nil {
			return entities.OrderLine{}, entities.Product{}, fmt.Errorf("%w: product %s", entities.ErrMinimumQuantityNotMet, product.ID)
		}
	} else if err := ValidateQuantity(lineTier, cl.Quantity); err != nil {
		return entities.OrderLine{}, entities.Product{}, fmt.Errorf("%w: product %s", err, product.ID)
	}

	line := entities.OrderLine{
		ProductID: product.ID,
		Quantity:  cl.Quantity,
		UnitPrice: unitPrice,
		Tier:      lineTier,
	}
	return line, product, nil
}
