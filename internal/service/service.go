package service

import (
	"context"

	"github.com/cowboylogic-net/bookstore/internal/entities"
	"github.com/cowboylogic-net/bookstore/internal/provider"
)

type ProductRepo interface {
	GetProduct(ctx context.Context, productID string) (entities.Product, error)

	// Единственный путь списания остатка. false - окончательное "не хватает",
	// проверка и декремент выполняются одним условным UPDATE.
	TryDecrementStock(ctx context.Context, productID string, qty int) (bool, error)
}

type CartRepo interface {
	ListLines(ctx context.Context, ownerID string) ([]entities.CartLine, error)
	Clear(ctx context.Context, ownerID string) error
}

type OrderRepo interface {
	// CreateOrder возвращает ErrOrderExists при нарушении уникальности provider-полей
	CreateOrder(ctx context.Context, order entities.Order) error
	CreateOrderLines(ctx context.Context, lines []entities.OrderLine) error

	GetOrderByID(ctx context.Context, orderID string) (entities.Order, error)
	GetOrderByProviderPaymentID(ctx context.Context, paymentID string) (entities.Order, error)
	GetOrderByProviderOrderID(ctx context.Context, providerOrderID string) (entities.Order, error)

	ListOrdersByOwner(ctx context.Context, ownerID string) ([]entities.Order, error)
	ListOrders(ctx context.Context) ([]entities.Order, error)
}

type CustomerRepo interface {
	GetCustomer(ctx context.Context, customerID string) (entities.Customer, error)
}

// PaymentGateway - контракт с внешним платежным провайдером.
// Ошибки любого из вызовов повторяемы и не означают "платежа не было".
type PaymentGateway interface {
	CreateCheckout(ctx context.Context, req provider.CheckoutRequest) (string, error)
	GetPayment(ctx context.Context, paymentID string) (provider.Payment, error)
	GetOrder(ctx context.Context, orderID string) (provider.Order, error)
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
}
