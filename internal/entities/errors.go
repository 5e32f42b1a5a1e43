package entities

import "errors"

var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidOrder    = errors.New("invalid order data")

	// Ошибки валидации прямого чекаута, исправимые пользователем
	ErrEmptyCart             = errors.New("cart is empty")
	ErrOutOfStock            = errors.New("not enough stock")
	ErrInvalidQuantity       = errors.New("invalid quantity")
	ErrMinimumQuantityNotMet = errors.New("partner minimum quantity not met")

	// Конкурентный чекаут забрал последние единицы товара, транзакция откачена целиком
	ErrStockConflict = errors.New("stock conflict")

	// Заказ с таким provider_payment_id / provider_order_id уже материализован
	ErrOrderExists = errors.New("order already exists")

	// Дефекты интеграции с провайдером: повторные попытки их не исправят
	ErrNoCustomer = errors.New("customer not resolvable from provider reference")
	ErrNoItems    = errors.New("provider order has no line items")

	ErrProviderUnavailable = errors.New("payment provider unavailable")
)
