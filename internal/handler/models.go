package handler

import (
	"time"

	"github.com/cowboylogic-net/bookstore/internal/entities"
)

// Order представляет заказ
type Order struct {
	OrderID           string      `json:"order_id"`
	OwnerID           string      `json:"owner_id"`
	TotalPrice        int         `json:"total_price"`
	Status            string      `json:"status"`
	ProviderPaymentID string      `json:"provider_payment_id,omitempty"`
	ProviderOrderID   string      `json:"provider_order_id,omitempty"`
	Shipping          *Shipping   `json:"shipping,omitempty"`
	Lines             []OrderLine `json:"lines"`
	CreatedAt         time.Time   `json:"created_at"`
}

// OrderLine позиция заказа со снимком цены на момент покупки
type OrderLine struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	UnitPrice int    `json:"unit_price"`
	Tier      string `json:"tier"`
}

// Shipping данные получателя
type Shipping struct {
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	ZIP     string `json:"zip,omitempty"`
	City    string `json:"city,omitempty"`
	Address string `json:"address,omitempty"`
	Region  string `json:"region,omitempty"`
}

// HostedCheckoutResponse содержит URL hosted-страницы оплаты
type HostedCheckoutResponse struct {
	RedirectURL string `json:"redirect_url"`
}

// ConfirmResponse результат сверки платежа
type ConfirmResponse struct {
	Status string `json:"status"`
	Order  *Order `json:"order,omitempty"`
}

// PaymentEvent - уведомление о платеже: тело вебхука провайдера
// и сообщение в шине событий используют один формат
type PaymentEvent struct {
	PaymentID string `json:"payment_id" validate:"required_without=OrderID"`
	OrderID   string `json:"order_id" validate:"required_without=PaymentID"`
}

func OrderLineEntityToJSON(l entities.OrderLine) OrderLine {
	return OrderLine{
		ProductID: l.ProductID,
		Quantity:  l.Quantity,
		UnitPrice: l.UnitPrice,
		Tier:      string(l.Tier),
	}
}

func OrderEntityToJSON(o entities.Order) Order {
	lines := make([]OrderLine, 0, len(o.Lines))
	for _, l := range o.Lines {
		lines = append(lines, OrderLineEntityToJSON(l))
	}

	order := Order{
		OrderID:           o.ID,
		OwnerID:           o.OwnerID,
		TotalPrice:        o.TotalPrice,
		Status:            string(o.Status),
		ProviderPaymentID: o.ProviderPaymentID,
		ProviderOrderID:   o.ProviderOrderID,
		Lines:             lines,
		CreatedAt:         o.CreatedAt,
	}

	if o.Shipping != nil {
		order.Shipping = &Shipping{
			Name:    o.Shipping.Name,
			Phone:   o.Shipping.Phone,
			ZIP:     o.Shipping.ZIP,
			City:    o.Shipping.City,
			Address: o.Shipping.Address,
			Region:  o.Shipping.Region,
		}
	}

	return order
}

func OrdersEntityToJSON(orders []entities.Order) []Order {
	result := make([]Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderEntityToJSON(o))
	}
	return result
}
