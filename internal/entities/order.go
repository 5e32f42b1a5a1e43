package entities

import (
	"bytes"
	"encoding/gob"
	"time"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
)

type PriceTier string

const (
	TierStandard PriceTier = "standard"
	TierPartner  PriceTier = "partner"
)

// Shipping - снимок данных получателя на момент оформления заказа.
type Shipping struct {
	Name    string
	Phone   string
	ZIP     string
	City    string
	Address string
	Region  string
}

// OrderLine - позиция заказа. После создания не изменяется:
// это исторический снимок цены, намеренно отвязанный от живой цены товара.
type OrderLine struct {
	OrderID   string
	ProductID string
	Quantity  int
	UnitPrice int
	Tier      PriceTier
}

// Order - подтвержденный заказ. ProviderPaymentID и ProviderOrderID уникальны,
// это якорь идемпотентности для асинхронного пути оплаты.
type Order struct {
	ID                string
	OwnerID           string
	TotalPrice        int
	Status            OrderStatus
	ProviderPaymentID string
	ProviderOrderID   string
	CreatedAt         time.Time

	// Shipping заполняется только для заказов, оформленных через провайдера
	Shipping *Shipping
	Lines    []OrderLine
}

func (o *Order) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (o *Order) Unmarshal(data []byte) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	return dec.Decode(o)
}

func init() {
	gob.Register(Order{})
	gob.Register(OrderLine{})
	gob.Register(Shipping{})
}
