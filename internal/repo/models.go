package repo

import (
	"database/sql"
	"time"

	"github.com/cowboylogic-net/bookstore/internal/entities"
)

type Product struct {
	ProductID         string        `db:"product_id"`
	Title             string        `db:"title"`
	Price             int           `db:"price"`
	PartnerPrice      sql.NullInt32 `db:"partner_price"`
	Stock             int           `db:"stock"`
	Available         bool          `db:"available"`
	WholesaleEligible bool          `db:"wholesale_eligible"`
}

type CartLine struct {
	OwnerID   string `db:"owner_id"`
	ProductID string `db:"product_id"`
	Quantity  int    `db:"quantity"`
}

type Customer struct {
	CustomerID string `db:"customer_id"`
	Email      string `db:"email"`
	Partner    bool   `db:"partner"`
}

type Order struct {
	OrderID           string         `db:"order_id"`
	OwnerID           string         `db:"owner_id"`
	TotalPrice        int            `db:"total_price"`
	Status            string         `db:"status"`
	ProviderPaymentID sql.NullString `db:"provider_payment_id"`
	ProviderOrderID   sql.NullString `db:"provider_order_id"`
	ShipName          sql.NullString `db:"ship_name"`
	ShipPhone         sql.NullString `db:"ship_phone"`
	ShipZIP           sql.NullString `db:"ship_zip"`
	ShipCity          sql.NullString `db:"ship_city"`
	ShipAddress       sql.NullString `db:"ship_address"`
	ShipRegion        sql.NullString `db:"ship_region"`
	CreatedAt         time.Time      `db:"created_at"`
}

type OrderLine struct {
	OrderID   string `db:"order_id"`
	ProductID string `db:"product_id"`
	Quantity  int    `db:"quantity"`
	UnitPrice int    `db:"unit_price"`
	Tier      string `db:"tier"`
}

func ProductToEntity(p Product) entities.Product {
	return entities.Product{
		ID:                p.ProductID,
		Title:             p.Title,
		Price:             p.Price,
		PartnerPrice:      nullInt32ToInt(p.PartnerPrice),
		Stock:             p.Stock,
		Available:         p.Available,
		WholesaleEligible: p.WholesaleEligible,
	}
}

func CartLineToEntity(l CartLine) entities.CartLine {
	return entities.CartLine{
		OwnerID:   l.OwnerID,
		ProductID: l.ProductID,
		Quantity:  l.Quantity,
	}
}

func CustomerToEntity(c Customer) entities.Customer {
	return entities.Customer{
		ID:      c.CustomerID,
		Email:   c.Email,
		Partner: c.Partner,
	}
}

func OrderLineToEntity(l OrderLine) entities.OrderLine {
	return entities.OrderLine{
		OrderID:   l.OrderID,
		ProductID: l.ProductID,
		Quantity:  l.Quantity,
		UnitPrice: l.UnitPrice,
		Tier:      entities.PriceTier(l.Tier),
	}
}

func OrderToEntity(o Order, lines []OrderLine) entities.Order {
	order := entities.Order{
		ID:                o.OrderID,
		OwnerID:           o.OwnerID,
		TotalPrice:        o.TotalPrice,
		Status:            entities.OrderStatus(o.Status),
		ProviderPaymentID: nullStringToString(o.ProviderPaymentID),
		ProviderOrderID:   nullStringToString(o.ProviderOrderID),
		CreatedAt:         o.CreatedAt,
	}

	if o.ShipName.Valid {
		order.Shipping = &entities.Shipping{
			Name:    o.ShipName.String,
			Phone:   nullStringToString(o.ShipPhone),
			ZIP:     nullStringToString(o.ShipZIP),
			City:    nullStringToString(o.ShipCity),
			Address: nullStringToString(o.ShipAddress),
			Region:  nullStringToString(o.ShipRegion),
		}
	}

	if len(lines) > 0 {
		order.Lines = make([]entities.OrderLine, 0, len(lines))
		for _, l := range lines {
			order.Lines = append(order.Lines, OrderLineToEntity(l))
		}
	}

	return order
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullInt32ToInt(ni sql.NullInt32) int {
	if ni.Valid {
		return int(ni.Int32)
	}
	return 0
}
