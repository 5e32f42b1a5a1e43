package entities

// Product представляет книгу в каталоге. Stock никогда не опускается ниже нуля:
// единственный путь списания - условный декремент в репозитории товаров.
type Product struct {
	ID                string
	Title             string
	Price             int
	PartnerPrice      int
	Stock             int
	Available         bool
	WholesaleEligible bool
}

// HasPartnerPrice сообщает, задана ли оптовая цена.
// PartnerPrice имеет смысл только вместе с WholesaleEligible.
func (p Product) HasPartnerPrice() bool {
	return p.WholesaleEligible && p.PartnerPrice > 0
}

// CartLine - позиция корзины, уникальная по (владелец, товар).
type CartLine struct {
	OwnerID   string
	ProductID string
	Quantity  int
}

// Customer - локальный покупатель. Partner означает оптовый тариф.
type Customer struct {
	ID      string
	Email   string
	Partner bool
}

// Tier возвращает ценовой уровень покупателя.
func (c Customer) Tier() PriceTier {
	if c.Partner {
		return TierPartner
	}
	return TierStandard
}
