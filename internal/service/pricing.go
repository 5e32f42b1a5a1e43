package service

import (
	"fmt"

	"github.com/cowboylogic-net/bookstore/internal/entities"
)

// Партнерские заказы только оптовыми лотами
const WholesaleMinQuantity = 5

// ResolveLineUnitPrice возвращает цену единицы товара для данного уровня покупателя
// и уровень, по которому цена фактически рассчитана. Партнер без оптовой цены
// на товар покупает его по обычной цене. Чистая функция.
func ResolveLineUnitPrice(p entities.Product, tier entities.PriceTier) (int, entities.PriceTier) {
	if tier == entities.TierPartner && p.HasPartnerPrice() {
		return p.PartnerPrice, entities.TierPartner
	}
	return p.Price, entities.TierStandard
}

// ValidateQuantity проверяет количество для уровня покупателя.
func ValidateQuantity(tier entities.PriceTier, qty int) error {
	if qty < 1 {
		return fmt.Errorf("%w: %d", entities.ErrInvalidQuantity, qty)
	}
	if tier == entities.TierPartner && qty < WholesaleMinQuantity {
		return fmt.Errorf("%w: %d < %d", entities.ErrInvalidQuantity, qty, WholesaleMinQuantity)
	}
	return nil
}
