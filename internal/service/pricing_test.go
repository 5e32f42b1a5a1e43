package service_test

import (
	"testing"

	"github.com/cowboylogic-net/bookstore/internal/entities"
	"github.com/cowboylogic-net/bookstore/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestResolveLineUnitPrice(t *testing.T) {
	book := entities.Product{
		ID:                "book-1",
		Price:             1500,
		PartnerPrice:      1200,
		WholesaleEligible: true,
	}
	retailOnly := entities.Product{
		ID:    "book-2",
		Price: 900,
	}
	notEligible := entities.Product{
		ID:           "book-3",
		Price:        700,
		PartnerPrice: 500,
	}

	testCases := []struct {
		name      string
		product   entities.Product
		tier      entities.PriceTier
		wantPrice int
		wantTier  entities.PriceTier
	}{
		{
			name:      "standard buyer gets retail price",
			product:   book,
			tier:      entities.TierStandard,
			wantPrice: 1500,
			wantTier:  entities.TierStandard,
		},
		{
			name:      "partner gets wholesale price",
			product:   book,
			tier:      entities.TierPartner,
			wantPrice: 1200,
			wantTier:  entities.TierPartner,
		},
		{
			name:      "partner falls back to retail when no partner price",
			product:   retailOnly,
			tier:      entities.TierPartner,
			wantPrice: 900,
			wantTier:  entities.TierStandard,
		},
		{
			name:      "partner price ignored without wholesale eligibility",
			product:   notEligible,
			tier:      entities.TierPartner,
			wantPrice: 700,
			wantTier:  entities.TierStandard,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			price, tier := service.ResolveLineUnitPrice(tc.product, tc.tier)
			assert.Equal(t, tc.wantPrice, price)
			assert.Equal(t, tc.wantTier, tier)
		})
	}
}

func TestValidateQuantity(t *testing.T) {
	testCases := []struct {
		name    string
		tier    entities.PriceTier
		qty     int
		wantErr error
	}{
		{name: "standard single unit", tier: entities.TierStandard, qty: 1},
		{name: "standard zero", tier: entities.TierStandard, qty: 0, wantErr: entities.ErrInvalidQuantity},
		{name: "standard negative", tier: entities.TierStandard, qty: -3, wantErr: entities.ErrInvalidQuantity},
		{name: "partner at minimum lot", tier: entities.TierPartner, qty: service.WholesaleMinQuantity},
		{name: "partner below minimum lot", tier: entities.TierPartner, qty: service.WholesaleMinQuantity - 1, wantErr: entities.ErrInvalidQuantity},
		{name: "partner zero", tier: entities.TierPartner, qty: 0, wantErr: entities.ErrInvalidQuantity},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := service.ValidateQuantity(tc.tier, tc.qty)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
