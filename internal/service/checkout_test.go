package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/cowboylogic-net/bookstore/internal/entities"
	"github.com/cowboylogic-net/bookstore/internal/provider"
	"github.com/cowboylogic-net/bookstore/internal/service"
	mocks "github.com/cowboylogic-net/bookstore/internal/service/mocks"
	txMocks "github.com/cowboylogic-net/bookstore/pkg/trm/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func passthroughTx(t *testing.T) *txMocks.MockManager {
	t.Helper()
	tx := txMocks.NewMockManager(t)
	tx.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(
			func(ctx context.Context, cb func(ctx context.Context) error) error {
				return cb(ctx)
			}).Maybe()
	return tx
}

func TestCheckoutService_Checkout(t *testing.T) {
	type Mocks struct {
		products *mocks.MockProductRepo
		carts    *mocks.MockCartRepo
		orders   *mocks.MockOrderRepo
	}

	dbError := errors.New("db error")

	book := entities.Product{
		ID:                "book-1",
		Title:             "Война и мир",
		Price:             1500,
		PartnerPrice:      1200,
		Stock:             10,
		Available:         true,
		WholesaleEligible: true,
	}

	testCases := []struct {
		name         string
		tier         entities.PriceTier
		mockBehavior func(m Mocks)
		wantErr      error
		wantTotal    int
	}{
		{
			name: "empty cart",
			tier: entities.TierStandard,
			mockBehavior: func(m Mocks) {
				m.carts.EXPECT().ListLines(mock.Anything, "owner-1").Return(nil, nil).Once()
			},
			wantErr: entities.ErrEmptyCart,
		},
		{
			name: "not enough stock",
			tier: entities.TierStandard,
			mockBehavior: func(m Mocks) {
				m.carts.EXPECT().ListLines(mock.Anything, "owner-1").
					Return([]entities.CartLine{{OwnerID: "owner-1", ProductID: "book-1", Quantity: 20}}, nil).Once()
				m.products.EXPECT().GetProduct(mock.Anything, "book-1").Return(book, nil).Once()
			},
			wantErr: entities.ErrOutOfStock,
		},
		{
			name: "partner product has no wholesale price",
			tier: entities.TierPartner,
			mockBehavior: func(m Mocks) {
				m.carts.EXPECT().ListLines(mock.Anything, "owner-1").
					Return([]entities.CartLine{{OwnerID: "owner-1", ProductID: "book-2", Quantity: 5}}, nil).Once()
				m.products.EXPECT().GetProduct(mock.Anything, "book-2").
					Return(entities.Product{ID: "book-2", Price: 900, Stock: 10}, nil).Once()
			},
			wantErr: entities.ErrMinimumQuantityNotMet,
		},
		{
			name: "partner below minimum lot",
			tier: entities.TierPartner,
			mockBehavior: func(m Mocks) {
				m.carts.EXPECT().ListLines(mock.Anything, "owner-1").
					Return([]entities.CartLine{{OwnerID: "owner-1", ProductID: "book-1", Quantity: 2}}, nil).Once()
				m.products.EXPECT().GetProduct(mock.Anything, "book-1").Return(book, nil).Once()
			},
			wantErr: entities.ErrMinimumQuantityNotMet,
		},
		{
			name: "concurrent checkout takes the stock",
			tier: entities.TierStandard,
			mockBehavior: func(m Mocks) {
				m.carts.EXPECT().ListLines(mock.Anything, "owner-1").
					Return([]entities.CartLine{{OwnerID: "owner-1", ProductID: "book-1", Quantity: 2}}, nil).Once()
				m.products.EXPECT().GetProduct(mock.Anything, "book-1").Return(book, nil).Once()
				m.orders.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(nil).Once()
				m.products.EXPECT().TryDecrementStock(mock.Anything, "book-1", 2).Return(false, nil).Once()
			},
			wantErr: entities.ErrStockConflict,
		},
		{
			name: "repo error is propagated",
			tier: entities.TierStandard,
			mockBehavior: func(m Mocks) {
				m.carts.EXPECT().ListLines(mock.Anything, "owner-1").Return(nil, dbError).Once()
			},
			wantErr: dbError,
		},
		{
			name: "standard checkout succeeds",
			tier: entities.TierStandard,
			mockBehavior: func(m Mocks) {
				m.carts.EXPECT().ListLines(mock.Anything, "owner-1").
					Return([]entities.CartLine{{OwnerID: "owner-1", ProductID: "book-1", Quantity: 2}}, nil).Once()
				m.products.EXPECT().GetProduct(mock.Anything, "book-1").Return(book, nil).Once()
				m.orders.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(nil).Once()
				m.products.EXPECT().TryDecrementStock(mock.Anything, "book-1", 2).Return(true, nil).Once()
				m.orders.EXPECT().CreateOrderLines(mock.Anything, mock.Anything).Return(nil).Once()
				m.carts.EXPECT().Clear(mock.Anything, "owner-1").Return(nil).Once()
			},
			wantTotal: 3000,
		},
		{
			name: "partner checkout uses wholesale price",
			tier: entities.TierPartner,
			mockBehavior: func(m Mocks) {
				m.carts.EXPECT().ListLines(mock.Anything, "owner-1").
					Return([]entities.CartLine{{OwnerID: "owner-1", ProductID: "book-1", Quantity: 5}}, nil).Once()
				m.products.EXPECT().GetProduct(mock.Anything, "book-1").Return(book, nil).Once()
				m.orders.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(nil).Once()
				m.products.EXPECT().TryDecrementStock(mock.Anything, "book-1", 5).Return(true, nil).Once()
				m.orders.EXPECT().CreateOrderLines(mock.Anything, mock.Anything).Return(nil).Once()
				m.carts.EXPECT().Clear(mock.Anything, "owner-1").Return(nil).Once()
			},
			wantTotal: 6000,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := Mocks{
				products: mocks.NewMockProductRepo(t),
				carts:    mocks.NewMockCartRepo(t),
				orders:   mocks.NewMockOrderRepo(t),
			}
			gateway := mocks.NewMockPaymentGateway(t)
			tx := passthroughTx(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			tc.mockBehavior(m)

			svc := service.NewCheckoutService(logger, tx, m.products, m.carts, m.orders, gateway)

			order, err := svc.Checkout(context.Background(), "owner-1", tc.tier)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantTotal, order.TotalPrice)
			assert.Equal(t, entities.OrderStatusPending, order.Status)
			assert.Equal(t, "owner-1", order.OwnerID)
			require.Len(t, order.Lines, 1)
			assert.Equal(t, order.ID, order.Lines[0].OrderID)
			assert.Equal(t, tc.tier, order.Lines[0].Tier)
		})
	}
}

func TestCheckoutService_BeginHostedCheckout(t *testing.T) {
	book := entities.Product{
		ID:        "book-1",
		Title:     "Мастер и Маргарита",
		Price:     1100,
		Stock:     3,
		Available: true,
	}

	testCases := []struct {
		name         string
		mockBehavior func(carts *mocks.MockCartRepo, products *mocks.MockProductRepo, gateway *mocks.MockPaymentGateway)
		wantErr      error
		wantURL      string
	}{
		{
			name: "empty cart",
			mockBehavior: func(carts *mocks.MockCartRepo, _ *mocks.MockProductRepo, _ *mocks.MockPaymentGateway) {
				carts.EXPECT().ListLines(mock.Anything, "owner-1").Return(nil, nil).Once()
			},
			wantErr: entities.ErrEmptyCart,
		},
		{
			name: "provider unavailable",
			mockBehavior: func(carts *mocks.MockCartRepo, products *mocks.MockProductRepo, gateway *mocks.MockPaymentGateway) {
				carts.EXPECT().ListLines(mock.Anything, "owner-1").
					Return([]entities.CartLine{{OwnerID: "owner-1", ProductID: "book-1", Quantity: 1}}, nil).Once()
				products.EXPECT().GetProduct(mock.Anything, "book-1").Return(book, nil).Once()
				gateway.EXPECT().CreateCheckout(mock.Anything, mock.Anything).
					Return("", entities.ErrProviderUnavailable).Once()
			},
			wantErr: entities.ErrProviderUnavailable,
		},
		{
			name: "success returns redirect url",
			mockBehavior: func(carts *mocks.MockCartRepo, products *mocks.MockProductRepo, gateway *mocks.MockPaymentGateway) {
				carts.EXPECT().ListLines(mock.Anything, "owner-1").
					Return([]entities.CartLine{{OwnerID: "owner-1", ProductID: "book-1", Quantity: 2}}, nil).Once()
				products.EXPECT().GetProduct(mock.Anything, "book-1").Return(book, nil).Once()
				gateway.EXPECT().CreateCheckout(mock.Anything, mock.MatchedBy(func(req provider.CheckoutRequest) bool {
					return req.ReferenceID == "owner-1" &&
						len(req.Items) == 1 &&
						req.Items[0].UnitPrice == 1100 &&
						req.Items[0].Quantity == 2
				})).Return("https://pay.example.com/s/abc", nil).Once()
			},
			wantURL: "https://pay.example.com/s/abc",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			products := mocks.NewMockProductRepo(t)
			carts := mocks.NewMockCartRepo(t)
			orders := mocks.NewMockOrderRepo(t)
			gateway := mocks.NewMockPaymentGateway(t)
			tx := passthroughTx(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			tc.mockBehavior(carts, products, gateway)

			svc := service.NewCheckoutService(logger, tx, products, carts, orders, gateway)

			url, err := svc.BeginHostedCheckout(context.Background(), "owner-1", entities.TierStandard)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantURL, url)
		})
	}
}
