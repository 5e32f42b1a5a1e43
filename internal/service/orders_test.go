package service_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/cowboylogic-net/bookstore/internal/entities"
	"github.com/cowboylogic-net/bookstore/internal/service"
	mocks "github.com/cowboylogic-net/bookstore/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrderQueryService_GetOrder(t *testing.T) {
	order := entities.Order{ID: "order-1", OwnerID: "owner-1"}

	testCases := []struct {
		name         string
		ownerID      string
		mockBehavior func(orders *mocks.MockOrderRepo)
		wantErr      error
	}{
		{
			name:    "owner gets own order",
			ownerID: "owner-1",
			mockBehavior: func(orders *mocks.MockOrderRepo) {
				orders.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(order, nil).Once()
			},
		},
		{
			name:    "foreign order looks like missing",
			ownerID: "owner-2",
			mockBehavior: func(orders *mocks.MockOrderRepo) {
				orders.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(order, nil).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
		{
			name:    "not found",
			ownerID: "owner-1",
			mockBehavior: func(orders *mocks.MockOrderRepo) {
				orders.EXPECT().GetOrderByID(mock.Anything, "order-1").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orders := mocks.NewMockOrderRepo(t)
			tc.mockBehavior(orders)

			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			svc := service.NewOrderQueryService(logger, orders)

			got, err := svc.GetOrder(context.Background(), tc.ownerID, "order-1")
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, order, got)
		})
	}
}
