package handler_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/cowboylogic-net/bookstore/internal/entities"
	"github.com/cowboylogic-net/bookstore/internal/handler"
	mocks "github.com/cowboylogic-net/bookstore/internal/handler/mocks"
	"github.com/cowboylogic-net/bookstore/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type handlerMocks struct {
	checkout  *mocks.MockCheckoutService
	reconcile *mocks.MockReconciler
	orders    *mocks.MockOrderReader
}

func newTestRouter(t *testing.T, behavior func(m handlerMocks)) chi.Router {
	t.Helper()

	m := handlerMocks{
		checkout:  mocks.NewMockCheckoutService(t),
		reconcile: mocks.NewMockReconciler(t),
		orders:    mocks.NewMockOrderReader(t),
	}
	behavior(m)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewHTTPHandler(logger, m.checkout, m.reconcile, m.orders)

	r := chi.NewRouter()
	h.Init(r)
	return r
}

func authed(req *http.Request) *http.Request {
	req.Header.Set("X-Customer-ID", "owner-1")
	return req
}

func TestHTTPHandler_Checkout(t *testing.T) {
	validOrder := entities.Order{
		ID:         "order-1",
		OwnerID:    "owner-1",
		TotalPrice: 3000,
		Status:     entities.OrderStatusPending,
		CreatedAt:  time.Now().UTC(),
		Lines: []entities.OrderLine{
			{OrderID: "order-1", ProductID: "book-1", Quantity: 2, UnitPrice: 1500, Tier: entities.TierStandard},
		},
	}

	testCases := []struct {
		name         string
		tierHeader   string
		mockBehavior func(m handlerMocks)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			mockBehavior: func(m handlerMocks) {
				m.checkout.EXPECT().
					Checkout(mock.Anything, "owner-1", entities.TierStandard).
					Return(validOrder, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"order_id":"order-1"`,
		},
		{
			name:       "partner tier from header",
			tierHeader: "partner",
			mockBehavior: func(m handlerMocks) {
				m.checkout.EXPECT().
					Checkout(mock.Anything, "owner-1", entities.TierPartner).
					Return(validOrder, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"order_id":"order-1"`,
		},
		{
			name: "empty cart",
			mockBehavior: func(m handlerMocks) {
				m.checkout.EXPECT().
					Checkout(mock.Anything, "owner-1", entities.TierStandard).
					Return(entities.Order{}, entities.ErrEmptyCart).Once()
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "stock conflict",
			mockBehavior: func(m handlerMocks) {
				m.checkout.EXPECT().
					Checkout(mock.Anything, "owner-1", entities.TierStandard).
					Return(entities.Order{}, entities.ErrStockConflict).Once()
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "internal error",
			mockBehavior: func(m handlerMocks) {
				m.checkout.EXPECT().
					Checkout(mock.Anything, "owner-1", entities.TierStandard).
					Return(entities.Order{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRouter(t, tc.mockBehavior)

			req := authed(httptest.NewRequest(http.MethodPost, "/api/checkout", nil))
			if tc.tierHeader != "" {
				req.Header.Set("X-Customer-Tier", tc.tierHeader)
			}
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			res := rr.Result()
			defer res.Body.Close()
			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			if tc.wantBody != "" {
				assert.Contains(t, string(body), tc.wantBody)
			}
		})
	}
}

func TestHTTPHandler_Checkout_Unauthorized(t *testing.T) {
	r := newTestRouter(t, func(m handlerMocks) {})

	req := httptest.NewRequest(http.MethodPost, "/api/checkout", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestHTTPHandler_BeginHostedCheckout(t *testing.T) {
	testCases := []struct {
		name         string
		mockBehavior func(m handlerMocks)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			mockBehavior: func(m handlerMocks) {
				m.checkout.EXPECT().
					BeginHostedCheckout(mock.Anything, "owner-1", entities.TierStandard).
					Return("https://pay.example.com/s/abc", nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"redirect_url":"https://pay.example.com/s/abc"`,
		},
		{
			name: "provider unavailable",
			mockBehavior: func(m handlerMocks) {
				m.checkout.EXPECT().
					BeginHostedCheckout(mock.Anything, "owner-1", entities.TierStandard).
					Return("", entities.ErrProviderUnavailable).Once()
			},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `"payment provider unavailable"`,
		},
		{
			name: "empty cart",
			mockBehavior: func(m handlerMocks) {
				m.checkout.EXPECT().
					BeginHostedCheckout(mock.Anything, "owner-1", entities.TierStandard).
					Return("", entities.ErrEmptyCart).Once()
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRouter(t, tc.mockBehavior)

			req := authed(httptest.NewRequest(http.MethodPost, "/api/checkout/hosted", nil))
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			res := rr.Result()
			defer res.Body.Close()
			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			if tc.wantBody != "" {
				assert.Contains(t, string(body), tc.wantBody)
			}
		})
	}
}

func TestHTTPHandler_ConfirmOrder(t *testing.T) {
	completedOrder := entities.Order{
		ID:                "order-1",
		OwnerID:           "owner-1",
		Status:            entities.OrderStatusCompleted,
		ProviderPaymentID: "pay-1",
	}

	testCases := []struct {
		name         string
		query        string
		mockBehavior func(m handlerMocks)
		wantStatus   int
		wantBody     string
	}{
		{
			name:  "reconciled",
			query: "?payment_id=pay-1",
			mockBehavior: func(m handlerMocks) {
				m.reconcile.EXPECT().
					Reconcile(mock.Anything, "pay-1", "").
					Return(service.ReconcileResult{State: service.ReconcileOK, Order: completedOrder}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"ok"`,
		},
		{
			name:  "pending",
			query: "?payment_id=pay-1",
			mockBehavior: func(m handlerMocks) {
				m.reconcile.EXPECT().
					Reconcile(mock.Anything, "pay-1", "").
					Return(service.ReconcileResult{State: service.ReconcilePending}, nil).Once()
			},
			wantStatus: http.StatusAccepted,
			wantBody:   `"status":"pending"`,
		},
		{
			name:  "no identifiers",
			query: "",
			mockBehavior: func(m handlerMocks) {
				m.reconcile.EXPECT().
					Reconcile(mock.Anything, "", "").
					Return(service.ReconcileResult{State: service.ReconcileNoInput}, nil).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"payment_id or order_id is required"`,
		},
		{
			name:  "reconciliation fails",
			query: "?order_id=po-1",
			mockBehavior: func(m handlerMocks) {
				m.reconcile.EXPECT().
					Reconcile(mock.Anything, "", "po-1").
					Return(service.ReconcileResult{}, entities.ErrNoCustomer).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"order could not be reconciled"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRouter(t, tc.mockBehavior)

			req := authed(httptest.NewRequest(http.MethodGet, "/api/orders/confirm"+tc.query, nil))
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			res := rr.Result()
			defer res.Body.Close()
			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, string(body), tc.wantBody)
		})
	}
}

func TestHTTPHandler_PaymentWebhook(t *testing.T) {
	testCases := []struct {
		name         string
		payload      string
		mockBehavior func(m handlerMocks)
		wantStatus   int
		wantBody     string
	}{
		{
			name:    "reconciled",
			payload: `{"payment_id":"pay-1"}`,
			mockBehavior: func(m handlerMocks) {
				m.reconcile.EXPECT().
					Reconcile(mock.Anything, "pay-1", "").
					Return(service.ReconcileResult{State: service.ReconcileOK}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"ok"`,
		},
		{
			name:         "missing both identifiers",
			payload:      `{}`,
			mockBehavior: func(m handlerMocks) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:         "broken json",
			payload:      `{`,
			mockBehavior: func(m handlerMocks) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid payload"`,
		},
		{
			name:    "reconcile error is acknowledged",
			payload: `{"order_id":"po-1"}`,
			mockBehavior: func(m handlerMocks) {
				m.reconcile.EXPECT().
					Reconcile(mock.Anything, "", "po-1").
					Return(service.ReconcileResult{}, entities.ErrNoItems).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"failed"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRouter(t, tc.mockBehavior)

			req := httptest.NewRequest(http.MethodPost, "/webhooks/payments", strings.NewReader(tc.payload))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			res := rr.Result()
			defer res.Body.Close()
			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			if tc.wantBody != "" {
				assert.Contains(t, string(body), tc.wantBody)
			}
		})
	}
}

func TestHTTPHandler_GetOrder(t *testing.T) {
	validOrder := entities.Order{ID: "order-1", OwnerID: "owner-1", Status: entities.OrderStatusCompleted}

	testCases := []struct {
		name         string
		orderID      string
		mockBehavior func(m handlerMocks)
		wantStatus   int
		wantBody     string
	}{
		{
			name:    "success",
			orderID: "order-1",
			mockBehavior: func(m handlerMocks) {
				m.orders.EXPECT().
					GetOrder(mock.Anything, "owner-1", "order-1").
					Return(validOrder, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"order_id":"order-1"`,
		},
		{
			name:    "not found",
			orderID: "not-exist",
			mockBehavior: func(m handlerMocks) {
				m.orders.EXPECT().
					GetOrder(mock.Anything, "owner-1", "not-exist").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRouter(t, tc.mockBehavior)

			req := authed(httptest.NewRequest(http.MethodGet, "/api/orders/"+tc.orderID, nil))
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			res := rr.Result()
			defer res.Body.Close()
			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, string(body), tc.wantBody)

			if tc.wantStatus == http.StatusOK {
				var resp map[string]any
				require.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, "order-1", resp["order_id"])
			}
		})
	}
}

func TestHTTPHandler_ListOrders(t *testing.T) {
	r := newTestRouter(t, func(m handlerMocks) {
		m.orders.EXPECT().
			ListOrders(mock.Anything, "owner-1").
			Return([]entities.Order{{ID: "order-1"}, {ID: "order-2"}}, nil).Once()
	})

	req := authed(httptest.NewRequest(http.MethodGet, "/api/orders", nil))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp []map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestHTTPHandler_ListAllOrders(t *testing.T) {
	r := newTestRouter(t, func(m handlerMocks) {
		m.orders.EXPECT().
			ListAllOrders(mock.Anything).
			Return([]entities.Order{{ID: "order-1"}}, nil).Once()
	})

	// админский маршрут не требует заголовков покупателя
	req := httptest.NewRequest(http.MethodGet, "/admin/orders", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"order_id":"order-1"`)
}
