package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/cowboylogic-net/bookstore/internal/entities"
	"github.com/cowboylogic-net/bookstore/internal/middleware"
	"github.com/cowboylogic-net/bookstore/internal/service"
	"github.com/cowboylogic-net/bookstore/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type CheckoutService interface {
	Checkout(ctx context.Context, ownerID string, tier entities.PriceTier) (entities.Order, error)
	BeginHostedCheckout(ctx context.Context, ownerID string, tier entities.PriceTier) (string, error)
}

type Reconciler interface {
	Reconcile(ctx context.Context, paymentID, providerOrderID string) (service.ReconcileResult, error)
}

type OrderReader interface {
	GetOrder(ctx context.Context, ownerID, orderID string) (entities.Order, error)
	ListOrders(ctx context.Context, ownerID string) ([]entities.Order, error)
	ListAllOrders(ctx context.Context) ([]entities.Order, error)
}

type HTTPHandler struct {
	logger    *slog.Logger
	validate  *validator.Validate
	checkout  CheckoutService
	reconcile Reconciler
	orders    OrderReader
}

func NewHTTPHandler(logger *slog.Logger, checkout CheckoutService, reconcile Reconciler, orders OrderReader) *HTTPHandler {
	return &HTTPHandler{
		logger:    logger.With(slog.String("handler", "http")),
		validate:  validator.New(),
		checkout:  checkout,
		reconcile: reconcile,
		orders:    orders,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.AuthContext)
		r.Post("/checkout", h.Checkout)
		r.Post("/checkout/hosted", h.BeginHostedCheckout)
		r.Get("/orders/confirm", h.ConfirmOrder)
		r.Get("/orders", h.ListOrders)
		r.Get("/orders/{order_id}", h.GetOrder)
	})

	// доступ к /admin ограничивает вышестоящий шлюз
	r.Get("/admin/orders", h.ListAllOrders)

	r.Post("/webhooks/payments", h.PaymentWebhook)
}

// Checkout оформляет заказ напрямую из корзины.
// @Summary      Прямой чекаут
// @Description  Превращает корзину покупателя в заказ одной транзакцией
// @Tags         checkout
// @Success      201  {object}  Order
// @Failure      400  {object}  utils.ErrorResponse "Корзина пуста или не проходит валидацию"
// @Failure      409  {object}  utils.ErrorResponse "Конкурентный чекаут забрал остаток, можно повторить"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/checkout [post]
func (h *HTTPHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ownerID := middleware.OwnerID(ctx)
	tier := middleware.Tier(ctx)

	order, err := h.checkout.Checkout(ctx, ownerID, tier)

	switch {
	case err == nil:
		checkoutsTotal.WithLabelValues("ok").Inc()
		utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusCreated)

	case errors.Is(err, entities.ErrStockConflict):
		// корзина не тронута, покупатель может повторить
		checkoutsTotal.WithLabelValues("conflict").Inc()
		utils.WriteError(w, err.Error(), http.StatusConflict)

	case errors.Is(err, entities.ErrEmptyCart),
		errors.Is(err, entities.ErrOutOfStock),
		errors.Is(err, entities.ErrInvalidQuantity),
		errors.Is(err, entities.ErrMinimumQuantityNotMet),
		errors.Is(err, entities.ErrProductNotFound):
		checkoutsTotal.WithLabelValues("rejected").Inc()
		utils.WriteError(w, err.Error(), http.StatusBadRequest)

	default:
		checkoutsTotal.WithLabelValues("error").Inc()
		h.logger.ErrorContext(ctx, "checkout failed", slog.Any("error", err), slog.String("owner_id", ownerID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}

// BeginHostedCheckout создает hosted-сессию оплаты у провайдера.
// @Summary      Начать оплату через провайдера
// @Tags         checkout
// @Success      200  {object}  HostedCheckoutResponse
// @Failure      400  {object}  utils.ErrorResponse "Корзина пуста или не проходит валидацию"
// @Failure      503  {object}  utils.ErrorResponse "Провайдер недоступен, попробуйте позже"
// @Router       /api/checkout/hosted [post]
func (h *HTTPHandler) BeginHostedCheckout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ownerID := middleware.OwnerID(ctx)
	tier := middleware.Tier(ctx)

	redirectURL, err := h.checkout.BeginHostedCheckout(ctx, ownerID, tier)

	switch {
	case err == nil:
		utils.WriteJSON(w, HostedCheckoutResponse{RedirectURL: redirectURL}, http.StatusOK)

	case errors.Is(err, entities.ErrProviderUnavailable):
		utils.WriteError(w, "payment provider unavailable", http.StatusServiceUnavailable)

	case errors.Is(err, entities.ErrEmptyCart),
		errors.Is(err, entities.ErrOutOfStock),
		errors.Is(err, entities.ErrInvalidQuantity),
		errors.Is(err, entities.ErrMinimumQuantityNotMet),
		errors.Is(err, entities.ErrProductNotFound):
		utils.WriteError(w, err.Error(), http.StatusBadRequest)

	default:
		h.logger.ErrorContext(ctx, "hosted checkout failed", slog.Any("error", err), slog.String("owner_id", ownerID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}

// ConfirmOrder опрашивается клиентом после редиректа от провайдера.
// @Summary      Подтверждение оплаты
// @Description  Идемпотентно сверяет платеж с провайдером и возвращает заказ
// @Tags         orders
// @Param        payment_id  query  string  false  "Идентификатор платежа у провайдера"
// @Param        order_id    query  string  false  "Идентификатор заказа у провайдера"
// @Success      200  {object}  ConfirmResponse
// @Success      202  {object}  ConfirmResponse "Платеж еще не подтвержден, повторите позже"
// @Failure      400  {object}  utils.ErrorResponse "Не передан ни один идентификатор"
// @Failure      500  {object}  utils.ErrorResponse "Платеж не удалось сверить"
// @Router       /api/orders/confirm [get]
func (h *HTTPHandler) ConfirmOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	paymentID := r.URL.Query().Get("payment_id")
	providerOrderID := r.URL.Query().Get("order_id")

	h.handleReconcile(ctx, w, paymentID, providerOrderID, "poll")
}

// PaymentWebhook принимает пуш провайдера о платеже.
// Дефекты данных здесь не отдаются как 5xx: повторная доставка вебхука
// их не исправит, поэтому они логируются и подтверждаются.
// @Summary      Вебхук платежного провайдера
// @Tags         webhooks
// @Success      200  {object}  ConfirmResponse
// @Failure      400  {object}  utils.ValidationErrorResponse "Некорректное тело вебхука"
// @Router       /webhooks/payments [post]
func (h *HTTPHandler) PaymentWebhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var event PaymentEvent
	if err := utils.DecodeBody(r, &event); err != nil {
		utils.WriteError(w, "invalid payload", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(event); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	result, err := h.reconcile.Reconcile(ctx, event.PaymentID, event.OrderID)
	if err != nil {
		reconciliationsTotal.WithLabelValues("webhook", "error").Inc()
		h.logger.ErrorContext(ctx, "webhook reconciliation failed",
			slog.Any("error", err),
			slog.String("payment_id", event.PaymentID),
			slog.String("provider_order_id", event.OrderID))
		utils.WriteJSON(w, ConfirmResponse{Status: "failed"}, http.StatusOK)
		return
	}

	reconciliationsTotal.WithLabelValues("webhook", string(result.State)).Inc()
	utils.WriteJSON(w, ConfirmResponse{Status: string(result.State)}, http.StatusOK)
}

func (h *HTTPHandler) handleReconcile(ctx context.Context, w http.ResponseWriter, paymentID, providerOrderID, source string) {
	result, err := h.reconcile.Reconcile(ctx, paymentID, providerOrderID)
	if err != nil {
		reconciliationsTotal.WithLabelValues(source, "error").Inc()
		h.logger.ErrorContext(ctx, "reconciliation failed",
			slog.Any("error", err),
			slog.String("payment_id", paymentID),
			slog.String("provider_order_id", providerOrderID))
		utils.WriteError(w, "order could not be reconciled", http.StatusInternalServerError)
		return
	}

	reconciliationsTotal.WithLabelValues(source, string(result.State)).Inc()

	switch result.State {
	case service.ReconcileOK:
		order := OrderEntityToJSON(result.Order)
		utils.WriteJSON(w, ConfirmResponse{Status: "ok", Order: &order}, http.StatusOK)
	case service.ReconcilePending:
		utils.WriteJSON(w, ConfirmResponse{Status: "pending"}, http.StatusAccepted)
	default:
		utils.WriteError(w, "payment_id or order_id is required", http.StatusBadRequest)
	}
}

// GetOrder возвращает заказ владельца.
// @Summary      Получить заказ
// @Tags         orders
// @Param        order_id  path  string  true  "Идентификатор заказа"
// @Success      200  {object}  Order
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Router       /api/orders/{order_id} [get]
func (h *HTTPHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")

	if err := h.validate.Var(orderID, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.orders.GetOrder(ctx, middleware.OwnerID(ctx), orderID)

	if errors.Is(err, entities.ErrOrderNotFound) {
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get order", slog.Any("error", err), slog.String("order_id", orderID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// ListOrders возвращает заказы покупателя.
// @Summary      Список заказов покупателя
// @Tags         orders
// @Success      200  {array}  Order
// @Router       /api/orders [get]
func (h *HTTPHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orders, err := h.orders.ListOrders(ctx, middleware.OwnerID(ctx))
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list orders", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, OrdersEntityToJSON(orders), http.StatusOK)
}

// ListAllOrders возвращает все заказы (админ).
// @Summary      Список всех заказов
// @Tags         admin
// @Success      200  {array}  Order
// @Router       /admin/orders [get]
func (h *HTTPHandler) ListAllOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orders, err := h.orders.ListAllOrders(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list all orders", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, OrdersEntityToJSON(orders), http.StatusOK)
}
