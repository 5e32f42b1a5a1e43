package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/cowboylogic-net/bookstore/internal/config"
	"github.com/cowboylogic-net/bookstore/internal/entities"
	"github.com/cowboylogic-net/bookstore/internal/service"
	"github.com/cowboylogic-net/bookstore/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
)

// kafkaHandler консумирует события платежей из шины. Reconcile идемпотентен,
// поэтому повторная доставка сообщений безопасна.
type kafkaHandler struct {
	dlq       *kafka.Writer
	reader    *kafka.Reader
	logger    *slog.Logger
	validate  *validator.Validate
	reconcile Reconciler
}

func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, reconcile Reconciler) *kafkaHandler {
	return &kafkaHandler{
		logger: logger.With(slog.String("handler", "kafka")),
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: cfg.Brokers,
			GroupID: cfg.GroupID,
			Topic:   cfg.Topic,
			MaxWait: cfg.ReaderMaxWait,
		}),
		dlq: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
		validate:  validator.New(),
		reconcile: reconcile,
	}
}

func (h *kafkaHandler) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				break
			} else {
				h.logger.Error("failed to fetch message", slog.Any("error", err))
				continue
			}
		}

		if err := h.handlePaymentEvent(ctx, m); err != nil {
			paymentEventsFailed.Inc()
			h.logger.Error("failed to handle payment event", slog.Any("error", err))

			// В библиотеке уже есть retry
			if err := h.WriteToDLQ(ctx, m); err != nil {
				h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
				continue
			}
			paymentEventsDLQ.Inc()
		} else {
			paymentEventsProcessed.Inc()
		}

		if err := h.reader.CommitMessages(ctx, m); err != nil {
			commitErrors.Inc()
			h.logger.Error("failed to commit message", slog.Any("error", err))
		}
	}
}

func (h *kafkaHandler) handlePaymentEvent(ctx context.Context, m kafka.Message) error {
	var event PaymentEvent
	if err := json.Unmarshal(m.Value, &event); err != nil {
		return fmt.Errorf("failed to unmarshal payment event: %w", err)
	}

	if err := h.validate.Struct(event); err != nil {
		return fmt.Errorf("invalid payment event: %w", err)
	}

	// Дефекты данных (ErrNoCustomer, ErrNoItems) повторами не лечатся,
	// такие события сразу уходят в DLQ.
	cfg := utils.RetryConfig{
		InitialDelay: 100 * time.Millisecond,
		MaxAttempts:  5,
		Multiplier:   2,
	}
	return utils.Retry(cfg, func() error {
		result, err := h.reconcile.Reconcile(ctx, event.PaymentID, event.OrderID)
		if err != nil {
			return err
		}
		if result.State == service.ReconcilePending {
			// Платеж догонит нас через вебхук или опрос клиента
			h.logger.Debug("payment not reconcilable yet",
				slog.String("payment_id", event.PaymentID),
				slog.String("provider_order_id", event.OrderID))
		}
		reconciliationsTotal.WithLabelValues("kafka", string(result.State)).Inc()
		return nil
	}, entities.ErrNoCustomer, entities.ErrNoItems)
}

func (h *kafkaHandler) WriteToDLQ(ctx context.Context, m kafka.Message) error {
	m.Topic = fmt.Sprintf("%s-dlq", m.Topic)
	return h.dlq.WriteMessages(ctx, m)
}

func (h *kafkaHandler) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}
