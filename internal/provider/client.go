package provider

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/cowboylogic-net/bookstore/internal/config"
	"github.com/cowboylogic-net/bookstore/internal/entities"
	"github.com/cowboylogic-net/bookstore/pkg/utils"

	"github.com/go-resty/resty/v2"
)

// Client - узкий контракт с платежным провайдером.
// Любая ошибка здесь - это "провайдер недоступен", а не "платежа не было":
// вызывающая сторона обязана трактовать ее как повторяемую.
type Client struct {
	http        *resty.Client
	maxAttempts int
	successURL  string
	cancelURL   string
}

func NewClient(cfg config.Provider) *Client {
	httpClient := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetAuthToken(cfg.APIKey).
		SetHeader("Accept", "application/json")

	return &Client{
		http:        httpClient,
		maxAttempts: cfg.MaxAttempts,
		successURL:  cfg.SuccessURL,
		cancelURL:   cfg.CancelURL,
	}
}

// CreateCheckout создает hosted-сессию оплаты и возвращает URL редиректа.
func (c *Client) CreateCheckout(ctx context.Context, req CheckoutRequest) (string, error) {
	req.SuccessURL = c.successURL
	req.CancelURL = c.cancelURL

	var result checkoutResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&result).
		Post("/checkouts")
	if err != nil {
		return "", fmt.Errorf("%w: %w", entities.ErrProviderUnavailable, err)
	}
	if resp.StatusCode() != http.StatusCreated && resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("%w: create checkout status %d", entities.ErrProviderUnavailable, resp.StatusCode())
	}

	return result.RedirectURL, nil
}

func (c *Client) GetPayment(ctx context.Context, paymentID string) (Payment, error) {
	var payment Payment
	err := c.retry(func() error {
		return c.get(ctx, "/payments/{id}", paymentID, &payment)
	})
	if err != nil {
		return Payment{}, err
	}
	return payment, nil
}

func (c *Client) GetOrder(ctx context.Context, orderID string) (Order, error) {
	var order Order
	err := c.retry(func() error {
		return c.get(ctx, "/orders/{id}", orderID, &order)
	})
	if err != nil {
		return Order{}, err
	}
	return order, nil
}

func (c *Client) get(ctx context.Context, path, id string, result any) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("id", id).
		SetResult(result).
		Get(path)
	if err != nil {
		return fmt.Errorf("%w: %w", entities.ErrProviderUnavailable, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("%w: status %d", entities.ErrProviderUnavailable, resp.StatusCode())
	}
	return nil
}

func (c *Client) retry(fn func() error) error {
	cfg := utils.RetryConfig{
		MaxAttempts:  c.maxAttempts,
		InitialDelay: 100 * time.Millisecond,
		Multiplier:   2,
	}
	return utils.Retry(cfg, fn)
}
