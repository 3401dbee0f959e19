package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrUnavailable = errors.New("payment provider unavailable")
	ErrRejected    = errors.New("payment provider rejected the request")
)

type Config struct {
	Address    string        `env:"PAYMENT_ADDRESS" envDefault:"http://localhost:8090"`
	Secret     string        `env:"PAYMENT_SECRET"`
	Timeout    time.Duration `env:"PAYMENT_TIMEOUT" envDefault:"5s"`
	RetryCount int           `env:"PAYMENT_RETRY_COUNT" envDefault:"3"`
}

// Provider talks to the hosted payments API. It is constructed once at
// startup and handed to the core; every call runs under a bounded timeout
// and through a circuit breaker, with a handful of retries for transient
// failures.
type Provider struct {
	log     *zap.Logger
	cfg     *Config
	client  *http.Client
	breaker *circuitBreaker
}

type option func(*Provider)

func Logger(log *zap.Logger) option {
	return func(p *Provider) {
		if log != nil {
			p.log = log
		}
	}
}

func New(cfg *Config, options ...option) *Provider {
	p := &Provider{
		log:     zap.NewNop(),
		cfg:     cfg,
		client:  &http.Client{},
		breaker: newCircuitBreaker(),
	}

	for _, opt := range options {
		opt(p)
	}

	return p
}

type tCheckoutSessionRequest struct {
	BookingID uint   `json:"booking_id"`
	Amount    string `json:"amount"`
	Currency  string `json:"currency"`
	Reference string `json:"reference"`
}

type tCheckoutSessionResponse struct {
	URL string `json:"url"`
}

func (p *Provider) CreateCheckoutSession(ctx context.Context, bookingID uint,
	amount decimal.Decimal, sessionRef string) (string, error) {
	body := tCheckoutSessionRequest{
		BookingID: bookingID,
		Amount:    amount.StringFixed(2),
		Currency:  "GBP",
		Reference: sessionRef,
	}
	res := tCheckoutSessionResponse{}
	if err := p.call(ctx, http.MethodPost, "/api/v1/checkout/sessions", body, &res); err != nil {
		return "", err
	}

	return res.URL, nil
}

type tAccountResponse struct {
	PayoutsEnabled bool `json:"payouts_enabled"`
}

func (p *Provider) PayoutsEnabled(ctx context.Context, accountRef string) (bool, error) {
	res := tAccountResponse{}
	if err := p.call(ctx, http.MethodGet, "/api/v1/accounts/"+accountRef, nil, &res); err != nil {
		return false, err
	}

	return res.PayoutsEnabled, nil
}

type tTransferRequest struct {
	Account  string `json:"account"`
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

type tTransferResponse struct {
	ID string `json:"id"`
}

func (p *Provider) Transfer(ctx context.Context, accountRef string,
	amount decimal.Decimal) (string, error) {
	body := tTransferRequest{
		Account:  accountRef,
		Amount:   amount.StringFixed(2),
		Currency: "GBP",
	}
	res := tTransferResponse{}
	if err := p.call(ctx, http.MethodPost, "/api/v1/transfers", body, &res); err != nil {
		return "", err
	}

	return res.ID, nil
}

// call runs a provider request with bounded retries. Client errors are not
// retried; 5xx, 429 and transport errors are, with Retry-After honoured
// through the breaker delay.
func (p *Provider) call(ctx context.Context, method, path string, body, out interface{}) error {
	var lastErr error
	for attempt := 0; attempt < p.cfg.RetryCount; attempt++ {
		err := p.breaker.execute(func() (int64, error) {
			return p.do(ctx, method, path, body, out)
		})
		if err == nil {
			return nil
		}
		if errors.Is(err, ErrRejected) || ctx.Err() != nil {
			return err
		}
		lastErr = err
		p.log.Warn("provider request failed",
			zap.String("path", path),
			zap.Int("attempt", attempt+1),
			zap.Error(err),
		)
	}

	return fmt.Errorf("%w: %w", ErrUnavailable, lastErr)
}

func (p *Provider) do(ctx context.Context, method, path string, body, out interface{}) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, p.cfg.Timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		bBody, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("failed marshal request: %w", err)
		}
		reader = bytes.NewReader(bBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, p.cfg.Address+path, reader)
	if err != nil {
		return 0, fmt.Errorf("failed build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+p.cfg.Secret)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	bBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("failed read response body: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated:
		if out == nil {
			return 0, nil
		}
		if err := json.Unmarshal(bBody, out); err != nil {
			return 0, fmt.Errorf("failed unmarshal response: %w", err)
		}
		return 0, nil
	case resp.StatusCode == http.StatusTooManyRequests:
		sRetryAfter := resp.Header.Get("Retry-After")
		iRetryAfter, _ := strconv.ParseInt(sRetryAfter, 10, 64)
		return iRetryAfter, fmt.Errorf("too many requests: %s", resp.Status)
	case resp.StatusCode >= http.StatusInternalServerError:
		return 0, fmt.Errorf("provider error: %s", resp.Status)
	default:
		return 0, fmt.Errorf("%w: %s %s", ErrRejected, resp.Status, string(bBody))
	}
}
