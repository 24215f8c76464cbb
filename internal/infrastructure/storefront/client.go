package storefront

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"storefront_checkout/internal/domain/entities"
	"storefront_checkout/pkg/logger"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

const maxResponseBytes = 1 << 20

// Client talks to the storefront backend on behalf of the buyer. Every request
// carries the buyer's cookies and CSRF token.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// envelope is the union of every storefront JSON answer.
type envelope struct {
	Success     bool       `json:"success"`
	Error       string     `json:"error"`
	Message     string     `json:"message"`
	Amount      flexString `json:"amount"`
	OrderID     flexString `json:"orderId"`
	OrderName   string     `json:"orderName"`
	SuccessURL  string     `json:"successUrl"`
	FailURL     string     `json:"failUrl"`
	RedirectURL string     `json:"redirectUrl"`
	PreOrderKey flexString `json:"preOrderKey"`

	Bank          string `json:"bank"`
	AccountNumber string `json:"account_number"`
	AccountHolder string `json:"account_holder"`
	DueDate       string `json:"due_date"`
}

func (e envelope) message() string {
	if strings.TrimSpace(e.Error) != "" {
		return e.Error
	}
	return e.Message
}

// flexString accepts a JSON string or number. Ids and amounts come back as
// either depending on the endpoint.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

func (f flexString) String() string {
	return strings.TrimSpace(string(f))
}

// Int64 parses the value as a whole amount; fractional values are truncated.
func (f flexString) Int64() int64 {
	s := f.String()
	if s == "" {
		return 0
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return int64(v)
}

// postJSON sends body as JSON and decodes the envelope whatever the status
// code. A {success:false} answer returns the decoded envelope together with a
// *entities.StorefrontError.
func (c *Client) postJSON(ctx context.Context, creds entities.Credentials, path string, body any) (envelope, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return envelope{}, fmt.Errorf("storefront %s: encode request: %w", path, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return envelope{}, fmt.Errorf("storefront %s: build request: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	applyCredentials(req, creds)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Warn(ctx, "[checkout][storefront] request failed", zap.String("path", path), zap.Error(err))
		return envelope{}, fmt.Errorf("storefront %s: %w", path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return envelope{}, fmt.Errorf("storefront %s: read response: %w", path, err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		logger.Warn(ctx, "[checkout][storefront] non-json response",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.Int("body_len", len(raw)),
		)
		return envelope{}, fmt.Errorf("storefront %s: status=%d: invalid response: %w", path, resp.StatusCode, err)
	}

	logger.Info(ctx, "[checkout][storefront] response",
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Bool("success", env.Success),
		zap.Duration("elapsed", time.Since(start)),
	)
	if !env.Success {
		return env, &entities.StorefrontError{Endpoint: path, StatusCode: resp.StatusCode, Message: env.message()}
	}
	return env, nil
}

// postForm submits a classic form post. Any 2xx answer is success unless the
// body is a {success:false} envelope.
func (c *Client) postForm(ctx context.Context, creds entities.Credentials, path string, form url.Values) error {
	if form == nil {
		form = url.Values{}
	}
	if token := creds.CSRF(); token != "" {
		form.Set("csrfmiddlewaretoken", token)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("storefront %s: build request: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	applyCredentials(req, creds)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Warn(ctx, "[checkout][storefront] request failed", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("storefront %s: %w", path, err)
	}
	defer resp.Body.Close()
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))

	var env envelope
	isEnvelope := json.Unmarshal(raw, &env) == nil && bytes.Contains(raw, []byte(`"success"`))

	logger.Info(ctx, "[checkout][storefront] form response", zap.String("path", path), zap.Int("status", resp.StatusCode))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &entities.StorefrontError{Endpoint: path, StatusCode: resp.StatusCode, Message: env.message()}
	}
	if isEnvelope && !env.Success {
		return &entities.StorefrontError{Endpoint: path, StatusCode: resp.StatusCode, Message: env.message()}
	}
	return nil
}

func applyCredentials(req *http.Request, creds entities.Credentials) {
	if token := creds.CSRF(); token != "" {
		req.Header.Set("X-CSRFToken", token)
	}
	for name, value := range creds.Cookies {
		req.AddCookie(&http.Cookie{Name: name, Value: value})
	}
}

// IsRejected reports whether err is a {success:false} answer rather than a
// transport failure.
func IsRejected(err error) bool {
	var se *entities.StorefrontError
	return errors.As(err, &se)
}
