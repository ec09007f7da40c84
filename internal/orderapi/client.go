// Package orderapi is the HTTP client for the external order service.
package orderapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"ordersadmin.com/app/internal/modules/orders"
	"ordersadmin.com/app/internal/shared/apperr"
)

const (
	maxBodyBytes = 8 << 20

	msgUnavailable = "Order service unavailable."
)

var ErrBadEnvelope = errors.New("order api: malformed response envelope")

// APIError is a non-2xx answer from the order service.
type APIError struct {
	StatusCode int
	Message    string // the body's "message" field, if any
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("order api: status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("order api: status %d", e.StatusCode)
}

func (e *APIError) PublicMessage() string { return e.Message }

type Config struct {
	BaseURL string
	Timeout time.Duration

	// ServiceToken is sent when the request context carries no operator token.
	ServiceToken string
}

type Client struct {
	baseURL      string
	serviceToken string
	http         *http.Client
	log          *slog.Logger
}

func New(cfg Config, l *slog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if l == nil {
		l = slog.Default()
	}
	return &Client{
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		serviceToken: cfg.ServiceToken,
		http:         &http.Client{Timeout: timeout},
		log:          l,
	}
}

type tokenKey struct{}

// WithToken attaches the operator's bearer token to calls made with ctx.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

func tokenFrom(ctx context.Context) string {
	s, _ := ctx.Value(tokenKey{}).(string)
	return s
}

// ListAll calls the admin-scoped order listing.
func (c *Client) ListAll(ctx context.Context) ([]orders.Order, error) {
	body, err := c.do(ctx, http.MethodGet, "/orders/admin/all", nil)
	if err != nil {
		return nil, err
	}
	if !gjson.ValidBytes(body) {
		return nil, ErrBadEnvelope
	}

	data := gjson.GetBytes(body, "data")
	if !data.Exists() || data.Type == gjson.Null {
		return []orders.Order{}, nil
	}
	if !data.IsArray() {
		return nil, ErrBadEnvelope
	}

	// each record is decoded on its own so one bad record cannot blank the list
	out := make([]orders.Order, 0, len(data.Array()))
	i := 0
	data.ForEach(func(_, rec gjson.Result) bool {
		if o, ok := c.decode(ctx, i, rec); ok {
			out = append(out, o)
		}
		i++
		return true
	})
	return out, nil
}

func (c *Client) UpdateStatus(ctx context.Context, orderID string, status orders.Status) error {
	payload, err := json.Marshal(map[string]string{"status": string(status)})
	if err != nil {
		return err
	}
	_, err = c.do(ctx, http.MethodPut, "/orders/"+url.PathEscape(orderID)+"/status", payload)
	return err
}

func (c *Client) Delete(ctx context.Context, orderID string) error {
	_, err := c.do(ctx, http.MethodDelete, "/orders/"+url.PathEscape(orderID), nil)
	return err
}

func (c *Client) do(ctx context.Context, method, path string, payload []byte) ([]byte, error) {
	var rd io.Reader
	if payload != nil {
		rd = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return nil, fmt.Errorf("order api: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	tok := tokenFrom(ctx)
	if tok == "" {
		tok = c.serviceToken
	}
	if tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, apperr.UnavailableErr(msgUnavailable, fmt.Errorf("order api: %s %s: %w", method, path, err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("order api: read body: %w", err)
	}

	c.log.LogAttrs(ctx, slog.LevelDebug, "order_api_call",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    gjson.GetBytes(body, "message").String(),
		}
	}
	return body, nil
}
