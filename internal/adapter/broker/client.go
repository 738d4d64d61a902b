// Package broker implements request/reply calls to sibling services.
//
// A call is POST {endpoint}/rpc/{action} with body {"subdomain", "data"}; the
// reply is {"status": "success"|"error", "data", "errorMessage"}. Calls are
// never retried.
package broker

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/heartmarshall/crmhub-backend/internal/config"
	"github.com/heartmarshall/crmhub-backend/internal/domain"
	"github.com/heartmarshall/crmhub-backend/pkg/ctxutil"
)

const statusError = "error"

// RemoteError is an error reply from a sibling service.
type RemoteError struct {
	Service string
	Action  string
	Message string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s %s: remote error: %s", e.Service, e.Action, e.Message)
}

func (e *RemoteError) Unwrap() error { return domain.ErrUpstreamUnavailable }

type request struct {
	Subdomain string `json:"subdomain"`
	Data      any    `json:"data"`
}

type reply struct {
	Status       string          `json:"status"`
	Data         json.RawMessage `json:"data"`
	ErrorMessage string          `json:"errorMessage,omitempty"`
}

// Client calls sibling services over HTTP.
type Client struct {
	http     *resty.Client
	endpoint func(service string) (string, error)
	log      *slog.Logger
}

// New creates a broker client. Endpoints are resolved per service from cfg.
func New(cfg config.BrokerConfig, logger *slog.Logger) *Client {
	httpClient := resty.New().
		SetTimeout(cfg.Timeout).
		SetRetryCount(0).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{
		http:     httpClient,
		endpoint: cfg.Endpoint,
		log:      logger.With("adapter", "broker"),
	}
}

// Call sends data to service's action and decodes the reply data into out.
// A reply without data (absent or null) leaves out untouched, so callers
// pre-populate out with their default value.
//
// Transport failures, non-2xx statuses and error replies wrap
// domain.ErrUpstreamUnavailable.
func (c *Client) Call(ctx context.Context, service, action string, data any, out any) error {
	raw, err := c.call(ctx, service, action, data)
	if err != nil {
		return err
	}
	if isAbsent(raw) || out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%s %s: decode reply: %w", service, action, err)
	}
	return nil
}

func (c *Client) call(ctx context.Context, service, action string, data any) (json.RawMessage, error) {
	base, err := c.endpoint(service)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", action, err)
	}
	url := base + "/rpc/" + action
	start := time.Now()

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("X-Request-ID", ctxutil.RequestIDFromCtx(ctx)).
		SetBody(request{Subdomain: ctxutil.SubdomainFromCtx(ctx), Data: data}).
		Post(url)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("%s %s: %w", service, action, errors.Join(ctxErr, domain.ErrUpstreamUnavailable))
		}
		return nil, fmt.Errorf("%s %s: %v: %w", service, action, err, domain.ErrUpstreamUnavailable)
	}

	c.log.DebugContext(ctx, "broker call",
		slog.String("service", service),
		slog.String("action", action),
		slog.Int("status", resp.StatusCode()),
		slog.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("%s %s: http status %d: %w", service, action, resp.StatusCode(), domain.ErrUpstreamUnavailable)
	}

	var rep reply
	if err := json.Unmarshal(resp.Body(), &rep); err != nil {
		return nil, fmt.Errorf("%s %s: malformed reply: %v: %w", service, action, err, domain.ErrUpstreamUnavailable)
	}
	if rep.Status == statusError {
		return nil, &RemoteError{Service: service, Action: action, Message: rep.ErrorMessage}
	}
	return rep.Data, nil
}

func isAbsent(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
