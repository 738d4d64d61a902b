// Package search reads document ids from the search index with scrolled
// queries.
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/heartmarshall/crmhub-backend/internal/config"
	"github.com/heartmarshall/crmhub-backend/internal/domain"
)

type searchReply struct {
	ScrollID string `json:"_scroll_id"`
	Hits     struct {
		Hits []struct {
			ID string `json:"_id"`
		} `json:"hits"`
	} `json:"hits"`
}

// Client queries the search index over its HTTP API.
type Client struct {
	http   *resty.Client
	prefix string
	size   int
	ttl    string
	log    *slog.Logger
}

// New creates a search client.
func New(cfg config.SearchConfig, logger *slog.Logger) *Client {
	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(cfg.URL, "/")).
		SetTimeout(cfg.Timeout).
		SetRetryCount(0).
		SetHeader("Content-Type", "application/json")

	return &Client{
		http:   httpClient,
		prefix: cfg.IndexPrefix,
		size:   cfg.ScrollSize,
		ttl:    cfg.ScrollTTL,
		log:    logger.With("adapter", "search"),
	}
}

// IDsByQuery returns the ids of every document in index matching positive
// and not matching negative. Either query may be empty.
func (c *Client) IDsByQuery(ctx context.Context, index string, positive, negative domain.SearchQuery) ([]string, error) {
	boolQuery := map[string]any{}
	if len(positive) > 0 {
		boolQuery["must"] = positive
	}
	if len(negative) > 0 {
		boolQuery["must_not"] = negative
	}

	body := map[string]any{
		"_source": false,
		"size":    c.size,
		"query":   map[string]any{"bool": boolQuery},
	}

	var page searchReply
	if err := c.post(ctx, "/"+c.prefix+index+"/_search?scroll="+c.ttl, body, &page); err != nil {
		return nil, err
	}

	ids := []string{}
	scrollID := page.ScrollID
	defer c.clearScroll(scrollID)

	for len(page.Hits.Hits) > 0 {
		for _, hit := range page.Hits.Hits {
			ids = append(ids, hit.ID)
		}
		if scrollID == "" {
			break
		}

		page = searchReply{}
		err := c.post(ctx, "/_search/scroll", map[string]any{"scroll": c.ttl, "scroll_id": scrollID}, &page)
		if err != nil {
			return nil, err
		}
		if page.ScrollID != "" {
			scrollID = page.ScrollID
		}
	}

	c.log.DebugContext(ctx, "scroll finished", slog.String("index", index), slog.Int("ids", len(ids)))
	return ids, nil
}

func (c *Client) post(ctx context.Context, path string, body any, out *searchReply) error {
	resp, err := c.http.R().SetContext(ctx).SetBody(body).Post(path)
	if err != nil {
		return fmt.Errorf("search %s: %v: %w", path, err, domain.ErrUpstreamUnavailable)
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("search %s: http status %d: %w", path, resp.StatusCode(), domain.ErrUpstreamUnavailable)
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("search %s: malformed reply: %v: %w", path, err, domain.ErrUpstreamUnavailable)
	}
	return nil
}

// clearScroll releases the server-side cursor. Failures are only logged.
func (c *Client) clearScroll(scrollID string) {
	if scrollID == "" {
		return
	}
	resp, err := c.http.R().
		SetBody(map[string]any{"scroll_id": []string{scrollID}}).
		Delete("/_search/scroll")
	if err != nil {
		c.log.Warn("clear scroll failed", slog.String("error", err.Error()))
		return
	}
	if resp.IsError() {
		c.log.Warn("clear scroll failed", slog.Int("status", resp.StatusCode()))
	}
}
