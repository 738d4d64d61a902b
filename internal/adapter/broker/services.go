package broker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/heartmarshall/crmhub-backend/internal/domain"
)

// CollectItems calls a service's activity collector. Replies whose data is
// not an array yield no entries. Each entry keeps its item in Raw.
func (c *Client) CollectItems(ctx context.Context, service string, req domain.CollectItemsRequest) ([]domain.ActivityEntry, error) {
	var raw json.RawMessage
	if err := c.Call(ctx, service, "logs.collectItems", req, &raw); err != nil {
		return nil, err
	}

	var items []json.RawMessage
	if isAbsent(raw) || json.Unmarshal(raw, &items) != nil {
		return nil, nil
	}

	entries := make([]domain.ActivityEntry, 0, len(items))
	for i, item := range items {
		var e domain.ActivityEntry
		if err := json.Unmarshal(item, &e); err != nil {
			return nil, fmt.Errorf("%s logs.collectItems: item %d: %w", service, i, err)
		}
		e.Source = domain.ActivitySourceRemote
		e.Raw = item
		entries = append(entries, e)
	}
	return entries, nil
}

// ContentIDs calls logs.getContentIds on the service owning contentType.
func (c *Client) ContentIDs(ctx context.Context, service, pipelineID, contentType string) ([]string, error) {
	out := []string{}
	err := c.Call(ctx, service, "logs.getContentIds", map[string]any{
		"pipelineId":  pipelineID,
		"contentType": contentType,
	}, &out)
	return out, err
}

// AssociationFilter calls segments.associationFilter on a service. A reply
// without data yields no ids.
func (c *Client) AssociationFilter(ctx context.Context, service string, req domain.AssociationFilterRequest) ([]string, error) {
	out := []string{}
	err := c.Call(ctx, service, "segments.associationFilter", req, &out)
	return out, err
}
