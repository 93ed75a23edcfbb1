package topdesk

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// ListIncidentsOptions are the optional query parameters for ListIncidents.
// Nil fields are omitted from the request.
type ListIncidentsOptions struct {
	PageStart *int
	PageSize  *int
}

// ListIncidents lists incidents via GET /incidents.
func (c *Client) ListIncidents(ctx context.Context, opts *ListIncidentsOptions) ([]Record, error) {
	params := url.Values{}
	if opts != nil {
		if opts.PageStart != nil {
			params.Set("pageStart", strconv.Itoa(*opts.PageStart))
		}
		if opts.PageSize != nil {
			params.Set("pageSize", strconv.Itoa(*opts.PageSize))
		}
	}

	var incidents []Record
	if err := c.get(ctx, "/incidents", params, &incidents); err != nil {
		return nil, err
	}
	if incidents == nil {
		incidents = []Record{}
	}
	return incidents, nil
}

// GetIncident fetches a single incident via GET /incidents/id/{id}.
func (c *Client) GetIncident(ctx context.Context, id string) (Record, error) {
	if id == "" {
		return nil, fmt.Errorf("incident id is required")
	}

	var incident Record
	if err := c.get(ctx, "/incidents/id/"+url.PathEscape(id), nil, &incident); err != nil {
		return nil, err
	}
	return incident, nil
}
