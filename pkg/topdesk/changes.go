package topdesk

import (
	"context"
	"fmt"
	"net/url"
)

// ListChangesOptions are the optional query parameters for ListChanges.
type ListChangesOptions struct {
	// Fields selects the field set returned by the API, e.g. "all".
	Fields string
}

// GetChangeOptions are the optional query parameters for GetChange.
type GetChangeOptions struct {
	Fields string
}

// change listings are wrapped in an envelope, only results is of interest
type changesEnvelope struct {
	Results []Record `json:"results"`
}

// ListChanges lists operator changes via GET /operatorChanges and unwraps
// the results envelope. A response without the results key yields an empty
// slice.
func (c *Client) ListChanges(ctx context.Context, opts *ListChangesOptions) ([]Record, error) {
	params := url.Values{}
	if opts != nil && opts.Fields != "" {
		params.Set("fields", opts.Fields)
	}

	var envelope changesEnvelope
	if err := c.get(ctx, "/operatorChanges", params, &envelope); err != nil {
		return nil, err
	}
	if envelope.Results == nil {
		return []Record{}, nil
	}
	return envelope.Results, nil
}

// GetChange fetches a single operator change via GET /operatorChanges/{id}.
func (c *Client) GetChange(ctx context.Context, id string, opts *GetChangeOptions) (Record, error) {
	if id == "" {
		return nil, fmt.Errorf("change id is required")
	}

	params := url.Values{}
	if opts != nil && opts.Fields != "" {
		params.Set("fields", opts.Fields)
	}

	var change Record
	if err := c.get(ctx, "/operatorChanges/"+url.PathEscape(id), params, &change); err != nil {
		return nil, err
	}
	return change, nil
}
