package topdesk

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// ListAssetsOptions are the optional query parameters for ListAssets.
// Zero values are omitted from the request.
type ListAssetsOptions struct {
	TemplateID string
	Fields     []string
	Filter     string
	PageStart  *int
	PageSize   *int
}

// asset listings are wrapped in an envelope, only dataSet is of interest
type assetsEnvelope struct {
	DataSet []Record `json:"dataSet"`
}

// ListAssets lists assets via GET /assetmgmt/assets and unwraps the dataSet
// envelope. A response without the dataSet key yields an empty slice.
func (c *Client) ListAssets(ctx context.Context, opts *ListAssetsOptions) ([]Record, error) {
	params := url.Values{}
	if opts != nil {
		if opts.TemplateID != "" {
			params.Set("templateId", opts.TemplateID)
		}
		for _, field := range opts.Fields {
			params.Add("field", field)
		}
		if opts.Filter != "" {
			params.Set("$filter", opts.Filter)
		}
		if opts.PageStart != nil {
			params.Set("pageStart", strconv.Itoa(*opts.PageStart))
		}
		if opts.PageSize != nil {
			params.Set("pageSize", strconv.Itoa(*opts.PageSize))
		}
	}

	var envelope assetsEnvelope
	if err := c.get(ctx, "/assetmgmt/assets", params, &envelope); err != nil {
		return nil, err
	}
	if envelope.DataSet == nil {
		return []Record{}, nil
	}
	return envelope.DataSet, nil
}

// GetAsset fetches a single asset via GET /assetmgmt/assets/id/{id}.
func (c *Client) GetAsset(ctx context.Context, id string) (Record, error) {
	if id == "" {
		return nil, fmt.Errorf("asset id is required")
	}

	var asset Record
	if err := c.get(ctx, "/assetmgmt/assets/id/"+url.PathEscape(id), nil, &asset); err != nil {
		return nil, err
	}
	return asset, nil
}
