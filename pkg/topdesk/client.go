// Package topdesk implements a client for the TOPdesk ITSM REST API.
// It covers the incident, asset and change endpoints used by the gateway
// and passes records through without interpreting them.
package topdesk

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Record is a single TOPdesk resource as returned by the API. The gateway
// forwards records unchanged, so no structure is imposed on them.
type Record map[string]any

// Config holds the connection settings for the TOPdesk API.
type Config struct {
	BaseURL  string `yaml:"base_url" validate:"required,url"`
	Username string `yaml:"username" validate:"required"`
	Password string `yaml:"password" validate:"required"`
}

const defaultTimeout = 30 * time.Second

var validate = validator.New()

type Client struct {
	baseURL    string
	httpClient *http.Client
}

type ClientOption func(*Client)

// WithHTTPClient sets the HTTP client used for outbound requests.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout bounds every outbound call. The default is 30 seconds.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		if c.httpClient == nil {
			c.httpClient = &http.Client{}
		}
		c.httpClient.Timeout = timeout
	}
}

// NewClient creates a TOPdesk API client. All requests carry the configured
// Basic Auth credentials and an Accept: application/json header. Missing
// configuration fails construction instead of falling back to placeholders.
func NewClient(config Config, opts ...ClientOption) (*Client, error) {
	if err := validate.Struct(config); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	c := &Client{
		baseURL: strings.TrimSuffix(config.BaseURL, "/"),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: defaultTimeout}
	}

	transport := c.httpClient.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	c.httpClient.Transport = &basicAuthTransport{
		username: config.Username,
		password: config.Password,
		T:        transport,
	}

	return c, nil
}

type basicAuthTransport struct {
	username string
	password string
	T        http.RoundTripper
}

func (t *basicAuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.SetBasicAuth(t.username, t.password)
	req.Header.Set("Accept", "application/json")
	return t.T.RoundTrip(req)
}

// get issues a single GET against the API and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return newError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response from %s: %w", path, err)
	}
	return nil
}

// Int returns a pointer to v. Convenience for optional query parameters.
func Int(v int) *int {
	return &v
}
