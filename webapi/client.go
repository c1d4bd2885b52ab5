package webapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/marcus-crane/steamwebapi/shared"
	"github.com/marcus-crane/steamwebapi/utils"
)

const (
	DefaultTimeout = 10 * time.Second
)

// Requester is what interface groups need from the transport.
type Requester interface {
	Get(ctx context.Context, path string, params Params, out any) error
}

// ClientConfig holds the construction-time settings of a Client. Zero values
// are replaced with defaults.
type ClientConfig struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
	Logger    *slog.Logger
}

// Client is a Requester backed by net/http. It is safe for concurrent use.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a Client with its own HTTP client.
func NewClient(config *ClientConfig) (*Client, error) {
	cfg := withDefaults(config)
	return NewClientWithHTTPClient(&cfg, utils.NewHTTPClient(cfg.Timeout, cfg.UserAgent))
}

// NewClientWithHTTPClient creates a Client that sends requests through
// httpClient. Timeout and UserAgent in config are ignored.
func NewClientWithHTTPClient(config *ClientConfig, httpClient *http.Client) (*Client, error) {
	cfg := withDefaults(config)
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", cfg.BaseURL, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid base url %q: scheme and host are required", cfg.BaseURL)
	}
	if httpClient == nil {
		httpClient = utils.NewHTTPClient(cfg.Timeout, cfg.UserAgent)
	}
	return &Client{
		baseURL:    base,
		httpClient: httpClient,
		logger:     cfg.Logger,
	}, nil
}

func withDefaults(config *ClientConfig) ClientConfig {
	var cfg ClientConfig
	if config != nil {
		cfg = *config
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = shared.BASE_API_URL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = utils.UserAgent
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return cfg
}

// BaseURL returns the URL every request path is joined onto.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

func (c *Client) buildURL(path string, params Params) *url.URL {
	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + "/" + strings.TrimLeft(path, "/")
	u.RawPath = ""
	u.RawQuery = params.Values().Encode()
	return &u
}

// fingerprint identifies a request in logs without exposing the credential.
func fingerprint(u *url.URL, params Params) string {
	return strconv.FormatUint(xxhash.Sum64String(u.Path+"?"+params.Values(shared.PARAM_KEY).Encode()), 16)
}

// Get requests path with params and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, params Params, out any) error {
	if strings.Trim(path, "/") == "" {
		return c.fail(c.logger, path, 0, ErrEmptyPath)
	}
	endpoint := c.buildURL(path, params)
	logger := c.logger.With(
		slog.String("path", endpoint.Path),
		slog.String("fingerprint", fingerprint(endpoint, params)),
	)
	logger.Debug("Sending Steam Web API request", slog.Int("params", len(params)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return c.fail(logger, path, 0, err)
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return c.fail(logger, path, 0, err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return c.fail(logger, path, res.StatusCode, err)
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return c.fail(logger, path, res.StatusCode, fmt.Errorf("%w: %s", ErrUnexpectedStatus, res.Status))
	}
	if err := json.Unmarshal(body, out); err != nil {
		return c.fail(logger, path, res.StatusCode, fmt.Errorf("%w: %v", ErrMalformedResponse, err))
	}
	logger.Debug("Received Steam Web API response", slog.Int("status", res.StatusCode))
	return nil
}

func (c *Client) fail(logger *slog.Logger, path string, status int, err error) error {
	logger.Warn("Steam Web API request failed",
		slog.Int("status", status),
		slog.String("error", err.Error()),
	)
	return &TransportError{Path: path, StatusCode: status, Err: err}
}
