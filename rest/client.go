package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-logr/logr"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"

	"github.com/FallenDeity/PokeLance/models"
	"github.com/FallenDeity/PokeLance/ports"
)

// listLimit is the page size used when priming an endpoint index. The
// service's largest category stays well under it, so one page suffices.
const listLimit = 10000

// Config holds the transport settings.
type Config struct {
	BaseURL        string
	UserAgent      string
	ConnectTimeout time.Duration
	RequestTimeout time.Duration
	RateLimit      float64
	RateBurst      int
}

// DefaultConfig returns the settings used against the public service.
func DefaultConfig() Config {
	return Config{
		BaseURL:        DefaultBaseURL,
		UserAgent:      "PokeLance (github.com/FallenDeity/PokeLance)",
		ConnectTimeout: 5 * time.Second,
		RequestTimeout: 30 * time.Second,
		RateLimit:      20,
		RateBurst:      5,
	}
}

// Validate checks the configuration for usable values.
func (c Config) Validate() error {
	if strings.TrimSpace(c.BaseURL) == "" {
		return errors.Wrap(ports.ErrConfiguration, "base url must not be empty")
	}
	if c.ConnectTimeout <= 0 {
		return errors.Wrap(ports.ErrConfiguration, "connect timeout must be positive")
	}
	if c.RequestTimeout <= 0 {
		return errors.Wrap(ports.ErrConfiguration, "request timeout must be positive")
	}
	if c.RateLimit <= 0 {
		return errors.Wrap(ports.ErrConfiguration, "rate limit must be positive")
	}
	if c.RateBurst <= 0 {
		return errors.Wrap(ports.ErrConfiguration, "rate burst must be positive")
	}
	return nil
}

// Client is the rate limited HTTP transport. It performs a single attempt
// per request; retry policy is the caller's concern.
type Client struct {
	baseURL   string
	userAgent string
	timeout   time.Duration
	hc        *http.Client
	limiter   *rate.Limiter
	log       logr.Logger
}

// Option customizes client construction.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client, e.g. for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.hc = hc }
}

// WithLogger attaches a logger. The default discards everything.
func WithLogger(log logr.Logger) Option {
	return func(c *Client) { c.log = log }
}

// NewClient builds a transport from the given configuration.
func NewClient(cfg Config, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid transport config")
	}
	c := &Client{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		userAgent: cfg.UserAgent,
		timeout:   cfg.RequestTimeout,
		limiter:   rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst),
		log:       logr.Discard(),
		hc: &http.Client{
			Transport: &http.Transport{
				Proxy: http.ProxyFromEnvironment,
				DialContext: (&net.Dialer{
					Timeout: cfg.ConnectTimeout,
				}).DialContext,
				TLSHandshakeTimeout: cfg.ConnectTimeout,
				MaxIdleConns:        16,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Resource fetches one resource of the given category by name or id and
// returns the raw response body.
func (c *Client) Resource(ctx context.Context, category, ident string) ([]byte, error) {
	if !KnownCategory(category) {
		return nil, errors.Wrapf(ports.ErrConfiguration, "unknown resource category %q", category)
	}
	ident = strings.TrimSpace(ident)
	if ident == "" {
		return nil, errors.Wrapf(ports.ErrConfiguration, "empty identifier for category %q", category)
	}
	return c.do(ctx, fmt.Sprintf("%s/%s/%s", c.baseURL, category, url.PathEscape(ident)))
}

// Index fetches the category's list endpoint and folds it into a
// name to id map. Categories without names key by decimal id instead.
func (c *Client) Index(ctx context.Context, category string) (map[string]int, error) {
	if !KnownCategory(category) {
		return nil, errors.Wrapf(ports.ErrConfiguration, "unknown resource category %q", category)
	}
	raw, err := c.do(ctx, fmt.Sprintf("%s/%s?limit=%d", c.baseURL, category, listLimit))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %s", category)
	}
	var list models.NamedAPIResourceList
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, errors.Wrapf(ports.ErrDecode, "failed to decode %s index: %v", category, err)
	}
	idx := make(map[string]int, len(list.Results))
	for _, ref := range list.Results {
		id := ref.ID()
		if id == 0 {
			continue
		}
		name := ref.Name
		if name == "" {
			name = strconv.Itoa(id)
		}
		idx[name] = id
	}
	return idx, nil
}

// Bytes fetches an absolute URL, used for sprites, cries and cross
// resource references embedded in payloads.
func (c *Client) Bytes(ctx context.Context, rawURL string) ([]byte, error) {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, errors.Wrapf(ports.ErrConfiguration, "unsupported url %q", rawURL)
	}
	return c.do(ctx, rawURL)
}

// Ping measures one round trip against the API root.
func (c *Client) Ping(ctx context.Context) (time.Duration, error) {
	start := time.Now()
	if _, err := c.do(ctx, c.baseURL+"/"); err != nil {
		return 0, errors.Wrap(err, "ping failed")
	}
	return time.Since(start), nil
}

// CloseIdleConnections releases pooled connections.
func (c *Client) CloseIdleConnections() {
	c.hc.CloseIdleConnections()
}

func (c *Client) do(ctx context.Context, rawURL string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, errors.Wrap(err, "rate limit wait")
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, errors.Wrapf(ports.ErrNetwork, "failed to build request for %s: %v", rawURL, err)
	}
	reqID := uuid.NewString()
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", reqID)

	c.log.V(1).Info("request", "id", reqID, "url", rawURL)
	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, errors.Wrapf(ports.ErrNetwork, "request %s failed: %v", reqID, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, errors.Wrapf(ports.ErrNotFound, "%s", rawURL)
	case resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices:
		return nil, errors.Wrapf(ports.ErrNetwork, "request %s: unexpected status %s", reqID, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(ports.ErrNetwork, "request %s: failed to read body: %v", reqID, err)
	}
	c.log.V(1).Info("response", "id", reqID, "bytes", len(body))
	return body, nil
}
