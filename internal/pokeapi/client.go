package pokeapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// Fetcher defines the read-only calls dexter makes against the catalog.
// This interface is implemented by *Client and can be used for testing.
type Fetcher interface {
	FetchPokemon(ctx context.Context, key string) (*Pokemon, error)
	FetchCount(ctx context.Context) (int, error)
}

// Ensure Client implements Fetcher at compile time.
var _ Fetcher = (*Client)(nil)

var (
	// ErrNotFound is returned when the API answers 404 for a record.
	ErrNotFound = errors.New("record not found")
	// ErrMalformed is returned when a payload decodes but is unusable.
	ErrMalformed = errors.New("malformed payload")
)

// StatusError reports a non-success HTTP status.
type StatusError struct {
	Path string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api %s returned status %d", e.Path, e.Code)
}

// Is lets errors.Is(err, ErrNotFound) match 404 responses.
func (e *StatusError) Is(target error) bool {
	return target == ErrNotFound && e.Code == http.StatusNotFound
}

// Options tune the HTTP client. Zero values use defaults.
type Options struct {
	Timeout           time.Duration
	RequestsPerSecond float64
	Burst             int
	UserAgent         string
}

// Client talks to the PokeAPI REST endpoints.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	limiter   *rate.Limiter
	userAgent string
}

const (
	DefaultBaseURL   = "https://pokeapi.co/api/v2"
	defaultUserAgent = "dexter/0.1"
	defaultTimeout   = 10 * time.Second
)

// NewClient builds a Client rooted at baseURL (for example
// https://pokeapi.co/api/v2). The base path is preserved.
func NewClient(baseURL string, opts Options) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	agent := strings.TrimSpace(opts.UserAgent)
	if agent == "" {
		agent = defaultUserAgent
	}
	var limiter *rate.Limiter
	if opts.RequestsPerSecond > 0 {
		burst := opts.Burst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), burst)
	}
	return &Client{
		baseURL:   base,
		http:      &http.Client{Timeout: timeout},
		limiter:   limiter,
		userAgent: agent,
	}, nil
}

// FetchPokemon retrieves one record by numeric id or lowercase name.
func (c *Client) FetchPokemon(ctx context.Context, key string) (*Pokemon, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, fmt.Errorf("record key required")
	}
	// Dot segments survive escaping and would resolve to the API root.
	if strings.Trim(key, ".") == "" {
		return nil, fmt.Errorf("record key %q: %w", key, ErrNotFound)
	}
	var payload Pokemon
	rel := &url.URL{Path: "pokemon/" + key, RawPath: "pokemon/" + url.PathEscape(key)}
	if err := c.do(ctx, rel, &payload); err != nil {
		return nil, err
	}
	if payload.ID == 0 && payload.Name == "" {
		return nil, fmt.Errorf("record %q has no id or name: %w", key, ErrMalformed)
	}
	return &payload, nil
}

// FetchCount returns the total number of records from the listing endpoint.
// A zero or missing count is reported as ErrMalformed.
func (c *Client) FetchCount(ctx context.Context) (int, error) {
	if c == nil {
		return 0, fmt.Errorf("client is nil")
	}
	rel := &url.URL{Path: "pokemon", RawQuery: url.Values{"limit": []string{"1"}}.Encode()}
	var payload ListResponse
	if err := c.do(ctx, rel, &payload); err != nil {
		return 0, err
	}
	if payload.Count <= 0 {
		return 0, fmt.Errorf("listing count %d: %w", payload.Count, ErrMalformed)
	}
	return payload.Count, nil
}

func (c *Client) do(ctx context.Context, rel *url.URL, dest any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limit wait: %w", err)
		}
	}

	reqURL := c.baseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Path: rel.Path, Code: resp.StatusCode}
	}
	if dest == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// parseBaseURL normalizes the configured API root so relative references
// resolve beneath its path.
func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api base %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse api base %q: missing host", raw)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
