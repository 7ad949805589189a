package hpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Fetcher defines the read-only operations the UI and loader need.
// This interface is implemented by *Client and can be used for testing.
type Fetcher interface {
	ListCharacters(ctx context.Context) ([]Character, error)
	ListSpells(ctx context.Context) ([]Spell, error)
	ListHouses(ctx context.Context) ([]House, error)
	GetCharacter(ctx context.Context, id string) (*Character, error)
}

// Ensure Client implements Fetcher at compile time.
var _ Fetcher = (*Client)(nil)

// Client talks to the Harry Potter reference API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	// DefaultBaseURL is the public API root.
	DefaultBaseURL   = "https://hp-api.onrender.com/api"
	defaultUserAgent = "sortinghat/0.1"
	requestTimeout   = 15 * time.Second
)

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

// WithTimeout sets the per-request timeout of the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http = &http.Client{Timeout: d, Transport: c.http.Transport}
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua = strings.TrimSpace(ua); ua != "" {
			c.userAgent = ua
		}
	}
}

// NewClient builds a Client rooted at baseURL; an empty value uses DefaultBaseURL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	c := &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the API root the client resolves paths against.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// ListCharacters retrieves the full character list.
func (c *Client) ListCharacters(ctx context.Context) ([]Character, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload []Character
	if err := c.get(ctx, "characters", &payload); err != nil {
		return nil, fmt.Errorf("list characters: %w", err)
	}
	return payload, nil
}

// ListSpells retrieves the full spell list.
func (c *Client) ListSpells(ctx context.Context) ([]Spell, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload []Spell
	if err := c.get(ctx, "spells", &payload); err != nil {
		return nil, fmt.Errorf("list spells: %w", err)
	}
	return payload, nil
}

// ListHouses retrieves the house records.
func (c *Client) ListHouses(ctx context.Context) ([]House, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload []House
	if err := c.get(ctx, "houses", &payload); err != nil {
		return nil, fmt.Errorf("list houses: %w", err)
	}
	return payload, nil
}

// GetCharacter retrieves one character. The endpoint answers with an array;
// an empty array yields ErrNotFound.
func (c *Client) GetCharacter(ctx context.Context, id string) (*Character, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("get character: id required")
	}
	var payload []Character
	if err := c.get(ctx, "character/"+url.PathEscape(id), &payload); err != nil {
		return nil, fmt.Errorf("get character %s: %w", id, err)
	}
	if len(payload) == 0 {
		return nil, fmt.Errorf("get character %s: %w", id, ErrNotFound)
	}
	char := payload[0]
	return &char, nil
}

func (c *Client) get(ctx context.Context, path string, dest any) error {
	rel, err := url.Parse(path)
	if err != nil {
		return fmt.Errorf("parse path %q: %w", path, err)
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
		return unavailable("execute request", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &HTTPError{StatusCode: resp.StatusCode, Path: "/" + path}
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return unavailable("decode response", err)
	}
	return nil
}

// parseBaseURL normalizes the API root so relative paths resolve beneath it.
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
