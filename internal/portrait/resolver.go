package portrait

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"
)

// Resolution failures
var (
	ErrImageNotFound    = errors.New("image not found")
	ErrImageFetchFailed = errors.New("failed to load image")
	// ErrAborted marks a lookup cancelled by its view being torn down.
	ErrAborted = errors.New("portrait lookup aborted")
)

const (
	// DefaultWikiBase is the community wiki page prefix.
	DefaultWikiBase = "https://harrypotter.fandom.com/wiki/"
	// DefaultProxy relays the wiki page; it expects the target in ?url=.
	DefaultProxy = "https://api.allorigins.win/raw"

	primaryHost    = "ik.imagekit.io/hpapi"
	wikiReferer    = "https://harrypotter.fandom.com/"
	browserAgent   = "Mozilla/5.0"
	fetchTimeout   = 20 * time.Second
	maxPageBytes   = 4 << 20
	revisionMarker = "/revision"
)

var (
	ogImagePattern = regexp.MustCompile(`(?i)<meta\s+property=["']og:image["']\s+content=["']([^"']+)["']`)
	scalePattern   = regexp.MustCompile(`/scale-to-width-down/\d+`)
)

// IsPrimary reports whether image is served by the API's own image host.
func IsPrimary(image string) bool {
	return strings.Contains(image, primaryHost)
}

// LookupURL builds the proxied wiki URL for a character name.
func LookupURL(proxyBase, wikiBase, name string) string {
	if strings.TrimSpace(proxyBase) == "" {
		proxyBase = DefaultProxy
	}
	if strings.TrimSpace(wikiBase) == "" {
		wikiBase = DefaultWikiBase
	}
	page := url.PathEscape(strings.ReplaceAll(strings.TrimSpace(name), " ", "_"))
	return proxyBase + "?url=" + wikiBase + page
}

// ExtractImage returns the first og:image content of an HTML page.
func ExtractImage(html string) (string, error) {
	match := ogImagePattern.FindStringSubmatch(html)
	if len(match) < 2 || strings.TrimSpace(match[1]) == "" {
		return "", ErrImageNotFound
	}
	return match[1], nil
}

// Normalize strips the revision suffix and thumbnail scaling from a wiki
// image URL, yielding the full-resolution original.
func Normalize(raw string) string {
	if idx := strings.Index(raw, revisionMarker); idx >= 0 {
		raw = raw[:idx]
	}
	return scalePattern.ReplaceAllString(raw, "")
}

// Result is a resolved portrait plus the headers the image host requires.
type Result struct {
	URL     string
	Headers map[string]string
}

// Options configures a Resolver.
type Options struct {
	ProxyBase  string
	WikiBase   string
	HTTPClient *http.Client
}

// Resolver looks up portraits on the community wiki.
type Resolver struct {
	proxyBase string
	wikiBase  string
	http      *http.Client
}

// NewResolver builds a Resolver, filling defaults for empty options.
func NewResolver(opts Options) *Resolver {
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: fetchTimeout}
	}
	return &Resolver{
		proxyBase: opts.ProxyBase,
		wikiBase:  opts.WikiBase,
		http:      client,
	}
}

// Resolve fetches the wiki page for name and extracts its preview image.
// Cancellation of ctx yields ErrAborted; every other failure is terminal for
// this attempt.
func (r *Resolver) Resolve(ctx context.Context, name string) (Result, error) {
	target := LookupURL(r.proxyBase, r.wikiBase, name)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return Result{}, fmt.Errorf("%w: create request: %w", ErrImageFetchFailed, err)
	}

	resp, err := r.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return Result{}, fmt.Errorf("%w: %w", ErrAborted, ctx.Err())
		}
		log.Printf("[portrait] fetch %s failed: %v", name, err)
		return Result{}, fmt.Errorf("%w: %w", ErrImageFetchFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("[portrait] fetch %s returned status %d", name, resp.StatusCode)
		return Result{}, fmt.Errorf("%w: status %d", ErrImageFetchFailed, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPageBytes))
	if err != nil {
		if ctx.Err() != nil {
			return Result{}, fmt.Errorf("%w: %w", ErrAborted, ctx.Err())
		}
		return Result{}, fmt.Errorf("%w: read body: %w", ErrImageFetchFailed, err)
	}

	raw, err := ExtractImage(string(body))
	if err != nil {
		log.Printf("[portrait] no og:image for %s", name)
		return Result{}, err
	}
	return Result{
		URL: Normalize(raw),
		Headers: map[string]string{
			"Referer":    wikiReferer,
			"User-Agent": browserAgent,
		},
	}, nil
}

// Message returns the short inline text for a failed lookup.
func Message(err error) string {
	switch {
	case err == nil, errors.Is(err, ErrAborted):
		return ""
	case errors.Is(err, ErrImageNotFound):
		return ErrImageNotFound.Error()
	default:
		return ErrImageFetchFailed.Error()
	}
}
