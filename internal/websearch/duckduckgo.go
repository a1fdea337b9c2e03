package websearch

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"bindery/internal/services"
)

const (
	defaultBaseURL     = "https://duckduckgo.com/html/"
	defaultHTTPTimeout = 15 * time.Second
	defaultMaxResults  = 3

	resultSelector = "a.result__a"
	userAgent      = "Mozilla/5.0 (X11; Linux x86_64) bindery/1.0"
)

// Config captures the runtime settings for the search client.
type Config struct {
	BaseURL        string
	TimeoutSeconds int
	MaxResults     int
}

// Client fetches search results from a DuckDuckGo-compatible HTML endpoint.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// Option customizes the client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// NewClient constructs a search client using the supplied configuration.
func NewClient(cfg Config, opts ...Option) *Client {
	timeout := defaultHTTPTimeout
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	client := &Client{
		cfg: Config{
			BaseURL:        strings.TrimSpace(cfg.BaseURL),
			TimeoutSeconds: cfg.TimeoutSeconds,
			MaxResults:     cfg.MaxResults,
		},
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(client)
	}
	if client.cfg.BaseURL == "" {
		client.cfg.BaseURL = defaultBaseURL
	}
	if client.cfg.MaxResults <= 0 {
		client.cfg.MaxResults = defaultMaxResults
	}
	return client
}

// SearchBookGenre queries for `book genre "<title>"` and returns up to
// MaxResults result titles. An empty slice with a nil error means the page
// loaded but contained no recognizable results.
func (c *Client) SearchBookGenre(ctx context.Context, title string) ([]string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, services.Wrap(services.ErrValidation, "websearch", "query", "title required", nil)
	}

	query := fmt.Sprintf("book genre %q", title)
	endpoint := c.cfg.BaseURL + "?q=" + url.QueryEscape(query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("websearch: new request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, services.Wrap(services.ErrTransient, "websearch", "fetch", "http error", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, services.Wrap(services.ErrTransient, "websearch", "fetch", fmt.Sprintf("http %d", resp.StatusCode), nil)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, services.Wrap(services.ErrTransient, "websearch", "parse", "invalid html", err)
	}

	snippets := make([]string, 0, c.cfg.MaxResults)
	doc.Find(resultSelector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		text := strings.TrimSpace(sel.Text())
		if text == "" {
			return true
		}
		snippets = append(snippets, text)
		return len(snippets) < c.cfg.MaxResults
	})
	return snippets, nil
}
