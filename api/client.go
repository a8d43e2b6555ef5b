// Package api retrieves card records from the unofficial Star Wars:
// Unlimited card list endpoint and flattens them into the card model.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/matanlurey/swu/cache"
	"github.com/matanlurey/swu/log"
)

// DefaultBaseURL is the public card list endpoint.
const DefaultBaseURL = "https://admin.starwarsunlimited.com/api/card-list"

const (
	defaultTimeout  = 30 * time.Second
	defaultPageSize = 50
)

// Client queries the paginated card list.
type Client struct {
	baseURL  string
	client   *http.Client
	pageSize int
	store    *cache.Store
	limiter  *rate.Limiter
}

// ClientOption configures the API client.
type ClientOption func(*Client)

// WithBaseURL overrides the card list endpoint.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient replaces the HTTP client used to query the endpoint.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) {
		c.client = client
	}
}

// WithPageSize overrides how many records are requested per page.
func WithPageSize(size int) ClientOption {
	return func(c *Client) {
		c.pageSize = size
	}
}

// WithCache reads pages from store when present and writes fetched pages
// back to it.
func WithCache(store *cache.Store) ClientOption {
	return func(c *Client) {
		c.store = store
	}
}

// WithLimiter replaces the rate limiter applied before each network request.
func WithLimiter(limiter *rate.Limiter) ClientOption {
	return func(c *Client) {
		c.limiter = limiter
	}
}

// NewClient creates an API client. By default it queries DefaultBaseURL
// with a 30 second timeout, at most one request every 250ms.
func NewClient(options ...ClientOption) *Client {
	client := &Client{
		baseURL:  DefaultBaseURL,
		client:   &http.Client{Timeout: defaultTimeout},
		pageSize: defaultPageSize,
		limiter:  rate.NewLimiter(rate.Every(250*time.Millisecond), 1),
	}

	for _, option := range options {
		option(client)
	}

	return client
}

// FetchPage retrieves one page of the card list. Cached pages are served
// without touching the network or the rate limiter.
func (c *Client) FetchPage(ctx context.Context, page int) (*CardPage, error) {
	if c.store != nil {
		body, found, err := c.store.Page(page)
		if err != nil {
			return nil, err
		}
		if found {
			log.Debugf("Serving page %d from cache", page)
			return decodePage(body)
		}
	}

	body, err := c.fetchPageBody(ctx, page)
	if err != nil {
		return nil, err
	}

	if c.store != nil {
		if err := c.store.PutPage(page, body); err != nil {
			return nil, err
		}
	}

	return decodePage(body)
}

func (c *Client) fetchPageBody(ctx context.Context, page int) (body []byte, err error) {
	if err = c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	parsedURL, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint %s: %w", c.baseURL, err)
	}
	query := parsedURL.Query()
	query.Set("locale", "en")
	query.Set("pagination[page]", strconv.Itoa(page))
	query.Set("pagination[pageSize]", strconv.Itoa(c.pageSize))
	parsedURL.RawQuery = query.Encode()
	targetURL := parsedURL.String()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, fmt.Errorf("couldn't create request for %s: %w", targetURL, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("couldn't query %s: %w", targetURL, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, StatusError{URL: targetURL, Status: resp.Status}
	}

	if body, err = io.ReadAll(resp.Body); err != nil {
		return nil, fmt.Errorf("couldn't read response from %s: %w", targetURL, err)
	}

	return body, nil
}

func decodePage(body []byte) (*CardPage, error) {
	var page CardPage
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("couldn't decode card list page: %w", err)
	}
	return &page, nil
}

// Cards walks the entire card list in upstream order, calling visit for
// every record. Each page is requested exactly once; the page count comes
// from the first page's pagination block. A visit error stops the walk.
func (c *Client) Cards(ctx context.Context, visit func(CardRecord) error) error {
	page := 1
	pageCount := 1

	for page <= pageCount {
		fetched, err := c.FetchPage(ctx, page)
		if err != nil {
			return err
		}
		if page == 1 {
			pageCount = fetched.Meta.Pagination.PageCount
			log.Infow("Fetching card list",
				"pages", pageCount,
				"total", fetched.Meta.Pagination.Total,
			)
		}
		log.Infof("Fetched page %d/%d (%d records)", page, pageCount, len(fetched.Data))

		for _, record := range fetched.Data {
			if err := visit(record); err != nil {
				return err
			}
		}
		page++
	}

	return nil
}
