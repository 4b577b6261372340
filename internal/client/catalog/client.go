package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/logging"
	"github.com/google/uuid"
	"github.com/tidwall/gjson"
)

// DefaultBaseURL is the public catalog used when nothing is configured.
const DefaultBaseURL = "https://dummyjson.com"

// maxErrorBody caps how much of a failed response ends up in StatusError.
const maxErrorBody = 512

// Client talks to the catalog API. The zero value is not usable; call NewClient.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	log logging.Logger
}

// NewClient creates a client with the given per-request timeout.
// A nil logger discards output.
func NewClient(baseURL string, timeout time.Duration, log logging.Logger) *Client {
	if log == nil {
		log = logging.Discard()
	}
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// get performs a GET and returns the body of a 2xx response.
func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set(common.RequestIDHeaderName, requestID)
	req.Header.Set("Accept", "application/json")

	log := c.log.With("request_id", requestID, "path", path)
	started := time.Now()

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		log.Warn(ctx, "catalog request failed", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	log.Debug(ctx, "catalog response", "status", resp.StatusCode, "elapsed", time.Since(started))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if len(body) > maxErrorBody {
			body = body[:maxErrorBody]
		}
		return nil, &StatusError{StatusCode: resp.StatusCode, Status: resp.Status, Body: strings.TrimSpace(string(body))}
	}

	return body, nil
}

// Categories lists all product categories. Any failure is returned.
func (c *Client) Categories(ctx context.Context) ([]models.Category, error) {
	body, err := c.get(ctx, "/products/categories")
	if err != nil {
		return nil, err
	}
	return parseCategories(body)
}

// ProductsByCategory lists the products of one category. The returned
// slice is never nil: on failure it is empty and the error says why, so
// callers only interested in the list can ignore the error.
func (c *Client) ProductsByCategory(ctx context.Context, category string) ([]models.Product, error) {
	body, err := c.get(ctx, "/products/category/"+url.PathEscape(category))
	if err != nil {
		c.log.Error(ctx, "error fetching products", "category", category, "error", err)
		return []models.Product{}, err
	}

	products, err := parseProducts(body)
	if err != nil {
		c.log.Error(ctx, "error fetching products", "category", category, "error", err)
		return []models.Product{}, err
	}
	return products, nil
}

// Ping checks that the catalog answers.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.get(ctx, "/test")
	return err
}

func parseCategories(body []byte) ([]models.Category, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrUnexpectedPayload)
	}
	res := gjson.ParseBytes(body)
	if !res.IsArray() {
		return nil, fmt.Errorf("%w: categories is not an array", ErrUnexpectedPayload)
	}

	out := make([]models.Category, 0, len(res.Array()))
	res.ForEach(func(_, v gjson.Result) bool {
		switch {
		case v.Type == gjson.String:
			out = append(out, models.Category{Slug: v.Str, Name: v.Str})
		case v.IsObject():
			out = append(out, models.Category{
				Slug: v.Get("slug").String(),
				Name: v.Get("name").String(),
				URL:  v.Get("url").String(),
			})
		}
		return true
	})
	return out, nil
}

func parseProducts(body []byte) ([]models.Product, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrUnexpectedPayload)
	}
	list := gjson.GetBytes(body, "products")
	if !list.IsArray() {
		return nil, fmt.Errorf("%w: missing products array", ErrUnexpectedPayload)
	}

	out := make([]models.Product, 0, len(list.Array()))
	list.ForEach(func(_, v gjson.Result) bool {
		out = append(out, models.Product{
			ID:          v.Get("id").Int(),
			Title:       v.Get("title").String(),
			Description: v.Get("description").String(),
			Thumbnail:   v.Get("thumbnail").String(),
			Price:       v.Get("price").Float(),
			Rating:      v.Get("rating").Float(),
			Stock:       v.Get("stock").Int(),
		})
		return true
	})
	return out, nil
}
