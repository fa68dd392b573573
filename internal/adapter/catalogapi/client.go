package catalogapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/goldencart/storefront/internal/core/domain"
	"github.com/goldencart/storefront/internal/core/port"
)

var _ port.CatalogFetcher = (*Client)(nil)

const (
	DefaultLimit   = 100
	defaultTimeout = 10 * time.Second
)

type (
	product struct {
		ID                 int      `json:"id"`
		Title              string   `json:"title"`
		Description        string   `json:"description"`
		Category           string   `json:"category"`
		Brand              string   `json:"brand"`
		Price              float64  `json:"price"`
		DiscountPercentage float64  `json:"discountPercentage"`
		Rating             float64  `json:"rating"`
		Stock              int      `json:"stock"`
		Thumbnail          string   `json:"thumbnail"`
		Images             []string `json:"images"`
	}

	productsPayload struct {
		Products []product `json:"products"`
	}
)

// Client fetches the product catalog from the upstream products API.
// One call retrieves the whole list; the storefront never retries on
// its own.
type Client struct {
	endpoint string
	limit    int
	httpCl   *http.Client
}

func New(endpoint string, limit int) Client {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return Client{
		endpoint: endpoint,
		limit:    limit,
		httpCl:   &http.Client{Timeout: defaultTimeout},
	}
}

// FetchProducts performs GET <endpoint>?limit=<n> and decodes the
// products array. A non-success status surfaces as an error carrying
// the server's status text, which becomes the catalog error message.
func (c Client) FetchProducts(
	ctx context.Context,
) ([]domain.Product, error) {
	const op = "catalogapi.FetchProducts"

	req, err := c.makeRequest(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	res, err := c.httpCl.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, domain.ErrFetchFailed, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, fmt.Errorf(
			"%s: %w: %s", op, domain.ErrFetchFailed, res.Status,
		)
	}

	var payload productsPayload
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, domain.ErrFetchFailed, err)
	}

	return c.toDomain(payload.Products), nil
}

func (c Client) makeRequest(ctx context.Context) (*http.Request, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, err
	}
	q := u.Query()
	q.Set("limit", strconv.Itoa(c.limit))
	u.RawQuery = q.Encode()

	return http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
}

func (c Client) toDomain(ps []product) []domain.Product {
	domainPs := make([]domain.Product, 0, len(ps))
	for _, p := range ps {
		domainPs = append(domainPs, domain.Product{
			ID:                 p.ID,
			Title:              p.Title,
			Description:        p.Description,
			Category:           p.Category,
			Brand:              p.Brand,
			Price:              p.Price,
			DiscountPercentage: p.DiscountPercentage,
			Rating:             p.Rating,
			Stock:              p.Stock,
			Thumbnail:          p.Thumbnail,
			Images:             p.Images,
		})
	}
	return domainPs
}
