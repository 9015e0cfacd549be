package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/guonaihong/gout"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/Kajalkumari31/ministore/internal/catalog"
	"github.com/Kajalkumari31/ministore/internal/domain"
)

// Catalog is the storefront's HTTP client for the catalog service.
type Catalog struct {
	apiurl string
}

func NewCatalog(apiurl string) *Catalog {
	return &Catalog{apiurl: apiurl}
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// List fetches the catalog, optionally filtered by a title substring.
func (c *Catalog) List(ctx context.Context, q string) ([]domain.Product, error) {
	var (
		code int
		body []byte
	)
	req := gout.GET(c.apiurl + "/api/products").WithContext(ctx)
	if q != "" {
		req = req.SetQuery(gout.H{"q": q})
	}
	if err := req.Code(&code).BindBody(&body).Do(); err != nil {
		return nil, errors.Wrap(domain.ErrUnavailable, err.Error())
	}
	if code != http.StatusOK {
		return nil, decodeError(code, body)
	}
	var products []domain.Product
	if err := jsoniter.Unmarshal(body, &products); err != nil {
		return nil, errors.Wrap(domain.ErrUnavailable, err.Error())
	}
	return products, nil
}

// Get fetches a single product by id.
func (c *Catalog) Get(ctx context.Context, id int64) (*domain.Product, error) {
	var (
		code int
		body []byte
	)
	url := fmt.Sprintf("%s/api/products/%d", c.apiurl, id)
	if err := gout.GET(url).WithContext(ctx).Code(&code).BindBody(&body).Do(); err != nil {
		return nil, errors.Wrap(domain.ErrUnavailable, err.Error())
	}
	if code != http.StatusOK {
		return nil, decodeError(code, body)
	}
	var p domain.Product
	if err := jsoniter.Unmarshal(body, &p); err != nil {
		return nil, errors.Wrap(domain.ErrUnavailable, err.Error())
	}
	return &p, nil
}

// Create publishes a new product to the catalog.
func (c *Catalog) Create(ctx context.Context, req catalog.CreateRequest) (*domain.Product, error) {
	var (
		code int
		body []byte
	)
	url := c.apiurl + "/api/products"
	if err := gout.POST(url).WithContext(ctx).SetJSON(req).Code(&code).BindBody(&body).Do(); err != nil {
		return nil, errors.Wrap(domain.ErrUnavailable, err.Error())
	}
	if code != http.StatusCreated {
		return nil, decodeError(code, body)
	}
	var p domain.Product
	if err := jsoniter.Unmarshal(body, &p); err != nil {
		return nil, errors.Wrap(domain.ErrUnavailable, err.Error())
	}
	return &p, nil
}

// decodeError maps the service's failure envelope back onto domain errors.
func decodeError(status int, body []byte) error {
	var apierr apiError
	_ = jsoniter.Unmarshal(body, &apierr)
	message := apierr.Message
	if message == "" {
		message = fmt.Sprintf("unexpected status %d", status)
	}
	switch status {
	case http.StatusNotFound:
		return domain.ErrNotFound
	case http.StatusBadRequest:
		return domain.NewValidationError("request", message)
	default:
		return errors.Wrap(domain.ErrUnavailable, message)
	}
}
