// Package client provides a typed HTTP client for the catalog API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"product-catalog/internal/model"
)

// DefaultTimeout bounds every outbound call; a slow catalog must surface as
// an error rather than block the caller indefinitely.
const DefaultTimeout = 10 * time.Second

// Client is an HTTP client for the catalog API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a new catalog client. A non-positive timeout falls back to
// DefaultTimeout.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// NotFoundError indicates the catalog reported that a product does not exist.
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Product %d not found", e.ID)
}

// StatusError indicates a non-2xx response from the catalog other than an
// expected 404. Detail carries the server's error message when decodable.
type StatusError struct {
	StatusCode int
	Detail     string
}

func (e *StatusError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("server returned %d", e.StatusCode)
}

// ListOptions holds the filter and pagination parameters for ListProducts.
type ListOptions struct {
	Category string
	InStock  *bool
	Skip     int
	Limit    int
}

// ListProducts retrieves products with optional filters and pagination.
func (c *Client) ListProducts(ctx context.Context, opts ListOptions) ([]model.Product, error) {
	params := url.Values{}
	if opts.Category != "" {
		params.Set("category", opts.Category)
	}
	if opts.InStock != nil {
		params.Set("in_stock", strconv.FormatBool(*opts.InStock))
	}
	if opts.Skip > 0 {
		params.Set("skip", strconv.Itoa(opts.Skip))
	}
	if opts.Limit > 0 {
		params.Set("limit", strconv.Itoa(opts.Limit))
	}

	var products []model.Product
	if err := c.do(ctx, http.MethodGet, "/products", params, nil, http.StatusOK, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProduct retrieves a single product by ID.
func (c *Client) GetProduct(ctx context.Context, id int64) (*model.Product, error) {
	var product model.Product
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/products/%d", id), nil, nil, http.StatusOK, &product)
	if err != nil {
		return nil, notFoundOr(err, id)
	}
	return &product, nil
}

// CreateProduct creates a new product and returns the stored record.
func (c *Client) CreateProduct(ctx context.Context, input model.ProductCreate) (*model.Product, error) {
	var product model.Product
	if err := c.do(ctx, http.MethodPost, "/products", nil, input, http.StatusCreated, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateProduct applies a sparse patch and returns the updated record.
func (c *Client) UpdateProduct(ctx context.Context, id int64, patch model.ProductUpdate) (*model.Product, error) {
	var product model.Product
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/products/%d", id), nil, patch, http.StatusOK, &product)
	if err != nil {
		return nil, notFoundOr(err, id)
	}
	return &product, nil
}

// DeleteProduct removes a product permanently.
func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/products/%d", id), nil, nil, http.StatusNoContent, nil)
	if err != nil {
		return notFoundOr(err, id)
	}
	return nil
}

// Categories retrieves the distinct category values.
func (c *Client) Categories(ctx context.Context) (*model.CategoryList, error) {
	var categories model.CategoryList
	if err := c.do(ctx, http.MethodGet, "/categories", nil, nil, http.StatusOK, &categories); err != nil {
		return nil, err
	}
	return &categories, nil
}

// Health probes the catalog's health endpoint.
func (c *Client) Health(ctx context.Context) (*model.HealthStatus, error) {
	var status model.HealthStatus
	if err := c.do(ctx, http.MethodGet, "/health", nil, nil, http.StatusOK, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// do executes one request against the catalog. A response status other than
// want is returned as a StatusError carrying the decoded error detail.
func (c *Client) do(ctx context.Context, method, path string, params url.Values, body any, want int, out any) error {
	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != want {
		return &StatusError{
			StatusCode: resp.StatusCode,
			Detail:     errorDetail(respBody),
		}
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("unmarshal response: %w", err)
		}
	}

	return nil
}

// errorDetail extracts the message from a catalog error body.
func errorDetail(body []byte) string {
	var errResp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return errResp.Error
	}
	return string(body)
}

// notFoundOr converts a 404 StatusError into a typed NotFoundError for the
// given product ID, and passes every other error through unchanged.
func notFoundOr(err error, id int64) error {
	if statusErr, ok := err.(*StatusError); ok && statusErr.StatusCode == http.StatusNotFound {
		return &NotFoundError{ID: id}
	}
	return err
}
