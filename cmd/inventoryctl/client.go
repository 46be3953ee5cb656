package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/ghuser/inventory/pkg/errhttp"
	"github.com/ghuser/inventory/pkg/httpx"
	"github.com/ghuser/inventory/services/inventory/application/handlers"
)

// APIError is a non-2xx response from the inventory API.
type APIError struct {
	Status  int
	Message string
	Kind    string
}

func (e *APIError) Error() string {
	if e.Kind != "" {
		return fmt.Sprintf("%s (%s, HTTP %d)", e.Message, e.Kind, e.Status)
	}
	return fmt.Sprintf("%s (HTTP %d)", e.Message, e.Status)
}

// Client calls the inventory HTTP API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient returns a Client for the API rooted at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout:   10 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// ListParts returns the parts matching query.
func (c *Client) ListParts(ctx context.Context, query string) ([]handlers.PartResponse, error) {
	var list httpx.ListResponse[handlers.PartResponse]
	if err := c.do(ctx, http.MethodGet, "/api/parts", query, &list); err != nil {
		return nil, err
	}
	return list.Data, nil
}

// DeletePart removes the part under id.
func (c *Client) DeletePart(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, "/api/parts/"+strconv.Itoa(id), "", nil)
}

// ListProducts returns the products matching query.
func (c *Client) ListProducts(ctx context.Context, query string) ([]handlers.ProductResponse, error) {
	var list httpx.ListResponse[handlers.ProductResponse]
	if err := c.do(ctx, http.MethodGet, "/api/products", query, &list); err != nil {
		return nil, err
	}
	return list.Data, nil
}

// DeleteProduct removes the product under id.
func (c *Client) DeleteProduct(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, "/api/products/"+strconv.Itoa(id), "", nil)
}

func (c *Client) do(ctx context.Context, method, path, query string, out any) error {
	u := c.baseURL + path
	if query != "" {
		u += "?" + url.Values{"q": {query}}.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode >= http.StatusBadRequest {
		var body errhttp.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Error == "" {
			body.Error = http.StatusText(resp.StatusCode)
		}
		return &APIError{Status: resp.StatusCode, Message: body.Error, Kind: body.Kind}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}
