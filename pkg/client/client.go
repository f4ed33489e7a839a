// Package client provides a typed HTTP client for the inventory service API.
package client

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// Item mirrors an inventory record as returned by the API.
type Item struct {
	ID        int        `json:"id"`
	Name      string     `json:"name"`
	Stock     int        `json:"stock"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// ItemRequest is the payload for creating or updating an item.
type ItemRequest struct {
	Name  string `json:"name"`
	Stock int    `json:"stock"`
}

type listResponse struct {
	Items []Item `json:"items"`
	Count int    `json:"count"`
}

type itemEnvelope struct {
	Message string `json:"message"`
	Item    Item   `json:"item"`
}

type deleteEnvelope struct {
	Message     string `json:"message"`
	DeletedItem Item   `json:"deleted_item"`
}

// apiError represents the service's error payload.
type apiError struct {
	Error string `json:"error"`
}

// Client is a resty-backed inventory API client.
type Client struct {
	httpClient *resty.Client
}

// New builds a client for the service at baseURL.
func New(baseURL string) *Client {
	restyClient := resty.New()
	restyClient.
		SetBaseURL(strings.TrimSuffix(baseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetTimeout(10 * time.Second)

	return &Client{httpClient: restyClient}
}

// ListItems fetches every item.
func (c *Client) ListItems(ctx context.Context) ([]Item, error) {
	var out listResponse
	var errBody apiError

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(&out).
		SetError(&errBody).
		Get("/items")
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	if resp.IsError() {
		return nil, responseError("list items", resp, errBody)
	}

	return out.Items, nil
}

// GetItem fetches a single item by id.
func (c *Client) GetItem(ctx context.Context, id int) (*Item, error) {
	var out Item
	var errBody apiError

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(&out).
		SetError(&errBody).
		Get(fmt.Sprintf("/items/%d", id))
	if err != nil {
		return nil, fmt.Errorf("get item %d: %w", id, err)
	}
	if resp.IsError() {
		return nil, responseError(fmt.Sprintf("get item %d", id), resp, errBody)
	}

	return &out, nil
}

// AddItem creates a new item and returns it with its assigned id.
func (c *Client) AddItem(ctx context.Context, req ItemRequest) (*Item, error) {
	var out itemEnvelope
	var errBody apiError

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		SetError(&errBody).
		Post("/items")
	if err != nil {
		return nil, fmt.Errorf("add item: %w", err)
	}
	if resp.IsError() {
		return nil, responseError("add item", resp, errBody)
	}

	return &out.Item, nil
}

// UpdateItem replaces name and stock of an existing item.
func (c *Client) UpdateItem(ctx context.Context, id int, req ItemRequest) (*Item, error) {
	var out itemEnvelope
	var errBody apiError

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		SetError(&errBody).
		Put(fmt.Sprintf("/items/%d", id))
	if err != nil {
		return nil, fmt.Errorf("update item %d: %w", id, err)
	}
	if resp.IsError() {
		return nil, responseError(fmt.Sprintf("update item %d", id), resp, errBody)
	}

	return &out.Item, nil
}

// DeleteItem removes an item and returns its final snapshot.
func (c *Client) DeleteItem(ctx context.Context, id int) (*Item, error) {
	var out deleteEnvelope
	var errBody apiError

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(&out).
		SetError(&errBody).
		Delete(fmt.Sprintf("/items/%d", id))
	if err != nil {
		return nil, fmt.Errorf("delete item %d: %w", id, err)
	}
	if resp.IsError() {
		return nil, responseError(fmt.Sprintf("delete item %d", id), resp, errBody)
	}

	return &out.DeletedItem, nil
}

func responseError(op string, resp *resty.Response, errBody apiError) error {
	if errBody.Error != "" {
		return fmt.Errorf("%s: %s (status %d)", op, errBody.Error, resp.StatusCode())
	}
	return fmt.Errorf("%s: unexpected status %d", op, resp.StatusCode())
}
