package api

import (
	"ItemKeeper/internal/cli/model"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const itemsPath = "/api/items"

// Client talks to the items REST API. Every call is a single round trip:
// no caching, no retries.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for serverURL (scheme://host:port).
func NewClient(serverURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(serverURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// createRequest carries an item without its identifier.
type createRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// LoadItems fetches all items in server order.
func (c *Client) LoadItems(ctx context.Context) ([]model.Item, error) {
	_, body, err := DoJSON(ctx, c.http, http.MethodGet, c.baseURL+itemsPath, nil)
	if err != nil {
		return nil, err
	}
	var items []model.Item
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("decode items: %w", err)
	}
	return items, nil
}

// SaveItem creates items without an id and updates the rest.
func (c *Client) SaveItem(ctx context.Context, it model.Item) (model.Item, error) {
	if it.IsNew() {
		return c.CreateItem(ctx, it)
	}
	return c.UpdateItem(ctx, it)
}

// CreateItem posts the item and returns it with the server-assigned id.
func (c *Client) CreateItem(ctx context.Context, it model.Item) (model.Item, error) {
	payload := createRequest{Name: it.Name, Description: it.Description}
	_, body, err := DoJSON(ctx, c.http, http.MethodPost, c.baseURL+itemsPath, payload)
	if err != nil {
		return model.Item{}, err
	}
	return decodeItem(body)
}

// UpdateItem puts the item at its resource location.
func (c *Client) UpdateItem(ctx context.Context, it model.Item) (model.Item, error) {
	_, body, err := DoJSON(ctx, c.http, http.MethodPut, c.itemURL(it.ID), it)
	if err != nil {
		return model.Item{}, err
	}
	return decodeItem(body)
}

// DeleteItem deletes the item at its resource location.
func (c *Client) DeleteItem(ctx context.Context, it model.Item) error {
	_, _, err := DoJSON(ctx, c.http, http.MethodDelete, c.itemURL(it.ID), nil)
	return err
}

func (c *Client) itemURL(id int64) string {
	return c.baseURL + itemsPath + "/" + strconv.FormatInt(id, 10)
}

func decodeItem(body []byte) (model.Item, error) {
	var it model.Item
	if err := json.Unmarshal(body, &it); err != nil {
		return model.Item{}, fmt.Errorf("decode item: %w", err)
	}
	return it, nil
}
