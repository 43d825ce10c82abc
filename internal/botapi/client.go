package botapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sniperdeck/sniperdeck/internal/model"
)

// Client implements model.ControllerAPI over the controller's REST contract.
// Any non-2xx response or transport failure is reported as a plain error;
// callers do not branch on status codes.
type Client struct {
	baseURL string
	httpc   *http.Client
}

var _ model.ControllerAPI = (*Client)(nil)

// New creates a client for the controller at baseURL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// BaseURL returns the configured controller address.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Status fetches the controller's current status snapshot.
func (c *Client) Status(ctx context.Context) (model.StatusSnapshot, error) {
	var snap model.StatusSnapshot
	if err := c.getJSON(ctx, "/status", &snap); err != nil {
		return model.StatusSnapshot{}, err
	}
	return snap, nil
}

// Tokens fetches the controller's current token list, in server order.
func (c *Client) Tokens(ctx context.Context) ([]model.Token, error) {
	var tokens []model.Token
	if err := c.getJSON(ctx, "/tokens", &tokens); err != nil {
		return nil, err
	}
	return tokens, nil
}

// Trades fetches the controller's recent trades.
func (c *Client) Trades(ctx context.Context) ([]model.Trade, error) {
	var trades []model.Trade
	if err := c.getJSON(ctx, "/trades", &trades); err != nil {
		return nil, err
	}
	return trades, nil
}

// Start asks the controller to begin running.
func (c *Client) Start(ctx context.Context) error {
	return c.post(ctx, "/start")
}

// Stop asks the controller to stop running.
func (c *Client) Stop(ctx context.Context) error {
	return c.post(ctx, "/stop")
}

// SetNetwork switches the controller to the named network.
func (c *Client) SetNetwork(ctx context.Context, network string) error {
	if !model.ValidNetwork(network) {
		return fmt.Errorf("botapi: invalid network %q", network)
	}
	return c.post(ctx, "/network/"+network)
}

func (c *Client) getJSON(ctx context.Context, path string, dest interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("botapi: build request: %w", err)
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("botapi: GET %s: %w", path, err)
	}
	defer drainAndClose(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("botapi: GET %s: unexpected status %s", path, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("botapi: GET %s: decode: %w", path, err)
	}
	return nil
}

func (c *Client) post(ctx context.Context, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("botapi: build request: %w", err)
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("botapi: POST %s: %w", path, err)
	}
	defer drainAndClose(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("botapi: POST %s: unexpected status %s", path, resp.Status)
	}
	return nil
}

// drainAndClose consumes the remaining body so the connection can be reused.
func drainAndClose(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, io.LimitReader(body, 1<<16))
	_ = body.Close()
}
