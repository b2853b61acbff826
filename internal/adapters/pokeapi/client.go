package pokeapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"pokeio/internal/ports"
)

// DefaultTimeout bounds a single request
const DefaultTimeout = 15 * time.Second

// maxBodyBytes caps a response body; the largest records are a few hundred KB
const maxBodyBytes = 8 << 20

const userAgent = "pokeio/1.0 (+https://pokeapi.co)"

// Client implements ports.Transport over HTTP GET
type Client struct {
	http   *http.Client
	logger *zap.Logger
}

// Ensure Client implements Transport
var _ ports.Transport = (*Client)(nil)

// NewClient creates a client with the given per-request timeout
func NewClient(timeout time.Duration, logger *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		http:   &http.Client{Timeout: timeout},
		logger: logger,
	}
}

// Get performs one request. Non-2xx statuses are returned as a Response,
// not an error; only connection level failures are errors.
func (c *Client) Get(ctx context.Context, url string) (ports.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return ports.Response{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return ports.Response{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return ports.Response{}, fmt.Errorf("failed to read body: %w", err)
	}

	c.logger.Debug("GET",
		zap.String("url", url),
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(body)),
		zap.Duration("took", time.Since(start)),
	)
	return ports.Response{Status: resp.StatusCode, Body: body}, nil
}
