// Package hexbot fetches random colours from the Noops hexbot endpoint.
package hexbot

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"hexbot-palette/internal/colour"
	"hexbot-palette/internal/metrics"
)

const (
	DefaultURL     = "https://api.noopschallenge.com/hexbot"
	DefaultTimeout = 10 * time.Second
)

// ErrNoColour is returned when the endpoint answers without any colour.
var ErrNoColour = errors.New("hexbot: response carried no colour")

type Client struct {
	BaseURL string
	HTTP    *http.Client
}

type response struct {
	Colors []struct {
		Value string `json:"value"`
	} `json:"colors"`
}

func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: timeout},
	}
}

var defaultHTTP = &http.Client{Timeout: DefaultTimeout}

func (c *Client) httpClient() *http.Client {
	if c.HTTP == nil {
		return defaultHTTP
	}
	return c.HTTP
}

// FetchRandomColour asks the endpoint for one colour and returns the first
// entry of the payload.
func (c *Client) FetchRandomColour(ctx context.Context) (col colour.Colour, err error) {
	start := time.Now()
	defer func() {
		metrics.MetricFetchDuration.Observe(time.Since(start).Seconds())
		metrics.MetricFetchTotal.WithLabelValues(metrics.Result(err)).Inc()
	}()

	base := strings.TrimSpace(c.BaseURL)
	if base == "" {
		base = DefaultURL
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base, nil)
	if err != nil {
		return colour.Colour{}, fmt.Errorf("hexbot: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return colour.Colour{}, fmt.Errorf("hexbot: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return colour.Colour{}, fmt.Errorf("hexbot: status=%s", resp.Status)
	}

	var body response
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return colour.Colour{}, fmt.Errorf("hexbot: decode: %w", err)
	}
	if len(body.Colors) == 0 {
		return colour.Colour{}, ErrNoColour
	}
	col, err = colour.Parse(body.Colors[0].Value)
	if err != nil {
		return colour.Colour{}, fmt.Errorf("hexbot: %w", err)
	}
	return col, nil
}
