package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"

	"github.com/ziadkadry99/chunlian/internal/model"
)

// User-facing failures. The underlying cause is logged and dropped.
var (
	ErrCoupletFailed = errors.New("生成失败，请重试")
	ErrFortuneFailed = errors.New("求签失败，请心诚则灵(重试)")
)

// Client calls the generation gateway.
type Client struct {
	client *resty.Client
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout bounds each request. Zero means no limit.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.client.SetTimeout(d)
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.client.SetHeader("User-Agent", ua)
	}
}

// New creates a client for the gateway at baseURL.
func New(baseURL string, opts ...Option) *Client {
	rc := resty.New()
	rc.SetBaseURL(baseURL)
	rc.SetHeader("Accept", "application/json")

	c := &Client{client: rc}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GenerateCouplet asks the gateway for a couplet.
func (c *Client) GenerateCouplet(ctx context.Context, req model.CoupletRequest) (*model.CoupletResult, error) {
	var out model.CoupletResult
	if err := c.post(ctx, "/api/couplet", req, &out); err != nil {
		logrus.WithError(err).WithField("theme", req.Theme).Warn("couplet request failed")
		return nil, ErrCoupletFailed
	}
	return &out, nil
}

// GenerateFortune asks the gateway to draw a fortune card.
func (c *Client) GenerateFortune(ctx context.Context) (*model.FortuneCard, error) {
	var out model.FortuneCard
	if err := c.post(ctx, "/api/fortune", nil, &out); err != nil {
		logrus.WithError(err).Warn("fortune request failed")
		return nil, ErrFortuneFailed
	}
	return &out, nil
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	r := c.client.R().SetContext(ctx)
	if body != nil {
		r.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := r.Post(path)
	if err != nil {
		return fmt.Errorf("POST %s: %w", path, err)
	}
	if resp.IsError() {
		return fmt.Errorf("POST %s: status %d: %s", path, resp.StatusCode(), resp.String())
	}

	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decoding %s response: %w", path, err)
	}
	return nil
}
