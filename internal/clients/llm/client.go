// Package llm is the client for the room template generation endpoint
package llm

//go:generate mockgen -destination=mock/mock_client.go -package=llmmock github.com/KirkDiggler/rpg-rooms/internal/clients/llm Client

import (
	"context"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/KirkDiggler/rpg-rooms/internal/errors"
)

const generatePath = "/generate-room-template"

// Client generates room template text from a prompt
type Client interface {
	// GenerateRoomTemplate returns the raw generator output for prompt.
	// The output still has to go through the decoder.
	GenerateRoomTemplate(ctx context.Context, prompt string) (string, error)
}

// Config contains configuration options for the LLM client.
type Config struct {
	// BaseURL of the generation API (required)
	BaseURL string
	// HTTPTimeout for API requests (optional, defaults to 60 seconds)
	HTTPTimeout time.Duration
	// CacheTTL for responses keyed by the trimmed prompt (optional, defaults to 1 hour,
	// negative disables caching)
	CacheTTL   time.Duration
	RetryCount int
	Logger     *zap.Logger
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("llm config is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("base_url", cfg.BaseURL, vb)
	errors.ValidateMinInt("retry_count", cfg.RetryCount, 0, vb)
	if err := vb.Build(); err != nil {
		return err
	}

	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 60 * time.Second
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = time.Hour
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return nil
}

type client struct {
	http   *resty.Client
	cache  *cache.Cache
	logger *zap.Logger
}

// New creates an LLM client
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &client{
		http: resty.New().
			SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
			SetTimeout(cfg.HTTPTimeout).
			SetRetryCount(cfg.RetryCount).
			SetRetryWaitTime(time.Second).
			SetRetryMaxWaitTime(10 * time.Second).
			SetHeader("Content-Type", "application/json"),
		logger: cfg.Logger,
	}
	if cfg.CacheTTL > 0 {
		c.cache = cache.New(cfg.CacheTTL, 2*cfg.CacheTTL)
	}
	return c, nil
}

func (c *client) GenerateRoomTemplate(ctx context.Context, prompt string) (string, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", errors.InvalidArgument("prompt is required")
	}

	if c.cache != nil {
		if cached, ok := c.cache.Get(prompt); ok {
			c.logger.Debug("llm cache hit", zap.Int("prompt_length", len(prompt)))
			return cached.(string), nil
		}
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"prompt": prompt}).
		Post(generatePath)
	if err != nil {
		c.logger.Error("llm request failed", zap.Error(err))
		return "", errors.WrapWithCode(err, errors.CodeUnavailable, "failed to generate room template")
	}
	if resp.IsError() {
		c.logger.Error("llm returned error", zap.Int("status_code", resp.StatusCode()))
		return "", errors.Newf(errors.FromHTTPStatus(resp.StatusCode()),
			"room template generation failed with status %d", resp.StatusCode()).
			WithMeta("status_code", resp.StatusCode())
	}

	body := resp.String()
	if c.cache != nil {
		c.cache.SetDefault(prompt, body)
	}
	return body, nil
}
