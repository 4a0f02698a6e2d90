// Package edgar is the client for the Edgar level generator's template API
package edgar

//go:generate mockgen -destination=mock/mock_client.go -package=edgarmock github.com/KirkDiggler/rpg-rooms/internal/clients/edgar Client

import (
	"context"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/KirkDiggler/rpg-rooms/internal/entities"
	"github.com/KirkDiggler/rpg-rooms/internal/errors"
)

const (
	templatesPath          = "/templates"
	processedTemplatesPath = "/templates/processed"
)

// Client defines the Edgar round trip
type Client interface {
	// SendTemplates submits templates for processing
	SendTemplates(ctx context.Context, templates []*Template) (*Response, error)

	// FetchProcessedTemplates returns the templates Edgar has processed
	FetchProcessedTemplates(ctx context.Context) ([]*Template, error)
}

// Size is the wire form of a template footprint
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Template is the wire form of a room template
type Template struct {
	Name        string `json:"name"`
	Size        Size   `json:"size"`
	Description string `json:"description"`
	Prefab      string `json:"prefab,omitempty"`
}

// Response is what both endpoints return
type Response struct {
	Success            bool        `json:"success"`
	ProcessedTemplates []*Template `json:"processedTemplates"`
}

// FromEntity converts a room template to its wire form
func FromEntity(t *entities.RoomTemplate) *Template {
	return &Template{
		Name:        t.Name,
		Size:        Size{Width: t.Size.Width, Height: t.Size.Height},
		Description: t.Description,
		Prefab:      t.AssetRef,
	}
}

// ToEntity converts a wire template into a validated room template
func (t *Template) ToEntity() (*entities.RoomTemplate, error) {
	if t == nil {
		return nil, errors.InvalidArgument("template is required")
	}
	out := &entities.RoomTemplate{
		Name:        strings.TrimSpace(t.Name),
		Size:        entities.Size{Width: t.Size.Width, Height: t.Size.Height},
		AssetRef:    t.Prefab,
		Description: t.Description,
	}
	if err := out.Validate(); err != nil {
		return nil, errors.Wrapf(err, "edgar returned invalid template %q", t.Name)
	}
	return out, nil
}

// Config contains configuration options for the Edgar client.
type Config struct {
	// BaseURL of the Edgar API (required)
	BaseURL string
	// Token is sent as a bearer token when set
	Token string
	// HTTPTimeout for API requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// RetryCount for transport failures (optional, zero disables retries)
	RetryCount int
	Logger     *zap.Logger
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("edgar config is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("base_url", cfg.BaseURL, vb)
	errors.ValidateMinInt("retry_count", cfg.RetryCount, 0, vb)
	if err := vb.Build(); err != nil {
		return err
	}

	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return nil
}

type client struct {
	http   *resty.Client
	logger *zap.Logger
}

// New creates an Edgar client
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.HTTPTimeout).
		SetRetryCount(cfg.RetryCount).
		SetRetryWaitTime(500 * time.Millisecond).
		SetRetryMaxWaitTime(5 * time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	if cfg.Token != "" {
		httpClient.SetAuthToken(cfg.Token)
	}

	return &client{
		http:   httpClient,
		logger: cfg.Logger,
	}, nil
}

func (c *client) SendTemplates(ctx context.Context, templates []*Template) (*Response, error) {
	if len(templates) == 0 {
		return nil, errors.InvalidArgument("at least one template is required")
	}

	c.logger.Info("sending templates to edgar", zap.Int("count", len(templates)))

	var response Response
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]any{"templates": templates}).
		SetResult(&response).
		Post(templatesPath)
	if err := c.checkResponse(resp, err, "send templates"); err != nil {
		return nil, err
	}
	if !response.Success {
		return nil, errors.Internal("edgar rejected the templates")
	}

	return &response, nil
}

func (c *client) FetchProcessedTemplates(ctx context.Context) ([]*Template, error) {
	var response Response
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&response).
		Get(processedTemplatesPath)
	if err := c.checkResponse(resp, err, "fetch processed templates"); err != nil {
		return nil, err
	}
	if !response.Success {
		return nil, errors.Internal("edgar could not return processed templates")
	}

	c.logger.Info("fetched processed templates from edgar", zap.Int("count", len(response.ProcessedTemplates)))
	return response.ProcessedTemplates, nil
}

func (c *client) checkResponse(resp *resty.Response, err error, op string) error {
	if err != nil {
		c.logger.Error("edgar request failed", zap.String("op", op), zap.Error(err))
		return errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to %s", op)
	}
	if resp.IsError() {
		c.logger.Error("edgar returned error",
			zap.String("op", op),
			zap.Int("status_code", resp.StatusCode()),
		)
		return errors.Newf(errors.FromHTTPStatus(resp.StatusCode()), "edgar %s failed with status %d", op, resp.StatusCode()).
			WithMeta("status_code", resp.StatusCode())
	}
	return nil
}
