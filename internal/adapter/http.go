package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/visa-assistant/internal/config"
	"github.com/MKhiriev/visa-assistant/internal/logger"
	"github.com/MKhiriev/visa-assistant/internal/utils"
	"github.com/MKhiriev/visa-assistant/models"
)

type httpCompletionClient struct {
	client *utils.HTTPClient

	endpoint    string
	apiKey      string
	model       string
	maxTokens   int
	temperature float64
	referer     string
	title       string

	logger *logger.Logger
}

// NewCompletionClient constructs an HTTP implementation of [CompletionClient].
// It validates cfg.Endpoint and configures the underlying HTTP client with
// cfg.Timeout, so a slow upstream fails that single call only.
//
// Returns an error if cfg.Endpoint is empty or is not an absolute URL.
func NewCompletionClient(cfg config.AI, logger *logger.Logger) (CompletionClient, error) {
	endpoint, err := normalizeEndpoint(cfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid completion endpoint: %w", err)
	}

	temperature := config.DefaultAITemperature
	if cfg.Temperature != nil {
		temperature = *cfg.Temperature
	}

	return &httpCompletionClient{
		client:      utils.NewHTTPClient(cfg.Timeout),
		endpoint:    endpoint,
		apiKey:      cfg.APIKey,
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: temperature,
		referer:     cfg.Referer,
		title:       cfg.Title,
		logger:      logger,
	}, nil
}

func normalizeEndpoint(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return u.String(), nil
}

// Complete implements [CompletionClient]. It POSTs
// {model, messages, max_tokens, temperature} to the configured endpoint with
// the bearer API key and the attribution headers expected by OpenRouter.
func (c *httpCompletionClient) Complete(ctx context.Context, messages []models.ChatMessage) (models.CompletionResponse, error) {
	body := models.CompletionRequest{
		Model:       c.model,
		Messages:    messages,
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
	}

	start := time.Now()
	req := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetAuthToken(c.apiKey).
		SetBody(body)
	if c.referer != "" {
		req.SetHeader("HTTP-Referer", c.referer)
	}
	if c.title != "" {
		req.SetHeader("X-Title", c.title)
	}

	resp, err := req.Post(c.endpoint)
	if err != nil {
		c.logger.Err(err).Str("func", "*httpCompletionClient.Complete").Dur("elapsed", time.Since(start)).Msg("completion request failed")
		return models.CompletionResponse{}, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}

	c.logger.Debug().
		Str("func", "*httpCompletionClient.Complete").
		Int("status", resp.StatusCode()).
		Dur("elapsed", time.Since(start)).
		Msg("completion api responded")

	if err = mapHTTPError(resp); err != nil {
		return models.CompletionResponse{}, err
	}

	var out models.CompletionResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.CompletionResponse{}, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	return out, nil
}
