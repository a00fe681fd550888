package adapter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-snake-bench/internal/config"
	"github.com/MKhiriev/go-snake-bench/internal/utils"
	"github.com/MKhiriev/go-snake-bench/models"
)

type httpBotClient struct {
	client *utils.HTTPClient
	limit  int
}

// NewHTTPBotClient constructs a [BotClient] whose transport is bounded by
// cfg.BotTimeout and whose response bodies are capped at
// cfg.MaxResponseBytes (zero disables the cap).
func NewHTTPBotClient(cfg config.Adapter) BotClient {
	client := utils.NewHTTPClient(cfg.BotTimeout)
	client.SetResponseBodyLimit(cfg.MaxResponseBytes)

	return &httpBotClient{client: client, limit: cfg.MaxResponseBytes}
}

// Move implements [BotClient]. The elapsed time is measured around the whole
// exchange, including reading the body.
func (b *httpBotClient) Move(ctx context.Context, url string, payload models.BotMoveRequest) (models.BotResponse, error) {
	started := time.Now()

	resp, err := b.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(url)

	elapsed := time.Since(started)
	if errors.Is(err, resty.ErrResponseBodyTooLarge) {
		return models.BotResponse{Elapsed: elapsed}, fmt.Errorf("%w: limit is %d bytes", ErrResponseTooLarge, b.limit)
	}
	if err != nil {
		return models.BotResponse{Elapsed: elapsed}, err
	}

	return models.BotResponse{
		StatusCode: resp.StatusCode(),
		Body:       string(resp.Body()),
		Elapsed:    elapsed,
	}, nil
}
