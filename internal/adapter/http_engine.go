package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-snake-bench/internal/config"
	"github.com/MKhiriev/go-snake-bench/internal/utils"
	"github.com/MKhiriev/go-snake-bench/models"
)

type httpEngineClient struct {
	client *utils.HTTPClient
}

// NewHTTPEngineClient constructs an [EngineClient] bounded by
// cfg.EngineTimeout and cfg.MaxResponseBytes. The target URL is passed per
// call because it is a secret resolved at call time.
func NewHTTPEngineClient(cfg config.Adapter) EngineClient {
	client := utils.NewHTTPClient(cfg.EngineTimeout)
	client.SetResponseBodyLimit(cfg.MaxResponseBytes)

	return &httpEngineClient{client: client}
}

// Analyse implements [EngineClient].
func (e *httpEngineClient) Analyse(ctx context.Context, url string, req models.EngineAnalyseRequest) (json.RawMessage, error) {
	resp, err := e.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(url)
	if errors.Is(err, resty.ErrResponseBodyTooLarge) {
		return nil, fmt.Errorf("%w: %w", ErrEngineUnavailable, ErrResponseTooLarge)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEngineUnavailable, err)
	}
	if err = mapUpstreamStatus(resp); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEngineUnavailable, err)
	}

	body := resp.Body()
	if !json.Valid(body) {
		return nil, ErrInvalidEngineResponse
	}

	return json.RawMessage(body), nil
}
