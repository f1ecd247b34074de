// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-cat-api/internal/config"
	"github.com/MKhiriev/go-cat-api/internal/logger"
	"github.com/MKhiriev/go-cat-api/internal/metrics"
	"github.com/MKhiriev/go-cat-api/internal/utils"
	"github.com/go-resty/resty/v2"
)

// apiKeyHeader carries the upstream credential.
const apiKeyHeader = "x-api-key"

type httpCatAPIAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPCatAPIAdapter constructs an HTTP/REST implementation of
// [CatAPIAdapter]. It normalises and validates cfg.CatAPI.BaseURL and
// configures the underlying HTTP client with the resolved base URL, the
// request timeout and the x-api-key header (when a key is configured).
func NewHTTPCatAPIAdapter(cfg config.Adapter, logger *logger.Logger) (CatAPIAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.CatAPI.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}

	client := utils.NewHTTPClient(baseURL, cfg.RequestTimeout)
	if cfg.CatAPI.APIKey != "" {
		client.SetHeader(apiKeyHeader, cfg.CatAPI.APIKey)
	} else {
		logger.Warn().Str("func", "NewHTTPCatAPIAdapter").Msg("cat api key is empty, upstream may reject requests")
	}

	return &httpCatAPIAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// GetBreeds implements [CatAPIAdapter]: GET /breeds.
func (h *httpCatAPIAdapter) GetBreeds(ctx context.Context) (json.RawMessage, error) {
	return h.get(ctx, "get_breeds", h.client.R().SetContext(ctx), "/breeds")
}

// GetBreedByID implements [CatAPIAdapter]: GET /breeds/{breed_id}.
func (h *httpCatAPIAdapter) GetBreedByID(ctx context.Context, breedID string) (json.RawMessage, error) {
	req := h.client.R().
		SetContext(ctx).
		SetPathParam("breed_id", breedID)
	return h.get(ctx, "get_breed", req, "/breeds/{breed_id}")
}

// SearchBreeds implements [CatAPIAdapter]: GET /breeds/search?q=.
func (h *httpCatAPIAdapter) SearchBreeds(ctx context.Context, query string) (json.RawMessage, error) {
	req := h.client.R().
		SetContext(ctx).
		SetQueryParam("q", query)
	return h.get(ctx, "search_breeds", req, "/breeds/search")
}

// GetImageByID implements [CatAPIAdapter]: GET /images/{image_id}.
func (h *httpCatAPIAdapter) GetImageByID(ctx context.Context, imageID string) (json.RawMessage, error) {
	req := h.client.R().
		SetContext(ctx).
		SetPathParam("image_id", imageID)
	return h.get(ctx, "get_image", req, "/images/{image_id}")
}

// get executes req and returns the raw body of a 2xx response. Every call is
// recorded in the upstream metrics under operation.
func (h *httpCatAPIAdapter) get(ctx context.Context, operation string, req *resty.Request, path string) (json.RawMessage, error) {
	log := logger.FromContext(ctx)
	start := time.Now()

	resp, err := req.Get(path)
	if err != nil {
		metrics.RecordUpstreamRequest(operation, metrics.UpstreamStatusTransportError, time.Since(start))
		log.Err(err).Str("func", "*httpCatAPIAdapter.get").Str("operation", operation).Msg("upstream request failed")
		return nil, fmt.Errorf("%w: %s request: %w", ErrUpstreamFailure, operation, err)
	}

	if err = mapHTTPError(resp); err != nil {
		metrics.RecordUpstreamRequest(operation, metrics.UpstreamStatusHTTPError, time.Since(start))
		log.Err(err).
			Str("func", "*httpCatAPIAdapter.get").
			Str("operation", operation).
			Int("status", resp.StatusCode()).
			Msg("upstream responded with error status")
		return nil, err
	}

	metrics.RecordUpstreamRequest(operation, metrics.UpstreamStatusOK, time.Since(start))

	body := resp.Body()
	if !json.Valid(body) {
		log.Error().Str("func", "*httpCatAPIAdapter.get").Str("operation", operation).Msg("upstream returned invalid json")
		return nil, fmt.Errorf("%w: %s: invalid json body", ErrUpstreamFailure, operation)
	}

	return json.RawMessage(body), nil
}
