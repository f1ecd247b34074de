// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func scrapeMetrics(t *testing.T, h *Handler) string {
	t.Helper()
	rr := serve(h, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	body, err := io.ReadAll(rr.Body)
	require.NoError(t, err)
	return string(body)
}

func TestWithMetrics_LabelsByRoutePattern(t *testing.T) {
	h, m := newTestHandler(t)
	m.image.EXPECT().GetImageByID(gomock.Any(), "abc123").Return(json.RawMessage(`{}`), nil)

	serve(h, httptest.NewRequest(http.MethodGet, "/images/abc123", nil))

	body := scrapeMetrics(t, h)
	assert.Contains(t, body, `route="/images/{image_id}"`)
	assert.NotContains(t, body, `route="/images/abc123"`)
}

func TestWithMetrics_UnmatchedRoute(t *testing.T) {
	h, _ := newTestHandler(t)

	serve(h, httptest.NewRequest(http.MethodGet, "/no/such/path", nil))

	assert.NotContains(t, scrapeMetrics(t, h), `route="/no/such/path"`)
}
