// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterMetrics_DoubleRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	RegisterMetrics(reg)

	assert.Panics(t, func() { RegisterMetrics(reg) })
}

func TestRecordAuthOperation(t *testing.T) {
	before := testutil.ToFloat64(AuthOperations.WithLabelValues("register", OutcomeSuccess))

	RecordAuthOperation("register", OutcomeSuccess)
	RecordAuthOperation("register", OutcomeSuccess)

	after := testutil.ToFloat64(AuthOperations.WithLabelValues("register", OutcomeSuccess))
	assert.Equal(t, before+2, after)
}

func TestRecordUpstreamRequest(t *testing.T) {
	before := testutil.ToFloat64(UpstreamRequests.WithLabelValues("get_breeds", UpstreamStatusHTTPError))

	RecordUpstreamRequest("get_breeds", UpstreamStatusHTTPError, 15*time.Millisecond)

	after := testutil.ToFloat64(UpstreamRequests.WithLabelValues("get_breeds", UpstreamStatusHTTPError))
	assert.Equal(t, before+1, after)
}

func TestRecordHTTPRequest(t *testing.T) {
	before := testutil.ToFloat64(HTTPRequests.WithLabelValues("GET", "/cats/breeds", "200"))

	RecordHTTPRequest("GET", "/cats/breeds", http.StatusOK, time.Millisecond)

	after := testutil.ToFloat64(HTTPRequests.WithLabelValues("GET", "/cats/breeds", "200"))
	assert.Equal(t, before+1, after)
}

func TestHandler_ExposesApplicationMetrics(t *testing.T) {
	reg := NewRegistry()
	RecordAuthOperation("login", OutcomeInvalidCredentials)

	srv := httptest.NewServer(Handler(reg))
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `catapi_auth_operations_total{operation="login",outcome="invalid_credentials"}`)
	assert.Contains(t, string(body), "go_goroutines")
}
