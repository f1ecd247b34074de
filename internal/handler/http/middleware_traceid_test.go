// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-cat-api/internal/logger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithTraceID_UsesIncomingHeader(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: bufferLogger(&buf)}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(traceIDHeader, "trace-abc")
	rr := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, req)

	assert.Equal(t, "trace-abc", rr.Header().Get(traceIDHeader))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "trace-abc", entry["trace_id"])
	assert.Equal(t, "inside", entry["message"])
}

func TestWithTraceID_GeneratesUUID(t *testing.T) {
	h := &Handler{logger: logger.Nop()}

	rr := httptest.NewRecorder()
	h.withTraceID(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).
		ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	_, err := uuid.Parse(rr.Header().Get(traceIDHeader))
	assert.NoError(t, err)
}

func TestWithTraceID_RejectsMalformedHeader(t *testing.T) {
	h := &Handler{logger: logger.Nop()}

	for _, incoming := range []string{
		"has spaces in it",
		"line\nbreak",
		strings.Repeat("a", maxTraceIDLength+1),
	} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(traceIDHeader, incoming)
		rr := httptest.NewRecorder()
		h.withTraceID(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).ServeHTTP(rr, req)

		got := rr.Header().Get(traceIDHeader)
		assert.NotEqual(t, incoming, got)
		_, err := uuid.Parse(got)
		assert.NoError(t, err)
	}
}

func TestValidTraceID(t *testing.T) {
	assert.True(t, validTraceID("4bf92f3577b34da6a3ce929d0e0e4736"))
	assert.True(t, validTraceID(strings.Repeat("x", maxTraceIDLength)))
	assert.False(t, validTraceID(""))
	assert.False(t, validTraceID("tab\there"))
	assert.False(t, validTraceID("caf\u00e9"))
}

func TestWithTraceID_DoesNotMutateParentLogger(t *testing.T) {
	var buf bytes.Buffer
	parent := bufferLogger(&buf)
	h := &Handler{logger: parent}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(traceIDHeader, "trace-1")
	h.withTraceID(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).
		ServeHTTP(httptest.NewRecorder(), req)

	parent.Info().Msg("after")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.NotContains(t, entry, "trace_id")
}
