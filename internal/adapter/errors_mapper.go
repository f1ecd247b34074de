// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// maxErrorBodyLen caps how much of an upstream error body is kept in errors.
const maxErrorBodyLen = 256

// mapHTTPError converts a non-2xx response into an error wrapping
// [ErrUpstreamFailure]. 2xx responses yield nil.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if len(body) > maxErrorBodyLen {
		body = body[:maxErrorBodyLen]
	}
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusNotFound:
		return fmt.Errorf("%w: %w: %s", ErrUpstreamFailure, ErrUpstreamNotFound, body)
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %w: %s", ErrUpstreamFailure, ErrUpstreamUnauthorized, body)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrUpstreamFailure, resp.StatusCode(), body)
	}
}
