// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user input before it reaches persistence.
//
// Rules are grouped per request model and selected by field name, so one
// validator serves registration, login and profile updates. Failures are
// sentinel errors whose text is safe to show to API clients.
package validators

import "context"

// Validator validates obj. When fields are given, only those rules run, in
// order, and the first failure is returned.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
