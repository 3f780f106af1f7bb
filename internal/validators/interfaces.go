// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks decoded request bodies before they reach the
// service layer.
//
// The catalog validates presence only: every key a create request needs must
// be in the body, whatever its value. Type errors are caught earlier by the
// JSON decoder and integrity rules (unique email, foreign keys) later by the
// store.
package validators

import "context"

// Validator validates a request value, optionally restricted to the named
// fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
