// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

// ErrorClassificator maps driver-specific errors to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// ErrorClassification is the result type returned by
// [ErrorClassificator.Classify]. It tells the repository which domain error,
// if any, a failed database operation corresponds to.
type ErrorClassification int

const (
	// Unclassified covers every error without a domain meaning.
	Unclassified ErrorClassification = iota

	// UniqueViolation means a UNIQUE constraint rejected the write.
	UniqueViolation

	// CheckViolation means a CHECK constraint rejected the write.
	CheckViolation

	// ConnectionFailure means the database could not be reached.
	ConnectionFailure
)

// String returns a short label suitable for log fields.
func (c ErrorClassification) String() string {
	switch c {
	case UniqueViolation:
		return "unique_violation"
	case CheckViolation:
		return "check_violation"
	case ConnectionFailure:
		return "connection_failure"
	default:
		return "unclassified"
	}
}
