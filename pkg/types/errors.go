// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "github.com/cockroachdb/errors"

// Error kinds. Concrete failures are marked with one of these via
// errors.Mark, so the message stays the underlying failure description.
// Marks are only visible to github.com/cockroachdb/errors.Is; the standard
// library's errors.Is does not see them.
var (
	// ErrValidation is returned when required user input is missing or invalid.
	ErrValidation = errors.New("validation error")

	// ErrUpstreamUnavailable is returned on a transport failure or a non-2xx
	// status from E-utilities.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")

	// ErrMalformedResponse is returned when a 2xx JSON body does not match the
	// expected schema.
	ErrMalformedResponse = errors.New("malformed upstream response")

	// ErrMalformedXML is returned when an efetch body is not well-formed XML.
	ErrMalformedXML = errors.New("malformed upstream XML")
)

// Validationf returns an ErrValidation-marked error with the given message.
func Validationf(format string, args ...interface{}) error {
	return errors.Mark(errors.Newf(format, args...), ErrValidation)
}

// Malformedf returns an ErrMalformedResponse-marked error with the given message.
func Malformedf(format string, args ...interface{}) error {
	return errors.Mark(errors.Newf(format, args...), ErrMalformedResponse)
}
