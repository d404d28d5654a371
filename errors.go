package httpdate

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformed is the error kind reported for any value that is not a
// valid HTTP-date. Errors returned by Parse match it via errors.Is.
var ErrMalformed = errors.New(`httpdate: malformed header value`)

// ErrHeaderNotFound is returned by FromHeader when the requested header
// field is absent.
var ErrHeaderNotFound = errors.New(`httpdate: header not found`)

// ParseError describes a failure to parse an HTTP-date. It always
// matches ErrMalformed.
type ParseError struct {
	// Value is the input that failed to parse.
	Value string
	// Formats lists the formats that were attempted, in order.
	Formats []Format
	// Err is the reason a syntactically matching value was rejected,
	// or nil if no format matched at all.
	Err error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf(`httpdate: malformed header value %q: %s`, e.Value, e.Err)
	}

	names := make([]string, len(e.Formats))
	for i, f := range e.Formats {
		names[i] = f.String()
	}
	return fmt.Sprintf(`httpdate: malformed header value %q (tried %s)`, e.Value, strings.Join(names, ", "))
}

func (e *ParseError) Is(target error) bool {
	return target == ErrMalformed
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
