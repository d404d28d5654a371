package httpdate

import (
	"fmt"
	"net/http"
)

// Header fields whose values are defined as an HTTP-date.
const (
	DateHeader              = "Date"
	ExpiresHeader           = "Expires"
	LastModifiedHeader      = "Last-Modified"
	IfModifiedSinceHeader   = "If-Modified-Since"
	IfUnmodifiedSinceHeader = "If-Unmodified-Since"
	IfRangeHeader           = "If-Range"
	RetryAfterHeader        = "Retry-After"
)

// FromHeader parses the first value of the header field name in h.
// If the field is absent, an error matching ErrHeaderNotFound is returned.
func FromHeader(h http.Header, name string, options ...ParseOption) (Date, error) {
	v := h.Get(name)
	if v == "" {
		return Date{}, fmt.Errorf(`httpdate: %q: %w`, name, ErrHeaderNotFound)
	}

	d, err := Parse(v, options...)
	if err != nil {
		return Date{}, fmt.Errorf(`httpdate: failed to parse header %q: %w`, name, err)
	}
	return d, nil
}

// SetHeader sets the header field name in h to d, formatted as an
// IMF-fixdate. Any existing values are replaced.
func (d Date) SetHeader(h http.Header, name string) {
	h.Set(name, d.String())
}
