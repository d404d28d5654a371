// Package httpdate implements the HTTP-date timestamp used in header
// fields such as Date, Expires and Last-Modified (RFC 9110 Section 5.6.7).
//
// Prior to 1995, there were three different formats commonly used by
// servers to communicate timestamps. Parse accepts all of them, while
// Date.String always produces the preferred IMF-fixdate format, a
// fixed-length and single-zone subset of the date and time specification
// used by the Internet Message Format (RFC 5322).
package httpdate

import (
	"fmt"
	"time"

	"github.com/lestrrat-go/httpdate/internal/epoch"
	"github.com/lestrrat-go/strftime"
)

// imfFixdate renders IMF-fixdate. The zone is a literal, as the
// instant is always converted to UTC before rendering.
var imfFixdate = mustStrftime(`%a, %d %b %Y %H:%M:%S GMT`)

func mustStrftime(pattern string) *strftime.Strftime {
	f, err := strftime.New(pattern)
	if err != nil {
		panic(fmt.Sprintf("httpdate: invalid strftime pattern %q: %s", pattern, err))
	}
	return f
}

// Date is an HTTP timestamp. It is an immutable value: two Dates are
// equal (including under ==) if and only if they denote the same instant,
// regardless of which textual format they were parsed from.
//
// The zero value is the zero time.Time, January 1, year 1, 00:00:00 UTC.
type Date struct {
	// always UTC, without a monotonic clock reading
	t time.Time
}

// Parse parses an HTTP-date. The IMF-fixdate, RFC 850 and asctime formats
// are attempted in that order, and the first one whose grammar matches
// decides the result. If none of them match, the returned error matches
// ErrMalformed.
func Parse(s string, options ...ParseOption) (Date, error) {
	var clock Clock = SystemClock{}
	var strict bool
	for _, opt := range options {
		switch opt.Ident() {
		case identClock{}:
			clock = opt.Value().(Clock)
		case identStrict{}:
			strict = opt.Value().(bool)
		}
	}

	formats := parseOrder
	if strict {
		formats = parseOrder[:1]
	}

	for _, f := range formats {
		t, ok, err := f.parse(s, clock)
		if !ok {
			continue
		}
		if err != nil {
			return Date{}, &ParseError{Value: s, Formats: []Format{f}, Err: err}
		}
		return FromTime(t), nil
	}
	return Date{}, &ParseError{Value: s, Formats: append([]Format(nil), formats...)}
}

// MustParse is like Parse but panics if s cannot be parsed.
func MustParse(s string, options ...ParseOption) Date {
	d, err := Parse(s, options...)
	if err != nil {
		panic(err)
	}
	return d
}

// FromTime creates a Date denoting the same instant as t.
func FromTime(t time.Time) Date {
	return fromTimespec(epoch.FromTime(t))
}

// FromUnix creates a Date from an offset relative to the Unix epoch.
// nsec may be outside the range [0, 999999999]; a negative nsec
// paired with a negative sec (as produced by negating a duration
// measured backwards from the epoch) is normalized accordingly.
func FromUnix(sec, nsec int64) Date {
	return fromTimespec(epoch.New(sec, nsec))
}

func fromTimespec(ts epoch.Timespec) Date {
	return Date{t: ts.Time()}
}

// Now returns the current time as a Date.
func Now() Date {
	return FromClock(SystemClock{})
}

// FromClock returns the current time according to clock as a Date.
func FromClock(clock Clock) Date {
	return FromTime(clock.Now())
}

// Time returns the instant d denotes, in UTC.
func (d Date) Time() time.Time {
	return d.timespec().Time()
}

// Unix returns d as the number of seconds elapsed since the Unix epoch.
func (d Date) Unix() int64 {
	return d.timespec().Sec
}

func (d Date) timespec() epoch.Timespec {
	return epoch.FromTime(d.t)
}

// String formats d as an IMF-fixdate, e.g. "Sun, 06 Nov 1994 08:49:37 GMT".
func (d Date) String() string {
	return imfFixdate.FormatString(d.t.UTC())
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d.t.IsZero()
}

func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

func (d Date) After(other Date) bool {
	return d.t.After(other.t)
}

// Compare returns -1 if d is before other, +1 if d is after other,
// and 0 if they are the same instant.
func (d Date) Compare(other Date) int {
	return d.timespec().Compare(other.timespec())
}
