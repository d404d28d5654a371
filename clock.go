package httpdate

import "time"

// Clock tells the package what "now" is. FromClock uses it to generate a
// Date, and Parse uses it to decide which century the two-digit year of an
// RFC 850 date falls into.
type Clock interface {
	Now() time.Time
}

// SystemClock reports the system time. It is the default for Parse.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

type fixedClock time.Time

func (c fixedClock) Now() time.Time {
	return time.Time(c)
}

// FixedClock returns a Clock pinned to t. Pinning the reference time makes
// the year windowing of RFC 850 dates, as well as generated Date headers,
// reproducible.
func FixedClock(t time.Time) Clock {
	return fixedClock(t)
}
