// Package epoch converts between time.Time and a signed offset from the
// Unix epoch (00:00:00 UTC, 1 January 1970).
package epoch

import "time"

const nanosPerSecond = int64(time.Second)

// Timespec is a signed offset from the Unix epoch. Sec carries the sign,
// and Nsec is always in the range [0, 1e9). An instant half a second
// before the epoch is therefore {Sec: -1, Nsec: 500000000}.
type Timespec struct {
	Sec  int64
	Nsec int32
}

// New creates a normalized Timespec from an arbitrary (sec, nsec) pair.
// nsec may be negative or larger than a second, which is the case when the
// pair was produced by negating both halves of a duration measured
// backwards from the epoch.
func New(sec, nsec int64) Timespec {
	sec += nsec / nanosPerSecond
	nsec %= nanosPerSecond
	if nsec < 0 {
		nsec += nanosPerSecond
		sec--
	}
	return Timespec{Sec: sec, Nsec: int32(nsec)}
}

// FromTime returns the offset of t from the epoch.
func FromTime(t time.Time) Timespec {
	return Timespec{Sec: t.Unix(), Nsec: int32(t.Nanosecond())}
}

// Time returns the instant ts denotes, in UTC.
func (ts Timespec) Time() time.Time {
	return time.Unix(ts.Sec, int64(ts.Nsec)).UTC()
}

// IsEpoch reports whether ts is the epoch itself.
func (ts Timespec) IsEpoch() bool {
	return ts.Sec == 0 && ts.Nsec == 0
}

// Compare returns -1, 0 or +1 depending on whether ts is before, equal to,
// or after other.
func (ts Timespec) Compare(other Timespec) int {
	switch {
	case ts.Sec < other.Sec:
		return -1
	case ts.Sec > other.Sec:
		return 1
	case ts.Nsec < other.Nsec:
		return -1
	case ts.Nsec > other.Nsec:
		return 1
	}
	return 0
}
