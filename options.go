package httpdate

import (
	"github.com/lestrrat-go/option"
)

type Option = option.Interface

// ParseOption configures the behavior of Parse
type ParseOption interface {
	Option
	parseOption()
}

type parseOption struct {
	Option
}

func (parseOption) parseOption() {}

type identClock struct{}

func (identClock) String() string { return "WithClock" }

type identStrict struct{}

func (identStrict) String() string { return "WithStrict" }

// WithClock specifies the clock used as the reference point when
// resolving the two-digit year of an RFC 850 date. The default is
// SystemClock.
func WithClock(clock Clock) ParseOption {
	return parseOption{option.New(identClock{}, clock)}
}

// WithStrict configures Parse to accept only the IMF-fixdate format,
// rejecting both obsolete formats. This is useful for checking values
// that a sender is about to emit.
func WithStrict(strict bool) ParseOption {
	return parseOption{option.New(identStrict{}, strict)}
}
