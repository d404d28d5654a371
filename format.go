package httpdate

import (
	"fmt"
	"regexp"
	"time"
)

// Format identifies one of the grammars an HTTP-date may be written in.
//
//	Sun, 06 Nov 1994 08:49:37 GMT    ; IMF-fixdate
//	Sunday, 06-Nov-94 08:49:37 GMT   ; obsolete RFC 850 format
//	Sun Nov  6 08:49:37 1994         ; ANSI C's asctime() format
//
// Recipients must accept all three. Senders must only generate
// IMF-fixdate.
type Format int

const (
	IMFFixdate Format = iota
	RFC850
	ASCTime
)

// the order in which Parse attempts each format
var parseOrder = []Format{IMFFixdate, RFC850, ASCTime}

var formatNames = [...]string{
	IMFFixdate: "IMF-fixdate",
	RFC850:     "rfc850-date",
	ASCTime:    "asctime-date",
}

var formatLayouts = [...]string{
	IMFFixdate: "Mon, 02 Jan 2006 15:04:05 MST",
	RFC850:     time.RFC850,
	ASCTime:    time.ANSIC,
}

const (
	shortDay   = `(?:Mon|Tue|Wed|Thu|Fri|Sat|Sun)`
	longDay    = `(?:Monday|Tuesday|Wednesday|Thursday|Friday|Saturday|Sunday)`
	month      = `(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)`
	timeOfDay  = `\d{2}:\d{2}:\d{2}`
	zoneLetter = `[A-Z]{3}`
)

// formatShapes are the fixed grammars of each format. time.Parse is more
// lenient (fractional seconds, single digit hours, case insensitive names),
// so input must match the shape before it is handed to time.Parse.
// The zone is matched loosely here and checked after parsing.
var formatShapes = [...]*regexp.Regexp{
	IMFFixdate: regexp.MustCompile(`^` + shortDay + `, \d{2} ` + month + ` \d{4} ` + timeOfDay + ` ` + zoneLetter + `$`),
	RFC850:     regexp.MustCompile(`^` + longDay + `, \d{2}-` + month + `-\d{2} ` + timeOfDay + ` ` + zoneLetter + `$`),
	ASCTime:    regexp.MustCompile(`^` + shortDay + ` ` + month + ` (?: \d|\d{2}) ` + timeOfDay + ` \d{4}$`),
}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return formatNames[f]
}

// Layout returns the time.Parse layout for the format.
func (f Format) Layout() string {
	if f < 0 || int(f) >= len(formatLayouts) {
		return ""
	}
	return formatLayouts[f]
}

// parse attempts to read s as format f. ok is false when s does not match
// the grammar at all, in which case the caller may move on to the next
// format. When ok is true the returned error, if any, is final: a value
// such as "Mon, 31 Feb 1994 08:48:37 GMT" has the shape of an IMF-fixdate
// but does not denote a valid instant.
func (f Format) parse(s string, clock Clock) (t time.Time, ok bool, err error) {
	if !formatShapes[f].MatchString(s) {
		return time.Time{}, false, nil
	}

	t, err = time.Parse(f.Layout(), s)
	if err != nil {
		return time.Time{}, true, err
	}

	switch f {
	case IMFFixdate, RFC850:
		if name, offset := t.Zone(); offset != 0 || (name != "GMT" && name != "UTC") {
			return time.Time{}, true, fmt.Errorf(`time zone %q is not GMT`, name)
		}
	}

	if f == RFC850 {
		t = windowYear(t, clock.Now())
	}
	return t.UTC(), true, nil
}

// windowYear resolves the two-digit year of t relative to now: a year
// that would be more than 50 years in the future is taken to be the most
// recent past year with the same last two digits (RFC 9110 Section 5.6.7).
func windowYear(t time.Time, now time.Time) time.Time {
	current := now.UTC().Year()
	year := current - current%100 + t.Year()%100
	if year > current+50 {
		year -= 100
	}
	t = t.UTC()
	return time.Date(year, t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}
