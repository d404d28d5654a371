package httpdate

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/lestrrat-go/blackmagic"
	"github.com/lestrrat-go/sfv"
)

// MarshalText implements encoding.TextMarshaler. The output is the
// IMF-fixdate form, which can only represent years 0 through 9999.
func (d Date) MarshalText() ([]byte, error) {
	if y := d.t.Year(); y < 0 || y > 9999 {
		return nil, fmt.Errorf(`httpdate: year %d is outside of range [0,9999]`, y)
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. All three HTTP-date
// formats are accepted.
func (d *Date) UnmarshalText(data []byte) error {
	v, err := Parse(string(data))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	text, err := d.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

// UnmarshalJSON accepts a JSON string holding an HTTP-date. A JSON null
// leaves d unchanged.
func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf(`httpdate: failed to decode JSON string: %w`, err)
	}
	return d.UnmarshalText([]byte(s))
}

// MarshalSFV encodes d as a Structured Field Values Date bare item
// (RFC 9651 Section 3.3.7), e.g. "@784111777". Sub-second precision
// is discarded.
func (d Date) MarshalSFV() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('@')
	buf.WriteString(strconv.FormatInt(d.Unix(), 10))
	return buf.Bytes(), nil
}

// ParseSFV parses a Structured Field Values Date item, such as the value
// of a header field defined as an sf-date.
func ParseSFV(data []byte) (Date, error) {
	item, err := sfv.ParseItem(data)
	if err != nil {
		return Date{}, fmt.Errorf(`httpdate: failed to parse SFV item: %w`, err)
	}
	return FromSFVItem(item)
}

// FromSFVItem converts an already parsed Structured Field Values Date
// item into a Date.
func FromSFVItem(item sfv.Item) (Date, error) {
	if item.Type() != sfv.DateType {
		return Date{}, fmt.Errorf(`httpdate: expected SFV date item, got type %d: %w`, item.Type(), ErrMalformed)
	}

	var sec int64
	if err := item.GetValue(&sec); err != nil {
		return Date{}, fmt.Errorf(`httpdate: failed to get SFV date value: %w`, err)
	}
	return FromUnix(sec, 0), nil
}

// GetValue assigns d to dst. dst may be a pointer to time.Time, Date,
// int64 (seconds since the Unix epoch), string (IMF-fixdate) or any.
func (d Date) GetValue(dst any) error {
	var src any
	switch dst.(type) {
	case *int64:
		src = d.Unix()
	case *string:
		src = d.String()
	case *Date:
		src = d
	default:
		src = d.Time()
	}
	return blackmagic.AssignIfCompatible(dst, src)
}
