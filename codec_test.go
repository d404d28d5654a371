package httpdate_test

import (
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/lestrrat-go/httpdate"
	"github.com/lestrrat-go/sfv"
	"github.com/stretchr/testify/require"
)

func TestText(t *testing.T) {
	t.Run("Marshal", func(t *testing.T) {
		text, err := nov07.MarshalText()
		require.NoError(t, err)
		require.Equal(t, "Mon, 07 Nov 1994 08:48:37 GMT", string(text))
	})

	t.Run("Marshal year out of range", func(t *testing.T) {
		d := httpdate.FromTime(time.Date(10000, time.January, 1, 0, 0, 0, 0, time.UTC))
		_, err := d.MarshalText()
		require.Error(t, err)
	})

	t.Run("Unmarshal obsolete format", func(t *testing.T) {
		var d httpdate.Date
		require.NoError(t, d.UnmarshalText([]byte("Sun Nov  7 08:48:37 1994")))
		require.Equal(t, nov07, d)
	})

	t.Run("Unmarshal malformed", func(t *testing.T) {
		d := nov07
		err := d.UnmarshalText([]byte("this-is-no-date"))
		require.ErrorIs(t, err, httpdate.ErrMalformed)
		require.Equal(t, nov07, d, "value should be left untouched on error")
	})
}

func TestJSON(t *testing.T) {
	type resource struct {
		Name         string         `json:"name"`
		LastModified httpdate.Date  `json:"last_modified"`
		Expires      *httpdate.Date `json:"expires,omitempty"`
	}

	t.Run("Round trip", func(t *testing.T) {
		src := resource{Name: "index.html", LastModified: nov07}
		buf, err := json.Marshal(src)
		require.NoError(t, err)
		require.JSONEq(t, `{"name":"index.html","last_modified":"Mon, 07 Nov 1994 08:48:37 GMT"}`, string(buf))

		var dst resource
		require.NoError(t, json.Unmarshal(buf, &dst))
		require.Equal(t, src, dst)
	})

	t.Run("Obsolete format on input", func(t *testing.T) {
		var dst resource
		require.NoError(t, json.Unmarshal([]byte(`{"last_modified":"Sunday, 07-Nov-94 08:48:37 GMT"}`), &dst))
		require.Equal(t, nov07, dst.LastModified)
	})

	t.Run("Null", func(t *testing.T) {
		d := nov07
		require.NoError(t, d.UnmarshalJSON([]byte(`null`)))
		require.Equal(t, nov07, d)
	})

	t.Run("Not a string", func(t *testing.T) {
		var d httpdate.Date
		require.Error(t, d.UnmarshalJSON([]byte(`784198117`)))
	})

	t.Run("Malformed", func(t *testing.T) {
		var d httpdate.Date
		require.ErrorIs(t, d.UnmarshalJSON([]byte(`"yesterday"`)), httpdate.ErrMalformed)
	})
}

func TestSFV(t *testing.T) {
	t.Run("Marshal", func(t *testing.T) {
		buf, err := nov07.MarshalSFV()
		require.NoError(t, err)
		require.Equal(t, "@784198117", string(buf))

		buf, err = httpdate.FromUnix(-86400, 0).MarshalSFV()
		require.NoError(t, err)
		require.Equal(t, "@-86400", string(buf))
	})

	t.Run("Parse", func(t *testing.T) {
		d, err := httpdate.ParseSFV([]byte("@784198117"))
		require.NoError(t, err)
		require.Equal(t, nov07, d)
	})

	t.Run("Round trip", func(t *testing.T) {
		buf, err := nov07.MarshalSFV()
		require.NoError(t, err)
		d, err := httpdate.ParseSFV(buf)
		require.NoError(t, err)
		require.Equal(t, nov07, d)
	})

	t.Run("Not a date", func(t *testing.T) {
		_, err := httpdate.ParseSFV([]byte("784198117"))
		require.ErrorIs(t, err, httpdate.ErrMalformed)
	})

	t.Run("From parsed item", func(t *testing.T) {
		item, err := sfv.ParseItem([]byte("@0"))
		require.NoError(t, err)
		d, err := httpdate.FromSFVItem(item)
		require.NoError(t, err)
		require.Equal(t, httpdate.FromUnix(0, 0), d)
	})
}

func TestGetValue(t *testing.T) {
	t.Run("time.Time", func(t *testing.T) {
		var v time.Time
		require.NoError(t, nov07.GetValue(&v))
		require.Equal(t, nov07.Time(), v)
	})
	t.Run("int64", func(t *testing.T) {
		var v int64
		require.NoError(t, nov07.GetValue(&v))
		require.Equal(t, int64(784198117), v)
	})
	t.Run("string", func(t *testing.T) {
		var v string
		require.NoError(t, nov07.GetValue(&v))
		require.Equal(t, "Mon, 07 Nov 1994 08:48:37 GMT", v)
	})
	t.Run("Date", func(t *testing.T) {
		var v httpdate.Date
		require.NoError(t, nov07.GetValue(&v))
		require.Equal(t, nov07, v)
	})
	t.Run("any", func(t *testing.T) {
		var v any
		require.NoError(t, nov07.GetValue(&v))
		require.Equal(t, nov07.Time(), v)
	})
	t.Run("Incompatible", func(t *testing.T) {
		var v bool
		require.Error(t, nov07.GetValue(&v))
	})
}
