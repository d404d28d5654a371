package httpdate_test

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/lestrrat-go/httpdate"
)

func ExampleParse() {
	for _, s := range []string{
		"Sun, 06 Nov 1994 08:49:37 GMT",  // IMF-fixdate
		"Sunday, 06-Nov-94 08:49:37 GMT", // obsolete RFC 850 format
		"Sun Nov  6 08:49:37 1994",       // ANSI C's asctime() format
	} {
		d, err := httpdate.Parse(s)
		if err != nil {
			fmt.Printf("failed to parse %q: %s\n", s, err)
			return
		}
		fmt.Println(d)
	}

	_, err := httpdate.Parse("this-is-no-date")
	fmt.Println(errors.Is(err, httpdate.ErrMalformed))
	// Output:
	// Sun, 06 Nov 1994 08:49:37 GMT
	// Sun, 06 Nov 1994 08:49:37 GMT
	// Sun, 06 Nov 1994 08:49:37 GMT
	// true
}

func ExampleFromTime() {
	loc := time.FixedZone("CEST", 2*60*60)
	d := httpdate.FromTime(time.Date(2024, time.June, 1, 12, 30, 0, 0, loc))
	fmt.Println(d)
	fmt.Println(d.Time())
	// Output:
	// Sat, 01 Jun 2024 10:30:00 GMT
	// 2024-06-01 10:30:00 +0000 UTC
}

func ExampleFromHeader() {
	h := http.Header{}
	h.Set(httpdate.LastModifiedHeader, "Sun Nov  6 08:49:37 1994")

	d, err := httpdate.FromHeader(h, httpdate.LastModifiedHeader)
	if err != nil {
		fmt.Printf("failed to read header: %s\n", err)
		return
	}

	// re-emit the value in the preferred format
	d.SetHeader(h, httpdate.LastModifiedHeader)
	fmt.Println(h.Get(httpdate.LastModifiedHeader))
	// Output:
	// Sun, 06 Nov 1994 08:49:37 GMT
}
