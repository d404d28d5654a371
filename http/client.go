package http

import (
	"net/http"

	"github.com/lestrrat-go/httpdate"
)

// Transport is an http.RoundTripper that adds a Date header to outgoing
// requests that do not already have one.
type Transport struct {
	// Transport is the underlying RoundTripper.
	// If nil, http.DefaultTransport is used.
	Transport http.RoundTripper

	// Clock provides the time used for the Date header.
	// If nil, httpdate.SystemClock is used.
	Clock httpdate.Clock
}

// NewTransport creates a new Transport with the given configuration.
func NewTransport(options ...TransportOption) *Transport {
	t := &Transport{
		Transport: http.DefaultTransport,
		Clock:     httpdate.SystemClock{},
	}

	for _, opt := range options {
		switch opt.Ident() {
		case identTransport{}:
			t.Transport = opt.Value().(http.RoundTripper)
		case identClock{}:
			t.Clock = opt.Value().(httpdate.Clock)
		}
	}
	return t
}

// RoundTrip implements http.RoundTripper.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	transport := t.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}

	if req.Header.Get(httpdate.DateHeader) != "" {
		return transport.RoundTrip(req)
	}

	clock := t.Clock
	if clock == nil {
		clock = httpdate.SystemClock{}
	}

	// Clone the request to avoid modifying the original
	datedReq := req.Clone(req.Context())
	httpdate.FromClock(clock).SetHeader(datedReq.Header, httpdate.DateHeader)

	return transport.RoundTrip(datedReq)
}

// NewClient creates an http.Client that adds a Date header to requests.
func NewClient(options ...TransportOption) *http.Client {
	return &http.Client{
		Transport: NewTransport(options...),
	}
}
