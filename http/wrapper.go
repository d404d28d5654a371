package http

import (
	"net/http"

	"github.com/lestrrat-go/httpdate"
)

const (
	ifMatchHeader     = "If-Match"
	ifNoneMatchHeader = "If-None-Match"
)

// LastModifiedFunc reports the modification date of the resource targeted
// by a request. ok is false if the resource has no known modification date.
type LastModifiedFunc func(r *http.Request) (lastModified httpdate.Date, ok bool)

// Middleware wraps an http.Handler to stamp a Date header on responses,
// and optionally evaluate date based preconditions.
type Middleware struct {
	handler      http.Handler
	clock        httpdate.Clock
	conditional  bool
	lastModified LastModifiedFunc
}

// Wrap wraps an HTTP handler so that every response carries a Date header.
// Handlers that set their own Date header are left alone.
//
// Unless disabled with WithConditional(false), the If-Unmodified-Since and
// If-Modified-Since request header fields are evaluated as described in
// RFC 9110 Section 13.2.2. Request header fields that do not hold a valid
// HTTP-date are ignored.
//
// When a LastModifiedFunc is given with WithLastModified, preconditions are
// evaluated before the wrapped handler is called, for any request method.
// A failed precondition is answered by the middleware and the handler is
// never invoked.
//
// Without a LastModifiedFunc the modification date is only known once the
// handler has set the Last-Modified header field, so preconditions are
// evaluated only for GET and HEAD requests, where running the handler
// has no side effects. Requests with other methods are passed through
// unconditionally.
func Wrap(h http.Handler, options ...MiddlewareOption) http.Handler {
	m := &Middleware{
		handler:     h,
		clock:       httpdate.SystemClock{},
		conditional: true,
	}

	for _, opt := range options {
		switch opt.Ident() {
		case identClock{}:
			m.clock = opt.Value().(httpdate.Clock)
		case identConditional{}:
			m.conditional = opt.Value().(bool)
		case identLastModified{}:
			m.lastModified = opt.Value().(LastModifiedFunc)
		}
	}

	return m
}

// ServeHTTP implements http.Handler.
func (m *Middleware) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	date := httpdate.FromClock(m.clock)

	if m.conditional && m.lastModified != nil {
		if lastModified, ok := m.lastModified(r); ok {
			if status, failed := evaluatePreconditions(r, lastModified); failed {
				hdr := w.Header()
				if hdr.Get(httpdate.DateHeader) == "" {
					date.SetHeader(hdr, httpdate.DateHeader)
				}
				if status == http.StatusNotModified {
					lastModified.SetHeader(hdr, httpdate.LastModifiedHeader)
				}
				w.WriteHeader(status)
				return
			}
		}
	}

	r = r.WithContext(WithResponseDate(r.Context(), date))

	rw := &responseWriter{
		ResponseWriter: w,
		request:        r,
		date:           date,
		// already evaluated above when the modification date is known up front
		conditional: m.conditional && m.lastModified == nil && isSafeMethod(r.Method),
	}
	m.handler.ServeHTTP(rw, r)

	// handler returned without writing anything
	if !rw.wroteHeader {
		rw.WriteHeader(http.StatusOK)
	}
}

type responseWriter struct {
	http.ResponseWriter
	request     *http.Request
	date        httpdate.Date
	conditional bool
	wroteHeader bool
	discard     bool
}

func (w *responseWriter) WriteHeader(code int) {
	if w.wroteHeader {
		// superfluous call, let the underlying writer complain about it
		w.ResponseWriter.WriteHeader(code)
		return
	}

	// informational responses precede the final one
	if code >= 100 && code < 200 && code != http.StatusSwitchingProtocols {
		w.ResponseWriter.WriteHeader(code)
		return
	}
	w.wroteHeader = true

	hdr := w.Header()
	if hdr.Get(httpdate.DateHeader) == "" {
		w.date.SetHeader(hdr, httpdate.DateHeader)
	}

	// only a response that would have been successful is subject to
	// preconditions
	if w.conditional && code >= 200 && code <= 299 {
		if lastModified, err := httpdate.FromHeader(hdr, httpdate.LastModifiedHeader); err == nil {
			if status, failed := evaluatePreconditions(w.request, lastModified); failed {
				code = status
				w.discard = true
				hdr.Del("Content-Type")
				hdr.Del("Content-Length")
				hdr.Del("Content-Encoding")
			}
		}
	}

	w.ResponseWriter.WriteHeader(code)
}

func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	if w.discard {
		return len(b), nil
	}
	return w.ResponseWriter.Write(b)
}

// Unwrap allows http.ResponseController to reach the underlying writer.
func (w *responseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

func isSafeMethod(method string) bool {
	return method == http.MethodGet || method == http.MethodHead
}

// evaluatePreconditions checks the date based preconditions of r against
// the modification date of the selected representation. failed is true
// when the request should be answered with the returned status code
// instead.
func evaluatePreconditions(r *http.Request, lastModified httpdate.Date) (status int, failed bool) {
	// If-Match takes precedence over If-Unmodified-Since
	if r.Header.Get(ifMatchHeader) == "" {
		if since, err := httpdate.FromHeader(r.Header, httpdate.IfUnmodifiedSinceHeader); err == nil {
			if lastModified.After(since) {
				return http.StatusPreconditionFailed, true
			}
		}
	}

	if !isSafeMethod(r.Method) {
		return 0, false
	}

	// If-None-Match takes precedence over If-Modified-Since
	if r.Header.Get(ifNoneMatchHeader) == "" {
		if since, err := httpdate.FromHeader(r.Header, httpdate.IfModifiedSinceHeader); err == nil {
			if !lastModified.After(since) {
				return http.StatusNotModified, true
			}
		}
	}
	return 0, false
}
