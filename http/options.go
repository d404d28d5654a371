package http

import (
	"net/http"

	"github.com/lestrrat-go/httpdate"
	"github.com/lestrrat-go/option"
)

type Option = option.Interface

// Identifier types for options
type identClock struct{}

func (identClock) String() string { return "WithClock" }

type identConditional struct{}

func (identConditional) String() string { return "WithConditional" }

type identLastModified struct{}

func (identLastModified) String() string { return "WithLastModified" }

type identTransport struct{}

func (identTransport) String() string { return "WithTransport" }

// MiddlewareOption configures the handler returned by Wrap.
type MiddlewareOption interface {
	Option
	middlewareOption()
}

// TransportOption configures a Transport.
type TransportOption interface {
	Option
	transportOption()
}

// MiddlewareTransportOption can be used with both Wrap and NewTransport.
type MiddlewareTransportOption interface {
	MiddlewareOption
	TransportOption
}

type middlewareOption struct {
	Option
}

func (middlewareOption) middlewareOption() {}

type transportOption struct {
	Option
}

func (transportOption) transportOption() {}

type middlewareTransportOption struct {
	Option
}

func (middlewareTransportOption) middlewareOption() {}
func (middlewareTransportOption) transportOption()  {}

// WithClock specifies the clock used to generate Date header values.
// The default is httpdate.SystemClock.
func WithClock(clock httpdate.Clock) MiddlewareTransportOption {
	return middlewareTransportOption{option.New(identClock{}, clock)}
}

// WithConditional configures whether the middleware evaluates the
// If-Modified-Since and If-Unmodified-Since request header fields
// against the Last-Modified header field set by the wrapped handler.
// It is enabled by default.
func WithConditional(evaluate bool) MiddlewareOption {
	return middlewareOption{option.New(identConditional{}, evaluate)}
}

// WithLastModified specifies how the middleware looks up the modification
// date of the requested resource. With it, preconditions are evaluated
// before the wrapped handler runs, which makes If-Unmodified-Since effective
// for state changing methods such as PUT and DELETE.
func WithLastModified(fn LastModifiedFunc) MiddlewareOption {
	return middlewareOption{option.New(identLastModified{}, fn)}
}

// WithTransport sets the underlying transport.
func WithTransport(transport http.RoundTripper) TransportOption {
	return transportOption{option.New(identTransport{}, transport)}
}
