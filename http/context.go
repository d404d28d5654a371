package http

import (
	"context"

	"github.com/lestrrat-go/httpdate"
)

// Context key types for storing values in request context
type responseDateKey struct{}

// WithResponseDate adds the Date that the middleware stamps on the response
// to the context.
func WithResponseDate(ctx context.Context, d httpdate.Date) context.Context {
	return context.WithValue(ctx, responseDateKey{}, d)
}

// ResponseDateFromContext retrieves the response Date from the context.
// Handlers wrapped by Wrap can use it to generate timestamps (e.g.
// Expires) that are consistent with the Date header of the response.
func ResponseDateFromContext(ctx context.Context) (httpdate.Date, bool) {
	d, ok := ctx.Value(responseDateKey{}).(httpdate.Date)
	return d, ok
}
