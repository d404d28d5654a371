// Package http provides HTTP handlers and clients that generate and
// interpret HTTP-date header fields.
//
// # Server
//
// Wrap stamps a Date header on every response and evaluates the
// If-Modified-Since and If-Unmodified-Since preconditions against the
// Last-Modified header set by the wrapped handler:
//
//	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
//		modtime.SetHeader(w.Header(), httpdate.LastModifiedHeader)
//		fmt.Fprint(w, "hello")
//	})
//
//	http.ListenAndServe(":8080", httpdatehttp.Wrap(handler))
//
// A request carrying "If-Modified-Since" equal to or later than the
// handler's Last-Modified receives a 304 Not Modified with no body.
//
// # Client
//
// Transport adds a Date header to outgoing requests:
//
//	client := httpdatehttp.NewClient()
//	resp, err := client.Get("https://example.com/api")
package http
