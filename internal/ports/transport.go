package ports

import "context"

// Response is the raw outcome of one HTTP GET
type Response struct {
	Status int
	Body   []byte
}

// OK reports whether the status is a 2xx success
func (r Response) OK() bool {
	return r.Status >= 200 && r.Status < 300
}

// Transport performs read-only requests against the catalog API.
// A non-nil error means no response was received at all; HTTP failures are
// reported through Response.Status.
type Transport interface {
	Get(ctx context.Context, url string) (Response, error)
}
