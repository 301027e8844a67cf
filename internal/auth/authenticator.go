package auth

import (
	"context"
	"net/http"
)

// IdentitySource resolves the caller of a request.
// This abstraction allows swapping the external identity provider (JWT, session
// cookies, OAuth introspection) without changing the service layer code.
type IdentitySource interface {
	// Identify returns the principal for the request headers.
	// It returns (nil, nil) when the request carries no credentials and an
	// error when credentials are present but invalid.
	Identify(ctx context.Context, header http.Header) (*Principal, error)
}
