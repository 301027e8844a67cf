package middleware

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/auth"
)

// Authenticate returns an interceptor that resolves the caller through the
// identity source and adds the principal to the request context.
//
// Requests without credentials pass through anonymously; handlers that need
// a caller reject them via auth.ResolvePrincipal. Credentials that are
// present but invalid are rejected here.
func Authenticate(identity auth.IdentitySource) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			principal, err := identity.Identify(ctx, req.Header())
			if err != nil {
				slog.Warn("Rejected credentials",
					"procedure", req.Spec().Procedure,
					"error", err,
				)
				return nil, connect.NewError(connect.CodeUnauthenticated, err)
			}

			if principal != nil {
				ctx = auth.NewContext(ctx, *principal)
			}

			return next(ctx, req)
		}
	}
}
