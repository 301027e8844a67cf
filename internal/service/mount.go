package service

import (
	"net/http"

	"connectrpc.com/connect"

	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/favorites"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/lifecycle"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/profiles"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/properties"
	"github.com/Ahmed-Ehab99/rentiful-realestate/pkg/api/apiconnect"
)

// Dependencies are the domain components behind the RPC services.
type Dependencies struct {
	Engine     *lifecycle.Engine
	Properties *properties.Service
	Favorites  *favorites.Registry
	Profiles   *profiles.Service
}

// Mount registers every rentiful.v1 service on mux. opts typically carry the
// interceptor chain.
func Mount(mux *http.ServeMux, deps Dependencies, opts ...connect.HandlerOption) {
	mux.Handle(apiconnect.NewApplicationServiceHandler(NewApplicationService(deps.Engine), opts...))
	mux.Handle(apiconnect.NewPropertyServiceHandler(NewPropertyService(deps.Properties), opts...))
	mux.Handle(apiconnect.NewTenantServiceHandler(NewTenantService(deps.Favorites, deps.Properties), opts...))
	mux.Handle(apiconnect.NewLeaseServiceHandler(NewLeaseService(deps.Engine), opts...))
	mux.Handle(apiconnect.NewProfileServiceHandler(NewProfileService(deps.Profiles), opts...))
}
