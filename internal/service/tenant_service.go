package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/auth"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/favorites"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/properties"
	"github.com/Ahmed-Ehab99/rentiful-realestate/pkg/api"
	"github.com/Ahmed-Ehab99/rentiful-realestate/pkg/api/apiconnect"
)

var _ apiconnect.TenantServiceHandler = (*TenantService)(nil)

// TenantService implements the Connect TenantService.
type TenantService struct {
	favorites  *favorites.Registry
	properties *properties.Service
}

// NewTenantService creates a new TenantService.
func NewTenantService(favs *favorites.Registry, props *properties.Service) *TenantService {
	return &TenantService{favorites: favs, properties: props}
}

// tenantSelf resolves the caller, requires the tenant role and checks that
// the request targets the caller's own data.
func tenantSelf(ctx context.Context, tenantUserID string) (auth.Tenant, error) {
	p, err := auth.ResolvePrincipal(ctx)
	if err != nil {
		return auth.Tenant{}, err
	}
	if err := auth.RequireSelf(p, subjectOrSelf(p, tenantUserID)); err != nil {
		return auth.Tenant{}, err
	}
	return auth.RequireTenant(p)
}

// ToggleFavorite adds or removes a favorite and returns the resulting set.
func (s *TenantService) ToggleFavorite(ctx context.Context, req *connect.Request[api.ToggleFavoriteRequest]) (*connect.Response[api.ToggleFavoriteResponse], error) {
	procedure := apiconnect.TenantServiceToggleFavoriteProcedure
	slog.Info("ToggleFavorite request received",
		"property_id", req.Msg.PropertyID,
		"add", req.Msg.Add,
	)

	tenant, err := tenantSelf(ctx, req.Msg.TenantUserID)
	if err != nil {
		return nil, toConnectError(procedure, err)
	}

	favs, err := s.favorites.Toggle(ctx, tenant, req.Msg.PropertyID, req.Msg.Add)
	if err != nil {
		return nil, toConnectError(procedure, err)
	}

	return connect.NewResponse(&api.ToggleFavoriteResponse{
		Favorites: toAPIProperties(favs),
	}), nil
}

// ListFavorites returns the tenant's favorite properties.
func (s *TenantService) ListFavorites(ctx context.Context, req *connect.Request[api.ListFavoritesRequest]) (*connect.Response[api.ListFavoritesResponse], error) {
	procedure := apiconnect.TenantServiceListFavoritesProcedure

	tenant, err := tenantSelf(ctx, req.Msg.TenantUserID)
	if err != nil {
		return nil, toConnectError(procedure, err)
	}

	favs, err := s.favorites.List(ctx, tenant)
	if err != nil {
		return nil, toConnectError(procedure, err)
	}

	return connect.NewResponse(&api.ListFavoritesResponse{
		Favorites: toAPIProperties(favs),
	}), nil
}

// ListResidences returns the properties the tenant currently lives in.
func (s *TenantService) ListResidences(ctx context.Context, req *connect.Request[api.ListResidencesRequest]) (*connect.Response[api.ListResidencesResponse], error) {
	procedure := apiconnect.TenantServiceListResidencesProcedure

	p, err := auth.ResolvePrincipal(ctx)
	if err != nil {
		return nil, toConnectError(procedure, err)
	}

	props, err := s.properties.ListResidences(ctx, p, subjectOrSelf(p, req.Msg.TenantUserID))
	if err != nil {
		return nil, toConnectError(procedure, err)
	}

	return connect.NewResponse(&api.ListResidencesResponse{
		Properties: toAPIProperties(props),
	}), nil
}
