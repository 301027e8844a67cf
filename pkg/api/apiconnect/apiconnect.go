// Package apiconnect wires the rentiful.v1 services onto connect handlers
// and clients. Every handler and client uses api.JSONCodec.
package apiconnect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/Ahmed-Ehab99/rentiful-realestate/pkg/api"
)

// Fully-qualified service names.
const (
	ApplicationServiceName = "rentiful.v1.ApplicationService"
	PropertyServiceName    = "rentiful.v1.PropertyService"
	TenantServiceName      = "rentiful.v1.TenantService"
	LeaseServiceName       = "rentiful.v1.LeaseService"
	ProfileServiceName     = "rentiful.v1.ProfileService"
)

// Procedure paths. Each is "/" + service name + "/" + method.
const (
	ApplicationServiceSubmitApplicationProcedure     = "/rentiful.v1.ApplicationService/SubmitApplication"
	ApplicationServiceTransitionApplicationProcedure = "/rentiful.v1.ApplicationService/TransitionApplication"
	ApplicationServiceListApplicationsProcedure      = "/rentiful.v1.ApplicationService/ListApplications"
	PropertyServiceFilterPropertiesProcedure         = "/rentiful.v1.PropertyService/FilterProperties"
	PropertyServiceCreatePropertyProcedure           = "/rentiful.v1.PropertyService/CreateProperty"
	PropertyServiceGetPropertyProcedure              = "/rentiful.v1.PropertyService/GetProperty"
	PropertyServiceListManagerPropertiesProcedure    = "/rentiful.v1.PropertyService/ListManagerProperties"
	TenantServiceToggleFavoriteProcedure             = "/rentiful.v1.TenantService/ToggleFavorite"
	TenantServiceListFavoritesProcedure              = "/rentiful.v1.TenantService/ListFavorites"
	TenantServiceListResidencesProcedure             = "/rentiful.v1.TenantService/ListResidences"
	LeaseServiceNextPaymentDateProcedure             = "/rentiful.v1.LeaseService/NextPaymentDate"
	LeaseServiceListLeasesProcedure                  = "/rentiful.v1.LeaseService/ListLeases"
	LeaseServiceListLeasePaymentsProcedure           = "/rentiful.v1.LeaseService/ListLeasePayments"
	ProfileServiceCreateProfileProcedure             = "/rentiful.v1.ProfileService/CreateProfile"
	ProfileServiceGetProfileProcedure                = "/rentiful.v1.ProfileService/GetProfile"
	ProfileServiceUpdateProfileProcedure             = "/rentiful.v1.ProfileService/UpdateProfile"
)

func handlerOptions(opts []connect.HandlerOption) []connect.HandlerOption {
	return append([]connect.HandlerOption{connect.WithCodec(api.JSONCodec{})}, opts...)
}

func clientOptions(opts []connect.ClientOption) []connect.ClientOption {
	return append([]connect.ClientOption{connect.WithCodec(api.JSONCodec{})}, opts...)
}

// ApplicationServiceHandler is implemented by the server side of ApplicationService.
type ApplicationServiceHandler interface {
	SubmitApplication(context.Context, *connect.Request[api.SubmitApplicationRequest]) (*connect.Response[api.SubmitApplicationResponse], error)
	TransitionApplication(context.Context, *connect.Request[api.TransitionApplicationRequest]) (*connect.Response[api.TransitionApplicationResponse], error)
	ListApplications(context.Context, *connect.Request[api.ListApplicationsRequest]) (*connect.Response[api.ListApplicationsResponse], error)
}

// NewApplicationServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewApplicationServiceHandler(svc ApplicationServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	submitApplicationHandler := connect.NewUnaryHandler(ApplicationServiceSubmitApplicationProcedure, svc.SubmitApplication, opts...)
	transitionApplicationHandler := connect.NewUnaryHandler(ApplicationServiceTransitionApplicationProcedure, svc.TransitionApplication, opts...)
	listApplicationsHandler := connect.NewUnaryHandler(ApplicationServiceListApplicationsProcedure, svc.ListApplications, opts...)
	return "/rentiful.v1.ApplicationService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case ApplicationServiceSubmitApplicationProcedure:
			submitApplicationHandler.ServeHTTP(w, r)
		case ApplicationServiceTransitionApplicationProcedure:
			transitionApplicationHandler.ServeHTTP(w, r)
		case ApplicationServiceListApplicationsProcedure:
			listApplicationsHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// ApplicationServiceClient is a client for ApplicationService.
type ApplicationServiceClient interface {
	SubmitApplication(context.Context, *connect.Request[api.SubmitApplicationRequest]) (*connect.Response[api.SubmitApplicationResponse], error)
	TransitionApplication(context.Context, *connect.Request[api.TransitionApplicationRequest]) (*connect.Response[api.TransitionApplicationResponse], error)
	ListApplications(context.Context, *connect.Request[api.ListApplicationsRequest]) (*connect.Response[api.ListApplicationsResponse], error)
}

// NewApplicationServiceClient constructs a client for ApplicationService. baseURL is the server
// root, e.g. http://localhost:8080.
func NewApplicationServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) ApplicationServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &applicationServiceClient{
		submitApplication:     connect.NewClient[api.SubmitApplicationRequest, api.SubmitApplicationResponse](httpClient, baseURL+ApplicationServiceSubmitApplicationProcedure, opts...),
		transitionApplication: connect.NewClient[api.TransitionApplicationRequest, api.TransitionApplicationResponse](httpClient, baseURL+ApplicationServiceTransitionApplicationProcedure, opts...),
		listApplications:      connect.NewClient[api.ListApplicationsRequest, api.ListApplicationsResponse](httpClient, baseURL+ApplicationServiceListApplicationsProcedure, opts...),
	}
}

type applicationServiceClient struct {
	submitApplication     *connect.Client[api.SubmitApplicationRequest, api.SubmitApplicationResponse]
	transitionApplication *connect.Client[api.TransitionApplicationRequest, api.TransitionApplicationResponse]
	listApplications      *connect.Client[api.ListApplicationsRequest, api.ListApplicationsResponse]
}

func (c *applicationServiceClient) SubmitApplication(ctx context.Context, req *connect.Request[api.SubmitApplicationRequest]) (*connect.Response[api.SubmitApplicationResponse], error) {
	return c.submitApplication.CallUnary(ctx, req)
}

func (c *applicationServiceClient) TransitionApplication(ctx context.Context, req *connect.Request[api.TransitionApplicationRequest]) (*connect.Response[api.TransitionApplicationResponse], error) {
	return c.transitionApplication.CallUnary(ctx, req)
}

func (c *applicationServiceClient) ListApplications(ctx context.Context, req *connect.Request[api.ListApplicationsRequest]) (*connect.Response[api.ListApplicationsResponse], error) {
	return c.listApplications.CallUnary(ctx, req)
}

// PropertyServiceHandler is implemented by the server side of PropertyService.
type PropertyServiceHandler interface {
	FilterProperties(context.Context, *connect.Request[api.FilterPropertiesRequest]) (*connect.Response[api.FilterPropertiesResponse], error)
	CreateProperty(context.Context, *connect.Request[api.CreatePropertyRequest]) (*connect.Response[api.CreatePropertyResponse], error)
	GetProperty(context.Context, *connect.Request[api.GetPropertyRequest]) (*connect.Response[api.GetPropertyResponse], error)
	ListManagerProperties(context.Context, *connect.Request[api.ListManagerPropertiesRequest]) (*connect.Response[api.ListManagerPropertiesResponse], error)
}

// NewPropertyServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewPropertyServiceHandler(svc PropertyServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	filterPropertiesHandler := connect.NewUnaryHandler(PropertyServiceFilterPropertiesProcedure, svc.FilterProperties, opts...)
	createPropertyHandler := connect.NewUnaryHandler(PropertyServiceCreatePropertyProcedure, svc.CreateProperty, opts...)
	getPropertyHandler := connect.NewUnaryHandler(PropertyServiceGetPropertyProcedure, svc.GetProperty, opts...)
	listManagerPropertiesHandler := connect.NewUnaryHandler(PropertyServiceListManagerPropertiesProcedure, svc.ListManagerProperties, opts...)
	return "/rentiful.v1.PropertyService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case PropertyServiceFilterPropertiesProcedure:
			filterPropertiesHandler.ServeHTTP(w, r)
		case PropertyServiceCreatePropertyProcedure:
			createPropertyHandler.ServeHTTP(w, r)
		case PropertyServiceGetPropertyProcedure:
			getPropertyHandler.ServeHTTP(w, r)
		case PropertyServiceListManagerPropertiesProcedure:
			listManagerPropertiesHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// PropertyServiceClient is a client for PropertyService.
type PropertyServiceClient interface {
	FilterProperties(context.Context, *connect.Request[api.FilterPropertiesRequest]) (*connect.Response[api.FilterPropertiesResponse], error)
	CreateProperty(context.Context, *connect.Request[api.CreatePropertyRequest]) (*connect.Response[api.CreatePropertyResponse], error)
	GetProperty(context.Context, *connect.Request[api.GetPropertyRequest]) (*connect.Response[api.GetPropertyResponse], error)
	ListManagerProperties(context.Context, *connect.Request[api.ListManagerPropertiesRequest]) (*connect.Response[api.ListManagerPropertiesResponse], error)
}

// NewPropertyServiceClient constructs a client for PropertyService. baseURL is the server
// root, e.g. http://localhost:8080.
func NewPropertyServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) PropertyServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &propertyServiceClient{
		filterProperties:      connect.NewClient[api.FilterPropertiesRequest, api.FilterPropertiesResponse](httpClient, baseURL+PropertyServiceFilterPropertiesProcedure, opts...),
		createProperty:        connect.NewClient[api.CreatePropertyRequest, api.CreatePropertyResponse](httpClient, baseURL+PropertyServiceCreatePropertyProcedure, opts...),
		getProperty:           connect.NewClient[api.GetPropertyRequest, api.GetPropertyResponse](httpClient, baseURL+PropertyServiceGetPropertyProcedure, opts...),
		listManagerProperties: connect.NewClient[api.ListManagerPropertiesRequest, api.ListManagerPropertiesResponse](httpClient, baseURL+PropertyServiceListManagerPropertiesProcedure, opts...),
	}
}

type propertyServiceClient struct {
	filterProperties      *connect.Client[api.FilterPropertiesRequest, api.FilterPropertiesResponse]
	createProperty        *connect.Client[api.CreatePropertyRequest, api.CreatePropertyResponse]
	getProperty           *connect.Client[api.GetPropertyRequest, api.GetPropertyResponse]
	listManagerProperties *connect.Client[api.ListManagerPropertiesRequest, api.ListManagerPropertiesResponse]
}

func (c *propertyServiceClient) FilterProperties(ctx context.Context, req *connect.Request[api.FilterPropertiesRequest]) (*connect.Response[api.FilterPropertiesResponse], error) {
	return c.filterProperties.CallUnary(ctx, req)
}

func (c *propertyServiceClient) CreateProperty(ctx context.Context, req *connect.Request[api.CreatePropertyRequest]) (*connect.Response[api.CreatePropertyResponse], error) {
	return c.createProperty.CallUnary(ctx, req)
}

func (c *propertyServiceClient) GetProperty(ctx context.Context, req *connect.Request[api.GetPropertyRequest]) (*connect.Response[api.GetPropertyResponse], error) {
	return c.getProperty.CallUnary(ctx, req)
}

func (c *propertyServiceClient) ListManagerProperties(ctx context.Context, req *connect.Request[api.ListManagerPropertiesRequest]) (*connect.Response[api.ListManagerPropertiesResponse], error) {
	return c.listManagerProperties.CallUnary(ctx, req)
}

// TenantServiceHandler is implemented by the server side of TenantService.
type TenantServiceHandler interface {
	ToggleFavorite(context.Context, *connect.Request[api.ToggleFavoriteRequest]) (*connect.Response[api.ToggleFavoriteResponse], error)
	ListFavorites(context.Context, *connect.Request[api.ListFavoritesRequest]) (*connect.Response[api.ListFavoritesResponse], error)
	ListResidences(context.Context, *connect.Request[api.ListResidencesRequest]) (*connect.Response[api.ListResidencesResponse], error)
}

// NewTenantServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewTenantServiceHandler(svc TenantServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	toggleFavoriteHandler := connect.NewUnaryHandler(TenantServiceToggleFavoriteProcedure, svc.ToggleFavorite, opts...)
	listFavoritesHandler := connect.NewUnaryHandler(TenantServiceListFavoritesProcedure, svc.ListFavorites, opts...)
	listResidencesHandler := connect.NewUnaryHandler(TenantServiceListResidencesProcedure, svc.ListResidences, opts...)
	return "/rentiful.v1.TenantService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case TenantServiceToggleFavoriteProcedure:
			toggleFavoriteHandler.ServeHTTP(w, r)
		case TenantServiceListFavoritesProcedure:
			listFavoritesHandler.ServeHTTP(w, r)
		case TenantServiceListResidencesProcedure:
			listResidencesHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// TenantServiceClient is a client for TenantService.
type TenantServiceClient interface {
	ToggleFavorite(context.Context, *connect.Request[api.ToggleFavoriteRequest]) (*connect.Response[api.ToggleFavoriteResponse], error)
	ListFavorites(context.Context, *connect.Request[api.ListFavoritesRequest]) (*connect.Response[api.ListFavoritesResponse], error)
	ListResidences(context.Context, *connect.Request[api.ListResidencesRequest]) (*connect.Response[api.ListResidencesResponse], error)
}

// NewTenantServiceClient constructs a client for TenantService. baseURL is the server
// root, e.g. http://localhost:8080.
func NewTenantServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) TenantServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &tenantServiceClient{
		toggleFavorite: connect.NewClient[api.ToggleFavoriteRequest, api.ToggleFavoriteResponse](httpClient, baseURL+TenantServiceToggleFavoriteProcedure, opts...),
		listFavorites:  connect.NewClient[api.ListFavoritesRequest, api.ListFavoritesResponse](httpClient, baseURL+TenantServiceListFavoritesProcedure, opts...),
		listResidences: connect.NewClient[api.ListResidencesRequest, api.ListResidencesResponse](httpClient, baseURL+TenantServiceListResidencesProcedure, opts...),
	}
}

type tenantServiceClient struct {
	toggleFavorite *connect.Client[api.ToggleFavoriteRequest, api.ToggleFavoriteResponse]
	listFavorites  *connect.Client[api.ListFavoritesRequest, api.ListFavoritesResponse]
	listResidences *connect.Client[api.ListResidencesRequest, api.ListResidencesResponse]
}

func (c *tenantServiceClient) ToggleFavorite(ctx context.Context, req *connect.Request[api.ToggleFavoriteRequest]) (*connect.Response[api.ToggleFavoriteResponse], error) {
	return c.toggleFavorite.CallUnary(ctx, req)
}

func (c *tenantServiceClient) ListFavorites(ctx context.Context, req *connect.Request[api.ListFavoritesRequest]) (*connect.Response[api.ListFavoritesResponse], error) {
	return c.listFavorites.CallUnary(ctx, req)
}

func (c *tenantServiceClient) ListResidences(ctx context.Context, req *connect.Request[api.ListResidencesRequest]) (*connect.Response[api.ListResidencesResponse], error) {
	return c.listResidences.CallUnary(ctx, req)
}

// LeaseServiceHandler is implemented by the server side of LeaseService.
type LeaseServiceHandler interface {
	NextPaymentDate(context.Context, *connect.Request[api.NextPaymentDateRequest]) (*connect.Response[api.NextPaymentDateResponse], error)
	ListLeases(context.Context, *connect.Request[api.ListLeasesRequest]) (*connect.Response[api.ListLeasesResponse], error)
	ListLeasePayments(context.Context, *connect.Request[api.ListLeasePaymentsRequest]) (*connect.Response[api.ListLeasePaymentsResponse], error)
}

// NewLeaseServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewLeaseServiceHandler(svc LeaseServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	nextPaymentDateHandler := connect.NewUnaryHandler(LeaseServiceNextPaymentDateProcedure, svc.NextPaymentDate, opts...)
	listLeasesHandler := connect.NewUnaryHandler(LeaseServiceListLeasesProcedure, svc.ListLeases, opts...)
	listLeasePaymentsHandler := connect.NewUnaryHandler(LeaseServiceListLeasePaymentsProcedure, svc.ListLeasePayments, opts...)
	return "/rentiful.v1.LeaseService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case LeaseServiceNextPaymentDateProcedure:
			nextPaymentDateHandler.ServeHTTP(w, r)
		case LeaseServiceListLeasesProcedure:
			listLeasesHandler.ServeHTTP(w, r)
		case LeaseServiceListLeasePaymentsProcedure:
			listLeasePaymentsHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// LeaseServiceClient is a client for LeaseService.
type LeaseServiceClient interface {
	NextPaymentDate(context.Context, *connect.Request[api.NextPaymentDateRequest]) (*connect.Response[api.NextPaymentDateResponse], error)
	ListLeases(context.Context, *connect.Request[api.ListLeasesRequest]) (*connect.Response[api.ListLeasesResponse], error)
	ListLeasePayments(context.Context, *connect.Request[api.ListLeasePaymentsRequest]) (*connect.Response[api.ListLeasePaymentsResponse], error)
}

// NewLeaseServiceClient constructs a client for LeaseService. baseURL is the server
// root, e.g. http://localhost:8080.
func NewLeaseServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) LeaseServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &leaseServiceClient{
		nextPaymentDate:   connect.NewClient[api.NextPaymentDateRequest, api.NextPaymentDateResponse](httpClient, baseURL+LeaseServiceNextPaymentDateProcedure, opts...),
		listLeases:        connect.NewClient[api.ListLeasesRequest, api.ListLeasesResponse](httpClient, baseURL+LeaseServiceListLeasesProcedure, opts...),
		listLeasePayments: connect.NewClient[api.ListLeasePaymentsRequest, api.ListLeasePaymentsResponse](httpClient, baseURL+LeaseServiceListLeasePaymentsProcedure, opts...),
	}
}

type leaseServiceClient struct {
	nextPaymentDate   *connect.Client[api.NextPaymentDateRequest, api.NextPaymentDateResponse]
	listLeases        *connect.Client[api.ListLeasesRequest, api.ListLeasesResponse]
	listLeasePayments *connect.Client[api.ListLeasePaymentsRequest, api.ListLeasePaymentsResponse]
}

func (c *leaseServiceClient) NextPaymentDate(ctx context.Context, req *connect.Request[api.NextPaymentDateRequest]) (*connect.Response[api.NextPaymentDateResponse], error) {
	return c.nextPaymentDate.CallUnary(ctx, req)
}

func (c *leaseServiceClient) ListLeases(ctx context.Context, req *connect.Request[api.ListLeasesRequest]) (*connect.Response[api.ListLeasesResponse], error) {
	return c.listLeases.CallUnary(ctx, req)
}

func (c *leaseServiceClient) ListLeasePayments(ctx context.Context, req *connect.Request[api.ListLeasePaymentsRequest]) (*connect.Response[api.ListLeasePaymentsResponse], error) {
	return c.listLeasePayments.CallUnary(ctx, req)
}

// ProfileServiceHandler is implemented by the server side of ProfileService.
type ProfileServiceHandler interface {
	CreateProfile(context.Context, *connect.Request[api.CreateProfileRequest]) (*connect.Response[api.CreateProfileResponse], error)
	GetProfile(context.Context, *connect.Request[api.GetProfileRequest]) (*connect.Response[api.GetProfileResponse], error)
	UpdateProfile(context.Context, *connect.Request[api.UpdateProfileRequest]) (*connect.Response[api.UpdateProfileResponse], error)
}

// NewProfileServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewProfileServiceHandler(svc ProfileServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	createProfileHandler := connect.NewUnaryHandler(ProfileServiceCreateProfileProcedure, svc.CreateProfile, opts...)
	getProfileHandler := connect.NewUnaryHandler(ProfileServiceGetProfileProcedure, svc.GetProfile, opts...)
	updateProfileHandler := connect.NewUnaryHandler(ProfileServiceUpdateProfileProcedure, svc.UpdateProfile, opts...)
	return "/rentiful.v1.ProfileService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case ProfileServiceCreateProfileProcedure:
			createProfileHandler.ServeHTTP(w, r)
		case ProfileServiceGetProfileProcedure:
			getProfileHandler.ServeHTTP(w, r)
		case ProfileServiceUpdateProfileProcedure:
			updateProfileHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// ProfileServiceClient is a client for ProfileService.
type ProfileServiceClient interface {
	CreateProfile(context.Context, *connect.Request[api.CreateProfileRequest]) (*connect.Response[api.CreateProfileResponse], error)
	GetProfile(context.Context, *connect.Request[api.GetProfileRequest]) (*connect.Response[api.GetProfileResponse], error)
	UpdateProfile(context.Context, *connect.Request[api.UpdateProfileRequest]) (*connect.Response[api.UpdateProfileResponse], error)
}

// NewProfileServiceClient constructs a client for ProfileService. baseURL is the server
// root, e.g. http://localhost:8080.
func NewProfileServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) ProfileServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &profileServiceClient{
		createProfile: connect.NewClient[api.CreateProfileRequest, api.CreateProfileResponse](httpClient, baseURL+ProfileServiceCreateProfileProcedure, opts...),
		getProfile:    connect.NewClient[api.GetProfileRequest, api.GetProfileResponse](httpClient, baseURL+ProfileServiceGetProfileProcedure, opts...),
		updateProfile: connect.NewClient[api.UpdateProfileRequest, api.UpdateProfileResponse](httpClient, baseURL+ProfileServiceUpdateProfileProcedure, opts...),
	}
}

type profileServiceClient struct {
	createProfile *connect.Client[api.CreateProfileRequest, api.CreateProfileResponse]
	getProfile    *connect.Client[api.GetProfileRequest, api.GetProfileResponse]
	updateProfile *connect.Client[api.UpdateProfileRequest, api.UpdateProfileResponse]
}

func (c *profileServiceClient) CreateProfile(ctx context.Context, req *connect.Request[api.CreateProfileRequest]) (*connect.Response[api.CreateProfileResponse], error) {
	return c.createProfile.CallUnary(ctx, req)
}

func (c *profileServiceClient) GetProfile(ctx context.Context, req *connect.Request[api.GetProfileRequest]) (*connect.Response[api.GetProfileResponse], error) {
	return c.getProfile.CallUnary(ctx, req)
}

func (c *profileServiceClient) UpdateProfile(ctx context.Context, req *connect.Request[api.UpdateProfileRequest]) (*connect.Response[api.UpdateProfileResponse], error) {
	return c.updateProfile.CallUnary(ctx, req)
}
