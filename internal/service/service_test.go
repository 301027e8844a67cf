package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/auth"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/clock"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/favorites"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/lifecycle"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/metrics"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/middleware"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/models"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/profiles"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/properties"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/storage/sqlstore"
	"github.com/Ahmed-Ehab99/rentiful-realestate/pkg/api"
	"github.com/Ahmed-Ehab99/rentiful-realestate/pkg/api/apiconnect"
)

var now = time.Date(2024, 3, 20, 9, 0, 0, 0, time.UTC)

type clients struct {
	applications apiconnect.ApplicationServiceClient
	properties   apiconnect.PropertyServiceClient
	tenants      apiconnect.TenantServiceClient
	leases       apiconnect.LeaseServiceClient
	profiles     apiconnect.ProfileServiceClient
}

type tokens struct {
	manager, tenant, otherTenant string
}

// setupTestServer starts the full RPC surface over a temporary SQLite store.
func setupTestServer(t *testing.T) (clients, tokens) {
	t.Helper()
	ctx := context.Background()

	store, err := sqlstore.New(sqlstore.DriverSQLite, filepath.Join(t.TempDir(), "rentiful.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	require.NoError(t, store.Migrate(ctx))

	fixed := clock.Fixed(now)
	m := metrics.New()
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)

	mux := http.NewServeMux()
	Mount(mux, Dependencies{
		Engine:     lifecycle.New(store, lifecycle.WithClock(fixed), lifecycle.WithMetrics(m)),
		Properties: properties.New(store, fixed),
		Favorites:  favorites.New(store),
		Profiles:   profiles.New(store),
	}, connect.WithInterceptors(
		middleware.MetricsInterceptor(m),
		middleware.Authenticate(jwtManager),
		middleware.LoggingInterceptor(),
	))

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	token := func(userID string, role models.Role) string {
		tok, err := jwtManager.Generate(auth.Principal{UserID: userID, Email: userID + "@example.com", Role: role})
		require.NoError(t, err)
		return tok
	}

	return clients{
			applications: apiconnect.NewApplicationServiceClient(http.DefaultClient, server.URL),
			properties:   apiconnect.NewPropertyServiceClient(http.DefaultClient, server.URL),
			tenants:      apiconnect.NewTenantServiceClient(http.DefaultClient, server.URL),
			leases:       apiconnect.NewLeaseServiceClient(http.DefaultClient, server.URL),
			profiles:     apiconnect.NewProfileServiceClient(http.DefaultClient, server.URL),
		}, tokens{
			manager:     token("mgr-1", models.RoleManager),
			tenant:      token("ten-1", models.RoleTenant),
			otherTenant: token("ten-2", models.RoleTenant),
		}
}

// authed wraps msg in a request carrying the bearer token.
func authed[T any](msg *T, token string) *connect.Request[T] {
	req := connect.NewRequest(msg)
	if token != "" {
		req.Header().Set("Authorization", "Bearer "+token)
	}
	return req
}

func requireCode(t *testing.T, err error, want connect.Code) *connect.Error {
	t.Helper()
	require.Error(t, err)
	var connectErr *connect.Error
	require.ErrorAs(t, err, &connectErr)
	assert.Equal(t, want, connectErr.Code(), "message: %s", connectErr.Message())
	return connectErr
}

func createProfiles(t *testing.T, c clients, tok tokens) {
	t.Helper()
	ctx := context.Background()
	for name, token := range map[string]string{
		"Maya": tok.manager,
		"Tala": tok.tenant,
		"Sami": tok.otherTenant,
	} {
		_, err := c.profiles.CreateProfile(ctx, authed(&api.CreateProfileRequest{
			Name:  name,
			Email: name + "@example.com",
		}, token))
		require.NoError(t, err)
	}
}

func createProperty(t *testing.T, c clients, tok tokens) *api.Property {
	t.Helper()
	resp, err := c.properties.CreateProperty(context.Background(), authed(&api.CreatePropertyRequest{
		Name:            "Nile View",
		Description:     "Two bedrooms over the river",
		PricePerMonth:   1500,
		SecurityDeposit: 3000,
		Amenities:       []string{"WiFi", "Pool"},
		Highlights:      []string{"River view"},
		Beds:            2,
		Baths:           1,
		SquareFeet:      900,
		PropertyType:    "Apartment",
		Location: api.Location{
			Address:   "1 Corniche St",
			City:      "Cairo",
			Country:   "Egypt",
			Latitude:  30.04,
			Longitude: 31.23,
		},
	}, tok.manager))
	require.NoError(t, err)
	return resp.Msg.Property
}

func TestApplicationLifecycle(t *testing.T) {
	ctx := context.Background()
	c, tok := setupTestServer(t)
	createProfiles(t, c, tok)
	property := createProperty(t, c, tok)

	submit := func(token string) (*connect.Response[api.SubmitApplicationResponse], error) {
		return c.applications.SubmitApplication(ctx, authed(&api.SubmitApplicationRequest{
			PropertyID:  property.ID,
			Name:        "Tala",
			Email:       "tala@example.com",
			PhoneNumber: "555-0100",
			Message:     "Hello",
		}, token))
	}

	submitted, err := submit(tok.tenant)
	require.NoError(t, err)
	app := submitted.Msg.Application
	assert.Equal(t, "Pending", app.Status)
	assert.Empty(t, app.LeaseID)
	require.NotNil(t, app.Property)
	assert.Equal(t, property.ID, app.Property.ID)

	_, err = submit(tok.tenant)
	requireCode(t, err, connect.CodeAlreadyExists)

	_, err = submit(tok.manager)
	requireCode(t, err, connect.CodePermissionDenied)

	_, err = c.applications.TransitionApplication(ctx, authed(&api.TransitionApplicationRequest{
		ApplicationID: app.ID,
		Status:        "Approved",
	}, tok.tenant))
	requireCode(t, err, connect.CodePermissionDenied)

	approved, err := c.applications.TransitionApplication(ctx, authed(&api.TransitionApplicationRequest{
		ApplicationID: app.ID,
		Status:        "Approved",
	}, tok.manager))
	require.NoError(t, err)
	got := approved.Msg.Application
	assert.Equal(t, "Approved", got.Status)
	require.NotNil(t, got.Lease)
	assert.Equal(t, got.LeaseID, got.Lease.ID)
	assert.Equal(t, 1500.0, got.Lease.Rent)
	assert.Equal(t, 3000.0, got.Lease.Deposit)
	assert.True(t, got.Lease.NextPaymentDate.Equal(time.Date(2024, 4, 20, 9, 0, 0, 0, time.UTC)))

	_, err = c.applications.TransitionApplication(ctx, authed(&api.TransitionApplicationRequest{
		ApplicationID: app.ID,
		Status:        "Denied",
	}, tok.manager))
	requireCode(t, err, connect.CodeAlreadyExists)

	t.Run("listing is scoped by role", func(t *testing.T) {
		mine, err := c.applications.ListApplications(ctx, authed(&api.ListApplicationsRequest{}, tok.tenant))
		require.NoError(t, err)
		require.Len(t, mine.Msg.Applications, 1)

		theirs, err := c.applications.ListApplications(ctx, authed(&api.ListApplicationsRequest{}, tok.otherTenant))
		require.NoError(t, err)
		assert.Empty(t, theirs.Msg.Applications)

		managed, err := c.applications.ListApplications(ctx, authed(&api.ListApplicationsRequest{}, tok.manager))
		require.NoError(t, err)
		require.Len(t, managed.Msg.Applications, 1)
		assert.Equal(t, "Approved", managed.Msg.Applications[0].Status)
	})

	t.Run("leases and residences", func(t *testing.T) {
		leases, err := c.leases.ListLeases(ctx, authed(&api.ListLeasesRequest{}, tok.tenant))
		require.NoError(t, err)
		require.Len(t, leases.Msg.Leases, 1)

		payments, err := c.leases.ListLeasePayments(ctx, authed(&api.ListLeasePaymentsRequest{
			LeaseID: got.LeaseID,
		}, tok.manager))
		require.NoError(t, err)
		assert.NotNil(t, payments.Msg.Payments)

		_, err = c.leases.ListLeasePayments(ctx, authed(&api.ListLeasePaymentsRequest{
			LeaseID: got.LeaseID,
		}, tok.otherTenant))
		requireCode(t, err, connect.CodePermissionDenied)

		_, err = c.leases.ListLeasePayments(ctx, authed(&api.ListLeasePaymentsRequest{
			LeaseID: "missing",
		}, tok.tenant))
		requireCode(t, err, connect.CodeNotFound)

		residences, err := c.tenants.ListResidences(ctx, authed(&api.ListResidencesRequest{}, tok.tenant))
		require.NoError(t, err)
		require.Len(t, residences.Msg.Properties, 1)
		assert.Equal(t, property.ID, residences.Msg.Properties[0].ID)
	})
}

func TestAuthentication(t *testing.T) {
	ctx := context.Background()
	c, _ := setupTestServer(t)

	_, err := c.applications.ListApplications(ctx, authed(&api.ListApplicationsRequest{}, ""))
	requireCode(t, err, connect.CodeUnauthenticated)

	_, err = c.applications.ListApplications(ctx, authed(&api.ListApplicationsRequest{}, "not-a-jwt"))
	requireCode(t, err, connect.CodeUnauthenticated)

	forged, err := auth.NewJWTManager("other-secret", time.Hour).Generate(auth.Principal{UserID: "ten-1", Role: models.RoleTenant})
	require.NoError(t, err)
	_, err = c.applications.ListApplications(ctx, authed(&api.ListApplicationsRequest{}, forged))
	requireCode(t, err, connect.CodeUnauthenticated)

	t.Run("public procedures need no token", func(t *testing.T) {
		resp, err := c.properties.FilterProperties(ctx, connect.NewRequest(&api.FilterPropertiesRequest{}))
		require.NoError(t, err)
		assert.Empty(t, resp.Msg.Properties)

		next, err := c.leases.NextPaymentDate(ctx, connect.NewRequest(&api.NextPaymentDateRequest{
			LeaseStartDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		}))
		require.NoError(t, err)
		assert.True(t, next.Msg.NextPaymentDate.Equal(time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC)))
	})
}

func TestValidationMetadata(t *testing.T) {
	ctx := context.Background()
	c, tok := setupTestServer(t)

	_, err := c.profiles.CreateProfile(ctx, authed(&api.CreateProfileRequest{
		Name:  "  ",
		Email: "not-an-email",
	}, tok.tenant))
	connectErr := requireCode(t, err, connect.CodeInvalidArgument)
	assert.Equal(t, "is required", connectErr.Meta().Get(FieldMetaPrefix+"name"))
	assert.Equal(t, "must be a valid email address", connectErr.Meta().Get(FieldMetaPrefix+"email"))

	_, err = c.leases.NextPaymentDate(ctx, connect.NewRequest(&api.NextPaymentDateRequest{}))
	requireCode(t, err, connect.CodeInvalidArgument)
}

func TestPropertiesAndFavorites(t *testing.T) {
	ctx := context.Background()
	c, tok := setupTestServer(t)
	createProfiles(t, c, tok)
	property := createProperty(t, c, tok)

	tests := []struct {
		name string
		req  *api.FilterPropertiesRequest
		want int
	}{
		{"no filters", &api.FilterPropertiesRequest{}, 1},
		{"any sentinels", &api.FilterPropertiesRequest{Beds: "any", Baths: "any", PropertyType: "any", AvailableFrom: "any"}, 1},
		{"price in range", &api.FilterPropertiesRequest{PriceMin: 1000, PriceMax: 2000}, 1},
		{"too expensive", &api.FilterPropertiesRequest{PriceMax: 1000}, 0},
		{"beds minimum", &api.FilterPropertiesRequest{Beds: "3"}, 0},
		{"fractional beds round up", &api.FilterPropertiesRequest{Beds: "1.5"}, 1},
		{"fractional beds above listing", &api.FilterPropertiesRequest{Beds: "2.5"}, 0},
		{"amenity match", &api.FilterPropertiesRequest{Amenities: []string{"Gym", "Pool"}}, 1},
		{"wrong type", &api.FilterPropertiesRequest{PropertyType: "Villa"}, 0},
		{"favorite ids", &api.FilterPropertiesRequest{FavoriteIDs: []string{property.ID}}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := c.properties.FilterProperties(ctx, connect.NewRequest(tt.req))
			require.NoError(t, err)
			assert.Len(t, resp.Msg.Properties, tt.want)
		})
	}

	t.Run("get and list by manager", func(t *testing.T) {
		got, err := c.properties.GetProperty(ctx, connect.NewRequest(&api.GetPropertyRequest{PropertyID: property.ID}))
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"WiFi", "Pool"}, got.Msg.Property.Amenities)

		_, err = c.properties.GetProperty(ctx, connect.NewRequest(&api.GetPropertyRequest{PropertyID: "missing"}))
		requireCode(t, err, connect.CodeNotFound)

		mine, err := c.properties.ListManagerProperties(ctx, authed(&api.ListManagerPropertiesRequest{}, tok.manager))
		require.NoError(t, err)
		assert.Len(t, mine.Msg.Properties, 1)

		_, err = c.properties.ListManagerProperties(ctx, authed(&api.ListManagerPropertiesRequest{ManagerUserID: "mgr-2"}, tok.manager))
		requireCode(t, err, connect.CodePermissionDenied)
	})

	t.Run("favorites toggle idempotently", func(t *testing.T) {
		for range 2 {
			resp, err := c.tenants.ToggleFavorite(ctx, authed(&api.ToggleFavoriteRequest{
				PropertyID: property.ID,
				Add:        true,
			}, tok.tenant))
			require.NoError(t, err)
			require.Len(t, resp.Msg.Favorites, 1)
		}

		resp, err := c.tenants.ToggleFavorite(ctx, authed(&api.ToggleFavoriteRequest{
			TenantUserID: "ten-1",
			PropertyID:   property.ID,
		}, tok.tenant))
		require.NoError(t, err)
		assert.Empty(t, resp.Msg.Favorites)

		_, err = c.tenants.ListFavorites(ctx, authed(&api.ListFavoritesRequest{TenantUserID: "ten-1"}, tok.otherTenant))
		requireCode(t, err, connect.CodePermissionDenied)

		_, err = c.tenants.ToggleFavorite(ctx, authed(&api.ToggleFavoriteRequest{PropertyID: property.ID, Add: true}, tok.manager))
		requireCode(t, err, connect.CodePermissionDenied)
	})
}

func TestProfiles(t *testing.T) {
	ctx := context.Background()
	c, tok := setupTestServer(t)

	_, err := c.profiles.GetProfile(ctx, authed(&api.GetProfileRequest{}, tok.tenant))
	requireCode(t, err, connect.CodeNotFound)

	createProfiles(t, c, tok)

	_, err = c.profiles.CreateProfile(ctx, authed(&api.CreateProfileRequest{Name: "Tala", Email: "tala@example.com"}, tok.tenant))
	requireCode(t, err, connect.CodeAlreadyExists)

	updated, err := c.profiles.UpdateProfile(ctx, authed(&api.UpdateProfileRequest{
		Name:        "Tala H.",
		Email:       "tala@example.com",
		PhoneNumber: "555-0100",
	}, tok.tenant))
	require.NoError(t, err)
	assert.Equal(t, "Tala H.", updated.Msg.Profile.Name)

	got, err := c.profiles.GetProfile(ctx, authed(&api.GetProfileRequest{UserID: "ten-1"}, tok.tenant))
	require.NoError(t, err)
	assert.Equal(t, "555-0100", got.Msg.Profile.PhoneNumber)
	assert.Equal(t, "tenant", got.Msg.Profile.Role)

	_, err = c.profiles.GetProfile(ctx, authed(&api.GetProfileRequest{UserID: "ten-2"}, tok.tenant))
	requireCode(t, err, connect.CodePermissionDenied)
}
