package service

import (
	"context"
	"log/slog"
	"math"

	"connectrpc.com/connect"

	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/auth"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/filter"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/models"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/properties"
	"github.com/Ahmed-Ehab99/rentiful-realestate/pkg/api"
	"github.com/Ahmed-Ehab99/rentiful-realestate/pkg/api/apiconnect"
)

var _ apiconnect.PropertyServiceHandler = (*PropertyService)(nil)

// PropertyService implements the Connect PropertyService.
// FilterProperties and GetProperty are public; the rest need a principal.
type PropertyService struct {
	properties *properties.Service
}

// NewPropertyService creates a new PropertyService.
func NewPropertyService(props *properties.Service) *PropertyService {
	return &PropertyService{properties: props}
}

// FilterProperties searches listings. Absent or "any" filters are ignored.
func (s *PropertyService) FilterProperties(ctx context.Context, req *connect.Request[api.FilterPropertiesRequest]) (*connect.Response[api.FilterPropertiesResponse], error) {
	procedure := apiconnect.PropertyServiceFilterPropertiesProcedure

	f := filter.Filters{
		FavoriteIDs:   req.Msg.FavoriteIDs,
		PriceMin:      req.Msg.PriceMin,
		PriceMax:      req.Msg.PriceMax,
		Beds:          int(math.Ceil(filter.ParseMinimum(req.Msg.Beds))),
		Baths:         filter.ParseMinimum(req.Msg.Baths),
		SquareFeetMin: req.Msg.SquareFeetMin,
		SquareFeetMax: req.Msg.SquareFeetMax,
		PropertyType:  models.PropertyType(req.Msg.PropertyType),
		AvailableFrom: filter.ParseDate(req.Msg.AvailableFrom),
	}
	for _, a := range req.Msg.Amenities {
		f.Amenities = append(f.Amenities, models.Amenity(a))
	}

	props, err := s.properties.Filter(ctx, f)
	if err != nil {
		return nil, toConnectError(procedure, err)
	}

	slog.Info("FilterProperties successful", "count", len(props))

	return connect.NewResponse(&api.FilterPropertiesResponse{
		Properties: toAPIProperties(props),
	}), nil
}

// CreateProperty lists a new property owned by the calling manager.
func (s *PropertyService) CreateProperty(ctx context.Context, req *connect.Request[api.CreatePropertyRequest]) (*connect.Response[api.CreatePropertyResponse], error) {
	procedure := apiconnect.PropertyServiceCreatePropertyProcedure
	slog.Info("CreateProperty request received", "name", req.Msg.Name)

	p, err := auth.ResolvePrincipal(ctx)
	if err != nil {
		return nil, toConnectError(procedure, err)
	}
	manager, err := auth.RequireManager(p)
	if err != nil {
		return nil, toConnectError(procedure, err)
	}

	m := req.Msg
	property, err := s.properties.Create(ctx, manager, properties.Fields{
		Name:              m.Name,
		Description:       m.Description,
		PricePerMonth:     m.PricePerMonth,
		SecurityDeposit:   m.SecurityDeposit,
		ApplicationFee:    m.ApplicationFee,
		IsPetsAllowed:     m.IsPetsAllowed,
		IsParkingIncluded: m.IsParkingIncluded,
		Amenities:         m.Amenities,
		Highlights:        m.Highlights,
		Beds:              m.Beds,
		Baths:             m.Baths,
		SquareFeet:        m.SquareFeet,
		PropertyType:      m.PropertyType,
		Address:           m.Location.Address,
		City:              m.Location.City,
		State:             m.Location.State,
		Country:           m.Location.Country,
		PostalCode:        m.Location.PostalCode,
		Latitude:          m.Location.Latitude,
		Longitude:         m.Location.Longitude,
	})
	if err != nil {
		return nil, toConnectError(procedure, err)
	}

	return connect.NewResponse(&api.CreatePropertyResponse{
		Property: toAPIProperty(property),
	}), nil
}

// GetProperty returns a single listing.
func (s *PropertyService) GetProperty(ctx context.Context, req *connect.Request[api.GetPropertyRequest]) (*connect.Response[api.GetPropertyResponse], error) {
	property, err := s.properties.Get(ctx, req.Msg.PropertyID)
	if err != nil {
		return nil, toConnectError(apiconnect.PropertyServiceGetPropertyProcedure, err)
	}
	return connect.NewResponse(&api.GetPropertyResponse{
		Property: toAPIProperty(property),
	}), nil
}

// ListManagerProperties returns the listings of the calling manager.
func (s *PropertyService) ListManagerProperties(ctx context.Context, req *connect.Request[api.ListManagerPropertiesRequest]) (*connect.Response[api.ListManagerPropertiesResponse], error) {
	procedure := apiconnect.PropertyServiceListManagerPropertiesProcedure

	p, err := auth.ResolvePrincipal(ctx)
	if err != nil {
		return nil, toConnectError(procedure, err)
	}

	props, err := s.properties.ListByManager(ctx, p, subjectOrSelf(p, req.Msg.ManagerUserID))
	if err != nil {
		return nil, toConnectError(procedure, err)
	}

	return connect.NewResponse(&api.ListManagerPropertiesResponse{
		Properties: toAPIProperties(props),
	}), nil
}

// subjectOrSelf defaults an omitted subject user ID to the caller's own.
func subjectOrSelf(p auth.Principal, userID string) string {
	if userID == "" {
		return p.UserID
	}
	return userID
}
