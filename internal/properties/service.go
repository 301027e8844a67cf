// Package properties handles property listings: creation by managers,
// lookup, and filtered search.
package properties

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/apperr"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/auth"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/clock"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/filter"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/models"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/storage"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/validation"
)

// Fields describes a new listing.
type Fields struct {
	Name              string   `json:"name" validate:"required"`
	Description       string   `json:"description" validate:"required"`
	PricePerMonth     float64  `json:"pricePerMonth" validate:"gt=0"`
	SecurityDeposit   float64  `json:"securityDeposit" validate:"gte=0"`
	ApplicationFee    float64  `json:"applicationFee" validate:"gte=0"`
	IsPetsAllowed     bool     `json:"isPetsAllowed"`
	IsParkingIncluded bool     `json:"isParkingIncluded"`
	Amenities         []string `json:"amenities" validate:"dive,oneof=WasherDryer AirConditioning Dishwasher HighSpeedInternet HardwoodFloors WalkInClosets Microwave Refrigerator Pool Gym Parking PetsAllowed WiFi"`
	Highlights        []string `json:"highlights" validate:"dive,required"`
	Beds              int      `json:"beds" validate:"gte=0"`
	Baths             float64  `json:"baths" validate:"gte=0"`
	SquareFeet        int      `json:"squareFeet" validate:"gte=0"`
	PropertyType      string   `json:"propertyType" validate:"required,oneof=Rooms Tinyhouse Apartment Villa Townhouse Cottage"`
	Address           string   `json:"address" validate:"required"`
	City              string   `json:"city" validate:"required"`
	State             string   `json:"state"`
	Country           string   `json:"country" validate:"required"`
	PostalCode        string   `json:"postalCode"`
	Latitude          float64  `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude         float64  `json:"longitude" validate:"gte=-180,lte=180"`
}

// Service manages property listings.
type Service struct {
	store storage.Store
	clock clock.Clock
}

// New creates a Service. A nil clock means the system clock.
func New(store storage.Store, c clock.Clock) *Service {
	if c == nil {
		c = clock.System
	}
	return &Service{store: store, clock: c}
}

// Create lists a new property owned by the manager.
func (s *Service) Create(ctx context.Context, manager auth.Manager, in Fields) (*models.Property, error) {
	validation.TrimStrings(&in)
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	amenities := make([]models.Amenity, len(in.Amenities))
	for i, a := range in.Amenities {
		amenities[i] = models.Amenity(a)
	}

	property := &models.Property{
		ManagerUserID:     manager.UserID,
		Name:              in.Name,
		Description:       in.Description,
		PricePerMonth:     in.PricePerMonth,
		SecurityDeposit:   in.SecurityDeposit,
		ApplicationFee:    in.ApplicationFee,
		IsPetsAllowed:     in.IsPetsAllowed,
		IsParkingIncluded: in.IsParkingIncluded,
		Amenities:         amenities,
		Highlights:        in.Highlights,
		Beds:              in.Beds,
		Baths:             in.Baths,
		SquareFeet:        in.SquareFeet,
		PropertyType:      models.PropertyType(in.PropertyType),
		Location: models.Location{
			Address:    in.Address,
			City:       in.City,
			State:      in.State,
			Country:    in.Country,
			PostalCode: in.PostalCode,
			Latitude:   in.Latitude,
			Longitude:  in.Longitude,
		},
		PostedDate: s.clock.Now(),
	}

	err := s.store.WithTx(ctx, func(q storage.Queries) error {
		if _, err := q.GetProfile(ctx, models.RoleManager, manager.UserID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return apperr.NotFound("manager profile not found")
			}
			return err
		}
		return q.CreateProperty(ctx, property)
	})
	if err != nil {
		return nil, storage.Classify(err, true)
	}

	slog.Info("Property created", "property_id", property.ID, "manager_user_id", manager.UserID)

	return property, nil
}

// Get returns a property by ID.
func (s *Service) Get(ctx context.Context, propertyID string) (*models.Property, error) {
	property, err := s.store.GetProperty(ctx, propertyID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, apperr.NotFound("property %s not found", propertyID)
	}
	if err != nil {
		return nil, storage.Classify(err, false)
	}
	return property, nil
}

// Filter returns the properties matching f, newest first. It never rejects a
// filter; an infeasible one yields an empty result.
func (s *Service) Filter(ctx context.Context, f filter.Filters) ([]*models.Property, error) {
	properties, err := s.store.ListProperties(ctx, filter.Build(f))
	if err != nil {
		return nil, storage.Classify(err, false)
	}
	return nonNil(properties), nil
}

// ListByManager returns the listings of managerUserID. Managers may only list
// their own.
func (s *Service) ListByManager(ctx context.Context, p auth.Principal, managerUserID string) ([]*models.Property, error) {
	if _, err := auth.RequireManager(p); err != nil {
		return nil, err
	}
	if err := auth.RequireSelf(p, managerUserID); err != nil {
		return nil, err
	}

	properties, err := s.store.ListPropertiesByManager(ctx, managerUserID)
	if err != nil {
		return nil, storage.Classify(err, false)
	}
	return nonNil(properties), nil
}

// ListResidences returns the properties tenantUserID currently lives in.
// Tenants may only list their own.
func (s *Service) ListResidences(ctx context.Context, p auth.Principal, tenantUserID string) ([]*models.Property, error) {
	if _, err := auth.RequireTenant(p); err != nil {
		return nil, err
	}
	if err := auth.RequireSelf(p, tenantUserID); err != nil {
		return nil, err
	}

	properties, err := s.store.ListResidences(ctx, tenantUserID)
	if err != nil {
		return nil, storage.Classify(err, false)
	}
	return nonNil(properties), nil
}

func nonNil(props []*models.Property) []*models.Property {
	if props == nil {
		return []*models.Property{}
	}
	return props
}
