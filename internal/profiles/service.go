// Package profiles manages the tenant and manager profile rows that the rest
// of the system references. The role always comes from the principal.
package profiles

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/apperr"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/auth"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/models"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/storage"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/validation"
)

// Fields are the editable profile attributes.
type Fields struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phoneNumber"`
}

// Service manages profiles.
type Service struct {
	store storage.Store
}

// New creates a Service.
func New(store storage.Store) *Service {
	return &Service{store: store}
}

// Create registers the caller's profile under the caller's role.
func (s *Service) Create(ctx context.Context, p auth.Principal, in Fields) (*models.Profile, error) {
	validation.TrimStrings(&in)
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	profile := &models.Profile{
		UserID:      p.UserID,
		Role:        p.Role,
		Name:        in.Name,
		Email:       in.Email,
		PhoneNumber: in.PhoneNumber,
	}

	err := s.store.CreateProfile(ctx, profile)
	if errors.Is(err, storage.ErrConflict) {
		return nil, apperr.Conflict("%s profile already exists", p.Role)
	}
	if err != nil {
		return nil, storage.Classify(err, false)
	}

	slog.Info("Profile created", "user_id", p.UserID, "role", p.Role)

	return profile, nil
}

// Get returns the profile of userID. Callers may only read their own.
func (s *Service) Get(ctx context.Context, p auth.Principal, userID string) (*models.Profile, error) {
	if err := auth.RequireSelf(p, userID); err != nil {
		return nil, err
	}

	profile, err := s.store.GetProfile(ctx, p.Role, userID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, apperr.NotFound("%s profile not found", p.Role)
	}
	if err != nil {
		return nil, storage.Classify(err, false)
	}

	return profile, nil
}

// Update overwrites the caller's profile fields.
func (s *Service) Update(ctx context.Context, p auth.Principal, userID string, in Fields) (*models.Profile, error) {
	if err := auth.RequireSelf(p, userID); err != nil {
		return nil, err
	}

	validation.TrimStrings(&in)
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	profile := &models.Profile{
		UserID:      userID,
		Role:        p.Role,
		Name:        in.Name,
		Email:       in.Email,
		PhoneNumber: in.PhoneNumber,
	}

	err := s.store.UpdateProfile(ctx, profile)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, apperr.NotFound("%s profile not found", p.Role)
	}
	if err != nil {
		return nil, storage.Classify(err, false)
	}

	slog.Info("Profile updated", "user_id", userID, "role", p.Role)

	return profile, nil
}
