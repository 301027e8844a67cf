package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/auth"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/profiles"
	"github.com/Ahmed-Ehab99/rentiful-realestate/pkg/api"
	"github.com/Ahmed-Ehab99/rentiful-realestate/pkg/api/apiconnect"
)

var _ apiconnect.ProfileServiceHandler = (*ProfileService)(nil)

// ProfileService implements the Connect ProfileService.
type ProfileService struct {
	profiles *profiles.Service
}

// NewProfileService creates a new ProfileService.
func NewProfileService(svc *profiles.Service) *ProfileService {
	return &ProfileService{profiles: svc}
}

// CreateProfile registers the caller's profile under the role in its token.
func (s *ProfileService) CreateProfile(ctx context.Context, req *connect.Request[api.CreateProfileRequest]) (*connect.Response[api.CreateProfileResponse], error) {
	procedure := apiconnect.ProfileServiceCreateProfileProcedure

	p, err := auth.ResolvePrincipal(ctx)
	if err != nil {
		return nil, toConnectError(procedure, err)
	}
	slog.Info("CreateProfile request received", "user_id", p.UserID, "role", p.Role)

	profile, err := s.profiles.Create(ctx, p, profiles.Fields{
		Name:        req.Msg.Name,
		Email:       req.Msg.Email,
		PhoneNumber: req.Msg.PhoneNumber,
	})
	if err != nil {
		return nil, toConnectError(procedure, err)
	}

	return connect.NewResponse(&api.CreateProfileResponse{
		Profile: toAPIProfile(profile),
	}), nil
}

// GetProfile returns the caller's own profile.
func (s *ProfileService) GetProfile(ctx context.Context, req *connect.Request[api.GetProfileRequest]) (*connect.Response[api.GetProfileResponse], error) {
	procedure := apiconnect.ProfileServiceGetProfileProcedure

	p, err := auth.ResolvePrincipal(ctx)
	if err != nil {
		return nil, toConnectError(procedure, err)
	}

	profile, err := s.profiles.Get(ctx, p, subjectOrSelf(p, req.Msg.UserID))
	if err != nil {
		return nil, toConnectError(procedure, err)
	}

	return connect.NewResponse(&api.GetProfileResponse{
		Profile: toAPIProfile(profile),
	}), nil
}

// UpdateProfile overwrites the caller's contact details.
func (s *ProfileService) UpdateProfile(ctx context.Context, req *connect.Request[api.UpdateProfileRequest]) (*connect.Response[api.UpdateProfileResponse], error) {
	procedure := apiconnect.ProfileServiceUpdateProfileProcedure

	p, err := auth.ResolvePrincipal(ctx)
	if err != nil {
		return nil, toConnectError(procedure, err)
	}
	slog.Info("UpdateProfile request received", "user_id", p.UserID)

	profile, err := s.profiles.Update(ctx, p, subjectOrSelf(p, req.Msg.UserID), profiles.Fields{
		Name:        req.Msg.Name,
		Email:       req.Msg.Email,
		PhoneNumber: req.Msg.PhoneNumber,
	})
	if err != nil {
		return nil, toConnectError(procedure, err)
	}

	return connect.NewResponse(&api.UpdateProfileResponse{
		Profile: toAPIProfile(profile),
	}), nil
}
