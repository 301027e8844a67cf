package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/auth"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/lifecycle"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/models"
	"github.com/Ahmed-Ehab99/rentiful-realestate/pkg/api"
	"github.com/Ahmed-Ehab99/rentiful-realestate/pkg/api/apiconnect"
)

var _ apiconnect.ApplicationServiceHandler = (*ApplicationService)(nil)

// ApplicationService implements the Connect ApplicationService.
type ApplicationService struct {
	engine *lifecycle.Engine
}

// NewApplicationService creates a new ApplicationService backed by the lifecycle engine.
func NewApplicationService(engine *lifecycle.Engine) *ApplicationService {
	return &ApplicationService{engine: engine}
}

// SubmitApplication files a Pending application for the calling tenant.
func (s *ApplicationService) SubmitApplication(ctx context.Context, req *connect.Request[api.SubmitApplicationRequest]) (*connect.Response[api.SubmitApplicationResponse], error) {
	procedure := apiconnect.ApplicationServiceSubmitApplicationProcedure
	slog.Info("SubmitApplication request received", "property_id", req.Msg.PropertyID)

	p, err := auth.ResolvePrincipal(ctx)
	if err != nil {
		return nil, toConnectError(procedure, err)
	}
	tenant, err := auth.RequireTenant(p)
	if err != nil {
		return nil, toConnectError(procedure, err)
	}

	app, err := s.engine.Submit(ctx, tenant, req.Msg.PropertyID, lifecycle.ApplicationFields{
		Name:        req.Msg.Name,
		Email:       req.Msg.Email,
		PhoneNumber: req.Msg.PhoneNumber,
		Message:     req.Msg.Message,
	})
	if err != nil {
		return nil, toConnectError(procedure, err)
	}

	return connect.NewResponse(&api.SubmitApplicationResponse{
		Application: toAPIApplication(app),
	}), nil
}

// TransitionApplication approves or denies a Pending application on one of
// the calling manager's properties.
func (s *ApplicationService) TransitionApplication(ctx context.Context, req *connect.Request[api.TransitionApplicationRequest]) (*connect.Response[api.TransitionApplicationResponse], error) {
	procedure := apiconnect.ApplicationServiceTransitionApplicationProcedure
	slog.Info("TransitionApplication request received",
		"application_id", req.Msg.ApplicationID,
		"status", req.Msg.Status,
	)

	p, err := auth.ResolvePrincipal(ctx)
	if err != nil {
		return nil, toConnectError(procedure, err)
	}
	manager, err := auth.RequireManager(p)
	if err != nil {
		return nil, toConnectError(procedure, err)
	}

	app, err := s.engine.Transition(ctx, manager, req.Msg.ApplicationID, models.ApplicationStatus(req.Msg.Status))
	if err != nil {
		return nil, toConnectError(procedure, err)
	}

	return connect.NewResponse(&api.TransitionApplicationResponse{
		Application: toAPIApplication(app),
	}), nil
}

// ListApplications returns the caller's applications: their own as a tenant,
// or those on their properties as a manager.
func (s *ApplicationService) ListApplications(ctx context.Context, req *connect.Request[api.ListApplicationsRequest]) (*connect.Response[api.ListApplicationsResponse], error) {
	procedure := apiconnect.ApplicationServiceListApplicationsProcedure

	p, err := auth.ResolvePrincipal(ctx)
	if err != nil {
		return nil, toConnectError(procedure, err)
	}

	apps, err := s.engine.ListApplications(ctx, p)
	if err != nil {
		return nil, toConnectError(procedure, err)
	}

	slog.Info("ListApplications successful", "user_id", p.UserID, "count", len(apps))

	return connect.NewResponse(&api.ListApplicationsResponse{
		Applications: toAPIApplications(apps),
	}), nil
}
