package service

import (
	"context"

	"connectrpc.com/connect"

	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/apperr"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/auth"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/lifecycle"
	"github.com/Ahmed-Ehab99/rentiful-realestate/pkg/api"
	"github.com/Ahmed-Ehab99/rentiful-realestate/pkg/api/apiconnect"
)

var _ apiconnect.LeaseServiceHandler = (*LeaseService)(nil)

// LeaseService implements the Connect LeaseService.
type LeaseService struct {
	engine *lifecycle.Engine
}

// NewLeaseService creates a new LeaseService backed by the lifecycle engine.
func NewLeaseService(engine *lifecycle.Engine) *LeaseService {
	return &LeaseService{engine: engine}
}

// NextPaymentDate returns the first monthly anniversary of the start date
// that is not before now. It needs no principal.
func (s *LeaseService) NextPaymentDate(ctx context.Context, req *connect.Request[api.NextPaymentDateRequest]) (*connect.Response[api.NextPaymentDateResponse], error) {
	if req.Msg.LeaseStartDate.IsZero() {
		err := apperr.Validation(map[string]string{"leaseStartDate": "is required"})
		return nil, toConnectError(apiconnect.LeaseServiceNextPaymentDateProcedure, err)
	}
	return connect.NewResponse(&api.NextPaymentDateResponse{
		NextPaymentDate: s.engine.NextPaymentDate(req.Msg.LeaseStartDate),
	}), nil
}

// ListLeases returns the caller's leases: as tenant, or on their properties
// as manager.
func (s *LeaseService) ListLeases(ctx context.Context, req *connect.Request[api.ListLeasesRequest]) (*connect.Response[api.ListLeasesResponse], error) {
	procedure := apiconnect.LeaseServiceListLeasesProcedure

	p, err := auth.ResolvePrincipal(ctx)
	if err != nil {
		return nil, toConnectError(procedure, err)
	}

	leases, err := s.engine.ListLeases(ctx, p)
	if err != nil {
		return nil, toConnectError(procedure, err)
	}

	return connect.NewResponse(&api.ListLeasesResponse{
		Leases: toAPILeases(leases),
	}), nil
}

// ListLeasePayments returns the realized payments of a lease the caller can see.
func (s *LeaseService) ListLeasePayments(ctx context.Context, req *connect.Request[api.ListLeasePaymentsRequest]) (*connect.Response[api.ListLeasePaymentsResponse], error) {
	procedure := apiconnect.LeaseServiceListLeasePaymentsProcedure

	p, err := auth.ResolvePrincipal(ctx)
	if err != nil {
		return nil, toConnectError(procedure, err)
	}

	payments, err := s.engine.ListLeasePayments(ctx, p, req.Msg.LeaseID)
	if err != nil {
		return nil, toConnectError(procedure, err)
	}

	return connect.NewResponse(&api.ListLeasePaymentsResponse{
		Payments: toAPIPayments(payments),
	}), nil
}
