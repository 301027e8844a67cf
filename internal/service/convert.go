package service

import (
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/models"
	"github.com/Ahmed-Ehab99/rentiful-realestate/pkg/api"
)

func toAPIProperty(p *models.Property) *api.Property {
	if p == nil {
		return nil
	}
	amenities := make([]string, len(p.Amenities))
	for i, a := range p.Amenities {
		amenities[i] = string(a)
	}
	highlights := p.Highlights
	if highlights == nil {
		highlights = []string{}
	}
	return &api.Property{
		ID:                p.ID,
		ManagerUserID:     p.ManagerUserID,
		Name:              p.Name,
		Description:       p.Description,
		PricePerMonth:     p.PricePerMonth,
		SecurityDeposit:   p.SecurityDeposit,
		ApplicationFee:    p.ApplicationFee,
		IsPetsAllowed:     p.IsPetsAllowed,
		IsParkingIncluded: p.IsParkingIncluded,
		Amenities:         amenities,
		Highlights:        highlights,
		Beds:              p.Beds,
		Baths:             p.Baths,
		SquareFeet:        p.SquareFeet,
		PropertyType:      string(p.PropertyType),
		Location: api.Location{
			Address:    p.Location.Address,
			City:       p.Location.City,
			State:      p.Location.State,
			Country:    p.Location.Country,
			PostalCode: p.Location.PostalCode,
			Latitude:   p.Location.Latitude,
			Longitude:  p.Location.Longitude,
		},
		PostedDate: p.PostedDate,
	}
}

func toAPIProperties(props []*models.Property) []*api.Property {
	out := make([]*api.Property, len(props))
	for i, p := range props {
		out[i] = toAPIProperty(p)
	}
	return out
}

func toAPIProfile(p *models.Profile) *api.Profile {
	if p == nil {
		return nil
	}
	return &api.Profile{
		UserID:      p.UserID,
		Role:        string(p.Role),
		Name:        p.Name,
		Email:       p.Email,
		PhoneNumber: p.PhoneNumber,
	}
}

func toAPILease(l *models.Lease) *api.Lease {
	if l == nil {
		return nil
	}
	return &api.Lease{
		ID:              l.ID,
		PropertyID:      l.PropertyID,
		TenantUserID:    l.TenantUserID,
		StartDate:       l.StartDate,
		EndDate:         l.EndDate,
		Rent:            l.Rent,
		Deposit:         l.Deposit,
		NextPaymentDate: l.NextPaymentDate,
	}
}

func toAPILeases(leases []*models.Lease) []*api.Lease {
	out := make([]*api.Lease, len(leases))
	for i, l := range leases {
		out[i] = toAPILease(l)
	}
	return out
}

func toAPIPayments(payments []*models.Payment) []*api.Payment {
	out := make([]*api.Payment, len(payments))
	for i, p := range payments {
		out[i] = &api.Payment{
			ID:            p.ID,
			LeaseID:       p.LeaseID,
			AmountDue:     p.AmountDue,
			AmountPaid:    p.AmountPaid,
			DueDate:       p.DueDate,
			PaymentStatus: string(p.Status),
		}
		if !p.PaymentDate.IsZero() {
			paid := p.PaymentDate
			out[i].PaymentDate = &paid
		}
	}
	return out
}

func toAPIApplication(a *models.Application) *api.Application {
	return &api.Application{
		ID:              a.ID,
		PropertyID:      a.PropertyID,
		TenantUserID:    a.TenantUserID,
		Status:          string(a.Status),
		ApplicationDate: a.ApplicationDate,
		Name:            a.Name,
		Email:           a.Email,
		PhoneNumber:     a.PhoneNumber,
		Message:         a.Message,
		LeaseID:         a.LeaseID,
		Property:        toAPIProperty(a.Property),
		Tenant:          toAPIProfile(a.Tenant),
		Lease:           toAPILease(a.Lease),
	}
}

func toAPIApplications(apps []*models.Application) []*api.Application {
	out := make([]*api.Application, len(apps))
	for i, a := range apps {
		out[i] = toAPIApplication(a)
	}
	return out
}
