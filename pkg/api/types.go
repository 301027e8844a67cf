package api

import "time"

type Location struct {
	Address    string  `json:"address"`
	City       string  `json:"city"`
	State      string  `json:"state"`
	Country    string  `json:"country"`
	PostalCode string  `json:"postalCode"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
}

type Property struct {
	ID                string    `json:"id"`
	ManagerUserID     string    `json:"managerUserId"`
	Name              string    `json:"name"`
	Description       string    `json:"description"`
	PricePerMonth     float64   `json:"pricePerMonth"`
	SecurityDeposit   float64   `json:"securityDeposit"`
	ApplicationFee    float64   `json:"applicationFee"`
	IsPetsAllowed     bool      `json:"isPetsAllowed"`
	IsParkingIncluded bool      `json:"isParkingIncluded"`
	Amenities         []string  `json:"amenities"`
	Highlights        []string  `json:"highlights"`
	Beds              int       `json:"beds"`
	Baths             float64   `json:"baths"`
	SquareFeet        int       `json:"squareFeet"`
	PropertyType      string    `json:"propertyType"`
	Location          Location  `json:"location"`
	PostedDate        time.Time `json:"postedDate"`
}

type Profile struct {
	UserID      string `json:"userId"`
	Role        string `json:"role"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

type Lease struct {
	ID              string    `json:"id"`
	PropertyID      string    `json:"propertyId"`
	TenantUserID    string    `json:"tenantUserId"`
	StartDate       time.Time `json:"startDate"`
	EndDate         time.Time `json:"endDate"`
	Rent            float64   `json:"rent"`
	Deposit         float64   `json:"deposit"`
	NextPaymentDate time.Time `json:"nextPaymentDate"`
}

type Payment struct {
	ID            string     `json:"id"`
	LeaseID       string     `json:"leaseId"`
	AmountDue     float64    `json:"amountDue"`
	AmountPaid    float64    `json:"amountPaid"`
	DueDate       time.Time  `json:"dueDate"`
	PaymentDate   *time.Time `json:"paymentDate,omitempty"`
	PaymentStatus string     `json:"paymentStatus"`
}

type Application struct {
	ID              string    `json:"id"`
	PropertyID      string    `json:"propertyId"`
	TenantUserID    string    `json:"tenantUserId"`
	Status          string    `json:"status"`
	ApplicationDate time.Time `json:"applicationDate"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	PhoneNumber     string    `json:"phoneNumber"`
	Message         string    `json:"message"`
	LeaseID         string    `json:"leaseId,omitempty"`
	Property        *Property `json:"property,omitempty"`
	Tenant          *Profile  `json:"tenant,omitempty"`
	Lease           *Lease    `json:"lease,omitempty"`
}

// ApplicationService

type SubmitApplicationRequest struct {
	PropertyID  string `json:"propertyId"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Message     string `json:"message"`
}

type SubmitApplicationResponse struct {
	Application *Application `json:"application"`
}

type TransitionApplicationRequest struct {
	ApplicationID string `json:"applicationId"`
	// Status is "Approved" or "Denied".
	Status string `json:"status"`
}

type TransitionApplicationResponse struct {
	Application *Application `json:"application"`
}

type ListApplicationsRequest struct{}

type ListApplicationsResponse struct {
	Applications []*Application `json:"applications"`
}

// PropertyService

// FilterPropertiesRequest carries sparse filters. Zero values and "any"
// impose no constraint.
type FilterPropertiesRequest struct {
	FavoriteIDs   []string `json:"favoriteIds,omitempty"`
	PriceMin      float64  `json:"priceMin,omitempty"`
	PriceMax      float64  `json:"priceMax,omitempty"`
	Beds          string   `json:"beds,omitempty"`
	Baths         string   `json:"baths,omitempty"`
	SquareFeetMin int      `json:"squareFeetMin,omitempty"`
	SquareFeetMax int      `json:"squareFeetMax,omitempty"`
	PropertyType  string   `json:"propertyType,omitempty"`
	Amenities     []string `json:"amenities,omitempty"`
	AvailableFrom string   `json:"availableFrom,omitempty"`
}

type FilterPropertiesResponse struct {
	Properties []*Property `json:"properties"`
}

type CreatePropertyRequest struct {
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	PricePerMonth     float64  `json:"pricePerMonth"`
	SecurityDeposit   float64  `json:"securityDeposit"`
	ApplicationFee    float64  `json:"applicationFee"`
	IsPetsAllowed     bool     `json:"isPetsAllowed"`
	IsParkingIncluded bool     `json:"isParkingIncluded"`
	Amenities         []string `json:"amenities"`
	Highlights        []string `json:"highlights"`
	Beds              int      `json:"beds"`
	Baths             float64  `json:"baths"`
	SquareFeet        int      `json:"squareFeet"`
	PropertyType      string   `json:"propertyType"`
	Location          Location `json:"location"`
}

type CreatePropertyResponse struct {
	Property *Property `json:"property"`
}

type GetPropertyRequest struct {
	PropertyID string `json:"propertyId"`
}

type GetPropertyResponse struct {
	Property *Property `json:"property"`
}

type ListManagerPropertiesRequest struct {
	ManagerUserID string `json:"managerUserId"`
}

type ListManagerPropertiesResponse struct {
	Properties []*Property `json:"properties"`
}

// TenantService

type ToggleFavoriteRequest struct {
	TenantUserID string `json:"tenantUserId"`
	PropertyID   string `json:"propertyId"`
	Add          bool   `json:"add"`
}

type ToggleFavoriteResponse struct {
	Favorites []*Property `json:"favorites"`
}

type ListFavoritesRequest struct {
	TenantUserID string `json:"tenantUserId"`
}

type ListFavoritesResponse struct {
	Favorites []*Property `json:"favorites"`
}

type ListResidencesRequest struct {
	TenantUserID string `json:"tenantUserId"`
}

type ListResidencesResponse struct {
	Properties []*Property `json:"properties"`
}

// LeaseService

type NextPaymentDateRequest struct {
	LeaseStartDate time.Time `json:"leaseStartDate"`
}

type NextPaymentDateResponse struct {
	NextPaymentDate time.Time `json:"nextPaymentDate"`
}

type ListLeasesRequest struct{}

type ListLeasesResponse struct {
	Leases []*Lease `json:"leases"`
}

type ListLeasePaymentsRequest struct {
	LeaseID string `json:"leaseId"`
}

type ListLeasePaymentsResponse struct {
	Payments []*Payment `json:"payments"`
}

// ProfileService

type CreateProfileRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

type CreateProfileResponse struct {
	Profile *Profile `json:"profile"`
}

type GetProfileRequest struct {
	UserID string `json:"userId"`
}

type GetProfileResponse struct {
	Profile *Profile `json:"profile"`
}

type UpdateProfileRequest struct {
	UserID      string `json:"userId"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

type UpdateProfileResponse struct {
	Profile *Profile `json:"profile"`
}
