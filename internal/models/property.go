package models

import "time"

// PropertyType classifies a rental unit.
type PropertyType string

const (
	PropertyTypeRooms     PropertyType = "Rooms"
	PropertyTypeTinyhouse PropertyType = "Tinyhouse"
	PropertyTypeApartment PropertyType = "Apartment"
	PropertyTypeVilla     PropertyType = "Villa"
	PropertyTypeTownhouse PropertyType = "Townhouse"
	PropertyTypeCottage   PropertyType = "Cottage"
)

// Amenity is a feature a property may offer.
type Amenity string

const (
	AmenityWasherDryer       Amenity = "WasherDryer"
	AmenityAirConditioning   Amenity = "AirConditioning"
	AmenityDishwasher        Amenity = "Dishwasher"
	AmenityHighSpeedInternet Amenity = "HighSpeedInternet"
	AmenityHardwoodFloors    Amenity = "HardwoodFloors"
	AmenityWalkInClosets     Amenity = "WalkInClosets"
	AmenityMicrowave         Amenity = "Microwave"
	AmenityRefrigerator      Amenity = "Refrigerator"
	AmenityPool              Amenity = "Pool"
	AmenityGym               Amenity = "Gym"
	AmenityParking           Amenity = "Parking"
	AmenityPetsAllowed       Amenity = "PetsAllowed"
	AmenityWiFi              Amenity = "WiFi"
)

// Location is the postal address and coordinates of a property.
// Coordinates are supplied by the caller; no geocoding happens here.
type Location struct {
	Address    string
	City       string
	State      string
	Country    string
	PostalCode string
	Latitude   float64
	Longitude  float64
}

// Property represents a rental unit listed by a manager.
type Property struct {
	// ID is the unique identifier for the property (UUID format).
	ID string

	// ManagerUserID is the owning manager. Immutable after creation.
	ManagerUserID string

	Name        string
	Description string

	// PricePerMonth becomes Lease.Rent when an application is approved.
	PricePerMonth float64

	// SecurityDeposit becomes Lease.Deposit when an application is approved.
	SecurityDeposit float64

	ApplicationFee    float64
	IsPetsAllowed     bool
	IsParkingIncluded bool
	Amenities         []Amenity
	Highlights        []string
	Beds              int
	Baths             float64
	SquareFeet        int
	PropertyType      PropertyType
	Location          Location

	// PostedDate is when the listing was created.
	PostedDate time.Time
}
