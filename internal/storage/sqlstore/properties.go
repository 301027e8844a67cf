package sqlstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/filter"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/models"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/storage"
)

const propertyColumns = `p.id, p.manager_user_id, p.name, p.description, p.price_per_month,
	p.security_deposit, p.application_fee, p.is_pets_allowed, p.is_parking_included, p.highlights,
	p.beds, p.baths, p.square_feet, p.property_type, p.address, p.city, p.state, p.country,
	p.postal_code, p.latitude, p.longitude, p.posted_date`

// CreateProperty wraps the insert in a transaction so the property and its
// amenities land together.
func (s *Store) CreateProperty(ctx context.Context, property *models.Property) error {
	return s.WithTx(ctx, func(q storage.Queries) error {
		return q.CreateProperty(ctx, property)
	})
}

// CreateProperty persists a new property and its amenity set.
func (s *queries) CreateProperty(ctx context.Context, property *models.Property) error {
	if property.ID == "" {
		property.ID = uuid.New().String()
	}
	if property.PostedDate.IsZero() {
		property.PostedDate = time.Now().UTC()
	}

	highlights := property.Highlights
	if highlights == nil {
		highlights = []string{}
	}
	highlightsJSON, err := json.Marshal(highlights)
	if err != nil {
		return fmt.Errorf("failed to encode highlights: %w", err)
	}

	loc := property.Location
	_, err = s.exec(ctx,
		`INSERT INTO properties (id, manager_user_id, name, description, price_per_month,
			security_deposit, application_fee, is_pets_allowed, is_parking_included, highlights,
			beds, baths, square_feet, property_type, address, city, state, country,
			postal_code, latitude, longitude, posted_date)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		property.ID, property.ManagerUserID, property.Name, property.Description, property.PricePerMonth,
		property.SecurityDeposit, property.ApplicationFee, property.IsPetsAllowed, property.IsParkingIncluded,
		string(highlightsJSON), property.Beds, property.Baths, property.SquareFeet, string(property.PropertyType),
		loc.Address, loc.City, loc.State, loc.Country, loc.PostalCode, loc.Latitude, loc.Longitude,
		unix(property.PostedDate),
	)
	if err != nil {
		return fmt.Errorf("failed to insert property: %w", err)
	}

	for _, a := range property.Amenities {
		_, err := s.exec(ctx,
			`INSERT INTO property_amenities (property_id, amenity) VALUES (?, ?) ON CONFLICT DO NOTHING`,
			property.ID, string(a),
		)
		if err != nil {
			return fmt.Errorf("failed to insert amenity: %w", err)
		}
	}

	return nil
}

// GetProperty retrieves a property with its amenities.
func (s *queries) GetProperty(ctx context.Context, propertyID string) (*models.Property, error) {
	properties, err := s.queryProperties(ctx,
		`SELECT `+propertyColumns+` FROM properties p WHERE p.id = ?`, propertyID)
	if err != nil {
		return nil, err
	}
	if len(properties) == 0 {
		return nil, fmt.Errorf("property %s: %w", propertyID, storage.ErrNotFound)
	}
	return properties[0], nil
}

// ListProperties returns properties matching pred, newest first.
func (s *queries) ListProperties(ctx context.Context, pred filter.Predicate) ([]*models.Property, error) {
	where, args := pred.Where()
	return s.queryProperties(ctx,
		`SELECT `+propertyColumns+` FROM properties p WHERE `+where+` ORDER BY p.posted_date DESC, p.id`,
		args...)
}

// ListPropertiesByManager returns the manager's properties, newest first.
func (s *queries) ListPropertiesByManager(ctx context.Context, managerUserID string) ([]*models.Property, error) {
	return s.queryProperties(ctx,
		`SELECT `+propertyColumns+` FROM properties p WHERE p.manager_user_id = ? ORDER BY p.posted_date DESC, p.id`,
		managerUserID)
}

// AddResident links a tenant to a property as a current resident.
func (s *queries) AddResident(ctx context.Context, propertyID, tenantUserID string) error {
	_, err := s.exec(ctx,
		`INSERT INTO property_residents (property_id, tenant_user_id) VALUES (?, ?) ON CONFLICT DO NOTHING`,
		propertyID, tenantUserID,
	)
	if err != nil {
		return fmt.Errorf("failed to add resident: %w", err)
	}
	return nil
}

// ListResidents returns the user IDs of the property's current residents.
func (s *queries) ListResidents(ctx context.Context, propertyID string) ([]string, error) {
	rows, err := s.query(ctx,
		`SELECT tenant_user_id FROM property_residents WHERE property_id = ? ORDER BY tenant_user_id`,
		propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list residents: %w", err)
	}
	defer rows.Close()

	var residents []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan resident: %w", err)
		}
		residents = append(residents, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating residents: %w", err)
	}

	return residents, nil
}

// ListResidences returns the properties the tenant currently lives in.
func (s *queries) ListResidences(ctx context.Context, tenantUserID string) ([]*models.Property, error) {
	return s.queryProperties(ctx,
		`SELECT `+propertyColumns+` FROM properties p
		 JOIN property_residents r ON r.property_id = p.id
		 WHERE r.tenant_user_id = ?
		 ORDER BY p.posted_date DESC, p.id`,
		tenantUserID)
}

// propertiesByIDs returns properties keyed by ID. Missing IDs are omitted.
func (s *queries) propertiesByIDs(ctx context.Context, ids []string) (map[string]*models.Property, error) {
	out := make(map[string]*models.Property, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	query, args, err := expandIn(`SELECT `+propertyColumns+` FROM properties p WHERE p.id IN (?)`, ids)
	if err != nil {
		return nil, err
	}

	properties, err := s.queryProperties(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	for _, p := range properties {
		out[p.ID] = p
	}
	return out, nil
}

// queryProperties runs a SELECT over propertyColumns and attaches amenities.
func (s *queries) queryProperties(ctx context.Context, query string, args ...any) ([]*models.Property, error) {
	rows, err := s.query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query properties: %w", err)
	}
	defer rows.Close()

	var properties []*models.Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		properties = append(properties, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating properties: %w", err)
	}
	rows.Close()

	if err := s.attachAmenities(ctx, properties); err != nil {
		return nil, err
	}

	return properties, nil
}

// attachAmenities loads amenities for all properties in one query.
func (s *queries) attachAmenities(ctx context.Context, properties []*models.Property) error {
	if len(properties) == 0 {
		return nil
	}

	byID := make(map[string]*models.Property, len(properties))
	ids := make([]string, 0, len(properties))
	for _, p := range properties {
		if _, seen := byID[p.ID]; !seen {
			ids = append(ids, p.ID)
		}
		byID[p.ID] = p
	}

	query, args, err := expandIn(
		`SELECT property_id, amenity FROM property_amenities WHERE property_id IN (?) ORDER BY amenity`, ids)
	if err != nil {
		return err
	}

	rows, err := s.query(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to get amenities: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var propertyID, amenity string
		if err := rows.Scan(&propertyID, &amenity); err != nil {
			return fmt.Errorf("failed to scan amenity: %w", err)
		}
		if p, ok := byID[propertyID]; ok {
			p.Amenities = append(p.Amenities, models.Amenity(amenity))
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating amenities: %w", err)
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProperty(row scanner) (*models.Property, error) {
	var (
		p          models.Property
		highlights string
		propType   string
		posted     int64
	)

	err := row.Scan(
		&p.ID, &p.ManagerUserID, &p.Name, &p.Description, &p.PricePerMonth,
		&p.SecurityDeposit, &p.ApplicationFee, &p.IsPetsAllowed, &p.IsParkingIncluded, &highlights,
		&p.Beds, &p.Baths, &p.SquareFeet, &propType, &p.Location.Address, &p.Location.City,
		&p.Location.State, &p.Location.Country, &p.Location.PostalCode, &p.Location.Latitude,
		&p.Location.Longitude, &posted,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan property: %w", err)
	}

	if err := json.Unmarshal([]byte(highlights), &p.Highlights); err != nil {
		return nil, fmt.Errorf("failed to decode highlights: %w", err)
	}
	p.PropertyType = models.PropertyType(propType)
	p.PostedDate = fromUnix(posted)

	return &p, nil
}
