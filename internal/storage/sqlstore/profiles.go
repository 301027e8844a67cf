package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/models"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/storage"
)

// profileTable maps a role to the table holding its profiles.
func profileTable(role models.Role) (string, error) {
	switch role {
	case models.RoleTenant:
		return "tenants", nil
	case models.RoleManager:
		return "managers", nil
	default:
		return "", fmt.Errorf("unknown role %q", role)
	}
}

// CreateProfile inserts a new tenant or manager profile.
func (s *queries) CreateProfile(ctx context.Context, profile *models.Profile) error {
	table, err := profileTable(profile.Role)
	if err != nil {
		return err
	}

	_, err = s.exec(ctx,
		`INSERT INTO `+table+` (user_id, name, email, phone_number) VALUES (?, ?, ?, ?)`,
		profile.UserID, profile.Name, profile.Email, profile.PhoneNumber,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("%s profile %s already exists: %w", profile.Role, profile.UserID, storage.ErrConflict)
	}
	if err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}

	return nil
}

// GetProfile retrieves a profile by role and user ID.
func (s *queries) GetProfile(ctx context.Context, role models.Role, userID string) (*models.Profile, error) {
	table, err := profileTable(role)
	if err != nil {
		return nil, err
	}

	profile := &models.Profile{Role: role}
	err = s.queryRow(ctx,
		`SELECT user_id, name, email, phone_number FROM `+table+` WHERE user_id = ?`,
		userID,
	).Scan(&profile.UserID, &profile.Name, &profile.Email, &profile.PhoneNumber)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s profile %s: %w", role, userID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return profile, nil
}

// UpdateProfile overwrites the contact fields of an existing profile.
func (s *queries) UpdateProfile(ctx context.Context, profile *models.Profile) error {
	table, err := profileTable(profile.Role)
	if err != nil {
		return err
	}

	res, err := s.exec(ctx,
		`UPDATE `+table+` SET name = ?, email = ?, phone_number = ? WHERE user_id = ?`,
		profile.Name, profile.Email, profile.PhoneNumber, profile.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s profile %s: %w", profile.Role, profile.UserID, storage.ErrNotFound)
	}

	return nil
}

// profilesByIDs returns the role's profiles keyed by user ID.
// IDs without a profile are omitted.
func (s *queries) profilesByIDs(ctx context.Context, role models.Role, ids []string) (map[string]*models.Profile, error) {
	profiles := make(map[string]*models.Profile, len(ids))
	if len(ids) == 0 {
		return profiles, nil
	}

	table, err := profileTable(role)
	if err != nil {
		return nil, err
	}

	query, args, err := expandIn(
		`SELECT user_id, name, email, phone_number FROM `+table+` WHERE user_id IN (?)`, ids)
	if err != nil {
		return nil, err
	}

	rows, err := s.query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get profiles by IDs: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		p := &models.Profile{Role: role}
		if err := rows.Scan(&p.UserID, &p.Name, &p.Email, &p.PhoneNumber); err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		profiles[p.UserID] = p
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating profiles: %w", err)
	}

	return profiles, nil
}
