package sqlstore

import (
	"context"
	"fmt"

	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/models"
)

// AddFavorite connects a property to the tenant's favorites.
func (s *queries) AddFavorite(ctx context.Context, tenantUserID, propertyID string) error {
	_, err := s.exec(ctx,
		`INSERT INTO tenant_favorites (tenant_user_id, property_id) VALUES (?, ?) ON CONFLICT DO NOTHING`,
		tenantUserID, propertyID,
	)
	if err != nil {
		return fmt.Errorf("failed to add favorite: %w", err)
	}
	return nil
}

// RemoveFavorite disconnects a property from the tenant's favorites.
func (s *queries) RemoveFavorite(ctx context.Context, tenantUserID, propertyID string) error {
	_, err := s.exec(ctx,
		`DELETE FROM tenant_favorites WHERE tenant_user_id = ? AND property_id = ?`,
		tenantUserID, propertyID,
	)
	if err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	return nil
}

// ListFavorites returns the tenant's favorite properties, newest first.
func (s *queries) ListFavorites(ctx context.Context, tenantUserID string) ([]*models.Property, error) {
	return s.queryProperties(ctx,
		`SELECT `+propertyColumns+` FROM properties p
		 JOIN tenant_favorites f ON f.property_id = p.id
		 WHERE f.tenant_user_id = ?
		 ORDER BY p.posted_date DESC, p.id`,
		tenantUserID)
}
