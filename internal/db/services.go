package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"zapis/internal/model"
)

// ListServices returns the service catalogue ordered by category then name,
// the same ordering the booking screen shows. Inactive services are kept
// when activeOnly is false so old bookings still resolve their durations.
func (db *DB) ListServices(ctx context.Context, activeOnly bool) ([]model.Service, error) {
	query := `
		SELECT id, name, category, price, duration, is_active, created_at
		FROM services`
	if activeOnly {
		query += ` WHERE is_active = 1`
	}
	query += ` ORDER BY category ASC, name ASC`

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer rows.Close()

	var services []model.Service
	for rows.Next() {
		var s model.Service
		if err := rows.Scan(&s.ID, &s.Name, &s.Category, &s.Price, &s.Duration, &s.IsActive, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		services = append(services, s)
	}
	return services, rows.Err()
}

// CreateService inserts a new catalogue entry, assigning an ID when absent.
func (db *DB) CreateService(ctx context.Context, s *model.Service) error {
	if s == nil {
		return fmt.Errorf("service is nil")
	}
	if s.Name == "" || s.Category == "" {
		return fmt.Errorf("service name and category are required")
	}
	if s.Duration <= 0 {
		return fmt.Errorf("service duration must be positive")
	}
	if s.ID == "" {
		s.ID = uuid.NewString()
	}

	_, err := db.ExecContext(ctx, `
		INSERT INTO services (id, name, category, price, duration, is_active)
		VALUES (?, ?, ?, ?, ?, 1)`,
		s.ID, s.Name, s.Category, s.Price, s.Duration,
	)
	if err != nil {
		return fmt.Errorf("create service: %w", err)
	}
	return nil
}

// DeactivateService hides a service from new bookings without deleting it.
func (db *DB) DeactivateService(ctx context.Context, id string) error {
	res, err := db.ExecContext(ctx, "UPDATE services SET is_active = 0 WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deactivate service: %w", err)
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
