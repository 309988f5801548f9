package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"zapis/internal/model"
)

// GetSetting returns the raw value for a settings key.
func (db *DB) GetSetting(ctx context.Context, key string) (string, error) {
	var value string
	err := db.QueryRowContext(ctx,
		"SELECT value FROM admin_settings WHERE key = ?", key,
	).Scan(&value)
	if err != nil {
		return "", err
	}
	return value, nil
}

// SetSetting creates or replaces a settings key.
func (db *DB) SetSetting(ctx context.Context, key, value string) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO admin_settings (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("set setting %s: %w", key, err)
	}
	return nil
}

// GetWorkCycleSettings loads the work cycle anchor. A missing or unparsable
// setting falls back to the built-in default anchor and is never fatal; the
// returned error, if any, only signals the degradation to the caller.
func (db *DB) GetWorkCycleSettings(ctx context.Context) (model.WorkCycleSettings, error) {
	value, err := db.GetSetting(ctx, model.SettingWorkCycleStart)
	if errors.Is(err, sql.ErrNoRows) {
		return model.WorkCycleSettings{AnchorDate: model.DefaultAnchorDate}, nil
	}
	if err != nil {
		return model.WorkCycleSettings{AnchorDate: model.DefaultAnchorDate},
			fmt.Errorf("load %s: %w", model.SettingWorkCycleStart, err)
	}
	return model.ParseWorkCycleSettings(value), nil
}

// SetWorkCycleStart stores a new cycle anchor date.
func (db *DB) SetWorkCycleStart(ctx context.Context, value string) error {
	if _, err := model.ParseDate(value); err != nil {
		return fmt.Errorf("invalid work_cycle_start %q: %w", value, err)
	}
	return db.SetSetting(ctx, model.SettingWorkCycleStart, value)
}
