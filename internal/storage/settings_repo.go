package storage

import (
	"context"
	"database/sql"
	"fmt"
)

const adminFlagKey = "is_admin"

// SettingsRepo is a small key-value table for app flags.
type SettingsRepo struct {
	db DBTX
}

func NewSettingsRepo(db DBTX) *SettingsRepo {
	return &SettingsRepo{db: db}
}

func (r *SettingsRepo) Get(ctx context.Context, key string) (string, bool, error) {
	row := r.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key)
	var v string
	if err := row.Scan(&v); err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		return "", false, fmt.Errorf("settings get: %w", err)
	}
	return v, true, nil
}

func (r *SettingsRepo) Set(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("settings set: %w", err)
	}
	return nil
}

// GetAdminFlag reports whether admin mode is on. Missing means off.
func (r *SettingsRepo) GetAdminFlag(ctx context.Context) (bool, error) {
	v, ok, err := r.Get(ctx, adminFlagKey)
	if err != nil {
		return false, err
	}
	return ok && v == "true", nil
}

func (r *SettingsRepo) SetAdminFlag(ctx context.Context, on bool) error {
	v := "false"
	if on {
		v = "true"
	}
	return r.Set(ctx, adminFlagKey, v)
}
