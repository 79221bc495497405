package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			username TEXT NOT NULL,
			xp INTEGER DEFAULT 0,
			level INTEGER DEFAULT 1,
			streak INTEGER DEFAULT 0,
			last_active_date TEXT,
			badges TEXT,
			upvoted_mission_ids TEXT,
			daily_report_count TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS missions (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT NOT NULL,
			status TEXT DEFAULT 'needs',

			lat REAL NOT NULL,
			lng REAL NOT NULL,
			trash_type TEXT NOT NULL,
			est_bags INTEGER NOT NULL,

			reporter_id TEXT NOT NULL,
			claimed_by_user_id TEXT,
			upvotes INTEGER DEFAULT 0,

			photos_before TEXT NOT NULL,
			photos_after TEXT,

			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_missions_status ON missions(status);`,
		`CREATE INDEX IF NOT EXISTS idx_missions_reporter_id ON missions(reporter_id);`,
		`CREATE INDEX IF NOT EXISTS idx_missions_claimed_by ON missions(claimed_by_user_id);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	// Bring pre-xp user tables forward (ignore if column already exists).
	alterStmts := []string{
		`ALTER TABLE users ADD COLUMN xp INTEGER DEFAULT 0;`,
	}
	for _, stmt := range alterStmts {
		_, err := db.ExecContext(ctx, stmt)
		if err != nil && !strings.Contains(err.Error(), "duplicate column") {
			return fmt.Errorf("migrate alter: %w", err)
		}
	}

	// One-time collapse of the legacy points mirror into xp. Old records
	// carried both fields dual-written; xp alone is authoritative now.
	// Fresh databases have no points column at all.
	if _, err := db.ExecContext(ctx, `UPDATE users SET xp = points WHERE xp = 0 AND points > 0;`); err != nil {
		if !strings.Contains(err.Error(), "no such column") {
			return fmt.Errorf("migrate points: %w", err)
		}
	}

	return nil
}
