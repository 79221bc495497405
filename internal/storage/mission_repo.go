package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type MissionRepo struct {
	db DBTX
}

func NewMissionRepo(db DBTX) *MissionRepo {
	return &MissionRepo{db: db}
}

func (r *MissionRepo) Insert(ctx context.Context, m *Mission) error {
	before, err := marshalStrings(m.PhotosBefore)
	if err != nil {
		return fmt.Errorf("marshal photos_before: %w", err)
	}
	after, err := marshalStrings(m.PhotosAfter)
	if err != nil {
		return fmt.Errorf("marshal photos_after: %w", err)
	}
	if before == nil {
		empty := "[]"
		before = &empty
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO missions (
			id, title, description, status,
			lat, lng, trash_type, est_bags,
			reporter_id, claimed_by_user_id, upvotes,
			photos_before, photos_after,
			created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, m.ID, m.Title, m.Description, m.Status,
		m.Lat, m.Lng, m.TrashType, m.EstBags,
		m.ReporterID, m.ClaimedByUserID, m.Upvotes,
		before, after,
		m.CreatedAt, m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("mission insert: %w", err)
	}
	return nil
}

func (r *MissionRepo) Get(ctx context.Context, id string) (*Mission, error) {
	row := r.db.QueryRowContext(ctx, missionSelect+` WHERE id = ?`, id)
	return scanMission(row)
}

func (r *MissionRepo) ListAll(ctx context.Context) ([]Mission, error) {
	return r.list(ctx, missionSelect+` ORDER BY created_at ASC, id ASC`)
}

func (r *MissionRepo) ListByStatus(ctx context.Context, status string) ([]Mission, error) {
	return r.list(ctx, missionSelect+` WHERE status = ? ORDER BY created_at ASC, id ASC`, status)
}

func (r *MissionRepo) list(ctx context.Context, query string, args ...any) ([]Mission, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("mission list: %w", err)
	}
	defer rows.Close()

	var out []Mission
	for rows.Next() {
		m, err := scanMission(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("mission list rows: %w", err)
	}
	return out, nil
}

func (r *MissionRepo) Count(ctx context.Context) (int, error) {
	row := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM missions`)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("mission count: %w", err)
	}
	return n, nil
}

// CountReportedBy counts every mission the user reported, any status.
func (r *MissionRepo) CountReportedBy(ctx context.Context, userID string) (int, error) {
	row := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM missions WHERE reporter_id = ?`, userID)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("mission reported count: %w", err)
	}
	return n, nil
}

// CountCleanedBy counts missions the user claimed and brought to
// cleaned. Cleanup badges key off this number.
func (r *MissionRepo) CountCleanedBy(ctx context.Context, userID string) (int, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM missions WHERE status = 'cleaned' AND claimed_by_user_id = ?
	`, userID)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("mission cleaned count: %w", err)
	}
	return n, nil
}

// MarkClaimed moves a mission to progress on the needs->progress
// transition. The claimant is immutable afterwards.
func (r *MissionRepo) MarkClaimed(ctx context.Context, id string, userID string, at time.Time) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE missions SET status = 'progress', claimed_by_user_id = ?, updated_at = ? WHERE id = ?
	`, userID, at, id)
	if err != nil {
		return fmt.Errorf("mission mark claimed: %w", err)
	}
	return nil
}

// MarkCleaned moves a mission to cleaned and stores its after photos.
func (r *MissionRepo) MarkCleaned(ctx context.Context, id string, photosAfter []string, at time.Time) error {
	after, err := marshalStrings(photosAfter)
	if err != nil {
		return fmt.Errorf("marshal photos_after: %w", err)
	}
	_, err = r.db.ExecContext(ctx, `
		UPDATE missions SET status = 'cleaned', photos_after = ?, updated_at = ? WHERE id = ?
	`, after, at, id)
	if err != nil {
		return fmt.Errorf("mission mark cleaned: %w", err)
	}
	return nil
}

func (r *MissionRepo) SetUpvotes(ctx context.Context, id string, upvotes int) error {
	_, err := r.db.ExecContext(ctx, `UPDATE missions SET upvotes = ? WHERE id = ?`, upvotes, id)
	if err != nil {
		return fmt.Errorf("mission set upvotes: %w", err)
	}
	return nil
}

const missionSelect = `
	SELECT id, title, description, status,
		lat, lng, trash_type, est_bags,
		reporter_id, claimed_by_user_id, upvotes,
		photos_before, photos_after,
		created_at, updated_at
	FROM missions`

type scanner interface {
	Scan(dest ...any) error
}

func scanMission(row scanner) (*Mission, error) {
	var (
		m         Mission
		claimedBy sql.NullString
		before    sql.NullString
		after     sql.NullString
	)
	if err := row.Scan(
		&m.ID, &m.Title, &m.Description, &m.Status,
		&m.Lat, &m.Lng, &m.TrashType, &m.EstBags,
		&m.ReporterID, &claimedBy, &m.Upvotes,
		&before, &after,
		&m.CreatedAt, &m.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("mission scan: %w", err)
	}

	if claimedBy.Valid {
		v := claimedBy.String
		m.ClaimedByUserID = &v
	}

	var err error
	if m.PhotosBefore, err = unmarshalStrings(before); err != nil {
		return nil, fmt.Errorf("unmarshal photos_before: %w", err)
	}
	if m.PhotosAfter, err = unmarshalStrings(after); err != nil {
		return nil, fmt.Errorf("unmarshal photos_after: %w", err)
	}
	return &m, nil
}
