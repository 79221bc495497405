package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DefaultUsername is given to the local user created on first use.
const DefaultUsername = "rookie"

type UserRepo struct {
	db DBTX
}

func NewUserRepo(db DBTX) *UserRepo {
	return &UserRepo{db: db}
}

func (r *UserRepo) Get(ctx context.Context, id string) (*User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, username, xp, level, streak, last_active_date,
			badges, upvoted_mission_ids, daily_report_count, created_at
		FROM users
		WHERE id = ?
	`, id)
	return scanUser(row)
}

// GetMain returns the local user record, or nil when none exists yet.
func (r *UserRepo) GetMain(ctx context.Context) (*User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, username, xp, level, streak, last_active_date,
			badges, upvoted_mission_ids, daily_report_count, created_at
		FROM users
		ORDER BY created_at ASC, id ASC
		LIMIT 1
	`)
	return scanUser(row)
}

// GetOrCreateMain returns the local user, creating a fresh record on
// first app use.
func (r *UserRepo) GetOrCreateMain(ctx context.Context) (*User, error) {
	u, err := r.GetMain(ctx)
	if err != nil {
		return nil, err
	}
	if u != nil {
		return u, nil
	}

	id := uuid.NewString()
	if _, err := r.db.ExecContext(ctx, `
		INSERT INTO users (id, username, created_at) VALUES (?, ?, ?)
	`, id, DefaultUsername, time.Now().UTC()); err != nil {
		return nil, fmt.Errorf("user insert: %w", err)
	}
	return r.Get(ctx, id)
}

func (r *UserRepo) Update(ctx context.Context, u *User) error {
	badges, err := marshalStrings(u.Badges)
	if err != nil {
		return fmt.Errorf("marshal badges: %w", err)
	}
	upvoted, err := marshalStrings(u.UpvotedMissionIDs)
	if err != nil {
		return fmt.Errorf("marshal upvoted mission ids: %w", err)
	}
	daily, err := marshalCounts(u.DailyReportCount)
	if err != nil {
		return fmt.Errorf("marshal daily report count: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		UPDATE users
		SET username = ?, xp = ?, level = ?, streak = ?, last_active_date = ?,
			badges = ?, upvoted_mission_ids = ?, daily_report_count = ?
		WHERE id = ?
	`, u.Username, u.XP, u.Level, u.Streak, nullableString(u.LastActiveDate), badges, upvoted, daily, u.ID)
	if err != nil {
		return fmt.Errorf("user update: %w", err)
	}
	return nil
}

func scanUser(row scanner) (*User, error) {
	var (
		u          User
		lastActive sql.NullString
		badges     sql.NullString
		upvoted    sql.NullString
		daily      sql.NullString
	)
	if err := row.Scan(&u.ID, &u.Username, &u.XP, &u.Level, &u.Streak, &lastActive, &badges, &upvoted, &daily, &u.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("user scan: %w", err)
	}

	u.LastActiveDate = lastActive.String

	var err error
	if u.Badges, err = unmarshalStrings(badges); err != nil {
		return nil, fmt.Errorf("unmarshal badges: %w", err)
	}
	if u.UpvotedMissionIDs, err = unmarshalStrings(upvoted); err != nil {
		return nil, fmt.Errorf("unmarshal upvoted mission ids: %w", err)
	}
	if u.DailyReportCount, err = unmarshalCounts(daily); err != nil {
		return nil, fmt.Errorf("unmarshal daily report count: %w", err)
	}
	return &u, nil
}

func marshalStrings(v []string) (*string, error) {
	if len(v) == 0 {
		return nil, nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	s := string(data)
	return &s, nil
}

func unmarshalStrings(raw sql.NullString) ([]string, error) {
	if !raw.Valid || raw.String == "" {
		return nil, nil
	}
	var out []string
	if err := json.Unmarshal([]byte(raw.String), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func marshalCounts(v map[string]int) (*string, error) {
	if len(v) == 0 {
		return nil, nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	s := string(data)
	return &s, nil
}

func unmarshalCounts(raw sql.NullString) (map[string]int, error) {
	if !raw.Valid || raw.String == "" {
		return nil, nil
	}
	out := map[string]int{}
	if err := json.Unmarshal([]byte(raw.String), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
