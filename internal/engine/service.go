package engine

import (
	"context"
	"database/sql"
	"time"

	"trashquest/internal/storage"
)

type Service struct {
	db       *sql.DB
	users    *storage.UserRepo
	missions *storage.MissionRepo
	settings *storage.SettingsRepo
	now      func() time.Time
}

func NewService(db *sql.DB) *Service {
	return &Service{
		db:       db,
		users:    storage.NewUserRepo(db),
		missions: storage.NewMissionRepo(db),
		settings: storage.NewSettingsRepo(db),
		now:      time.Now,
	}
}

func (s *Service) UserRepo() *storage.UserRepo         { return s.users }
func (s *Service) MissionRepo() *storage.MissionRepo   { return s.missions }
func (s *Service) SettingsRepo() *storage.SettingsRepo { return s.settings }

// SetClock overrides the time source. Streak and rate-limit rules are
// calendar-date driven, so tests pin the clock instead of sleeping.
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

// Today returns the current ISO calendar date in UTC.
func (s *Service) Today() string {
	return s.now().UTC().Format(DateLayout)
}

// getUser loads the local user, creating it on first use. Level is
// derived state; a drifted record is repaired before anything reads it.
func (s *Service) getUser(ctx context.Context) (*storage.User, error) {
	u, err := s.users.GetOrCreateMain(ctx)
	if err != nil {
		return nil, err
	}
	if computed := LevelForXP(u.XP); u.Level != computed {
		u.Level = computed
		if err := s.users.Update(ctx, u); err != nil {
			return nil, err
		}
	}
	return u, nil
}

// CurrentUser exposes the local user record read-only to the UI layer.
func (s *Service) CurrentUser(ctx context.Context) (*storage.User, error) {
	return s.getUser(ctx)
}

// IsAdmin reports the stored admin flag.
func (s *Service) IsAdmin(ctx context.Context) (bool, error) {
	return s.settings.GetAdminFlag(ctx)
}

// SetAdmin stores the admin flag.
func (s *Service) SetAdmin(ctx context.Context, on bool) error {
	return s.settings.SetAdminFlag(ctx, on)
}
