package engine

import (
	"context"
	"database/sql"
	"unicode/utf8"

	"github.com/google/uuid"

	"trashquest/internal/storage"
)

const (
	minTitleLen       = 5
	minDescriptionLen = 30
	maxDescriptionLen = 500
	minEstBags        = 1
	maxEstBags        = 100
)

type ReportInput struct {
	Title        string
	Description  string
	TrashType    TrashType
	EstBags      int
	Location     *Coordinates
	PhotosBefore []string
}

type ReportResult struct {
	Mission       *storage.Mission
	XPAwarded     int
	LevelBefore   int
	LevelAfter    int
	LevelUp       bool
	BadgeUnlocked Badge // empty when nothing unlocked
	ReportsToday  int
}

// validateReport checks fields in a fixed order and names the first
// failure.
func validateReport(in *ReportInput) error {
	if utf8.RuneCountInString(in.Title) < minTitleLen {
		return ValidationError{Field: "title", Reason: "must be at least 5 characters"}
	}
	if n := utf8.RuneCountInString(in.Description); n < minDescriptionLen || n > maxDescriptionLen {
		return ValidationError{Field: "description", Reason: "must be 30-500 characters"}
	}
	if len(in.PhotosBefore) == 0 {
		return ValidationError{Field: "photos", Reason: "at least one before photo is required"}
	}
	if in.EstBags < minEstBags || in.EstBags > maxEstBags {
		return ValidationError{Field: "est_bags", Reason: "estimated bags must be 1-100"}
	}
	if in.Location == nil {
		return ValidationError{Field: "location", Reason: "a location must be selected"}
	}
	return nil
}

// Report creates a new mission in the needs state and rewards the
// reporter. The mission insert, daily counter, streak, XP and badge all
// persist in one transaction.
func (s *Service) Report(ctx context.Context, in ReportInput) (*ReportResult, error) {
	if err := validateReport(&in); err != nil {
		return nil, err
	}
	if !in.TrashType.IsValid() {
		in.TrashType = DefaultTrashType
	}

	u, err := s.getUser(ctx)
	if err != nil {
		return nil, err
	}

	today := s.Today()
	if u.DailyReportCount[today] >= DailyReportLimit {
		return nil, RateLimitError{Date: today, Limit: DailyReportLimit}
	}

	now := s.now().UTC()
	m := &storage.Mission{
		ID:           uuid.NewString(),
		Title:        in.Title,
		Description:  in.Description,
		Status:       string(StatusNeeds),
		Lat:          in.Location.Lat,
		Lng:          in.Location.Lng,
		TrashType:    string(in.TrashType),
		EstBags:      in.EstBags,
		ReporterID:   u.ID,
		PhotosBefore: in.PhotosBefore,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	levelBefore := u.Level
	var unlocked Badge
	err = storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		missions := storage.NewMissionRepo(tx)
		users := storage.NewUserRepo(tx)

		if err := missions.Insert(ctx, m); err != nil {
			return err
		}

		if u.DailyReportCount == nil {
			u.DailyReportCount = map[string]int{}
		}
		u.DailyReportCount[today]++
		ApplyReward(u, XPReport, today)

		counts, err := activityCounts(ctx, missions, u)
		if err != nil {
			return err
		}
		unlocked, _ = EvaluateBadges(u, counts)

		return users.Update(ctx, u)
	})
	if err != nil {
		return nil, err
	}

	return &ReportResult{
		Mission:       m,
		XPAwarded:     XPReport,
		LevelBefore:   levelBefore,
		LevelAfter:    u.Level,
		LevelUp:       u.Level > levelBefore,
		BadgeUnlocked: unlocked,
		ReportsToday:  u.DailyReportCount[today],
	}, nil
}

// activityCounts snapshots the cumulative activity badge rules match
// against, inside the same transaction as the triggering action.
func activityCounts(ctx context.Context, missions *storage.MissionRepo, u *storage.User) (ActivityCounts, error) {
	reports, err := missions.CountReportedBy(ctx, u.ID)
	if err != nil {
		return ActivityCounts{}, err
	}
	cleanups, err := missions.CountCleanedBy(ctx, u.ID)
	if err != nil {
		return ActivityCounts{}, err
	}
	return ActivityCounts{Reports: reports, Cleanups: cleanups, Streak: u.Streak}, nil
}
