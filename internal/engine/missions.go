package engine

import (
	"context"
	"database/sql"
	"fmt"

	"trashquest/internal/storage"
)

type AcceptResult struct {
	Mission     *storage.Mission
	XPAwarded   int
	LevelBefore int
	LevelAfter  int
	LevelUp     bool
}

// Accept claims a reported mission for the local user and moves it to
// progress. Reporters cannot accept their own quest.
func (s *Service) Accept(ctx context.Context, missionID string) (*AcceptResult, error) {
	u, err := s.getUser(ctx)
	if err != nil {
		return nil, err
	}
	m, err := s.missions.Get(ctx, missionID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, fmt.Errorf("mission %s not found", missionID)
	}
	if !Status(m.Status).CanAdvanceTo(StatusProgress) {
		return nil, InvalidTransitionError{Op: "accept", Reason: fmt.Sprintf("mission is %s, not %s", m.Status, StatusNeeds)}
	}
	if m.ReporterID == u.ID {
		return nil, InvalidTransitionError{Op: "accept", Reason: "reporters cannot accept their own quest"}
	}

	now := s.now().UTC()
	today := s.Today()
	levelBefore := u.Level

	err = storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		missions := storage.NewMissionRepo(tx)
		users := storage.NewUserRepo(tx)

		if err := missions.MarkClaimed(ctx, m.ID, u.ID, now); err != nil {
			return err
		}
		ApplyReward(u, XPClaim, today)
		return users.Update(ctx, u)
	})
	if err != nil {
		return nil, err
	}

	m.Status = string(StatusProgress)
	claimant := u.ID
	m.ClaimedByUserID = &claimant
	m.UpdatedAt = now

	return &AcceptResult{
		Mission:     m,
		XPAwarded:   XPClaim,
		LevelBefore: levelBefore,
		LevelAfter:  u.Level,
		LevelUp:     u.Level > levelBefore,
	}, nil
}

type CompleteResult struct {
	Mission       *storage.Mission
	XPAwarded     int
	LevelBefore   int
	LevelAfter    int
	LevelUp       bool
	BadgeUnlocked Badge
	Cleanups      int
}

// Complete moves a claimed mission to cleaned. Only the claimant may
// complete, and at least one after photo is required as proof.
func (s *Service) Complete(ctx context.Context, missionID string, afterPhotos []string) (*CompleteResult, error) {
	u, err := s.getUser(ctx)
	if err != nil {
		return nil, err
	}
	m, err := s.missions.Get(ctx, missionID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, fmt.Errorf("mission %s not found", missionID)
	}
	if !Status(m.Status).CanAdvanceTo(StatusCleaned) {
		return nil, InvalidTransitionError{Op: "complete", Reason: fmt.Sprintf("mission is %s, not %s", m.Status, StatusProgress)}
	}
	if m.ClaimedByUserID == nil || *m.ClaimedByUserID != u.ID {
		return nil, InvalidTransitionError{Op: "complete", Reason: "only the claimant can complete a quest"}
	}
	if len(afterPhotos) == 0 {
		return nil, MissingPhotoError{MissionID: m.ID}
	}

	now := s.now().UTC()
	today := s.Today()
	levelBefore := u.Level
	photosAfter := append(append([]string{}, m.PhotosAfter...), afterPhotos...)

	var (
		unlocked Badge
		cleanups int
	)
	err = storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		missions := storage.NewMissionRepo(tx)
		users := storage.NewUserRepo(tx)

		if err := missions.MarkCleaned(ctx, m.ID, photosAfter, now); err != nil {
			return err
		}
		ApplyReward(u, XPComplete, today)

		counts, err := activityCounts(ctx, missions, u)
		if err != nil {
			return err
		}
		cleanups = counts.Cleanups
		unlocked, _ = EvaluateBadges(u, counts)

		return users.Update(ctx, u)
	})
	if err != nil {
		return nil, err
	}

	m.Status = string(StatusCleaned)
	m.PhotosAfter = photosAfter
	m.UpdatedAt = now

	return &CompleteResult{
		Mission:       m,
		XPAwarded:     XPComplete,
		LevelBefore:   levelBefore,
		LevelAfter:    u.Level,
		LevelUp:       u.Level > levelBefore,
		BadgeUnlocked: unlocked,
		Cleanups:      cleanups,
	}, nil
}

type CheerResult struct {
	Mission *storage.Mission
	Cheered bool // false when the user had already cheered (no-op)
	Upvotes int
	// BonusFired reports the one-time milestone credit to the reporter.
	// It fires only on the cheer that makes upvotes exactly UpvoteBonusAt.
	BonusFired bool
}

// Cheer upvotes a mission, at most once per user per mission. Double
// cheers return silently with Cheered=false.
func (s *Service) Cheer(ctx context.Context, missionID string) (*CheerResult, error) {
	u, err := s.getUser(ctx)
	if err != nil {
		return nil, err
	}
	m, err := s.missions.Get(ctx, missionID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, fmt.Errorf("mission %s not found", missionID)
	}

	for _, id := range u.UpvotedMissionIDs {
		if id == m.ID {
			return &CheerResult{Mission: m, Cheered: false, Upvotes: m.Upvotes}, nil
		}
	}

	newCount := m.Upvotes + 1
	bonus := newCount == UpvoteBonusAt

	err = storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		missions := storage.NewMissionRepo(tx)
		users := storage.NewUserRepo(tx)

		if err := missions.SetUpvotes(ctx, m.ID, newCount); err != nil {
			return err
		}

		u.UpvotedMissionIDs = append(u.UpvotedMissionIDs, m.ID)
		if bonus && m.ReporterID == u.ID {
			// Cheering your own quest still counts the milestone.
			creditXP(u, XPUpvoteBonus)
		}
		if err := users.Update(ctx, u); err != nil {
			return err
		}

		if bonus && m.ReporterID != u.ID {
			reporter, err := users.Get(ctx, m.ReporterID)
			if err != nil {
				return err
			}
			// Seeded missions have reporters with no local record; the
			// signal still fires, there is just nobody to credit.
			if reporter != nil {
				creditXP(reporter, XPUpvoteBonus)
				if err := users.Update(ctx, reporter); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	m.Upvotes = newCount
	return &CheerResult{Mission: m, Cheered: true, Upvotes: newCount, BonusFired: bonus}, nil
}
