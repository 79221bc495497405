package engine

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"trashquest/internal/storage"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	ctx := context.Background()
	db, err := storage.Open(ctx, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	svc := NewService(db)
	svc.SetClock(func() time.Time {
		return time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	})
	return svc
}

func validReport() ReportInput {
	return ReportInput{
		Title:        "Overflowing bin at the park gate",
		Description:  "A knocked-over bin scattered plastic bottles and wrappers across the path.",
		TrashType:    TrashTypeBags,
		EstBags:      2,
		Location:     &Coordinates{Lat: 40.0, Lng: -74.0},
		PhotosBefore: []string{"before.jpg"},
	}
}

func TestReportRewardsAndFirstBadge(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	res, err := svc.Report(ctx, validReport())
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if res.XPAwarded != XPReport {
		t.Errorf("xp awarded = %d, want %d", res.XPAwarded, XPReport)
	}
	if res.BadgeUnlocked != BadgeFirstReport {
		t.Errorf("badge = %q, want firstReport", res.BadgeUnlocked)
	}
	if res.Mission.Status != string(StatusNeeds) {
		t.Errorf("status = %q, want needs", res.Mission.Status)
	}

	u, err := svc.CurrentUser(ctx)
	if err != nil {
		t.Fatalf("current user: %v", err)
	}
	if u.XP != XPReport {
		t.Errorf("user xp = %d, want %d", u.XP, XPReport)
	}
	if u.Streak != 1 {
		t.Errorf("streak = %d, want 1", u.Streak)
	}
	if u.LastActiveDate != "2026-03-10" {
		t.Errorf("last active = %q, want 2026-03-10", u.LastActiveDate)
	}
}

func TestReportValidation(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	cases := []struct {
		name   string
		mutate func(in *ReportInput)
		field  string
	}{
		{"short title", func(in *ReportInput) { in.Title = "bin" }, "title"},
		{"short description", func(in *ReportInput) { in.Description = "too short" }, "description"},
		{"no photos", func(in *ReportInput) { in.PhotosBefore = nil }, "photos"},
		{"zero bags", func(in *ReportInput) { in.EstBags = 0 }, "est_bags"},
		{"too many bags", func(in *ReportInput) { in.EstBags = 101 }, "est_bags"},
		{"no location", func(in *ReportInput) { in.Location = nil }, "location"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validReport()
			tc.mutate(&in)
			_, err := svc.Report(ctx, in)
			var verr ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("err = %v, want ValidationError", err)
			}
			if verr.Field != tc.field {
				t.Errorf("field = %q, want %q", verr.Field, tc.field)
			}
		})
	}
}

func TestDailyReportLimit(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	for i := 0; i < DailyReportLimit; i++ {
		if _, err := svc.Report(ctx, validReport()); err != nil {
			t.Fatalf("report %d: %v", i+1, err)
		}
	}

	_, err := svc.Report(ctx, validReport())
	var rerr RateLimitError
	if !errors.As(err, &rerr) {
		t.Fatalf("6th report err = %v, want RateLimitError", err)
	}
	if rerr.Date != "2026-03-10" {
		t.Errorf("rate limit date = %q, want 2026-03-10", rerr.Date)
	}

	// The counter is per calendar date; the next day starts fresh.
	svc.SetClock(func() time.Time {
		return time.Date(2026, 3, 11, 9, 0, 0, 0, time.UTC)
	})
	if _, err := svc.Report(ctx, validReport()); err != nil {
		t.Fatalf("next-day report: %v", err)
	}

	u, err := svc.CurrentUser(ctx)
	if err != nil {
		t.Fatalf("current user: %v", err)
	}
	if u.Streak != 2 {
		t.Errorf("streak after consecutive day = %d, want 2", u.Streak)
	}
}

func TestAcceptRules(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	res, err := svc.Report(ctx, validReport())
	if err != nil {
		t.Fatalf("report: %v", err)
	}

	// The local user reported it; self-accept is blocked.
	_, err = svc.Accept(ctx, res.Mission.ID)
	var terr InvalidTransitionError
	if !errors.As(err, &terr) {
		t.Fatalf("self-accept err = %v, want InvalidTransitionError", err)
	}

	seeded := seededMission(t, svc, "rival-1", 0)
	acc, err := svc.Accept(ctx, seeded)
	if err != nil {
		t.Fatalf("accept: %v", err)
	}
	if acc.XPAwarded != XPClaim {
		t.Errorf("xp = %d, want %d", acc.XPAwarded, XPClaim)
	}
	if acc.Mission.Status != string(StatusProgress) {
		t.Errorf("status = %q, want progress", acc.Mission.Status)
	}

	// Already in progress; a second accept is an invalid transition.
	if _, err := svc.Accept(ctx, seeded); !errors.As(err, &terr) {
		t.Fatalf("double accept err = %v, want InvalidTransitionError", err)
	}
}

func TestCompleteFlow(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	id := seededMission(t, svc, "rival-1", 0)

	// Completing straight from needs skips a state.
	var terr InvalidTransitionError
	if _, err := svc.Complete(ctx, id, []string{"after.jpg"}); !errors.As(err, &terr) {
		t.Fatalf("complete-on-needs err = %v, want InvalidTransitionError", err)
	}

	if _, err := svc.Accept(ctx, id); err != nil {
		t.Fatalf("accept: %v", err)
	}

	var perr MissingPhotoError
	if _, err := svc.Complete(ctx, id, nil); !errors.As(err, &perr) {
		t.Fatalf("complete without photo err = %v, want MissingPhotoError", err)
	}

	res, err := svc.Complete(ctx, id, []string{"after.jpg"})
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if res.XPAwarded != XPComplete {
		t.Errorf("xp = %d, want %d", res.XPAwarded, XPComplete)
	}
	if res.Cleanups != 1 {
		t.Errorf("cleanups = %d, want 1", res.Cleanups)
	}
	if res.BadgeUnlocked != BadgeFirstCleanup {
		t.Errorf("badge = %q, want firstCleanup", res.BadgeUnlocked)
	}
	if res.Mission.Status != string(StatusCleaned) {
		t.Errorf("status = %q, want cleaned", res.Mission.Status)
	}

	// Cleaned is terminal.
	if _, err := svc.Complete(ctx, id, []string{"again.jpg"}); !errors.As(err, &terr) {
		t.Fatalf("re-complete err = %v, want InvalidTransitionError", err)
	}
}

func TestCompleteOnlyByClaimant(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	id := seededMission(t, svc, "rival-1", 0)

	// Claim it for someone else directly in storage.
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	if err := svc.MissionRepo().MarkClaimed(ctx, id, "rival-2", now); err != nil {
		t.Fatalf("mark claimed: %v", err)
	}

	var terr InvalidTransitionError
	if _, err := svc.Complete(ctx, id, []string{"after.jpg"}); !errors.As(err, &terr) {
		t.Fatalf("non-claimant complete err = %v, want InvalidTransitionError", err)
	}
}

func TestFiveCleanupsBadgeFiresOnce(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	var badges []Badge
	for i := 0; i < 6; i++ {
		id := seededMission(t, svc, "rival-1", 0)
		if _, err := svc.Accept(ctx, id); err != nil {
			t.Fatalf("accept %d: %v", i+1, err)
		}
		res, err := svc.Complete(ctx, id, []string{"after.jpg"})
		if err != nil {
			t.Fatalf("complete %d: %v", i+1, err)
		}
		if res.BadgeUnlocked != "" {
			badges = append(badges, res.BadgeUnlocked)
		}
	}

	want := []Badge{BadgeFirstCleanup, BadgeFiveCleanups}
	if len(badges) != len(want) {
		t.Fatalf("badges = %v, want %v", badges, want)
	}
	for i := range want {
		if badges[i] != want[i] {
			t.Fatalf("badges = %v, want %v", badges, want)
		}
	}
}

func TestCheerIdempotentAndBonus(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	id := seededMission(t, svc, "rival-1", 4)

	res, err := svc.Cheer(ctx, id)
	if err != nil {
		t.Fatalf("cheer: %v", err)
	}
	if !res.Cheered || res.Upvotes != 5 {
		t.Fatalf("cheered=%v upvotes=%d, want true/5", res.Cheered, res.Upvotes)
	}
	if !res.BonusFired {
		t.Errorf("bonus should fire at exactly %d upvotes", UpvoteBonusAt)
	}

	// Same user, same mission: silent no-op.
	res, err = svc.Cheer(ctx, id)
	if err != nil {
		t.Fatalf("double cheer: %v", err)
	}
	if res.Cheered {
		t.Errorf("double cheer should be a no-op")
	}
	if res.Upvotes != 5 {
		t.Errorf("upvotes = %d, want unchanged 5", res.Upvotes)
	}
}

func TestCheerBonusCreditsLocalReporter(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	rep, err := svc.Report(ctx, validReport())
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if err := svc.MissionRepo().SetUpvotes(ctx, rep.Mission.ID, 4); err != nil {
		t.Fatalf("set upvotes: %v", err)
	}

	before, err := svc.CurrentUser(ctx)
	if err != nil {
		t.Fatalf("current user: %v", err)
	}

	res, err := svc.Cheer(ctx, rep.Mission.ID)
	if err != nil {
		t.Fatalf("cheer: %v", err)
	}
	if !res.BonusFired {
		t.Fatalf("bonus should fire at %d upvotes", UpvoteBonusAt)
	}

	after, err := svc.CurrentUser(ctx)
	if err != nil {
		t.Fatalf("current user: %v", err)
	}
	if after.XP != before.XP+XPUpvoteBonus {
		t.Errorf("reporter xp = %d, want %d", after.XP, before.XP+XPUpvoteBonus)
	}
	if after.Streak != before.Streak {
		t.Errorf("cheer bonus must not touch the streak: %d -> %d", before.Streak, after.Streak)
	}
}

func TestLevelUpOnAccept(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	u, err := svc.CurrentUser(ctx)
	if err != nil {
		t.Fatalf("current user: %v", err)
	}
	u.XP = 95
	u.Level = LevelForXP(u.XP)
	if err := svc.UserRepo().Update(ctx, u); err != nil {
		t.Fatalf("update user: %v", err)
	}

	id := seededMission(t, svc, "rival-1", 0)
	res, err := svc.Accept(ctx, id)
	if err != nil {
		t.Fatalf("accept: %v", err)
	}
	if !res.LevelUp || res.LevelBefore != 1 || res.LevelAfter != 2 {
		t.Errorf("levelUp=%v before=%d after=%d, want true/1/2", res.LevelUp, res.LevelBefore, res.LevelAfter)
	}
}

func TestLevelRepairedOnLoad(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	u, err := svc.CurrentUser(ctx)
	if err != nil {
		t.Fatalf("current user: %v", err)
	}
	u.XP = 700
	u.Level = 1 // drifted record
	if err := svc.UserRepo().Update(ctx, u); err != nil {
		t.Fatalf("update user: %v", err)
	}

	u, err = svc.CurrentUser(ctx)
	if err != nil {
		t.Fatalf("current user: %v", err)
	}
	if u.Level != 4 {
		t.Errorf("level = %d, want repaired 4", u.Level)
	}
}

// seededMission inserts a needs-state mission reported by someone else,
// so the local user can accept it.
func seededMission(t *testing.T, svc *Service, reporterID string, upvotes int) string {
	t.Helper()
	ctx := context.Background()
	now := time.Date(2026, 3, 9, 8, 0, 0, 0, time.UTC)
	m := &storage.Mission{
		ID:           uuid.NewString(),
		Title:        "Bottles along the creek trail",
		Description:  "Glass bottles left behind after the weekend, spread over the bank.",
		Status:       string(StatusNeeds),
		Lat:          40.1,
		Lng:          -74.1,
		TrashType:    string(TrashTypeMisc),
		EstBags:      1,
		ReporterID:   reporterID,
		Upvotes:      upvotes,
		PhotosBefore: []string{"seed-before.jpg"},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := svc.MissionRepo().Insert(ctx, m); err != nil {
		t.Fatalf("seed mission: %v", err)
	}
	return m.ID
}
