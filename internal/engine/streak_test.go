package engine

import (
	"testing"

	"trashquest/internal/storage"
)

func TestStreakFirstAction(t *testing.T) {
	u := &storage.User{}
	if changed := UpdateStreak(u, "2026-03-10"); !changed {
		t.Fatalf("expected change on first action")
	}
	if u.Streak != 1 || u.LastActiveDate != "2026-03-10" {
		t.Fatalf("streak=%d lastActive=%q, want 1 / 2026-03-10", u.Streak, u.LastActiveDate)
	}
}

func TestStreakSameDayIdempotent(t *testing.T) {
	u := &storage.User{Streak: 3, LastActiveDate: "2026-03-10"}
	if changed := UpdateStreak(u, "2026-03-10"); changed {
		t.Fatalf("same-day update should be a no-op")
	}
	if u.Streak != 3 {
		t.Fatalf("streak=%d, want 3", u.Streak)
	}
}

func TestStreakConsecutiveDay(t *testing.T) {
	u := &storage.User{Streak: 3, LastActiveDate: "2026-03-10"}
	UpdateStreak(u, "2026-03-11")
	if u.Streak != 4 {
		t.Fatalf("streak=%d, want 4", u.Streak)
	}
	// Month boundary counts as one day too.
	u = &storage.User{Streak: 1, LastActiveDate: "2026-02-28"}
	UpdateStreak(u, "2026-03-01")
	if u.Streak != 2 {
		t.Fatalf("streak across month boundary=%d, want 2", u.Streak)
	}
}

func TestStreakGapResets(t *testing.T) {
	u := &storage.User{Streak: 6, LastActiveDate: "2026-03-10"}
	UpdateStreak(u, "2026-03-12")
	if u.Streak != 1 {
		t.Fatalf("streak=%d after 2-day gap, want 1", u.Streak)
	}
}

func TestStreakClockSkewResets(t *testing.T) {
	// today before lastActiveDate: treat as a gap.
	u := &storage.User{Streak: 6, LastActiveDate: "2026-03-10"}
	UpdateStreak(u, "2026-03-08")
	if u.Streak != 1 {
		t.Fatalf("streak=%d after clock skew, want 1", u.Streak)
	}
	if u.LastActiveDate != "2026-03-08" {
		t.Fatalf("lastActive=%q, want the supplied date", u.LastActiveDate)
	}
}
