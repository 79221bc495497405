package engine

import (
	"testing"

	"trashquest/internal/storage"
)

func TestBadgeExactMilestones(t *testing.T) {
	u := &storage.User{}
	if b, ok := EvaluateBadges(u, ActivityCounts{Cleanups: 1}); !ok || b != BadgeFirstCleanup {
		t.Fatalf("got %q/%v, want firstCleanup", b, ok)
	}
	// 6 is not a milestone; skipping past 5 grants nothing retroactively.
	if b, ok := EvaluateBadges(u, ActivityCounts{Cleanups: 6}); ok {
		t.Fatalf("unexpected badge %q at 6 cleanups", b)
	}
	if b, ok := EvaluateBadges(u, ActivityCounts{Cleanups: 10}); !ok || b != BadgeTenCleanups {
		t.Fatalf("got %q/%v, want tenCleanups", b, ok)
	}
}

func TestBadgeNeverReawarded(t *testing.T) {
	u := &storage.User{}
	EvaluateBadges(u, ActivityCounts{Reports: 1})
	EvaluateBadges(u, ActivityCounts{Reports: 1})
	n := 0
	for _, b := range u.Badges {
		if b == string(BadgeFirstReport) {
			n++
		}
	}
	if n != 1 {
		t.Fatalf("firstReport appears %d times, want 1", n)
	}
}

func TestBadgeFirstMatchWins(t *testing.T) {
	// Two conditions hold at once; only the higher-priority badge lands.
	u := &storage.User{}
	b, ok := EvaluateBadges(u, ActivityCounts{Reports: 1, Cleanups: 1})
	if !ok || b != BadgeFirstReport {
		t.Fatalf("got %q/%v, want firstReport first", b, ok)
	}
	if len(u.Badges) != 1 {
		t.Fatalf("badges=%v, want exactly one per action", u.Badges)
	}
	// The skipped condition is still claimable on the next action.
	b, ok = EvaluateBadges(u, ActivityCounts{Reports: 1, Cleanups: 1})
	if !ok || b != BadgeFirstCleanup {
		t.Fatalf("got %q/%v, want firstCleanup next", b, ok)
	}
}

func TestBadgeStreakWarrior(t *testing.T) {
	u := &storage.User{}
	if _, ok := EvaluateBadges(u, ActivityCounts{Streak: 6}); ok {
		t.Fatalf("no badge expected at streak 6")
	}
	if b, ok := EvaluateBadges(u, ActivityCounts{Streak: 7}); !ok || b != BadgeStreakWarrior {
		t.Fatalf("got %q/%v, want streakWarrior", b, ok)
	}
}

func TestParseBadgeRejectsUnknownKeys(t *testing.T) {
	if _, ok := ParseBadge("totallyRealBadge"); ok {
		t.Fatalf("unknown key should not parse")
	}
	if b, ok := ParseBadge("fiveCleanups"); !ok || b != BadgeFiveCleanups {
		t.Fatalf("got %q/%v, want fiveCleanups", b, ok)
	}
}

func TestBadgeDescriptorsComplete(t *testing.T) {
	for _, b := range AllBadges() {
		info := b.Info()
		if info.Name == "" || info.Description == "" || info.Icon == "" || info.Color == "" {
			t.Errorf("badge %q has an incomplete descriptor: %+v", b, info)
		}
	}
}
