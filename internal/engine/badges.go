package engine

import "trashquest/internal/storage"

// Badge identifies a one-time, non-revocable achievement. The set of
// keys is closed; anything else fails ParseBadge.
type Badge string

const (
	BadgeFirstReport   Badge = "firstReport"
	BadgeFirstCleanup  Badge = "firstCleanup"
	BadgeFiveCleanups  Badge = "fiveCleanups"
	BadgeTenCleanups   Badge = "tenCleanups"
	BadgeFiftyCleanups Badge = "fiftyCleanups"
	BadgeStreakWarrior Badge = "streakWarrior"
)

func (b Badge) IsValid() bool {
	_, ok := badgeInfos[b]
	return ok
}

// ParseBadge rejects unknown keys, e.g. from hand-edited stores.
func ParseBadge(key string) (Badge, bool) {
	b := Badge(key)
	return b, b.IsValid()
}

// BadgeInfo is the static descriptor shown in the badge gallery.
type BadgeInfo struct {
	Name        string
	Description string
	Icon        string
	Color       string
}

var badgeInfos = map[Badge]BadgeInfo{
	BadgeFirstReport:   {Name: "First Drop", Description: "Dropped your first quest", Icon: "🎯", Color: "#00f7ff"},
	BadgeFirstCleanup:  {Name: "Quest Master", Description: "Completed your first quest", Icon: "⚡", Color: "#39FF14"},
	BadgeFiveCleanups:  {Name: "Eco Hunter", Description: "Completed 5 quests", Icon: "🦸", Color: "#a855f7"},
	BadgeTenCleanups:   {Name: "Trash Slayer", Description: "Completed 10 quests", Icon: "🔥", Color: "#ff073a"},
	BadgeFiftyCleanups: {Name: "Eco Legend", Description: "Completed 50 quests", Icon: "👑", Color: "#ffd700"},
	BadgeStreakWarrior: {Name: "Streak Warrior", Description: "7-day activity streak", Icon: "🔥", Color: "#ff6b35"},
}

func (b Badge) Info() BadgeInfo {
	return badgeInfos[b]
}

// AllBadges returns the badge keys in display (priority) order.
func AllBadges() []Badge {
	return []Badge{
		BadgeFirstReport,
		BadgeFirstCleanup,
		BadgeFiveCleanups,
		BadgeTenCleanups,
		BadgeFiftyCleanups,
		BadgeStreakWarrior,
	}
}

// ActivityCounts is the cumulative activity badge rules match against,
// measured after the triggering action has been applied.
type ActivityCounts struct {
	Reports  int
	Cleanups int
	Streak   int
}

type badgeRule struct {
	badge Badge
	match func(c ActivityCounts) bool
}

// Rules run in fixed priority order; the first unearned match wins, so
// at most one badge unlocks per action. Milestones use exact equality:
// skipping past the 5th-cleanup moment does not grant the badge
// retroactively.
var badgeRules = []badgeRule{
	{BadgeFirstReport, func(c ActivityCounts) bool { return c.Reports == 1 }},
	{BadgeFirstCleanup, func(c ActivityCounts) bool { return c.Cleanups == 1 }},
	{BadgeFiveCleanups, func(c ActivityCounts) bool { return c.Cleanups == 5 }},
	{BadgeTenCleanups, func(c ActivityCounts) bool { return c.Cleanups == 10 }},
	{BadgeFiftyCleanups, func(c ActivityCounts) bool { return c.Cleanups == 50 }},
	{BadgeStreakWarrior, func(c ActivityCounts) bool { return c.Streak == 7 }},
}

// EvaluateBadges adds the first newly earned badge to the user's set
// and returns it. A badge already present is never re-awarded.
func EvaluateBadges(u *storage.User, counts ActivityCounts) (Badge, bool) {
	for _, r := range badgeRules {
		if !r.match(counts) {
			continue
		}
		if HasBadge(u, r.badge) {
			continue
		}
		u.Badges = append(u.Badges, string(r.badge))
		return r.badge, true
	}
	return "", false
}

func HasBadge(u *storage.User, b Badge) bool {
	for _, have := range u.Badges {
		if have == string(b) {
			return true
		}
	}
	return false
}
