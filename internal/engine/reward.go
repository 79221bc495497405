package engine

import "trashquest/internal/storage"

// ApplyReward is the single choke point for XP earned by the user's
// own action: the streak advances first, then XP, then the level is
// recomputed so it can never drift from XP. Negative amounts are
// clamped; XP never decreases.
func ApplyReward(u *storage.User, amount int, today string) {
	UpdateStreak(u, today)
	creditXP(u, amount)
}

// creditXP applies an XP delta without touching the streak. Cheer
// milestone bonuses use this path: the cheer is not the reporter's own
// action, so it does not count as activity.
func creditXP(u *storage.User, amount int) {
	if amount < 0 {
		amount = 0
	}
	u.XP += amount
	u.Level = LevelForXP(u.XP)
}
