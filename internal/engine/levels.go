package engine

// LevelThresholds is the total XP required to hold each level; level
// i+1 starts at LevelThresholds[i]. The table is fixed and ascending.
var LevelThresholds = []int{0, 100, 300, 600, 1000, 1500}

// MaxLevel is the cap; XP beyond the top threshold does not level up.
var MaxLevel = len(LevelThresholds)

var levelNames = []string{"Rookie", "Cleaner", "Guardian", "Champion", "Legend"}

var levelColors = []string{"#9ca3af", "#3b82f6", "#8b5cf6", "#f59e0b", "#ef4444"}

// LevelForXP returns the highest level whose threshold xp covers.
// LevelForXP(0) == 1 and the result never decreases as xp grows.
func LevelForXP(xp int) int {
	if xp < 0 {
		xp = 0
	}
	for i := len(LevelThresholds) - 1; i >= 0; i-- {
		if xp >= LevelThresholds[i] {
			return i + 1
		}
	}
	return 1
}

// XPForNextLevel returns the total XP at which the next level starts,
// or the top threshold when already at the cap.
func XPForNextLevel(xp int) int {
	level := LevelForXP(xp)
	if level >= MaxLevel {
		return LevelThresholds[MaxLevel-1]
	}
	return LevelThresholds[level]
}

// ProgressWithinLevel reports progress toward the next level in [0,1].
// At the cap there is no next threshold to divide by; the progress is
// exactly 1.
func ProgressWithinLevel(xp int) float64 {
	if xp < 0 {
		xp = 0
	}
	level := LevelForXP(xp)
	if level >= MaxLevel {
		return 1
	}
	cur := LevelThresholds[level-1]
	next := LevelThresholds[level]
	return float64(xp-cur) / float64(next-cur)
}

// LevelName returns the display name for a level, clamped to the
// highest named tier.
func LevelName(level int) string {
	return clampedLookup(levelNames, level)
}

// LevelColor returns the hex accent color for a level.
func LevelColor(level int) string {
	return clampedLookup(levelColors, level)
}

func clampedLookup(table []string, level int) string {
	if level < 1 {
		level = 1
	}
	if level > len(table) {
		level = len(table)
	}
	return table[level-1]
}
