package engine

import (
	"context"
	"sort"
)

type LeaderboardEntry struct {
	Rank     int
	Username string
	XP       int
	Level    int
	IsLocal  bool
}

// rivalRoster is a static cast the local user is ranked against. There
// is no server; the roster exists so early progress has something to
// chase.
var rivalRoster = []struct {
	Name string
	XP   int
}{
	{"binbuster", 1540},
	{"greenhornet", 720},
	{"canal_kate", 310},
	{"parkpatrol", 120},
	{"litterbug_larry", 15},
}

// Leaderboard ranks the local user against the rival roster by XP,
// highest first. Ties rank the local user ahead.
func (s *Service) Leaderboard(ctx context.Context) ([]LeaderboardEntry, error) {
	u, err := s.getUser(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(rivalRoster)+1)
	entries = append(entries, LeaderboardEntry{
		Username: u.Username,
		XP:       u.XP,
		Level:    u.Level,
		IsLocal:  true,
	})
	for _, r := range rivalRoster {
		entries = append(entries, LeaderboardEntry{
			Username: r.Name,
			XP:       r.XP,
			Level:    LevelForXP(r.XP),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].XP != entries[j].XP {
			return entries[i].XP > entries[j].XP
		}
		return entries[i].IsLocal
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries, nil
}
