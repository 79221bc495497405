package storage

import "time"

// User is the single local player record. Level is derived from XP by
// the engine and repaired on load if a stored record drifted.
type User struct {
	ID                string
	Username          string
	XP                int
	Level             int
	Streak            int
	LastActiveDate    string // ISO date, empty until the first action
	Badges            []string
	UpvotedMissionIDs []string
	DailyReportCount  map[string]int // ISO date -> reports that day
	CreatedAt         time.Time
}

type Mission struct {
	ID              string
	Title           string
	Description     string
	Status          string
	Lat             float64
	Lng             float64
	TrashType       string
	EstBags         int
	ReporterID      string
	ClaimedByUserID *string
	Upvotes         int
	PhotosBefore    []string
	PhotosAfter     []string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
