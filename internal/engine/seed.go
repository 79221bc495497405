package engine

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"trashquest/internal/storage"
)

// SeedMission is a mission fixture, loadable from YAML. Reporter names
// are synthetic; they never collide with the local user.
type SeedMission struct {
	Title       string      `yaml:"title"`
	Description string      `yaml:"description"`
	TrashType   string      `yaml:"trash_type"`
	EstBags     int         `yaml:"est_bags"`
	Location    Coordinates `yaml:"location"`
	Photos      []string    `yaml:"photos"`
	Reporter    string      `yaml:"reporter"`
	Upvotes     int         `yaml:"upvotes"`
}

type seedFile struct {
	Missions []SeedMission `yaml:"missions"`
}

// LoadSeedFile reads mission fixtures from a YAML file.
func LoadSeedFile(path string) ([]SeedMission, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return f.Missions, nil
}

// DefaultSeedMissions returns the built-in starter board.
func DefaultSeedMissions() []SeedMission {
	return []SeedMission{
		{
			Title:       "Overflowing bins at Riverside Park",
			Description: "Several trash bags piled next to the bins by the south entrance, some torn open by birds.",
			TrashType:   "bags",
			EstBags:     4,
			Location:    Coordinates{Lat: 40.7484, Lng: -73.9857},
			Photos:      []string{"seed/riverside_before.jpg"},
			Reporter:    "seed-ranger",
			Upvotes:     2,
		},
		{
			Title:       "Rubble dumped behind the old depot",
			Description: "Broken drywall and bricks left in a heap behind the depot fence, looks like a weekend renovation dump.",
			TrashType:   "construction",
			EstBags:     12,
			Location:    Coordinates{Lat: 40.7527, Lng: -73.9772},
			Photos:      []string{"seed/depot_before.jpg"},
			Reporter:    "seed-scout",
			Upvotes:     4,
		},
		{
			Title:       "Litter trail along the canal path",
			Description: "Cans, wrappers and a few bottles scattered along roughly fifty meters of the canal footpath.",
			TrashType:   "misc",
			EstBags:     2,
			Location:    Coordinates{Lat: 40.7411, Lng: -74.0048},
			Photos:      []string{"seed/canal_before.jpg"},
			Reporter:    "seed-ranger",
			Upvotes:     0,
		},
	}
}

// SeedMissions inserts fixtures when the board is empty. It returns the
// number inserted; a non-empty board is left untouched.
func (s *Service) SeedMissions(ctx context.Context, seeds []SeedMission) (int, error) {
	n, err := s.missions.Count(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}

	now := s.now().UTC()
	inserted := 0
	for _, seed := range seeds {
		tt := ParseTrashType(seed.TrashType)
		bags := seed.EstBags
		if bags < minEstBags {
			bags = minEstBags
		}
		if bags > maxEstBags {
			bags = maxEstBags
		}
		m := &storage.Mission{
			ID:           uuid.NewString(),
			Title:        seed.Title,
			Description:  seed.Description,
			Status:       string(StatusNeeds),
			Lat:          seed.Location.Lat,
			Lng:          seed.Location.Lng,
			TrashType:    string(tt),
			EstBags:      bags,
			ReporterID:   seed.Reporter,
			Upvotes:      seed.Upvotes,
			PhotosBefore: seed.Photos,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := s.missions.Insert(ctx, m); err != nil {
			return inserted, err
		}
		inserted++
	}
	return inserted, nil
}
