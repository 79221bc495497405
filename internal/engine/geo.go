package engine

import (
	"math"
	"sort"

	"trashquest/internal/storage"
)

// Coordinates is a WGS84 point.
type Coordinates struct {
	Lat float64 `yaml:"lat"`
	Lng float64 `yaml:"lng"`
}

const earthRadiusMiles = 3959.0

// DistanceMiles returns the haversine distance between two points.
func DistanceMiles(from, to Coordinates) float64 {
	dLat := (to.Lat - from.Lat) * (math.Pi / 180)
	dLng := (to.Lng - from.Lng) * (math.Pi / 180)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(from.Lat*(math.Pi/180))*
			math.Cos(to.Lat*(math.Pi/180))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusMiles * c
}

// SortByDistance orders missions nearest-first from the given point.
// Ties keep their stored order.
func SortByDistance(missions []storage.Mission, from Coordinates) {
	sort.SliceStable(missions, func(i, j int) bool {
		di := DistanceMiles(from, Coordinates{Lat: missions[i].Lat, Lng: missions[i].Lng})
		dj := DistanceMiles(from, Coordinates{Lat: missions[j].Lat, Lng: missions[j].Lng})
		return di < dj
	})
}
