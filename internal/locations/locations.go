// Package locations holds the static Region → City → Neighborhood
// reference data consumed by the dashboard filters. The dataset is
// read-only; employee records reference it by id without any
// referential-integrity enforcement.
package locations

// Viewport is the default map framing for a region.
type Viewport struct {
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
	Zoom int     `json:"zoom"`
}

// Neighborhood is a leaf node of the location hierarchy.
type Neighborhood struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	CityID string `json:"cityId"`
}

// City groups neighborhoods within a region.
type City struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	RegionID      string         `json:"regionId"`
	Neighborhoods []Neighborhood `json:"neighborhoods"`
}

// Region is a top-level administrative area with its map viewport.
type Region struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Cities      []City   `json:"cities"`
	Coordinates Viewport `json:"coordinates"`
}

// Regions returns every region in display order.
func Regions() []Region {
	return saudiRegions
}

// RegionByID looks up a region, or false when unknown.
func RegionByID(regionID string) (*Region, bool) {
	for i := range saudiRegions {
		if saudiRegions[i].ID == regionID {
			return &saudiRegions[i], true
		}
	}
	return nil, false
}

// CitiesByRegion lists the cities of a region; unknown regions yield
// an empty list.
func CitiesByRegion(regionID string) []City {
	if region, ok := RegionByID(regionID); ok {
		return region.Cities
	}
	return []City{}
}

// CityByID searches every region for the city.
func CityByID(cityID string) (*City, bool) {
	for i := range saudiRegions {
		for j := range saudiRegions[i].Cities {
			if saudiRegions[i].Cities[j].ID == cityID {
				return &saudiRegions[i].Cities[j], true
			}
		}
	}
	return nil, false
}

// NeighborhoodsByCity lists the neighborhoods of a city; unknown
// cities yield an empty list.
func NeighborhoodsByCity(cityID string) []Neighborhood {
	if city, ok := CityByID(cityID); ok {
		return city.Neighborhoods
	}
	return []Neighborhood{}
}

// NeighborhoodByID searches the full hierarchy for a neighborhood.
func NeighborhoodByID(neighborhoodID string) (*Neighborhood, bool) {
	for i := range saudiRegions {
		for j := range saudiRegions[i].Cities {
			city := &saudiRegions[i].Cities[j]
			for k := range city.Neighborhoods {
				if city.Neighborhoods[k].ID == neighborhoodID {
					return &city.Neighborhoods[k], true
				}
			}
		}
	}
	return nil, false
}
