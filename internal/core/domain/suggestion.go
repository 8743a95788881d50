package domain

import "fmt"

// Coordinates is a WGS84 point.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// CitySuggestion is one autocomplete candidate derived from a geocoding result.
type CitySuggestion struct {
	Name        string      `json:"name"`
	State       string      `json:"state"`
	Country     string      `json:"country"`
	Coordinates Coordinates `json:"coordinates"`
	FullLabel   string      `json:"fullLabel"`
}

// Label formats the human-readable "<name>, <region>, <country>" label.
func Label(name, region, country string) string {
	return fmt.Sprintf("%s, %s, %s", name, region, country)
}
