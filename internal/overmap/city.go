package overmap

import "github.com/wastefall/wastefall/internal/model"

// City is a named settlement on the overmap. Size is the radius in
// overmap terrain cells that city buildings may occupy.
type City struct {
	ID   int64
	Name string
	Pos  model.Tripoint // center, overmap terrain coordinates
	Size int32
}

// CityRef is a search result: a city plus the absolute submap position
// the search was anchored to.
type CityRef struct {
	City     City
	AbsSmPos model.Tripoint
	Distance int32
}

// Valid reports whether the reference points at a real city.
func (c CityRef) Valid() bool {
	return c.City.Size > 0
}
