// Package location provides the catalog of practice locations and the lookup
// tables that address their ambience recordings and background images
package location

import (
	"fmt"
	"sync"

	"github.com/ayoisaiah/anuloma/internal/static"
)

const (
	// First is the location every profile starts with.
	First = 1
	// Last is the final location of the path.
	Last = 10

	backgroundImageFmt = "locations/%02d/background.jpg"
)

// Location is a waypoint on the practice path.
type Location struct {
	Slug        string `yaml:"slug"        json:"slug"`
	Name        string `yaml:"name"        json:"name"`
	Emoji       string `yaml:"emoji"       json:"emoji"`
	Symbol      string `yaml:"symbol"      json:"symbol"`
	Quote       string `yaml:"quote"       json:"quote"`
	QuoteSource string `yaml:"quote_source" json:"quote_source"`
	Ambience    string `yaml:"ambience"    json:"ambience"`
	ID          int    `yaml:"id"          json:"id"`
}

var (
	catalog []Location
	byID    map[int]Location
	loadErr error
	once    sync.Once
)

func load() {
	once.Do(func() {
		var data struct {
			Locations []Location `yaml:"locations"`
		}

		loadErr = static.Decode("locations.yaml", &data)
		if loadErr != nil {
			return
		}

		catalog = data.Locations
		byID = make(map[int]Location, len(catalog))

		for _, l := range catalog {
			byID[l.ID] = l
		}
	})
}

// All returns every location in path order.
func All() ([]Location, error) {
	load()

	if loadErr != nil {
		return nil, loadErr
	}

	out := make([]Location, len(catalog))
	copy(out, catalog)

	return out, nil
}

// Get looks up a location by id.
func Get(id int) (Location, bool) {
	load()

	l, ok := byID[id]

	return l, ok
}

// Clamp bounds id to the range of known locations.
func Clamp(id int) int {
	if id < First {
		return First
	}

	if id > Last {
		return Last
	}

	return id
}

// ForRound returns the location shown while practising the given round when
// the session started at startID.
func ForRound(startID, round int) int {
	return Clamp(Clamp(startID) + round - 1)
}

// AmbienceAsset returns the ambience recording of a location. The second
// return value is false for unknown locations.
func AmbienceAsset(id int) (string, bool) {
	l, ok := Get(id)
	if !ok || l.Ambience == "" {
		return "", false
	}

	return l.Ambience, true
}

// BackgroundImage returns the background image path of a location.
func BackgroundImage(id int) (string, bool) {
	if _, ok := Get(id); !ok {
		return "", false
	}

	return fmt.Sprintf(backgroundImageFmt, id), true
}
