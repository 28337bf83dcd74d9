package tzrender

import (
	"errors"
	"fmt"
	"time"
)

// Locator finds the timezone with the given name
type Locator interface {
	Load(name string) (*time.Location, error)
}

// IANALocator finds timezones in the IANA timezone database as provided by
// the Go runtime
type IANALocator struct{}

// Load returns the named location from the timezone database. Unlike
// time.LoadLocation it will not accept the empty string or "Local" as
// these are not names in the database.
func (IANALocator) Load(name string) (*time.Location, error) {
	switch name {
	case "":
		return nil, errors.New("the timezone name is empty")
	case "Local":
		return nil, errors.New(
			"'Local' is not a name in the IANA timezone database")
	}

	return time.LoadLocation(name)
}

// MapLocator finds timezones in a fixed map. This is useful for
// supplying invented zones.
type MapLocator map[string]*time.Location

// Load returns the location with the given name from the map or an error
// if there is no such entry
func (ml MapLocator) Load(name string) (*time.Location, error) {
	if loc, ok := ml[name]; ok {
		return loc, nil
	}

	return nil, fmt.Errorf("unknown time zone %s", name)
}
