package timezone

import (
	"fmt"
	"sync"
	"time"
	_ "time/tzdata"

	"github.com/ringsaturn/tzf"

	"weather-mcp/internal/types"
)

// Locator resolves the IANA zone a coordinate falls in
type Locator interface {
	TimezoneFor(coords types.Coords) (string, error)
}

// finderLocator answers lookups from a read-only tzf polygon finder
type finderLocator struct {
	finder tzf.F
}

var (
	shared     *finderLocator
	sharedErr  error
	sharedOnce sync.Once
)

// NewLocator returns the process-wide locator. tzf keeps its polygon data
// in memory, so the finder is built once on first use.
func NewLocator() (Locator, error) {
	sharedOnce.Do(func() {
		finder, err := tzf.NewDefaultFinder()
		if err != nil {
			sharedErr = fmt.Errorf("failed to initialize timezone finder: %w", err)
			return
		}
		shared = &finderLocator{finder: finder}
	})
	if sharedErr != nil {
		return nil, sharedErr
	}
	return shared, nil
}

// TimezoneFor returns names like "Asia/Tokyo". Zones the runtime cannot load
// are rejected.
func (l *finderLocator) TimezoneFor(coords types.Coords) (string, error) {
	if coords.Latitude < -90 || coords.Latitude > 90 || coords.Longitude < -180 || coords.Longitude > 180 {
		return "", fmt.Errorf("coordinates out of range: lat=%f, lon=%f", coords.Latitude, coords.Longitude)
	}

	name := l.finder.GetTimezoneName(coords.Longitude, coords.Latitude)
	if name == "" {
		return "", fmt.Errorf("could not determine timezone for coordinates lat=%f, lon=%f", coords.Latitude, coords.Longitude)
	}
	if _, err := time.LoadLocation(name); err != nil {
		return "", fmt.Errorf("timezone %s is not loadable: %w", name, err)
	}

	return name, nil
}
