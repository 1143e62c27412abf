package timezone

import (
	"time"

	lru "github.com/hashicorp/golang-lru"
)

const cacheSize = 128

// locations caches loaded IANA zones. time.LoadLocation reads the zoneinfo
// database from disk, which adds up when every user of every period resolves
// the same handful of zones.
var locations, _ = lru.New(cacheSize)

// Load resolves an IANA timezone name to a *time.Location. The empty name
// resolves to UTC; callers that want a different default substitute it before
// calling.
func Load(name string) (*time.Location, error) {
	if name == "" {
		return time.UTC, nil
	}

	if cached, ok := locations.Get(name); ok {
		return cached.(*time.Location), nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, err
	}

	locations.Add(name, loc)
	return loc, nil
}
