// Package timezone pins wall-clock reads to the business timezone set in
// APP_TIMEZONE. Opening hours and reservation slots are local times of that
// zone, so every "now" in the booking flow goes through here.
package timezone

import (
	"sync"
	"time"

	"beautyhub/config"

	"github.com/rs/zerolog/log"
)

var (
	once     sync.Once
	mu       sync.RWMutex
	location = time.UTC
)

func load() {
	name := config.Get().App.Timezone
	if name == "" {
		log.Warn().Msg("No timezone configured, using UTC")

		return
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().Err(err).Str("timezone", name).Msg("Unknown timezone, using UTC")

		return
	}

	mu.Lock()
	location = loc
	mu.Unlock()

	log.Info().Str("timezone", loc.String()).Msg("Business timezone loaded")
}

// Location returns the business timezone, loading it on first use.
func Location() *time.Location {
	once.Do(load)

	mu.RLock()
	defer mu.RUnlock()

	return location
}

func Now() time.Time {
	return time.Now().In(Location())
}

// Local converts t to the business timezone.
func Local(t time.Time) time.Time {
	return t.In(Location())
}

func Format(t time.Time, layout string) string {
	return Local(t).Format(layout)
}

// Override swaps the business timezone until the returned func is called.
func Override(loc *time.Location) (restore func()) {
	once.Do(func() {})

	mu.Lock()
	previous := location
	location = loc
	mu.Unlock()

	return func() {
		mu.Lock()
		location = previous
		mu.Unlock()
	}
}

// Name is the zone name, UTC when nothing valid is configured.
func Name() string {
	return Location().String()
}
