package timezone

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"

	"pgms/config"

	"github.com/rs/zerolog/log"
)

const defaultName = "UTC"

var appLocation = time.UTC

func init() {
	loc, err := Load(config.Get().App.Timezone)
	if err != nil {
		log.Error().Err(err).Msg("Falling back to UTC; APP_TIMEZONE must be an IANA name such as Asia/Kolkata")

		return
	}

	appLocation = loc

	log.Info().Str("timezone", loc.String()).Msg("Application timezone initialized")
}

// Load resolves an IANA zone name. An empty name means UTC. Fixed offsets
// and abbreviations such as IST are rejected because they are ambiguous.
func Load(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return time.UTC, nil
	}

	if name != defaultName && !strings.Contains(name, "/") {
		return nil, fmt.Errorf("timezone %q is not an IANA zone name", name)
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", name, err)
	}

	return loc, nil
}

// Now is the wall clock in the application timezone.
func Now() time.Time {
	return time.Now().In(appLocation)
}

func ToAppTime(t time.Time) time.Time {
	return t.In(appLocation)
}

func GetLocation() *time.Location {
	return appLocation
}

// Parse reads value as wall time in the application timezone unless the
// layout carries its own offset.
func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, appLocation)
}

func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}
