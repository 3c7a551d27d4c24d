package timezone

import (
	"sync"
	"time"
)

const DefaultTimezone = "America/Sao_Paulo"

// time.LoadLocation lê do disco; cacheamos por nome.
var locations sync.Map // string -> *time.Location

func load(tz string) (*time.Location, error) {
	if cached, ok := locations.Load(tz); ok {
		return cached.(*time.Location), nil
	}

	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, err
	}

	locations.Store(tz, loc)
	return loc, nil
}

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := load(tz)
	return err == nil
}

// Location resolve o timezone informado, caindo no padrão da casa
// quando o nome é vazio ou inválido.
func Location(tz string) *time.Location {
	if loc, err := load(tz); err == nil {
		return loc
	}

	loc, err := load(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func Now() time.Time {
	return time.Now().In(Location(DefaultTimezone))
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}
