package location_fx

import (
	"time"

	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"holiday-api/internal/config"
	"holiday-api/internal/services"
	mem "holiday-api/pkg/memcache"
)

var Module = fx.Provide(provideLocationValidator)

func provideLocationValidator(cfg *config.Config, cache mem.Store[bool]) services.LocationValidator {
	g := cfg.Geocoding
	if !g.Enabled {
		log.Warn().Msg("Geocoding disabled, every address is accepted")
		return services.AcceptAllValidator{}
	}
	return services.NewGeocodingClient(g.APIKey, g.BaseURL, cache, time.Duration(g.CacheTTLMinutes)*time.Minute)
}
