package memcache_fx

import (
	"go.uber.org/fx"

	mem "holiday-api/pkg/memcache"
)

var Module = fx.Provide(provideAddressCache)

func provideAddressCache() mem.Store[bool] {
	return mem.NewTTLCache[bool]()
}
