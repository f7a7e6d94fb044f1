package httpcache

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"boscoin.io/votebank/lib/common"
	"boscoin.io/votebank/lib/errors"
)

const (
	AdapterNone   = ""
	AdapterMemory = "memory"
	AdapterRedis  = "redis"
)

// NotFoundExpire keeps a 404 only briefly; the resource may be stored right
// after.
const NotFoundExpire = time.Second

// NewWrapper returns the response cache configured by `cfg`; without an
// adapter responses are not cached.
func NewWrapper(cfg common.Config) (Wrapper, error) {
	if cfg.HTTPCacheAdapter == AdapterNone {
		return NewNopClient(), nil
	}

	adapter, err := NewAdapter(cfg)
	if err != nil {
		return nil, err
	}

	return NewClient(
		WithAdapter(adapter),
		WithStatusCode(http.StatusNotFound, NotFoundExpire),
		WithLogger(log),
	)
}

func NewAdapter(cfg common.Config) (Adapter, error) {
	switch cfg.HTTPCacheAdapter {
	case AdapterMemory:
		return NewMemCacheAdapter(cfg.HTTPCachePoolSize), nil
	case AdapterRedis:
		if len(cfg.HTTPCacheRedisAddrs) < 1 {
			return nil, errors.HTTPCacheInvalidConfig.Clone().SetData("error", "redis addresses are empty")
		}

		addrs := map[string]string{}
		for i, addr := range cfg.HTTPCacheRedisAddrs {
			addrs[fmt.Sprintf("server%d", i)] = strings.TrimSpace(addr)
		}
		return NewRedisCacheAdapter(&RedisRingOptions{Addrs: addrs}), nil
	default:
		return nil, errors.HTTPCacheInvalidConfig.Clone().SetData("error", "unknown cache adapter: "+cfg.HTTPCacheAdapter)
	}
}
