package repository

import (
	"bytes"
	"time"

	"github.com/mahtab89/hypixel-notifier/base/ctx"
	"github.com/mahtab89/hypixel-notifier/domain"
	hcdomain "github.com/mahtab89/hypixel-notifier/domain/healthcheck"
	"github.com/mahtab89/hypixel-notifier/domain/keys"
	"github.com/mahtab89/hypixel-notifier/service/cache/provider"
	"github.com/mahtab89/hypixel-notifier/service/redis"
)

type impl struct {
	cache provider.Provider
	// redisCache is nil when the process runs on the in-memory provider
	redisCache redis.Service
}

// New creates new healthCheckRepo object representation of HealthCheckRepo interface
func New(cache provider.Provider, redisCache redis.Service) hcdomain.HealthCheckRepo {
	return &impl{
		cache:      cache,
		redisCache: redisCache,
	}
}

func (im *impl) PingCache(context ctx.Ctx) error {
	ctx, cancel := ctx.WithTimeout(context, 2*time.Second)
	defer cancel()

	key := keys.CacheKey(keys.PfxHealthCheck, "testset")
	if err := im.cache.Set(ctx, key, []byte("1"), 30*time.Second); err != nil {
		context.WithField("err", err).Error("test cache set failed")
		return err
	}
	val, _, err := im.cache.Get(ctx, key)
	if err != nil {
		context.WithField("err", err).Error("test cache get failed")
		return err
	}
	if !bytes.Equal(val, []byte("1")) {
		context.WithField("val", string(val)).Error("test cache roundtrip mismatch")
		return domain.ErrInternalServerError
	}

	if im.redisCache != nil {
		if err := im.redisCache.Ping(ctx); err != nil {
			context.WithField("err", err).Error("ping redis error")
			return err
		}
	}
	return nil
}
