package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/go-playground/validator/v10"
	"github.com/mahtab89/hypixel-notifier/base/ctx"
	"github.com/mahtab89/hypixel-notifier/base/database/redisclient"
	"github.com/mahtab89/hypixel-notifier/base/log"
	"github.com/mahtab89/hypixel-notifier/base/metrics"
	bValidator "github.com/mahtab89/hypixel-notifier/base/validator"
	"github.com/mahtab89/hypixel-notifier/domain/keys"
	mmiddleware "github.com/mahtab89/hypixel-notifier/middleware"
	"github.com/mahtab89/hypixel-notifier/service/cache"
	"github.com/mahtab89/hypixel-notifier/service/cache/provider"
	"github.com/mahtab89/hypixel-notifier/service/cache/provider/primitive"
	redisprovider "github.com/mahtab89/hypixel-notifier/service/cache/provider/redis"
	"github.com/mahtab89/hypixel-notifier/service/hypixel"
	"github.com/mahtab89/hypixel-notifier/service/mojang"
	"github.com/mahtab89/hypixel-notifier/service/redis"
	auction_delivery "github.com/mahtab89/hypixel-notifier/stores/auction/delivery/http"
	auction_usecase "github.com/mahtab89/hypixel-notifier/stores/auction/usecase"
	hc_delivery "github.com/mahtab89/hypixel-notifier/stores/healthcheck/delivery/http"
	hc_repo "github.com/mahtab89/hypixel-notifier/stores/healthcheck/repository"
	hc_usecase "github.com/mahtab89/hypixel-notifier/stores/healthcheck/usecase"
)

func init() {
	configFile := pflag.String("config", "infra/configs/config.yaml", "path to config file")
	pflag.Parse()

	viper.SetConfigType("yaml")
	viper.SetConfigFile(*configFile)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	if origins := viper.GetStringSlice("cors.allowOrigins"); len(origins) > 0 {
		e.Use(middleware.CORSWithConfig(middleware.CORSConfig{AllowOrigins: origins}))
	} else {
		e.Use(middleware.CORS())
	}
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	// init cache provider
	var cacheProvider provider.Provider
	var redisCache redis.Service
	if redisCacheURI := viper.GetString("redis_cache.uri"); redisCacheURI != "" {
		context.Info("init redis cache")
		redisCacheName := viper.GetString("redis_cache.name")
		redisCachePwd := viper.GetString("redis_cache.password")
		redisCachePoolMultiplier := viper.GetFloat64("redis_cache.poolMultiplier")
		redisCachePool := redisclient.MustConnectRedis(redisCacheURI, redisCachePwd, redisclient.RedisParam{
			PoolMultiplier: redisCachePoolMultiplier,
		})
		redisCache = redis.New(redisCacheName, metrics.New(redisCacheName), redisCachePool)
		cacheProvider = redisprovider.NewRedis(redisCache)
	} else {
		context.Info("init in-memory cache")
		cacheProvider = primitive.NewPrimitive("primary", viper.GetInt("cache.sizeMb"))
	}

	auctionsCache := cache.New(cache.ServiceConfig{
		Ttl:   viper.GetDuration("cache.auctionsTtl"),
		Pfx:   keys.PfxAuctions,
		Cache: cacheProvider,
	})
	bidsCache := cache.New(cache.ServiceConfig{
		Ttl:   viper.GetDuration("cache.defaultTtl"),
		Pfx:   keys.PfxBids,
		Cache: cacheProvider,
	})

	// init upstream clients
	httpTimeout := viper.GetDuration("http.timeout")
	mojangClient := mojang.NewClient(&mojang.ClientCfg{
		HttpClient: http.Client{},
		Timeout:    httpTimeout,
		Url:        viper.GetString("mojang.url"),
	})
	hypixelClient := hypixel.NewClient(&hypixel.ClientCfg{
		HttpClient: http.Client{},
		Timeout:    httpTimeout,
		Apikey:     viper.GetString("hypixel.apikey"),
		Url:        viper.GetString("hypixel.url"),
	})

	// construct repository, usecase and delivery
	hcRepo := hc_repo.New(cacheProvider, redisCache)
	hc := hc_usecase.New(hcRepo)
	auctionUseCase := auction_usecase.New(&auction_usecase.AuctionUseCaseCfg{
		Mojang:        mojangClient,
		Hypixel:       hypixelClient,
		AuctionsCache: auctionsCache,
		BidsCache:     bidsCache,
	})

	hc_delivery.New(e, hc)
	auction_delivery.New(e, auctionUseCase, viper.GetBool("debug"))

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
