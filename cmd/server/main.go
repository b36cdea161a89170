package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/dharmasatrya/fareparse/internal/aggregator"
	"github.com/dharmasatrya/fareparse/internal/cache"
	"github.com/dharmasatrya/fareparse/internal/config"
	"github.com/dharmasatrya/fareparse/internal/handler"
	"github.com/dharmasatrya/fareparse/internal/parser"
	"github.com/dharmasatrya/fareparse/internal/ranking"
	"github.com/dharmasatrya/fareparse/internal/ratelimit"
	"github.com/dharmasatrya/fareparse/internal/service"
)

func main() {
	cfg := config.Load()
	e := echo.New()
	e.JSONSerializer = handler.JSONSerializer{}

	rateLimiter := ratelimit.NewClientLimiter(ratelimit.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
	})

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestID())
	e.Use(middleware.BodyLimit("20M"))
	e.Use(rateLimiter.Middleware())

	var responseCache cache.Cache
	if cfg.CacheEnabled {
		redisCache, err := cache.NewRedisCache(cache.RedisConfig{
			Host:     cfg.RedisHost,
			Port:     cfg.RedisPort,
			Password: cfg.RedisPassword,
			TTL:      cfg.RedisTTL,
		})
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		responseCache = redisCache
		log.Printf("Redis cache enabled (host: %s:%s, TTL: %v)", cfg.RedisHost, cfg.RedisPort, cfg.RedisTTL)
	} else {
		responseCache = cache.NewNoOpCache()
		log.Println("Cache disabled")
	}
	defer responseCache.Close()

	loader := aggregator.NewLoader(responseCache, aggregator.Config{
		Timeout: cfg.LoadTimeout,
		Parser:  parser.Options{Strict: cfg.StrictOptions},
	})
	weights := ranking.Weights{Time: cfg.TimeWeight, Cost: cfg.CostWeight}
	svc := service.New(loader, weights, cfg.FetchTimeout)

	handler.Register(e, handler.NewFareHandler(svc))

	log.Printf("Starting fare variant server on port %s (weights time=%.2f cost=%.2f, strict=%v)",
		cfg.Port, weights.Time, weights.Cost, cfg.StrictOptions)

	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
