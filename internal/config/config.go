// Package config resolves settings from defaults, an optional properties
// file named by FARES_CONFIG, and the environment, in increasing priority.
package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/magiconair/properties"
)

const configFileEnv = "FARES_CONFIG"

type Config struct {
	Port           string
	CacheEnabled   bool
	RedisHost      string
	RedisPort      string
	RedisPassword  string
	RedisTTL       time.Duration
	TimeWeight     float64
	CostWeight     float64
	StrictOptions  bool
	RateLimitRPS   float64
	RateLimitBurst int
	FetchTimeout   time.Duration
	LoadTimeout    time.Duration
}

func Default() Config {
	return Config{
		Port:           "8080",
		CacheEnabled:   false,
		RedisHost:      "localhost",
		RedisPort:      "6379",
		RedisTTL:       5 * time.Minute,
		TimeWeight:     0.5,
		CostWeight:     0.5,
		StrictOptions:  false,
		RateLimitRPS:   10,
		RateLimitBurst: 20,
		FetchTimeout:   10 * time.Second,
		LoadTimeout:    30 * time.Second,
	}
}

// Load reads FARES_CONFIG if set. A missing or unreadable file is fatal
// since it was asked for explicitly.
func Load() Config {
	p := properties.NewProperties()
	if path := os.Getenv(configFileEnv); path != "" {
		loaded, err := properties.LoadFile(path, properties.UTF8)
		if err != nil {
			log.Fatalf("Failed to load config file %s: %v", path, err)
		}
		p = loaded
	}
	return FromProperties(p)
}

func FromProperties(p *properties.Properties) Config {
	d := Default()
	return Config{
		Port:           getEnv("PORT", p.GetString("port", d.Port)),
		CacheEnabled:   getEnvBool("CACHE_ENABLED", p.GetBool("cache.enabled", d.CacheEnabled)),
		RedisHost:      getEnv("REDIS_HOST", p.GetString("redis.host", d.RedisHost)),
		RedisPort:      getEnv("REDIS_PORT", p.GetString("redis.port", d.RedisPort)),
		RedisPassword:  getEnv("REDIS_PASSWORD", p.GetString("redis.password", d.RedisPassword)),
		RedisTTL:       getEnvDuration("REDIS_TTL", p.GetParsedDuration("redis.ttl", d.RedisTTL)),
		TimeWeight:     getEnvFloat("TIME_WEIGHT", p.GetFloat64("ranking.time_weight", d.TimeWeight)),
		CostWeight:     getEnvFloat("COST_WEIGHT", p.GetFloat64("ranking.cost_weight", d.CostWeight)),
		StrictOptions:  getEnvBool("STRICT_OPTIONS", p.GetBool("parser.strict", d.StrictOptions)),
		RateLimitRPS:   getEnvFloat("RATE_LIMIT_RPS", p.GetFloat64("ratelimit.rps", d.RateLimitRPS)),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", p.GetInt("ratelimit.burst", d.RateLimitBurst)),
		FetchTimeout:   getEnvDuration("FETCH_TIMEOUT", p.GetParsedDuration("fetch.timeout", d.FetchTimeout)),
		LoadTimeout:    getEnvDuration("LOAD_TIMEOUT", p.GetParsedDuration("load.timeout", d.LoadTimeout)),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}
	return f
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
