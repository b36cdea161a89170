package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	json "github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"github.com/dharmasatrya/fareparse/internal/models"
)

// Cache stores parsed responses. Keys come from Key and cover both the
// source identifier and the document content.
type Cache interface {
	Get(ctx context.Context, key string) (*models.Response, bool)
	Set(ctx context.Context, key string, resp *models.Response) error
	Close() error
}

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	TTL      time.Duration
}

func DefaultRedisConfig() RedisConfig {
	return RedisConfig{
		Host:     "localhost",
		Port:     "6379",
		Password: "",
		DB:       0,
		TTL:      5 * time.Minute,
	}
}

func NewRedisCache(cfg RedisConfig) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Host + ":" + cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisCache{
		client: client,
		ttl:    cfg.TTL,
	}, nil
}

func (c *RedisCache) Get(ctx context.Context, key string) (*models.Response, bool) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}

	var resp models.Response
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, false
	}

	return &resp, true
}

func (c *RedisCache) Set(ctx context.Context, key string, resp *models.Response) error {
	data, err := json.Marshal(resp)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, key, data, c.ttl).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

type NoOpCache struct{}

func NewNoOpCache() *NoOpCache {
	return &NoOpCache{}
}

func (c *NoOpCache) Get(ctx context.Context, key string) (*models.Response, bool) {
	return nil, false
}

func (c *NoOpCache) Set(ctx context.Context, key string, resp *models.Response) error {
	return nil
}

func (c *NoOpCache) Close() error {
	return nil
}

// Key derives the cache key from the source name, the document bytes and
// the parse mode. The same bytes under another name are a distinct entry
// because the name is part of the response.
func Key(source string, content []byte, strict bool) string {
	keyData := struct {
		Source  string
		Content string
		Strict  bool
	}{
		Source: source,
		Strict: strict,
	}

	contentHash := sha256.Sum256(content)
	keyData.Content = hex.EncodeToString(contentHash[:])

	data, _ := json.Marshal(keyData)
	hash := sha256.Sum256(data)
	return "fares:" + hex.EncodeToString(hash[:])
}
