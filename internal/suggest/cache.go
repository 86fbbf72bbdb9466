package suggest

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache memoises embedding vectors keyed by raw text. Lookups and
// stores are best effort: a broken cache degrades to recomputation,
// never to a failed suggestion.
type Cache interface {
	Get(ctx context.Context, key string) ([]float32, bool)
	Put(ctx context.Context, key string, vec []float32)
}

// MemoryCache is a process-local cache, safe for concurrent use.
type MemoryCache struct {
	mu   sync.Mutex
	vecs map[string][]float32
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{vecs: make(map[string][]float32)}
}

func (c *MemoryCache) Get(_ context.Context, key string) ([]float32, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	vec, ok := c.vecs[key]
	return vec, ok
}

func (c *MemoryCache) Put(_ context.Context, key string, vec []float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vecs[key] = vec
}

// Reset drops every cached vector; tests use this to start clean.
func (c *MemoryCache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vecs = make(map[string][]float32)
}

// RedisCache shares embeddings across processes.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(url string, ttl time.Duration) (*RedisCache, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &RedisCache{client: redis.NewClient(opt), ttl: ttl}, nil
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]float32, bool) {
	data, err := c.client.Get(ctx, "embed:"+key).Bytes()
	if err != nil {
		return nil, false
	}
	var vec []float32
	if err := json.Unmarshal(data, &vec); err != nil {
		return nil, false
	}
	return vec, true
}

func (c *RedisCache) Put(ctx context.Context, key string, vec []float32) {
	data, err := json.Marshal(vec)
	if err != nil {
		return
	}
	c.client.Set(ctx, "embed:"+key, data, c.ttl)
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}
