// Package cache 实现按源商品维度的推荐结果缓存。
//
// 每个源商品一条 JSON 文档（core.CachedRecommendations），整条替换式 upsert。
// TTL 同时交给后端（Set 带 ttl）并在读取时二次校验 cached_at：
// 后端不支持原生过期时（或时钟注入测试时）过期读取同样等价于 miss。
package cache

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/ifybugsy/odiya-store-sub000/core"
)

const keyPrefix = "rec:"

// Cache 是推荐结果缓存，线程安全性由底层 Store 保证。
type Cache struct {
	store  core.Store
	ttl    time.Duration
	now    func() time.Time
	logger *zap.Logger
}

// Option 配置 Cache。
type Option func(*Cache)

// WithTTL 覆盖默认的 1 小时 TTL。
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) { c.ttl = ttl }
}

// WithClock 注入时钟，用于测试过期语义。
func WithClock(now func() time.Time) Option {
	return func(c *Cache) { c.now = now }
}

// WithLogger 注入 logger，记录解码失败等被吞掉的异常。
func WithLogger(logger *zap.Logger) Option {
	return func(c *Cache) { c.logger = logger }
}

func New(store core.Store, opts ...Option) *Cache {
	c := &Cache{
		store:  store,
		ttl:    core.DefaultCacheTTL,
		now:    time.Now,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// TTL 返回缓存存活时间。
func (c *Cache) TTL() time.Duration { return c.ttl }

// Get 返回未过期的缓存文档；不存在/已过期/损坏都按 miss 处理。
func (c *Cache) Get(ctx context.Context, productID string) (*core.CachedRecommendations, bool) {
	data, err := c.store.Get(ctx, keyPrefix+productID)
	if err != nil {
		if !core.IsStoreNotFound(err) {
			c.logger.Warn("cache read failed",
				zap.String("product_id", productID),
				zap.Error(err))
		}
		return nil, false
	}

	var doc core.CachedRecommendations
	if err := json.Unmarshal(data, &doc); err != nil {
		// 损坏的文档按 miss 处理，下次 Put 整体覆盖
		c.logger.Warn("cache entry corrupt",
			zap.String("product_id", productID),
			zap.Error(err))
		return nil, false
	}

	if doc.Expired(c.now()) {
		return nil, false
	}
	return &doc, true
}

// Put 无条件整体替换该源商品的缓存文档（upsert 语义），时间戳取当前时钟。
func (c *Cache) Put(ctx context.Context, productID string, recs []core.Recommendation) error {
	doc := core.CachedRecommendations{
		ProductID:       productID,
		Recommendations: recs,
		CachedAt:        c.now(),
		TTLSeconds:      int(c.ttl / time.Second),
	}
	data, err := json.Marshal(&doc)
	if err != nil {
		return err
	}
	return c.store.Set(ctx, keyPrefix+productID, data, doc.TTLSeconds)
}
