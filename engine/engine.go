// Package engine 组装推荐引擎：缓存优先，miss 时走 召回 fan-out → 过滤 → 打分 → 截断
// 的 Pipeline 重算，结果整体写回缓存。
package engine

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/ifybugsy/odiya-store-sub000/cache"
	"github.com/ifybugsy/odiya-store-sub000/core"
	"github.com/ifybugsy/odiya-store-sub000/filter"
	"github.com/ifybugsy/odiya-store-sub000/pipeline"
	"github.com/ifybugsy/odiya-store-sub000/pkg/logging"
	"github.com/ifybugsy/odiya-store-sub000/rank"
	"github.com/ifybugsy/odiya-store-sub000/recall"
	"github.com/ifybugsy/odiya-store-sub000/rerank"
	"github.com/ifybugsy/odiya-store-sub000/tracker"
)

// Engine 是推荐引擎的对外门面，对接路由层的两个操作：
// GetRecommendations 与 TrackInteraction。
//
// 错误约定：
//   - 源商品不存在 → 返回 NOT_FOUND 的 DomainError（唯一透传的失败）
//   - 其他内部错误 → 返回空列表 + error 级日志（防御性兜底，不崩不挂）
type Engine struct {
	catalog core.CatalogReader
	history core.InteractionStore
	cache   *cache.Cache
	tracker *tracker.Tracker
	pipe    *pipeline.Pipeline
	logger  *zap.Logger

	weights       core.SignalWeights
	ttl           time.Duration
	sourceTimeout time.Duration
	now           func() time.Time
	extraFilters  []filter.Filter

	// sf 非 nil 时启用 per-key 的 single-flight：同一商品的并发 miss
	// 合并为一次重算。默认关闭以对齐源行为（并发重写缓存无害，整体替换）。
	sf *singleflight.Group
}

// Option 配置 Engine。
type Option func(*Engine)

// WithLogger 注入 logger，默认 no-op。
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// WithWeights 覆盖默认信号权重。
func WithWeights(w core.SignalWeights) Option {
	return func(e *Engine) { e.weights = w }
}

// WithTTL 覆盖默认的 1 小时缓存 TTL。
func WithTTL(ttl time.Duration) Option {
	return func(e *Engine) { e.ttl = ttl }
}

// WithSourceTimeout 设置每个召回信号的超时时间。
func WithSourceTimeout(d time.Duration) Option {
	return func(e *Engine) { e.sourceTimeout = d }
}

// WithClock 注入时钟（测试过期语义用）。
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithSingleFlight 启用并发 miss 合并（防缓存击穿，可选增强）。
func WithSingleFlight() Option {
	return func(e *Engine) { e.sf = &singleflight.Group{} }
}

// WithFilters 追加业务过滤器（如 CEL 规则），在资格/自排除之后执行。
func WithFilters(filters ...filter.Filter) Option {
	return func(e *Engine) { e.extraFilters = append(e.extraFilters, filters...) }
}

// New 构建引擎。catalog/history 是外部协作方的端口，cacheStore 是缓存后端。
func New(catalog core.CatalogReader, history core.InteractionStore, cacheStore core.Store, opts ...Option) *Engine {
	e := &Engine{
		catalog: catalog,
		history: history,
		weights: core.DefaultSignalWeights(),
		ttl:     core.DefaultCacheTTL,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = logging.NopIfNil(e.logger)

	e.cache = cache.New(cacheStore,
		cache.WithTTL(e.ttl),
		cache.WithClock(e.now),
		cache.WithLogger(e.logger))
	e.tracker = tracker.New(catalog, history, e.logger).WithClock(e.now)
	e.pipe = e.buildPipeline()
	return e
}

// buildPipeline 组装固定的四阶段 Pipeline。
func (e *Engine) buildPipeline() *pipeline.Pipeline {
	filters := []filter.Filter{
		&filter.Eligibility{},
		&filter.SelfExclude{},
	}
	filters = append(filters, e.extraFilters...)

	return &pipeline.Pipeline{
		Nodes: []pipeline.Node{
			&recall.Fanout{
				Sources: []recall.Source{
					&recall.Category{Catalog: e.catalog},
					&recall.PriceBand{Catalog: e.catalog},
					&recall.Vendor{Catalog: e.catalog},
					&recall.UserHistory{History: e.history, Catalog: e.catalog},
					&recall.Trending{Catalog: e.catalog, History: e.history, Now: e.now},
				},
				Timeout: e.sourceTimeout,
				Logger:  e.logger,
			},
			&filter.Node{Filters: filters},
			&rank.SignalWeight{Weights: e.weights},
			&rerank.TopN{N: core.MaxRecommendations},
		},
	}
}

// GetRecommendations 返回商品 productID 的相关推荐，按累计分数降序，
// 最多 limit 条（limit <= 0 取默认 8，上限夹逼到 12）。
// userID 可为空，为空时跳过个性化信号。
func (e *Engine) GetRecommendations(
	ctx context.Context,
	productID string,
	userID string,
	limit int,
) ([]core.Recommendation, error) {
	if limit <= 0 {
		limit = core.DefaultLimit
	}
	if limit > core.MaxRecommendations {
		limit = core.MaxRecommendations
	}

	source, err := e.catalog.GetProduct(ctx, productID)
	if err != nil {
		if core.IsNotFound(err) {
			return nil, err
		}
		// 目录暂时不可用等情况走兜底：空列表，不上抛
		e.logger.Error("catalog lookup failed",
			zap.String("product_id", productID),
			zap.Error(err))
		return []core.Recommendation{}, nil
	}

	if doc, ok := e.cache.Get(ctx, productID); ok {
		return truncate(doc.Recommendations, limit), nil
	}

	recs, err := e.computeAndStore(ctx, source, userID)
	if err != nil {
		// 空结果（成功）与计算失败在内部有区分，对调用方统一为空列表
		e.logger.Error("recommendation compute failed",
			zap.String("product_id", productID),
			zap.Error(err))
		return []core.Recommendation{}, nil
	}
	return truncate(recs, limit), nil
}

// computeAndStore 执行 Pipeline 重算并写回缓存，返回完整的 Top-12 列表。
func (e *Engine) computeAndStore(
	ctx context.Context,
	source *core.Product,
	userID string,
) ([]core.Recommendation, error) {
	if e.sf == nil {
		return e.compute(ctx, source, userID)
	}

	// single-flight 按源商品合并并发重算；key 不含 userID，
	// 个性化信号只影响候选覆盖度，缓存文档本就是商品维度共享的。
	v, err, _ := e.sf.Do(source.ID, func() (any, error) {
		return e.compute(ctx, source, userID)
	})
	if err != nil {
		return nil, err
	}
	return v.([]core.Recommendation), nil
}

func (e *Engine) compute(
	ctx context.Context,
	source *core.Product,
	userID string,
) ([]core.Recommendation, error) {
	rctx := &core.RecommendContext{
		Source: source,
		UserID: userID,
	}

	items, err := e.pipe.Run(ctx, rctx, nil)
	if err != nil {
		return nil, err
	}

	recs := make([]core.Recommendation, 0, len(items))
	for _, it := range items {
		recs = append(recs, core.Recommendation{
			ProductID: it.ID,
			Score:     it.Score,
			Reason:    core.DefaultReason,
		})
	}

	if err := e.cache.Put(ctx, source.ID, recs); err != nil {
		// 缓存写失败不影响本次结果，下次请求重算
		e.logger.Warn("cache write failed",
			zap.String("product_id", source.ID),
			zap.Error(err))
	}
	return recs, nil
}

// TrackInteraction 记录一次用户行为，best-effort，永不报错。
func (e *Engine) TrackInteraction(ctx context.Context, userID, productID string, typ core.InteractionType) {
	e.tracker.Track(ctx, userID, productID, typ)
}

func truncate(recs []core.Recommendation, limit int) []core.Recommendation {
	if len(recs) > limit {
		return recs[:limit]
	}
	return recs
}
