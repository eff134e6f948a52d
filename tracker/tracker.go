// Package tracker 实现行为埋点：把用户-商品行为写入行为日志。
//
// 埋点是 fire-and-forget 的副作用：商品不存在、写入失败都只记日志不上抛，
// 调用方（路由层）永远不会因为埋点失败而报错。
package tracker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/ifybugsy/odiya-store-sub000/core"
	"github.com/ifybugsy/odiya-store-sub000/pkg/logging"
)

// Tracker 写入行为记录，写入时从目录冗余商品快照。
type Tracker struct {
	catalog core.CatalogReader
	history core.InteractionStore
	logger  *zap.Logger
	now     func() time.Time
}

func New(catalog core.CatalogReader, history core.InteractionStore, logger *zap.Logger) *Tracker {
	return &Tracker{
		catalog: catalog,
		history: history,
		logger:  logging.NopIfNil(logger),
		now:     time.Now,
	}
}

// WithClock 注入时钟，返回自身便于链式构造（测试用）。
func (t *Tracker) WithClock(now func() time.Time) *Tracker {
	t.now = now
	return t
}

// Track 记录一次用户行为。行为的类目/卖家/价格在此刻从商品快照冗余，
// 之后商品变更不影响已写入的记录。
func (t *Tracker) Track(ctx context.Context, userID, productID string, typ core.InteractionType) {
	if !typ.Valid() {
		t.logger.Warn("tracking skipped: unknown interaction type",
			zap.String("type", string(typ)),
			zap.String("product_id", productID))
		return
	}

	p, err := t.catalog.GetProduct(ctx, productID)
	if err != nil {
		t.logger.Warn("tracking skipped: product lookup failed",
			zap.String("product_id", productID),
			zap.Error(err))
		return
	}

	event := &core.InteractionEvent{
		UserID:    userID,
		ProductID: productID,
		Type:      typ,
		Category:  p.Category,
		VendorID:  p.VendorID,
		Price:     p.Price,
		CreatedAt: t.now(),
	}
	if err := t.history.Append(ctx, event); err != nil {
		t.logger.Warn("tracking write failed",
			zap.String("product_id", productID),
			zap.String("user_id", userID),
			zap.Error(err))
	}
}
