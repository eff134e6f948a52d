package core

import (
	"context"
	"time"
)

// CatalogReader 是商品目录的只读端口，由店铺侧的存储实现。
//
// 查询只负责按条件取数，不做推荐语义上的过滤：
// 资格（approved 且未售出）与自排除在 filter 阶段统一处理。
type CatalogReader interface {
	// GetProduct 按 ID 读取商品；不存在时返回 NOT_FOUND 的 DomainError。
	GetProduct(ctx context.Context, id string) (*Product, error)

	// FindByCategory 返回指定类目下的商品，最多 limit 条。
	FindByCategory(ctx context.Context, category string, limit int) ([]*Product, error)

	// FindByPriceBetween 返回价格在 [low, high]（含端点）内的商品，跨类目。
	FindByPriceBetween(ctx context.Context, low, high float64, limit int) ([]*Product, error)

	// FindByVendor 返回指定卖家的商品，最多 limit 条。
	FindByVendor(ctx context.Context, vendorID string, limit int) ([]*Product, error)

	// FindRecent 返回类目下 since 之后创建的商品，最多 limit 条。
	FindRecent(ctx context.Context, category string, since time.Time, limit int) ([]*Product, error)
}

// InteractionStore 是行为日志的端口：追加写 + 按用户/类型批量读。
type InteractionStore interface {
	// Append 追加一条行为记录，记录写入后不可变。
	Append(ctx context.Context, event *InteractionEvent) error

	// RecentByUser 返回该用户指定类型的最近行为，按时间倒序，最多 limit 条。
	// types 为空时不限制类型。
	RecentByUser(ctx context.Context, userID string, types []InteractionType, limit int) ([]*InteractionEvent, error)

	// ViewCounts 返回各商品的浏览次数，用于 trending 信号排序。
	// 无浏览记录的商品可以缺席返回的 map。
	ViewCounts(ctx context.Context, productIDs []string) (map[string]int64, error)
}
