package recall

import (
	"context"
	"sort"
	"time"

	"github.com/ifybugsy/odiya-store-sub000/core"
)

// Trending 是上新热度召回源：源商品类目下近 30 天创建的商品，按浏览量降序取 TopN。
type Trending struct {
	Catalog core.CatalogReader
	History core.InteractionStore

	// Limit 候选上限，<= 0 时使用默认值 20。
	Limit int

	// Window 上新时间窗口，0 时使用默认的 30 天。
	Window time.Duration

	// FetchLimit 参与热度排序的候选抓取上限，<= 0 时使用默认值 100。
	FetchLimit int

	// Now 时钟注入点，便于测试窗口边界。
	Now func() time.Time
}

func (r *Trending) Name() string { return core.SignalTrending }

func (r *Trending) Recall(
	ctx context.Context,
	rctx *core.RecommendContext,
) ([]*core.Item, error) {
	if r.Catalog == nil || rctx == nil || rctx.Source == nil {
		return nil, nil
	}

	limit := r.Limit
	if limit <= 0 {
		limit = 20
	}
	window := r.Window
	if window <= 0 {
		window = core.TrendingWindow
	}
	fetchLimit := r.FetchLimit
	if fetchLimit <= 0 {
		fetchLimit = 100
	}
	now := time.Now
	if r.Now != nil {
		now = r.Now
	}

	since := now().Add(-window)
	products, err := r.Catalog.FindRecent(ctx, rctx.Source.Category, since, fetchLimit)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, nil
	}

	// 浏览量缺失时按 0 处理：新上架但还没有曝光的商品排在后面。
	counts := map[string]int64{}
	if r.History != nil {
		ids := make([]string, 0, len(products))
		for _, p := range products {
			ids = append(ids, p.ID)
		}
		if c, err := r.History.ViewCounts(ctx, ids); err == nil {
			counts = c
		} else {
			return nil, err
		}
	}

	sort.SliceStable(products, func(i, j int) bool {
		return counts[products[i].ID] > counts[products[j].ID]
	})
	if len(products) > limit {
		products = products[:limit]
	}

	out := make([]*core.Item, 0, len(products))
	for _, p := range products {
		out = append(out, core.NewProductItem(p, core.SignalTrending))
	}
	return out, nil
}
