package recall

import (
	"context"

	"github.com/ifybugsy/odiya-store-sub000/core"
)

// Category 是类目召回源：取与源商品同类目的商品。
// 权重最高的信号（默认 0.35）。
type Category struct {
	Catalog core.CatalogReader

	// Limit 候选上限，<= 0 时使用默认值 50。
	Limit int
}

func (r *Category) Name() string { return core.SignalCategory }

func (r *Category) Recall(
	ctx context.Context,
	rctx *core.RecommendContext,
) ([]*core.Item, error) {
	if r.Catalog == nil || rctx == nil || rctx.Source == nil {
		return nil, nil
	}

	limit := r.Limit
	if limit <= 0 {
		limit = 50
	}

	products, err := r.Catalog.FindByCategory(ctx, rctx.Source.Category, limit)
	if err != nil {
		return nil, err
	}

	out := make([]*core.Item, 0, len(products))
	for _, p := range products {
		out = append(out, core.NewProductItem(p, core.SignalCategory))
	}
	return out, nil
}
