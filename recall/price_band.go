package recall

import (
	"context"

	"github.com/ifybugsy/odiya-store-sub000/core"
)

// PriceBand 是价格带召回源：取价格落在源商品价格 [0.7x, 1.3x]（含端点）内的商品。
// 有意跨类目：类目亲和是独立信号，两者命中时权重自然叠加。
type PriceBand struct {
	Catalog core.CatalogReader

	// Limit 候选上限，<= 0 时使用默认值 30。
	Limit int

	// Low/High 区间系数，零值时使用默认的 0.7 / 1.3。
	Low  float64
	High float64
}

func (r *PriceBand) Name() string { return core.SignalPriceBand }

func (r *PriceBand) Recall(
	ctx context.Context,
	rctx *core.RecommendContext,
) ([]*core.Item, error) {
	if r.Catalog == nil || rctx == nil || rctx.Source == nil {
		return nil, nil
	}

	limit := r.Limit
	if limit <= 0 {
		limit = 30
	}
	low := r.Low
	if low <= 0 {
		low = core.PriceBandLow
	}
	high := r.High
	if high <= 0 {
		high = core.PriceBandHigh
	}

	price := rctx.Source.Price
	products, err := r.Catalog.FindByPriceBetween(ctx, low*price, high*price, limit)
	if err != nil {
		return nil, err
	}

	out := make([]*core.Item, 0, len(products))
	for _, p := range products {
		out = append(out, core.NewProductItem(p, core.SignalPriceBand))
	}
	return out, nil
}
