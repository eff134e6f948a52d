package recall

import (
	"context"

	"github.com/ifybugsy/odiya-store-sub000/core"
)

// Vendor 是卖家亲和召回源：取与源商品同一卖家的其他商品。
type Vendor struct {
	Catalog core.CatalogReader

	// Limit 候选上限，<= 0 时使用默认值 20。
	Limit int
}

func (r *Vendor) Name() string { return core.SignalVendor }

func (r *Vendor) Recall(
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

	products, err := r.Catalog.FindByVendor(ctx, rctx.Source.VendorID, limit)
	if err != nil {
		return nil, err
	}

	out := make([]*core.Item, 0, len(products))
	for _, p := range products {
		out = append(out, core.NewProductItem(p, core.SignalVendor))
	}
	return out, nil
}
