package recall

import (
	"context"

	"github.com/ifybugsy/odiya-store-sub000/core"
)

// UserHistory 是基于用户历史行为的个性化召回源。
// 回看用户最近的购买/心愿单行为，推荐这些行为所在类目下的商品。
// 请求未携带用户时该信号直接跳过。
type UserHistory struct {
	History core.InteractionStore
	Catalog core.CatalogReader

	// Limit 候选上限，<= 0 时使用默认值 30。
	Limit int

	// Lookback 回看的行为条数，<= 0 时使用默认值 10。
	Lookback int

	// BehaviorTypes 参与画像的行为类型，为空时默认 purchase + wishlist。
	BehaviorTypes []core.InteractionType
}

func (r *UserHistory) Name() string { return core.SignalHistory }

func (r *UserHistory) Recall(
	ctx context.Context,
	rctx *core.RecommendContext,
) ([]*core.Item, error) {
	if r.History == nil || r.Catalog == nil || rctx == nil || rctx.UserID == "" {
		return nil, nil
	}

	lookback := r.Lookback
	if lookback <= 0 {
		lookback = core.HistoryLookback
	}
	limit := r.Limit
	if limit <= 0 {
		limit = 30
	}
	types := r.BehaviorTypes
	if len(types) == 0 {
		types = []core.InteractionType{core.InteractionPurchase, core.InteractionWishlist}
	}

	events, err := r.History.RecentByUser(ctx, rctx.UserID, types, lookback)
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, nil
	}

	// 行为记录里的类目是写入时的冗余快照，直接可用，无需回查商品。
	categories := make([]string, 0, len(events))
	seenCat := make(map[string]struct{}, len(events))
	for _, ev := range events {
		if ev.Category == "" {
			continue
		}
		if _, ok := seenCat[ev.Category]; ok {
			continue
		}
		seenCat[ev.Category] = struct{}{}
		categories = append(categories, ev.Category)
	}

	out := make([]*core.Item, 0, limit)
	seen := make(map[string]struct{}, limit)
	for _, cat := range categories {
		if len(out) >= limit {
			break
		}
		products, err := r.Catalog.FindByCategory(ctx, cat, limit-len(out))
		if err != nil {
			return nil, err
		}
		for _, p := range products {
			if _, ok := seen[p.ID]; ok {
				continue
			}
			seen[p.ID] = struct{}{}
			out = append(out, core.NewProductItem(p, core.SignalHistory))
			if len(out) >= limit {
				break
			}
		}
	}
	return out, nil
}
