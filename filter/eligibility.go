package filter

import (
	"context"

	"github.com/ifybugsy/odiya-store-sub000/core"
)

// Eligibility 是候选资格过滤器：只有审核通过且未售出的商品可以被推荐。
// 候选缺失商品元信息时按不合格处理（无法验证资格的候选不出结果）。
type Eligibility struct{}

func (f *Eligibility) Name() string { return "eligibility" }

func (f *Eligibility) ShouldFilter(
	_ context.Context,
	_ *core.RecommendContext,
	item *core.Item,
) (bool, error) {
	return !item.Product().Eligible(), nil
}

// SelfExclude 排除源商品自身：P 的推荐列表永远不包含 P。
type SelfExclude struct{}

func (f *SelfExclude) Name() string { return "self_exclude" }

func (f *SelfExclude) ShouldFilter(
	_ context.Context,
	rctx *core.RecommendContext,
	item *core.Item,
) (bool, error) {
	if rctx == nil || rctx.Source == nil {
		return false, nil
	}
	return item.ID == rctx.Source.ID, nil
}
