package rank

import (
	"context"
	"sort"

	"github.com/ifybugsy/odiya-store-sub000/core"
	"github.com/ifybugsy/odiya-store-sub000/pipeline"
)

// SignalWeight 是固定权重打分 Node：候选每命中一个召回信号，
// 累加一次该信号的权重，然后按累计分数降序排序。
//
// 信号命中关系来自 fanout 合并后的 signal label（"category|price_band" 形式）；
// 同一信号重复出现只计一次（集合语义，不是出现次数）。
// 排序使用稳定排序，平分候选保持 fanout 合并后的先后次序。
type SignalWeight struct {
	Weights core.SignalWeights
}

func (n *SignalWeight) Name() string {
	return "rank.signal_weight"
}

func (n *SignalWeight) Kind() pipeline.Kind {
	return pipeline.KindRank
}

func (n *SignalWeight) Process(
	_ context.Context,
	_ *core.RecommendContext,
	items []*core.Item,
) ([]*core.Item, error) {
	for _, it := range items {
		if it == nil {
			continue
		}
		score := 0.0
		for _, signal := range it.Signals() {
			score += n.Weights.Of(signal)
		}
		it.Score = score
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Score > items[j].Score
	})
	return items, nil
}
