package rerank

import (
	"context"

	"github.com/ifybugsy/odiya-store-sub000/core"
	"github.com/ifybugsy/odiya-store-sub000/pipeline"
)

// TopN 是截断节点，在排序后截取前 N 个候选。
// 推荐引擎用它把入缓存的列表压到 12 条。
type TopN struct {
	// N 要保留的候选数量。
	// 如果 N <= 0，则返回所有候选（不截断）。
	N int
}

func (n *TopN) Name() string {
	return "rerank.topn"
}

func (n *TopN) Kind() pipeline.Kind {
	return pipeline.KindReRank
}

func (n *TopN) Process(
	_ context.Context,
	_ *core.RecommendContext,
	items []*core.Item,
) ([]*core.Item, error) {
	if n.N <= 0 {
		return items, nil
	}
	if len(items) <= n.N {
		return items, nil
	}
	return items[:n.N], nil
}
