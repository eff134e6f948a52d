package recall

import (
	"context"

	"github.com/ifybugsy/odiya-store-sub000/core"
)

// Source 表示一个可复用的召回信号（类目/价格带/卖家/行为历史/上新热度）。
// 你可以把它理解为"可并发 fan-out 的策略单元"。
//
// Source 只负责按自己的查询条件取候选并打上信号 label；
// 资格过滤与自排除由 filter 阶段统一处理，打分由 rank 阶段处理。
type Source interface {
	Name() string
	Recall(ctx context.Context, rctx *core.RecommendContext) ([]*core.Item, error)
}
