package recall

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ifybugsy/odiya-store-sub000/core"
	"github.com/ifybugsy/odiya-store-sub000/pipeline"
)

// Fanout 是一个 Recall Node：并发执行多个召回信号，并合并结果。
// 单个信号失败只损失该信号的候选（partial signal coverage），不中断其他信号。
type Fanout struct {
	Sources []Source

	// Timeout 是每个召回信号的超时时间，0 表示跟随请求 ctx。
	Timeout time.Duration

	// Logger 记录被吞掉的信号失败，nil 时不记录。
	Logger *zap.Logger
}

func (n *Fanout) Name() string        { return "recall.fanout" }
func (n *Fanout) Kind() pipeline.Kind { return pipeline.KindRecall }

func (n *Fanout) Process(
	ctx context.Context,
	rctx *core.RecommendContext,
	_ []*core.Item,
) ([]*core.Item, error) {
	if len(n.Sources) == 0 {
		return nil, nil
	}

	// 每个信号写自己的槽位，合并时按 Sources 顺序遍历：
	// 并发执行但结果顺序确定，平分时的相对次序在多次重算间保持稳定。
	results := make([][]*core.Item, len(n.Sources))
	eg, _ := errgroup.WithContext(ctx)

	for i, src := range n.Sources {
		slot := i
		s := src
		eg.Go(func() error {
			recallCtx := ctx
			if n.Timeout > 0 {
				var cancel context.CancelFunc
				recallCtx, cancel = context.WithTimeout(ctx, n.Timeout)
				defer cancel()
			}

			items, err := s.Recall(recallCtx, rctx)
			if err != nil {
				// 超时或错误时该信号按空候选集处理，不中断其他信号
				if n.Logger != nil {
					n.Logger.Warn("recall source failed",
						zap.String("source", s.Name()),
						zap.Error(err))
				}
				return nil
			}

			results[slot] = items
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return n.merge(results), nil
}

// merge 按 ID 去重，保留第一个出现的，并合并 labels。
// 同一候选命中多个信号时，signal label 会累积成 "category|price_band"，
// rank 阶段据此做集合成员 × 权重的累加打分。
func (n *Fanout) merge(results [][]*core.Item) []*core.Item {
	seen := make(map[string]*core.Item)
	var out []*core.Item
	for _, items := range results {
		for _, it := range items {
			if it == nil {
				continue
			}
			if old, ok := seen[it.ID]; ok {
				for k, v := range it.Labels {
					old.PutLabel(k, v)
				}
				continue
			}
			seen[it.ID] = it
			out = append(out, it)
		}
	}
	return out
}
