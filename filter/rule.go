package filter

import (
	"context"
	"fmt"

	"github.com/ifybugsy/odiya-store-sub000/core"
	"github.com/ifybugsy/odiya-store-sub000/pkg/dsl"
)

// Rule 是 CEL 表达式驱动的业务规则过滤器，表达式返回 true 的候选被移除。
// 用于配置驱动的运营规则，例如剔除高价商品：
//
//	NewRule("exclude_expensive", `product.price > 500000.0`)
//
// 表达式可引用 item / label / product / rctx，语法见 pkg/dsl。
type Rule struct {
	name string
	prg  *dsl.Program
}

// NewRule 编译表达式并构建规则过滤器。表达式非法时返回错误。
func NewRule(name, expr string) (*Rule, error) {
	prg, err := dsl.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("rule %s: %w", name, err)
	}
	return &Rule{name: name, prg: prg}, nil
}

func (f *Rule) Name() string { return "rule." + f.name }

func (f *Rule) ShouldFilter(
	_ context.Context,
	rctx *core.RecommendContext,
	item *core.Item,
) (bool, error) {
	return f.prg.EvalBool(item, rctx)
}
