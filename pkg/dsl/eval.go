// Package dsl 是基于 CEL (Common Expression Language) 的规则表达式解释器。
// 用于配置驱动的候选过滤：运营可以用表达式描述业务规则，无需改代码。
//
// 表达式语法（CEL 标准语法）：
//   - 基础：label.signal == "category" / item.score > 0.5
//   - 逻辑：label.signal.contains("trending") && item.score >= 0.3
//   - 上下文：rctx.user_id != "" / product.price < 5000.0
package dsl

import (
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"

	"github.com/ifybugsy/odiya-store-sub000/core"
)

var (
	// celEnv 是全局的 CEL 环境，线程安全，可复用
	celEnv     *cel.Env
	celEnvErr  error
	celEnvOnce sync.Once
)

func getCELEnv() (*cel.Env, error) {
	celEnvOnce.Do(func() {
		celEnv, celEnvErr = cel.NewEnv(
			cel.Variable("item", cel.DynType),
			cel.Variable("label", cel.DynType),
			cel.Variable("product", cel.DynType),
			cel.Variable("rctx", cel.DynType),
		)
	})
	return celEnv, celEnvErr
}

// Program 是编译后的规则表达式，可对多个 Item 复用执行。
type Program struct {
	prg cel.Program
}

// Compile 编译规则表达式。表达式应只编译一次，执行多次。
func Compile(expr string) (*Program, error) {
	env, err := getCELEnv()
	if err != nil {
		return nil, fmt.Errorf("cel env: %w", err)
	}
	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("compile error: %v", issues.Err())
	}
	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("program error: %w", err)
	}
	return &Program{prg: prg}, nil
}

// EvalBool 对单个候选执行表达式，返回布尔结果。
// 表达式返回非布尔值或执行出错时返回 error，由调用方决定降级策略。
func (p *Program) EvalBool(item *core.Item, rctx *core.RecommendContext) (bool, error) {
	out, _, err := p.prg.Eval(buildInput(item, rctx))
	if err != nil {
		// 对于不存在的 key，CEL 会返回错误。
		// 用户应该使用 label.key != null 来检查存在性，而不是直接访问。
		return false, fmt.Errorf("eval error: %v", err)
	}
	result, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("expression must return boolean, got %T", out.Value())
	}
	return result, nil
}

// buildInput 构建 CEL 表达式的输入数据。
func buildInput(item *core.Item, rctx *core.RecommendContext) map[string]any {
	labels := make(map[string]any)
	if item != nil {
		for k, lbl := range item.Labels {
			labels[k] = lbl.Value
		}
	}

	itemInput := map[string]any{}
	productInput := map[string]any{}
	if item != nil {
		itemInput["id"] = item.ID
		itemInput["score"] = item.Score
		if p := item.Product(); p != nil {
			productInput["id"] = p.ID
			productInput["category"] = p.Category
			productInput["price"] = p.Price
			productInput["vendor_id"] = p.VendorID
			productInput["status"] = string(p.Status)
			productInput["sold"] = p.Sold
		}
	}

	rctxInput := map[string]any{}
	if rctx != nil {
		rctxInput["user_id"] = rctx.UserID
		if rctx.Source != nil {
			rctxInput["source_id"] = rctx.Source.ID
			rctxInput["source_category"] = rctx.Source.Category
		}
		for k, v := range rctx.Params {
			rctxInput[k] = v
		}
	}

	return map[string]any{
		"item":    itemInput,
		"label":   labels,
		"product": productInput,
		"rctx":    rctxInput,
	}
}
