package core

import "github.com/ifybugsy/odiya-store-sub000/pkg/utils"

// Meta key 约定：候选商品的完整记录挂在 Item.Meta 下，供过滤/打分阶段使用。
const MetaProduct = "product"

// LabelSignal 是候选来源信号的 label key。
// 一个候选命中多个信号时，Value 会按 MergeLabel 规则累积成 "category|price_band"。
const LabelSignal = "signal"

// Item 是推荐链路中的统一承载结构：分数、元信息、标签。
// Labels 用于解释与策略驱动；Score 用于排序决策。
type Item struct {
	ID     string
	Score  float64
	Meta   map[string]any
	Labels map[string]utils.Label
}

func NewItem(id string) *Item {
	return &Item{
		ID:     id,
		Score:  0,
		Meta:   make(map[string]any),
		Labels: make(map[string]utils.Label),
	}
}

// NewProductItem 用商品记录构建 Item，并打上来源信号 label。
func NewProductItem(p *Product, signal string) *Item {
	it := NewItem(p.ID)
	it.Meta[MetaProduct] = p
	it.PutLabel(LabelSignal, utils.Label{Value: signal, Source: "recall"})
	return it
}

// Product 取出 Meta 中的商品记录，不存在时返回 nil。
func (it *Item) Product() *Product {
	if it == nil || it.Meta == nil {
		return nil
	}
	p, _ := it.Meta[MetaProduct].(*Product)
	return p
}

// PutLabel 写入 Label；若已存在同名 key，则按默认 Merge 规则累积。
func (it *Item) PutLabel(key string, lbl utils.Label) {
	if it.Labels == nil {
		it.Labels = make(map[string]utils.Label)
	}
	if old, ok := it.Labels[key]; ok {
		it.Labels[key] = utils.MergeLabel(old, lbl)
		return
	}
	it.Labels[key] = lbl
}

// Signals 返回该候选命中的信号集合（去重后）。
func (it *Item) Signals() []string {
	lbl, ok := it.Labels[LabelSignal]
	if !ok || lbl.Value == "" {
		return nil
	}
	return utils.SplitUnique(lbl.Value, '|')
}
