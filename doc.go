// Package recommend 是 odiya 店铺的商品推荐引擎。
//
// 设计要点：
// - Pipeline-first: 推荐逻辑通过 Node 串联（Recall fan-out → Filter → Rank → ReRank）
// - 五路召回信号：类目 / 价格带 / 卖家 / 行为历史 / 上新热度，集合成员 × 固定权重打分
// - 缓存优先：每个源商品一份 Top-12 文档，TTL 1 小时，miss 时同步重算整体替换
// - Labels-first: 信号归属全链路透传与标准化 merge，支持 explain / 规则过滤
package recommend

import "github.com/ifybugsy/odiya-store-sub000/pipeline"

// 轻量 facade：便于用户直接使用核心抽象。
type Pipeline = pipeline.Pipeline
type Node = pipeline.Node
type Kind = pipeline.Kind

const (
	KindRecall = pipeline.KindRecall
	KindFilter = pipeline.KindFilter
	KindRank   = pipeline.KindRank
	KindReRank = pipeline.KindReRank
)
