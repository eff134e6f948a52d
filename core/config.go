package core

import "time"

// 信号名称常量：recall 阶段打 label，rank 阶段按名称查权重。
const (
	SignalCategory  = "category"
	SignalPriceBand = "price_band"
	SignalVendor    = "vendor"
	SignalHistory   = "user_history"
	SignalTrending  = "trending"
)

// SignalWeights 是各召回信号的固定权重。
// 候选每命中一个信号累加一次该信号的权重，这就是全部的"相似度"语义：
// 没有 pair 级别的相似度计算，只有集合成员关系 × 固定权重。
//
// 显式建模为配置结构而不是散落的常量，方便用替代权重测试 Scorer。
type SignalWeights struct {
	Category  float64 `yaml:"category" json:"category"`
	PriceBand float64 `yaml:"price_band" json:"price_band"`
	Vendor    float64 `yaml:"vendor" json:"vendor"`
	History   float64 `yaml:"history" json:"history"`
	Trending  float64 `yaml:"trending" json:"trending"`
}

// DefaultSignalWeights 返回线上默认权重。
func DefaultSignalWeights() SignalWeights {
	return SignalWeights{
		Category:  0.35,
		PriceBand: 0.20,
		Vendor:    0.20,
		History:   0.15,
		Trending:  0.10,
	}
}

// Of 按信号名称取权重，未知信号返回 0。
func (w SignalWeights) Of(signal string) float64 {
	switch signal {
	case SignalCategory:
		return w.Category
	case SignalPriceBand:
		return w.PriceBand
	case SignalVendor:
		return w.Vendor
	case SignalHistory:
		return w.History
	case SignalTrending:
		return w.Trending
	}
	return 0
}

// 引擎级默认值。
const (
	// DefaultLimit 是调用方未指定数量时的默认返回条数。
	DefaultLimit = 8

	// MaxRecommendations 是缓存文档的条数上限，也是 limit 的夹逼上界。
	MaxRecommendations = 12

	// DefaultCacheTTL 是推荐缓存的存活时间。
	DefaultCacheTTL = time.Hour

	// TrendingWindow 是 trending 信号的商品上新时间窗口。
	TrendingWindow = 30 * 24 * time.Hour

	// HistoryLookback 是构建 user_history 信号时回看的行为条数上限。
	HistoryLookback = 10

	// 价格带区间系数：[PriceBandLow × price, PriceBandHigh × price]，含端点。
	PriceBandLow  = 0.7
	PriceBandHigh = 1.3
)
