package core

import "time"

// DefaultReason 是推荐结果的统一展示文案。
// 来源信号记录在 Item 的 signal label 中，文案本身不区分信号。
const DefaultReason = "Recommended based on your interests"

// Recommendation 是对外输出的单条推荐：候选商品 + 累计分数 + 展示文案。
type Recommendation struct {
	ProductID string  `json:"product_id"`
	Score     float64 `json:"score"`
	Reason    string  `json:"reason"`
}

// CachedRecommendations 是缓存中每个源商品对应的持久化文档。
// 整条文档不可变：更新时整体替换（upsert），避免部分更新的竞态。
type CachedRecommendations struct {
	ProductID       string           `json:"product_id"`
	Recommendations []Recommendation `json:"recommendations"`
	CachedAt        time.Time        `json:"cached_at"`
	TTLSeconds      int              `json:"ttl_seconds"`
}

// Expired 判断缓存文档在 now 时刻是否已过期。
// 过期检查在读取时进行（advisory expiry），过期等价于 miss。
func (c *CachedRecommendations) Expired(now time.Time) bool {
	if c == nil {
		return true
	}
	return now.After(c.CachedAt.Add(time.Duration(c.TTLSeconds) * time.Second))
}
