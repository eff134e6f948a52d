package core

import "github.com/ifybugsy/odiya-store-sub000/pkg/utils"

// RecommendContext 承载一次推荐请求的源商品/用户信息，贯穿整个 Pipeline 透传。
type RecommendContext struct {
	// Source 是推荐的源商品（"看了 X 的人还看了..."里的 X），不可为空。
	Source *Product

	// UserID 可选；为空时跳过个性化的 user_history 信号。
	UserID string

	// Labels 是请求级标签，可驱动整个 Pipeline 行为。
	Labels map[string]utils.Label

	// Params 请求级上下文参数（device_type、scene 等），供规则过滤使用。
	Params map[string]any
}

// PutLabel 写入请求级 Label。
func (rctx *RecommendContext) PutLabel(key string, lbl utils.Label) {
	if rctx.Labels == nil {
		rctx.Labels = make(map[string]utils.Label)
	}
	if old, ok := rctx.Labels[key]; ok {
		rctx.Labels[key] = utils.MergeLabel(old, lbl)
		return
	}
	rctx.Labels[key] = lbl
}

// GetLabel 获取请求级 Label。
func (rctx *RecommendContext) GetLabel(key string) (utils.Label, bool) {
	if rctx.Labels == nil {
		return utils.Label{}, false
	}
	lbl, ok := rctx.Labels[key]
	return lbl, ok
}
