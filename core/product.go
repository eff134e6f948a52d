package core

import "time"

// ApprovalStatus 是商品的审核状态。
// 只有 approved 状态的商品才能进入推荐候选集。
type ApprovalStatus string

const (
	StatusPending  ApprovalStatus = "pending"  // 待审核
	StatusApproved ApprovalStatus = "approved" // 审核通过
	StatusRejected ApprovalStatus = "rejected" // 审核拒绝
	StatusSold     ApprovalStatus = "sold"     // 已售出
)

// Product 是目录（Catalog）中的商品记录。
// 推荐引擎对其只读：写入/审核流转由店铺 CRUD 层负责。
type Product struct {
	ID        string         `json:"id"`
	Category  string         `json:"category"`
	Price     float64        `json:"price"` // 单位由业务决定，约束 >= 0
	VendorID  string         `json:"vendor_id"`
	Status    ApprovalStatus `json:"status"`
	Sold      bool           `json:"sold"`
	CreatedAt time.Time      `json:"created_at"`
}

// Eligible 判断商品是否可以作为推荐候选：审核通过且未售出。
func (p *Product) Eligible() bool {
	if p == nil {
		return false
	}
	return p.Status == StatusApproved && !p.Sold
}
