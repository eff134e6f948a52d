package core

import "time"

// InteractionType 是用户行为类型。
type InteractionType string

const (
	InteractionView     InteractionType = "view"
	InteractionClick    InteractionType = "click"
	InteractionPurchase InteractionType = "purchase"
	InteractionWishlist InteractionType = "wishlist"
	InteractionCompare  InteractionType = "compare"
	InteractionReview   InteractionType = "review"
)

// Valid 判断行为类型是否为已知类型。
func (t InteractionType) Valid() bool {
	switch t {
	case InteractionView, InteractionClick, InteractionPurchase,
		InteractionWishlist, InteractionCompare, InteractionReview:
		return true
	}
	return false
}

// InteractionEvent 是一条用户-商品行为记录。
// Category / VendorID / Price 在写入时从商品快照冗余（denormalize），
// 写入后不可变：即使商品后续被修改，历史行为的画像特征保持当时的值。
type InteractionEvent struct {
	UserID    string          `json:"user_id"`
	ProductID string          `json:"product_id"`
	Type      InteractionType `json:"type"`
	Category  string          `json:"category"`
	VendorID  string          `json:"vendor_id"`
	Price     float64         `json:"price"`
	CreatedAt time.Time       `json:"created_at"`
}
