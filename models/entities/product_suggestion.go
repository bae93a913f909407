package entities

import "github.com/ali-0019/vapeland/models/enums"

// ProductSuggestion 新品建议实体
// - 表名: product_suggestions
// - 不参与回复树，只作为审核队列中的一类内容存在。
type ProductSuggestion struct {
	BaseModel

	// 提交者用户ID
	UserID int64 `gorm:"not null;index" json:"user_id"`

	// 建议的商品名称，必填
	Name string `gorm:"type:varchar(100);not null" json:"name"`

	// 建议描述，可选
	Description *string `gorm:"type:text" json:"description"`

	// 审核状态
	Status enums.ContentStatus `gorm:"type:int;default:0;index" json:"status"`
}
