package entities

import "github.com/ali-0019/vapeland/models/enums"

// Item 商品实体
// - 表名: items
// - AverageRating / RatingCount 是派生字段，每次新增 ItemRating 时在
//   同一事务内由全部评分行重算（评分行才是真实数据源，见 repo/mysql/rating.go）。
type Item struct {
	BaseModel

	// 商品分类，四种固定取值（见 enums.ItemType）
	Type enums.ItemType `gorm:"type:int;not null;index" json:"type"`

	// 商品名称，必填
	Name string `gorm:"type:varchar(100);not null;index" json:"name"`

	// 商品描述，可选
	Description *string `gorm:"type:text" json:"description"`

	// 平均评分，[0,5]，派生字段
	AverageRating float64 `gorm:"type:decimal(3,2);default:0;check:average_rating >= 0 AND average_rating <= 5" json:"average_rating"`

	// 评分人数，派生字段
	RatingCount int64 `gorm:"type:bigint;default:0;check:rating_count >= 0" json:"rating_count"`
}
