package entities

import "github.com/ali-0019/vapeland/models/enums"

// TechQuestion 技术问答实体
// - 表名: tech_questions
// - 评分语义与 Item 平行（派生的平均分/计数），回复语义与 Comment 平行但
//   刻意保持单层: QuestionReply 没有父回复字段，不构成嵌套树。
type TechQuestion struct {
	BaseModel

	// 提问者用户ID
	UserID int64 `gorm:"not null;index" json:"user_id"`

	// 问题正文，必填
	Text string `gorm:"type:text;not null" json:"text"`

	// 媒体引用，可选
	MediaRef *string `gorm:"type:varchar(255)" json:"media_ref"`

	// 审核状态，默认待审核
	Status enums.ContentStatus `gorm:"type:int;default:0;index" json:"status"`

	// 平均评分，[0,5]，派生字段
	AverageRating float64 `gorm:"type:decimal(3,2);default:0;check:average_rating >= 0 AND average_rating <= 5" json:"average_rating"`

	// 评分人数，派生字段
	RatingCount int64 `gorm:"type:bigint;default:0;check:rating_count >= 0" json:"rating_count"`
}
