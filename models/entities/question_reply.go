package entities

import "github.com/ali-0019/vapeland/models/enums"

// QuestionReply 问答回复实体
// - 表名: question_replies
// - 扁平结构: 没有 ParentReplyID，与 CommentReply 的不对称是有意保留的设计。
type QuestionReply struct {
	BaseModel

	// 所属问题ID，外键
	QuestionID string `gorm:"type:char(36);not null;index" json:"question_id"`

	// 作者用户ID
	UserID int64 `gorm:"not null;index" json:"user_id"`

	// 回复正文，必填
	Text string `gorm:"type:text;not null" json:"text"`

	// 媒体引用，可选
	MediaRef *string `gorm:"type:varchar(255)" json:"media_ref"`

	// 审核状态
	Status enums.ContentStatus `gorm:"type:int;default:0;index" json:"status"`
}
