package entities

import "github.com/ali-0019/vapeland/models/enums"

// ContactMessage 联系消息实体
// - 表名: contact_messages
// - 生命周期独立于 ContentStatus: 终态动作是"答复"（Answered + Response 正文），
//   而不是二元的通过/拒绝。
type ContactMessage struct {
	BaseModel

	// 发送者用户ID
	UserID int64 `gorm:"not null;index" json:"user_id"`

	// 消息正文，必填
	Text string `gorm:"type:text;not null" json:"text"`

	// 媒体引用，可选
	MediaRef *string `gorm:"type:varchar(255)" json:"media_ref"`

	// 处理状态，0=待处理, 1=已答复, 2=已拒绝
	Status enums.MessageStatus `gorm:"type:int;default:0;index" json:"status"`

	// 答复正文，状态迁移到已答复时写入
	Response *string `gorm:"type:text" json:"response"`
}
