package entities

import "github.com/ali-0019/vapeland/models/enums"

// CommentReply 评论回复实体，构成以评论为根的回复森林
// - 表名: comment_replies
// - CommentID 始终指向根评论（冗余字段）: 无论嵌套多深，"评论 X 下的全部回复"
//   都能一次索引查询命中，无需递归遍历。
// - ParentReplyID 为空表示直接回复根评论，否则指向同一评论下的另一条回复。
//   父节点必须先于子节点存在，因此不可能成环。
// - 树的重建由消费方逐层完成: 本层只提供"按父节点取直接子节点"的查询。
type CommentReply struct {
	BaseModel

	// 根评论ID，冗余外键，永远指向回复树的根
	CommentID string `gorm:"type:char(36);not null;index" json:"comment_id"`

	// 作者用户ID
	UserID int64 `gorm:"not null;index" json:"user_id"`

	// 父回复ID，可空；空 = 直接回复根评论。约束: 父回复的 CommentID 必须与本条一致
	ParentReplyID *string `gorm:"type:char(36);index" json:"parent_reply_id"`

	// 回复正文，必填
	Text string `gorm:"type:text;not null" json:"text"`

	// 媒体引用，可选
	MediaRef *string `gorm:"type:varchar(255)" json:"media_ref"`

	// 审核状态，每个节点独立审核
	Status enums.ContentStatus `gorm:"type:int;default:0;index" json:"status"`
}
