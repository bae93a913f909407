package entities

import "github.com/ali-0019/vapeland/models/enums"

// Comment 商品评论实体，回复树的根节点
// - 表名: comments
// - 删除商品时级联删除其全部评论（及评论下的整棵回复树），由服务层事务完成。
type Comment struct {
	BaseModel

	// 所属商品ID，外键
	ItemID string `gorm:"type:char(36);not null;index" json:"item_id"`

	// 作者用户ID
	UserID int64 `gorm:"not null;index" json:"user_id"`

	// 评论正文，必填
	Text string `gorm:"type:text;not null" json:"text"`

	// 媒体引用，媒体协作方返回的不透明对象键，可选；本服务只存储、不解释
	MediaRef *string `gorm:"type:varchar(255)" json:"media_ref"`

	// 审核状态，默认待审核
	Status enums.ContentStatus `gorm:"type:int;default:0;index" json:"status"`
}
