package entities

import (
	"time"

	"github.com/ali-0019/vapeland/models/enums"
)

// User 用户实体
// - 表名: users
// - 主键是消息平台下发的数字用户 ID，全局稳定，因此不使用 UUID 基类，
//   也不开启自增（autoIncrement:false）。
// - RankScore 是单调不减的激励积分，数据库层有 CHECK 约束兜底非负。
type User struct {
	// 平台用户ID，主键，由外部消息平台分配，永不变化
	UserID int64 `gorm:"primaryKey;autoIncrement:false" json:"user_id"`

	// 用户名，可选；设置时长度必须在 3~30 之间（服务层校验）
	Username *string `gorm:"type:varchar(30);uniqueIndex:uniq_username" json:"username"`

	// 手机号，注册流程中采集，可选
	PhoneNumber *string `gorm:"type:varchar(20)" json:"phone_number"`

	// 认证状态，0=待认证, 1=已认证
	Status enums.UserStatus `gorm:"type:int;default:0" json:"status"`

	// 激励积分，内容创建动作累加，永不为负
	RankScore int64 `gorm:"type:bigint;default:0;check:rank_score >= 0" json:"rank_score"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
