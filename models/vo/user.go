package vo

import (
	"time"

	"github.com/ali-0019/vapeland/models/entities"
	"github.com/ali-0019/vapeland/models/enums"
)

// UserResponse 定义了用户信息的响应数据结构
type UserResponse struct {
	UserID      int64            `json:"user_id"`      // 平台用户ID
	Username    *string          `json:"username"`     // 用户名，未设置时为 null
	PhoneNumber *string          `json:"phone_number"` // 手机号，未采集时为 null
	Status      enums.UserStatus `json:"status"`       // 认证状态，0=待认证, 1=已认证
	RankScore   int64            `json:"rank_score"`   // 激励积分
	CreatedAt   time.Time        `json:"created_at"`   // 创建时间
}

// MapUserToResponseVO 将用户实体转换为响应VO。
func MapUserToResponseVO(user *entities.User) *UserResponse {
	if user == nil {
		return nil
	}
	return &UserResponse{
		UserID:      user.UserID,
		Username:    user.Username,
		PhoneNumber: user.PhoneNumber,
		Status:      user.Status,
		RankScore:   user.RankScore,
		CreatedAt:   user.CreatedAt,
	}
}
