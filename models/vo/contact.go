package vo

import (
	"time"

	"github.com/ali-0019/vapeland/models/entities"
	"github.com/ali-0019/vapeland/models/enums"
)

// ContactMessageResponse 定义了联系消息的响应数据结构
type ContactMessageResponse struct {
	ID        string              `json:"id"`         // 消息ID
	UserID    int64               `json:"user_id"`    // 发送者ID
	Text      string              `json:"text"`       // 消息正文
	MediaRef  *string             `json:"media_ref"`  // 媒体对象键
	Status    enums.MessageStatus `json:"status"`     // 处理状态，0=待处理, 1=已答复, 2=已拒绝
	Response  *string             `json:"response"`   // 管理员答复，未答复时为 null
	CreatedAt time.Time           `json:"created_at"` // 创建时间
}

// ContactMessagePageVO 定义了联系消息分页查询的响应结构（管理端）。
type ContactMessagePageVO struct {
	Messages []*ContactMessageResponse `json:"messages"` // 当前页的消息列表
	Total    int64                     `json:"total"`    // 符合条件的总记录数
}

// MapContactMessagesToResponsesVO 将联系消息实体列表转换为响应VO列表。
func MapContactMessagesToResponsesVO(messages []*entities.ContactMessage) []*ContactMessageResponse {
	if len(messages) == 0 {
		return []*ContactMessageResponse{}
	}

	responses := make([]*ContactMessageResponse, 0, len(messages))
	for _, m := range messages {
		if m == nil {
			continue
		}
		responses = append(responses, MapContactMessageToResponseVO(m))
	}
	return responses
}

// MapContactMessageToResponseVO 将单个联系消息实体转换为响应VO。
func MapContactMessageToResponseVO(m *entities.ContactMessage) *ContactMessageResponse {
	if m == nil {
		return nil
	}
	return &ContactMessageResponse{
		ID:        m.ID,
		UserID:    m.UserID,
		Text:      m.Text,
		MediaRef:  m.MediaRef,
		Status:    m.Status,
		Response:  m.Response,
		CreatedAt: m.CreatedAt,
	}
}
