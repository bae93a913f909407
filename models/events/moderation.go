package events

import (
	"time"

	"github.com/ali-0019/vapeland/models/enums"
)

// ContentData 待审核内容的核心数据，随事件一起发往审核服务。
type ContentData struct {
	Kind      enums.ContentKind `json:"kind"`                // 内容种类
	ContentID string            `json:"content_id"`          // 内容ID (UUID)
	UserID    int64             `json:"user_id"`             // 作者ID
	Text      string            `json:"text"`                // 文本内容
	MediaRef  *string           `json:"media_ref,omitempty"` // 媒体对象键，可为空
}

// ContentPendingModerationEvent 新内容落库后发往审核管道的事件。
type ContentPendingModerationEvent struct {
	EventID   string      `json:"event_id"`
	Timestamp time.Time   `json:"timestamp"`
	Content   ContentData `json:"content"`
}

// ContentApprovedEvent 审核服务发回的通过事件。
type ContentApprovedEvent struct {
	EventID   string            `json:"event_id"`
	Timestamp time.Time         `json:"timestamp"`
	Kind      enums.ContentKind `json:"kind"`
	ContentID string            `json:"content_id"`
}

// ContentRejectedEvent 审核服务发回的拒绝事件。
type ContentRejectedEvent struct {
	EventID   string            `json:"event_id"`
	Timestamp time.Time         `json:"timestamp"`
	Kind      enums.ContentKind `json:"kind"`
	ContentID string            `json:"content_id"`
	Reason    string            `json:"reason,omitempty"` // 拒绝原因，可为空
}
