package vo

import "time"

// PendingContentVO 审核队列中一条待审核内容的统一展示结构
// - 五种可审核内容收敛到同一形态，管理端按 kind 区分。
type PendingContentVO struct {
	Kind      string    `json:"kind"`                // 内容种类: comment / comment_reply / question / question_reply / suggestion
	ID        string    `json:"id"`                  // 内容ID
	UserID    int64     `json:"user_id"`             // 作者用户ID
	Text      string    `json:"text"`                // 正文（建议取名称加描述）
	MediaRef  *string   `json:"media_ref,omitempty"` // 媒体对象键，可选
	CreatedAt time.Time `json:"created_at"`          // 提交时间
}

// PendingContentPageVO 审核队列的分页视图
type PendingContentPageVO struct {
	Items []*PendingContentVO `json:"items"` // 当前页的待审核内容
	Total int64               `json:"total"` // 该种类下待审核内容总数
}
