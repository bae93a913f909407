package dto

// ModerateContentRequest 定义了管理端人工审核内容的请求数据结构
// - kind 取值: comment / comment_reply / question / question_reply / suggestion
type ModerateContentRequest struct {
	Kind      string  `json:"kind" form:"kind" binding:"required"`                  // 内容种类，必填
	ContentID string  `json:"content_id" form:"content_id" binding:"required,uuid"` // 内容ID，必填
	Approve   *bool   `json:"approve" form:"approve" binding:"required"`            // true=通过, false=拒绝
	Reason    *string `json:"reason" form:"reason" binding:"omitempty,max=255"`     // 拒绝原因，可选
}

// ListPendingContentRequest 定义了管理端查询审核队列的请求数据结构
type ListPendingContentRequest struct {
	Kind     string `json:"kind" form:"kind" binding:"required"`                 // 内容种类，必填
	Page     int    `json:"page" form:"page" binding:"omitempty,gte=1"`          // 页码，从1开始
	PageSize int    `json:"page_size" form:"page_size" binding:"omitempty,gt=0"` // 每页数量
}
