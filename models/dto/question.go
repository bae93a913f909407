package dto

// CreateQuestionRequest 定义了发布技术问答的请求数据结构
type CreateQuestionRequest struct {
	Text     string  `json:"text" form:"text" binding:"required,max=1000"`   // 问题内容，必填
	MediaRef *string `json:"media_ref" form:"media_ref" binding:"omitempty"` // 媒体对象键，可选
}

// CreateQuestionReplyRequest 定义了回复技术问答的请求数据结构
// - 问答的回复是平铺的，没有父回复。
type CreateQuestionReplyRequest struct {
	QuestionID string  `json:"question_id" form:"question_id" binding:"required,uuid"` // 问答ID，必填
	Text       string  `json:"text" form:"text" binding:"required,max=1000"`           // 回复内容，必填
	MediaRef   *string `json:"media_ref" form:"media_ref" binding:"omitempty"`         // 媒体对象键，可选
}

// ListQuestionsRequest 定义了分页查询技术问答的请求数据结构
type ListQuestionsRequest struct {
	Page     int `json:"page" form:"page" binding:"omitempty,gte=1"`          // 页码，从1开始
	PageSize int `json:"page_size" form:"page_size" binding:"omitempty,gt=0"` // 每页数量
}

// ListQuestionRepliesRequest 定义了分页查询问答回复的请求数据结构
type ListQuestionRepliesRequest struct {
	QuestionID string `json:"question_id" form:"question_id" binding:"required,uuid"` // 问答ID，必填
	Page       int    `json:"page" form:"page" binding:"omitempty,gte=1"`             // 页码，从1开始
	PageSize   int    `json:"page_size" form:"page_size" binding:"omitempty,gt=0"`    // 每页数量
}
