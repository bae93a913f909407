package dto

// CreateContactMessageRequest 定义了给管理员留言的请求数据结构
type CreateContactMessageRequest struct {
	Text     string  `json:"text" form:"text" binding:"required,max=1000"`   // 留言内容，必填
	MediaRef *string `json:"media_ref" form:"media_ref" binding:"omitempty"` // 媒体对象键，可选
}

// AnswerContactMessageRequest 定义了管理员答复留言的请求数据结构
type AnswerContactMessageRequest struct {
	Response string `json:"response" form:"response" binding:"required,max=1000"` // 答复内容，必填
}

// ListContactMessagesRequest 定义了管理端查询留言收件箱的请求数据结构
// - status 不传表示查询全部状态的消息。
type ListContactMessagesRequest struct {
	Status   *int `json:"status" form:"status" binding:"omitempty,gte=0,lte=2"` // 消息状态，0=待处理, 1=已答复, 2=已拒绝，可选
	Page     int  `json:"page" form:"page" binding:"omitempty,gte=1"`           // 页码，从1开始
	PageSize int  `json:"page_size" form:"page_size" binding:"omitempty,gt=0"`  // 每页数量
}
