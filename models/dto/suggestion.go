package dto

// CreateSuggestionRequest 定义了提交新品建议的请求数据结构
type CreateSuggestionRequest struct {
	Name        string  `json:"name" form:"name" binding:"required,max=100"`        // 建议的商品名，必填
	Description *string `json:"description" form:"description" binding:"omitempty"` // 补充说明，可选
}
