package dto

// CreateCommentRequest 定义了对商品发表评论的请求数据结构
type CreateCommentRequest struct {
	ItemID   string  `json:"item_id" form:"item_id" binding:"required,uuid"`   // 商品ID，必填
	Text     string  `json:"text" form:"text" binding:"required,max=1000"`     // 评论内容，必填
	MediaRef *string `json:"media_ref" form:"media_ref" binding:"omitempty"`   // 媒体对象键，可选
}

// CreateCommentReplyRequest 定义了回复评论的请求数据结构
// - ParentReplyID 为空表示直接回复根评论，否则回复该楼层下的某条回复。
// - 父回复必须与 CommentID 属于同一条根评论，否则拒绝。
type CreateCommentReplyRequest struct {
	CommentID     string  `json:"comment_id" form:"comment_id" binding:"required,uuid"`            // 根评论ID，必填
	ParentReplyID *string `json:"parent_reply_id" form:"parent_reply_id" binding:"omitempty,uuid"` // 父回复ID，可选
	Text          string  `json:"text" form:"text" binding:"required,max=1000"`                    // 回复内容，必填
	MediaRef      *string `json:"media_ref" form:"media_ref" binding:"omitempty"`                  // 媒体对象键，可选
}

// ListCommentsRequest 定义了分页查询商品评论的请求数据结构
type ListCommentsRequest struct {
	ItemID   string `json:"item_id" form:"item_id" binding:"required,uuid"`      // 商品ID，必填
	Page     int    `json:"page" form:"page" binding:"omitempty,gte=1"`          // 页码，从1开始
	PageSize int    `json:"page_size" form:"page_size" binding:"omitempty,gt=0"` // 每页数量
}

// ListRepliesRequest 定义了分页查询回复的请求数据结构
// - ParentReplyID 为空时查根评论的直接回复，否则查该回复的子回复。
type ListRepliesRequest struct {
	CommentID     string  `json:"comment_id" form:"comment_id" binding:"required,uuid"`            // 根评论ID，必填
	ParentReplyID *string `json:"parent_reply_id" form:"parent_reply_id" binding:"omitempty,uuid"` // 父回复ID，可选
	Page          int     `json:"page" form:"page" binding:"omitempty,gte=1"`                      // 页码，从1开始
	PageSize      int     `json:"page_size" form:"page_size" binding:"omitempty,gt=0"`             // 每页数量
}
