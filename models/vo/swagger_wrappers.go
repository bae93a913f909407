package vo

// --- 用于成功响应且包含具体 Data 的包装器 ---

// UserResponseWrapper 对应 response.APIResponse[vo.UserResponse]
type UserResponseWrapper struct {
	Code    int          `json:"code" example:"0"`
	Message string       `json:"message,omitempty" example:"success"`
	Data    UserResponse `json:"data"`
}

// ItemResponseWrapper 对应 response.APIResponse[vo.ItemResponse]
type ItemResponseWrapper struct {
	Code    int          `json:"code" example:"0"`
	Message string       `json:"message,omitempty" example:"success"`
	Data    ItemResponse `json:"data"`
}

// ItemPageResponseWrapper 对应 response.APIResponse[vo.ItemPageVO]
type ItemPageResponseWrapper struct {
	Code    int        `json:"code" example:"0"`
	Message string     `json:"message,omitempty" example:"success"`
	Data    ItemPageVO `json:"data"`
}

// CommentResponseWrapper 对应 response.APIResponse[vo.CommentResponse]
type CommentResponseWrapper struct {
	Code    int             `json:"code" example:"0"`
	Message string          `json:"message,omitempty" example:"success"`
	Data    CommentResponse `json:"data"`
}

// CommentPageResponseWrapper 对应 response.APIResponse[vo.CommentPageVO]
type CommentPageResponseWrapper struct {
	Code    int           `json:"code" example:"0"`
	Message string        `json:"message,omitempty" example:"success"`
	Data    CommentPageVO `json:"data"`
}

// ReplyResponseWrapper 对应 response.APIResponse[vo.ReplyResponse]
type ReplyResponseWrapper struct {
	Code    int           `json:"code" example:"0"`
	Message string        `json:"message,omitempty" example:"success"`
	Data    ReplyResponse `json:"data"`
}

// ReplyPageResponseWrapper 对应 response.APIResponse[vo.ReplyPageVO]
type ReplyPageResponseWrapper struct {
	Code    int         `json:"code" example:"0"`
	Message string      `json:"message,omitempty" example:"success"`
	Data    ReplyPageVO `json:"data"`
}

// QuestionResponseWrapper 对应 response.APIResponse[vo.QuestionResponse]
type QuestionResponseWrapper struct {
	Code    int              `json:"code" example:"0"`
	Message string           `json:"message,omitempty" example:"success"`
	Data    QuestionResponse `json:"data"`
}

// QuestionPageResponseWrapper 对应 response.APIResponse[vo.QuestionPageVO]
type QuestionPageResponseWrapper struct {
	Code    int            `json:"code" example:"0"`
	Message string         `json:"message,omitempty" example:"success"`
	Data    QuestionPageVO `json:"data"`
}

// QuestionReplyResponseWrapper 对应 response.APIResponse[vo.QuestionReplyResponse]
type QuestionReplyResponseWrapper struct {
	Code    int                   `json:"code" example:"0"`
	Message string                `json:"message,omitempty" example:"success"`
	Data    QuestionReplyResponse `json:"data"`
}

// QuestionReplyPageResponseWrapper 对应 response.APIResponse[vo.QuestionReplyPageVO]
type QuestionReplyPageResponseWrapper struct {
	Code    int                 `json:"code" example:"0"`
	Message string              `json:"message,omitempty" example:"success"`
	Data    QuestionReplyPageVO `json:"data"`
}

// TopQuestionsResponseWrapper 对应 response.APIResponse[vo.TopQuestionsVO]
type TopQuestionsResponseWrapper struct {
	Code    int            `json:"code" example:"0"`
	Message string         `json:"message,omitempty" example:"success"`
	Data    TopQuestionsVO `json:"data"`
}

// RatingResultResponseWrapper 对应 response.APIResponse[vo.RatingResultVO]
type RatingResultResponseWrapper struct {
	Code    int            `json:"code" example:"0"`
	Message string         `json:"message,omitempty" example:"success"`
	Data    RatingResultVO `json:"data"`
}

// SuggestionResponseWrapper 对应 response.APIResponse[vo.SuggestionResponse]
type SuggestionResponseWrapper struct {
	Code    int                `json:"code" example:"0"`
	Message string             `json:"message,omitempty" example:"success"`
	Data    SuggestionResponse `json:"data"`
}

// ContactMessageResponseWrapper 对应 response.APIResponse[vo.ContactMessageResponse]
type ContactMessageResponseWrapper struct {
	Code    int                    `json:"code" example:"0"`
	Message string                 `json:"message,omitempty" example:"success"`
	Data    ContactMessageResponse `json:"data"`
}

// ContactMessagePageResponseWrapper 对应 response.APIResponse[vo.ContactMessagePageVO]
type ContactMessagePageResponseWrapper struct {
	Code    int                  `json:"code" example:"0"`
	Message string               `json:"message,omitempty" example:"success"`
	Data    ContactMessagePageVO `json:"data"`
}

// PendingContentPageResponseWrapper 对应 response.APIResponse[vo.PendingContentPageVO]
type PendingContentPageResponseWrapper struct {
	Code    int                  `json:"code" example:"0"`
	Message string               `json:"message,omitempty" example:"success"`
	Data    PendingContentPageVO `json:"data"`
}

// MediaUploadResponseWrapper 对应 response.APIResponse[vo.MediaUploadVO]
type MediaUploadResponseWrapper struct {
	Code    int           `json:"code" example:"0"`
	Message string        `json:"message,omitempty" example:"success"`
	Data    MediaUploadVO `json:"data"`
}

// FlowStateResponseWrapper 对应 response.APIResponse[vo.FlowStateVO]
type FlowStateResponseWrapper struct {
	Code    int         `json:"code" example:"0"`
	Message string      `json:"message,omitempty" example:"success"`
	Data    FlowStateVO `json:"data"`
}

// --- 用于错误响应 或 简单成功响应（只有 Code 和 Message） ---

// BaseResponseWrapper 代表一个只包含 Code 和 Message 的响应。
// 适用于错误情况（RespondError 返回时 Data 为 nil 且 omitempty）
// 或某些成功操作可能也只返回 Code 和 Message。
type BaseResponseWrapper struct {
	Code    int    `json:"code" example:"0"`          // 成功时为 0, 错误时为具体错误码
	Message string `json:"message" example:"success"` // 成功或错误消息
}
