package dto

// StartFlowRequest 定义了开启多步会话流程的请求体。
type StartFlowRequest struct {
	// Kind 流程种类，如 "create_comment"、"create_question"
	Kind string `json:"kind" binding:"required,max=64"`

	// Step 流程的初始步骤标识
	Step string `json:"step" binding:"required,max=64"`
}

// GetFlowRequest 定义了查询进行中流程的查询参数。
type GetFlowRequest struct {
	Kind string `form:"kind" binding:"required,max=64"`
}

// AdvanceFlowRequest 定义了推进流程的请求体。
type AdvanceFlowRequest struct {
	// Kind 流程种类
	Kind string `json:"kind" binding:"required,max=64"`

	// NextStep 推进后的步骤标识
	NextStep string `json:"next_step" binding:"required,max=64"`

	// Data 本步骤新收集的数据，合并进流程状态
	Data map[string]string `json:"data"`
}

// CancelFlowRequest 定义了终止流程的查询参数。
type CancelFlowRequest struct {
	Kind string `form:"kind" binding:"required,max=64"`
}
