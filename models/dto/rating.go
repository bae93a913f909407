package dto

// RateItemRequest 定义了给商品打分的请求数据结构
// - 同一用户对同一商品只能打一次分，重复打分被静默忽略。
type RateItemRequest struct {
	ItemID string `json:"item_id" form:"item_id" binding:"required,uuid"` // 商品ID，必填
	Score  int    `json:"score" form:"score" binding:"required,gte=1,lte=5"` // 分数，1-5
}

// RateQuestionRequest 定义了给技术问答打分的请求数据结构
type RateQuestionRequest struct {
	QuestionID string `json:"question_id" form:"question_id" binding:"required,uuid"` // 问答ID，必填
	Score      int    `json:"score" form:"score" binding:"required,gte=1,lte=5"`      // 分数，1-5
}
