package vo

import (
	"time"

	"github.com/ali-0019/vapeland/models/entities"
	"github.com/ali-0019/vapeland/models/enums"
)

// QuestionResponse 定义了技术问答的响应数据结构
type QuestionResponse struct {
	ID            string              `json:"id"`             // 问答ID
	UserID        int64               `json:"user_id"`        // 提问者ID
	Text          string              `json:"text"`           // 问题正文
	MediaRef      *string             `json:"media_ref"`      // 媒体对象键
	Status        enums.ContentStatus `json:"status"`         // 审核状态
	AverageRating float64             `json:"average_rating"` // 平均评分，0-5
	RatingCount   int64               `json:"rating_count"`   // 评分人数
	CreatedAt     time.Time           `json:"created_at"`     // 创建时间
}

// QuestionReplyResponse 定义了问答回复的响应数据结构
type QuestionReplyResponse struct {
	ID         string              `json:"id"`          // 回复ID
	QuestionID string              `json:"question_id"` // 所属问答ID
	UserID     int64               `json:"user_id"`     // 作者ID
	Text       string              `json:"text"`        // 回复正文
	MediaRef   *string             `json:"media_ref"`   // 媒体对象键
	Status     enums.ContentStatus `json:"status"`      // 审核状态
	CreatedAt  time.Time           `json:"created_at"`  // 创建时间
}

// QuestionPageVO 定义了问答分页查询的响应结构。
type QuestionPageVO struct {
	Questions []*QuestionResponse `json:"questions"` // 当前页的问答列表
	Total     int64               `json:"total"`     // 符合条件的总记录数
}

// QuestionReplyPageVO 定义了问答回复分页查询的响应结构。
type QuestionReplyPageVO struct {
	Replies []*QuestionReplyResponse `json:"replies"` // 当前页的回复列表
	Total   int64                    `json:"total"`   // 符合条件的总记录数
}

// TopQuestionsVO 定义了高分问答榜的响应结构，内容来自缓存或数据库回源。
type TopQuestionsVO struct {
	Questions []*QuestionResponse `json:"questions"` // 按平均分降序的问答列表
}

// MapQuestionsToResponsesVO 将问答实体列表转换为响应VO列表。
func MapQuestionsToResponsesVO(questions []*entities.TechQuestion) []*QuestionResponse {
	if len(questions) == 0 {
		return []*QuestionResponse{}
	}

	responses := make([]*QuestionResponse, 0, len(questions))
	for _, q := range questions {
		if q == nil {
			continue
		}
		responses = append(responses, &QuestionResponse{
			ID:            q.ID,
			UserID:        q.UserID,
			Text:          q.Text,
			MediaRef:      q.MediaRef,
			Status:        q.Status,
			AverageRating: q.AverageRating,
			RatingCount:   q.RatingCount,
			CreatedAt:     q.CreatedAt,
		})
	}
	return responses
}

// MapQuestionRepliesToResponsesVO 将问答回复实体列表转换为响应VO列表。
func MapQuestionRepliesToResponsesVO(replies []*entities.QuestionReply) []*QuestionReplyResponse {
	if len(replies) == 0 {
		return []*QuestionReplyResponse{}
	}

	responses := make([]*QuestionReplyResponse, 0, len(replies))
	for _, r := range replies {
		if r == nil {
			continue
		}
		responses = append(responses, &QuestionReplyResponse{
			ID:         r.ID,
			QuestionID: r.QuestionID,
			UserID:     r.UserID,
			Text:       r.Text,
			MediaRef:   r.MediaRef,
			Status:     r.Status,
			CreatedAt:  r.CreatedAt,
		})
	}
	return responses
}
