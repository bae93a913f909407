package vo

import (
	"time"

	"github.com/ali-0019/vapeland/models/entities"
	"github.com/ali-0019/vapeland/models/enums"
)

// SuggestionResponse 定义了新品建议的响应数据结构
type SuggestionResponse struct {
	ID          string              `json:"id"`          // 建议ID
	UserID      int64               `json:"user_id"`     // 提交者ID
	Name        string              `json:"name"`        // 建议的商品名
	Description *string             `json:"description"` // 补充说明
	Status      enums.ContentStatus `json:"status"`      // 审核状态
	CreatedAt   time.Time           `json:"created_at"`  // 创建时间
}

// MapSuggestionToResponseVO 将新品建议实体转换为响应VO。
func MapSuggestionToResponseVO(s *entities.ProductSuggestion) *SuggestionResponse {
	if s == nil {
		return nil
	}
	return &SuggestionResponse{
		ID:          s.ID,
		UserID:      s.UserID,
		Name:        s.Name,
		Description: s.Description,
		Status:      s.Status,
		CreatedAt:   s.CreatedAt,
	}
}
