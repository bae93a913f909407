package vo

import (
	"time"

	"github.com/ali-0019/vapeland/models/entities"
	"github.com/ali-0019/vapeland/models/enums"
)

// ItemResponse 定义了商品基础信息的响应数据结构
type ItemResponse struct {
	ID            string         `json:"id"`             // 商品ID
	Type          enums.ItemType `json:"type"`           // 商品类别，0=一体式设备, 1=一次性设备, 2=盐油, 3=果汁油
	Name          string         `json:"name"`           // 商品名
	Description   *string        `json:"description"`    // 描述
	AverageRating float64        `json:"average_rating"` // 平均评分，0-5
	RatingCount   int64          `json:"rating_count"`   // 评分人数
	CreatedAt     time.Time      `json:"created_at"`     // 创建时间
}

// ItemPageVO 定义了商品分页查询的响应结构。
// - 包含当前页的商品列表和符合条件的总记录数。
type ItemPageVO struct {
	Items []*ItemResponse `json:"items"` // 当前页的商品列表
	Total int64           `json:"total"` // 符合条件的总记录数
}

// MapItemsToResponsesVO 将商品实体列表转换为响应VO列表。
func MapItemsToResponsesVO(items []*entities.Item) []*ItemResponse {
	if len(items) == 0 {
		return []*ItemResponse{} // 返回空切片而不是nil，便于前端处理
	}

	responses := make([]*ItemResponse, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		responses = append(responses, MapItemToResponseVO(item))
	}
	return responses
}

// MapItemToResponseVO 将单个商品实体转换为响应VO。
func MapItemToResponseVO(item *entities.Item) *ItemResponse {
	if item == nil {
		return nil
	}
	return &ItemResponse{
		ID:            item.ID,
		Type:          item.Type,
		Name:          item.Name,
		Description:   item.Description,
		AverageRating: item.AverageRating,
		RatingCount:   item.RatingCount,
		CreatedAt:     item.CreatedAt,
	}
}
