package vo

// RatingResultVO 定义了打分操作的响应结构。
// - Duplicate 为 true 表示该用户已经打过分，本次打分被忽略，
//   聚合字段返回的是已有值。
type RatingResultVO struct {
	Duplicate     bool    `json:"duplicate"`      // 是否重复打分
	AverageRating float64 `json:"average_rating"` // 打分后的平均评分
	RatingCount   int64   `json:"rating_count"`   // 打分后的评分人数
}
