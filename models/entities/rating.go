package entities

// ItemRating 商品评分实体
// - 表名: item_ratings
// - (user_id, item_id) 唯一索引保证每人对每件商品至多一次评分。
// - 评分一经创建不可修改、不可单独删除（只随商品级联删除），
//   商品上的聚合字段永远可以由本表重算得出。
type ItemRating struct {
	BaseModel

	// 评分者用户ID
	UserID int64 `gorm:"not null;uniqueIndex:uniq_user_item_rating" json:"user_id"`

	// 被评分商品ID
	ItemID string `gorm:"type:char(36);not null;uniqueIndex:uniq_user_item_rating;index" json:"item_id"`

	// 分值，1~5 整数
	Score int `gorm:"type:int;not null;check:score >= 1 AND score <= 5" json:"score"`
}

// QuestionRating 技术问答评分实体
// - 表名: question_ratings
// - 约束与 ItemRating 一致，目标换成 TechQuestion。
type QuestionRating struct {
	BaseModel

	// 评分者用户ID
	UserID int64 `gorm:"not null;uniqueIndex:uniq_user_question_rating" json:"user_id"`

	// 被评分问题ID
	QuestionID string `gorm:"type:char(36);not null;uniqueIndex:uniq_user_question_rating;index" json:"question_id"`

	// 分值，1~5 整数
	Score int `gorm:"type:int;not null;check:score >= 1 AND score <= 5" json:"score"`
}
